package memory

import (
	"context"
	"sync"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/usecase"
)

// UnitOfWork serializes settlement work over the in-memory stores and rolls
// the stores back to their pre-transaction state when the body fails. One
// global mutex stands in for database transaction isolation; individual
// reads outside a unit of work stay concurrent on the repo locks.
type UnitOfWork struct {
	mu    sync.Mutex
	repos usecase.Repos

	performances *PerformanceRepository
	ledger       *EventLedgerRepository
	teams        *FantasyTeamRepository
	members      *FantasyPlayerRepository
	selections   *TeamSelectionRepository
	transfers    *TransferRepository
}

func NewUnitOfWork(
	performances *PerformanceRepository,
	ledger *EventLedgerRepository,
	teams *FantasyTeamRepository,
	members *FantasyPlayerRepository,
	selections *TeamSelectionRepository,
	transfers *TransferRepository,
) *UnitOfWork {
	return &UnitOfWork{
		repos: usecase.Repos{
			Performances:   performances,
			Ledger:         ledger,
			Teams:          teams,
			FantasyPlayers: members,
			Selections:     selections,
			Transfers:      transfers,
		},
		performances: performances,
		ledger:       ledger,
		teams:        teams,
		members:      members,
		selections:   selections,
		transfers:    transfers,
	}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, repos usecase.Repos) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	restores := []func(){
		u.performances.snapshot(),
		u.ledger.snapshot(),
		u.teams.snapshot(),
		u.members.snapshot(),
		u.selections.snapshot(),
		u.transfers.snapshot(),
	}

	if err := fn(ctx, u.repos); err != nil {
		for _, restore := range restores {
			restore()
		}
		return err
	}
	return nil
}

package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/usecase"
)

// UnitOfWork runs a scoring step inside one database transaction. Every
// repository handed to the callback is bound to that transaction, so a
// failing step rolls back all of its writes together.
type UnitOfWork struct {
	db *sqlx.DB
}

func NewUnitOfWork(db *sqlx.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, repos usecase.Repos) error) error {
	tx, err := u.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin transaction")
	}

	repos := usecase.Repos{
		Performances:   NewPerformanceRepository(tx),
		Ledger:         NewEventLedgerRepository(tx),
		Teams:          NewFantasyTeamRepository(tx),
		FantasyPlayers: NewFantasyPlayerRepository(tx),
		Selections:     NewTeamSelectionRepository(tx),
		Transfers:      NewTransferRepository(tx),
	}

	if err := fn(ctx, repos); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return crerr.CombineErrors(err, crerr.Wrap(rbErr, "rollback transaction"))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit transaction")
	}
	return nil
}

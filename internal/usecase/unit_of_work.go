package usecase

import (
	"context"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/eventledger"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fantasy"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/performance"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/transfer"
)

// Repos bundles every repository that participates in a settlement
// transaction. A UnitOfWork hands out a Repos bound to the same
// transaction so ledger marks, performance writes and squad point
// updates commit or roll back together.
type Repos struct {
	Performances   performance.Repository
	Ledger         eventledger.Repository
	Teams          fantasy.TeamRepository
	FantasyPlayers fantasy.PlayerRepository
	Selections     fantasy.SelectionRepository
	Transfers      transfer.Repository
}

// UnitOfWork runs fn inside one atomic scope. If fn returns an error
// every write made through the supplied Repos is discarded.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, repos Repos) error) error
}

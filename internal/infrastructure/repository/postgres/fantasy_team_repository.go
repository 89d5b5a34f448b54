package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fantasy"
)

type FantasyTeamRepository struct {
	db DBTX
}

func NewFantasyTeamRepository(db DBTX) *FantasyTeamRepository {
	return &FantasyTeamRepository{db: db}
}

const fantasyTeamColumns = `id, user_id, name, budget, formation, free_transfers, transfer_budget, total_points, created_at, updated_at`

func (r *FantasyTeamRepository) GetByID(ctx context.Context, id string) (fantasy.FantasyTeam, bool, error) {
	var row fantasyTeamTableModel
	err := r.db.GetContext(ctx, &row, `SELECT `+fantasyTeamColumns+` FROM fantasy_teams WHERE id = $1`, id)
	if err != nil {
		if isNotFound(err) {
			return fantasy.FantasyTeam{}, false, nil
		}
		return fantasy.FantasyTeam{}, false, crerr.Wrapf(err, "get fantasy team id=%s", id)
	}
	return row.toDomain(), true, nil
}

func (r *FantasyTeamRepository) Upsert(ctx context.Context, team fantasy.FantasyTeam) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO fantasy_teams (id, user_id, name, budget, formation, free_transfers, transfer_budget, total_points, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    budget = EXCLUDED.budget,
    formation = EXCLUDED.formation,
    free_transfers = EXCLUDED.free_transfers,
    transfer_budget = EXCLUDED.transfer_budget,
    total_points = EXCLUDED.total_points,
    updated_at = EXCLUDED.updated_at`,
		team.ID, team.UserID, team.Name, team.Budget, team.Formation,
		team.FreeTransfers, team.TransferBudget, team.TotalPoints,
		team.CreatedAt, team.UpdatedAt)
	if err != nil {
		return crerr.Wrapf(err, "upsert fantasy team id=%s", team.ID)
	}
	return nil
}

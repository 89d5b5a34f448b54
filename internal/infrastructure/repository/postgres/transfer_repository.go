package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/transfer"
)

type TransferRepository struct {
	db DBTX
}

func NewTransferRepository(db DBTX) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) ListByTeam(ctx context.Context, teamID string) ([]transfer.PlayerTransfer, error) {
	var rows []playerTransferTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, team_id, player_in_id, player_out_id, gameweek, point_cost, created_at
FROM player_transfers WHERE team_id = $1 ORDER BY created_at, id`, teamID)
	if err != nil {
		return nil, crerr.Wrapf(err, "list transfers team_id=%s", teamID)
	}

	out := make([]transfer.PlayerTransfer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TransferRepository) Record(ctx context.Context, items []transfer.PlayerTransfer) error {
	for _, item := range items {
		_, err := r.db.ExecContext(ctx, `
INSERT INTO player_transfers (id, team_id, player_in_id, player_out_id, gameweek, point_cost, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, item.TeamID, item.PlayerInID, item.PlayerOutID,
			item.Gameweek, item.PointCost, item.CreatedAt)
		if err != nil {
			return crerr.Wrapf(err, "record transfer team_id=%s player_in=%s player_out=%s",
				item.TeamID, item.PlayerInID, item.PlayerOutID)
		}
	}
	return nil
}

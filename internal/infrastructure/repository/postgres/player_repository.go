package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/player"
)

type PlayerRepository struct {
	db DBTX
}

func NewPlayerRepository(db DBTX) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	var row playerTableModel
	err := r.db.GetContext(ctx, &row, `SELECT id, team_id, name, position, current_value FROM players WHERE id = $1`, id)
	if err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, crerr.Wrapf(err, "get player id=%s", id)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, ids []string) ([]player.Player, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []playerTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, team_id, name, position, current_value FROM players WHERE id = ANY($1)`,
		pq.Array(ids))
	if err != nil {
		return nil, crerr.Wrap(err, "get players by ids")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	var rows []playerTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, team_id, name, position, current_value FROM players WHERE team_id = $1 ORDER BY id`,
		teamID)
	if err != nil {
		return nil, crerr.Wrapf(err, "list players team_id=%s", teamID)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

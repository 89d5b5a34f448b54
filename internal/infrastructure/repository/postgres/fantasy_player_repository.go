package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fantasy"
)

type FantasyPlayerRepository struct {
	db DBTX
}

func NewFantasyPlayerRepository(db DBTX) *FantasyPlayerRepository {
	return &FantasyPlayerRepository{db: db}
}

const fantasyPlayerColumns = `id, team_id, player_id, is_starter, is_captain, is_vice_captain,
purchase_price, current_value, total_points, gameweek_added, created_at, updated_at`

func (r *FantasyPlayerRepository) ListByRealPlayer(ctx context.Context, playerID string) ([]fantasy.FantasyPlayer, error) {
	var rows []fantasyPlayerTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+fantasyPlayerColumns+` FROM fantasy_players WHERE player_id = $1 ORDER BY team_id`, playerID)
	if err != nil {
		return nil, crerr.Wrapf(err, "list squad memberships player_id=%s", playerID)
	}

	out := make([]fantasy.FantasyPlayer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FantasyPlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]fantasy.FantasyPlayer, error) {
	var rows []fantasyPlayerTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+fantasyPlayerColumns+` FROM fantasy_players WHERE team_id = $1 ORDER BY player_id`, teamID)
	if err != nil {
		return nil, crerr.Wrapf(err, "list squad members team_id=%s", teamID)
	}

	out := make([]fantasy.FantasyPlayer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FantasyPlayerRepository) Upsert(ctx context.Context, item fantasy.FantasyPlayer) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO fantasy_players (id, team_id, player_id, is_starter, is_captain, is_vice_captain,
    purchase_price, current_value, total_points, gameweek_added, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (team_id, player_id) DO UPDATE SET
    is_starter = EXCLUDED.is_starter,
    is_captain = EXCLUDED.is_captain,
    is_vice_captain = EXCLUDED.is_vice_captain,
    current_value = EXCLUDED.current_value,
    total_points = EXCLUDED.total_points,
    updated_at = EXCLUDED.updated_at`,
		item.ID, item.TeamID, item.PlayerID, item.IsStarter, item.IsCaptain, item.IsViceCaptain,
		item.PurchasePrice, item.CurrentValue, item.TotalPoints, item.GameweekAdded,
		item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return crerr.Wrapf(err, "upsert squad member team_id=%s player_id=%s", item.TeamID, item.PlayerID)
	}
	return nil
}

func (r *FantasyPlayerRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM fantasy_players WHERE id = $1`, id); err != nil {
		return crerr.Wrapf(err, "delete squad member id=%s", id)
	}
	return nil
}

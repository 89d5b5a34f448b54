package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/performance"
)

type PerformanceRepository struct {
	db DBTX
}

func NewPerformanceRepository(db DBTX) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

const performanceColumns = `id, player_id, team_id, fixture_id, gameweek,
minutes_played, goals, assists, clean_sheets, saves, own_goals,
penalties_saved, penalties_missed, yellow_cards, red_cards,
fantasy_points, created_at, updated_at`

func (r *PerformanceRepository) GetByPlayerAndFixture(ctx context.Context, playerID, fixtureID string) (performance.Performance, bool, error) {
	var row performanceTableModel
	err := r.db.GetContext(ctx, &row,
		`SELECT `+performanceColumns+` FROM performances WHERE player_id = $1 AND fixture_id = $2`,
		playerID, fixtureID)
	if err != nil {
		if isNotFound(err) {
			return performance.Performance{}, false, nil
		}
		return performance.Performance{}, false, crerr.Wrapf(err, "get performance player_id=%s fixture_id=%s", playerID, fixtureID)
	}
	return row.toDomain(), true, nil
}

func (r *PerformanceRepository) ListByFixture(ctx context.Context, fixtureID string) ([]performance.Performance, error) {
	var rows []performanceTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+performanceColumns+` FROM performances WHERE fixture_id = $1 ORDER BY player_id`, fixtureID)
	if err != nil {
		return nil, crerr.Wrapf(err, "list performances fixture_id=%s", fixtureID)
	}

	out := make([]performance.Performance, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PerformanceRepository) ListByGameweek(ctx context.Context, gameweek int) ([]performance.Performance, error) {
	var rows []performanceTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+performanceColumns+` FROM performances WHERE gameweek = $1 ORDER BY player_id`, gameweek)
	if err != nil {
		return nil, crerr.Wrapf(err, "list performances gameweek=%d", gameweek)
	}

	out := make([]performance.Performance, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PerformanceRepository) Upsert(ctx context.Context, item performance.Performance) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO performances (id, player_id, team_id, fixture_id, gameweek,
    minutes_played, goals, assists, clean_sheets, saves, own_goals,
    penalties_saved, penalties_missed, yellow_cards, red_cards,
    fantasy_points, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
ON CONFLICT (player_id, fixture_id) DO UPDATE SET
    minutes_played = EXCLUDED.minutes_played,
    goals = EXCLUDED.goals,
    assists = EXCLUDED.assists,
    clean_sheets = EXCLUDED.clean_sheets,
    saves = EXCLUDED.saves,
    own_goals = EXCLUDED.own_goals,
    penalties_saved = EXCLUDED.penalties_saved,
    penalties_missed = EXCLUDED.penalties_missed,
    yellow_cards = EXCLUDED.yellow_cards,
    red_cards = EXCLUDED.red_cards,
    fantasy_points = EXCLUDED.fantasy_points,
    updated_at = EXCLUDED.updated_at`,
		item.ID, item.PlayerID, item.TeamID, item.FixtureID, item.Gameweek,
		item.Counters.MinutesPlayed, item.Counters.Goals, item.Counters.Assists,
		item.Counters.CleanSheets, item.Counters.Saves, item.Counters.OwnGoals,
		item.Counters.PenaltiesSaved, item.Counters.PenaltiesMissed,
		item.Counters.YellowCards, item.Counters.RedCards,
		item.FantasyPoints, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return crerr.Wrapf(err, "upsert performance player_id=%s fixture_id=%s", item.PlayerID, item.FixtureID)
	}
	return nil
}

func (r *PerformanceRepository) DeleteByFixture(ctx context.Context, fixtureID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM performances WHERE fixture_id = $1`, fixtureID); err != nil {
		return crerr.Wrapf(err, "delete performances fixture_id=%s", fixtureID)
	}
	return nil
}

package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fixture"
)

type FixtureRepository struct {
	db DBTX
}

func NewFixtureRepository(db DBTX) *FixtureRepository {
	return &FixtureRepository{db: db}
}

const fixtureColumns = `id, gameweek, home_team_id, away_team_id, home_team, away_team, kickoff_at, home_score, away_score, status, finished_at`

func (r *FixtureRepository) GetByID(ctx context.Context, id string) (fixture.Fixture, bool, error) {
	var row fixtureTableModel
	err := r.db.GetContext(ctx, &row, `SELECT `+fixtureColumns+` FROM fixtures WHERE id = $1`, id)
	if err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, crerr.Wrapf(err, "get fixture id=%s", id)
	}
	return row.toDomain(), true, nil
}

func (r *FixtureRepository) ListByGameweek(ctx context.Context, gameweek int) ([]fixture.Fixture, error) {
	var rows []fixtureTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+fixtureColumns+` FROM fixtures WHERE gameweek = $1 ORDER BY kickoff_at, id`, gameweek)
	if err != nil {
		return nil, crerr.Wrapf(err, "list fixtures gameweek=%d", gameweek)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FixtureRepository) Upsert(ctx context.Context, fx fixture.Fixture) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO fixtures (id, gameweek, home_team_id, away_team_id, home_team, away_team, kickoff_at, home_score, away_score, status, finished_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET
    gameweek = EXCLUDED.gameweek,
    home_team_id = EXCLUDED.home_team_id,
    away_team_id = EXCLUDED.away_team_id,
    home_team = EXCLUDED.home_team,
    away_team = EXCLUDED.away_team,
    kickoff_at = EXCLUDED.kickoff_at,
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    status = EXCLUDED.status,
    finished_at = EXCLUDED.finished_at`,
		fx.ID, fx.Gameweek, fx.HomeTeamID, fx.AwayTeamID, fx.HomeTeam, fx.AwayTeam,
		fx.KickoffAt, fx.HomeScore, fx.AwayScore, fx.Status, fx.FinishedAt)
	if err != nil {
		return crerr.Wrapf(err, "upsert fixture id=%s", fx.ID)
	}
	return nil
}

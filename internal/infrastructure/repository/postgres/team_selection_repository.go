package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fantasy"
)

type TeamSelectionRepository struct {
	db DBTX
}

func NewTeamSelectionRepository(db DBTX) *TeamSelectionRepository {
	return &TeamSelectionRepository{db: db}
}

const teamSelectionColumns = `id, team_id, gameweek, formation, captain_id, vice_captain_id,
starter_ids, bench_ids, is_finalized, created_at, updated_at`

func (r *TeamSelectionRepository) GetByTeamAndGameweek(ctx context.Context, teamID string, gameweek int) (fantasy.TeamSelection, bool, error) {
	var row teamSelectionTableModel
	err := r.db.GetContext(ctx, &row,
		`SELECT `+teamSelectionColumns+` FROM team_selections WHERE team_id = $1 AND gameweek = $2`,
		teamID, gameweek)
	if err != nil {
		if isNotFound(err) {
			return fantasy.TeamSelection{}, false, nil
		}
		return fantasy.TeamSelection{}, false, crerr.Wrapf(err, "get selection team_id=%s gameweek=%d", teamID, gameweek)
	}
	return row.toDomain(), true, nil
}

func (r *TeamSelectionRepository) Upsert(ctx context.Context, selection fantasy.TeamSelection) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO team_selections (id, team_id, gameweek, formation, captain_id, vice_captain_id,
    starter_ids, bench_ids, is_finalized, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (team_id, gameweek) DO UPDATE SET
    formation = EXCLUDED.formation,
    captain_id = EXCLUDED.captain_id,
    vice_captain_id = EXCLUDED.vice_captain_id,
    starter_ids = EXCLUDED.starter_ids,
    bench_ids = EXCLUDED.bench_ids,
    is_finalized = EXCLUDED.is_finalized,
    updated_at = EXCLUDED.updated_at`,
		selection.ID, selection.TeamID, selection.Gameweek, selection.Formation,
		selection.CaptainID, selection.ViceCaptainID,
		pq.StringArray(selection.StarterIDs), pq.StringArray(selection.BenchIDs),
		selection.IsFinalized, selection.CreatedAt, selection.UpdatedAt)
	if err != nil {
		return crerr.Wrapf(err, "upsert selection team_id=%s gameweek=%d", selection.TeamID, selection.Gameweek)
	}
	return nil
}

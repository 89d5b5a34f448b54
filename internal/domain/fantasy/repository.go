package fantasy

import "context"

// TeamRepository persists fantasy squads.
type TeamRepository interface {
	GetByID(ctx context.Context, id string) (FantasyTeam, bool, error)
	Upsert(ctx context.Context, team FantasyTeam) error
}

// PlayerRepository persists squad memberships. ListByRealPlayer drives the
// scoring fan-out: every squad holding the player gets visited.
type PlayerRepository interface {
	ListByRealPlayer(ctx context.Context, playerID string) ([]FantasyPlayer, error)
	ListByTeam(ctx context.Context, teamID string) ([]FantasyPlayer, error)
	Upsert(ctx context.Context, item FantasyPlayer) error
	Delete(ctx context.Context, id string) error
}

// SelectionRepository persists gameweek lineups.
type SelectionRepository interface {
	GetByTeamAndGameweek(ctx context.Context, teamID string, gameweek int) (TeamSelection, bool, error)
	Upsert(ctx context.Context, selection TeamSelection) error
}

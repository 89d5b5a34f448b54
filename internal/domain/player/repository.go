package player

import "context"

// Repository is the read surface the engine needs over the real player pool.
type Repository interface {
	GetByID(ctx context.Context, id string) (Player, bool, error)
	GetByIDs(ctx context.Context, ids []string) ([]Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
}

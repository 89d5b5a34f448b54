package performance

import "context"

type Repository interface {
	GetByPlayerAndFixture(ctx context.Context, playerID, fixtureID string) (Performance, bool, error)
	ListByFixture(ctx context.Context, fixtureID string) ([]Performance, error)
	ListByGameweek(ctx context.Context, gameweek int) ([]Performance, error)
	Upsert(ctx context.Context, item Performance) error
	DeleteByFixture(ctx context.Context, fixtureID string) error
}

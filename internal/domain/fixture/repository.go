package fixture

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Fixture, bool, error)
	ListByGameweek(ctx context.Context, gameweek int) ([]Fixture, error)
	Upsert(ctx context.Context, item Fixture) error
}

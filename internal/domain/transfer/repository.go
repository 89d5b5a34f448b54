package transfer

import "context"

type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]PlayerTransfer, error)
	Record(ctx context.Context, items []PlayerTransfer) error
}

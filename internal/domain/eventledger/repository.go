package eventledger

import (
	"context"
	"errors"
)

// ErrAlreadyProcessed reports that another writer recorded the key first.
// A MarkProcessed caller must treat it as a duplicate and abort its unit of
// work so none of the event's side effects land twice.
var ErrAlreadyProcessed = errors.New("event already processed")

// Repository persists the applied-event ledger. MarkProcessed must run in the
// same unit of work as the performance mutation it guards, and must return
// ErrAlreadyProcessed instead of silently keeping an existing row.
type Repository interface {
	IsProcessed(ctx context.Context, fixtureID, key string) (bool, error)
	MarkProcessed(ctx context.Context, event ProcessedEvent) error
	DeleteByFixture(ctx context.Context, fixtureID string) error
}

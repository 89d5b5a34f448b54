package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/eventledger"
)

type EventLedgerRepository struct {
	db DBTX
}

func NewEventLedgerRepository(db DBTX) *EventLedgerRepository {
	return &EventLedgerRepository{db: db}
}

func (r *EventLedgerRepository) IsProcessed(ctx context.Context, fixtureID, key string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM processed_events WHERE key = $1 AND fixture_id = $2)`,
		key, fixtureID)
	if err != nil {
		return false, crerr.Wrapf(err, "check processed event key=%s", key)
	}
	return exists, nil
}

func (r *EventLedgerRepository) MarkProcessed(ctx context.Context, event eventledger.ProcessedEvent) error {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO processed_events (key, fixture_id, event_type, player_id, minute, recorded_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (key) DO NOTHING`,
		event.Key, event.FixtureID, string(event.EventType), event.PlayerID, event.Minute, event.RecordedAt)
	if err != nil {
		return crerr.Wrapf(err, "mark processed event key=%s", event.Key)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return crerr.Wrapf(err, "mark processed event key=%s", event.Key)
	}
	if affected == 0 {
		// A concurrent transaction recorded the key between our ledger check
		// and this insert. Abort so the caller rolls back its side effects.
		return crerr.Wrapf(eventledger.ErrAlreadyProcessed, "key=%s", event.Key)
	}
	return nil
}

func (r *EventLedgerRepository) DeleteByFixture(ctx context.Context, fixtureID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM processed_events WHERE fixture_id = $1`, fixtureID); err != nil {
		return crerr.Wrapf(err, "delete processed events fixture_id=%s", fixtureID)
	}
	return nil
}

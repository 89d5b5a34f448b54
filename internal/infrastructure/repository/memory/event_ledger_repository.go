package memory

import (
	"context"
	"sync"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/eventledger"
)

type EventLedgerRepository struct {
	mu   sync.RWMutex
	rows map[string]eventledger.ProcessedEvent
}

func NewEventLedgerRepository() *EventLedgerRepository {
	return &EventLedgerRepository{rows: make(map[string]eventledger.ProcessedEvent)}
}

func (r *EventLedgerRepository) IsProcessed(_ context.Context, fixtureID, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[key]
	return ok && row.FixtureID == fixtureID, nil
}

func (r *EventLedgerRepository) MarkProcessed(_ context.Context, event eventledger.ProcessedEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[event.Key]; ok {
		return eventledger.ErrAlreadyProcessed
	}
	r.rows[event.Key] = event
	return nil
}

func (r *EventLedgerRepository) DeleteByFixture(_ context.Context, fixtureID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, row := range r.rows {
		if row.FixtureID == fixtureID {
			delete(r.rows, key)
		}
	}
	return nil
}

func (r *EventLedgerRepository) snapshot() func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := make(map[string]eventledger.ProcessedEvent, len(r.rows))
	for key, row := range r.rows {
		saved[key] = row
	}
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.rows = saved
	}
}

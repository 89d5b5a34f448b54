package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/performance"
)

type PerformanceRepository struct {
	mu sync.RWMutex
	// keyed by "playerID/fixtureID"; exactly one row per pair
	rows map[string]performance.Performance
}

func NewPerformanceRepository() *PerformanceRepository {
	return &PerformanceRepository{rows: make(map[string]performance.Performance)}
}

func perfKey(playerID, fixtureID string) string {
	return playerID + "/" + fixtureID
}

func (r *PerformanceRepository) GetByPlayerAndFixture(_ context.Context, playerID, fixtureID string) (performance.Performance, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[perfKey(playerID, fixtureID)]
	return row, ok, nil
}

func (r *PerformanceRepository) ListByFixture(_ context.Context, fixtureID string) ([]performance.Performance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []performance.Performance
	for _, row := range r.rows {
		if row.FixtureID == fixtureID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}

func (r *PerformanceRepository) ListByGameweek(_ context.Context, gameweek int) ([]performance.Performance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []performance.Performance
	for _, row := range r.rows {
		if row.Gameweek == gameweek {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}

func (r *PerformanceRepository) Upsert(_ context.Context, item performance.Performance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows[perfKey(item.PlayerID, item.FixtureID)] = item
	return nil
}

func (r *PerformanceRepository) DeleteByFixture(_ context.Context, fixtureID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, row := range r.rows {
		if row.FixtureID == fixtureID {
			delete(r.rows, key)
		}
	}
	return nil
}

func (r *PerformanceRepository) snapshot() func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := make(map[string]performance.Performance, len(r.rows))
	for key, row := range r.rows {
		saved[key] = row
	}
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.rows = saved
	}
}

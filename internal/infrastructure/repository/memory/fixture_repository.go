package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fixture"
)

type FixtureRepository struct {
	mu   sync.RWMutex
	byID map[string]fixture.Fixture
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	repo := &FixtureRepository{byID: make(map[string]fixture.Fixture, len(fixtures))}
	for _, fx := range fixtures {
		repo.byID[fx.ID] = fx
	}
	return repo
}

func (r *FixtureRepository) GetByID(_ context.Context, id string) (fixture.Fixture, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fx, ok := r.byID[id]
	return fx, ok, nil
}

func (r *FixtureRepository) ListByGameweek(_ context.Context, gameweek int) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []fixture.Fixture
	for _, fx := range r.byID {
		if fx.Gameweek == gameweek {
			out = append(out, fx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *FixtureRepository) Upsert(_ context.Context, fx fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[fx.ID] = fx
	return nil
}

func (r *FixtureRepository) snapshot() func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := make(map[string]fixture.Fixture, len(r.byID))
	for id, fx := range r.byID {
		saved[id] = fx
	}
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.byID = saved
	}
}

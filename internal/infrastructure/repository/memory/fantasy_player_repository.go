package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fantasy"
)

type FantasyPlayerRepository struct {
	mu   sync.RWMutex
	byID map[string]fantasy.FantasyPlayer
}

func NewFantasyPlayerRepository(members []fantasy.FantasyPlayer) *FantasyPlayerRepository {
	repo := &FantasyPlayerRepository{byID: make(map[string]fantasy.FantasyPlayer, len(members))}
	for _, member := range members {
		repo.byID[member.ID] = member
	}
	return repo
}

func (r *FantasyPlayerRepository) ListByRealPlayer(_ context.Context, playerID string) ([]fantasy.FantasyPlayer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []fantasy.FantasyPlayer
	for _, member := range r.byID {
		if member.PlayerID == playerID {
			out = append(out, member)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out, nil
}

func (r *FantasyPlayerRepository) ListByTeam(_ context.Context, teamID string) ([]fantasy.FantasyPlayer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []fantasy.FantasyPlayer
	for _, member := range r.byID {
		if member.TeamID == teamID {
			out = append(out, member)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}

func (r *FantasyPlayerRepository) Upsert(_ context.Context, item fantasy.FantasyPlayer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[item.ID] = item
	return nil
}

func (r *FantasyPlayerRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *FantasyPlayerRepository) snapshot() func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := make(map[string]fantasy.FantasyPlayer, len(r.byID))
	for id, member := range r.byID {
		saved[id] = member
	}
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.byID = saved
	}
}

package memory

import (
	"context"
	"sync"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fantasy"
)

type FantasyTeamRepository struct {
	mu   sync.RWMutex
	byID map[string]fantasy.FantasyTeam
}

func NewFantasyTeamRepository(teams []fantasy.FantasyTeam) *FantasyTeamRepository {
	repo := &FantasyTeamRepository{byID: make(map[string]fantasy.FantasyTeam, len(teams))}
	for _, team := range teams {
		repo.byID[team.ID] = team
	}
	return repo
}

func (r *FantasyTeamRepository) GetByID(_ context.Context, id string) (fantasy.FantasyTeam, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	team, ok := r.byID[id]
	return team, ok, nil
}

func (r *FantasyTeamRepository) Upsert(_ context.Context, team fantasy.FantasyTeam) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[team.ID] = team
	return nil
}

func (r *FantasyTeamRepository) snapshot() func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := make(map[string]fantasy.FantasyTeam, len(r.byID))
	for id, team := range r.byID {
		saved[id] = team
	}
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.byID = saved
	}
}

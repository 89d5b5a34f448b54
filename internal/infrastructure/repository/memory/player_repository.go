package memory

import (
	"context"
	"sync"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/player"
)

// PlayerRepository holds the real player pool. The engine only reads it;
// pool maintenance happens out of band.
type PlayerRepository struct {
	mu      sync.RWMutex
	byID    map[string]player.Player
	byTeam  map[string][]string
	ordered []string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	repo := &PlayerRepository{
		byID:   make(map[string]player.Player, len(players)),
		byTeam: make(map[string][]string),
	}
	for _, pl := range players {
		repo.byID[pl.ID] = pl
		repo.byTeam[pl.TeamID] = append(repo.byTeam[pl.TeamID], pl.ID)
		repo.ordered = append(repo.ordered, pl.ID)
	}
	return repo
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pl, ok := r.byID[id]
	return pl, ok, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, ids []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		pl, ok := r.byID[id]
		if !ok {
			continue
		}
		out = append(out, pl)
	}
	return out, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byTeam[teamID]
	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	return out, nil
}

package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fantasy"
)

type TeamSelectionRepository struct {
	mu   sync.RWMutex
	rows map[string]fantasy.TeamSelection
}

func NewTeamSelectionRepository(selections []fantasy.TeamSelection) *TeamSelectionRepository {
	repo := &TeamSelectionRepository{rows: make(map[string]fantasy.TeamSelection, len(selections))}
	for _, selection := range selections {
		repo.rows[selectionKey(selection.TeamID, selection.Gameweek)] = cloneSelection(selection)
	}
	return repo
}

func selectionKey(teamID string, gameweek int) string {
	return fmt.Sprintf("%s/%d", teamID, gameweek)
}

func cloneSelection(selection fantasy.TeamSelection) fantasy.TeamSelection {
	selection.StarterIDs = append([]string(nil), selection.StarterIDs...)
	selection.BenchIDs = append([]string(nil), selection.BenchIDs...)
	return selection
}

func (r *TeamSelectionRepository) GetByTeamAndGameweek(_ context.Context, teamID string, gameweek int) (fantasy.TeamSelection, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	selection, ok := r.rows[selectionKey(teamID, gameweek)]
	if !ok {
		return fantasy.TeamSelection{}, false, nil
	}
	return cloneSelection(selection), true, nil
}

func (r *TeamSelectionRepository) Upsert(_ context.Context, selection fantasy.TeamSelection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows[selectionKey(selection.TeamID, selection.Gameweek)] = cloneSelection(selection)
	return nil
}

func (r *TeamSelectionRepository) snapshot() func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := make(map[string]fantasy.TeamSelection, len(r.rows))
	for key, selection := range r.rows {
		saved[key] = cloneSelection(selection)
	}
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.rows = saved
	}
}

package memory

import (
	"context"
	"sync"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/transfer"
)

type TransferRepository struct {
	mu   sync.RWMutex
	rows []transfer.PlayerTransfer
}

func NewTransferRepository() *TransferRepository {
	return &TransferRepository{}
}

func (r *TransferRepository) ListByTeam(_ context.Context, teamID string) ([]transfer.PlayerTransfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []transfer.PlayerTransfer
	for _, row := range r.rows {
		if row.TeamID == teamID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *TransferRepository) Record(_ context.Context, items []transfer.PlayerTransfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = append(r.rows, items...)
	return nil
}

func (r *TransferRepository) snapshot() func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := append([]transfer.PlayerTransfer(nil), r.rows...)
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.rows = saved
	}
}

package transfer

import "time"

// PlayerTransfer records one out-for-in swap charged against a squad during
// settlement. Unmatched removals or additions (differing counts) produce
// entries with an empty counterpart id.
type PlayerTransfer struct {
	ID          string
	TeamID      string
	PlayerInID  string
	PlayerOutID string
	Gameweek    int
	PointCost   int
	CreatedAt   time.Time
}

package fantasy

import (
	"fmt"
	"time"
)

// FantasyTeam is a manager's persistent squad: roster budget, transfer
// allowances and the running point total maintained by the propagator.
type FantasyTeam struct {
	ID             string
	UserID         string
	Name           string
	Budget         int64
	Formation      string
	FreeTransfers  int
	TransferBudget int
	TotalPoints    int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (t FantasyTeam) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("fantasy team id is required")
	}
	if t.UserID == "" {
		return fmt.Errorf("fantasy team user id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("fantasy team name is required")
	}
	if t.Budget <= 0 {
		return fmt.Errorf("fantasy team budget must be greater than zero")
	}
	if _, ok := StarterShapes[t.Formation]; !ok {
		return fmt.Errorf("unknown formation: %s", t.Formation)
	}

	return nil
}

// FantasyPlayer is one real player's membership in a fantasy squad.
type FantasyPlayer struct {
	ID            string
	TeamID        string
	PlayerID      string
	IsStarter     bool
	IsCaptain     bool
	IsViceCaptain bool
	PurchasePrice int64
	CurrentValue  int64
	TotalPoints   int
	GameweekAdded int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TeamSelection is a squad's lineup for one gameweek. Only a finalized
// selection is visible to scoring; drafts never receive points.
type TeamSelection struct {
	ID            string
	TeamID        string
	Gameweek      int
	Formation     string
	CaptainID     string
	ViceCaptainID string
	StarterIDs    []string
	BenchIDs      []string
	IsFinalized   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsStarter reports whether the given real player id is among the starters.
func (s TeamSelection) IsStarter(playerID string) bool {
	for _, id := range s.StarterIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

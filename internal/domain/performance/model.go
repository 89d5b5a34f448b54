package performance

import (
	"fmt"
	"time"
)

// Counters holds the raw stat tallies of one performance. All fields except
// MinutesPlayed are additive: they only grow through event application.
// MinutesPlayed may be overwritten by substitution corrections.
type Counters struct {
	MinutesPlayed   int
	Goals           int
	Assists         int
	CleanSheets     int
	Saves           int
	OwnGoals        int
	PenaltiesSaved  int
	PenaltiesMissed int
	YellowCards     int
	RedCards        int
}

// AdditiveDecreased reports whether any additive counter shrank between old
// and new. A shrinking counter means the inbound event is corrupt, not a
// correction: corrections arrive as additional increments.
func (c Counters) AdditiveDecreased(old Counters) bool {
	return c.Goals < old.Goals ||
		c.Assists < old.Assists ||
		c.CleanSheets < old.CleanSheets ||
		c.Saves < old.Saves ||
		c.OwnGoals < old.OwnGoals ||
		c.PenaltiesSaved < old.PenaltiesSaved ||
		c.PenaltiesMissed < old.PenaltiesMissed ||
		c.YellowCards < old.YellowCards ||
		c.RedCards < old.RedCards
}

// Performance is the canonical stat record for one real player in one
// fixture. Exactly one row exists per (player, fixture) pair.
type Performance struct {
	ID            string
	PlayerID      string
	TeamID        string
	FixtureID     string
	Gameweek      int
	Counters      Counters
	FantasyPoints int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p Performance) Validate() error {
	if p.PlayerID == "" {
		return fmt.Errorf("performance player id is required")
	}
	if p.FixtureID == "" {
		return fmt.Errorf("performance fixture id is required")
	}
	if p.Gameweek <= 0 {
		return fmt.Errorf("performance gameweek must be greater than zero")
	}

	return nil
}

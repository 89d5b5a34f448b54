package fixture

import (
	"strings"
	"time"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
	StatusPostponed = "POSTPONED"
)

// Fixture represents one scheduled match between two real teams.
type Fixture struct {
	ID         string
	Gameweek   int
	HomeTeamID string
	AwayTeamID string
	HomeTeam   string
	AwayTeam   string
	KickoffAt  time.Time
	HomeScore  *int
	AwayScore  *int
	Status     string
	FinishedAt *time.Time
}

// GameweekContext carries the gameweek resolved once per event batch so the
// scoring pipeline never re-derives "current gameweek" mid-flight.
type GameweekContext struct {
	Gameweek  int
	FixtureID string
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsLiveStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusLive, "IN_PLAY", "HT", "1H", "2H", "ET":
		return true
	default:
		return false
	}
}

func IsCompletedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusCompleted, "FINISHED", "FT", "AET", "PEN":
		return true
	default:
		return false
	}
}

func IsCancelledLikeStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusCancelled, StatusPostponed, "ABANDONED":
		return true
	default:
		return false
	}
}

// ShutOutTeamIDs returns the team ids that conceded zero goals. Only
// meaningful once the fixture has completed and both scores are known.
func (f Fixture) ShutOutTeamIDs() []string {
	if f.HomeScore == nil || f.AwayScore == nil {
		return nil
	}

	var out []string
	if *f.AwayScore == 0 {
		out = append(out, f.HomeTeamID)
	}
	if *f.HomeScore == 0 {
		out = append(out, f.AwayTeamID)
	}
	return out
}

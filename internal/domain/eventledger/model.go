package eventledger

import (
	"fmt"
	"strings"
	"time"
)

// EventType tags the kind of match event a ledger entry guards.
type EventType string

const (
	EventGoal          EventType = "goal"
	EventAssist        EventType = "assist"
	EventYellowCard    EventType = "yellow_card"
	EventRedCard       EventType = "red_card"
	EventSubstitution  EventType = "substitution"
	EventCleanSheet    EventType = "clean_sheet"
	EventOwnGoal       EventType = "own_goal"
	EventSave          EventType = "save"
	EventPenaltySaved  EventType = "penalty_saved"
	EventPenaltyMissed EventType = "penalty_missed"
	EventAppearance    EventType = "appearance"
)

// Key derives the deterministic idempotency key for one discrete event.
// The disambiguator separates same-minute same-player events of different
// sub-kind; clean sheets pass "team_<id>" since they are a team-level fact.
func Key(eventType EventType, fixtureID, playerID string, minute int, disambiguator string) string {
	var b strings.Builder
	b.WriteString(string(eventType))
	b.WriteByte(':')
	b.WriteString(fixtureID)
	b.WriteByte(':')
	b.WriteString(playerID)
	b.WriteByte(':')
	fmt.Fprintf(&b, "%d", minute)
	if disambiguator != "" {
		b.WriteByte(':')
		b.WriteString(disambiguator)
	}
	return b.String()
}

// ProcessedEvent records one applied event. Presence of a key is the
// at-most-once guard; rows are immutable and only removed by fixture reset.
type ProcessedEvent struct {
	Key        string
	FixtureID  string
	EventType  EventType
	PlayerID   string
	Minute     int
	RecordedAt time.Time
}

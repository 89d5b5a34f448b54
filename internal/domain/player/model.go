package player

import "fmt"

// Position represents football position categories used by the scoring rules.
type Position string

const (
	PositionGoalkeeper Position = "GKP"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Player is a real-world athlete whose performances feed fantasy scoring.
// Identity resolution happens upstream; the engine only sees resolved records.
type Player struct {
	ID           string
	TeamID       string
	Name         string
	Position     Position
	CurrentValue int64
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.CurrentValue <= 0 {
		return fmt.Errorf("player value must be greater than zero")
	}

	return nil
}

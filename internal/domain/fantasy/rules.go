package fantasy

import (
	"errors"
	"fmt"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/player"
)

var (
	ErrUnknownFormation           = errors.New("unknown formation")
	ErrInvalidSquadSize           = errors.New("invalid squad size")
	ErrInvalidStarterShape        = errors.New("starter counts do not match formation")
	ErrInvalidBenchShape          = errors.New("bench counts do not match formation")
	ErrExceededBudget             = errors.New("budget cap exceeded")
	ErrExceededTeamLimit          = errors.New("max players from same real team exceeded")
	ErrDuplicatePlayerInSquad     = errors.New("duplicate player in squad")
	ErrUnknownPlayerPosition      = errors.New("unknown player position")
	ErrInsufficientTransferBudget = errors.New("transfer cost exceeds transfer budget")
)

// PositionShape counts players per position for one side of a lineup.
type PositionShape struct {
	GKP int
	DEF int
	MID int
	FWD int
}

func (s PositionShape) total() int {
	return s.GKP + s.DEF + s.MID + s.FWD
}

// StarterShapes maps each legal formation to its required starting XI counts.
var StarterShapes = map[string]PositionShape{
	"3-4-3": {GKP: 1, DEF: 3, MID: 4, FWD: 3},
	"3-5-2": {GKP: 1, DEF: 3, MID: 5, FWD: 2},
	"4-4-2": {GKP: 1, DEF: 4, MID: 4, FWD: 2},
	"4-3-3": {GKP: 1, DEF: 4, MID: 3, FWD: 3},
	"5-3-2": {GKP: 1, DEF: 5, MID: 3, FWD: 2},
	"5-4-1": {GKP: 1, DEF: 5, MID: 4, FWD: 1},
	"5-2-3": {GKP: 1, DEF: 5, MID: 2, FWD: 3},
}

// BenchShapes is the fixed bench complement per formation. Each row sums with
// its starter row to 15 players holding exactly 2 goalkeepers.
var BenchShapes = map[string]PositionShape{
	"3-4-3": {GKP: 1, DEF: 2, MID: 1, FWD: 0},
	"3-5-2": {GKP: 1, DEF: 2, MID: 0, FWD: 1},
	"4-4-2": {GKP: 1, DEF: 1, MID: 1, FWD: 1},
	"4-3-3": {GKP: 1, DEF: 1, MID: 2, FWD: 0},
	"5-3-2": {GKP: 1, DEF: 0, MID: 2, FWD: 1},
	"5-4-1": {GKP: 1, DEF: 0, MID: 1, FWD: 2},
	"5-2-3": {GKP: 1, DEF: 0, MID: 3, FWD: 0},
}

const (
	SquadSize         = 15
	StarterSize       = 11
	MaxPlayersPerTeam = 3
	TransferPointCost = 4
)

// RosterEntry is one candidate squad member with the attributes the
// composition rules need. Callers resolve these from the player pool.
type RosterEntry struct {
	PlayerID   string
	RealTeamID string
	Position   player.Position
	Value      int64
}

// ValidateComposition checks a full proposed squad against the formation,
// bench, size, team-limit and budget rules, in that order, failing fast with
// the observed vs required counts. It deliberately takes the whole proposed
// state: a formation change moves every positional requirement at once, so
// diff-based validation cannot be trusted.
func ValidateComposition(formation string, starters, bench []RosterEntry, budget int64) error {
	starterShape, ok := StarterShapes[formation]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFormation, formation)
	}
	benchShape := BenchShapes[formation]

	seen := make(map[string]struct{}, len(starters)+len(bench))
	teamCounter := make(map[string]int)
	var totalValue int64

	checkEntry := func(entry RosterEntry) error {
		if entry.PlayerID == "" {
			return fmt.Errorf("player id is required")
		}
		if _, exists := seen[entry.PlayerID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayerInSquad, entry.PlayerID)
		}
		seen[entry.PlayerID] = struct{}{}

		if _, ok := player.AllPositions[entry.Position]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownPlayerPosition, entry.Position)
		}
		if entry.RealTeamID == "" {
			return fmt.Errorf("team id is required for player %s", entry.PlayerID)
		}

		teamCounter[entry.RealTeamID]++
		totalValue += entry.Value
		return nil
	}

	starterCounts := PositionShape{}
	for _, entry := range starters {
		if err := checkEntry(entry); err != nil {
			return err
		}
		addToShape(&starterCounts, entry.Position)
	}
	if starterCounts != starterShape {
		return fmt.Errorf(
			"%w: formation %s requires GKP=%d DEF=%d MID=%d FWD=%d starters, got GKP=%d DEF=%d MID=%d FWD=%d",
			ErrInvalidStarterShape, formation,
			starterShape.GKP, starterShape.DEF, starterShape.MID, starterShape.FWD,
			starterCounts.GKP, starterCounts.DEF, starterCounts.MID, starterCounts.FWD,
		)
	}

	benchCounts := PositionShape{}
	for _, entry := range bench {
		if err := checkEntry(entry); err != nil {
			return err
		}
		addToShape(&benchCounts, entry.Position)
	}
	if benchCounts != benchShape {
		return fmt.Errorf(
			"%w: formation %s requires GKP=%d DEF=%d MID=%d FWD=%d on the bench, got GKP=%d DEF=%d MID=%d FWD=%d",
			ErrInvalidBenchShape, formation,
			benchShape.GKP, benchShape.DEF, benchShape.MID, benchShape.FWD,
			benchCounts.GKP, benchCounts.DEF, benchCounts.MID, benchCounts.FWD,
		)
	}

	if total := starterCounts.total() + benchCounts.total(); total != SquadSize {
		return fmt.Errorf("%w: expected %d, got %d", ErrInvalidSquadSize, SquadSize, total)
	}

	for teamID, count := range teamCounter {
		if count > MaxPlayersPerTeam {
			return fmt.Errorf("%w: team=%s count=%d max=%d", ErrExceededTeamLimit, teamID, count, MaxPlayersPerTeam)
		}
	}

	if totalValue > budget {
		return fmt.Errorf("%w: cap=%d used=%d", ErrExceededBudget, budget, totalValue)
	}

	return nil
}

func addToShape(shape *PositionShape, pos player.Position) {
	switch pos {
	case player.PositionGoalkeeper:
		shape.GKP++
	case player.PositionDefender:
		shape.DEF++
	case player.PositionMidfielder:
		shape.MID++
	case player.PositionForward:
		shape.FWD++
	}
}

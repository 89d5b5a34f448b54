package points

import (
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/performance"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/player"
)

// Scoring weights. Goal value depends on position; clean sheets only pay out
// for goalkeepers, defenders and (reduced) midfielders.
const (
	appearancePoint  = 1
	sixtyMinuteBonus = 1
	assistPoints     = 3
	penaltySaved     = 5
	penaltyMissed    = -2
	ownGoal          = -2
	yellowCard       = -1
	redCard          = -3
	savesPerPoint    = 3
)

func goalPoints(pos player.Position) int {
	switch pos {
	case player.PositionGoalkeeper, player.PositionDefender:
		return 6
	case player.PositionMidfielder:
		return 5
	default:
		return 4
	}
}

func cleanSheetPoints(pos player.Position) int {
	switch pos {
	case player.PositionGoalkeeper, player.PositionDefender:
		return 4
	case player.PositionMidfielder:
		return 1
	default:
		return 0
	}
}

// Full computes the point total of a performance from scratch. The result is
// doubled when the performance belongs to an acting captain.
func Full(c performance.Counters, pos player.Position, isCaptain bool) int {
	points := 0

	if c.MinutesPlayed > 0 {
		points += appearancePoint
	}
	if c.MinutesPlayed >= 60 {
		points += sixtyMinuteBonus
	}

	points += c.Goals * goalPoints(pos)
	points += c.Assists * assistPoints
	points += c.CleanSheets * cleanSheetPoints(pos)

	if pos == player.PositionGoalkeeper {
		points += c.Saves / savesPerPoint
	}

	points += c.PenaltiesSaved * penaltySaved
	points += c.PenaltiesMissed * penaltyMissed
	points += c.OwnGoals * ownGoal
	points += c.YellowCards * yellowCard
	points += c.RedCards * redCard

	if isCaptain {
		points *= 2
	}
	return points
}

// Incremental computes the marginal contribution of the change from old to
// new, so dependent squads receive only the delta instead of a re-applied
// total. It always equals Full(new) - Full(old) for the same position and
// captain flag.
func Incremental(new, old performance.Counters, pos player.Position, isCaptain bool) int {
	points := 0

	if old.MinutesPlayed == 0 && new.MinutesPlayed > 0 {
		points += appearancePoint
	}
	if old.MinutesPlayed > 0 && new.MinutesPlayed == 0 {
		points -= appearancePoint
	}
	if old.MinutesPlayed < 60 && new.MinutesPlayed >= 60 {
		points += sixtyMinuteBonus
	}
	if old.MinutesPlayed >= 60 && new.MinutesPlayed < 60 {
		points -= sixtyMinuteBonus
	}

	points += (new.Goals - old.Goals) * goalPoints(pos)
	points += (new.Assists - old.Assists) * assistPoints
	points += (new.CleanSheets - old.CleanSheets) * cleanSheetPoints(pos)

	if pos == player.PositionGoalkeeper {
		points += new.Saves/savesPerPoint - old.Saves/savesPerPoint
	}

	points += (new.PenaltiesSaved - old.PenaltiesSaved) * penaltySaved
	points += (new.PenaltiesMissed - old.PenaltiesMissed) * penaltyMissed
	points += (new.OwnGoals - old.OwnGoals) * ownGoal
	points += (new.YellowCards - old.YellowCards) * yellowCard
	points += (new.RedCards - old.RedCards) * redCard

	if isCaptain {
		points *= 2
	}
	return points
}

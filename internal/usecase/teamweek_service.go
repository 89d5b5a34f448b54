package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fantasy"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/performance"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/player"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/cache"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/logging"
)

// TeamOfTheWeekService assembles the highest-scoring legal XI of a gameweek.
type TeamOfTheWeekService struct {
	performances performance.Repository
	players      player.Repository
	cache        *cache.Store
	logger       *logging.Logger
}

func NewTeamOfTheWeekService(
	performances performance.Repository,
	players player.Repository,
	store *cache.Store,
	logger *logging.Logger,
) *TeamOfTheWeekService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamOfTheWeekService{
		performances: performances,
		players:      players,
		cache:        store,
		logger:       logger,
	}
}

// TeamOfTheWeekEntry is one selected player with their gameweek points
// summed across fixtures.
type TeamOfTheWeekEntry struct {
	PlayerID   string          `json:"player_id"`
	PlayerName string          `json:"player_name"`
	TeamID     string          `json:"team_id"`
	Position   player.Position `json:"position"`
	Points     int             `json:"points"`
}

// TeamOfTheWeek is the best legal XI: exactly one goalkeeper, 3-5 defenders,
// 2-5 midfielders, 1-3 forwards, at most three players per real team.
// Complete is false when the gameweek lacks enough scored performances to
// fill eleven slots.
type TeamOfTheWeek struct {
	Gameweek    int                  `json:"gameweek"`
	Entries     []TeamOfTheWeekEntry `json:"entries"`
	TotalPoints int                  `json:"total_points"`
	Complete    bool                 `json:"complete"`
}

// Positional bounds of a legal XI.
var totwMinimums = map[player.Position]int{
	player.PositionGoalkeeper: 1,
	player.PositionDefender:   3,
	player.PositionMidfielder: 2,
	player.PositionForward:    1,
}

var totwMaximums = map[player.Position]int{
	player.PositionGoalkeeper: 1,
	player.PositionDefender:   5,
	player.PositionMidfielder: 5,
	player.PositionForward:    3,
}

func (s *TeamOfTheWeekService) BestXI(ctx context.Context, gameweek int) (TeamOfTheWeek, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamOfTheWeekService.BestXI")
	defer span.End()

	if gameweek <= 0 {
		return TeamOfTheWeek{}, fmt.Errorf("%w: gameweek must be positive", ErrInvalidInput)
	}

	if s.cache == nil {
		return s.bestXI(ctx, gameweek)
	}

	value, err := s.cache.GetOrLoad(ctx, fmt.Sprintf("totw:%d", gameweek), func(ctx context.Context) (any, error) {
		return s.bestXI(ctx, gameweek)
	})
	if err != nil {
		return TeamOfTheWeek{}, err
	}
	totw, _ := value.(TeamOfTheWeek)
	return totw, nil
}

func (s *TeamOfTheWeekService) bestXI(ctx context.Context, gameweek int) (TeamOfTheWeek, error) {
	perfs, err := s.performances.ListByGameweek(ctx, gameweek)
	if err != nil {
		return TeamOfTheWeek{}, fmt.Errorf("list gameweek performances: %w", err)
	}

	// Sum per player: double gameweeks give a player two fixtures.
	totals := make(map[string]int)
	for _, perf := range perfs {
		totals[perf.PlayerID] += perf.FantasyPoints
	}

	candidates := make([]TeamOfTheWeekEntry, 0, len(totals))
	for playerID, total := range totals {
		pl, ok, err := s.players.GetByID(ctx, playerID)
		if err != nil {
			return TeamOfTheWeek{}, fmt.Errorf("look up player %s: %w", playerID, err)
		}
		if !ok {
			continue
		}
		candidates = append(candidates, TeamOfTheWeekEntry{
			PlayerID:   playerID,
			PlayerName: pl.Name,
			TeamID:     pl.TeamID,
			Position:   pl.Position,
			Points:     total,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Points != candidates[j].Points {
			return candidates[i].Points > candidates[j].Points
		}
		return candidates[i].PlayerID < candidates[j].PlayerID
	})

	totw := TeamOfTheWeek{Gameweek: gameweek}
	picked := make(map[string]struct{})
	posCount := make(map[player.Position]int)
	teamCount := make(map[string]int)

	take := func(entry TeamOfTheWeekEntry) {
		picked[entry.PlayerID] = struct{}{}
		posCount[entry.Position]++
		teamCount[entry.TeamID]++
		totw.Entries = append(totw.Entries, entry)
		totw.TotalPoints += entry.Points
	}

	// First pass fills the positional minimums; second pass tops up to
	// eleven with the best remaining players inside the maximums. The team
	// cap applies throughout.
	for _, entry := range candidates {
		if posCount[entry.Position] >= totwMinimums[entry.Position] {
			continue
		}
		if teamCount[entry.TeamID] >= fantasy.MaxPlayersPerTeam {
			continue
		}
		take(entry)
	}
	for _, entry := range candidates {
		if len(totw.Entries) >= 11 {
			break
		}
		if _, done := picked[entry.PlayerID]; done {
			continue
		}
		if posCount[entry.Position] >= totwMaximums[entry.Position] {
			continue
		}
		if teamCount[entry.TeamID] >= fantasy.MaxPlayersPerTeam {
			continue
		}
		take(entry)
	}

	sort.SliceStable(totw.Entries, func(i, j int) bool {
		oi, oj := positionOrder(totw.Entries[i].Position), positionOrder(totw.Entries[j].Position)
		if oi != oj {
			return oi < oj
		}
		return totw.Entries[i].Points > totw.Entries[j].Points
	})

	totw.Complete = len(totw.Entries) == 11
	return totw, nil
}

func positionOrder(pos player.Position) int {
	switch pos {
	case player.PositionGoalkeeper:
		return 0
	case player.PositionDefender:
		return 1
	case player.PositionMidfielder:
		return 2
	default:
		return 3
	}
}

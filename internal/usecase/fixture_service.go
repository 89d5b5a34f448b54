package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fixture"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/performance"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/player"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/cache"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/logging"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/resilience"
)

// FixtureService handles fixture lifecycle settlement: seeding minutes when
// lineups publish, awarding clean sheets on completion and unwinding a
// fixture's scoring when a result is voided.
type FixtureService struct {
	uow          UnitOfWork
	fixtures     fixture.Repository
	performances performance.Repository
	players      player.Repository
	events       *EventService
	propagator   *propagator
	flight       resilience.SingleFlight
	logger       *logging.Logger
	now          func() time.Time
}

func NewFixtureService(
	uow UnitOfWork,
	fixtures fixture.Repository,
	performances performance.Repository,
	players player.Repository,
	events *EventService,
	store *cache.Store,
	logger *logging.Logger,
) *FixtureService {
	if logger == nil {
		logger = logging.Default()
	}
	return &FixtureService{
		uow:          uow,
		fixtures:     fixtures,
		performances: performances,
		players:      players,
		events:       events,
		propagator:   newPropagator(store, logger),
		logger:       logger,
		now:          time.Now,
	}
}

// LineupEntry names one player in a published teamsheet.
type LineupEntry struct {
	PlayerID  string
	TeamID    string
	IsStarter bool
}

// SeedLineup creates performance rows when a fixture's teamsheets publish:
// starters open on 90 minutes, bench players on zero. Later substitutions
// correct the starters' minutes downward.
func (s *FixtureService) SeedLineup(ctx context.Context, gw fixture.GameweekContext, entries []LineupEntry) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.SeedLineup")
	defer span.End()

	items := make([]AppearanceItem, 0, len(entries))
	for _, entry := range entries {
		minutes := 0
		if entry.IsStarter {
			minutes = 90
		}
		items = append(items, AppearanceItem{
			PlayerID: entry.PlayerID,
			TeamID:   entry.TeamID,
			Minutes:  minutes,
		})
	}

	return s.events.ApplyAppearances(ctx, gw, items)
}

// CompleteFixture stores the final result and awards clean sheets to every
// goalkeeper, defender and midfielder who played for a side that conceded
// nothing. Duplicate completion notifications for the same fixture share one
// in-flight pass, and the per-player ledger keys make replays no-ops anyway.
func (s *FixtureService) CompleteFixture(ctx context.Context, fx fixture.Fixture) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.CompleteFixture")
	defer span.End()

	if !fixture.IsCompletedStatus(fx.Status) {
		return BatchResult{}, fmt.Errorf("%w: fixture %s is not completed (status %s)", ErrInvalidInput, fx.ID, fx.Status)
	}
	if fx.HomeScore == nil || fx.AwayScore == nil {
		return BatchResult{}, fmt.Errorf("%w: completed fixture %s is missing scores", ErrInvalidInput, fx.ID)
	}

	value, err, _ := s.flight.Do("fixture:complete:"+fx.ID, func() (any, error) {
		return s.completeFixture(ctx, fx)
	})
	if err != nil {
		return BatchResult{}, err
	}

	result, _ := value.(BatchResult)
	return result, nil
}

func (s *FixtureService) completeFixture(ctx context.Context, fx fixture.Fixture) (BatchResult, error) {
	fx.Status = fixture.StatusCompleted
	if fx.FinishedAt == nil {
		finished := s.now()
		fx.FinishedAt = &finished
	}
	if err := s.fixtures.Upsert(ctx, fx); err != nil {
		return BatchResult{}, fmt.Errorf("store fixture result: %w", err)
	}

	gw := fixture.GameweekContext{Gameweek: fx.Gameweek, FixtureID: fx.ID}
	shutOut := fx.ShutOutTeamIDs()
	if len(shutOut) == 0 {
		return BatchResult{}, nil
	}

	perfs, err := s.performances.ListByFixture(ctx, fx.ID)
	if err != nil {
		return BatchResult{}, fmt.Errorf("list fixture performances: %w", err)
	}

	var (
		mu       sync.Mutex
		result   BatchResult
		wg       conc.WaitGroup
		sideErrs = make([]error, len(shutOut))
	)
	for i, teamID := range shutOut {
		wg.Go(func() {
			items, err := s.cleanSheetItems(ctx, teamID, perfs)
			if err != nil {
				sideErrs[i] = err
				return
			}
			applied, err := s.events.ApplyCleanSheets(ctx, gw, items)
			if err != nil {
				sideErrs[i] = err
				return
			}
			mu.Lock()
			result.merge(applied)
			mu.Unlock()
		})
	}
	wg.Wait()

	for _, sideErr := range sideErrs {
		if sideErr != nil {
			return result, sideErr
		}
	}

	s.logger.InfoContext(ctx, "fixture completed",
		"fixture_id", fx.ID,
		"gameweek", fx.Gameweek,
		"clean_sheet_teams", len(shutOut),
		"players_credited", len(result.Updated),
	)
	return result, nil
}

// cleanSheetItems selects the performers eligible for a team's clean sheet:
// minutes on the pitch and a position that pays out.
func (s *FixtureService) cleanSheetItems(ctx context.Context, teamID string, perfs []performance.Performance) ([]CleanSheetItem, error) {
	var items []CleanSheetItem
	for _, perf := range perfs {
		if perf.TeamID != teamID || perf.Counters.MinutesPlayed == 0 {
			continue
		}

		pl, ok, err := s.players.GetByID(ctx, perf.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("look up player %s: %w", perf.PlayerID, err)
		}
		if !ok {
			continue
		}
		switch pl.Position {
		case player.PositionGoalkeeper, player.PositionDefender, player.PositionMidfielder:
			items = append(items, CleanSheetItem{PlayerID: perf.PlayerID, TeamID: teamID})
		}
	}
	return items, nil
}

// ResetResult reports what a fixture reset removed.
type ResetResult struct {
	PerformancesDeleted int
	SquadsAdjusted      int
}

// ResetFixture unwinds a voided fixture in one unit of work: every squad that
// was credited from it gets the points taken back, then the performance rows
// and ledger entries are deleted so the fixture can be replayed from scratch.
func (s *FixtureService) ResetFixture(ctx context.Context, fx fixture.Fixture) (ResetResult, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.ResetFixture")
	defer span.End()

	if fx.ID == "" {
		return ResetResult{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	gw := fixture.GameweekContext{Gameweek: fx.Gameweek, FixtureID: fx.ID}

	var result ResetResult
	err := s.uow.Within(ctx, func(ctx context.Context, repos Repos) error {
		perfs, err := repos.Performances.ListByFixture(ctx, fx.ID)
		if err != nil {
			return fmt.Errorf("list fixture performances: %w", err)
		}

		for _, perf := range perfs {
			if perf.FantasyPoints == 0 {
				continue
			}
			pl, ok, err := s.players.GetByID(ctx, perf.PlayerID)
			if err != nil {
				return fmt.Errorf("look up player %s: %w", perf.PlayerID, err)
			}
			if !ok {
				continue
			}

			adjusted, err := s.propagator.apply(ctx, repos, pl, gw, perf, -perf.FantasyPoints)
			if err != nil {
				return err
			}
			result.SquadsAdjusted += adjusted
		}

		if err := repos.Performances.DeleteByFixture(ctx, fx.ID); err != nil {
			return fmt.Errorf("delete performances: %w", err)
		}
		if err := repos.Ledger.DeleteByFixture(ctx, fx.ID); err != nil {
			return fmt.Errorf("delete event ledger: %w", err)
		}

		result.PerformancesDeleted = len(perfs)
		return nil
	})
	if err != nil {
		return ResetResult{}, err
	}

	s.logger.InfoContext(ctx, "fixture reset",
		"fixture_id", fx.ID,
		"performances_deleted", result.PerformancesDeleted,
		"squads_adjusted", result.SquadsAdjusted,
	)
	return result, nil
}

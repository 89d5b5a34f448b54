package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fixture"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/player"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/points"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/cache"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/logging"
)

// RecalcService rebuilds fantasy points from stored counters. It is the
// repair path after a bulk correction import: every performance total is
// recomputed from scratch and any drift is pushed out to the squads that
// hold the player.
type RecalcService struct {
	uow            UnitOfWork
	players        player.Repository
	propagator     *propagator
	defaultWorkers int
	logger         *logging.Logger
}

// NewRecalcService takes the pool size used when a request does not carry its
// own MaxWorkers. It is still clamped per run to the task count.
func NewRecalcService(uow UnitOfWork, players player.Repository, store *cache.Store, workers int, logger *logging.Logger) *RecalcService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RecalcService{
		uow:            uow,
		players:        players,
		propagator:     newPropagator(store, logger),
		defaultWorkers: workers,
		logger:         logger,
	}
}

type RecalcInput struct {
	FixtureIDs []string
	MaxWorkers int
	// DryRun computes the drift without writing anything back.
	DryRun bool
}

type RecalcResult struct {
	TaskCount    int                `json:"task_count"`
	SuccessCount int                `json:"success_count"`
	FailedCount  int                `json:"failed_count"`
	SkippedCount int                `json:"skipped_count"`
	WorkerCount  int                `json:"worker_count"`
	Tasks        []RecalcTaskResult `json:"tasks"`
}

type RecalcTaskResult struct {
	FixtureID     string `json:"fixture_id"`
	Status        string `json:"status"`
	Records       int    `json:"records"`
	PointsShifted int    `json:"points_shifted"`
	DurationMs    int64  `json:"duration_ms"`
	Message       string `json:"message,omitempty"`
}

const (
	recalcStatusSuccess = "success"
	recalcStatusFailed  = "failed"
	recalcStatusSkipped = "skipped"
)

// Recalculate runs one task per fixture on a bounded worker pool. Fixtures
// are independent so tasks run concurrently; each fixture settles in its own
// unit of work.
func (s *RecalcService) Recalculate(ctx context.Context, input RecalcInput) (RecalcResult, error) {
	ctx, span := startUsecaseSpan(ctx, "RecalcService.Recalculate")
	defer span.End()

	if len(input.FixtureIDs) == 0 {
		return RecalcResult{}, fmt.Errorf("%w: fixture ids are required", ErrInvalidInput)
	}

	fixtureIDs := dedupeStrings(input.FixtureIDs)
	maxWorkers := input.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = s.defaultWorkers
	}
	workerCount := normalizeRecalcWorkerCount(maxWorkers, len(fixtureIDs))

	result := RecalcResult{
		TaskCount:   len(fixtureIDs),
		WorkerCount: workerCount,
		Tasks:       make([]RecalcTaskResult, 0, len(fixtureIDs)),
	}

	rows := make(chan RecalcTaskResult, len(fixtureIDs))

	var successCount atomic.Int32
	var failedCount atomic.Int32
	var skippedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return RecalcResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, fixtureID := range fixtureIDs {
		fixtureID := fixtureID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := RecalcTaskResult{FixtureID: fixtureID}

			records, shifted, err := s.recalcFixture(ctx, fixtureID, input.DryRun)
			row.Records = records
			row.PointsShifted = shifted
			row.DurationMs = time.Since(start).Milliseconds()

			switch {
			case err != nil:
				row.Status = recalcStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
			case records == 0:
				row.Status = recalcStatusSkipped
				row.Message = "no performances stored for fixture"
				skippedCount.Add(1)
			default:
				row.Status = recalcStatusSuccess
				successCount.Add(1)
			}

			rows <- row
		}); err != nil {
			workers.Done()
			return RecalcResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].FixtureID < result.Tasks[j].FixtureID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.SkippedCount = int(skippedCount.Load())
	return result, nil
}

// recalcFixture returns the number of performances whose totals drifted and
// the absolute points moved.
func (s *RecalcService) recalcFixture(ctx context.Context, fixtureID string, dryRun bool) (int, int, error) {
	records, shifted := 0, 0
	err := s.uow.Within(ctx, func(ctx context.Context, repos Repos) error {
		perfs, err := repos.Performances.ListByFixture(ctx, fixtureID)
		if err != nil {
			return fmt.Errorf("list performances fixture=%s: %w", fixtureID, err)
		}
		records = len(perfs)

		for _, perf := range perfs {
			pl, ok, err := s.players.GetByID(ctx, perf.PlayerID)
			if err != nil {
				return fmt.Errorf("look up player %s: %w", perf.PlayerID, err)
			}
			if !ok {
				continue
			}

			expected := points.Full(perf.Counters, pl.Position, false)
			diff := expected - perf.FantasyPoints
			if diff == 0 {
				continue
			}
			shifted += abs(diff)
			if dryRun {
				continue
			}

			perf.FantasyPoints = expected
			if err := repos.Performances.Upsert(ctx, perf); err != nil {
				return fmt.Errorf("store recomputed performance: %w", err)
			}

			gw := fixture.GameweekContext{Gameweek: perf.Gameweek, FixtureID: fixtureID}
			if _, err := s.propagator.apply(ctx, repos, pl, gw, perf, diff); err != nil {
				return err
			}

			s.logger.InfoContext(ctx, "performance total corrected",
				"fixture_id", fixtureID,
				"player_id", perf.PlayerID,
				"drift", diff,
			)
		}
		return nil
	})
	return records, shifted, err
}

func normalizeRecalcWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 1
	}
	if value > 8 {
		value = 8
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value == "" {
			continue
		}
		if _, exists := seen[value]; exists {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

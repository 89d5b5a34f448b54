package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/eventledger"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fixture"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/performance"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/player"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/points"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/cache"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/id"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/logging"
)

// EventService ingests match event batches. Every item runs as its own unit
// of work spanning the ledger check, the performance read-modify-write, the
// ledger mark and the squad fan-out, so a crash never leaves a half-applied
// event behind.
type EventService struct {
	uow        UnitOfWork
	players    player.Repository
	propagator *propagator
	idGen      id.Generator
	validate   *validator.Validate
	logger     *logging.Logger
	now        func() time.Time
}

func NewEventService(
	uow UnitOfWork,
	players player.Repository,
	store *cache.Store,
	idGen id.Generator,
	logger *logging.Logger,
) *EventService {
	if logger == nil {
		logger = logging.Default()
	}
	return &EventService{
		uow:        uow,
		players:    players,
		propagator: newPropagator(store, logger),
		idGen:      idGen,
		validate:   validator.New(),
		logger:     logger,
		now:        time.Now,
	}
}

// EventItem is one discrete scoring event for a player. Count defaults to 1
// and covers feeds that batch repeats of the same event at the same minute.
type EventItem struct {
	PlayerID string `json:"player_id" validate:"required"`
	TeamID   string `json:"team_id" validate:"required"`
	Minute   int    `json:"minute" validate:"min=0,max=120"`
	Count    int    `json:"count" validate:"min=0,max=20"`
}

// CardItem is one booking. Card is "yellow" or "red".
type CardItem struct {
	PlayerID string `json:"player_id" validate:"required"`
	TeamID   string `json:"team_id" validate:"required"`
	Card     string `json:"card" validate:"required,oneof=yellow red"`
	Minute   int    `json:"minute" validate:"min=0,max=120"`
}

// SubstitutionItem swaps one player off and another on at a given minute.
type SubstitutionItem struct {
	PlayerOffID string `json:"player_off_id" validate:"required"`
	PlayerOnID  string `json:"player_on_id" validate:"required"`
	TeamID      string `json:"team_id" validate:"required"`
	Minute      int    `json:"minute" validate:"min=0,max=120"`
}

// GoalkeeperStatItem carries the save and penalty tallies reported for a
// keeper, usually once at full time.
type GoalkeeperStatItem struct {
	PlayerID        string `json:"player_id" validate:"required"`
	TeamID          string `json:"team_id" validate:"required"`
	Saves           int    `json:"saves" validate:"min=0"`
	PenaltiesSaved  int    `json:"penalties_saved" validate:"min=0"`
	PenaltiesMissed int    `json:"penalties_missed" validate:"min=0"`
	Minute          int    `json:"minute" validate:"min=0,max=120"`
}

// CleanSheetItem credits one eligible player with their team's clean sheet.
type CleanSheetItem struct {
	PlayerID string `json:"player_id" validate:"required"`
	TeamID   string `json:"team_id" validate:"required"`
}

// AppearanceItem records (or corrects) a player's minutes for the fixture.
type AppearanceItem struct {
	PlayerID string `json:"player_id" validate:"required"`
	TeamID   string `json:"team_id" validate:"required"`
	Minutes  int    `json:"minutes" validate:"min=0,max=120"`
}

// PlayerUpdate describes one successfully handled item.
type PlayerUpdate struct {
	PlayerID       string
	EventType      eventledger.EventType
	PointsAdded    int
	TotalPoints    int
	SquadsCredited int
	Duplicate      bool
}

// ItemError describes one rejected item. Item failures never abort the rest
// of the batch.
type ItemError struct {
	PlayerID string
	Reason   string
}

// BatchResult is the per-item outcome of one inbound batch.
type BatchResult struct {
	Updated []PlayerUpdate
	Errors  []ItemError
}

func (r *BatchResult) merge(other BatchResult) {
	r.Updated = append(r.Updated, other.Updated...)
	r.Errors = append(r.Errors, other.Errors...)
}

// eventApplication is one ledger-guarded counter mutation.
type eventApplication struct {
	playerID      string
	teamID        string
	eventType     eventledger.EventType
	minute        int
	disambiguator string
	mutate        func(c *performance.Counters)
}

func (s *EventService) ApplyGoals(ctx context.Context, gw fixture.GameweekContext, items []EventItem) (BatchResult, error) {
	return s.applyCountedBatch(ctx, gw, "EventService.ApplyGoals", eventledger.EventGoal, items,
		func(c *performance.Counters, count int) { c.Goals += count })
}

func (s *EventService) ApplyAssists(ctx context.Context, gw fixture.GameweekContext, items []EventItem) (BatchResult, error) {
	return s.applyCountedBatch(ctx, gw, "EventService.ApplyAssists", eventledger.EventAssist, items,
		func(c *performance.Counters, count int) { c.Assists += count })
}

func (s *EventService) ApplyOwnGoals(ctx context.Context, gw fixture.GameweekContext, items []EventItem) (BatchResult, error) {
	return s.applyCountedBatch(ctx, gw, "EventService.ApplyOwnGoals", eventledger.EventOwnGoal, items,
		func(c *performance.Counters, count int) { c.OwnGoals += count })
}

func (s *EventService) applyCountedBatch(
	ctx context.Context,
	gw fixture.GameweekContext,
	spanName string,
	eventType eventledger.EventType,
	items []EventItem,
	add func(c *performance.Counters, count int),
) (BatchResult, error) {
	apps := make([]eventApplication, 0, len(items))
	var result BatchResult
	for _, item := range items {
		if err := s.validate.Struct(item); err != nil {
			result.Errors = append(result.Errors, ItemError{PlayerID: item.PlayerID, Reason: err.Error()})
			continue
		}
		count := item.Count
		if count == 0 {
			count = 1
		}
		apps = append(apps, eventApplication{
			playerID:  item.PlayerID,
			teamID:    item.TeamID,
			eventType: eventType,
			minute:    item.Minute,
			mutate:    func(c *performance.Counters) { add(c, count) },
		})
	}

	applied, err := s.runBatch(ctx, gw, spanName, apps)
	result.merge(applied)
	return result, err
}

func (s *EventService) ApplyCards(ctx context.Context, gw fixture.GameweekContext, items []CardItem) (BatchResult, error) {
	apps := make([]eventApplication, 0, len(items))
	var result BatchResult
	for _, item := range items {
		if err := s.validate.Struct(item); err != nil {
			result.Errors = append(result.Errors, ItemError{PlayerID: item.PlayerID, Reason: err.Error()})
			continue
		}

		app := eventApplication{
			playerID: item.PlayerID,
			teamID:   item.TeamID,
			minute:   item.Minute,
		}
		if item.Card == "red" {
			app.eventType = eventledger.EventRedCard
			app.mutate = func(c *performance.Counters) { c.RedCards++ }
		} else {
			app.eventType = eventledger.EventYellowCard
			app.mutate = func(c *performance.Counters) { c.YellowCards++ }
		}
		apps = append(apps, app)
	}

	applied, err := s.runBatch(ctx, gw, "EventService.ApplyCards", apps)
	result.merge(applied)
	return result, err
}

func (s *EventService) ApplySubstitutions(ctx context.Context, gw fixture.GameweekContext, items []SubstitutionItem) (BatchResult, error) {
	apps := make([]eventApplication, 0, 2*len(items))
	var result BatchResult
	for _, item := range items {
		if err := s.validate.Struct(item); err != nil {
			result.Errors = append(result.Errors, ItemError{PlayerID: item.PlayerOffID, Reason: err.Error()})
			continue
		}

		offMinutes := item.Minute
		onMinutes := 90 - item.Minute
		if onMinutes < 0 {
			onMinutes = 0
		}
		apps = append(apps,
			eventApplication{
				playerID:      item.PlayerOffID,
				teamID:        item.TeamID,
				eventType:     eventledger.EventSubstitution,
				minute:        item.Minute,
				disambiguator: "off",
				mutate:        func(c *performance.Counters) { c.MinutesPlayed = offMinutes },
			},
			eventApplication{
				playerID:      item.PlayerOnID,
				teamID:        item.TeamID,
				eventType:     eventledger.EventSubstitution,
				minute:        item.Minute,
				disambiguator: "on",
				mutate:        func(c *performance.Counters) { c.MinutesPlayed = onMinutes },
			},
		)
	}

	applied, err := s.runBatch(ctx, gw, "EventService.ApplySubstitutions", apps)
	result.merge(applied)
	return result, err
}

func (s *EventService) ApplyGoalkeeperStats(ctx context.Context, gw fixture.GameweekContext, items []GoalkeeperStatItem) (BatchResult, error) {
	apps := make([]eventApplication, 0, len(items))
	var result BatchResult
	for _, item := range items {
		if err := s.validate.Struct(item); err != nil {
			result.Errors = append(result.Errors, ItemError{PlayerID: item.PlayerID, Reason: err.Error()})
			continue
		}

		if item.Saves > 0 {
			saves := item.Saves
			apps = append(apps, eventApplication{
				playerID:  item.PlayerID,
				teamID:    item.TeamID,
				eventType: eventledger.EventSave,
				minute:    item.Minute,
				mutate:    func(c *performance.Counters) { c.Saves += saves },
			})
		}
		if item.PenaltiesSaved > 0 {
			saved := item.PenaltiesSaved
			apps = append(apps, eventApplication{
				playerID:  item.PlayerID,
				teamID:    item.TeamID,
				eventType: eventledger.EventPenaltySaved,
				minute:    item.Minute,
				mutate:    func(c *performance.Counters) { c.PenaltiesSaved += saved },
			})
		}
		if item.PenaltiesMissed > 0 {
			missed := item.PenaltiesMissed
			apps = append(apps, eventApplication{
				playerID:  item.PlayerID,
				teamID:    item.TeamID,
				eventType: eventledger.EventPenaltyMissed,
				minute:    item.Minute,
				mutate:    func(c *performance.Counters) { c.PenaltiesMissed += missed },
			})
		}
	}

	applied, err := s.runBatch(ctx, gw, "EventService.ApplyGoalkeeperStats", apps)
	result.merge(applied)
	return result, err
}

// ApplyCleanSheets credits a fixture's clean sheet to the listed players. The
// ledger key carries the conceding side's team id at minute zero, so a replayed
// completion notification is a no-op per player.
func (s *EventService) ApplyCleanSheets(ctx context.Context, gw fixture.GameweekContext, items []CleanSheetItem) (BatchResult, error) {
	apps := make([]eventApplication, 0, len(items))
	var result BatchResult
	for _, item := range items {
		if err := s.validate.Struct(item); err != nil {
			result.Errors = append(result.Errors, ItemError{PlayerID: item.PlayerID, Reason: err.Error()})
			continue
		}
		apps = append(apps, eventApplication{
			playerID:      item.PlayerID,
			teamID:        item.TeamID,
			eventType:     eventledger.EventCleanSheet,
			minute:        0,
			disambiguator: "team_" + item.TeamID,
			mutate:        func(c *performance.Counters) { c.CleanSheets++ },
		})
	}

	applied, err := s.runBatch(ctx, gw, "EventService.ApplyCleanSheets", apps)
	result.merge(applied)
	return result, err
}

// ApplyAppearances seeds or raises recorded minutes. Minutes only ever grow
// through this path; substitutions are the corrective overwrite channel.
func (s *EventService) ApplyAppearances(ctx context.Context, gw fixture.GameweekContext, items []AppearanceItem) (BatchResult, error) {
	apps := make([]eventApplication, 0, len(items))
	var result BatchResult
	for _, item := range items {
		if err := s.validate.Struct(item); err != nil {
			result.Errors = append(result.Errors, ItemError{PlayerID: item.PlayerID, Reason: err.Error()})
			continue
		}
		minutes := item.Minutes
		apps = append(apps, eventApplication{
			playerID:  item.PlayerID,
			teamID:    item.TeamID,
			eventType: eventledger.EventAppearance,
			minute:    0,
			mutate: func(c *performance.Counters) {
				if c.MinutesPlayed < minutes {
					c.MinutesPlayed = minutes
				}
			},
		})
	}

	applied, err := s.runBatch(ctx, gw, "EventService.ApplyAppearances", apps)
	result.merge(applied)
	return result, err
}

func (s *EventService) runBatch(ctx context.Context, gw fixture.GameweekContext, spanName string, apps []eventApplication) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, spanName)
	defer span.End()

	if gw.FixtureID == "" || gw.Gameweek <= 0 {
		return BatchResult{}, fmt.Errorf("%w: gameweek context requires a fixture id and a positive gameweek", ErrInvalidInput)
	}

	var result BatchResult
	for _, app := range apps {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		update, itemErr := s.applyOne(ctx, gw, app)
		if itemErr != nil {
			result.Errors = append(result.Errors, *itemErr)
			continue
		}
		result.Updated = append(result.Updated, update)
	}

	return result, nil
}

func (s *EventService) applyOne(ctx context.Context, gw fixture.GameweekContext, app eventApplication) (PlayerUpdate, *ItemError) {
	pl, ok, err := s.players.GetByID(ctx, app.playerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "player lookup failed", "player_id", app.playerID, "error", err)
		return PlayerUpdate{}, &ItemError{PlayerID: app.playerID, Reason: fmt.Sprintf("look up player: %v", err)}
	}
	if !ok {
		return PlayerUpdate{}, &ItemError{PlayerID: app.playerID, Reason: "unknown player"}
	}

	key := eventledger.Key(app.eventType, gw.FixtureID, app.playerID, app.minute, app.disambiguator)
	update := PlayerUpdate{PlayerID: app.playerID, EventType: app.eventType}

	err = s.uow.Within(ctx, func(ctx context.Context, repos Repos) error {
		done, err := repos.Ledger.IsProcessed(ctx, gw.FixtureID, key)
		if err != nil {
			return fmt.Errorf("check event ledger: %w", err)
		}
		if done {
			update.Duplicate = true
			return nil
		}

		perf, exists, err := repos.Performances.GetByPlayerAndFixture(ctx, app.playerID, gw.FixtureID)
		if err != nil {
			return fmt.Errorf("load performance: %w", err)
		}
		if !exists {
			perfID, err := s.idGen.NewID()
			if err != nil {
				return fmt.Errorf("mint performance id: %w", err)
			}
			perf = performance.Performance{
				ID:        perfID,
				PlayerID:  app.playerID,
				TeamID:    app.teamID,
				FixtureID: gw.FixtureID,
				Gameweek:  gw.Gameweek,
				CreatedAt: s.now(),
			}
		}

		old := perf.Counters
		app.mutate(&perf.Counters)
		if perf.Counters.AdditiveDecreased(old) {
			return fmt.Errorf("%w: event would decrease an additive counter", ErrInvalidInput)
		}

		delta := points.Incremental(perf.Counters, old, pl.Position, false)
		perf.FantasyPoints += delta
		perf.UpdatedAt = s.now()

		if err := repos.Performances.Upsert(ctx, perf); err != nil {
			return fmt.Errorf("store performance: %w", err)
		}
		if err := repos.Ledger.MarkProcessed(ctx, eventledger.ProcessedEvent{
			Key:        key,
			FixtureID:  gw.FixtureID,
			EventType:  app.eventType,
			PlayerID:   app.playerID,
			Minute:     app.minute,
			RecordedAt: s.now(),
		}); err != nil {
			return fmt.Errorf("mark event processed: %w", err)
		}

		credited, err := s.propagator.apply(ctx, repos, pl, gw, perf, delta)
		if err != nil {
			return err
		}

		update.PointsAdded = delta
		update.TotalPoints = perf.FantasyPoints
		update.SquadsCredited = credited
		return nil
	})
	if err != nil {
		// A racing writer won the ledger insert and the unit of work rolled
		// back every side effect, so the event already counted exactly once.
		if errors.Is(err, eventledger.ErrAlreadyProcessed) {
			s.logger.DebugContext(ctx, "duplicate event skipped", "key", key)
			return PlayerUpdate{PlayerID: app.playerID, EventType: app.eventType, Duplicate: true}, nil
		}
		s.logger.ErrorContext(ctx, "event application failed",
			"event_type", string(app.eventType),
			"player_id", app.playerID,
			"fixture_id", gw.FixtureID,
			"error", err,
		)
		return PlayerUpdate{}, &ItemError{PlayerID: app.playerID, Reason: err.Error()}
	}

	if update.Duplicate {
		s.logger.DebugContext(ctx, "duplicate event skipped", "key", key)
	}
	return update, nil
}

package app

import (
	"context"
	"time"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/config"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fixture"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/performance"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/player"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/infrastructure/repository/memory"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/infrastructure/repository/postgres"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/cache"
	idgen "github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/id"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/logging"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/usecase"
)

// Engine bundles the scoring services over one storage driver.
type Engine struct {
	Events        *usecase.EventService
	Squads        *usecase.SquadService
	Fixtures      *usecase.FixtureService
	Recalc        *usecase.RecalcService
	TeamOfTheWeek *usecase.TeamOfTheWeekService

	close func(context.Context) error
}

// Close releases the engine's storage resources.
func (e *Engine) Close(ctx context.Context) error {
	if e == nil || e.close == nil {
		return nil
	}
	return e.close(ctx)
}

func NewEngine(cfg config.Config, logger *logging.Logger) (*Engine, error) {
	if logger == nil {
		logger = logging.Default()
	}

	ttl := cfg.CacheTTL
	if !cfg.CacheEnabled {
		// a nanosecond TTL makes the store pass-through
		ttl = time.Nanosecond
	}
	store := cache.NewStore(ttl)

	var (
		uow          usecase.UnitOfWork
		players      player.Repository
		fixtures     fixture.Repository
		performances performance.Repository
		closeFn      func(context.Context) error
	)

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return nil, err
		}
		uow = postgres.NewUnitOfWork(db)
		players = postgres.NewPlayerRepository(db)
		fixtures = postgres.NewFixtureRepository(db)
		performances = postgres.NewPerformanceRepository(db)
		closeFn = func(context.Context) error { return db.Close() }
		logger.Info("storage ready", "driver", cfg.StorageDriver, "db", dbNameFromURL(cfg.DBURL))
	default:
		playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
		fixtureRepo := memory.NewFixtureRepository(memory.SeedFixtures())
		performanceRepo := memory.NewPerformanceRepository()
		uow = memory.NewUnitOfWork(
			performanceRepo,
			memory.NewEventLedgerRepository(),
			memory.NewFantasyTeamRepository(nil),
			memory.NewFantasyPlayerRepository(nil),
			memory.NewTeamSelectionRepository(nil),
			memory.NewTransferRepository(),
		)
		players = playerRepo
		fixtures = fixtureRepo
		performances = performanceRepo
		logger.Info("storage ready", "driver", config.StorageMemory)
	}

	ids := idgen.NewRandomGenerator()
	events := usecase.NewEventService(uow, players, store, ids, logger)

	return &Engine{
		Events:        events,
		Squads:        usecase.NewSquadService(uow, players, store, ids, logger),
		Fixtures:      usecase.NewFixtureService(uow, fixtures, performances, players, events, store, logger),
		Recalc:        usecase.NewRecalcService(uow, players, store, cfg.RecalcWorkers, logger),
		TeamOfTheWeek: usecase.NewTeamOfTheWeekService(performances, players, store, logger),
		close:         closeFn,
	}, nil
}

package usecase_test

import (
	"context"
	"fmt"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/usecase"
	"sync"
	"testing"
	"time"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fantasy"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/infrastructure/repository/memory"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/cache"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/logging"
)

type seqIDGenerator struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%03d", g.n), nil
}

// engineHarness wires the full scoring stack over the in-memory stores.
type engineHarness struct {
	players      *memory.PlayerRepository
	fixtures     *memory.FixtureRepository
	performances *memory.PerformanceRepository
	ledger       *memory.EventLedgerRepository
	teams        *memory.FantasyTeamRepository
	members      *memory.FantasyPlayerRepository
	selections   *memory.TeamSelectionRepository
	transfers    *memory.TransferRepository
	uow          *memory.UnitOfWork
	store        *cache.Store

	events      *usecase.EventService
	squads      *usecase.SquadService
	fixtureSvc  *usecase.FixtureService
	teamOfWeek  *usecase.TeamOfTheWeekService
	recalc      *usecase.RecalcService
	idGenerator *seqIDGenerator
}

func newEngineHarness(t *testing.T) *engineHarness {
	t.Helper()

	h := &engineHarness{
		players:      memory.NewPlayerRepository(memory.SeedPlayers()),
		fixtures:     memory.NewFixtureRepository(memory.SeedFixtures()),
		performances: memory.NewPerformanceRepository(),
		ledger:       memory.NewEventLedgerRepository(),
		teams:        memory.NewFantasyTeamRepository(nil),
		members:      memory.NewFantasyPlayerRepository(nil),
		selections:   memory.NewTeamSelectionRepository(nil),
		transfers:    memory.NewTransferRepository(),
		store:        cache.NewStore(time.Minute),
		idGenerator:  &seqIDGenerator{},
	}
	h.uow = memory.NewUnitOfWork(h.performances, h.ledger, h.teams, h.members, h.selections, h.transfers)

	logger := logging.NewNop()
	h.events = usecase.NewEventService(h.uow, h.players, h.store, h.idGenerator, logger)
	h.squads = usecase.NewSquadService(h.uow, h.players, h.store, h.idGenerator, logger)
	h.fixtureSvc = usecase.NewFixtureService(h.uow, h.fixtures, h.performances, h.players, h.events, h.store, logger)
	h.teamOfWeek = usecase.NewTeamOfTheWeekService(h.performances, h.players, h.store, logger)
	h.recalc = usecase.NewRecalcService(h.uow, h.players, h.store, 4, logger)

	return h
}

// A legal 4-4-2 squad from the seed pool: three players per real team at most.
var (
	testStarterIDs = []string{
		"ken-gk-01",
		"ken-def-02", "ken-def-03", "ken-def-04", "ken-def-05",
		"ken-mid-01", "ken-mid-02", "ken-mid-03", "ken-mid-04",
		"ken-fwd-01", "ken-fwd-02",
	}
	testBenchIDs = []string{"ken-gk-02", "ken-def-06", "ken-mid-05", "ken-fwd-04"}
)

// newSquad stores a fantasy team and submits its finalized opening lineup
// for gameweek 1 with ken-fwd-01 as captain and ken-mid-01 as vice captain.
func (h *engineHarness) newSquad(t *testing.T, teamID string) fantasy.FantasyTeam {
	t.Helper()

	team := fantasy.FantasyTeam{
		ID:             teamID,
		UserID:         "user-" + teamID,
		Name:           "Harambee " + teamID,
		Budget:         1000,
		Formation:      "4-4-2",
		FreeTransfers:  2,
		TransferBudget: 8,
	}
	if err := h.teams.Upsert(context.Background(), team); err != nil {
		t.Fatalf("seed fantasy team: %v", err)
	}

	if _, err := h.squads.SubmitSquad(t.Context(), usecase.SubmitSquadInput{
		TeamID:        teamID,
		Gameweek:      1,
		Formation:     "4-4-2",
		StarterIDs:    testStarterIDs,
		BenchIDs:      testBenchIDs,
		CaptainID:     "ken-fwd-01",
		ViceCaptainID: "ken-mid-01",
	}); err != nil {
		t.Fatalf("submit opening squad: %v", err)
	}

	stored, ok, err := h.teams.GetByID(context.Background(), teamID)
	if err != nil || !ok {
		t.Fatalf("load fantasy team after submit: ok=%v err=%v", ok, err)
	}
	return stored
}

func (h *engineHarness) teamPoints(t *testing.T, teamID string) int {
	t.Helper()

	team, ok, err := h.teams.GetByID(context.Background(), teamID)
	if err != nil || !ok {
		t.Fatalf("load fantasy team: ok=%v err=%v", ok, err)
	}
	return team.TotalPoints
}

func (h *engineHarness) memberPoints(t *testing.T, teamID, playerID string) int {
	t.Helper()

	members, err := h.members.ListByTeam(context.Background(), teamID)
	if err != nil {
		t.Fatalf("list squad members: %v", err)
	}
	for _, member := range members {
		if member.PlayerID == playerID {
			return member.TotalPoints
		}
	}
	t.Fatalf("player %s is not in squad %s", playerID, teamID)
	return 0
}

package usecase_test

import (
	"context"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/usecase"
	"testing"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/infrastructure/repository/memory"
)

func TestRecalcService_FixesDriftedTotals(t *testing.T) {
	h := newEngineHarness(t)
	h.newSquad(t, "team-1")

	if _, err := h.events.ApplyAppearances(t.Context(), gw1, []usecase.AppearanceItem{
		{PlayerID: "ken-fwd-01", TeamID: memory.TeamGorMahia, Minutes: 90},
	}); err != nil {
		t.Fatalf("seed appearance: %v", err)
	}
	if _, err := h.events.ApplyGoals(t.Context(), gw1, []usecase.EventItem{
		{PlayerID: "ken-fwd-01", TeamID: memory.TeamGorMahia, Minute: 21},
	}); err != nil {
		t.Fatalf("apply goal: %v", err)
	}

	// Corrupt the stored total: counters say 6, the row says 3.
	perf, ok, err := h.performances.GetByPlayerAndFixture(context.Background(), "ken-fwd-01", gw1.FixtureID)
	if err != nil || !ok {
		t.Fatalf("load performance: ok=%v err=%v", ok, err)
	}
	perf.FantasyPoints = 3
	if err := h.performances.Upsert(context.Background(), perf); err != nil {
		t.Fatalf("corrupt performance: %v", err)
	}

	result, err := h.recalc.Recalculate(t.Context(), usecase.RecalcInput{FixtureIDs: []string{gw1.FixtureID}})
	if err != nil {
		t.Fatalf("recalculate failed: %v", err)
	}
	if result.SuccessCount != 1 || result.FailedCount != 0 {
		t.Fatalf("unexpected task outcome: %+v", result)
	}
	if result.Tasks[0].PointsShifted != 3 {
		t.Fatalf("expected 3 points of drift, got %d", result.Tasks[0].PointsShifted)
	}

	fixed, _, err := h.performances.GetByPlayerAndFixture(context.Background(), "ken-fwd-01", gw1.FixtureID)
	if err != nil {
		t.Fatalf("reload performance: %v", err)
	}
	if fixed.FantasyPoints != 6 {
		t.Fatalf("expected total restored to 6, got %d", fixed.FantasyPoints)
	}

	// The captain's squad picks up the doubled correction: 12 + 3*2.
	if got := h.teamPoints(t, "team-1"); got != 18 {
		t.Fatalf("expected team total 18 after correction, got %d", got)
	}
}

func TestRecalcService_DryRunWritesNothing(t *testing.T) {
	h := newEngineHarness(t)

	if _, err := h.events.ApplyGoals(t.Context(), gw1, []usecase.EventItem{
		{PlayerID: "ken-mid-02", TeamID: memory.TeamAFCLeopards, Minute: 40},
	}); err != nil {
		t.Fatalf("apply goal: %v", err)
	}

	perf, _, err := h.performances.GetByPlayerAndFixture(context.Background(), "ken-mid-02", gw1.FixtureID)
	if err != nil {
		t.Fatalf("load performance: %v", err)
	}
	perf.FantasyPoints = 1
	if err := h.performances.Upsert(context.Background(), perf); err != nil {
		t.Fatalf("corrupt performance: %v", err)
	}

	result, err := h.recalc.Recalculate(t.Context(), usecase.RecalcInput{
		FixtureIDs: []string{gw1.FixtureID},
		DryRun:     true,
	})
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	if result.Tasks[0].PointsShifted != 4 {
		t.Fatalf("expected 4 points of drift reported, got %d", result.Tasks[0].PointsShifted)
	}

	unchanged, _, err := h.performances.GetByPlayerAndFixture(context.Background(), "ken-mid-02", gw1.FixtureID)
	if err != nil {
		t.Fatalf("reload performance: %v", err)
	}
	if unchanged.FantasyPoints != 1 {
		t.Fatalf("expected dry run to leave the row at 1, got %d", unchanged.FantasyPoints)
	}
}

func TestRecalcService_SkipsEmptyFixtures(t *testing.T) {
	h := newEngineHarness(t)

	result, err := h.recalc.Recalculate(t.Context(), usecase.RecalcInput{
		FixtureIDs: []string{"ken-fx-001", "ken-fx-002"},
		MaxWorkers: 4,
	})
	if err != nil {
		t.Fatalf("recalculate failed: %v", err)
	}
	if result.SkippedCount != 2 {
		t.Fatalf("expected both fixtures skipped, got %+v", result)
	}
	if result.WorkerCount != 2 {
		t.Fatalf("expected worker count clamped to task count, got %d", result.WorkerCount)
	}
}

func TestRecalcService_UsesConfiguredWorkersByDefault(t *testing.T) {
	h := newEngineHarness(t)
	recalc := usecase.NewRecalcService(h.uow, h.players, h.store, 3, nil)

	result, err := recalc.Recalculate(t.Context(), usecase.RecalcInput{
		FixtureIDs: []string{"ken-fx-001", "ken-fx-002", "ken-fx-003"},
	})
	if err != nil {
		t.Fatalf("recalculate failed: %v", err)
	}
	if result.WorkerCount != 3 {
		t.Fatalf("expected the configured pool size, got %d", result.WorkerCount)
	}

	// An explicit per-request cap still wins over the configured size.
	result, err = recalc.Recalculate(t.Context(), usecase.RecalcInput{
		FixtureIDs: []string{"ken-fx-001", "ken-fx-002", "ken-fx-003"},
		MaxWorkers: 1,
	})
	if err != nil {
		t.Fatalf("recalculate failed: %v", err)
	}
	if result.WorkerCount != 1 {
		t.Fatalf("expected the request cap to win, got %d", result.WorkerCount)
	}
}

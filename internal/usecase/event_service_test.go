package usecase_test

import (
	"context"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/usecase"
	"testing"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/eventledger"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fantasy"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fixture"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/infrastructure/repository/memory"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/logging"
)

var gw1 = fixture.GameweekContext{Gameweek: 1, FixtureID: "ken-fx-001"}

func TestEventService_ApplyGoals_DoublesForCaptain(t *testing.T) {
	h := newEngineHarness(t)
	h.newSquad(t, "team-1")

	seeded, err := h.events.ApplyAppearances(t.Context(), gw1, []usecase.AppearanceItem{
		{PlayerID: "ken-fwd-01", TeamID: memory.TeamGorMahia, Minutes: 90},
	})
	if err != nil {
		t.Fatalf("apply appearances failed: %v", err)
	}
	if len(seeded.Updated) != 1 || seeded.Updated[0].PointsAdded != 2 {
		t.Fatalf("expected appearance worth 2 points, got %+v", seeded.Updated)
	}

	result, err := h.events.ApplyGoals(t.Context(), gw1, []usecase.EventItem{
		{PlayerID: "ken-fwd-01", TeamID: memory.TeamGorMahia, Minute: 55},
	})
	if err != nil {
		t.Fatalf("apply goals failed: %v", err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected item errors: %+v", result.Errors)
	}

	update := result.Updated[0]
	if update.PointsAdded != 4 {
		t.Fatalf("expected forward goal worth 4 points, got %d", update.PointsAdded)
	}
	if update.TotalPoints != 6 {
		t.Fatalf("expected performance total 6, got %d", update.TotalPoints)
	}
	if update.SquadsCredited != 1 {
		t.Fatalf("expected 1 squad credited, got %d", update.SquadsCredited)
	}

	// Captain: appearance 2 and goal 4, both doubled.
	if got := h.memberPoints(t, "team-1", "ken-fwd-01"); got != 12 {
		t.Fatalf("expected captain squad points 12, got %d", got)
	}
	if got := h.teamPoints(t, "team-1"); got != 12 {
		t.Fatalf("expected team total 12, got %d", got)
	}
}

func TestEventService_ApplyGoals_DuplicateIsNoOp(t *testing.T) {
	h := newEngineHarness(t)
	h.newSquad(t, "team-1")

	item := usecase.EventItem{PlayerID: "ken-fwd-01", TeamID: memory.TeamGorMahia, Minute: 55}
	if _, err := h.events.ApplyGoals(t.Context(), gw1, []usecase.EventItem{item}); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	before := h.teamPoints(t, "team-1")

	replayed, err := h.events.ApplyGoals(t.Context(), gw1, []usecase.EventItem{item})
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !replayed.Updated[0].Duplicate {
		t.Fatalf("expected replayed event to be flagged duplicate")
	}
	if replayed.Updated[0].PointsAdded != 0 {
		t.Fatalf("expected zero points on replay, got %d", replayed.Updated[0].PointsAdded)
	}
	if got := h.teamPoints(t, "team-1"); got != before {
		t.Fatalf("expected team total unchanged at %d, got %d", before, got)
	}

	// Same event type and player at a different minute is a new event.
	again, err := h.events.ApplyGoals(t.Context(), gw1, []usecase.EventItem{
		{PlayerID: "ken-fwd-01", TeamID: memory.TeamGorMahia, Minute: 78},
	})
	if err != nil {
		t.Fatalf("second goal failed: %v", err)
	}
	if again.Updated[0].Duplicate {
		t.Fatalf("expected distinct minute to apply, got duplicate")
	}
}

func TestEventService_ViceCaptainDoublesOnlyWhileCaptainAbsent(t *testing.T) {
	h := newEngineHarness(t)
	h.newSquad(t, "team-1")

	// Captain has no performance yet, so the vice captain acts.
	if _, err := h.events.ApplyAppearances(t.Context(), gw1, []usecase.AppearanceItem{
		{PlayerID: "ken-mid-01", TeamID: memory.TeamGorMahia, Minutes: 90},
	}); err != nil {
		t.Fatalf("seed vice appearance: %v", err)
	}
	if got := h.memberPoints(t, "team-1", "ken-mid-01"); got != 4 {
		t.Fatalf("expected acting vice captain doubled to 4, got %d", got)
	}

	// Once the captain has minutes the vice scores plain.
	if _, err := h.events.ApplyAppearances(t.Context(), gw1, []usecase.AppearanceItem{
		{PlayerID: "ken-fwd-01", TeamID: memory.TeamGorMahia, Minutes: 90},
	}); err != nil {
		t.Fatalf("seed captain appearance: %v", err)
	}
	if _, err := h.events.ApplyGoals(t.Context(), gw1, []usecase.EventItem{
		{PlayerID: "ken-mid-01", TeamID: memory.TeamGorMahia, Minute: 30},
	}); err != nil {
		t.Fatalf("apply vice goal: %v", err)
	}

	if got := h.memberPoints(t, "team-1", "ken-mid-01"); got != 9 {
		t.Fatalf("expected vice total 4+5 = 9, got %d", got)
	}
	if got := h.teamPoints(t, "team-1"); got != 13 {
		t.Fatalf("expected team total 13, got %d", got)
	}
}

func TestEventService_BenchPlayerScoresNothingForSquad(t *testing.T) {
	h := newEngineHarness(t)
	h.newSquad(t, "team-1")

	result, err := h.events.ApplyGoals(t.Context(), gw1, []usecase.EventItem{
		{PlayerID: "ken-fwd-04", TeamID: memory.TeamBandari, Minute: 12},
	})
	if err != nil {
		t.Fatalf("apply goal failed: %v", err)
	}

	update := result.Updated[0]
	if update.TotalPoints != 4 {
		t.Fatalf("expected performance to record the goal, got total %d", update.TotalPoints)
	}
	if update.SquadsCredited != 0 {
		t.Fatalf("expected no squads credited for bench player, got %d", update.SquadsCredited)
	}
	if got := h.teamPoints(t, "team-1"); got != 0 {
		t.Fatalf("expected team total 0, got %d", got)
	}
}

func TestEventService_UnknownPlayerFailsItemOnly(t *testing.T) {
	h := newEngineHarness(t)
	h.newSquad(t, "team-1")

	result, err := h.events.ApplyGoals(t.Context(), gw1, []usecase.EventItem{
		{PlayerID: "nobody", TeamID: memory.TeamGorMahia, Minute: 10},
		{PlayerID: "ken-mid-02", TeamID: memory.TeamAFCLeopards, Minute: 44},
	})
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}

	if len(result.Errors) != 1 || result.Errors[0].PlayerID != "nobody" {
		t.Fatalf("expected one item error for the unknown player, got %+v", result.Errors)
	}
	if len(result.Updated) != 1 || result.Updated[0].PlayerID != "ken-mid-02" {
		t.Fatalf("expected the valid item to apply, got %+v", result.Updated)
	}
}

func TestEventService_DraftSelectionIsInvisibleToScoring(t *testing.T) {
	h := newEngineHarness(t)
	h.newSquad(t, "team-1")

	if _, err := h.squads.SubmitSquad(t.Context(), usecase.SubmitSquadInput{
		TeamID:        "team-1",
		Gameweek:      2,
		Formation:     "4-4-2",
		StarterIDs:    testStarterIDs,
		BenchIDs:      testBenchIDs,
		CaptainID:     "ken-fwd-01",
		ViceCaptainID: "ken-mid-01",
		Draft:         true,
	}); err != nil {
		t.Fatalf("submit draft: %v", err)
	}

	gw2 := fixture.GameweekContext{Gameweek: 2, FixtureID: "ken-fx-010"}
	result, err := h.events.ApplyGoals(t.Context(), gw2, []usecase.EventItem{
		{PlayerID: "ken-fwd-01", TeamID: memory.TeamGorMahia, Minute: 9},
	})
	if err != nil {
		t.Fatalf("apply goal failed: %v", err)
	}
	if result.Updated[0].SquadsCredited != 0 {
		t.Fatalf("expected draft selection to receive nothing, credited %d squads", result.Updated[0].SquadsCredited)
	}
}

func TestEventService_CorruptCaptaincySkipsSquadOnly(t *testing.T) {
	h := newEngineHarness(t)
	h.newSquad(t, "team-1")

	// A finalized selection whose captain is not among its starters.
	broken := fantasy.TeamSelection{
		ID:            "sel-broken",
		TeamID:        "team-1",
		Gameweek:      3,
		Formation:     "4-4-2",
		CaptainID:     "ken-fwd-04",
		ViceCaptainID: "ken-mid-01",
		StarterIDs:    testStarterIDs,
		BenchIDs:      testBenchIDs,
		IsFinalized:   true,
	}
	if err := h.selections.Upsert(context.Background(), broken); err != nil {
		t.Fatalf("seed broken selection: %v", err)
	}

	gw3 := fixture.GameweekContext{Gameweek: 3, FixtureID: "ken-fx-020"}
	result, err := h.events.ApplyGoals(t.Context(), gw3, []usecase.EventItem{
		{PlayerID: "ken-mid-01", TeamID: memory.TeamGorMahia, Minute: 41},
	})
	if err != nil {
		t.Fatalf("apply goal failed: %v", err)
	}

	update := result.Updated[0]
	if update.TotalPoints != 5 {
		t.Fatalf("expected performance still scored, got total %d", update.TotalPoints)
	}
	if update.SquadsCredited != 0 {
		t.Fatalf("expected corrupt squad to be skipped, credited %d", update.SquadsCredited)
	}
}

func TestEventService_GoalkeeperStats(t *testing.T) {
	h := newEngineHarness(t)
	h.newSquad(t, "team-1")

	if _, err := h.events.ApplyAppearances(t.Context(), gw1, []usecase.AppearanceItem{
		{PlayerID: "ken-gk-01", TeamID: memory.TeamGorMahia, Minutes: 90},
	}); err != nil {
		t.Fatalf("seed keeper appearance: %v", err)
	}

	result, err := h.events.ApplyGoalkeeperStats(t.Context(), gw1, []usecase.GoalkeeperStatItem{
		{PlayerID: "ken-gk-01", TeamID: memory.TeamGorMahia, Saves: 7, PenaltiesSaved: 1},
	})
	if err != nil {
		t.Fatalf("apply keeper stats failed: %v", err)
	}
	if len(result.Updated) != 2 {
		t.Fatalf("expected save and penalty applications, got %+v", result.Updated)
	}

	// Appearance 2, 7 saves -> 2, penalty saved 5.
	if got := h.memberPoints(t, "team-1", "ken-gk-01"); got != 9 {
		t.Fatalf("expected keeper squad points 9, got %d", got)
	}
}

func TestEventService_CardsDeduct(t *testing.T) {
	h := newEngineHarness(t)
	h.newSquad(t, "team-1")

	result, err := h.events.ApplyCards(t.Context(), gw1, []usecase.CardItem{
		{PlayerID: "ken-mid-02", TeamID: memory.TeamAFCLeopards, Card: "yellow", Minute: 33},
		{PlayerID: "ken-def-02", TeamID: memory.TeamAFCLeopards, Card: "red", Minute: 70},
	})
	if err != nil {
		t.Fatalf("apply cards failed: %v", err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected item errors: %+v", result.Errors)
	}

	if got := h.memberPoints(t, "team-1", "ken-mid-02"); got != -1 {
		t.Fatalf("expected yellow card -1, got %d", got)
	}
	if got := h.memberPoints(t, "team-1", "ken-def-02"); got != -3 {
		t.Fatalf("expected red card -3, got %d", got)
	}
	if got := h.teamPoints(t, "team-1"); got != -4 {
		t.Fatalf("expected team total -4, got %d", got)
	}
}

func TestEventService_SubstitutionAdjustsMinutes(t *testing.T) {
	h := newEngineHarness(t)
	h.newSquad(t, "team-1")

	if _, err := h.events.ApplyAppearances(t.Context(), gw1, []usecase.AppearanceItem{
		{PlayerID: "ken-mid-03", TeamID: memory.TeamTusker, Minutes: 90},
	}); err != nil {
		t.Fatalf("seed appearance: %v", err)
	}
	if got := h.memberPoints(t, "team-1", "ken-mid-03"); got != 2 {
		t.Fatalf("expected starter appearance worth 2, got %d", got)
	}

	// Subbed off before the hour: the sixty-minute bonus comes back off.
	result, err := h.events.ApplySubstitutions(t.Context(), gw1, []usecase.SubstitutionItem{
		{PlayerOffID: "ken-mid-03", PlayerOnID: "ken-mid-06", TeamID: memory.TeamTusker, Minute: 55},
	})
	if err != nil {
		t.Fatalf("apply substitution failed: %v", err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected item errors: %+v", result.Errors)
	}

	if got := h.memberPoints(t, "team-1", "ken-mid-03"); got != 1 {
		t.Fatalf("expected minutes correction to drop to 1, got %d", got)
	}
}

// racedLedger answers the processed check normally but loses every insert,
// the way a transaction does when a parallel worker records the key first.
type racedLedger struct {
	eventledger.Repository
}

func (racedLedger) MarkProcessed(context.Context, eventledger.ProcessedEvent) error {
	return eventledger.ErrAlreadyProcessed
}

type racedUnitOfWork struct {
	inner usecase.UnitOfWork
}

func (u racedUnitOfWork) Within(ctx context.Context, fn func(context.Context, usecase.Repos) error) error {
	return u.inner.Within(ctx, func(ctx context.Context, repos usecase.Repos) error {
		repos.Ledger = racedLedger{repos.Ledger}
		return fn(ctx, repos)
	})
}

func TestEventService_RacingDuplicateRollsBackCompletely(t *testing.T) {
	h := newEngineHarness(t)
	h.newSquad(t, "team-1")

	events := usecase.NewEventService(racedUnitOfWork{h.uow}, h.players, h.store, h.idGenerator, logging.NewNop())

	result, err := events.ApplyGoals(t.Context(), gw1, []usecase.EventItem{
		{PlayerID: "ken-fwd-01", TeamID: memory.TeamGorMahia, Minute: 12},
	})
	if err != nil {
		t.Fatalf("apply goals failed: %v", err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected item errors: %+v", result.Errors)
	}
	if len(result.Updated) != 1 || !result.Updated[0].Duplicate {
		t.Fatalf("expected the losing writer to report a duplicate, got %+v", result.Updated)
	}

	// The winning transaction already counted the goal once; the loser must
	// leave no trace of its own pass.
	if got := h.teamPoints(t, "team-1"); got != 0 {
		t.Fatalf("expected no squad points from the rolled back pass, got %d", got)
	}
	if _, ok, err := h.performances.GetByPlayerAndFixture(context.Background(), "ken-fwd-01", gw1.FixtureID); err != nil || ok {
		t.Fatalf("expected the performance write to roll back, ok=%v err=%v", ok, err)
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/performance"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/player"
	performancemock "github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/mocks/domain/performance"
	playermock "github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/mocks/domain/player"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/logging"
)

func TestTeamOfTheWeekService_BestXI_SkipsUnknownPlayersUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	performanceRepo := performancemock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)

	service := NewTeamOfTheWeekService(performanceRepo, playerRepo, nil, logging.NewNop())

	performanceRepo.
		On("ListByGameweek", mock.MatchedBy(func(v context.Context) bool { return v != nil }), 4).
		Return([]performance.Performance{
			{PlayerID: "ken-mid-01", FixtureID: "ken-fx-010", Gameweek: 4, FantasyPoints: 9},
			{PlayerID: "ken-ghost", FixtureID: "ken-fx-010", Gameweek: 4, FantasyPoints: 7},
		}, nil).
		Once()
	playerRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "ken-mid-01").
		Return(player.Player{ID: "ken-mid-01", TeamID: "ken-gor-mahia", Name: "Austin Odhiambo", Position: player.PositionMidfielder}, true, nil).
		Once()
	playerRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "ken-ghost").
		Return(player.Player{}, false, nil).
		Once()

	totw, err := service.BestXI(ctx, 4)
	if err != nil {
		t.Fatalf("best xi: %v", err)
	}
	if len(totw.Entries) != 1 {
		t.Fatalf("unexpected entry count: got=%d want=1", len(totw.Entries))
	}
	if totw.Entries[0].PlayerID != "ken-mid-01" {
		t.Fatalf("unexpected entry: %s", totw.Entries[0].PlayerID)
	}
	if totw.Complete {
		t.Fatalf("expected incomplete team of the week")
	}
}

func TestTeamOfTheWeekService_BestXI_RepoErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	performanceRepo := performancemock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)

	service := NewTeamOfTheWeekService(performanceRepo, playerRepo, nil, logging.NewNop())

	storeErr := errors.New("storage offline")
	performanceRepo.
		On("ListByGameweek", mock.MatchedBy(func(v context.Context) bool { return v != nil }), 2).
		Return(nil, storeErr).
		Once()

	if _, err := service.BestXI(ctx, 2); !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}

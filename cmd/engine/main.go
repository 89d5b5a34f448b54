package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/app"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/config"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fixture"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/observability"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/logging"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/usecase"
)

// matchdayFile is the on-disk shape of one provider feed drop: a set of
// fixtures with their lineups, events and, once known, final scores.
type matchdayFile struct {
	Fixtures []fixtureBatch `json:"fixtures"`
}

type fixtureBatch struct {
	FixtureID  string     `json:"fixture_id"`
	Gameweek   int        `json:"gameweek"`
	HomeTeamID string     `json:"home_team_id"`
	AwayTeamID string     `json:"away_team_id"`
	HomeTeam   string     `json:"home_team"`
	AwayTeam   string     `json:"away_team"`
	KickoffAt  time.Time  `json:"kickoff_at"`
	Status     string     `json:"status"`
	HomeScore  *int       `json:"home_score"`
	AwayScore  *int       `json:"away_score"`
	FinishedAt *time.Time `json:"finished_at"`

	Lineup          []lineupEntry                `json:"lineup"`
	Goals           []usecase.EventItem          `json:"goals"`
	Assists         []usecase.EventItem          `json:"assists"`
	OwnGoals        []usecase.EventItem          `json:"own_goals"`
	Cards           []usecase.CardItem           `json:"cards"`
	Substitutions   []usecase.SubstitutionItem   `json:"substitutions"`
	GoalkeeperStats []usecase.GoalkeeperStatItem `json:"goalkeeper_stats"`
	Appearances     []usecase.AppearanceItem     `json:"appearances"`
}

type lineupEntry struct {
	PlayerID  string `json:"player_id"`
	TeamID    string `json:"team_id"`
	IsStarter bool   `json:"is_starter"`
}

// fixtureReport summarizes what one fixture's batch changed.
type fixtureReport struct {
	FixtureID string `json:"fixture_id"`
	Gameweek  int    `json:"gameweek"`
	Applied   int    `json:"applied"`
	Duplicate int    `json:"duplicate"`
	Rejected  int    `json:"rejected"`
	Completed bool   `json:"completed"`

	Errors []itemErrorReport `json:"errors,omitempty"`
}

type itemErrorReport struct {
	PlayerID string `json:"player_id"`
	Reason   string `json:"reason"`
}

type runReport struct {
	Source   string          `json:"source"`
	Fixtures []fixtureReport `json:"fixtures"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <matchday.json>\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("shutdown tracing", "error", err)
		}
	}()

	stopProfiling, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := stopProfiling(); err != nil {
			logger.Error("stop profiling", "error", err)
		}
	}()

	engine, err := app.NewEngine(cfg, logger)
	if err != nil {
		logger.Error("build engine", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := engine.Close(ctx); err != nil {
			logger.Error("close engine", "error", err)
		}
	}()

	path := os.Args[1]
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read matchday file", "path", path, "error", err)
		os.Exit(1)
	}

	var file matchdayFile
	if err := sonic.Unmarshal(raw, &file); err != nil {
		logger.Error("decode matchday file", "path", path, "error", err)
		os.Exit(1)
	}

	report := runReport{Source: path, Fixtures: make([]fixtureReport, 0, len(file.Fixtures))}
	for _, batch := range file.Fixtures {
		fr, err := processFixture(ctx, engine, batch)
		if err != nil {
			logger.Error("process fixture", "fixture_id", batch.FixtureID, "error", err)
			os.Exit(1)
		}
		report.Fixtures = append(report.Fixtures, fr)
	}

	if err := writeReport(report); err != nil {
		logger.Error("write report", "error", err)
		os.Exit(1)
	}
}

func processFixture(ctx context.Context, engine *app.Engine, batch fixtureBatch) (fixtureReport, error) {
	gw := fixture.GameweekContext{Gameweek: batch.Gameweek, FixtureID: batch.FixtureID}

	var result usecase.BatchResult

	if len(batch.Lineup) > 0 {
		entries := make([]usecase.LineupEntry, 0, len(batch.Lineup))
		for _, e := range batch.Lineup {
			entries = append(entries, usecase.LineupEntry{
				PlayerID:  e.PlayerID,
				TeamID:    e.TeamID,
				IsStarter: e.IsStarter,
			})
		}
		seeded, err := engine.Fixtures.SeedLineup(ctx, gw, entries)
		if err != nil {
			return fixtureReport{}, err
		}
		accumulate(&result, seeded)
	}

	ev := engine.Events
	steps := []func() (usecase.BatchResult, error){
		func() (usecase.BatchResult, error) { return ev.ApplyAppearances(ctx, gw, batch.Appearances) },
		func() (usecase.BatchResult, error) { return ev.ApplyGoals(ctx, gw, batch.Goals) },
		func() (usecase.BatchResult, error) { return ev.ApplyAssists(ctx, gw, batch.Assists) },
		func() (usecase.BatchResult, error) { return ev.ApplyOwnGoals(ctx, gw, batch.OwnGoals) },
		func() (usecase.BatchResult, error) { return ev.ApplyCards(ctx, gw, batch.Cards) },
		func() (usecase.BatchResult, error) { return ev.ApplySubstitutions(ctx, gw, batch.Substitutions) },
		func() (usecase.BatchResult, error) { return ev.ApplyGoalkeeperStats(ctx, gw, batch.GoalkeeperStats) },
	}
	for _, step := range steps {
		part, err := step()
		if err != nil {
			return fixtureReport{}, err
		}
		accumulate(&result, part)
	}

	completed := false
	if fixture.IsCompletedStatus(batch.Status) && batch.HomeScore != nil && batch.AwayScore != nil {
		final, err := engine.Fixtures.CompleteFixture(ctx, fixture.Fixture{
			ID:         batch.FixtureID,
			Gameweek:   batch.Gameweek,
			HomeTeamID: batch.HomeTeamID,
			AwayTeamID: batch.AwayTeamID,
			HomeTeam:   batch.HomeTeam,
			AwayTeam:   batch.AwayTeam,
			KickoffAt:  batch.KickoffAt,
			HomeScore:  batch.HomeScore,
			AwayScore:  batch.AwayScore,
			Status:     batch.Status,
			FinishedAt: batch.FinishedAt,
		})
		if err != nil {
			return fixtureReport{}, err
		}
		accumulate(&result, final)
		completed = true
	}

	fr := fixtureReport{
		FixtureID: batch.FixtureID,
		Gameweek:  batch.Gameweek,
		Completed: completed,
	}
	for _, update := range result.Updated {
		if update.Duplicate {
			fr.Duplicate++
			continue
		}
		fr.Applied++
	}
	for _, itemErr := range result.Errors {
		fr.Rejected++
		fr.Errors = append(fr.Errors, itemErrorReport{PlayerID: itemErr.PlayerID, Reason: itemErr.Reason})
	}

	return fr, nil
}

func accumulate(dst *usecase.BatchResult, part usecase.BatchResult) {
	dst.Updated = append(dst.Updated, part.Updated...)
	dst.Errors = append(dst.Errors, part.Errors...)
}

func writeReport(report runReport) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	encoded, err := sonic.Marshal(report)
	if err != nil {
		return err
	}
	_, _ = buf.Write(encoded)
	_ = buf.WriteByte('\n')

	_, err = buf.WriteTo(os.Stdout)
	return err
}

package memory

import (
	"time"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fixture"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/player"
)

// Kenyan Premier League demo data for local runs and tests.
const (
	TeamGorMahia    = "ken-gor-mahia"
	TeamAFCLeopards = "ken-afc-leopards"
	TeamTusker      = "ken-tusker"
	TeamBandari     = "ken-bandari"
	TeamSofapaka    = "ken-sofapaka"
	TeamKakamega    = "ken-kakamega-homeboyz"
)

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "ken-gk-01", TeamID: TeamGorMahia, Name: "Gad Mathews", Position: player.PositionGoalkeeper, CurrentValue: 45},
		{ID: "ken-gk-02", TeamID: TeamTusker, Name: "Patrick Matasi", Position: player.PositionGoalkeeper, CurrentValue: 42},
		{ID: "ken-gk-03", TeamID: TeamBandari, Name: "Farouk Shikhalo", Position: player.PositionGoalkeeper, CurrentValue: 40},
		{ID: "ken-def-01", TeamID: TeamGorMahia, Name: "Philemon Otieno", Position: player.PositionDefender, CurrentValue: 48},
		{ID: "ken-def-02", TeamID: TeamAFCLeopards, Name: "Collins Shichenje", Position: player.PositionDefender, CurrentValue: 46},
		{ID: "ken-def-03", TeamID: TeamTusker, Name: "Eugene Asike", Position: player.PositionDefender, CurrentValue: 47},
		{ID: "ken-def-04", TeamID: TeamBandari, Name: "Fred Nkata", Position: player.PositionDefender, CurrentValue: 43},
		{ID: "ken-def-05", TeamID: TeamSofapaka, Name: "Maurice Odipo", Position: player.PositionDefender, CurrentValue: 41},
		{ID: "ken-def-06", TeamID: TeamKakamega, Name: "David Okoth", Position: player.PositionDefender, CurrentValue: 40},
		{ID: "ken-mid-01", TeamID: TeamGorMahia, Name: "Austin Odhiambo", Position: player.PositionMidfielder, CurrentValue: 55},
		{ID: "ken-mid-02", TeamID: TeamAFCLeopards, Name: "Eugene Mukangula", Position: player.PositionMidfielder, CurrentValue: 52},
		{ID: "ken-mid-03", TeamID: TeamTusker, Name: "Jackson Macharia", Position: player.PositionMidfielder, CurrentValue: 53},
		{ID: "ken-mid-04", TeamID: TeamBandari, Name: "Danson Chetambe", Position: player.PositionMidfielder, CurrentValue: 49},
		{ID: "ken-mid-05", TeamID: TeamSofapaka, Name: "Lawrence Juma", Position: player.PositionMidfielder, CurrentValue: 50},
		{ID: "ken-mid-06", TeamID: TeamKakamega, Name: "Moses Shummah", Position: player.PositionMidfielder, CurrentValue: 48},
		{ID: "ken-fwd-01", TeamID: TeamGorMahia, Name: "Benson Omala", Position: player.PositionForward, CurrentValue: 60},
		{ID: "ken-fwd-02", TeamID: TeamAFCLeopards, Name: "Elvis Rupia", Position: player.PositionForward, CurrentValue: 56},
		{ID: "ken-fwd-03", TeamID: TeamTusker, Name: "Deogratius Ojok", Position: player.PositionForward, CurrentValue: 54},
		{ID: "ken-fwd-04", TeamID: TeamBandari, Name: "William Wadri", Position: player.PositionForward, CurrentValue: 52},
		{ID: "ken-fwd-05", TeamID: TeamSofapaka, Name: "John Avire", Position: player.PositionForward, CurrentValue: 51},
	}
}

func SeedFixtures() []fixture.Fixture {
	kickoff := time.Date(2026, time.February, 7, 15, 0, 0, 0, time.UTC)
	return []fixture.Fixture{
		{
			ID:         "ken-fx-001",
			Gameweek:   1,
			HomeTeamID: TeamGorMahia,
			AwayTeamID: TeamAFCLeopards,
			HomeTeam:   "Gor Mahia",
			AwayTeam:   "AFC Leopards",
			KickoffAt:  kickoff,
			Status:     fixture.StatusScheduled,
		},
		{
			ID:         "ken-fx-002",
			Gameweek:   1,
			HomeTeamID: TeamTusker,
			AwayTeamID: TeamBandari,
			HomeTeam:   "Tusker",
			AwayTeam:   "Bandari",
			KickoffAt:  kickoff.Add(2 * time.Hour),
			Status:     fixture.StatusScheduled,
		},
		{
			ID:         "ken-fx-003",
			Gameweek:   1,
			HomeTeamID: TeamSofapaka,
			AwayTeamID: TeamKakamega,
			HomeTeam:   "Sofapaka",
			AwayTeam:   "Kakamega Homeboyz",
			KickoffAt:  kickoff.Add(26 * time.Hour),
			Status:     fixture.StatusScheduled,
		},
	}
}

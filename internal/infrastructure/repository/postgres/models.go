package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/eventledger"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fantasy"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fixture"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/performance"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/player"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/transfer"
)

type playerTableModel struct {
	ID           string `db:"id"`
	TeamID       string `db:"team_id"`
	Name         string `db:"name"`
	Position     string `db:"position"`
	CurrentValue int64  `db:"current_value"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:           m.ID,
		TeamID:       m.TeamID,
		Name:         m.Name,
		Position:     player.Position(m.Position),
		CurrentValue: m.CurrentValue,
	}
}

type fixtureTableModel struct {
	ID         string     `db:"id"`
	Gameweek   int        `db:"gameweek"`
	HomeTeamID string     `db:"home_team_id"`
	AwayTeamID string     `db:"away_team_id"`
	HomeTeam   string     `db:"home_team"`
	AwayTeam   string     `db:"away_team"`
	KickoffAt  time.Time  `db:"kickoff_at"`
	HomeScore  *int       `db:"home_score"`
	AwayScore  *int       `db:"away_score"`
	Status     string     `db:"status"`
	FinishedAt *time.Time `db:"finished_at"`
}

func (m fixtureTableModel) toDomain() fixture.Fixture {
	return fixture.Fixture{
		ID:         m.ID,
		Gameweek:   m.Gameweek,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		HomeTeam:   m.HomeTeam,
		AwayTeam:   m.AwayTeam,
		KickoffAt:  m.KickoffAt,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		Status:     m.Status,
		FinishedAt: m.FinishedAt,
	}
}

type performanceTableModel struct {
	ID              string    `db:"id"`
	PlayerID        string    `db:"player_id"`
	TeamID          string    `db:"team_id"`
	FixtureID       string    `db:"fixture_id"`
	Gameweek        int       `db:"gameweek"`
	MinutesPlayed   int       `db:"minutes_played"`
	Goals           int       `db:"goals"`
	Assists         int       `db:"assists"`
	CleanSheets     int       `db:"clean_sheets"`
	Saves           int       `db:"saves"`
	OwnGoals        int       `db:"own_goals"`
	PenaltiesSaved  int       `db:"penalties_saved"`
	PenaltiesMissed int       `db:"penalties_missed"`
	YellowCards     int       `db:"yellow_cards"`
	RedCards        int       `db:"red_cards"`
	FantasyPoints   int       `db:"fantasy_points"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (m performanceTableModel) toDomain() performance.Performance {
	return performance.Performance{
		ID:        m.ID,
		PlayerID:  m.PlayerID,
		TeamID:    m.TeamID,
		FixtureID: m.FixtureID,
		Gameweek:  m.Gameweek,
		Counters: performance.Counters{
			MinutesPlayed:   m.MinutesPlayed,
			Goals:           m.Goals,
			Assists:         m.Assists,
			CleanSheets:     m.CleanSheets,
			Saves:           m.Saves,
			OwnGoals:        m.OwnGoals,
			PenaltiesSaved:  m.PenaltiesSaved,
			PenaltiesMissed: m.PenaltiesMissed,
			YellowCards:     m.YellowCards,
			RedCards:        m.RedCards,
		},
		FantasyPoints: m.FantasyPoints,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type processedEventTableModel struct {
	Key        string    `db:"key"`
	FixtureID  string    `db:"fixture_id"`
	EventType  string    `db:"event_type"`
	PlayerID   string    `db:"player_id"`
	Minute     int       `db:"minute"`
	RecordedAt time.Time `db:"recorded_at"`
}

func (m processedEventTableModel) toDomain() eventledger.ProcessedEvent {
	return eventledger.ProcessedEvent{
		Key:        m.Key,
		FixtureID:  m.FixtureID,
		EventType:  eventledger.EventType(m.EventType),
		PlayerID:   m.PlayerID,
		Minute:     m.Minute,
		RecordedAt: m.RecordedAt,
	}
}

type fantasyTeamTableModel struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	Name           string    `db:"name"`
	Budget         int64     `db:"budget"`
	Formation      string    `db:"formation"`
	FreeTransfers  int       `db:"free_transfers"`
	TransferBudget int       `db:"transfer_budget"`
	TotalPoints    int       `db:"total_points"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (m fantasyTeamTableModel) toDomain() fantasy.FantasyTeam {
	return fantasy.FantasyTeam{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Budget:         m.Budget,
		Formation:      m.Formation,
		FreeTransfers:  m.FreeTransfers,
		TransferBudget: m.TransferBudget,
		TotalPoints:    m.TotalPoints,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

type fantasyPlayerTableModel struct {
	ID            string    `db:"id"`
	TeamID        string    `db:"team_id"`
	PlayerID      string    `db:"player_id"`
	IsStarter     bool      `db:"is_starter"`
	IsCaptain     bool      `db:"is_captain"`
	IsViceCaptain bool      `db:"is_vice_captain"`
	PurchasePrice int64     `db:"purchase_price"`
	CurrentValue  int64     `db:"current_value"`
	TotalPoints   int       `db:"total_points"`
	GameweekAdded int       `db:"gameweek_added"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (m fantasyPlayerTableModel) toDomain() fantasy.FantasyPlayer {
	return fantasy.FantasyPlayer{
		ID:            m.ID,
		TeamID:        m.TeamID,
		PlayerID:      m.PlayerID,
		IsStarter:     m.IsStarter,
		IsCaptain:     m.IsCaptain,
		IsViceCaptain: m.IsViceCaptain,
		PurchasePrice: m.PurchasePrice,
		CurrentValue:  m.CurrentValue,
		TotalPoints:   m.TotalPoints,
		GameweekAdded: m.GameweekAdded,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type teamSelectionTableModel struct {
	ID            string         `db:"id"`
	TeamID        string         `db:"team_id"`
	Gameweek      int            `db:"gameweek"`
	Formation     string         `db:"formation"`
	CaptainID     string         `db:"captain_id"`
	ViceCaptainID string         `db:"vice_captain_id"`
	StarterIDs    pq.StringArray `db:"starter_ids"`
	BenchIDs      pq.StringArray `db:"bench_ids"`
	IsFinalized   bool           `db:"is_finalized"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (m teamSelectionTableModel) toDomain() fantasy.TeamSelection {
	return fantasy.TeamSelection{
		ID:            m.ID,
		TeamID:        m.TeamID,
		Gameweek:      m.Gameweek,
		Formation:     m.Formation,
		CaptainID:     m.CaptainID,
		ViceCaptainID: m.ViceCaptainID,
		StarterIDs:    append([]string(nil), m.StarterIDs...),
		BenchIDs:      append([]string(nil), m.BenchIDs...),
		IsFinalized:   m.IsFinalized,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type playerTransferTableModel struct {
	ID          string    `db:"id"`
	TeamID      string    `db:"team_id"`
	PlayerInID  string    `db:"player_in_id"`
	PlayerOutID string    `db:"player_out_id"`
	Gameweek    int       `db:"gameweek"`
	PointCost   int       `db:"point_cost"`
	CreatedAt   time.Time `db:"created_at"`
}

func (m playerTransferTableModel) toDomain() transfer.PlayerTransfer {
	return transfer.PlayerTransfer{
		ID:          m.ID,
		TeamID:      m.TeamID,
		PlayerInID:  m.PlayerInID,
		PlayerOutID: m.PlayerOutID,
		Gameweek:    m.Gameweek,
		PointCost:   m.PointCost,
		CreatedAt:   m.CreatedAt,
	}
}

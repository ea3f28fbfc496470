package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID       int64  `db:"id"`
	LeagueID string `db:"league_public_id"`
	Name     string `db:"name"`
	Short    string `db:"short"`
	LogoURL  string `db:"logo_url"`
}

type gameTableModel struct {
	PublicID   string        `db:"public_id"`
	LeagueID   string        `db:"league_public_id"`
	Round      int           `db:"round"`
	GameDate   time.Time     `db:"game_date"`
	HomeTeamID int64         `db:"home_team_id"`
	AwayTeamID int64         `db:"away_team_id"`
	HomeScore  sql.NullInt32 `db:"home_score"`
	AwayScore  sql.NullInt32 `db:"away_score"`
}

type shotTableModel struct {
	PublicID     string  `db:"public_id"`
	GamePublicID string  `db:"game_public_id"`
	TeamID       int64   `db:"team_id"`
	X            float64 `db:"x"`
	Y            float64 `db:"y"`
	Made         bool    `db:"made"`
}

type playerTableModel struct {
	ID       int64  `db:"id"`
	LeagueID string `db:"league_public_id"`
	TeamID   int64  `db:"team_id"`
	Name     string `db:"name"`
	Position string `db:"position"`
	Number   int    `db:"number"`
}

type playerGameLogRow struct {
	GamePublicID string    `db:"game_public_id"`
	PlayerID     int64     `db:"player_id"`
	TeamID       int64     `db:"team_id"`
	GameDate     time.Time `db:"game_date"`
	Points       int       `db:"points"`
	Rebounds     int       `db:"rebounds"`
	Assists      int       `db:"assists"`
	Steals       int       `db:"steals"`
	Efficiency   int       `db:"efficiency"`
}

type teamAveragesTableModel struct {
	TeamID          int64   `db:"team_id"`
	Games           int     `db:"games"`
	PointsPerGame   float64 `db:"points_per_game"`
	ReboundsPerGame float64 `db:"rebounds_per_game"`
	AssistsPerGame  float64 `db:"assists_per_game"`
	StealsPerGame   float64 `db:"steals_per_game"`
	Efficiency      float64 `db:"efficiency"`
}

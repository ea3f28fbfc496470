package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/courtside/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the in-memory demo league into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	exec := func(what, query string, arg map[string]any) error {
		sqlQuery, args, err := sqlx.Named(query, arg)
		if err != nil {
			return fmt.Errorf("bind seed %s query: %w", what, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed %s: %w", what, err)
		}
		return nil
	}

	for _, t := range memory.SeedTeams() {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("seed team %d: %w", t.ID, err)
		}
		if err := exec(fmt.Sprintf("team %d", t.ID), `
INSERT INTO teams (id, league_public_id, name, short, logo_url)
VALUES (:id, :league_public_id, :name, :short, :logo_url)
ON CONFLICT (league_public_id, id) DO NOTHING`, map[string]any{
			"id":               t.ID,
			"league_public_id": t.LeagueID,
			"name":             t.Name,
			"short":            t.Short,
			"logo_url":         t.LogoURL,
		}); err != nil {
			return err
		}
	}

	games := memory.SeedGames()
	for _, g := range games {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("seed game %s: %w", g.ID, err)
		}
		if err := exec("game "+g.ID, `
INSERT INTO games (public_id, league_public_id, round, game_date, home_team_id, away_team_id, home_score, away_score)
VALUES (:public_id, :league_public_id, :round, :game_date, :home_team_id, :away_team_id, :home_score, :away_score)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":        g.ID,
			"league_public_id": g.LeagueID,
			"round":            g.Round,
			"game_date":        g.Date.UTC(),
			"home_team_id":     g.HomeTeamID,
			"away_team_id":     g.AwayTeamID,
			"home_score":       ptrToNullInt32(g.HomeScore),
			"away_score":       ptrToNullInt32(g.AwayScore),
		}); err != nil {
			return err
		}
	}

	for _, s := range memory.SeedShots(games) {
		if err := exec("shot "+s.ID, `
INSERT INTO shots (public_id, game_public_id, team_id, x, y, made)
VALUES (:public_id, :game_public_id, :team_id, :x, :y, :made)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":      s.ID,
			"game_public_id": s.GameID,
			"team_id":        s.TeamID,
			"x":              s.X,
			"y":              s.Y,
			"made":           s.Made,
		}); err != nil {
			return err
		}
	}

	players := memory.SeedPlayers()
	for _, p := range players {
		if err := exec(fmt.Sprintf("player %d", p.ID), `
INSERT INTO players (id, league_public_id, team_id, name, position, number)
VALUES (:id, :league_public_id, :team_id, :name, :position, :number)
ON CONFLICT (league_public_id, id) DO NOTHING`, map[string]any{
			"id":               p.ID,
			"league_public_id": p.LeagueID,
			"team_id":          p.TeamID,
			"name":             p.Name,
			"position":         p.Position,
			"number":           p.Number,
		}); err != nil {
			return err
		}
	}

	for _, row := range memory.SeedPlayerLogs(players, games) {
		if err := exec(fmt.Sprintf("player log %s/%d", row.GameID, row.PlayerID), `
INSERT INTO player_game_logs (game_public_id, player_id, team_id, points, rebounds, assists, steals, efficiency)
VALUES (:game_public_id, :player_id, :team_id, :points, :rebounds, :assists, :steals, :efficiency)
ON CONFLICT (game_public_id, player_id) DO NOTHING`, map[string]any{
			"game_public_id": row.GameID,
			"player_id":      row.PlayerID,
			"team_id":        row.TeamID,
			"points":         row.Points,
			"rebounds":       row.Rebounds,
			"assists":        row.Assists,
			"steals":         row.Steals,
			"efficiency":     row.Efficiency,
		}); err != nil {
			return err
		}
	}

	for leagueID, items := range memory.SeedTeamAverages() {
		for _, a := range items {
			if err := exec(fmt.Sprintf("team averages %d", a.TeamID), `
INSERT INTO team_averages (league_public_id, team_id, games, points_per_game, rebounds_per_game, assists_per_game, steals_per_game, efficiency)
VALUES (:league_public_id, :team_id, :games, :points_per_game, :rebounds_per_game, :assists_per_game, :steals_per_game, :efficiency)
ON CONFLICT (league_public_id, team_id) DO NOTHING`, map[string]any{
				"league_public_id":  leagueID,
				"team_id":           a.TeamID,
				"games":             a.Games,
				"points_per_game":   a.PointsPerGame,
				"rebounds_per_game": a.ReboundsPerGame,
				"assists_per_game":  a.AssistsPerGame,
				"steals_per_game":   a.StealsPerGame,
				"efficiency":        a.Efficiency,
			}); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}

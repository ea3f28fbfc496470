package postgres

import (
	qb "github.com/riskibarqy/courtside/internal/platform/querybuilder"
)

var (
	teamColumns = []string{"id", "league_public_id", "name", "short", "logo_url"}

	gameColumns = []string{
		"public_id",
		"league_public_id",
		"round",
		"game_date",
		"home_team_id",
		"away_team_id",
		"home_score",
		"away_score",
	}

	shotColumns = []string{
		"s.public_id",
		"s.game_public_id",
		"s.team_id",
		"s.x",
		"s.y",
		"s.made",
	}

	playerColumns = []string{"id", "league_public_id", "team_id", "name", "position", "number"}

	playerLogColumns = []string{
		"l.game_public_id",
		"l.player_id",
		"l.team_id",
		"g.game_date",
		"l.points",
		"l.rebounds",
		"l.assists",
		"l.steals",
		"l.efficiency",
	}

	teamAveragesColumns = []string{
		"team_id",
		"games",
		"points_per_game",
		"rebounds_per_game",
		"assists_per_game",
		"steals_per_game",
		"efficiency",
	}
)

func teamsByLeagueQuery(leagueID string) (string, []any, error) {
	return qb.Select(teamColumns...).From("teams").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
}

func teamByIDQuery(leagueID string, teamID int64) (string, []any, error) {
	return qb.Select(teamColumns...).From("teams").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("id", teamID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
}

func gamesByLeagueQuery(leagueID string) (string, []any, error) {
	return qb.Select(gameColumns...).From("games").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("round", "game_date", "public_id").
		ToSQL()
}

// gamesByTeamQuery matches the team on either side of the fixture.
func gamesByTeamQuery(leagueID string, teamID int64) (string, []any, error) {
	return qb.Select(gameColumns...).From("games").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Or(
				qb.Eq("home_team_id", teamID),
				qb.Eq("away_team_id", teamID),
			),
			qb.IsNull("deleted_at"),
		).
		OrderBy("round", "game_date", "public_id").
		ToSQL()
}

// shotsByTeamQuery scopes shots to the league through their game.
func shotsByTeamQuery(leagueID string, teamID int64) (string, []any, error) {
	return qb.Select(shotColumns...).From("shots s").
		Join("games g ON g.public_id = s.game_public_id").
		Where(
			qb.Eq("g.league_public_id", leagueID),
			qb.Eq("s.team_id", teamID),
			qb.IsNull("s.deleted_at"),
			qb.IsNull("g.deleted_at"),
		).
		OrderBy("g.game_date", "s.public_id").
		ToSQL()
}

func playerByIDQuery(leagueID string, playerID int64) (string, []any, error) {
	return qb.Select(playerColumns...).From("players").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("id", playerID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
}

// playerLogsQuery returns the newest game first.
func playerLogsQuery(leagueID string, playerID int64) (string, []any, error) {
	return qb.Select(playerLogColumns...).From("player_game_logs l").
		Join("games g ON g.public_id = l.game_public_id").
		Where(
			qb.Eq("g.league_public_id", leagueID),
			qb.Eq("l.player_id", playerID),
			qb.IsNull("l.deleted_at"),
			qb.IsNull("g.deleted_at"),
		).
		OrderBy("g.game_date DESC").
		ToSQL()
}

func teamAveragesQuery(leagueID string, teamID int64) (string, []any, error) {
	return qb.Select(teamAveragesColumns...).From("team_averages").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("team_id", teamID),
		).
		Limit(1).
		ToSQL()
}

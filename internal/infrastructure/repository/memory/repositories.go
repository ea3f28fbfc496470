package memory

import (
	"context"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/playerlog"
	"github.com/riskibarqy/courtside/internal/domain/shot"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
)

type TeamRepository struct {
	byLeague index[team.Team]
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	return &TeamRepository{byLeague: newIndex(teams, func(t team.Team) string { return t.LeagueID })}
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID string) ([]team.Team, error) {
	return r.byLeague.list(leagueID), nil
}

func (r *TeamRepository) GetByID(_ context.Context, leagueID string, teamID int64) (team.Team, bool, error) {
	item, ok := r.byLeague.first(leagueID, func(t team.Team) bool { return t.ID == teamID })
	return item, ok, nil
}

type GameRepository struct {
	byLeague index[game.Game]
}

func NewGameRepository(games []game.Game) *GameRepository {
	return &GameRepository{byLeague: newIndex(games, func(g game.Game) string { return g.LeagueID })}
}

func (r *GameRepository) ListByLeague(_ context.Context, leagueID string) ([]game.Game, error) {
	return r.byLeague.list(leagueID), nil
}

func (r *GameRepository) ListByTeam(_ context.Context, leagueID string, teamID int64) ([]game.Game, error) {
	out := make([]game.Game, 0)
	for _, item := range r.byLeague[leagueID] {
		if item.Involves(teamID) {
			out = append(out, item)
		}
	}
	return out, nil
}

type ShotRepository struct {
	byTeam index[shot.Shot]
}

// NewShotRepository scopes shots per league through gameLeague, which maps a
// game id to its league.
func NewShotRepository(shots []shot.Shot, gameLeague map[string]string) *ShotRepository {
	return &ShotRepository{byTeam: newIndex(shots, func(s shot.Shot) string {
		return scopedKey(gameLeague[s.GameID], s.TeamID)
	})}
}

func (r *ShotRepository) ListByTeam(_ context.Context, leagueID string, teamID int64) ([]shot.Shot, error) {
	return r.byTeam.list(scopedKey(leagueID, teamID)), nil
}

type PlayerLogRepository struct {
	players index[playerlog.Player]
	rows    index[playerlog.Row]
}

func NewPlayerLogRepository(players []playerlog.Player, rows []playerlog.Row) *PlayerLogRepository {
	leagueOf := make(map[int64]string, len(players))
	for _, p := range players {
		leagueOf[p.ID] = p.LeagueID
	}

	return &PlayerLogRepository{
		players: newIndex(players, func(p playerlog.Player) string { return scopedKey(p.LeagueID, p.ID) }),
		rows: newIndex(rows, func(row playerlog.Row) string {
			return scopedKey(leagueOf[row.PlayerID], row.PlayerID)
		}),
	}
}

func (r *PlayerLogRepository) GetPlayer(_ context.Context, leagueID string, playerID int64) (playerlog.Player, bool, error) {
	item, ok := r.players.first(scopedKey(leagueID, playerID), nil)
	return item, ok, nil
}

func (r *PlayerLogRepository) ListByPlayer(_ context.Context, leagueID string, playerID int64) ([]playerlog.Row, error) {
	return r.rows.list(scopedKey(leagueID, playerID)), nil
}

type TeamStatsRepository struct {
	byTeam index[teamstats.Averages]
}

// NewTeamStatsRepository takes averages keyed by league id.
func NewTeamStatsRepository(byLeague map[string][]teamstats.Averages) *TeamStatsRepository {
	ix := make(index[teamstats.Averages])
	for leagueID, items := range byLeague {
		for _, item := range items {
			key := scopedKey(leagueID, item.TeamID)
			ix[key] = append(ix[key], item)
		}
	}
	return &TeamStatsRepository{byTeam: ix}
}

func (r *TeamStatsRepository) GetAveragesByTeam(_ context.Context, leagueID string, teamID int64) (teamstats.Averages, bool, error) {
	item, ok := r.byTeam.first(scopedKey(leagueID, teamID), nil)
	return item, ok, nil
}

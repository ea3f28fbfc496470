package usecase

import (
	"context"
	"sort"

	"github.com/riskibarqy/courtside/internal/domain/analytics"
	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

// ScheduleEntry is one game of a team's calendar seen from that team's side.
type ScheduleEntry struct {
	Game         game.Game
	OpponentID   int64
	OpponentName string
	IsHome       bool
	Played       bool
	Result       string
}

type ScheduleService struct {
	teamRepo team.Repository
	gameRepo game.Repository
	logger   *logging.Logger
}

func NewScheduleService(teamRepo team.Repository, gameRepo game.Repository, logger *logging.Logger) *ScheduleService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScheduleService{teamRepo: teamRepo, gameRepo: gameRepo, logger: logger}
}

func (s *ScheduleService) ListByTeam(ctx context.Context, leagueID string, teamID int64) ([]ScheduleEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.ListByTeam", leagueAttr(leagueID), teamAttr(teamID))
	defer span.End()

	leagueID, err := requireLeagueAndID(leagueID, teamID, "team")
	if err != nil {
		return nil, err
	}
	if _, err := loadTeam(ctx, s.teamRepo, leagueID, teamID); err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, unavailable("list teams", err)
	}
	nameByID := make(map[int64]string, len(teams))
	for _, t := range teams {
		nameByID[t.ID] = t.Name
	}

	games, err := s.gameRepo.ListByTeam(ctx, leagueID, teamID)
	if err != nil {
		return nil, unavailable("list team games", err)
	}
	games = validGames(ctx, s.logger, games)

	sort.SliceStable(games, func(i, j int) bool {
		if games[i].Round != games[j].Round {
			return games[i].Round < games[j].Round
		}
		return games[i].Date.Before(games[j].Date)
	})

	out := make([]ScheduleEntry, 0, len(games))
	for _, g := range games {
		if !g.Involves(teamID) {
			continue
		}
		opponentID := g.OpponentOf(teamID)
		out = append(out, ScheduleEntry{
			Game:         g,
			OpponentID:   opponentID,
			OpponentName: nameByID[opponentID],
			IsHome:       g.HomeTeamID == teamID,
			Played:       g.IsPlayed(),
			Result:       analytics.ResultLabel(g, teamID),
		})
	}

	return out, nil
}

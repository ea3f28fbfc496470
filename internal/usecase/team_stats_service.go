package usecase

import (
	"context"

	"github.com/riskibarqy/courtside/internal/domain/analytics"
	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/shot"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

type TeamOverview struct {
	Team     team.Team
	Record   analytics.Record
	Streak   string
	Averages *teamstats.Averages
}

type ShotChart struct {
	TeamID  int64
	Summary analytics.ShotSummary
	Zones   []analytics.ZoneSummary
}

type TeamStatsService struct {
	teamRepo  team.Repository
	gameRepo  game.Repository
	shotRepo  shot.Repository
	statsRepo teamstats.Repository
	logger    *logging.Logger
}

func NewTeamStatsService(
	teamRepo team.Repository,
	gameRepo game.Repository,
	shotRepo shot.Repository,
	statsRepo teamstats.Repository,
	logger *logging.Logger,
) *TeamStatsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamStatsService{
		teamRepo:  teamRepo,
		gameRepo:  gameRepo,
		shotRepo:  shotRepo,
		statsRepo: statsRepo,
		logger:    logger,
	}
}

func (s *TeamStatsService) ListTeams(ctx context.Context, leagueID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.ListTeams", leagueAttr(leagueID))
	defer span.End()

	leagueID, err := requireLeague(leagueID)
	if err != nil {
		return nil, err
	}

	items, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, unavailable("list teams", err)
	}
	return items, nil
}

func (s *TeamStatsService) GetOverview(ctx context.Context, leagueID string, teamID int64) (TeamOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.GetOverview", leagueAttr(leagueID), teamAttr(teamID))
	defer span.End()

	leagueID, err := requireLeagueAndID(leagueID, teamID, "team")
	if err != nil {
		return TeamOverview{}, err
	}

	item, err := loadTeam(ctx, s.teamRepo, leagueID, teamID)
	if err != nil {
		return TeamOverview{}, err
	}

	var (
		games       []game.Game
		averages    teamstats.Averages
		hasAverages bool
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.gameRepo.ListByTeam(ctx, leagueID, teamID)
		if err != nil {
			return unavailable("list team games", err)
		}
		games = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		avg, ok, err := s.statsRepo.GetAveragesByTeam(ctx, leagueID, teamID)
		if err != nil {
			return unavailable("get team averages", err)
		}
		averages, hasAverages = avg, ok
		return nil
	})
	if err := p.Wait(); err != nil {
		return TeamOverview{}, err
	}

	games = validGames(ctx, s.logger, games)
	out := TeamOverview{
		Team:   item,
		Record: analytics.WinLossRecord(games, teamID),
		Streak: analytics.Streak(games, teamID),
	}
	if hasAverages {
		out.Averages = &averages
	}

	return out, nil
}

func (s *TeamStatsService) GetShotChart(ctx context.Context, leagueID string, teamID int64) (ShotChart, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.GetShotChart", leagueAttr(leagueID), teamAttr(teamID))
	defer span.End()

	leagueID, err := requireLeagueAndID(leagueID, teamID, "team")
	if err != nil {
		return ShotChart{}, err
	}
	if _, err := loadTeam(ctx, s.teamRepo, leagueID, teamID); err != nil {
		return ShotChart{}, err
	}

	shots, err := s.shotRepo.ListByTeam(ctx, leagueID, teamID)
	if err != nil {
		return ShotChart{}, unavailable("list team shots", err)
	}

	outOfBounds := 0
	for _, item := range shots {
		if !item.InBounds() {
			outOfBounds++
		}
	}
	if outOfBounds > 0 {
		s.logger.DebugContext(ctx, "shots outside court frame", "team_id", teamID, "count", outOfBounds)
	}

	return ShotChart{
		TeamID:  teamID,
		Summary: analytics.AggregateShots(shots),
		Zones:   analytics.ShotZones(shots),
	}, nil
}

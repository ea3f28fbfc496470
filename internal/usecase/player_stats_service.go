package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/courtside/internal/domain/analytics"
	"github.com/riskibarqy/courtside/internal/domain/playerlog"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultRecentWindow = 5

// PlayerOverview is everything the player page shows: season and recent-form
// averages, their trends, and the radar against the team.
type PlayerOverview struct {
	Player  playerlog.Player
	Season  *analytics.Averages
	Recent  *analytics.Averages
	Window  int
	Trends  analytics.TrendSet
	Radar   []analytics.RadarAxis
	GameLog []playerlog.Row
}

type PlayerStatsService struct {
	logRepo       playerlog.Repository
	teamStatsRepo teamstats.Repository
	defaultWindow int
	logger        *logging.Logger
}

func NewPlayerStatsService(
	logRepo playerlog.Repository,
	teamStatsRepo teamstats.Repository,
	defaultWindow int,
	logger *logging.Logger,
) *PlayerStatsService {
	if logger == nil {
		logger = logging.Default()
	}
	if defaultWindow <= 0 {
		defaultWindow = DefaultRecentWindow
	}

	return &PlayerStatsService{
		logRepo:       logRepo,
		teamStatsRepo: teamStatsRepo,
		defaultWindow: defaultWindow,
		logger:        logger,
	}
}

func (s *PlayerStatsService) GetOverview(ctx context.Context, leagueID string, playerID int64, window int) (PlayerOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.GetOverview",
		leagueAttr(leagueID), attribute.Int64("courtside.player_id", playerID), attribute.Int("courtside.window", window))
	defer span.End()

	leagueID, err := requireLeagueAndID(leagueID, playerID, "player")
	if err != nil {
		return PlayerOverview{}, err
	}
	if window < 0 {
		return PlayerOverview{}, fmt.Errorf("%w: window must be >= 0", ErrInvalidInput)
	}
	if window == 0 {
		window = s.defaultWindow
	}

	player, exists, err := s.logRepo.GetPlayer(ctx, leagueID, playerID)
	if err != nil {
		return PlayerOverview{}, unavailable("get player", err)
	}
	if !exists {
		return PlayerOverview{}, fmt.Errorf("%w: player %d in league %s", ErrNotFound, playerID, leagueID)
	}

	var (
		rows           []playerlog.Row
		teamAverages   teamstats.Averages
		hasTeamAverage bool
	)

	// Both fetches must land before any metric is computed.
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.logRepo.ListByPlayer(ctx, leagueID, playerID)
		if err != nil {
			return unavailable("list player game logs", err)
		}
		rows = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		avg, ok, err := s.teamStatsRepo.GetAveragesByTeam(ctx, leagueID, player.TeamID)
		if err != nil {
			return unavailable("get team averages", err)
		}
		teamAverages, hasTeamAverage = avg, ok
		return nil
	})
	if err := p.Wait(); err != nil {
		return PlayerOverview{}, err
	}

	rows = validRows(ctx, s.logger, rows)
	recentRows := analytics.RecentWindow(rows, window)

	out := PlayerOverview{
		Player:  player,
		Window:  window,
		GameLog: recentRows,
	}

	season, ok := analytics.AverageOf(rows)
	if !ok {
		out.Trends = analytics.CompareAverages(nil, analytics.Averages{})
		return out, nil
	}
	out.Season = &season

	if recent, ok := analytics.AverageOf(recentRows); ok {
		out.Recent = &recent
	}
	out.Trends = analytics.CompareAverages(out.Recent, season)

	if hasTeamAverage {
		if err := teamAverages.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skipping radar for invalid team averages", "team_id", player.TeamID, "error", err)
		} else {
			out.Radar = analytics.Radar(season, teamAverages)
		}
	}

	return out, nil
}

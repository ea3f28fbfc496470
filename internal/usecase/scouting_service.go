package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/courtside/internal/domain/analytics"
	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/shot"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultScoutingWorkers = 4

// OpponentReport is the scouting sheet of a single opponent.
type OpponentReport struct {
	Team       team.Team
	Record     analytics.Record
	Streak     string
	HeadToHead analytics.Record
	Averages   *teamstats.Averages
	Shooting   analytics.ShotSummary
	Zones      []analytics.ZoneSummary
}

type ScoutingReport struct {
	TeamID    int64
	Opponents []OpponentReport
}

type ScoutingService struct {
	teamRepo  team.Repository
	gameRepo  game.Repository
	shotRepo  shot.Repository
	statsRepo teamstats.Repository
	workers   int
	logger    *logging.Logger
}

func NewScoutingService(
	teamRepo team.Repository,
	gameRepo game.Repository,
	shotRepo shot.Repository,
	statsRepo teamstats.Repository,
	workers int,
	logger *logging.Logger,
) *ScoutingService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = DefaultScoutingWorkers
	}

	return &ScoutingService{
		teamRepo:  teamRepo,
		gameRepo:  gameRepo,
		shotRepo:  shotRepo,
		statsRepo: statsRepo,
		workers:   workers,
		logger:    logger,
	}
}

// GetReport scouts the given opponents of teamID. With no opponent ids every
// other team of the league is scouted. Reports keep the requested order.
func (s *ScoutingService) GetReport(ctx context.Context, leagueID string, teamID int64, opponentIDs []int64) (ScoutingReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutingService.GetReport",
		leagueAttr(leagueID), teamAttr(teamID), attribute.Int("courtside.opponents_requested", len(opponentIDs)))
	defer span.End()

	leagueID, err := requireLeagueAndID(leagueID, teamID, "team")
	if err != nil {
		return ScoutingReport{}, err
	}
	if _, err := loadTeam(ctx, s.teamRepo, leagueID, teamID); err != nil {
		return ScoutingReport{}, err
	}

	opponents, err := s.resolveOpponents(ctx, leagueID, teamID, opponentIDs)
	if err != nil {
		return ScoutingReport{}, err
	}
	if len(opponents) == 0 {
		return ScoutingReport{TeamID: teamID, Opponents: []OpponentReport{}}, nil
	}

	workerCount := s.workers
	if workerCount > len(opponents) {
		workerCount = len(opponents)
	}
	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return ScoutingReport{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	reports := make([]OpponentReport, len(opponents))
	errs := make([]error, len(opponents))

	var workers sync.WaitGroup
	for i, opponent := range opponents {
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()
			reports[i], errs[i] = s.scoutOpponent(ctx, leagueID, teamID, opponent)
		}); err != nil {
			workers.Done()
			errs[i] = fmt.Errorf("submit scouting task team=%d: %w", opponent.ID, err)
		}
	}
	workers.Wait()

	for _, err := range errs {
		if err != nil {
			return ScoutingReport{}, err
		}
	}

	return ScoutingReport{TeamID: teamID, Opponents: reports}, nil
}

func (s *ScoutingService) resolveOpponents(ctx context.Context, leagueID string, teamID int64, opponentIDs []int64) ([]team.Team, error) {
	if len(opponentIDs) == 0 {
		teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, unavailable("list teams", err)
		}
		out := make([]team.Team, 0, len(teams))
		for _, t := range teams {
			if t.ID != teamID {
				out = append(out, t)
			}
		}
		return out, nil
	}

	seen := make(map[int64]struct{}, len(opponentIDs))
	out := make([]team.Team, 0, len(opponentIDs))
	for _, id := range opponentIDs {
		if id <= 0 {
			return nil, fmt.Errorf("%w: opponent id must be > 0", ErrInvalidInput)
		}
		if id == teamID {
			return nil, fmt.Errorf("%w: team cannot scout itself", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		item, err := loadTeam(ctx, s.teamRepo, leagueID, id)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *ScoutingService) scoutOpponent(ctx context.Context, leagueID string, teamID int64, opponent team.Team) (OpponentReport, error) {
	games, err := s.gameRepo.ListByTeam(ctx, leagueID, opponent.ID)
	if err != nil {
		return OpponentReport{}, unavailable(fmt.Sprintf("list games team=%d", opponent.ID), err)
	}
	games = validGames(ctx, s.logger, games)

	shots, err := s.shotRepo.ListByTeam(ctx, leagueID, opponent.ID)
	if err != nil {
		return OpponentReport{}, unavailable(fmt.Sprintf("list shots team=%d", opponent.ID), err)
	}

	averages, hasAverages, err := s.statsRepo.GetAveragesByTeam(ctx, leagueID, opponent.ID)
	if err != nil {
		return OpponentReport{}, unavailable(fmt.Sprintf("get averages team=%d", opponent.ID), err)
	}

	headToHead := make([]game.Game, 0)
	for _, g := range games {
		if g.Involves(teamID) {
			headToHead = append(headToHead, g)
		}
	}

	summary := analytics.AggregateShots(shots)
	summary.Points = nil

	report := OpponentReport{
		Team:       opponent,
		Record:     analytics.WinLossRecord(games, opponent.ID),
		Streak:     analytics.Streak(games, opponent.ID),
		HeadToHead: analytics.WinLossRecord(headToHead, teamID),
		Shooting:   summary,
		Zones:      analytics.ShotZones(shots),
	}
	if hasAverages {
		report.Averages = &averages
	}
	return report, nil
}

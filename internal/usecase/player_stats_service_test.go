package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/analytics"
	"github.com/riskibarqy/courtside/internal/domain/playerlog"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
	"github.com/riskibarqy/courtside/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	playerlogmock "github.com/riskibarqy/courtside/internal/mocks/domain/playerlog"
	teamstatsmock "github.com/riskibarqy/courtside/internal/mocks/domain/teamstats"
	"github.com/stretchr/testify/mock"
)

func TestPlayerStatsService_GetOverview_Seeded(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos()
	service := NewPlayerStatsService(repos.logs, repos.stats, 0, logging.NewNop())

	got, err := service.GetOverview(context.Background(), memory.LeagueIDLigaEndesa, 101, 2)
	if err != nil {
		t.Fatalf("get overview: %v", err)
	}
	if got.Player.Name != "Facundo Campazzo" {
		t.Fatalf("unexpected player: %+v", got.Player)
	}
	if got.Season == nil || got.Season.Games != 4 {
		t.Fatalf("expected season over 4 games, got %+v", got.Season)
	}
	if got.Recent == nil || got.Recent.Games != 2 {
		t.Fatalf("expected recent window of 2 games, got %+v", got.Recent)
	}
	if len(got.GameLog) != 2 || got.GameLog[0].Date.Before(got.GameLog[1].Date) {
		t.Fatalf("expected newest-first game log of 2 rows, got %+v", got.GameLog)
	}
	if len(got.Radar) != 5 {
		t.Fatalf("expected 5 radar axes, got %d", len(got.Radar))
	}
	if got.Trends.Points.Change == analytics.NoData {
		t.Fatalf("expected a points trend, got no data")
	}
}

func TestPlayerStatsService_GetOverview_DefaultWindow(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos()
	service := NewPlayerStatsService(repos.logs, repos.stats, 3, logging.NewNop())

	got, err := service.GetOverview(context.Background(), memory.LeagueIDLigaEndesa, 202, 0)
	if err != nil {
		t.Fatalf("get overview: %v", err)
	}
	if got.Window != 3 || len(got.GameLog) != 3 {
		t.Fatalf("expected default window 3, got window=%d rows=%d", got.Window, len(got.GameLog))
	}
}

func TestPlayerStatsService_GetOverview_InvalidInput(t *testing.T) {
	t.Parallel()

	service := NewPlayerStatsService(nil, nil, 0, logging.NewNop())
	cases := []struct {
		name     string
		leagueID string
		playerID int64
		window   int
	}{
		{name: "empty league", leagueID: " ", playerID: 1},
		{name: "zero player", leagueID: "esp", playerID: 0},
		{name: "negative window", leagueID: "esp", playerID: 1, window: -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.GetOverview(context.Background(), tc.leagueID, tc.playerID, tc.window)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestPlayerStatsService_GetOverview_NotFound(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos()
	service := NewPlayerStatsService(repos.logs, repos.stats, 0, logging.NewNop())

	_, err := service.GetOverview(context.Background(), memory.LeagueIDLigaEndesa, 999, 5)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerStatsService_GetOverview_NoGamesUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	logRepo := playerlogmock.NewRepository(t)
	statsRepo := teamstatsmock.NewRepository(t)
	service := NewPlayerStatsService(logRepo, statsRepo, 0, logging.NewNop())

	leagueID := "esp-liga-endesa-2025"
	logRepo.On("GetPlayer", mock.Anything, leagueID, int64(7)).
		Return(playerlog.Player{ID: 7, LeagueID: leagueID, TeamID: 1, Name: "Rookie"}, true, nil).
		Once()
	logRepo.On("ListByPlayer", mock.Anything, leagueID, int64(7)).
		Return([]playerlog.Row{}, nil).
		Once()
	statsRepo.On("GetAveragesByTeam", mock.Anything, leagueID, int64(1)).
		Return(teamstats.Averages{TeamID: 1, Games: 3, PointsPerGame: 80}, true, nil).
		Once()

	got, err := service.GetOverview(ctx, leagueID, 7, 5)
	if err != nil {
		t.Fatalf("get overview: %v", err)
	}
	if got.Season != nil || got.Recent != nil {
		t.Fatalf("expected no averages for a player without games, got %+v %+v", got.Season, got.Recent)
	}
	if got.Trends.Points.Change != analytics.NoData || !got.Trends.Points.IsPositive {
		t.Fatalf("expected no-data trend, got %+v", got.Trends.Points)
	}
	if got.Radar != nil {
		t.Fatalf("expected no radar, got %+v", got.Radar)
	}
}

func TestPlayerStatsService_GetOverview_DropsInvalidRowsUsingMockery(t *testing.T) {
	t.Parallel()

	logRepo := playerlogmock.NewRepository(t)
	statsRepo := teamstatsmock.NewRepository(t)
	service := NewPlayerStatsService(logRepo, statsRepo, 0, logging.NewNop())

	leagueID := "esp-liga-endesa-2025"
	day := time.Date(2026, 1, 4, 19, 0, 0, 0, time.UTC)
	logRepo.On("GetPlayer", mock.Anything, leagueID, int64(7)).
		Return(playerlog.Player{ID: 7, LeagueID: leagueID, TeamID: 1}, true, nil).
		Once()
	logRepo.On("ListByPlayer", mock.Anything, leagueID, int64(7)).
		Return([]playerlog.Row{
			{GameID: "g1", PlayerID: 7, Date: day, Points: 10, Rebounds: 4, Assists: 2, Steals: 1, Efficiency: 12},
			{GameID: "g2", PlayerID: 7, Date: day.AddDate(0, 0, 7), Points: -3},
			{GameID: "g3", PlayerID: 7, Date: day.AddDate(0, 0, 14), Points: 20, Rebounds: 6, Assists: 4, Steals: 3, Efficiency: -2},
		}, nil).
		Once()
	statsRepo.On("GetAveragesByTeam", mock.Anything, leagueID, int64(1)).
		Return(teamstats.Averages{}, false, nil).
		Once()

	got, err := service.GetOverview(context.Background(), leagueID, 7, 1)
	if err != nil {
		t.Fatalf("get overview: %v", err)
	}
	if got.Season == nil || got.Season.Games != 2 || got.Season.PointsPerGame != "15.0" {
		t.Fatalf("expected season over the 2 valid rows, got %+v", got.Season)
	}
	if got.Recent == nil || got.Recent.PointsPerGame != "20.0" {
		t.Fatalf("expected recent from newest valid row, got %+v", got.Recent)
	}
	if got.Trends.Points.Change != "+33.3%" || !got.Trends.Points.IsPositive {
		t.Fatalf("unexpected points trend: %+v", got.Trends.Points)
	}
	if got.Radar != nil {
		t.Fatalf("expected no radar without team averages, got %+v", got.Radar)
	}
}

func TestPlayerStatsService_GetOverview_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	logRepo := playerlogmock.NewRepository(t)
	statsRepo := teamstatsmock.NewRepository(t)
	service := NewPlayerStatsService(logRepo, statsRepo, 0, logging.NewNop())

	boom := errors.New("connection reset")
	logRepo.On("GetPlayer", mock.Anything, "esp", int64(7)).
		Return(playerlog.Player{ID: 7, TeamID: 1}, true, nil).
		Once()
	logRepo.On("ListByPlayer", mock.Anything, "esp", int64(7)).
		Return(nil, boom).
		Once()
	statsRepo.On("GetAveragesByTeam", mock.Anything, "esp", int64(1)).
		Return(teamstats.Averages{}, false, nil).
		Maybe()

	_, err := service.GetOverview(context.Background(), "esp", 7, 5)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable, got %v", err)
	}
}

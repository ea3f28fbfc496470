package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/analytics"
	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/shot"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
	"github.com/riskibarqy/courtside/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	gamemock "github.com/riskibarqy/courtside/internal/mocks/domain/game"
	shotmock "github.com/riskibarqy/courtside/internal/mocks/domain/shot"
	teammock "github.com/riskibarqy/courtside/internal/mocks/domain/team"
	teamstatsmock "github.com/riskibarqy/courtside/internal/mocks/domain/teamstats"
	"github.com/stretchr/testify/mock"
)

func newSeededTeamStatsService() *TeamStatsService {
	repos := newSeededRepos()
	return NewTeamStatsService(repos.teams, repos.games, repos.shots, repos.stats, logging.NewNop())
}

func TestTeamStatsService_ListTeams(t *testing.T) {
	t.Parallel()

	service := newSeededTeamStatsService()
	got, err := service.ListTeams(context.Background(), memory.LeagueIDLigaEndesa)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 teams, got %d", len(got))
	}

	if _, err := service.ListTeams(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty league, got %v", err)
	}
}

func TestTeamStatsService_GetOverview_Seeded(t *testing.T) {
	t.Parallel()

	service := newSeededTeamStatsService()
	cases := []struct {
		teamID int64
		record analytics.Record
		streak string
	}{
		{teamID: memory.TeamIDRealMadrid, record: analytics.Record{Wins: 3, Losses: 1, Unplayed: 2}, streak: "L1"},
		{teamID: memory.TeamIDBarcelona, record: analytics.Record{Wins: 2, Losses: 2, Unplayed: 2}, streak: "W1"},
		{teamID: memory.TeamIDValencia, record: analytics.Record{Wins: 0, Losses: 4, Unplayed: 2}, streak: "L4"},
		{teamID: memory.TeamIDUnicaja, record: analytics.Record{Wins: 3, Losses: 1, Unplayed: 2}, streak: "W2"},
	}

	for _, tc := range cases {
		got, err := service.GetOverview(context.Background(), memory.LeagueIDLigaEndesa, tc.teamID)
		if err != nil {
			t.Fatalf("get overview team=%d: %v", tc.teamID, err)
		}
		if got.Record != tc.record {
			t.Fatalf("team=%d unexpected record: got=%+v want=%+v", tc.teamID, got.Record, tc.record)
		}
		if got.Streak != tc.streak {
			t.Fatalf("team=%d unexpected streak: got=%s want=%s", tc.teamID, got.Streak, tc.streak)
		}
		if got.Averages == nil {
			t.Fatalf("team=%d expected averages", tc.teamID)
		}
	}
}

func TestTeamStatsService_GetOverview_TeamNotFound(t *testing.T) {
	t.Parallel()

	service := newSeededTeamStatsService()
	_, err := service.GetOverview(context.Background(), memory.LeagueIDLigaEndesa, 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamStatsService_GetOverview_SkipsMalformedGamesUsingMockery(t *testing.T) {
	t.Parallel()

	leagueID := "esp-liga-endesa-2025"
	teamRepo := teammock.NewRepository(t)
	gameRepo := gamemock.NewRepository(t)
	statsRepo := teamstatsmock.NewRepository(t)
	service := NewTeamStatsService(teamRepo, gameRepo, shotmock.NewRepository(t), statsRepo, logging.NewNop())

	day := time.Date(2026, 1, 4, 19, 0, 0, 0, time.UTC)
	teamRepo.On("GetByID", mock.Anything, leagueID, int64(1)).
		Return(team.Team{ID: 1, LeagueID: leagueID, Name: "Real Madrid"}, true, nil).
		Once()
	gameRepo.On("ListByTeam", mock.Anything, leagueID, int64(1)).
		Return([]game.Game{
			{ID: "g1", HomeTeamID: 1, AwayTeamID: 2, HomeScore: intPtr(80), AwayScore: intPtr(80), Date: day},
			{ID: "g2", HomeTeamID: 3, AwayTeamID: 1, HomeScore: intPtr(70), AwayScore: nil, Date: day.AddDate(0, 0, 7)},
			{ID: "g3", HomeTeamID: 1, AwayTeamID: 4, Date: day.AddDate(0, 0, 14)},
		}, nil).
		Once()
	statsRepo.On("GetAveragesByTeam", mock.Anything, leagueID, int64(1)).
		Return(teamstats.Averages{}, false, nil).
		Once()

	got, err := service.GetOverview(context.Background(), leagueID, 1)
	if err != nil {
		t.Fatalf("get overview: %v", err)
	}
	want := analytics.Record{Wins: 0, Losses: 1, Unplayed: 1}
	if got.Record != want {
		t.Fatalf("unexpected record: got=%+v want=%+v", got.Record, want)
	}
	if got.Averages != nil {
		t.Fatalf("expected nil averages, got %+v", got.Averages)
	}
}

func TestTeamStatsService_GetShotChart(t *testing.T) {
	t.Parallel()

	leagueID := "esp-liga-endesa-2025"
	teamRepo := teammock.NewRepository(t)
	shotRepo := shotmock.NewRepository(t)
	service := NewTeamStatsService(teamRepo, gamemock.NewRepository(t), shotRepo, teamstatsmock.NewRepository(t), logging.NewNop())

	teamRepo.On("GetByID", mock.Anything, leagueID, int64(2)).
		Return(team.Team{ID: 2, LeagueID: leagueID}, true, nil).
		Once()
	shotRepo.On("ListByTeam", mock.Anything, leagueID, int64(2)).
		Return([]shot.Shot{
			{ID: "s1", TeamID: 2, X: 250, Y: 60, Made: true},
			{ID: "s2", TeamID: 2, X: 20, Y: 40, Made: false},
			{ID: "s3", TeamID: 2, X: 250, Y: 350, Made: true},
			{ID: "s4", TeamID: 2, X: 600, Y: 60, Made: false},
		}, nil).
		Once()

	got, err := service.GetShotChart(context.Background(), leagueID, 2)
	if err != nil {
		t.Fatalf("get shot chart: %v", err)
	}
	if got.Summary.Made != 2 || got.Summary.Total != 4 || got.Summary.Pct != "50.0" {
		t.Fatalf("unexpected summary: %+v", got.Summary)
	}
	if len(got.Summary.Points) != 4 || got.Summary.Points[3].X != 600 {
		t.Fatalf("expected all points kept in order, got %+v", got.Summary.Points)
	}
	if len(got.Zones) != len(analytics.Zones) {
		t.Fatalf("expected every zone, got %d", len(got.Zones))
	}
}

func TestTeamStatsService_GetShotChart_Empty(t *testing.T) {
	t.Parallel()

	leagueID := "esp-liga-endesa-2025"
	teamRepo := teammock.NewRepository(t)
	shotRepo := shotmock.NewRepository(t)
	service := NewTeamStatsService(teamRepo, gamemock.NewRepository(t), shotRepo, teamstatsmock.NewRepository(t), logging.NewNop())

	teamRepo.On("GetByID", mock.Anything, leagueID, int64(2)).
		Return(team.Team{ID: 2, LeagueID: leagueID}, true, nil).
		Once()
	shotRepo.On("ListByTeam", mock.Anything, leagueID, int64(2)).
		Return([]shot.Shot{}, nil).
		Once()

	got, err := service.GetShotChart(context.Background(), leagueID, 2)
	if err != nil {
		t.Fatalf("get shot chart: %v", err)
	}
	if got.Summary.Total != 0 || got.Summary.Pct != "0" {
		t.Fatalf("unexpected empty summary: %+v", got.Summary)
	}
}

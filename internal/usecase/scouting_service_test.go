package usecase

import (
	"context"
	"errors"
	"testing"

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

func newSeededScoutingService(workers int) *ScoutingService {
	repos := newSeededRepos()
	return NewScoutingService(repos.teams, repos.games, repos.shots, repos.stats, workers, logging.NewNop())
}

func TestScoutingService_GetReport_AllOpponents(t *testing.T) {
	t.Parallel()

	service := newSeededScoutingService(2)
	got, err := service.GetReport(context.Background(), memory.LeagueIDLigaEndesa, memory.TeamIDRealMadrid, nil)
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	if len(got.Opponents) != 3 {
		t.Fatalf("expected 3 opponents, got %d", len(got.Opponents))
	}

	wantOrder := []int64{memory.TeamIDBarcelona, memory.TeamIDValencia, memory.TeamIDUnicaja}
	for i, id := range wantOrder {
		if got.Opponents[i].Team.ID != id {
			t.Fatalf("opponent %d: got=%d want=%d", i, got.Opponents[i].Team.ID, id)
		}
		if got.Opponents[i].Shooting.Points != nil {
			t.Fatalf("expected shot points stripped from scouting summary")
		}
		if got.Opponents[i].Shooting.Total == 0 {
			t.Fatalf("expected seeded shots for opponent %d", id)
		}
	}

	barca := got.Opponents[0]
	if barca.Record != (analytics.Record{Wins: 2, Losses: 2, Unplayed: 2}) {
		t.Fatalf("unexpected opponent record: %+v", barca.Record)
	}
	if barca.HeadToHead != (analytics.Record{Wins: 1, Losses: 1}) {
		t.Fatalf("unexpected head to head: %+v", barca.HeadToHead)
	}

	unicaja := got.Opponents[2]
	if unicaja.HeadToHead != (analytics.Record{Wins: 1, Losses: 0, Unplayed: 1}) {
		t.Fatalf("unexpected head to head vs unicaja: %+v", unicaja.HeadToHead)
	}
}

func TestScoutingService_GetReport_RequestedOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	service := newSeededScoutingService(8)
	got, err := service.GetReport(context.Background(), memory.LeagueIDLigaEndesa, memory.TeamIDValencia, []int64{4, 1, 4})
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	if len(got.Opponents) != 2 {
		t.Fatalf("expected duplicates collapsed to 2 opponents, got %d", len(got.Opponents))
	}
	if got.Opponents[0].Team.ID != 4 || got.Opponents[1].Team.ID != 1 {
		t.Fatalf("expected requested order, got %d,%d", got.Opponents[0].Team.ID, got.Opponents[1].Team.ID)
	}
}

func TestScoutingService_GetReport_InvalidInput(t *testing.T) {
	t.Parallel()

	service := newSeededScoutingService(0)
	cases := []struct {
		name      string
		opponents []int64
	}{
		{name: "self", opponents: []int64{memory.TeamIDRealMadrid}},
		{name: "non positive", opponents: []int64{2, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.GetReport(context.Background(), memory.LeagueIDLigaEndesa, memory.TeamIDRealMadrid, tc.opponents)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestScoutingService_GetReport_UnknownOpponent(t *testing.T) {
	t.Parallel()

	service := newSeededScoutingService(0)
	_, err := service.GetReport(context.Background(), memory.LeagueIDLigaEndesa, memory.TeamIDRealMadrid, []int64{77})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScoutingService_GetReport_WorkerErrorUsingMockery(t *testing.T) {
	t.Parallel()

	leagueID := "esp-liga-endesa-2025"
	teamRepo := teammock.NewRepository(t)
	gameRepo := gamemock.NewRepository(t)
	shotRepo := shotmock.NewRepository(t)
	statsRepo := teamstatsmock.NewRepository(t)
	service := NewScoutingService(teamRepo, gameRepo, shotRepo, statsRepo, 2, logging.NewNop())

	boom := errors.New("shots backend down")
	teamRepo.On("GetByID", mock.Anything, leagueID, int64(1)).
		Return(team.Team{ID: 1, LeagueID: leagueID}, true, nil).
		Once()
	teamRepo.On("GetByID", mock.Anything, leagueID, int64(2)).
		Return(team.Team{ID: 2, LeagueID: leagueID}, true, nil).
		Once()
	gameRepo.On("ListByTeam", mock.Anything, leagueID, int64(2)).
		Return([]game.Game{}, nil).
		Once()
	shotRepo.On("ListByTeam", mock.Anything, leagueID, int64(2)).
		Return([]shot.Shot(nil), boom).
		Once()
	statsRepo.On("GetAveragesByTeam", mock.Anything, leagueID, int64(2)).
		Return(teamstats.Averages{}, false, nil).
		Maybe()

	_, err := service.GetReport(context.Background(), leagueID, 1, []int64{2})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped worker error, got %v", err)
	}
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable, got %v", err)
	}
}

package analytics

import (
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/game"
)

func score(v int) *int { return &v }

func playedGame(id string, day int, home, away int64, homeScore, awayScore int) game.Game {
	return game.Game{
		ID:         id,
		Date:       time.Date(2026, time.March, day, 19, 0, 0, 0, time.UTC),
		HomeTeamID: home,
		AwayTeamID: away,
		HomeScore:  score(homeScore),
		AwayScore:  score(awayScore),
	}
}

func TestWinLossRecord(t *testing.T) {
	const teamA, teamB, teamC = int64(1), int64(2), int64(3)

	t.Run("one win one loss", func(t *testing.T) {
		games := []game.Game{
			playedGame("g1", 1, teamA, teamB, 100, 90),
			playedGame("g2", 8, teamA, teamB, 80, 95),
		}
		got := WinLossRecord(games, teamA)
		if got.Wins != 1 || got.Losses != 1 {
			t.Fatalf("unexpected record: %+v", got)
		}
		if opp := WinLossRecord(games, teamB); opp.Wins != 1 || opp.Losses != 1 {
			t.Fatalf("unexpected opponent record: %+v", opp)
		}
	})

	t.Run("tie counts as a loss for both sides", func(t *testing.T) {
		games := []game.Game{playedGame("g1", 1, teamA, teamB, 70, 70)}
		if got := WinLossRecord(games, teamA); got.Losses != 1 || got.Wins != 0 {
			t.Fatalf("unexpected record: %+v", got)
		}
		if got := WinLossRecord(games, teamB); got.Losses != 1 || got.Wins != 0 {
			t.Fatalf("unexpected record: %+v", got)
		}
	})

	t.Run("unplayed and foreign games are not results", func(t *testing.T) {
		games := []game.Game{
			{ID: "g1", HomeTeamID: teamA, AwayTeamID: teamB},
			playedGame("g2", 2, teamB, teamC, 60, 50),
			playedGame("g3", 3, teamC, teamA, 60, 75),
		}
		got := WinLossRecord(games, teamA)
		want := Record{Wins: 1, Losses: 0, Unplayed: 1}
		if got != want {
			t.Fatalf("unexpected record: got=%+v want=%+v", got, want)
		}
	})
}


func TestStreak(t *testing.T) {
	games := []game.Game{
		playedGame("g1", 1, 1, 2, 60, 70),
		playedGame("g4", 22, 1, 3, 90, 70),
		playedGame("g2", 8, 3, 1, 60, 70),
		playedGame("g3", 15, 1, 2, 88, 87),
		{ID: "g5", Date: time.Date(2026, time.March, 29, 19, 0, 0, 0, time.UTC), HomeTeamID: 2, AwayTeamID: 1},
	}

	if got := Streak(games, 1); got != "W3" {
		t.Fatalf("unexpected streak: %s", got)
	}
	if got := Streak(games, 2); got != "L1" {
		t.Fatalf("unexpected streak for team 2: %s", got)
	}
	if got := Streak(nil, 1); got != "" {
		t.Fatalf("expected empty streak, got %s", got)
	}
}

func TestResultLabel(t *testing.T) {
	g := playedGame("g1", 1, 1, 2, 88, 75)
	if got := ResultLabel(g, 2); got != "L 75-88" {
		t.Fatalf("unexpected label: %s", got)
	}
	if got := ResultLabel(game.Game{HomeTeamID: 1, AwayTeamID: 2}, 1); got != "" {
		t.Fatalf("expected empty label for unplayed game, got %s", got)
	}
}

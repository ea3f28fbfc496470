package analytics

import (
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/playerlog"
)

func TestAverageOf(t *testing.T) {
	t.Run("empty input has no averages", func(t *testing.T) {
		if _, ok := AverageOf(nil); ok {
			t.Fatalf("expected no averages for empty input")
		}
	})

	t.Run("mean of every field with one decimal", func(t *testing.T) {
		rows := []playerlog.Row{
			{Points: 20, Rebounds: 5, Assists: 3, Steals: 1, Efficiency: 18},
			{Points: 25, Rebounds: 8, Assists: 4, Steals: 2, Efficiency: 24},
			{Points: 12, Rebounds: 6, Assists: 6, Steals: 0, Efficiency: 10},
		}

		got, ok := AverageOf(rows)
		if !ok {
			t.Fatalf("expected averages")
		}
		want := Averages{
			Games:           3,
			PointsPerGame:   "19.0",
			ReboundsPerGame: "6.3",
			AssistsPerGame:  "4.3",
			StealsPerGame:   "1.0",
			Efficiency:      "17.3",
		}
		if got != want {
			t.Fatalf("unexpected averages: got=%+v want=%+v", got, want)
		}
	})

	t.Run("single row is its own average", func(t *testing.T) {
		got, _ := AverageOf([]playerlog.Row{{Points: 7, Rebounds: 2, Assists: 1, Steals: 3, Efficiency: -2}})
		if got.PointsPerGame != "7.0" || got.Efficiency != "-2.0" {
			t.Fatalf("unexpected averages: %+v", got)
		}
	})
}

func TestRecentWindow(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, time.January, d, 20, 0, 0, 0, time.UTC) }
	rows := []playerlog.Row{
		{GameID: "g1", Date: day(3)},
		{GameID: "g2", Date: day(10)},
		{GameID: "g3", Date: day(17)},
		{GameID: "g4", Date: day(24)},
	}

	got := RecentWindow(rows, 2)
	if len(got) != 2 || got[0].GameID != "g4" || got[1].GameID != "g3" {
		t.Fatalf("unexpected window: %+v", got)
	}
	if rows[0].GameID != "g1" {
		t.Fatalf("input slice must not be reordered")
	}
	if got := RecentWindow(rows, 10); len(got) != 4 {
		t.Fatalf("expected whole slice when window is larger, got %d", len(got))
	}
	if got := RecentWindow(rows, 0); got != nil {
		t.Fatalf("expected nil window for n=0")
	}
}

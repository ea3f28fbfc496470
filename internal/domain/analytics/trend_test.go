package analytics

import "testing"

func TestTrend(t *testing.T) {
	tests := []struct {
		name   string
		recent string
		season string
		want   TrendResult
	}{
		{name: "improving form", recent: "24.0", season: "20.0", want: TrendResult{Change: "+20.0%", IsPositive: true}},
		{name: "declining form", recent: "15.0", season: "20.0", want: TrendResult{Change: "-25.0%", IsPositive: false}},
		{name: "unchanged form is positive", recent: "20.0", season: "20.0", want: TrendResult{Change: "0.0%", IsPositive: true}},
		{name: "zero season is neutral", recent: "12.5", season: "0", want: TrendResult{Change: "0%", IsPositive: true}},
		{name: "zero season with decimals", recent: "3.0", season: "0.0", want: TrendResult{Change: "0%", IsPositive: true}},
		{name: "absent recent", recent: "", season: "18.2", want: TrendResult{Change: NoData, IsPositive: true}},
		{name: "absent recent wins over zero season", recent: "", season: "0", want: TrendResult{Change: NoData, IsPositive: true}},
		{name: "malformed recent", recent: "n/a", season: "18.2", want: TrendResult{Change: NoData, IsPositive: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Trend(tc.recent, tc.season)
			if got != tc.want {
				t.Fatalf("unexpected trend: got=%+v want=%+v", got, tc.want)
			}
		})
	}
}

func TestCompareAverages(t *testing.T) {
	season := Averages{PointsPerGame: "20.0", ReboundsPerGame: "8.0", AssistsPerGame: "4.0", StealsPerGame: "0.0", Efficiency: "15.0"}

	t.Run("nil recent window", func(t *testing.T) {
		got := CompareAverages(nil, season)
		if got.Points.Change != NoData || got.Efficiency.Change != NoData {
			t.Fatalf("expected placeholders, got %+v", got)
		}
	})

	t.Run("per metric trend", func(t *testing.T) {
		recent := Averages{PointsPerGame: "24.0", ReboundsPerGame: "6.0", AssistsPerGame: "4.0", StealsPerGame: "2.0", Efficiency: "18.0"}
		got := CompareAverages(&recent, season)
		if got.Points.Change != "+20.0%" {
			t.Fatalf("unexpected points trend: %+v", got.Points)
		}
		if got.Rebounds.Change != "-25.0%" || got.Rebounds.IsPositive {
			t.Fatalf("unexpected rebounds trend: %+v", got.Rebounds)
		}
		if got.Steals.Change != "0%" || !got.Steals.IsPositive {
			t.Fatalf("unexpected steals trend: %+v", got.Steals)
		}
	})
}

package analytics

import (
	"strconv"
	"testing"

	"github.com/riskibarqy/courtside/internal/domain/teamstats"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Bounds(t *testing.T) {
	ceilings := []float64{CeilingPoints, CeilingRebounds, CeilingAssists, CeilingSteals, CeilingEfficiency}

	for _, ceiling := range ceilings {
		require.Equal(t, 100.0, Normalize(strconv.FormatFloat(ceiling, 'f', 1, 64), ceiling))
		require.Equal(t, 100.0, Normalize(strconv.FormatFloat(2*ceiling, 'f', 1, 64), ceiling))

		prev := -1.0
		for v := -5.0; v <= 3*ceiling; v += 0.5 {
			got := Normalize(strconv.FormatFloat(v, 'f', 1, 64), ceiling)
			require.GreaterOrEqual(t, got, 0.0)
			require.LessOrEqual(t, got, 100.0)
			require.GreaterOrEqual(t, got, prev, "normalize must be non-decreasing at %v", v)
			prev = got
		}
	}
}

func TestNormalize_EdgeCases(t *testing.T) {
	require.InDelta(t, 50.0, Normalize("17.5", CeilingPoints), 1e-9)
	require.Equal(t, 0.0, Normalize("", CeilingPoints))
	require.Equal(t, 0.0, Normalize("abc", CeilingPoints))
	require.Equal(t, 0.0, Normalize("10", 0))
}

func TestRadar(t *testing.T) {
	player := Averages{PointsPerGame: "17.5", ReboundsPerGame: "30.0", AssistsPerGame: "6.0", StealsPerGame: "1.0", Efficiency: "15.0"}
	team := teamstats.Averages{PointsPerGame: 80, ReboundsPerGame: 36, AssistsPerGame: 20, StealsPerGame: 12, Efficiency: 90}

	axes := Radar(player, team)
	require.Len(t, axes, 5)

	byMetric := make(map[string]RadarAxis, len(axes))
	for _, axis := range axes {
		byMetric[axis.Metric] = axis
	}

	require.InDelta(t, 50.0, byMetric["points"].Player, 1e-9)
	require.InDelta(t, 80.0, byMetric["points"].Team, 1e-9)
	require.Equal(t, 100.0, byMetric["rebounds"].Player)
	require.Equal(t, 100.0, byMetric["steals"].Team)
	require.Equal(t, NeutralBaseline, byMetric["efficiency"].Team)
}

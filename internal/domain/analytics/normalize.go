package analytics

import (
	"math"

	"github.com/riskibarqy/courtside/internal/domain/teamstats"
)

// Player ceilings are plausible per-game maxima; anything above clamps to 100.
const (
	CeilingPoints     = 35.0
	CeilingRebounds   = 15.0
	CeilingAssists    = 12.0
	CeilingSteals     = 4.0
	CeilingEfficiency = 30.0
)

// Team ceilings scale whole-team per-game averages on the same radar.
const (
	TeamCeilingPoints   = 100.0
	TeamCeilingRebounds = 45.0
	TeamCeilingAssists  = 25.0
	TeamCeilingSteals   = 10.0
)

// NeutralBaseline is used for radar axes with no comparable ceiling.
const NeutralBaseline = 50.0

// Normalize maps a decimal-formatted stat onto [0,100] against ceiling.
func Normalize(value string, ceiling float64) float64 {
	v, ok := parseDecimal(value)
	if !ok {
		return 0
	}
	return normalizeValue(v, ceiling)
}

func normalizeValue(v, ceiling float64) float64 {
	if ceiling <= 0 || v <= 0 {
		return 0
	}
	return math.Min(100, v/ceiling*100)
}

type RadarAxis struct {
	Metric string
	Player float64
	Team   float64
}

// Radar lines a player's averages up against the team averages, both scaled
// to [0,100]. The efficiency axis of the team uses NeutralBaseline.
func Radar(player Averages, team teamstats.Averages) []RadarAxis {
	return []RadarAxis{
		{
			Metric: "points",
			Player: Normalize(player.PointsPerGame, CeilingPoints),
			Team:   normalizeValue(team.PointsPerGame, TeamCeilingPoints),
		},
		{
			Metric: "rebounds",
			Player: Normalize(player.ReboundsPerGame, CeilingRebounds),
			Team:   normalizeValue(team.ReboundsPerGame, TeamCeilingRebounds),
		},
		{
			Metric: "assists",
			Player: Normalize(player.AssistsPerGame, CeilingAssists),
			Team:   normalizeValue(team.AssistsPerGame, TeamCeilingAssists),
		},
		{
			Metric: "steals",
			Player: Normalize(player.StealsPerGame, CeilingSteals),
			Team:   normalizeValue(team.StealsPerGame, TeamCeilingSteals),
		},
		{
			Metric: "efficiency",
			Player: Normalize(player.Efficiency, CeilingEfficiency),
			Team:   NeutralBaseline,
		},
	}
}

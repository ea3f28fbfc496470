package analytics

import (
	"math"

	"github.com/riskibarqy/courtside/internal/domain/shot"
)

// ShotPoint is one shot projected for the court chart.
type ShotPoint struct {
	X    float64
	Y    float64
	Made bool
}

type ShotSummary struct {
	Made   int
	Total  int
	Pct    string
	Points []ShotPoint
}

// AggregateShots counts makes and attempts and projects every shot to a chart
// point. Points keep input order: later shots draw over earlier ones.
func AggregateShots(shots []shot.Shot) ShotSummary {
	points := make([]ShotPoint, 0, len(shots))
	made := 0
	for _, s := range shots {
		if s.Made {
			made++
		}
		points = append(points, ShotPoint{X: s.X, Y: s.Y, Made: s.Made})
	}

	return ShotSummary{
		Made:   made,
		Total:  len(shots),
		Pct:    shootingPct(made, len(shots)),
		Points: points,
	}
}

func shootingPct(made, total int) string {
	if total == 0 {
		return "0"
	}
	return formatDecimal(float64(made) / float64(total) * 100)
}

type Zone string

const (
	ZonePaint       Zone = "paint"
	ZoneMidRange    Zone = "mid_range"
	ZoneCornerThree Zone = "corner_three"
	ZoneAboveBreak  Zone = "above_break_three"
)

// Zones in display order.
var Zones = []Zone{ZonePaint, ZoneMidRange, ZoneCornerThree, ZoneAboveBreak}

// Court geometry in the shot reference frame (tenths of a foot).
const (
	laneHalfWidth    = 80.0
	laneDepth        = 190.0
	threePointRadius = 237.5
	cornerThreeX     = 220.0
	cornerThreeMaxY  = 140.0
)

type ZoneSummary struct {
	Zone  Zone
	Made  int
	Total int
	Pct   string
}

// ClassifyZone places a shot on the court by its distance from the rim.
func ClassifyZone(x, y float64) Zone {
	dx := x - shot.RimX
	if math.Abs(dx) >= cornerThreeX && y <= cornerThreeMaxY {
		return ZoneCornerThree
	}
	if math.Hypot(dx, y-shot.RimY) >= threePointRadius {
		return ZoneAboveBreak
	}
	if math.Abs(dx) <= laneHalfWidth && y <= laneDepth {
		return ZonePaint
	}
	return ZoneMidRange
}

// ShotZones buckets shots by court zone. Every zone is present, empty ones
// report a "0" percentage.
func ShotZones(shots []shot.Shot) []ZoneSummary {
	byZone := make(map[Zone]*ZoneSummary, len(Zones))
	out := make([]ZoneSummary, len(Zones))
	for i, z := range Zones {
		out[i].Zone = z
		byZone[z] = &out[i]
	}

	for _, s := range shots {
		bucket := byZone[ClassifyZone(s.X, s.Y)]
		bucket.Total++
		if s.Made {
			bucket.Made++
		}
	}
	for i := range out {
		out[i].Pct = shootingPct(out[i].Made, out[i].Total)
	}
	return out
}

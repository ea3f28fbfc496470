package analytics

import (
	"sort"

	"github.com/riskibarqy/courtside/internal/domain/playerlog"
)

// Averages are per-game averages over a set of game logs, each formatted to
// one decimal place.
type Averages struct {
	Games           int
	PointsPerGame   string
	ReboundsPerGame string
	AssistsPerGame  string
	StealsPerGame   string
	Efficiency      string
}

// AverageOf returns the arithmetic mean of every counting stat in rows.
// ok is false when rows is empty; there is no average to show then.
func AverageOf(rows []playerlog.Row) (Averages, bool) {
	if len(rows) == 0 {
		return Averages{}, false
	}

	var points, rebounds, assists, steals, efficiency int
	for _, row := range rows {
		points += row.Points
		rebounds += row.Rebounds
		assists += row.Assists
		steals += row.Steals
		efficiency += row.Efficiency
	}

	n := float64(len(rows))
	return Averages{
		Games:           len(rows),
		PointsPerGame:   formatDecimal(float64(points) / n),
		ReboundsPerGame: formatDecimal(float64(rebounds) / n),
		AssistsPerGame:  formatDecimal(float64(assists) / n),
		StealsPerGame:   formatDecimal(float64(steals) / n),
		Efficiency:      formatDecimal(float64(efficiency) / n),
	}, true
}

// RecentWindow returns the n most recent rows, newest first. Rows sharing a
// date keep their input order.
func RecentWindow(rows []playerlog.Row, n int) []playerlog.Row {
	if n <= 0 || len(rows) == 0 {
		return nil
	}

	sorted := append([]playerlog.Row(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

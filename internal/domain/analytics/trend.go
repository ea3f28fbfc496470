package analytics

// NoData is shown in place of a percentage when there is nothing recent to
// compare against.
const NoData = "—"

// TrendResult is the signed change of a recent average against the season
// average. Ties render as positive.
type TrendResult struct {
	Change     string
	IsPositive bool
}

// Trend compares a recent-window average with the season average, both as
// decimal strings. An empty recent value means the window had no games.
func Trend(recent, season string) TrendResult {
	recentValue, ok := parseDecimal(recent)
	if !ok {
		return TrendResult{Change: NoData, IsPositive: true}
	}

	seasonValue, _ := parseDecimal(season)
	if seasonValue == 0 {
		return TrendResult{Change: "0%", IsPositive: true}
	}

	diff := (recentValue - seasonValue) / seasonValue * 100

	change := formatDecimal(diff) + "%"
	if diff > 0 {
		change = "+" + change
	}

	return TrendResult{
		Change:     change,
		IsPositive: diff >= 0,
	}
}

// TrendSet holds one trend per averaged metric.
type TrendSet struct {
	Points     TrendResult
	Rebounds   TrendResult
	Assists    TrendResult
	Steals     TrendResult
	Efficiency TrendResult
}

// CompareAverages builds the trend of every metric. A nil recent means the
// recent window was empty and every metric gets the NoData placeholder.
func CompareAverages(recent *Averages, season Averages) TrendSet {
	var r Averages
	if recent != nil {
		r = *recent
	}

	return TrendSet{
		Points:     Trend(r.PointsPerGame, season.PointsPerGame),
		Rebounds:   Trend(r.ReboundsPerGame, season.ReboundsPerGame),
		Assists:    Trend(r.AssistsPerGame, season.AssistsPerGame),
		Steals:     Trend(r.StealsPerGame, season.StealsPerGame),
		Efficiency: Trend(r.Efficiency, season.Efficiency),
	}
}

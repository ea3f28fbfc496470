package teamstats

import "github.com/cockroachdb/errors"

// Averages are the per-game team averages served by the stats backend.
type Averages struct {
	TeamID          int64
	Games           int
	PointsPerGame   float64
	ReboundsPerGame float64
	AssistsPerGame  float64
	StealsPerGame   float64
	Efficiency      float64
}

func (a Averages) Validate() error {
	if a.Games < 0 {
		return errors.Newf("team %d averages: games must be >= 0", a.TeamID)
	}
	if a.PointsPerGame < 0 || a.ReboundsPerGame < 0 || a.AssistsPerGame < 0 || a.StealsPerGame < 0 {
		return errors.Newf("team %d averages: negative per-game value", a.TeamID)
	}
	return nil
}

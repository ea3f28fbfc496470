package playerlog

import (
	"time"

	"github.com/cockroachdb/errors"
)

// Row is one game played by a player, raw per-game counts.
type Row struct {
	GameID     string
	PlayerID   int64
	TeamID     int64
	Date       time.Time
	Points     int
	Rebounds   int
	Assists    int
	Steals     int
	Efficiency int
}

func (r Row) Validate() error {
	if r.Points < 0 || r.Rebounds < 0 || r.Assists < 0 || r.Steals < 0 {
		return errors.Newf("game log %s for player %d has negative counting stats", r.GameID, r.PlayerID)
	}
	return nil
}

type Player struct {
	ID       int64
	LeagueID string
	TeamID   int64
	Name     string
	Position string
	Number   int
}

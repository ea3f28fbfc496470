package game

import (
	"time"

	"github.com/cockroachdb/errors"
)

var ErrScoreMismatch = errors.New("game scores must be both set or both empty")

// Game is a scheduled or played match between two teams of a league.
// Scores stay nil until the game is played.
type Game struct {
	ID         string
	LeagueID   string
	Date       time.Time
	HomeTeamID int64
	AwayTeamID int64
	HomeScore  *int
	AwayScore  *int
	Round      int
}

func (g Game) Validate() error {
	if (g.HomeScore == nil) != (g.AwayScore == nil) {
		return errors.Wrapf(ErrScoreMismatch, "game %s", g.ID)
	}
	if g.HomeTeamID == g.AwayTeamID {
		return errors.Newf("game %s: home and away team are both %d", g.ID, g.HomeTeamID)
	}
	return nil
}

func (g Game) IsPlayed() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

func (g Game) Involves(teamID int64) bool {
	return g.HomeTeamID == teamID || g.AwayTeamID == teamID
}

// OpponentOf returns the other side of the game for teamID.
func (g Game) OpponentOf(teamID int64) int64 {
	if g.HomeTeamID == teamID {
		return g.AwayTeamID
	}
	return g.HomeTeamID
}

// ScoresFor returns (own, opponent) scores from teamID's point of view.
// Absent scores read as zero; callers check IsPlayed first.
func (g Game) ScoresFor(teamID int64) (int, int) {
	home := valueOrZero(g.HomeScore)
	away := valueOrZero(g.AwayScore)
	if g.HomeTeamID == teamID {
		return home, away
	}
	return away, home
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

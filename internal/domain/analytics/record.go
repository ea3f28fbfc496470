package analytics

import (
	"sort"
	"strconv"

	"github.com/riskibarqy/courtside/internal/domain/game"
)

// Record is a team's win/loss tally. Unplayed games are not results; they are
// counted separately instead of being scored 0-0.
type Record struct {
	Wins     int
	Losses   int
	Unplayed int
}

// WinLossRecord tallies games involving teamID. A game is a win only when the
// team scored strictly more than its opponent, so a tie counts as a loss.
// Games the team did not take part in are ignored.
func WinLossRecord(games []game.Game, teamID int64) Record {
	var rec Record
	for _, g := range games {
		if !g.Involves(teamID) {
			continue
		}
		if !g.IsPlayed() {
			rec.Unplayed++
			continue
		}
		if isWin(g, teamID) {
			rec.Wins++
		} else {
			rec.Losses++
		}
	}
	return rec
}

func isWin(g game.Game, teamID int64) bool {
	own, opponent := g.ScoresFor(teamID)
	return own > opponent
}

// Streak reports the current run of consecutive results for teamID, e.g.
// "W3" or "L1". It is empty when the team has no played games.
func Streak(games []game.Game, teamID int64) string {
	played := make([]game.Game, 0, len(games))
	for _, g := range games {
		if g.Involves(teamID) && g.IsPlayed() {
			played = append(played, g)
		}
	}
	if len(played) == 0 {
		return ""
	}

	sort.SliceStable(played, func(i, j int) bool {
		return played[i].Date.After(played[j].Date)
	})

	latestWin := isWin(played[0], teamID)
	count := 0
	for _, g := range played {
		if isWin(g, teamID) != latestWin {
			break
		}
		count++
	}

	prefix := "L"
	if latestWin {
		prefix = "W"
	}
	return prefix + strconv.Itoa(count)
}

// ResultLabel renders a played game from teamID's side, e.g. "W 88-75".
// Unplayed games return an empty label.
func ResultLabel(g game.Game, teamID int64) string {
	if !g.IsPlayed() {
		return ""
	}
	own, opponent := g.ScoresFor(teamID)
	prefix := "L"
	if own > opponent {
		prefix = "W"
	}
	return prefix + " " + strconv.Itoa(own) + "-" + strconv.Itoa(opponent)
}

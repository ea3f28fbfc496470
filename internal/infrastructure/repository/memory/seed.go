package memory

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/playerlog"
	"github.com/riskibarqy/courtside/internal/domain/shot"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
)

const (
	LeagueIDLigaEndesa = "esp-liga-endesa-2025"

	TeamIDRealMadrid int64 = 1
	TeamIDBarcelona  int64 = 2
	TeamIDValencia   int64 = 3
	TeamIDUnicaja    int64 = 4
)

const shotsPerTeamGame = 12

var seasonStart = time.Date(2026, 1, 4, 19, 0, 0, 0, time.UTC)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDRealMadrid, LeagueID: LeagueIDLigaEndesa, Name: "Real Madrid", Short: "RMB"},
		{ID: TeamIDBarcelona, LeagueID: LeagueIDLigaEndesa, Name: "FC Barcelona", Short: "FCB"},
		{ID: TeamIDValencia, LeagueID: LeagueIDLigaEndesa, Name: "Valencia Basket", Short: "VBC"},
		{ID: TeamIDUnicaja, LeagueID: LeagueIDLigaEndesa, Name: "Unicaja", Short: "UNI"},
	}
}

// SeedGames returns a double round robin. Rounds 5 and 6 are not played yet.
func SeedGames() []game.Game {
	type fixture struct {
		round      int
		home, away int64
		hs, as     int
	}
	played := []fixture{
		{1, TeamIDRealMadrid, TeamIDBarcelona, 88, 81},
		{1, TeamIDValencia, TeamIDUnicaja, 79, 84},
		{2, TeamIDBarcelona, TeamIDValencia, 90, 77},
		{2, TeamIDUnicaja, TeamIDRealMadrid, 80, 92},
		{3, TeamIDRealMadrid, TeamIDValencia, 95, 83},
		{3, TeamIDBarcelona, TeamIDUnicaja, 72, 78},
		{4, TeamIDBarcelona, TeamIDRealMadrid, 85, 83},
		{4, TeamIDUnicaja, TeamIDValencia, 91, 86},
	}
	upcoming := []fixture{
		{5, TeamIDValencia, TeamIDRealMadrid, 0, 0},
		{5, TeamIDUnicaja, TeamIDBarcelona, 0, 0},
		{6, TeamIDRealMadrid, TeamIDUnicaja, 0, 0},
		{6, TeamIDValencia, TeamIDBarcelona, 0, 0},
	}

	out := make([]game.Game, 0, len(played)+len(upcoming))
	for i, item := range played {
		hs, as := item.hs, item.as
		out = append(out, seedGame(i+1, item.round, item.home, item.away, &hs, &as))
	}
	for i, item := range upcoming {
		out = append(out, seedGame(len(played)+i+1, item.round, item.home, item.away, nil, nil))
	}
	return out
}

func seedGame(n, round int, home, away int64, hs, as *int) game.Game {
	return game.Game{
		ID:         fmt.Sprintf("g-esp-%03d", n),
		LeagueID:   LeagueIDLigaEndesa,
		Date:       seasonStart.AddDate(0, 0, 7*(round-1)).Add(time.Duration(n%2) * 2 * time.Hour),
		HomeTeamID: home,
		AwayTeamID: away,
		HomeScore:  hs,
		AwayScore:  as,
		Round:      round,
	}
}

// GameLeagues maps game ids to their league, used to scope shots.
func GameLeagues(games []game.Game) map[string]string {
	out := make(map[string]string, len(games))
	for _, item := range games {
		out[item.ID] = item.LeagueID
	}
	return out
}

// SeedShots generates a deterministic shot sample for every played game.
func SeedShots(games []game.Game) []shot.Shot {
	rng := rand.New(rand.NewPCG(2025, 1))
	out := make([]shot.Shot, 0)
	for _, item := range games {
		if !item.IsPlayed() {
			continue
		}
		for _, teamID := range []int64{item.HomeTeamID, item.AwayTeamID} {
			for i := 0; i < shotsPerTeamGame; i++ {
				out = append(out, shot.Shot{
					ID:     fmt.Sprintf("%s-%d-%02d", item.ID, teamID, i),
					GameID: item.ID,
					TeamID: teamID,
					X:      float64(rng.IntN(int(shot.CourtWidth))),
					Y:      float64(rng.IntN(300)),
					Made:   rng.IntN(100) < 46,
				})
			}
		}
	}
	return out
}

func SeedPlayers() []playerlog.Player {
	return []playerlog.Player{
		{ID: 101, LeagueID: LeagueIDLigaEndesa, TeamID: TeamIDRealMadrid, Name: "Facundo Campazzo", Position: "G", Number: 7},
		{ID: 102, LeagueID: LeagueIDLigaEndesa, TeamID: TeamIDRealMadrid, Name: "Walter Tavares", Position: "C", Number: 22},
		{ID: 201, LeagueID: LeagueIDLigaEndesa, TeamID: TeamIDBarcelona, Name: "Kevin Punter", Position: "G", Number: 0},
		{ID: 202, LeagueID: LeagueIDLigaEndesa, TeamID: TeamIDBarcelona, Name: "Jan Vesely", Position: "C", Number: 6},
		{ID: 301, LeagueID: LeagueIDLigaEndesa, TeamID: TeamIDValencia, Name: "Jean Montero", Position: "G", Number: 2},
		{ID: 302, LeagueID: LeagueIDLigaEndesa, TeamID: TeamIDValencia, Name: "Semi Ojeleye", Position: "F", Number: 37},
		{ID: 401, LeagueID: LeagueIDLigaEndesa, TeamID: TeamIDUnicaja, Name: "Kendrick Perry", Position: "G", Number: 10},
		{ID: 402, LeagueID: LeagueIDLigaEndesa, TeamID: TeamIDUnicaja, Name: "Tyson Perez", Position: "F", Number: 15},
	}
}

// SeedPlayerLogs produces one row per played game for every rostered player.
func SeedPlayerLogs(players []playerlog.Player, games []game.Game) []playerlog.Row {
	type baseline struct{ pts, reb, ast, stl, eff int }
	guard := baseline{pts: 14, reb: 3, ast: 6, stl: 1, eff: 14}
	big := baseline{pts: 11, reb: 8, ast: 2, stl: 1, eff: 16}

	rng := rand.New(rand.NewPCG(2025, 2))
	out := make([]playerlog.Row, 0)
	for _, p := range players {
		base := guard
		if p.Position != "G" {
			base = big
		}
		for _, g := range games {
			if !g.IsPlayed() || !g.Involves(p.TeamID) {
				continue
			}
			out = append(out, playerlog.Row{
				GameID:     g.ID,
				PlayerID:   p.ID,
				TeamID:     p.TeamID,
				Date:       g.Date,
				Points:     base.pts + rng.IntN(11) - 5,
				Rebounds:   base.reb + rng.IntN(5) - 2,
				Assists:    max(0, base.ast+rng.IntN(5)-2),
				Steals:     rng.IntN(base.stl + 2),
				Efficiency: base.eff + rng.IntN(15) - 7,
			})
		}
	}
	return out
}

func SeedTeamAverages() map[string][]teamstats.Averages {
	return map[string][]teamstats.Averages{
		LeagueIDLigaEndesa: {
			{TeamID: TeamIDRealMadrid, Games: 4, PointsPerGame: 89.5, ReboundsPerGame: 36.8, AssistsPerGame: 19.3, StealsPerGame: 7.5, Efficiency: 102.3},
			{TeamID: TeamIDBarcelona, Games: 4, PointsPerGame: 82.0, ReboundsPerGame: 34.5, AssistsPerGame: 18.0, StealsPerGame: 6.8, Efficiency: 91.0},
			{TeamID: TeamIDValencia, Games: 4, PointsPerGame: 81.3, ReboundsPerGame: 33.0, AssistsPerGame: 17.5, StealsPerGame: 7.0, Efficiency: 88.5},
			{TeamID: TeamIDUnicaja, Games: 4, PointsPerGame: 83.3, ReboundsPerGame: 35.3, AssistsPerGame: 20.8, StealsPerGame: 8.3, Efficiency: 95.8},
		},
	}
}

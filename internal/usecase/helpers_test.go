package usecase

import (
	"github.com/riskibarqy/courtside/internal/infrastructure/repository/memory"
)

type seededRepos struct {
	teams *memory.TeamRepository
	games *memory.GameRepository
	shots *memory.ShotRepository
	logs  *memory.PlayerLogRepository
	stats *memory.TeamStatsRepository
}

func newSeededRepos() seededRepos {
	games := memory.SeedGames()
	players := memory.SeedPlayers()

	return seededRepos{
		teams: memory.NewTeamRepository(memory.SeedTeams()),
		games: memory.NewGameRepository(games),
		shots: memory.NewShotRepository(memory.SeedShots(games), memory.GameLeagues(games)),
		logs:  memory.NewPlayerLogRepository(players, memory.SeedPlayerLogs(players, games)),
		stats: memory.NewTeamStatsRepository(memory.SeedTeamAverages()),
	}
}

func intPtr(v int) *int { return &v }

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/playerlog"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

func requireLeague(leagueID string) (string, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return "", fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	return leagueID, nil
}

func requireLeagueAndID(leagueID string, id int64, what string) (string, error) {
	leagueID, err := requireLeague(leagueID)
	if err != nil {
		return "", err
	}
	if id <= 0 {
		return "", fmt.Errorf("%w: %s id must be > 0", ErrInvalidInput, what)
	}
	return leagueID, nil
}

func loadTeam(ctx context.Context, repo team.Repository, leagueID string, teamID int64) (team.Team, error) {
	item, exists, err := repo.GetByID(ctx, leagueID, teamID)
	if err != nil {
		return team.Team{}, unavailable("get team", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team %d in league %s", ErrNotFound, teamID, leagueID)
	}
	return item, nil
}

// validGames drops games that break the score invariant so the engine only
// sees well-formed records.
func validGames(ctx context.Context, logger *logging.Logger, games []game.Game) []game.Game {
	out := make([]game.Game, 0, len(games))
	for _, g := range games {
		if err := g.Validate(); err != nil {
			logger.WarnContext(ctx, "dropping invalid game record", "game_id", g.ID, "error", err)
			continue
		}
		out = append(out, g)
	}
	return out
}

func validRows(ctx context.Context, logger *logging.Logger, rows []playerlog.Row) []playerlog.Row {
	out := make([]playerlog.Row, 0, len(rows))
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			logger.WarnContext(ctx, "dropping invalid game log row", "game_id", row.GameID, "player_id", row.PlayerID, "error", err)
			continue
		}
		out = append(out, row)
	}
	return out
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/courtside/internal/domain/game"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) ListByLeague(ctx context.Context, leagueID string) ([]game.Game, error) {
	query, args, err := gamesByLeagueQuery(leagueID)
	if err != nil {
		return nil, fmt.Errorf("build select games by league query: %w", err)
	}

	return r.selectGames(ctx, query, args, "select games by league")
}

func (r *GameRepository) ListByTeam(ctx context.Context, leagueID string, teamID int64) ([]game.Game, error) {
	query, args, err := gamesByTeamQuery(leagueID, teamID)
	if err != nil {
		return nil, fmt.Errorf("build select games by team query: %w", err)
	}

	return r.selectGames(ctx, query, args, "select games by team")
}

func (r *GameRepository) selectGames(ctx context.Context, query string, args []any, op string) ([]game.Game, error) {
	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, game.Game{
			ID:         row.PublicID,
			LeagueID:   row.LeagueID,
			Date:       row.GameDate.UTC(),
			HomeTeamID: row.HomeTeamID,
			AwayTeamID: row.AwayTeamID,
			HomeScore:  nullInt32ToPtr(row.HomeScore),
			AwayScore:  nullInt32ToPtr(row.AwayScore),
			Round:      row.Round,
		})
	}

	return out, nil
}

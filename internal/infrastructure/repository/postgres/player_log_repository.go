package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/courtside/internal/domain/playerlog"
)

type PlayerLogRepository struct {
	db *sqlx.DB
}

func NewPlayerLogRepository(db *sqlx.DB) *PlayerLogRepository {
	return &PlayerLogRepository{db: db}
}

func (r *PlayerLogRepository) GetPlayer(ctx context.Context, leagueID string, playerID int64) (playerlog.Player, bool, error) {
	query, args, err := playerByIDQuery(leagueID, playerID)
	if err != nil {
		return playerlog.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return playerlog.Player{}, false, nil
		}
		return playerlog.Player{}, false, fmt.Errorf("get player %d: %w", playerID, err)
	}

	return playerlog.Player{
		ID:       row.ID,
		LeagueID: row.LeagueID,
		TeamID:   row.TeamID,
		Name:     row.Name,
		Position: row.Position,
		Number:   row.Number,
	}, true, nil
}

func (r *PlayerLogRepository) ListByPlayer(ctx context.Context, leagueID string, playerID int64) ([]playerlog.Row, error) {
	query, args, err := playerLogsQuery(leagueID, playerID)
	if err != nil {
		return nil, fmt.Errorf("build select player logs query: %w", err)
	}

	var rows []playerGameLogRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player logs: %w", err)
	}

	out := make([]playerlog.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerlog.Row{
			GameID:     row.GamePublicID,
			PlayerID:   row.PlayerID,
			TeamID:     row.TeamID,
			Date:       row.GameDate.UTC(),
			Points:     row.Points,
			Rebounds:   row.Rebounds,
			Assists:    row.Assists,
			Steals:     row.Steals,
			Efficiency: row.Efficiency,
		})
	}

	return out, nil
}

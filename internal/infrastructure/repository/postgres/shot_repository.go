package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/courtside/internal/domain/shot"
)

type ShotRepository struct {
	db *sqlx.DB
}

func NewShotRepository(db *sqlx.DB) *ShotRepository {
	return &ShotRepository{db: db}
}

func (r *ShotRepository) ListByTeam(ctx context.Context, leagueID string, teamID int64) ([]shot.Shot, error) {
	query, args, err := shotsByTeamQuery(leagueID, teamID)
	if err != nil {
		return nil, fmt.Errorf("build select shots by team query: %w", err)
	}

	var rows []shotTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select shots by team: %w", err)
	}

	out := make([]shot.Shot, 0, len(rows))
	for _, row := range rows {
		out = append(out, shot.Shot{
			ID:     row.PublicID,
			GameID: row.GamePublicID,
			TeamID: row.TeamID,
			X:      row.X,
			Y:      row.Y,
			Made:   row.Made,
		})
	}

	return out, nil
}

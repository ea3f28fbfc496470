package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
)

type TeamStatsRepository struct {
	db *sqlx.DB
}

func NewTeamStatsRepository(db *sqlx.DB) *TeamStatsRepository {
	return &TeamStatsRepository{db: db}
}

func (r *TeamStatsRepository) GetAveragesByTeam(ctx context.Context, leagueID string, teamID int64) (teamstats.Averages, bool, error) {
	query, args, err := teamAveragesQuery(leagueID, teamID)
	if err != nil {
		return teamstats.Averages{}, false, fmt.Errorf("build get team averages query: %w", err)
	}

	var row teamAveragesTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return teamstats.Averages{}, false, nil
		}
		return teamstats.Averages{}, false, fmt.Errorf("get team averages %d: %w", teamID, err)
	}

	return teamstats.Averages{
		TeamID:          row.TeamID,
		Games:           row.Games,
		PointsPerGame:   row.PointsPerGame,
		ReboundsPerGame: row.ReboundsPerGame,
		AssistsPerGame:  row.AssistsPerGame,
		StealsPerGame:   row.StealsPerGame,
		Efficiency:      row.Efficiency,
	}, true, nil
}

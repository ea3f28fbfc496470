package teamstats

import "context"

type Repository interface {
	GetAveragesByTeam(ctx context.Context, leagueID string, teamID int64) (Averages, bool, error)
}

package shot

import "context"

type Repository interface {
	ListByTeam(ctx context.Context, leagueID string, teamID int64) ([]Shot, error)
}

package team

import "context"

// Repository describes team lookups needed by use cases.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Team, error)
	GetByID(ctx context.Context, leagueID string, teamID int64) (Team, bool, error)
}

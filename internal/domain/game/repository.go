package game

import "context"

type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Game, error)
	ListByTeam(ctx context.Context, leagueID string, teamID int64) ([]Game, error)
}

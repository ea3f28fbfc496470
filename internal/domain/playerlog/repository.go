package playerlog

import "context"

type Repository interface {
	GetPlayer(ctx context.Context, leagueID string, playerID int64) (Player, bool, error)
	ListByPlayer(ctx context.Context, leagueID string, playerID int64) ([]Row, error)
}

package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/playerlog"
	"github.com/riskibarqy/courtside/internal/domain/shot"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
	basecache "github.com/riskibarqy/courtside/internal/platform/cache"
)

type lookup[T any] struct {
	value  T
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	items, err := basecache.Load(ctx, r.cache, "team:list:"+leagueID, func(ctx context.Context) ([]team.Team, error) {
		return r.next.ListByLeague(ctx, leagueID)
	})
	if err != nil {
		return nil, err
	}
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, leagueID string, teamID int64) (team.Team, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, "team:id:"+leagueKey(leagueID, teamID), func(ctx context.Context) (lookup[team.Team], error) {
		item, exists, err := r.next.GetByID(ctx, leagueID, teamID)
		return lookup[team.Team]{value: item, exists: exists}, err
	})
	if err != nil {
		return team.Team{}, false, err
	}
	return cached.value, cached.exists, nil
}

type GameRepository struct {
	next  game.Repository
	cache *basecache.Store
}

func NewGameRepository(next game.Repository, cache *basecache.Store) *GameRepository {
	return &GameRepository{next: next, cache: cache}
}

func (r *GameRepository) ListByLeague(ctx context.Context, leagueID string) ([]game.Game, error) {
	items, err := basecache.Load(ctx, r.cache, "game:list:"+leagueID, func(ctx context.Context) ([]game.Game, error) {
		return r.next.ListByLeague(ctx, leagueID)
	})
	if err != nil {
		return nil, err
	}
	return append([]game.Game(nil), items...), nil
}

func (r *GameRepository) ListByTeam(ctx context.Context, leagueID string, teamID int64) ([]game.Game, error) {
	items, err := basecache.Load(ctx, r.cache, "game:team:"+leagueKey(leagueID, teamID), func(ctx context.Context) ([]game.Game, error) {
		return r.next.ListByTeam(ctx, leagueID, teamID)
	})
	if err != nil {
		return nil, err
	}
	return append([]game.Game(nil), items...), nil
}

type ShotRepository struct {
	next  shot.Repository
	cache *basecache.Store
}

func NewShotRepository(next shot.Repository, cache *basecache.Store) *ShotRepository {
	return &ShotRepository{next: next, cache: cache}
}

func (r *ShotRepository) ListByTeam(ctx context.Context, leagueID string, teamID int64) ([]shot.Shot, error) {
	items, err := basecache.Load(ctx, r.cache, "shot:team:"+leagueKey(leagueID, teamID), func(ctx context.Context) ([]shot.Shot, error) {
		return r.next.ListByTeam(ctx, leagueID, teamID)
	})
	if err != nil {
		return nil, err
	}
	return append([]shot.Shot(nil), items...), nil
}

type PlayerLogRepository struct {
	next  playerlog.Repository
	cache *basecache.Store
}

func NewPlayerLogRepository(next playerlog.Repository, cache *basecache.Store) *PlayerLogRepository {
	return &PlayerLogRepository{next: next, cache: cache}
}

func (r *PlayerLogRepository) GetPlayer(ctx context.Context, leagueID string, playerID int64) (playerlog.Player, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, "player:id:"+leagueKey(leagueID, playerID), func(ctx context.Context) (lookup[playerlog.Player], error) {
		item, exists, err := r.next.GetPlayer(ctx, leagueID, playerID)
		return lookup[playerlog.Player]{value: item, exists: exists}, err
	})
	if err != nil {
		return playerlog.Player{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *PlayerLogRepository) ListByPlayer(ctx context.Context, leagueID string, playerID int64) ([]playerlog.Row, error) {
	items, err := basecache.Load(ctx, r.cache, "player:logs:"+leagueKey(leagueID, playerID), func(ctx context.Context) ([]playerlog.Row, error) {
		return r.next.ListByPlayer(ctx, leagueID, playerID)
	})
	if err != nil {
		return nil, err
	}
	return append([]playerlog.Row(nil), items...), nil
}

type TeamStatsRepository struct {
	next  teamstats.Repository
	cache *basecache.Store
}

func NewTeamStatsRepository(next teamstats.Repository, cache *basecache.Store) *TeamStatsRepository {
	return &TeamStatsRepository{next: next, cache: cache}
}

func (r *TeamStatsRepository) GetAveragesByTeam(ctx context.Context, leagueID string, teamID int64) (teamstats.Averages, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, "teamstats:averages:"+leagueKey(leagueID, teamID), func(ctx context.Context) (lookup[teamstats.Averages], error) {
		item, exists, err := r.next.GetAveragesByTeam(ctx, leagueID, teamID)
		return lookup[teamstats.Averages]{value: item, exists: exists}, err
	})
	if err != nil {
		return teamstats.Averages{}, false, err
	}
	return cached.value, cached.exists, nil
}

func leagueKey(leagueID string, id int64) string {
	return leagueID + ":" + strconv.FormatInt(id, 10)
}

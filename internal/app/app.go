package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/courtside/internal/config"
	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/playerlog"
	"github.com/riskibarqy/courtside/internal/domain/shot"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
	cacherepo "github.com/riskibarqy/courtside/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/courtside/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/courtside/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/courtside/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/courtside/internal/platform/cache"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/usecase"
)

type repositories struct {
	teams     team.Repository
	games     game.Repository
	shots     shot.Repository
	playerLog playerlog.Repository
	teamStats teamstats.Repository
}

// Server bundles the HTTP server with the resources it owns.
type Server struct {
	HTTP   *http.Server
	db     *sqlx.DB
	cache  *basecache.Store
	logger *logging.Logger
}

// CacheStats reports repository cache counters. ok is false when the cache
// is disabled.
func (s *Server) CacheStats() (stats basecache.Stats, ok bool) {
	if s == nil || s.cache == nil {
		return basecache.Stats{}, false
	}
	return s.cache.Stats(), true
}

// Close logs the final cache counters and releases the database pool, if any.
func (s *Server) Close() error {
	if s == nil {
		return nil
	}
	if stats, ok := s.CacheStats(); ok && s.logger != nil {
		s.logger.Info("repository cache stats",
			"entries", stats.Entries,
			"hits", stats.Hits,
			"misses", stats.Misses,
		)
	}
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var (
		repos repositories
		db    *sqlx.DB
		store *basecache.Store
		err   error
	)
	if cfg.DBEnabled {
		db, err = openDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bootstrap seed: %w", err)
		}
		repos = postgresRepositories(db)
		logger.Info("repositories ready", "backend", "postgres", "db_name", databaseName(cfg.DBURL))
	} else {
		repos = memoryRepositories()
		logger.Info("repositories ready", "backend", "memory", "league_id", memory.LeagueIDLigaEndesa)
	}

	if cfg.CacheEnabled {
		store = basecache.NewStore(cfg.CacheTTL)
		repos = cachedRepositories(repos, store)
		logger.Info("repository cache enabled", "ttl", cfg.CacheTTL.String())
	}

	teamStatsSvc := usecase.NewTeamStatsService(repos.teams, repos.games, repos.shots, repos.teamStats, logger)
	playerStatsSvc := usecase.NewPlayerStatsService(repos.playerLog, repos.teamStats, cfg.StatsRecentWindow, logger)
	scheduleSvc := usecase.NewScheduleService(repos.teams, repos.games, logger)
	scoutingSvc := usecase.NewScoutingService(repos.teams, repos.games, repos.shots, repos.teamStats, cfg.ScoutingWorkers, logger)

	handler := httpapi.NewHandler(teamStatsSvc, playerStatsSvc, scheduleSvc, scoutingSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	return &Server{
		HTTP: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		db:     db,
		cache:  store,
		logger: logger,
	}, nil
}

func memoryRepositories() repositories {
	games := memory.SeedGames()
	players := memory.SeedPlayers()

	return repositories{
		teams:     memory.NewTeamRepository(memory.SeedTeams()),
		games:     memory.NewGameRepository(games),
		shots:     memory.NewShotRepository(memory.SeedShots(games), memory.GameLeagues(games)),
		playerLog: memory.NewPlayerLogRepository(players, memory.SeedPlayerLogs(players, games)),
		teamStats: memory.NewTeamStatsRepository(memory.SeedTeamAverages()),
	}
}

func postgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		teams:     postgres.NewTeamRepository(db),
		games:     postgres.NewGameRepository(db),
		shots:     postgres.NewShotRepository(db),
		playerLog: postgres.NewPlayerLogRepository(db),
		teamStats: postgres.NewTeamStatsRepository(db),
	}
}

func cachedRepositories(next repositories, store *basecache.Store) repositories {
	return repositories{
		teams:     cacherepo.NewTeamRepository(next.teams, store),
		games:     cacherepo.NewGameRepository(next.games, store),
		shots:     cacherepo.NewShotRepository(next.shots, store),
		playerLog: cacherepo.NewPlayerLogRepository(next.playerLog, store),
		teamStats: cacherepo.NewTeamStatsRepository(next.teamStats, store),
	}
}

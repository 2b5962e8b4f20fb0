package app

import (
	"context"

	"github.com/riskibarqy/lineup-advisor/internal/config"
	"github.com/riskibarqy/lineup-advisor/internal/domain/availability"
	"github.com/riskibarqy/lineup-advisor/internal/domain/leaguecalc"
	"github.com/riskibarqy/lineup-advisor/internal/domain/matchup"
	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
	"github.com/riskibarqy/lineup-advisor/internal/domain/playerstats"
	"github.com/riskibarqy/lineup-advisor/internal/domain/roster"
	repocache "github.com/riskibarqy/lineup-advisor/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/lineup-advisor/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/lineup-advisor/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/lineup-advisor/internal/platform/cache"
	"github.com/riskibarqy/lineup-advisor/internal/platform/logging"
	"github.com/riskibarqy/lineup-advisor/internal/platform/resilience"
)

// Repositories bundles every storage port the services depend on.
type Repositories struct {
	Players      player.Repository
	Stats        playerstats.Repository
	StatsWriter  playerstats.Writer
	Calcs        leaguecalc.Repository
	CalcWriter   leaguecalc.Writer
	Rosters      roster.Repository
	Matchups     matchup.Repository
	Availability availability.Repository

	closeFn func() error
}

// NewRepositories builds the storage layer selected by STORAGE_DRIVER.
func NewRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Repositories, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		repos   *Repositories
		breaker *resilience.CircuitBreaker
	)
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		repos = &Repositories{
			Players:      postgres.NewPlayerRepository(db),
			Stats:        postgres.NewPlayerStatsRepository(db),
			Calcs:        postgres.NewLeagueCalcRepository(db),
			Rosters:      postgres.NewRosterRepository(db),
			Matchups:     postgres.NewMatchupRepository(db),
			Availability: postgres.NewAvailabilityRepository(db),
			closeFn:      db.Close,
		}
		if cfg.PersistMode == config.PersistRow {
			repos.StatsWriter = postgres.NewPlayerStatsRowWriter(db)
			repos.CalcWriter = postgres.NewLeagueCalcRowWriter(db)
		} else {
			repos.StatsWriter = postgres.NewPlayerStatsBulkWriter(db)
			repos.CalcWriter = postgres.NewLeagueCalcBulkWriter(db)
		}
		breaker = newDBBreaker(cfg, logger)
		logger.Info("postgres repositories ready",
			"db_name", databaseName(cfg.DBURL),
			"persist_mode", cfg.PersistMode,
		)
	default:
		repos = newMemoryRepositories()
		logger.Info("memory repositories ready", "league_id", memory.LeagueIDDemo, "season", memory.SeasonDemo)
	}

	if cfg.CacheEnabled {
		repos.Rosters = repocache.NewRosterRepository(repos.Rosters, basecache.NewStore[[]roster.SlotConfig](cfg.CacheTTL), breaker)
		repos.Players = repocache.NewPlayerRepository(
			repos.Players,
			basecache.NewStore[player.Player](cfg.CacheTTL),
			basecache.NewStore[[]player.Player](cfg.CacheTTL),
		)
	}

	return repos, nil
}

func newMemoryRepositories() *Repositories {
	stats := memory.NewPlayerStatsRepository(memory.SeedWeeklyStats())
	calcs := memory.NewLeagueCalcRepository(memory.SeedLeagueCalcs())
	return &Repositories{
		Players:      memory.NewPlayerRepository(memory.SeedPlayers()),
		Stats:        stats,
		StatsWriter:  stats,
		Calcs:        calcs,
		CalcWriter:   calcs,
		Rosters:      memory.NewRosterRepository(memory.SeedRosters(), memory.SeedSlotConfig()),
		Matchups:     memory.NewMatchupRepository(memory.SeedMatchups(), memory.SeedDifficulty()),
		Availability: memory.NewAvailabilityRepository(memory.SeedInjuries(), memory.SeedByes()),
	}
}

func newDBBreaker(cfg config.Config, logger *logging.Logger) *resilience.CircuitBreaker {
	breaker := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
		Enabled:          cfg.DBCircuitEnabled,
		FailureThreshold: cfg.DBCircuitFailureCount,
		OpenTimeout:      cfg.DBCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
	})
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("db circuit breaker state changed", "from", from, "to", to)
	})
	return breaker
}

func (r *Repositories) Close() error {
	if r == nil || r.closeFn == nil {
		return nil
	}
	return r.closeFn()
}

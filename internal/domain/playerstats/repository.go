package playerstats

import "context"

// Repository exposes weekly stat reads.
type Repository interface {
	// ListBySeasonWeeks returns every row of the season with fromWeek <= week <= toWeek.
	ListBySeasonWeeks(ctx context.Context, season, fromWeek, toWeek int) ([]PlayerWeeklyStat, error)
	ListByPlayers(ctx context.Context, season, week int, playerIDs []string) ([]PlayerWeeklyStat, error)
}

// Writer persists recomputed rows. Every write is a full overwrite keyed by
// (player, season, week), so callers may retry or re-run freely.
type Writer interface {
	UpsertWeeklyStats(ctx context.Context, rows []PlayerWeeklyStat) error
}

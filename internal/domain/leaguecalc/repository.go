package leaguecalc

import "context"

// Repository exposes league calc reads.
type Repository interface {
	ListByLeagueWeeks(ctx context.Context, leagueID string, season, fromWeek, toWeek int) ([]LeagueCalc, error)
	ListByPlayers(ctx context.Context, leagueID string, season, week int, playerIDs []string) ([]LeagueCalc, error)
}

// Writer persists recomputed rows as full overwrites keyed by
// (league, player, season, week).
type Writer interface {
	UpsertLeagueCalcs(ctx context.Context, rows []LeagueCalc) error
}

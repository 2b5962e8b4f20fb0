package roster

import "context"

// Repository exposes roster reads.
type Repository interface {
	ListByTeams(ctx context.Context, leagueID string, teamIDs []string) ([]Entry, error)
	ListSlotConfig(ctx context.Context, leagueID string) ([]SlotConfig, error)
}

package cache

import (
	"context"

	"github.com/riskibarqy/lineup-advisor/internal/domain/roster"
	basecache "github.com/riskibarqy/lineup-advisor/internal/platform/cache"
	"github.com/riskibarqy/lineup-advisor/internal/platform/resilience"
)

// RosterRepository caches league slot configuration. Roster entries change
// through the week and are always read through.
type RosterRepository struct {
	next    roster.Repository
	cache   *basecache.Store[[]roster.SlotConfig]
	breaker *resilience.CircuitBreaker
}

// NewRosterRepository accepts a nil breaker, which never trips.
func NewRosterRepository(next roster.Repository, cache *basecache.Store[[]roster.SlotConfig], breaker *resilience.CircuitBreaker) *RosterRepository {
	return &RosterRepository{next: next, cache: cache, breaker: breaker}
}

func (r *RosterRepository) ListByTeams(ctx context.Context, leagueID string, teamIDs []string) ([]roster.Entry, error) {
	return resilience.Execute(r.breaker, func() ([]roster.Entry, error) {
		return r.next.ListByTeams(ctx, leagueID, teamIDs)
	})
}

func (r *RosterRepository) ListSlotConfig(ctx context.Context, leagueID string) ([]roster.SlotConfig, error) {
	items, err := r.cache.GetOrLoad(ctx, slotConfigKey(leagueID), func(ctx context.Context) ([]roster.SlotConfig, error) {
		items, err := resilience.Execute(r.breaker, func() ([]roster.SlotConfig, error) {
			return r.next.ListSlotConfig(ctx, leagueID)
		})
		if err != nil {
			return nil, err
		}
		return append([]roster.SlotConfig(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]roster.SlotConfig(nil), items...), nil
}

func slotConfigKey(leagueID string) string {
	return "roster:slot-config:" + leagueID
}

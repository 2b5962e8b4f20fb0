package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/lineup-advisor/internal/domain/roster"
)

type RosterRepository struct {
	mu      sync.RWMutex
	entries []roster.Entry
	slots   map[string][]roster.SlotConfig
}

func NewRosterRepository(entries []roster.Entry, slots []roster.SlotConfig) *RosterRepository {
	byLeague := make(map[string][]roster.SlotConfig)
	for _, s := range slots {
		byLeague[s.LeagueID] = append(byLeague[s.LeagueID], s)
	}
	return &RosterRepository{
		entries: append([]roster.Entry(nil), entries...),
		slots:   byLeague,
	}
}

func (r *RosterRepository) ListByTeams(_ context.Context, leagueID string, teamIDs []string) ([]roster.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = struct{}{}
	}

	out := make([]roster.Entry, 0)
	for _, e := range r.entries {
		if e.LeagueID != leagueID {
			continue
		}
		if _, ok := wanted[e.TeamID]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *RosterRepository) ListSlotConfig(_ context.Context, leagueID string) ([]roster.SlotConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]roster.SlotConfig(nil), r.slots[leagueID]...), nil
}

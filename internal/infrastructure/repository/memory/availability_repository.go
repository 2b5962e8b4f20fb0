package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/lineup-advisor/internal/domain/availability"
)

type AvailabilityRepository struct {
	mu       sync.RWMutex
	injuries map[string]availability.Injury
	byes     map[int][]availability.Bye
}

// NewAvailabilityRepository keys bye weeks by season.
func NewAvailabilityRepository(injuries []availability.Injury, byesBySeason map[int][]availability.Bye) *AvailabilityRepository {
	index := make(map[string]availability.Injury, len(injuries))
	for _, injury := range injuries {
		index[injury.PlayerID] = injury
	}
	byes := make(map[int][]availability.Bye, len(byesBySeason))
	for season, items := range byesBySeason {
		byes[season] = append([]availability.Bye(nil), items...)
	}
	return &AvailabilityRepository{injuries: index, byes: byes}
}

func (r *AvailabilityRepository) ListInjuries(_ context.Context, playerIDs []string) ([]availability.Injury, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]availability.Injury, 0)
	for _, id := range playerIDs {
		if injury, ok := r.injuries[id]; ok {
			out = append(out, injury)
		}
	}
	return out, nil
}

func (r *AvailabilityRepository) ListByes(_ context.Context, season int, playerIDs []string) ([]availability.Bye, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		wanted[id] = struct{}{}
	}
	out := make([]availability.Bye, 0)
	for _, bye := range r.byes[season] {
		if _, ok := wanted[bye.PlayerID]; ok {
			out = append(out, bye)
		}
	}
	return out, nil
}

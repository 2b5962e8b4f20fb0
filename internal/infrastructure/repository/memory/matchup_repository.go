package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/lineup-advisor/internal/domain/matchup"
)

type MatchupRepository struct {
	mu         sync.RWMutex
	matchups   []matchup.Matchup
	difficulty []matchup.DifficultyIndex
}

func NewMatchupRepository(matchups []matchup.Matchup, difficulty []matchup.DifficultyIndex) *MatchupRepository {
	return &MatchupRepository{
		matchups:   append([]matchup.Matchup(nil), matchups...),
		difficulty: append([]matchup.DifficultyIndex(nil), difficulty...),
	}
}

func (r *MatchupRepository) ListBySeasonWeeks(_ context.Context, season, fromWeek, toWeek int) ([]matchup.Matchup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchup.Matchup, 0)
	for _, m := range r.matchups {
		if m.Season == season && m.Week >= fromWeek && m.Week <= toWeek {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MatchupRepository) ListDifficulty(_ context.Context, season, week int) ([]matchup.DifficultyIndex, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchup.DifficultyIndex, 0)
	for _, d := range r.difficulty {
		if d.Season == season && d.Week == week {
			out = append(out, d)
		}
	}
	return out, nil
}

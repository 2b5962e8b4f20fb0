package matchup

import "context"

type Repository interface {
	ListBySeasonWeeks(ctx context.Context, season, fromWeek, toWeek int) ([]Matchup, error)
	ListDifficulty(ctx context.Context, season, week int) ([]DifficultyIndex, error)
}

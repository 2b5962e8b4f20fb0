package player

import "context"

// Repository exposes player catalog reads.
type Repository interface {
	GetByIDs(ctx context.Context, playerIDs []string) ([]Player, error)
	ListByPositions(ctx context.Context, positions []Position) ([]Player, error)
}

package cache

import (
	"context"
	"sort"
	"strings"

	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
	basecache "github.com/riskibarqy/lineup-advisor/internal/platform/cache"
)

// PlayerRepository caches catalog reads per player id and per position set.
type PlayerRepository struct {
	next  player.Repository
	byID  *basecache.Store[player.Player]
	lists *basecache.Store[[]player.Player]
}

func NewPlayerRepository(next player.Repository, byID *basecache.Store[player.Player], lists *basecache.Store[[]player.Player]) *PlayerRepository {
	return &PlayerRepository{next: next, byID: byID, lists: lists}
}

// GetByIDs serves known ids from cache and loads only the misses.
func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	out := make([]player.Player, 0, len(playerIDs))
	missing := make([]string, 0, len(playerIDs))
	for _, id := range playerIDs {
		if item, ok := r.byID.Get(ctx, playerKey(id)); ok {
			out = append(out, item)
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return out, nil
	}

	loaded, err := r.next.GetByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, item := range loaded {
		r.byID.Set(ctx, playerKey(item.ID), item)
		out = append(out, item)
	}
	return out, nil
}

func (r *PlayerRepository) ListByPositions(ctx context.Context, positions []player.Position) ([]player.Player, error) {
	items, err := r.lists.GetOrLoad(ctx, positionsKey(positions), func(ctx context.Context) ([]player.Player, error) {
		items, err := r.next.ListByPositions(ctx, positions)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]player.Player(nil), items...), nil
}

func playerKey(playerID string) string {
	return "player:id:" + playerID
}

func positionsKey(positions []player.Position) string {
	parts := make([]string, 0, len(positions))
	for _, p := range positions {
		parts = append(parts, string(p))
	}
	sort.Strings(parts)
	return "player:positions:" + strings.Join(parts, ",")
}

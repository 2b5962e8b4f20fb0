package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/lineup-advisor/internal/domain/playerstats"
)

// PlayerStatsRepository implements both playerstats.Repository and
// playerstats.Writer. Writes overwrite whole rows by key.
type PlayerStatsRepository struct {
	mu   sync.RWMutex
	rows map[playerstats.Key]playerstats.PlayerWeeklyStat
}

func NewPlayerStatsRepository(rows []playerstats.PlayerWeeklyStat) *PlayerStatsRepository {
	r := &PlayerStatsRepository{rows: make(map[playerstats.Key]playerstats.PlayerWeeklyStat, len(rows))}
	for _, row := range rows {
		r.rows[row.Key()] = cloneWeeklyStat(row)
	}
	return r
}

func (r *PlayerStatsRepository) ListBySeasonWeeks(_ context.Context, season, fromWeek, toWeek int) ([]playerstats.PlayerWeeklyStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerstats.PlayerWeeklyStat, 0)
	for key, row := range r.rows {
		if key.Season != season || key.Week < fromWeek || key.Week > toWeek {
			continue
		}
		out = append(out, cloneWeeklyStat(row))
	}
	sortWeeklyStats(out)
	return out, nil
}

func (r *PlayerStatsRepository) ListByPlayers(_ context.Context, season, week int, playerIDs []string) ([]playerstats.PlayerWeeklyStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerstats.PlayerWeeklyStat, 0, len(playerIDs))
	for _, id := range playerIDs {
		row, ok := r.rows[playerstats.Key{PlayerID: id, Season: season, Week: week}]
		if !ok {
			continue
		}
		out = append(out, cloneWeeklyStat(row))
	}
	return out, nil
}

func (r *PlayerStatsRepository) UpsertWeeklyStats(_ context.Context, rows []playerstats.PlayerWeeklyStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range rows {
		r.rows[row.Key()] = cloneWeeklyStat(row)
	}
	return nil
}

func cloneWeeklyStat(row playerstats.PlayerWeeklyStat) playerstats.PlayerWeeklyStat {
	row.Derived = row.Derived.Clone()
	row.Rolling = row.Rolling.Clone()
	row.Normalized = row.Normalized.Clone()
	row.Raw.SnapShare = cloneFloat(row.Raw.SnapShare)
	row.Raw.PointsAllowed = cloneFloat(row.Raw.PointsAllowed)
	row.Raw.YardsAllowed = cloneFloat(row.Raw.YardsAllowed)
	return row
}

func sortWeeklyStats(rows []playerstats.PlayerWeeklyStat) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Week != rows[j].Week {
			return rows[i].Week < rows[j].Week
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

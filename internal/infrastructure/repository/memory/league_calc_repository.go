package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/lineup-advisor/internal/domain/leaguecalc"
)

type LeagueCalcRepository struct {
	mu   sync.RWMutex
	rows map[leaguecalc.Key]leaguecalc.LeagueCalc
}

func NewLeagueCalcRepository(rows []leaguecalc.LeagueCalc) *LeagueCalcRepository {
	r := &LeagueCalcRepository{rows: make(map[leaguecalc.Key]leaguecalc.LeagueCalc, len(rows))}
	for _, row := range rows {
		r.rows[row.Key()] = cloneLeagueCalc(row)
	}
	return r
}

func (r *LeagueCalcRepository) ListByLeagueWeeks(_ context.Context, leagueID string, season, fromWeek, toWeek int) ([]leaguecalc.LeagueCalc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]leaguecalc.LeagueCalc, 0)
	for key, row := range r.rows {
		if key.LeagueID != leagueID || key.Season != season || key.Week < fromWeek || key.Week > toWeek {
			continue
		}
		out = append(out, cloneLeagueCalc(row))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Week != out[j].Week {
			return out[i].Week < out[j].Week
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out, nil
}

func (r *LeagueCalcRepository) ListByPlayers(_ context.Context, leagueID string, season, week int, playerIDs []string) ([]leaguecalc.LeagueCalc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]leaguecalc.LeagueCalc, 0, len(playerIDs))
	for _, id := range playerIDs {
		row, ok := r.rows[leaguecalc.Key{LeagueID: leagueID, PlayerID: id, Season: season, Week: week}]
		if !ok {
			continue
		}
		out = append(out, cloneLeagueCalc(row))
	}
	return out, nil
}

// UpsertLeagueCalcs overwrites the computed columns. FantasyPoints belongs to
// ingestion and is kept when the incoming row has none.
func (r *LeagueCalcRepository) UpsertLeagueCalcs(_ context.Context, rows []leaguecalc.LeagueCalc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range rows {
		next := cloneLeagueCalc(row)
		if prev, ok := r.rows[row.Key()]; ok && next.FantasyPoints == nil {
			next.FantasyPoints = cloneFloat(prev.FantasyPoints)
		}
		r.rows[row.Key()] = next
	}
	return nil
}

func cloneLeagueCalc(row leaguecalc.LeagueCalc) leaguecalc.LeagueCalc {
	row.FantasyPoints = cloneFloat(row.FantasyPoints)
	row.RecentMean = cloneFloat(row.RecentMean)
	row.RecentStd = cloneFloat(row.RecentStd)
	row.RecentMeanNorm = cloneFloat(row.RecentMeanNorm)
	row.RecentStdNorm = cloneFloat(row.RecentStdNorm)
	row.WeightedScore = cloneFloat(row.WeightedScore)
	if row.Components != nil {
		components := make(map[string]float64, len(row.Components))
		for k, v := range row.Components {
			components[k] = v
		}
		row.Components = components
	}
	return row
}

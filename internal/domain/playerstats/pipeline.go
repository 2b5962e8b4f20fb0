package playerstats

import (
	"sort"

	"github.com/riskibarqy/lineup-advisor/internal/domain/analytics"
	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
)

// BuildWeek recomputes the current-week rows of a season snapshot.
//
// history must contain every row of the trailing window ending at week. Derived
// features are rebuilt from raw stats, Rolling holds the trailing mean of each
// derived feature and Normalized holds the min-max of Rolling within each
// position cohort. Only rows of week are returned, sorted by player id.
func BuildWeek(history []PlayerWeeklyStat, week, window int) []PlayerWeeklyStat {
	from, to := analytics.Window(week, window)

	byPlayer := make(map[string][]PlayerWeeklyStat)
	current := make([]PlayerWeeklyStat, 0)
	for _, row := range history {
		if row.Week < from || row.Week > to {
			continue
		}
		row.Derived = Derive(row.Position, row.Raw)
		byPlayer[row.PlayerID] = append(byPlayer[row.PlayerID], row)
		if row.Week == week {
			current = append(current, row)
		}
	}

	for i := range current {
		current[i].Rolling = trailingMeans(byPlayer[current[i].PlayerID])
	}

	NormalizeCohorts(current)

	sort.Slice(current, func(i, j int) bool { return current[i].PlayerID < current[j].PlayerID })
	return current
}

func trailingMeans(rows []PlayerWeeklyStat) FeatureSet {
	values := make(map[Feature][]*float64)
	for _, row := range rows {
		for feature, v := range row.Derived {
			values[feature] = append(values[feature], analytics.Float(v))
		}
	}

	out := make(FeatureSet, len(values))
	for feature, series := range values {
		mean, _ := analytics.MeanStd(series)
		if mean == nil {
			continue
		}
		out[feature] = *mean
	}
	return out
}

// NormalizeCohorts overwrites Normalized on every row with the min-max of its
// Rolling features, computed per position. Each feature is normalized on its
// own so a null in one feature never blocks another.
func NormalizeCohorts(rows []PlayerWeeklyStat) {
	cohorts := make(map[player.Position][]int)
	for i := range rows {
		cohorts[rows[i].Position] = append(cohorts[rows[i].Position], i)
	}

	for _, members := range cohorts {
		features := make(map[Feature]struct{})
		for _, idx := range members {
			for feature := range rows[idx].Rolling {
				features[feature] = struct{}{}
			}
			rows[idx].Normalized = make(FeatureSet)
		}

		for feature := range features {
			values := make([]*float64, len(members))
			for i, idx := range members {
				if v, ok := rows[idx].Rolling.Get(feature); ok {
					values[i] = analytics.Float(v)
				}
			}
			for i, norm := range analytics.MinMax(values) {
				if norm == nil {
					continue
				}
				rows[members[i]].Normalized[feature] = *norm
			}
		}
	}
}

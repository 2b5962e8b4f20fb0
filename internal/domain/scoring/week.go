package scoring

import (
	"sort"
	"time"

	"github.com/riskibarqy/lineup-advisor/internal/domain/analytics"
	"github.com/riskibarqy/lineup-advisor/internal/domain/leaguecalc"
	"github.com/riskibarqy/lineup-advisor/internal/domain/matchup"
	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
	"github.com/riskibarqy/lineup-advisor/internal/domain/playerstats"
)

// WeekInput is the full snapshot needed to score one league week.
type WeekInput struct {
	LeagueID string
	Season   int
	Week     int
	// Window is the trailing number of weeks for the recent tracker.
	Window     int
	Clip       float64
	Players    map[string]player.Player
	History    []leaguecalc.LeagueCalc
	Stats      []playerstats.PlayerWeeklyStat
	Schedule   matchup.Schedule
	Difficulty matchup.DifficultyTable
	Now        time.Time
}

// ScoreWeek recomputes every league calc of the week from scratch.
//
// A player is scored when it has a calc row in the window or a normalized stat
// row for the week. Recent mean and std come from the fantasy points of the
// window; the cohort of each position then normalizes the mean by min-max and
// the std by z-score. Rows are returned sorted by player id.
func ScoreWeek(in WeekInput) []leaguecalc.LeagueCalc {
	from, to := analytics.Window(in.Week, in.Window)

	points := make(map[string][]*float64)
	current := make(map[string]leaguecalc.LeagueCalc)
	positions := make(map[string]player.Position)
	for _, row := range in.History {
		if row.LeagueID != in.LeagueID || row.Season != in.Season || row.Week < from || row.Week > to {
			continue
		}
		points[row.PlayerID] = append(points[row.PlayerID], row.FantasyPoints)
		if row.Week == in.Week {
			current[row.PlayerID] = row
		}
		if row.Position != "" {
			positions[row.PlayerID] = row.Position
		}
	}

	stats := make(map[string]playerstats.PlayerWeeklyStat)
	for _, row := range in.Stats {
		if row.Season != in.Season || row.Week != in.Week {
			continue
		}
		stats[row.PlayerID] = row
		if row.Position != "" {
			positions[row.PlayerID] = row.Position
		}
	}
	for id, p := range in.Players {
		if _, ok := positions[id]; ok && p.Position != "" {
			positions[id] = p.Position
		}
	}

	out := make([]leaguecalc.LeagueCalc, 0, len(positions))
	for id, position := range positions {
		if _, ok := ModelFor(position); !ok {
			continue
		}
		mean, std := analytics.MeanStd(points[id])
		out = append(out, leaguecalc.LeagueCalc{
			LeagueID:      in.LeagueID,
			PlayerID:      id,
			Position:      position,
			Season:        in.Season,
			Week:          in.Week,
			FantasyPoints: current[id].FantasyPoints,
			RecentMean:    mean,
			RecentStd:     std,
			CalculatedAt:  in.Now,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })

	normalizeRecent(out)

	for i := range out {
		model, _ := ModelFor(out[i].Position)
		inputs := Inputs{
			Normalized:     stats[out[i].PlayerID].Normalized,
			RecentMeanNorm: out[i].RecentMeanNorm,
			RecentStdNorm:  out[i].RecentStdNorm,
		}
		if p, ok := in.Players[out[i].PlayerID]; ok {
			if v, found := OpponentDifficulty(out[i].Position, p.NFLTeam, in.Week, in.Schedule, in.Difficulty); found {
				inputs.Opponent = &v
			}
		}
		components := model.Components(inputs, in.Clip)
		score := model.Score(components)
		out[i].Components = components
		out[i].WeightedScore = &score
	}
	return out
}

func normalizeRecent(rows []leaguecalc.LeagueCalc) {
	cohorts := make(map[player.Position][]int)
	for i := range rows {
		cohorts[rows[i].Position] = append(cohorts[rows[i].Position], i)
	}
	for _, members := range cohorts {
		means := make([]*float64, len(members))
		stds := make([]*float64, len(members))
		for i, idx := range members {
			means[i] = rows[idx].RecentMean
			stds[i] = rows[idx].RecentStd
		}
		meanNorm := analytics.MinMax(means)
		stdNorm := analytics.ZScore(stds)
		for i, idx := range members {
			rows[idx].RecentMeanNorm = meanNorm[i]
			rows[idx].RecentStdNorm = stdNorm[i]
		}
	}
}

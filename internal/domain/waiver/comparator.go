package waiver

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/lineup-advisor/internal/domain/availability"
	"github.com/riskibarqy/lineup-advisor/internal/domain/recommendation"
	"github.com/riskibarqy/lineup-advisor/internal/domain/scoring"
)

// DefaultGraceWeeks is how long a scoreless rostered player is left alone.
const DefaultGraceWeeks = 2

// Request is one team's roster against an already filtered free agent list.
type Request struct {
	TeamID       string
	Week         int
	GraceWeeks   int
	Rostered     []scoring.Rated
	FreeAgents   []scoring.Rated
	Availability availability.Snapshot
}

type option struct {
	rec       recommendation.Recommendation
	noScore   bool
	faScore   float64
	gap       float64
	dropped   string
	freeAgent string
}

// Compare pairs every rostered player with every playable free agent at the
// same position. A pair becomes ADD when the free agent outscores the rostered
// player, or when the rostered player has no score past the grace period and
// the free agent has one. Pairs against scoreless players come first, then
// the largest gap.
func Compare(r Request) []recommendation.Recommendation {
	options := make([]option, 0)
	for _, fa := range r.FreeAgents {
		if !fa.HasScore() || !r.Availability.Playable(fa.Player.ID) {
			continue
		}
		for _, rostered := range r.Rostered {
			if rostered.Player.Position != fa.Player.Position || rostered.Player.ID == fa.Player.ID {
				continue
			}
			switch {
			case !rostered.HasScore() && r.Week > r.GraceWeeks:
				options = append(options, option{
					rec:       addScoreless(r, fa, rostered),
					noScore:   true,
					faScore:   fa.Value(),
					dropped:   rostered.Player.ID,
					freeAgent: fa.Player.ID,
				})
			case rostered.HasScore() && fa.Value() > rostered.Value():
				options = append(options, option{
					rec:       addOver(r, fa, rostered),
					faScore:   fa.Value(),
					gap:       fa.Value() - rostered.Value(),
					dropped:   rostered.Player.ID,
					freeAgent: fa.Player.ID,
				})
			}
		}
	}

	sort.SliceStable(options, func(i, j int) bool {
		a, b := options[i], options[j]
		if a.noScore != b.noScore {
			return a.noScore
		}
		if a.noScore {
			if a.faScore != b.faScore {
				return a.faScore > b.faScore
			}
		} else if a.gap != b.gap {
			return a.gap > b.gap
		}
		if a.freeAgent != b.freeAgent {
			return a.freeAgent < b.freeAgent
		}
		return a.dropped < b.dropped
	})

	out := make([]recommendation.Recommendation, 0, len(options))
	for _, o := range options {
		out = append(out, o.rec)
	}
	return out
}

func newAdd(r Request, fa, rostered scoring.Rated) recommendation.Recommendation {
	return recommendation.Recommendation{
		TeamID:     r.TeamID,
		PlayerID:   fa.Player.ID,
		PlayerName: fa.Player.DisplayName(),
		Position:   fa.Player.Position,
		Verdict:    recommendation.VerdictAdd,
		Score:      fa.Score,
		Confidence: scoring.Confidence(recommendation.VerdictAdd, fa.Value(), rostered.Value()),
		Baseline: recommendation.Baseline{
			PlayerID: rostered.Player.ID,
			Label:    rostered.Player.DisplayName(),
			Score:    rostered.Value(),
			HasScore: rostered.HasScore(),
		},
		Drop: rostered.Player.ID,
	}
}

func addOver(r Request, fa, rostered scoring.Rated) recommendation.Recommendation {
	out := newAdd(r, fa, rostered)
	out.Reason = scoring.Justify(scoring.Comparison{
		Lead:        fmt.Sprintf("Add %s, drop %s.", fa.Player.DisplayName(), rostered.Player.DisplayName()),
		Winner:      fa.Player.DisplayName(),
		WinnerScore: fa.Value(),
		Winning:     fa.Breakdown,
		Loser:       rostered.Player.DisplayName(),
		LoserScore:  rostered.Value(),
		Losing:      rostered.Breakdown,
	})
	return out
}

func addScoreless(r Request, fa, rostered scoring.Rated) recommendation.Recommendation {
	out := newAdd(r, fa, rostered)
	out.Reason = fmt.Sprintf("Add %s, drop %s. %s has no scoring data through week %d while %s projects %.2f.",
		fa.Player.DisplayName(), rostered.Player.DisplayName(), rostered.Player.DisplayName(), r.Week,
		fa.Player.DisplayName(), fa.Value())
	return out
}

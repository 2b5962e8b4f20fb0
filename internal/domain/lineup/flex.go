package lineup

import (
	"github.com/riskibarqy/lineup-advisor/internal/domain/availability"
	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
	"github.com/riskibarqy/lineup-advisor/internal/domain/recommendation"
	"github.com/riskibarqy/lineup-advisor/internal/domain/roster"
)

const flexSlotLabel = "FLEX"

// FlexGroup is one team's candidates for its shared flex slots.
type FlexGroup struct {
	TeamID       string
	Requirements roster.Requirements
	Candidates   []Candidate
	// Starters are the should-start players of the positional pass.
	Starters     map[string]struct{}
	Availability availability.Snapshot
}

// DecideFlex runs after Decide for a team. The pool is every playable
// flex-eligible player who is neither in a starting slot nor a should-start
// player of the positional pass. Injured or bye players sitting in flex are
// benched first; the top pool members then fill the flex slots.
func DecideFlex(g FlexGroup) []recommendation.Recommendation {
	ranked := make([]Candidate, 0, len(g.Candidates))
	for _, c := range g.Candidates {
		if !g.Requirements.IsFlexEligible(c.Player.Position) && !c.InFlex() {
			continue
		}
		ranked = append(ranked, c)
	}
	sortCandidates(ranked)

	pool := make([]Candidate, 0, len(ranked))
	for _, c := range ranked {
		if c.Starting() || !g.Requirements.IsFlexEligible(c.Player.Position) {
			continue
		}
		if _, ok := g.Starters[c.Player.ID]; ok {
			continue
		}
		if !g.Availability.Playable(c.Player.ID) {
			continue
		}
		pool = append(pool, c)
	}

	replacement, hasReplacement := bestPlayable(pool)
	byPlayer := make(map[string]recommendation.Recommendation)
	vacated := make([]Candidate, 0)
	for _, c := range ranked {
		if c.InFlex() && !g.Availability.Playable(c.Player.ID) {
			byPlayer[c.Player.ID] = benchUnavailable(c, g.Availability, replacement, hasReplacement)
			vacated = append(vacated, c)
		}
	}

	for id, rec := range swaps(pool, g.Requirements.FlexSlots, Candidate.InFlex, vacated, flexSlotLabel) {
		byPlayer[id] = rec
	}

	out := make([]recommendation.Recommendation, 0, len(byPlayer))
	for _, c := range ranked {
		if rec, ok := byPlayer[c.Player.ID]; ok {
			out = append(out, rec)
		}
	}
	return out
}

// Team runs the positional pass for every position in display order and then
// the flex pass. Each player gets at most one recommendation.
func Team(teamID string, req roster.Requirements, candidates []Candidate, avail availability.Snapshot) []recommendation.Recommendation {
	byPosition := make(map[player.Position][]Candidate)
	for _, c := range candidates {
		byPosition[c.Player.Position] = append(byPosition[c.Player.Position], c)
	}

	out := make([]recommendation.Recommendation, 0)
	starters := make(map[string]struct{})
	for _, position := range player.OrderedPositions {
		result := Decide(Group{
			TeamID:       teamID,
			Position:     position,
			Slots:        req.StartingSlots(position),
			Candidates:   byPosition[position],
			Availability: avail,
		})
		out = append(out, result.Recommendations...)
		for id := range result.ShouldStart {
			starters[id] = struct{}{}
		}
	}

	out = append(out, DecideFlex(FlexGroup{
		TeamID:       teamID,
		Requirements: req,
		Candidates:   candidates,
		Starters:     starters,
		Availability: avail,
	})...)
	return recommendation.Dedupe(out)
}

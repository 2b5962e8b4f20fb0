package lineup

import (
	"github.com/riskibarqy/lineup-advisor/internal/domain/availability"
	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
	"github.com/riskibarqy/lineup-advisor/internal/domain/recommendation"
)

// Group is every candidate of one team at one position.
type Group struct {
	TeamID       string
	Position     player.Position
	Slots        int
	Candidates   []Candidate
	Availability availability.Snapshot
}

// Result holds the recommendations of one group in rank order, plus the
// players that should start there. Those are not eligible for flex.
type Result struct {
	Recommendations []recommendation.Recommendation
	ShouldStart     map[string]struct{}
}

// Decide reconciles the ranked candidates of a group against its starting
// slots. Flex occupants are skipped. A starter that is injured or on bye is
// benched regardless of rank; otherwise a player whose current state differs
// from should-start gets START or BENCH against the player it swaps with.
// Unavailable bench players and players already in the right place get
// nothing.
func Decide(g Group) Result {
	ranked := make([]Candidate, 0, len(g.Candidates))
	for _, c := range g.Candidates {
		if c.InFlex() {
			continue
		}
		ranked = append(ranked, c)
	}
	sortCandidates(ranked)

	playable := playableOnly(ranked, g.Availability)
	shouldStart := make(map[string]struct{}, g.Slots)
	for i := 0; i < len(playable) && i < g.Slots; i++ {
		shouldStart[playable[i].Player.ID] = struct{}{}
	}

	replacement, hasReplacement := bestPlayable(playable)
	byPlayer := make(map[string]recommendation.Recommendation)
	vacated := make([]Candidate, 0)
	for _, c := range ranked {
		if c.Starting() && !g.Availability.Playable(c.Player.ID) {
			byPlayer[c.Player.ID] = benchUnavailable(c, g.Availability, replacement, hasReplacement)
			vacated = append(vacated, c)
		}
	}

	for id, rec := range swaps(playable, g.Slots, Candidate.Starting, vacated, string(g.Position)) {
		byPlayer[id] = rec
	}

	out := make([]recommendation.Recommendation, 0, len(byPlayer))
	for _, c := range ranked {
		if rec, ok := byPlayer[c.Player.ID]; ok {
			out = append(out, rec)
		}
	}
	return Result{Recommendations: out, ShouldStart: shouldStart}
}

// swaps emits START for players inside the top slots who are not in place
// and BENCH for players in place outside it. The k-th promotion by rank is
// paired with the k-th weakest demotion. Promotions left over take a vacated
// slot first, then the first player below the boundary, then an open slot.
// Demotions left over are compared against the last player above the
// boundary.
func swaps(playable []Candidate, slots int, inPlace func(Candidate) bool, vacated []Candidate, slot string) map[string]recommendation.Recommendation {
	promotions := make([]Candidate, 0)
	demotions := make([]Candidate, 0)
	for rank, c := range playable {
		should := rank < slots
		switch {
		case should && !inPlace(c):
			promotions = append(promotions, c)
		case !should && inPlace(c):
			demotions = append(demotions, c)
		}
	}

	out := make(map[string]recommendation.Recommendation, len(promotions)+len(demotions))
	for k := 0; k < len(promotions) && k < len(demotions); k++ {
		promoted := promotions[k]
		demoted := demotions[len(demotions)-1-k]
		out[promoted.Player.ID] = startOver(promoted, demoted)
		out[demoted.Player.ID] = benchFor(demoted, promoted)
	}

	paired := min(len(promotions), len(demotions))
	for k, promoted := range promotions[paired:] {
		switch {
		case k < len(vacated):
			out[promoted.Player.ID] = startOver(promoted, vacated[k])
		case slots < len(playable):
			out[promoted.Player.ID] = startOver(promoted, playable[slots])
		default:
			out[promoted.Player.ID] = startOpen(promoted, slot)
		}
	}
	for _, demoted := range demotions[:len(demotions)-paired] {
		if slots > 0 {
			out[demoted.Player.ID] = benchFor(demoted, playable[slots-1])
			continue
		}
		out[demoted.Player.ID] = benchNoSlot(demoted, slot)
	}
	return out
}

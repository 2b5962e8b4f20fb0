package lineup

import (
	"sort"

	"github.com/riskibarqy/lineup-advisor/internal/domain/availability"
	"github.com/riskibarqy/lineup-advisor/internal/domain/roster"
	"github.com/riskibarqy/lineup-advisor/internal/domain/scoring"
)

// Candidate is a rostered player with its score and current slot.
type Candidate struct {
	scoring.Rated
	TeamID string
	Slot   roster.Slot
}

func (c Candidate) Placement() roster.Placement {
	return roster.Classify(c.Slot)
}

func (c Candidate) Starting() bool {
	return c.Placement() == roster.PlacementStarting
}

func (c Candidate) InFlex() bool {
	return c.Placement() == roster.PlacementFlex
}

func sortCandidates(items []Candidate) {
	sort.SliceStable(items, func(i, j int) bool {
		return scoring.Ranks(items[i].Rated, items[j].Rated)
	})
}

func playableOnly(items []Candidate, avail availability.Snapshot) []Candidate {
	out := make([]Candidate, 0, len(items))
	for _, c := range items {
		if avail.Playable(c.Player.ID) {
			out = append(out, c)
		}
	}
	return out
}

// bestPlayable is the top ranked playable candidate, in place or not.
func bestPlayable(playable []Candidate) (Candidate, bool) {
	if len(playable) == 0 {
		return Candidate{}, false
	}
	return playable[0], true
}

package lineup

import (
	"fmt"

	"github.com/riskibarqy/lineup-advisor/internal/domain/availability"
	"github.com/riskibarqy/lineup-advisor/internal/domain/recommendation"
	"github.com/riskibarqy/lineup-advisor/internal/domain/scoring"
)

const (
	SentinelHealthy  = "any healthy player"
	SentinelOpenSlot = "an open starting slot"
	SentinelNoSlot   = "no starting slot"
)

func baselineOf(c Candidate) recommendation.Baseline {
	return recommendation.Baseline{
		PlayerID: c.Player.ID,
		Label:    c.Player.DisplayName(),
		Score:    c.Value(),
		HasScore: c.HasScore(),
	}
}

func sentinel(label string) recommendation.Baseline {
	return recommendation.Baseline{Label: label}
}

func newRecommendation(c Candidate, verdict recommendation.Verdict) recommendation.Recommendation {
	return recommendation.Recommendation{
		TeamID:     c.TeamID,
		PlayerID:   c.Player.ID,
		PlayerName: c.Player.DisplayName(),
		Position:   c.Player.Position,
		Verdict:    verdict,
		Score:      c.Score,
	}
}

func startOver(c, baseline Candidate) recommendation.Recommendation {
	out := newRecommendation(c, recommendation.VerdictStart)
	out.Baseline = baselineOf(baseline)
	out.Confidence = scoring.Confidence(recommendation.VerdictStart, c.Value(), baseline.Value())
	out.Reason = scoring.Justify(scoring.Comparison{
		Lead:        fmt.Sprintf("Start %s over %s.", c.Player.DisplayName(), baseline.Player.DisplayName()),
		Winner:      c.Player.DisplayName(),
		WinnerScore: c.Value(),
		Winning:     c.Breakdown,
		Loser:       baseline.Player.DisplayName(),
		LoserScore:  baseline.Value(),
		Losing:      baseline.Breakdown,
	})
	return out
}

func benchFor(c, baseline Candidate) recommendation.Recommendation {
	out := newRecommendation(c, recommendation.VerdictBench)
	out.Baseline = baselineOf(baseline)
	out.Confidence = scoring.Confidence(recommendation.VerdictBench, baseline.Value(), c.Value())
	out.Reason = scoring.Justify(scoring.Comparison{
		Lead:        fmt.Sprintf("Bench %s for %s.", c.Player.DisplayName(), baseline.Player.DisplayName()),
		Winner:      baseline.Player.DisplayName(),
		WinnerScore: baseline.Value(),
		Winning:     baseline.Breakdown,
		Loser:       c.Player.DisplayName(),
		LoserScore:  c.Value(),
		Losing:      c.Breakdown,
	})
	return out
}

func startOpen(c Candidate, slot string) recommendation.Recommendation {
	out := newRecommendation(c, recommendation.VerdictStart)
	out.Baseline = sentinel(SentinelOpenSlot)
	out.Confidence = scoring.Confidence(recommendation.VerdictStart, c.Value(), 0)
	out.Reason = fmt.Sprintf("Start %s in the open %s slot (projects %.2f).", c.Player.DisplayName(), slot, c.Value())
	return out
}

func benchNoSlot(c Candidate, slot string) recommendation.Recommendation {
	out := newRecommendation(c, recommendation.VerdictBench)
	out.Baseline = sentinel(SentinelNoSlot)
	out.Confidence = scoring.Certain(recommendation.VerdictBench)
	out.Reason = fmt.Sprintf("Bench %s: the league has no %s slot to fill.", c.Player.DisplayName(), slot)
	return out
}

// benchUnavailable covers injured and bye-week players sitting in a lineup slot.
func benchUnavailable(c Candidate, avail availability.Snapshot, replacement Candidate, ok bool) recommendation.Recommendation {
	out := newRecommendation(c, recommendation.VerdictBench)
	out.Confidence = scoring.Certain(recommendation.VerdictBench)

	cause := fmt.Sprintf("on bye in week %d", avail.Week())
	if status, injured := avail.InjuryStatus(c.Player.ID); injured {
		cause = "listed as " + status
	}

	if !ok {
		out.Baseline = sentinel(SentinelHealthy)
		out.Reason = fmt.Sprintf("Bench %s: %s. Start %s instead.", c.Player.DisplayName(), cause, SentinelHealthy)
		return out
	}
	out.Baseline = baselineOf(replacement)
	out.Reason = fmt.Sprintf("Bench %s: %s. Start %s instead (projects %.2f).",
		c.Player.DisplayName(), cause, replacement.Player.DisplayName(), replacement.Value())
	return out
}

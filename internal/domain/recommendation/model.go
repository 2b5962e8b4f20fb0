package recommendation

import "github.com/riskibarqy/lineup-advisor/internal/domain/player"

type Verdict string

const (
	VerdictStart Verdict = "START"
	VerdictBench Verdict = "BENCH"
	VerdictAdd   Verdict = "ADD"
)

// Confidence is a tiered strength of a recommendation, 1 (weakest) to 3.
type Confidence struct {
	Level int
	Label string
}

// Baseline is what a recommended player was compared against. Sentinel
// baselines (an open slot, any healthy player) carry no player id.
type Baseline struct {
	PlayerID string
	Label    string
	Score    float64
	HasScore bool
}

func (b Baseline) IsSentinel() bool {
	return b.PlayerID == ""
}

// Recommendation is a single START, BENCH or ADD decision for one player.
type Recommendation struct {
	TeamID     string
	PlayerID   string
	PlayerName string
	Position   player.Position
	Verdict    Verdict
	Score      *float64
	Reason     string
	Confidence Confidence
	Baseline   Baseline
	// Drop is set for ADD recommendations: the rostered player to release.
	Drop string
}

func (r Recommendation) DedupeKey() string {
	return r.TeamID + "|" + r.PlayerID
}

// Dedupe keeps the first recommendation per team and player, preserving order.
func Dedupe(items []Recommendation) []Recommendation {
	seen := make(map[string]struct{}, len(items))
	out := make([]Recommendation, 0, len(items))
	for _, item := range items {
		key := item.DedupeKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

package waiver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/lineup-advisor/internal/domain/availability"
	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
	"github.com/riskibarqy/lineup-advisor/internal/domain/recommendation"
	"github.com/riskibarqy/lineup-advisor/internal/domain/scoring"
)

func rated(id string, position player.Position, score *float64) scoring.Rated {
	return scoring.Rated{Player: player.Player{ID: id, Name: id, Position: position}, Score: score}
}

func ptr(v float64) *float64 { return &v }

func TestCompareAddsOverScorelessPlayerAfterGrace(t *testing.T) {
	t.Parallel()

	req := Request{
		TeamID:       "team-1",
		Week:         4,
		GraceWeeks:   DefaultGraceWeeks,
		Rostered:     []scoring.Rated{rated("QB-X", player.PositionQB, nil)},
		FreeAgents:   []scoring.Rated{rated("QB-Y", player.PositionQB, ptr(5.0))},
		Availability: availability.NewSnapshot(4, nil, nil),
	}

	recs := Compare(req)
	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, recommendation.VerdictAdd, rec.Verdict)
	assert.Equal(t, "QB-Y", rec.PlayerID)
	assert.Equal(t, "QB-X", rec.Drop)
	assert.False(t, rec.Baseline.HasScore)
	assert.Equal(t, recommendation.Confidence{Level: 3, Label: "Strong Upgrade"}, rec.Confidence)
	assert.Equal(t, "Add QB-Y, drop QB-X. QB-X has no scoring data through week 4 while QB-Y projects 5.00.", rec.Reason)

	req.Week = 2
	assert.Empty(t, Compare(req), "scoreless players are kept during the grace period")
}

func TestCompareIgnoresWeakerFreeAgents(t *testing.T) {
	t.Parallel()

	recs := Compare(Request{
		TeamID:     "team-1",
		Week:       6,
		GraceWeeks: DefaultGraceWeeks,
		Rostered: []scoring.Rated{
			rated("WR-1", player.PositionWR, ptr(6)),
			rated("WR-2", player.PositionWR, ptr(4)),
		},
		FreeAgents: []scoring.Rated{
			rated("WR-FA", player.PositionWR, ptr(4)),
			rated("RB-FA", player.PositionRB, ptr(12)),
		},
		Availability: availability.NewSnapshot(6, nil, nil),
	})

	assert.Empty(t, recs)
}

func TestCompareOrdering(t *testing.T) {
	t.Parallel()

	recs := Compare(Request{
		TeamID:     "team-1",
		Week:       6,
		GraceWeeks: DefaultGraceWeeks,
		Rostered: []scoring.Rated{
			rated("WR-1", player.PositionWR, ptr(6)),
			rated("WR-2", player.PositionWR, ptr(3)),
			rated("WR-3", player.PositionWR, nil),
		},
		FreeAgents: []scoring.Rated{
			rated("WR-FA1", player.PositionWR, ptr(5)),
			rated("WR-FA2", player.PositionWR, ptr(7)),
			rated("WR-OUT", player.PositionWR, ptr(20)),
			rated("WR-BYE", player.PositionWR, ptr(20)),
		},
		Availability: availability.NewSnapshot(6,
			[]availability.Injury{{PlayerID: "WR-OUT", Status: "OUT"}},
			[]availability.Bye{{PlayerID: "WR-BYE", Week: 6}},
		),
	})

	type pair struct{ add, drop string }
	got := make([]pair, 0, len(recs))
	for _, rec := range recs {
		got = append(got, pair{add: rec.PlayerID, drop: rec.Drop})
	}
	assert.Equal(t, []pair{
		{add: "WR-FA2", drop: "WR-3"},
		{add: "WR-FA1", drop: "WR-3"},
		{add: "WR-FA2", drop: "WR-2"},
		{add: "WR-FA1", drop: "WR-2"},
		{add: "WR-FA2", drop: "WR-1"},
	}, got)
}

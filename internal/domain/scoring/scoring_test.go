package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/lineup-advisor/internal/domain/matchup"
	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
	"github.com/riskibarqy/lineup-advisor/internal/domain/playerstats"
	"github.com/riskibarqy/lineup-advisor/internal/domain/recommendation"
)

func ptr(v float64) *float64 { return &v }

func TestModelsCoverEveryPosition(t *testing.T) {
	t.Parallel()

	for _, position := range player.OrderedPositions {
		m, ok := ModelFor(position)
		require.True(t, ok, position)
		assert.Equal(t, position, m.Position)
		_, ok = m.Factor(FactorOpponentDifficulty)
		assert.True(t, ok, "%s has no opponent factor", position)
	}
}

func TestScoreMissingFactorsCountAsZero(t *testing.T) {
	t.Parallel()

	m, _ := ModelFor(player.PositionWR)
	components := m.Components(Inputs{
		Normalized: playerstats.FeatureSet{playerstats.FeatureReceivingYards: 1},
	}, 2)

	assert.Equal(t, map[string]float64{string(playerstats.FeatureReceivingYards): 1}, components)
	assert.InDelta(t, 0.22, m.Score(components), 1e-9)
	assert.Equal(t, 0.0, m.Score(nil))
}

func TestScoreClipsVolatilityAndRounds(t *testing.T) {
	t.Parallel()

	m, _ := ModelFor(player.PositionK)
	components := m.Components(Inputs{
		Normalized: playerstats.FeatureSet{
			playerstats.FeatureFieldGoalsMade: 0.3333,
			playerstats.FeatureFieldGoalPct:   1,
		},
		RecentMeanNorm: ptr(0.5),
		RecentStdNorm:  ptr(3.7),
		Opponent:       ptr(0.4),
	}, 2)

	assert.Equal(t, 2.0, components[FactorRecentVolatility])
	// 0.3*0.3333 + 0.15*1 + 0.25*0.5 - 0.05*2 + 0.1*0.4 = 0.31499
	assert.Equal(t, 0.315, m.Score(components))
}

func TestScoreIsDeterministic(t *testing.T) {
	t.Parallel()

	m, _ := ModelFor(player.PositionDEF)
	in := Inputs{
		Normalized: playerstats.FeatureSet{
			playerstats.FeatureSacks:         0.8,
			playerstats.FeatureTakeaways:     0.5,
			playerstats.FeaturePointsAllowed: 0.2,
		},
		RecentMeanNorm: ptr(0.6),
	}
	first := m.Score(m.Components(in, 2))
	second := m.Score(m.Components(in, 2))
	assert.Equal(t, first, second)
}

func TestOpponentDifficulty(t *testing.T) {
	t.Parallel()

	schedule := matchup.NewSchedule([]matchup.Matchup{
		{Week: 5, HomeTeam: "KC", AwayTeam: "BUF"},
		{Week: 6, HomeTeam: "KC", AwayTeam: "MIA"},
	})
	table := matchup.NewDifficultyTable([]matchup.DifficultyIndex{
		{Team: "BUF", Week: 5, Value: 0.2},
		{Team: "MIA", Week: 5, Value: 0.9},
	})

	v, ok := OpponentDifficulty(player.PositionWR, "KC", 5, schedule, table)
	assert.True(t, ok)
	assert.Equal(t, 0.9, v, "skill positions use next week's opponent")

	v, ok = OpponentDifficulty(player.PositionK, "KC", 5, schedule, table)
	assert.True(t, ok)
	assert.Equal(t, 0.2, v, "kickers use the current opponent")

	v, ok = OpponentDifficulty(player.PositionRB, "BUF", 5, schedule, table)
	assert.True(t, ok)
	assert.Equal(t, 0.9, v, "falls back to the current week without an upcoming game")

	_, ok = OpponentDifficulty(player.PositionQB, "NYJ", 5, schedule, table)
	assert.False(t, ok)
}

func TestExplain(t *testing.T) {
	t.Parallel()

	m, _ := ModelFor(player.PositionQB)
	b := m.Explain(map[string]float64{
		string(playerstats.FeaturePassYards):     1,
		string(playerstats.FeaturePassTD):        0.5,
		string(playerstats.FeatureInterceptions): 1,
	})

	require.Len(t, b, len(m.Factors))
	assert.Equal(t, string(playerstats.FeaturePassYards), b[0].Factor.Name)
	assert.InDelta(t, 0.2, b[0].Contribution, 1e-9)
	// equal magnitudes keep model order
	assert.Equal(t, string(playerstats.FeaturePassTD), b[1].Factor.Name)
	assert.Equal(t, string(playerstats.FeatureInterceptions), b[2].Factor.Name)
	assert.InDelta(t, 66.667, b[0].Percent, 1e-3)
	assert.InDelta(t, 33.333, b[1].Percent, 1e-3)
	assert.InDelta(t, -33.333, b[2].Percent, 1e-3)

	assert.Nil(t, m.Explain(nil))
}

func TestExplainWithoutStatRowIsEmpty(t *testing.T) {
	t.Parallel()

	m, _ := ModelFor(player.PositionWR)
	b := m.Explain(map[string]float64{
		FactorRecentMean:         0.8,
		FactorOpponentDifficulty: 0.4,
	})
	assert.Nil(t, b)

	text := Justify(Comparison{
		Winner:      "WR-1",
		WinnerScore: 0.5,
		Winning:     m.Explain(map[string]float64{string(playerstats.FeatureTargets): 1}),
		Loser:       "WR-2",
		LoserScore:  0.2,
		Losing:      b,
	})
	assert.Equal(t, "WR-1 projects 0.50 against 0.20 for WR-2 (+0.30).", text)
}

func TestCompareKeepsMeaningfulAdvantages(t *testing.T) {
	t.Parallel()

	m, _ := ModelFor(player.PositionWR)
	a := m.Explain(map[string]float64{
		string(playerstats.FeatureReceivingYards): 1,
		string(playerstats.FeatureTargets):        0.9,
		string(playerstats.FeatureSnapShare):      0.5,
		FactorOpponentDifficulty:                  0.5,
	})
	b := m.Explain(map[string]float64{
		string(playerstats.FeatureReceivingYards): 0.5,
		string(playerstats.FeatureTargets):        0.9,
		string(playerstats.FeatureSnapShare):      0.45,
		FactorOpponentDifficulty:                  0.1,
	})

	advantages := Compare(a, b)
	require.Len(t, advantages, 2)
	assert.Equal(t, string(playerstats.FeatureReceivingYards), advantages[0].Factor.Name)
	assert.InDelta(t, 0.11, advantages[0].Amount, 1e-9)
	assert.Equal(t, FactorOpponentDifficulty, advantages[1].Factor.Name)

	assert.Nil(t, Compare(a, nil))
}

func TestJustify(t *testing.T) {
	t.Parallel()

	m, _ := ModelFor(player.PositionRB)
	winner := m.Explain(map[string]float64{
		string(playerstats.FeatureRushYards):    1,
		string(playerstats.FeatureRushAttempts): 1,
		string(playerstats.FeatureRushTD):       1,
		string(playerstats.FeatureReceptions):   1,
	})
	loser := m.Explain(map[string]float64{
		string(playerstats.FeatureRushYards): 0.1,
	})

	text := Justify(Comparison{
		Lead:        "Start RB-C over RB-B.",
		Winner:      "RB-C",
		WinnerScore: 8.4,
		Winning:     winner,
		Loser:       "RB-B",
		LoserScore:  7.1,
		Losing:      loser,
	})
	assert.Equal(t, "Start RB-C over RB-B. RB-C has the edge over RB-B in rushing yardage, carry volume and rushing touchdowns (8.40 vs 7.10).", text)

	fallback := Justify(Comparison{Winner: "RB-C", WinnerScore: 8.4, Loser: "RB-B", LoserScore: 7.1, Winning: winner})
	assert.True(t, strings.HasPrefix(fallback, "RB-C projects 8.40 against 7.10 for RB-B"), fallback)
}

func TestConfidenceBoundariesAreInclusive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verdict recommendation.Verdict
		a, b    float64
		want    recommendation.Confidence
	}{
		{name: "exactly 25 percent", verdict: recommendation.VerdictStart, a: 10, b: 7.5, want: recommendation.Confidence{Level: 3, Label: "Must Start"}},
		{name: "exactly 10 percent", verdict: recommendation.VerdictBench, a: 10, b: 9, want: recommendation.Confidence{Level: 2, Label: "Strong Bench"}},
		{name: "below 10 percent", verdict: recommendation.VerdictStart, a: 10, b: 9.5, want: recommendation.Confidence{Level: 1, Label: "Lean Start"}},
		{name: "add upgrade", verdict: recommendation.VerdictAdd, a: 5, b: 0, want: recommendation.Confidence{Level: 3, Label: "Strong Upgrade"}},
		{name: "small scores use floor of one", verdict: recommendation.VerdictAdd, a: 0.3, b: 0.15, want: recommendation.Confidence{Level: 2, Label: "Good Upgrade"}},
		{name: "slight upgrade", verdict: recommendation.VerdictAdd, a: 0.05, b: 0, want: recommendation.Confidence{Level: 1, Label: "Slight Upgrade"}},
		{name: "10 percent of the floor", verdict: recommendation.VerdictStart, a: 0.35, b: 0.25, want: recommendation.Confidence{Level: 2, Label: "Strong Start"}},
		{name: "10 percent at one", verdict: recommendation.VerdictStart, a: 1.0, b: 0.9, want: recommendation.Confidence{Level: 2, Label: "Strong Start"}},
		{name: "10 percent below one", verdict: recommendation.VerdictBench, a: 0.5, b: 0.4, want: recommendation.Confidence{Level: 2, Label: "Strong Bench"}},
		{name: "10 percent high in the floor", verdict: recommendation.VerdictAdd, a: 0.7, b: 0.6, want: recommendation.Confidence{Level: 2, Label: "Good Upgrade"}},
		{name: "25 percent of 1.2", verdict: recommendation.VerdictStart, a: 1.2, b: 0.9, want: recommendation.Confidence{Level: 3, Label: "Must Start"}},
		{name: "25 percent of 2.4", verdict: recommendation.VerdictBench, a: 2.4, b: 1.8, want: recommendation.Confidence{Level: 3, Label: "Must Bench"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Confidence(tc.verdict, tc.a, tc.b))
		})
	}
}

func TestRanksBreaksTiesByPlayerID(t *testing.T) {
	t.Parallel()

	a := Rated{Player: player.Player{ID: "a"}, Score: ptr(1)}
	b := Rated{Player: player.Player{ID: "b"}, Score: ptr(1)}
	c := Rated{Player: player.Player{ID: "c"}}

	assert.True(t, Ranks(a, b))
	assert.False(t, Ranks(b, a))
	assert.True(t, Ranks(b, c))
}

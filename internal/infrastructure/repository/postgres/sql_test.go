package postgres

import (
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/lineup-advisor/internal/domain/leaguecalc"
	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
	"github.com/riskibarqy/lineup-advisor/internal/domain/playerstats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBindParameterMismatch(t *testing.T) {
	t.Run("matches bind mismatch error", func(t *testing.T) {
		err := fakeErr("pq: bind message supplies 2 parameters, but prepared statement \"\" requires 1 (08P01)")
		if !isBindParameterMismatch(err) {
			t.Fatalf("expected true for bind mismatch error")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		err := fakeErr("pq: relation players does not exist")
		if isBindParameterMismatch(err) {
			t.Fatalf("expected false for unrelated error")
		}
	})

	t.Run("ignores nil", func(t *testing.T) {
		if isBindParameterMismatch(nil) {
			t.Fatalf("expected false for nil")
		}
	})
}

func TestIsUnnamedPreparedStatementMissing(t *testing.T) {
	t.Run("matches statement missing message", func(t *testing.T) {
		err := fakeErr("pq: unnamed prepared statement does not exist (26000)")
		if !isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected true for statement missing error")
		}
	})

	t.Run("matches by 26000 code", func(t *testing.T) {
		err := fakeErr("pq: prepared statement missing (26000)")
		if !isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected true for 26000 prepared statement error")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		err := fakeErr("pq: relation players does not exist")
		if isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestLeagueCalcUpsertKeepsIngestedPoints(t *testing.T) {
	assert.Contains(t, leagueCalcsUpsertSuffix, "fantasy_points = COALESCE(EXCLUDED.fantasy_points, league_calcs.fantasy_points)")
	assert.Contains(t, leagueCalcsUpsertSuffix, "weighted_score = EXCLUDED.weighted_score")
	assert.True(t, strings.HasPrefix(playerWeeklyStatsUpsertSuffix, "ON CONFLICT (player_id, season, week) DO UPDATE SET"))
}

func TestNullFloatRoundTrip(t *testing.T) {
	assert.False(t, nullFloat(nil).Valid)
	assert.Nil(t, floatPtr(nullFloat(nil)))

	v := 0.0
	got := floatPtr(nullFloat(&v))
	require.NotNil(t, got)
	assert.Equal(t, 0.0, *got)
}

func TestFeatureSetEncodingKeepsNullsAbsent(t *testing.T) {
	encoded, err := encodeFeatureSet(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", encoded)

	encoded, err = encodeFeatureSet(playerstats.FeatureSet{playerstats.FeatureRushYards: 0.5})
	require.NoError(t, err)

	decoded, err := decodeFeatureSet(encoded)
	require.NoError(t, err)
	assert.Equal(t, playerstats.FeatureSet{playerstats.FeatureRushYards: 0.5}, decoded)
	_, ok := decoded.Get(playerstats.FeatureCatchRate)
	assert.False(t, ok)

	decoded, err = decodeFeatureSet("null")
	require.NoError(t, err)
	assert.Empty(t, decoded)

	_, err = decodeFeatureSet("{broken")
	assert.Error(t, err)
}

func TestWeeklyStatRowMapping(t *testing.T) {
	snap := 0.8
	models, err := weeklyStatInsertModels([]playerstats.PlayerWeeklyStat{{
		PlayerID:   "rb-1",
		Position:   player.PositionRB,
		Season:     2024,
		Week:       5,
		Raw:        playerstats.RawStats{RushAttempts: 12, RushYards: 60, SnapShare: &snap},
		Normalized: playerstats.FeatureSet{playerstats.FeatureRushYards: 1},
	}})
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "RB", models[0].Position)
	assert.Equal(t, "{}", models[0].Derived)

	stat, err := weeklyStatFromRow(playerWeeklyStatTableModel{
		PlayerID:   models[0].PlayerID,
		Position:   models[0].Position,
		Season:     models[0].Season,
		Week:       models[0].Week,
		Raw:        models[0].Raw,
		Derived:    models[0].Derived,
		Rolling:    models[0].Rolling,
		Normalized: models[0].Normalized,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, stat.Raw.RushAttempts)
	require.NotNil(t, stat.Raw.SnapShare)
	assert.Equal(t, 0.8, *stat.Raw.SnapShare)
	assert.Nil(t, stat.Raw.PointsAllowed)
	assert.Equal(t, 1.0, stat.Normalized[playerstats.FeatureRushYards])
}

func TestLeagueCalcRowMapping(t *testing.T) {
	score := 0.42
	at := time.Date(2024, 10, 6, 12, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	models, err := leagueCalcInsertModels([]leaguecalc.LeagueCalc{{
		LeagueID:      "l1",
		PlayerID:      "wr-1",
		Position:      player.PositionWR,
		Season:        2024,
		Week:          5,
		WeightedScore: &score,
		Components:    map[string]float64{"targets": 0.5},
		CalculatedAt:  at,
	}})
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.False(t, models[0].FantasyPoints.Valid)
	assert.True(t, models[0].WeightedScore.Valid)
	assert.Equal(t, time.UTC, models[0].CalculatedAt.Location())

	calcs, err := leagueCalcsFromRows([]leagueCalcTableModel{{
		LeagueID:      "l1",
		PlayerID:      "wr-1",
		Position:      "WR",
		Season:        2024,
		Week:          5,
		WeightedScore: models[0].WeightedScore,
		Components:    models[0].Components,
	}})
	require.NoError(t, err)
	require.Len(t, calcs, 1)
	assert.True(t, calcs[0].HasScore())
	assert.Nil(t, calcs[0].RecentMean)
	assert.Equal(t, map[string]float64{"targets": 0.5}, calcs[0].Components)
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }

package roster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rows      []SlotConfig
		wantErr   error
		starting  map[player.Position]int
		flexSlots int
	}{
		{
			name:      "empty config falls back to defaults",
			rows:      nil,
			wantErr:   ErrInvalidConfiguration,
			starting:  DefaultStarting(),
			flexSlots: DefaultFlexSlots,
		},
		{
			name: "aggregates flex labels and keeps defaults for absent positions",
			rows: []SlotConfig{
				{Position: "QB", Count: 1},
				{Position: "RB", Count: 3},
				{Position: "WR", Count: 3},
				{Position: "FLEX", Count: 1},
				{Position: "WRRB_FLEX", Count: 1},
				{Position: "rec_flex", Count: 1},
			},
			starting: map[player.Position]int{
				player.PositionQB:  1,
				player.PositionRB:  3,
				player.PositionWR:  3,
				player.PositionTE:  1,
				player.PositionK:   1,
				player.PositionDEF: 1,
			},
			flexSlots: 3,
		},
		{
			name: "duplicate position rows add up",
			rows: []SlotConfig{
				{Position: "WR", Count: 1},
				{Position: "WR", Count: 1},
				{Position: "DST", Count: 1},
			},
			starting:  DefaultStarting(),
			flexSlots: 0,
		},
		{
			name:      "unrecognizable rows fall back to defaults",
			rows:      []SlotConfig{{Position: "BN", Count: 6}},
			wantErr:   ErrInvalidConfiguration,
			starting:  DefaultStarting(),
			flexSlots: DefaultFlexSlots,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tc.rows)
			if tc.wantErr != nil {
				require.True(t, errors.Is(err, tc.wantErr), "got err %v", err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.starting, got.Starting)
			assert.Equal(t, tc.flexSlots, got.FlexSlots)
			assert.True(t, got.IsFlexEligible(player.PositionTE))
			assert.False(t, got.IsFlexEligible(player.PositionQB))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PlacementStarting, Classify("RB"))
	assert.Equal(t, PlacementStarting, Classify("DEF"))
	assert.Equal(t, PlacementFlex, Classify("FLEX"))
	assert.Equal(t, PlacementFlex, Classify("SUPER_FLEX"))
	assert.Equal(t, PlacementBench, Classify(SlotBench))
	assert.Equal(t, PlacementBench, Classify(SlotIR))
	assert.Equal(t, PlacementBench, Classify(""))
}

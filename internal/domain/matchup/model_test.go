package matchup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleOpponent(t *testing.T) {
	t.Parallel()

	schedule := NewSchedule([]Matchup{
		{Season: 2024, Week: 5, HomeTeam: "KC", AwayTeam: "BUF"},
		{Season: 2024, Week: 6, HomeTeam: "MIA", AwayTeam: "KC"},
		{Season: 2024, Week: 6, HomeTeam: "", AwayTeam: "NYJ"},
	})

	opp, ok := schedule.Opponent("BUF", 5)
	assert.True(t, ok)
	assert.Equal(t, "KC", opp)

	opp, ok = schedule.Opponent("KC", 6)
	assert.True(t, ok)
	assert.Equal(t, "MIA", opp)

	_, ok = schedule.Opponent("NYJ", 6)
	assert.False(t, ok)
}

func TestDifficultyTable(t *testing.T) {
	t.Parallel()

	table := NewDifficultyTable([]DifficultyIndex{
		{Team: "KC", Season: 2024, Week: 5, Value: 0.25},
		{Team: "KC", Season: 2024, Week: 6, Value: 0.75},
	})

	v, ok := table.Lookup("KC", 6)
	assert.True(t, ok)
	assert.Equal(t, 0.75, v)

	_, ok = table.Lookup("BUF", 5)
	assert.False(t, ok)
}

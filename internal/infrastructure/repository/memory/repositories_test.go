package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/lineup-advisor/internal/domain/leaguecalc"
	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
)

func TestLeagueCalcRepository_UpsertKeepsIngestedPoints(t *testing.T) {
	ctx := context.Background()
	repo := NewLeagueCalcRepository(SeedLeagueCalcs())

	score := 0.64
	require.NoError(t, repo.UpsertLeagueCalcs(ctx, []leaguecalc.LeagueCalc{{
		LeagueID:      LeagueIDDemo,
		PlayerID:      "rb-achane",
		Position:      player.PositionRB,
		Season:        SeasonDemo,
		Week:          1,
		WeightedScore: &score,
	}}))

	rows, err := repo.ListByPlayers(ctx, LeagueIDDemo, SeasonDemo, 1, []string{"rb-achane", "unknown"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].FantasyPoints)
	assert.Equal(t, 17.9, *rows[0].FantasyPoints)
	require.NotNil(t, rows[0].WeightedScore)
	assert.Equal(t, 0.64, *rows[0].WeightedScore)
}

func TestLeagueCalcRepository_ReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewLeagueCalcRepository(SeedLeagueCalcs())

	rows, err := repo.ListByLeagueWeeks(ctx, LeagueIDDemo, SeasonDemo, 1, 1)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	*rows[0].FantasyPoints = -1

	again, err := repo.ListByLeagueWeeks(ctx, LeagueIDDemo, SeasonDemo, 1, 1)
	require.NoError(t, err)
	assert.NotEqual(t, -1.0, *again[0].FantasyPoints)
	assert.Equal(t, rows[0].PlayerID, again[0].PlayerID)
}

func TestPlayerStatsRepository_WeekRange(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerStatsRepository(SeedWeeklyStats())

	rows, err := repo.ListBySeasonWeeks(ctx, SeasonDemo, 1, 1)
	require.NoError(t, err)
	assert.Len(t, rows, len(SeedWeeklyStats()))

	rows, err = repo.ListBySeasonWeeks(ctx, SeasonDemo, 2, 4)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAvailabilityRepository_ByesBySeason(t *testing.T) {
	ctx := context.Background()
	repo := NewAvailabilityRepository(SeedInjuries(), SeedByes())

	byes, err := repo.ListByes(ctx, SeasonDemo, []string{"rb-hall", "qb-allen"})
	require.NoError(t, err)
	require.Len(t, byes, 1)
	assert.Equal(t, 2, byes[0].Week)

	byes, err = repo.ListByes(ctx, SeasonDemo+1, []string{"rb-hall"})
	require.NoError(t, err)
	assert.Empty(t, byes)

	injuries, err := repo.ListInjuries(ctx, []string{"wr-hill", "wr-rice"})
	require.NoError(t, err)
	require.Len(t, injuries, 1)
	assert.Equal(t, "OUT", injuries[0].Status)
}

func TestRosterRepository_ListByTeams(t *testing.T) {
	ctx := context.Background()
	repo := NewRosterRepository(SeedRosters(), SeedSlotConfig())

	entries, err := repo.ListByTeams(ctx, LeagueIDDemo, []string{TeamIDBravo})
	require.NoError(t, err)
	assert.Len(t, entries, 7)
	for _, entry := range entries {
		assert.Equal(t, TeamIDBravo, entry.TeamID)
	}

	slots, err := repo.ListSlotConfig(ctx, "other-league")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

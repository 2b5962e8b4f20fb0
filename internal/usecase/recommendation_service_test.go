package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/lineup-advisor/internal/domain/availability"
	"github.com/riskibarqy/lineup-advisor/internal/domain/leaguecalc"
	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
	"github.com/riskibarqy/lineup-advisor/internal/domain/recommendation"
	"github.com/riskibarqy/lineup-advisor/internal/domain/roster"
	"github.com/riskibarqy/lineup-advisor/internal/domain/scoring"
	"github.com/riskibarqy/lineup-advisor/internal/infrastructure/repository/memory"
	availabilitymock "github.com/riskibarqy/lineup-advisor/internal/mocks/domain/availability"
	rostermock "github.com/riskibarqy/lineup-advisor/internal/mocks/domain/roster"
	"github.com/riskibarqy/lineup-advisor/internal/platform/logging"
)

const (
	testLeague = "lg-1"
	testSeason = 2024
	testTeam   = "team-1"
)

func scored(playerID string, position player.Position, week int, score float64, components map[string]float64) leaguecalc.LeagueCalc {
	return leaguecalc.LeagueCalc{
		LeagueID:      testLeague,
		PlayerID:      playerID,
		Position:      position,
		Season:        testSeason,
		Week:          week,
		WeightedScore: &score,
		Components:    components,
	}
}

func rbScenario() ([]player.Player, []roster.Entry, []leaguecalc.LeagueCalc) {
	players := []player.Player{
		{ID: "rb-a", Name: "RB-A", Position: player.PositionRB, NFLTeam: "KC"},
		{ID: "rb-b", Name: "RB-B", Position: player.PositionRB, NFLTeam: "BUF"},
		{ID: "rb-c", Name: "RB-C", Position: player.PositionRB, NFLTeam: "MIA"},
	}
	entries := []roster.Entry{
		{LeagueID: testLeague, TeamID: testTeam, PlayerID: "rb-a", Slot: "RB"},
		{LeagueID: testLeague, TeamID: testTeam, PlayerID: "rb-b", Slot: "RB"},
		{LeagueID: testLeague, TeamID: testTeam, PlayerID: "rb-c", Slot: roster.SlotBench},
	}
	calcs := []leaguecalc.LeagueCalc{
		scored("rb-a", player.PositionRB, 5, 9.2, nil),
		scored("rb-b", player.PositionRB, 5, 7.1, map[string]float64{"rush_yards": 0.2}),
		scored("rb-c", player.PositionRB, 5, 8.4, map[string]float64{"rush_yards": 0.9, "rush_attempts": 0.8}),
	}
	return players, entries, calcs
}

func TestRecommendationService_Lineup_SwapsBenchedRunningBack(t *testing.T) {
	t.Parallel()

	players, entries, calcs := rbScenario()
	svc := NewRecommendationService(
		memory.NewPlayerRepository(players),
		memory.NewRosterRepository(entries, []roster.SlotConfig{
			{LeagueID: testLeague, Position: "RB", Count: 2},
		}),
		memory.NewLeagueCalcRepository(calcs),
		memory.NewAvailabilityRepository(nil, nil),
		DefaultPolicy(),
		logging.NewNop(),
	)

	recs, err := svc.Lineup(t.Context(), LineupRequest{LeagueID: testLeague, Season: testSeason, Week: 5, TeamIDs: []string{testTeam}})
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "rb-c", recs[0].PlayerID)
	assert.Equal(t, recommendation.VerdictStart, recs[0].Verdict)
	assert.Equal(t, "rb-b", recs[0].Baseline.PlayerID)
	assert.Contains(t, recs[0].Reason, "RB-C has the edge over RB-B in rushing yardage and carry volume")

	assert.Equal(t, "rb-b", recs[1].PlayerID)
	assert.Equal(t, recommendation.VerdictBench, recs[1].Verdict)
	assert.Equal(t, "rb-c", recs[1].Baseline.PlayerID)
}

func TestRecommendationService_Lineup_FallsBackToDefaultSlots(t *testing.T) {
	t.Parallel()

	players, entries, calcs := rbScenario()
	rosterRepo := rostermock.NewRepository(t)
	rosterRepo.
		On("ListByTeams", mock.Anything, testLeague, []string{testTeam}).
		Return(entries, nil).
		Once()
	rosterRepo.
		On("ListSlotConfig", mock.Anything, testLeague).
		Return(nil, errors.New("connection refused")).
		Once()

	svc := NewRecommendationService(
		memory.NewPlayerRepository(players),
		rosterRepo,
		memory.NewLeagueCalcRepository(calcs),
		memory.NewAvailabilityRepository(nil, nil),
		DefaultPolicy(),
		logging.NewNop(),
	)

	recs, err := svc.Lineup(t.Context(), LineupRequest{LeagueID: testLeague, Season: testSeason, Week: 5, TeamIDs: []string{testTeam}})
	require.NoError(t, err)
	require.Len(t, recs, 2, "default RB2 applies when slot config cannot be read")
	assert.Equal(t, "rb-c", recs[0].PlayerID)
}

func TestRecommendationService_Lineup_InjuredStarterIsBenched(t *testing.T) {
	t.Parallel()

	players, entries, calcs := rbScenario()
	svc := NewRecommendationService(
		memory.NewPlayerRepository(players),
		memory.NewRosterRepository(entries, nil),
		memory.NewLeagueCalcRepository(calcs),
		memory.NewAvailabilityRepository([]availability.Injury{{PlayerID: "rb-a", Status: "IR"}}, nil),
		DefaultPolicy(),
		logging.NewNop(),
	)

	recs, err := svc.Lineup(t.Context(), LineupRequest{LeagueID: testLeague, Season: testSeason, Week: 5, TeamIDs: []string{testTeam}})
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.Equal(t, "rb-a", recs[0].PlayerID)
	assert.Equal(t, recommendation.VerdictBench, recs[0].Verdict)
	assert.Equal(t, 3, recs[0].Confidence.Level)
}

func TestRecommendationService_Lineup_DependencyFailure(t *testing.T) {
	t.Parallel()

	players, entries, calcs := rbScenario()
	availabilityRepo := availabilitymock.NewRepository(t)
	availabilityRepo.
		On("ListInjuries", mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout")).
		Once()
	availabilityRepo.
		On("ListByes", mock.Anything, testSeason, mock.Anything).
		Return([]availability.Bye{}, nil).
		Maybe()

	svc := NewRecommendationService(
		memory.NewPlayerRepository(players),
		memory.NewRosterRepository(entries, nil),
		memory.NewLeagueCalcRepository(calcs),
		availabilityRepo,
		DefaultPolicy(),
		logging.NewNop(),
	)

	_, err := svc.Lineup(t.Context(), LineupRequest{LeagueID: testLeague, Season: testSeason, Week: 5, TeamIDs: []string{testTeam}})
	require.ErrorIs(t, err, ErrDependencyUnavailable)
}

func TestRecommendationService_Lineup_InvalidInput(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(nil, nil, nil, nil, DefaultPolicy(), nil)
	ctx := context.Background()

	tests := []LineupRequest{
		{Season: testSeason, Week: 1, TeamIDs: []string{testTeam}},
		{LeagueID: testLeague, Season: testSeason, Week: 1},
		{LeagueID: testLeague, Season: testSeason, Week: 0, TeamIDs: []string{testTeam}},
		{LeagueID: testLeague, Week: 1, TeamIDs: []string{testTeam}},
	}
	for _, req := range tests {
		_, err := svc.Lineup(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput, "%+v", req)
	}
}

func TestRecommendationService_Waiver_ScorelessQuarterback(t *testing.T) {
	t.Parallel()

	players := []player.Player{
		{ID: "qb-x", Name: "QB-X", Position: player.PositionQB},
		{ID: "qb-y", Name: "QB-Y", Position: player.PositionQB},
		{ID: "qb-z", Name: "QB-Z", Position: player.PositionQB},
	}
	svc := NewRecommendationService(
		memory.NewPlayerRepository(players),
		memory.NewRosterRepository([]roster.Entry{
			{LeagueID: testLeague, TeamID: testTeam, PlayerID: "qb-x", Slot: "QB"},
		}, nil),
		memory.NewLeagueCalcRepository([]leaguecalc.LeagueCalc{
			scored("qb-y", player.PositionQB, 4, 5.0, map[string]float64{scoring.FactorRecentMean: 1}),
			scored("qb-z", player.PositionQB, 4, 9.0, nil),
		}),
		memory.NewAvailabilityRepository([]availability.Injury{{PlayerID: "qb-z", Status: "OUT"}}, nil),
		DefaultPolicy(),
		logging.NewNop(),
	)

	recs, err := svc.Waiver(t.Context(), WaiverRequest{
		LeagueID:           testLeague,
		Season:             testSeason,
		Week:               4,
		TeamID:             testTeam,
		AvailablePlayerIDs: []string{"qb-y", "qb-z", "qb-x"},
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "qb-y", recs[0].PlayerID)
	assert.Equal(t, "qb-x", recs[0].Drop)
	assert.Equal(t, recommendation.VerdictAdd, recs[0].Verdict)

	recs, err = svc.Waiver(t.Context(), WaiverRequest{
		LeagueID:           testLeague,
		Season:             testSeason,
		Week:               2,
		TeamID:             testTeam,
		AvailablePlayerIDs: []string{"qb-y"},
	})
	require.NoError(t, err)
	assert.Empty(t, recs)
}

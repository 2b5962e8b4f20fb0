package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
	"github.com/riskibarqy/lineup-advisor/internal/domain/playerstats"
	"github.com/riskibarqy/lineup-advisor/internal/infrastructure/repository/memory"
	playerstatsmock "github.com/riskibarqy/lineup-advisor/internal/mocks/domain/playerstats"
	"github.com/riskibarqy/lineup-advisor/internal/platform/logging"
)

func rawRow(playerID string, week int, targets, receptions int, yards float64) playerstats.PlayerWeeklyStat {
	return playerstats.PlayerWeeklyStat{
		PlayerID: playerID,
		Position: player.PositionWR,
		Season:   testSeason,
		Week:     week,
		Raw: playerstats.RawStats{
			Targets:        targets,
			Receptions:     receptions,
			ReceivingYards: yards,
		},
	}
}

func TestNormalizationService_Recompute(t *testing.T) {
	t.Parallel()

	repo := memory.NewPlayerStatsRepository([]playerstats.PlayerWeeklyStat{
		rawRow("wr-a", 1, 10, 8, 120),
		rawRow("wr-a", 2, 6, 4, 40),
		rawRow("wr-b", 2, 4, 2, 20),
		rawRow("wr-c", 2, 0, 0, 0),
	})
	svc := NewNormalizationService(repo, repo, DefaultPolicy(), logging.NewNop())

	result, err := svc.Recompute(t.Context(), testSeason, 2)
	require.NoError(t, err)
	assert.Equal(t, BatchResult{Rows: 3, Batches: 1}, result)

	rows, err := repo.ListByPlayers(t.Context(), testSeason, 2, []string{"wr-a", "wr-b", "wr-c"})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	a, b, c := rows[0], rows[1], rows[2]
	assert.InDelta(t, 8, a.Rolling[playerstats.FeatureTargets], 1e-9)
	assert.Equal(t, 1.0, a.Normalized[playerstats.FeatureTargets])
	assert.InDelta(t, 0.5, b.Normalized[playerstats.FeatureTargets], 1e-9)
	assert.Equal(t, 0.0, c.Normalized[playerstats.FeatureTargets])

	_, ok := c.Normalized.Get(playerstats.FeatureCatchRate)
	assert.False(t, ok, "a zero-target receiver has no catch rate")

	again, err := svc.Recompute(t.Context(), testSeason, 2)
	require.NoError(t, err)
	assert.Equal(t, result, again)
	rerun, err := repo.ListByPlayers(t.Context(), testSeason, 2, []string{"wr-a", "wr-b", "wr-c"})
	require.NoError(t, err)
	assert.Equal(t, rows, rerun)
}

func TestNormalizationService_FailedBatchIsCountedNotFatal(t *testing.T) {
	t.Parallel()

	repo := memory.NewPlayerStatsRepository([]playerstats.PlayerWeeklyStat{
		rawRow("wr-a", 3, 10, 8, 120),
		rawRow("wr-b", 3, 4, 2, 20),
		rawRow("wr-c", 3, 6, 3, 30),
	})
	writer := playerstatsmock.NewWriter(t)
	writer.
		On("UpsertWeeklyStats", mock.Anything, mock.MatchedBy(func(rows []playerstats.PlayerWeeklyStat) bool { return rows[0].PlayerID == "wr-b" })).
		Return(errors.New("connection reset by peer")).
		Once()
	writer.
		On("UpsertWeeklyStats", mock.Anything, mock.Anything).
		Return(nil).
		Twice()

	policy := DefaultPolicy()
	policy.UpsertBatchSize = 1
	policy.UpsertWorkers = 2
	svc := NewNormalizationService(repo, writer, policy, logging.NewNop())

	result, err := svc.Recompute(t.Context(), testSeason, 3)
	require.NoError(t, err)
	assert.Equal(t, BatchResult{Rows: 3, Batches: 3, FailedBatches: 1}, result)
}

func TestNormalizationService_InvalidWeek(t *testing.T) {
	t.Parallel()

	repo := memory.NewPlayerStatsRepository(nil)
	svc := NewNormalizationService(repo, repo, DefaultPolicy(), nil)

	_, err := svc.Recompute(t.Context(), testSeason, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/lineup-advisor/internal/domain/analytics"
	"github.com/riskibarqy/lineup-advisor/internal/domain/playerstats"
	"github.com/riskibarqy/lineup-advisor/internal/platform/logging"
)

// NormalizationService rebuilds the derived, rolling and normalized features
// of a season week. Every pass recomputes the cohort from a full snapshot.
type NormalizationService struct {
	statsRepo playerstats.Repository
	writer    playerstats.Writer
	policy    Policy
	logger    *logging.Logger
}

func NewNormalizationService(statsRepo playerstats.Repository, writer playerstats.Writer, policy Policy, logger *logging.Logger) *NormalizationService {
	if logger == nil {
		logger = logging.Default()
	}
	return &NormalizationService{
		statsRepo: statsRepo,
		writer:    writer,
		policy:    policy.withDefaults(),
		logger:    logger,
	}
}

func (s *NormalizationService) Recompute(ctx context.Context, season, week int) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NormalizationService.Recompute",
		attribute.Int("season", season),
		attribute.Int("week", week),
	)
	defer span.End()

	if err := validateSeasonWeek(season, week); err != nil {
		return BatchResult{}, err
	}

	from, to := analytics.Window(week, s.policy.RecentWindow)
	history, err := s.statsRepo.ListBySeasonWeeks(ctx, season, from, to)
	if err != nil {
		recordSpanError(span, err)
		return BatchResult{}, fmt.Errorf("%w: list weekly stats season=%d weeks=%d-%d: %w", ErrDependencyUnavailable, season, from, to, err)
	}

	rows := playerstats.BuildWeek(history, week, s.policy.RecentWindow)
	result, err := writeInBatches(ctx, s.logger, rows, s.policy.UpsertBatchSize, s.policy.UpsertWorkers, s.writer.UpsertWeeklyStats,
		"component", "normalization",
		"season", season,
		"week", week,
	)
	if err != nil {
		recordSpanError(span, err)
		return result, err
	}

	s.logger.InfoContext(ctx, "weekly stats normalized",
		"season", season,
		"week", week,
		"rows", result.Rows,
		"batches", result.Batches,
		"failed_batches", result.FailedBatches,
	)
	return result, nil
}

func validateSeasonWeek(season, week int) error {
	if season <= 0 {
		return fmt.Errorf("%w: season must be positive", ErrInvalidInput)
	}
	if week < 1 {
		return fmt.Errorf("%w: week must be >= 1", ErrInvalidInput)
	}
	return nil
}

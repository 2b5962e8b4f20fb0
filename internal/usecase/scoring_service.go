package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/lineup-advisor/internal/domain/analytics"
	"github.com/riskibarqy/lineup-advisor/internal/domain/leaguecalc"
	"github.com/riskibarqy/lineup-advisor/internal/domain/matchup"
	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
	"github.com/riskibarqy/lineup-advisor/internal/domain/playerstats"
	"github.com/riskibarqy/lineup-advisor/internal/domain/scoring"
	"github.com/riskibarqy/lineup-advisor/internal/platform/logging"
)

// ScoringService recomputes the recent tracker and weighted score of every
// player of a league week and writes them back as league calcs.
type ScoringService struct {
	calcRepo    leaguecalc.Repository
	calcWriter  leaguecalc.Writer
	statsRepo   playerstats.Repository
	playerRepo  player.Repository
	matchupRepo matchup.Repository
	policy      Policy
	logger      *logging.Logger
	now         func() time.Time
}

func NewScoringService(
	calcRepo leaguecalc.Repository,
	calcWriter leaguecalc.Writer,
	statsRepo playerstats.Repository,
	playerRepo player.Repository,
	matchupRepo matchup.Repository,
	policy Policy,
	logger *logging.Logger,
) *ScoringService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScoringService{
		calcRepo:    calcRepo,
		calcWriter:  calcWriter,
		statsRepo:   statsRepo,
		playerRepo:  playerRepo,
		matchupRepo: matchupRepo,
		policy:      policy.withDefaults(),
		logger:      logger,
		now:         time.Now,
	}
}

func (s *ScoringService) Recompute(ctx context.Context, leagueID string, season, week int) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.Recompute",
		attribute.String("league_id", leagueID),
		attribute.Int("season", season),
		attribute.Int("week", week),
	)
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return BatchResult{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if err := validateSeasonWeek(season, week); err != nil {
		return BatchResult{}, err
	}

	from, to := analytics.Window(week, s.policy.RecentWindow)
	var (
		history    []leaguecalc.LeagueCalc
		stats      []playerstats.PlayerWeeklyStat
		players    []player.Player
		matchups   []matchup.Matchup
		difficulty []matchup.DifficultyIndex
	)
	err := readAll(ctx,
		func(ctx context.Context) (err error) {
			history, err = s.calcRepo.ListByLeagueWeeks(ctx, leagueID, season, from, to)
			return wrapRead("league calcs", err)
		},
		func(ctx context.Context) (err error) {
			stats, err = s.statsRepo.ListBySeasonWeeks(ctx, season, week, week)
			return wrapRead("weekly stats", err)
		},
		func(ctx context.Context) (err error) {
			players, err = s.playerRepo.ListByPositions(ctx, player.OrderedPositions)
			return wrapRead("players", err)
		},
		func(ctx context.Context) (err error) {
			matchups, err = s.matchupRepo.ListBySeasonWeeks(ctx, season, week, week+1)
			return wrapRead("matchups", err)
		},
		func(ctx context.Context) (err error) {
			difficulty, err = s.matchupRepo.ListDifficulty(ctx, season, week)
			return wrapRead("difficulty indexes", err)
		},
	)
	if err != nil {
		recordSpanError(span, err)
		return BatchResult{}, err
	}

	rows := scoring.ScoreWeek(scoring.WeekInput{
		LeagueID:   leagueID,
		Season:     season,
		Week:       week,
		Window:     s.policy.RecentWindow,
		Clip:       s.policy.VolatilityClip,
		Players:    playersByID(players),
		History:    history,
		Stats:      stats,
		Schedule:   matchup.NewSchedule(matchups),
		Difficulty: matchup.NewDifficultyTable(difficulty),
		Now:        s.now().UTC(),
	})

	result, err := writeInBatches(ctx, s.logger, rows, s.policy.UpsertBatchSize, s.policy.UpsertWorkers, s.calcWriter.UpsertLeagueCalcs,
		"component", "scoring",
		"league_id", leagueID,
		"season", season,
		"week", week,
	)
	if err != nil {
		recordSpanError(span, err)
		return result, err
	}

	s.logger.InfoContext(ctx, "league calcs rescored",
		"league_id", leagueID,
		"season", season,
		"week", week,
		"rows", result.Rows,
		"batches", result.Batches,
		"failed_batches", result.FailedBatches,
	)
	return result, nil
}

func wrapRead(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: read %s: %w", ErrDependencyUnavailable, what, err)
}

func playersByID(items []player.Player) map[string]player.Player {
	out := make(map[string]player.Player, len(items))
	for _, item := range items {
		out[item.ID] = item
	}
	return out
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/lineup-advisor/internal/app"
	"github.com/riskibarqy/lineup-advisor/internal/config"
	"github.com/riskibarqy/lineup-advisor/internal/platform/id"
	"github.com/riskibarqy/lineup-advisor/internal/platform/logging"
	"github.com/riskibarqy/lineup-advisor/internal/usecase"
)

type rescoreOptions struct {
	LeagueID      string
	Season        int
	Week          int
	SkipNormalize bool
}

type rescoreSummary struct {
	RunID         string               `json:"run_id"`
	LeagueID      string               `json:"league_id"`
	Season        int                  `json:"season"`
	Week          int                  `json:"week"`
	Normalization *usecase.BatchResult `json:"normalization,omitempty"`
	Scoring       usecase.BatchResult  `json:"scoring"`
	DurationMS    int64                `json:"duration_ms"`
}

func Execute(ctx context.Context, out io.Writer) error {
	return newRootCmd(out).ExecuteContext(ctx)
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts rescoreOptions
	cmd := &cobra.Command{
		Use:           "rescore",
		Short:         "Recompute normalized stats and weighted scores for one league week",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := logging.NewJSONTo(cfg.LogLevel, os.Stderr)
			defer func() { _ = logger.Sync() }()

			repos, err := app.NewRepositories(cmd.Context(), cfg, logger)
			if err != nil {
				return fmt.Errorf("build repositories: %w", err)
			}
			defer func() { _ = repos.Close() }()

			summary, err := runRescore(cmd.Context(), app.NewServices(cfg, repos, logger), opts, logger)
			if err != nil {
				return err
			}
			return writeSummary(out, summary)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.LeagueID, "league", "", "league id to rescore")
	flags.IntVar(&opts.Season, "season", 0, "season year")
	flags.IntVar(&opts.Week, "week", 0, "week number (1-based)")
	flags.BoolVar(&opts.SkipNormalize, "skip-normalize", false, "reuse stored normalized stats and run scoring only")
	_ = cmd.MarkFlagRequired("league")
	_ = cmd.MarkFlagRequired("season")
	_ = cmd.MarkFlagRequired("week")

	return cmd
}

// runRescore normalizes the week's stat rows, then scores the league on top of them.
func runRescore(ctx context.Context, services app.Services, opts rescoreOptions, logger *logging.Logger) (rescoreSummary, error) {
	started := time.Now()
	summary := rescoreSummary{
		RunID:    id.NewUUIDGenerator("rescore", 12).NewID(),
		LeagueID: strings.TrimSpace(opts.LeagueID),
		Season:   opts.Season,
		Week:     opts.Week,
	}
	logger = logger.With("run_id", summary.RunID, "league_id", summary.LeagueID, "season", opts.Season, "week", opts.Week)

	if !opts.SkipNormalize {
		result, err := services.Normalization.Recompute(ctx, opts.Season, opts.Week)
		if err != nil {
			return rescoreSummary{}, fmt.Errorf("normalize stats: %w", err)
		}
		summary.Normalization = &result
		logger.Info("normalization finished", "rows", result.Rows, "failed_batches", result.FailedBatches)
	}

	result, err := services.Scoring.Recompute(ctx, summary.LeagueID, opts.Season, opts.Week)
	if err != nil {
		return rescoreSummary{}, fmt.Errorf("score league: %w", err)
	}
	summary.Scoring = result
	summary.DurationMS = time.Since(started).Milliseconds()
	logger.Info("scoring finished", "rows", result.Rows, "failed_batches", result.FailedBatches, "duration_ms", summary.DurationMS)

	return summary, nil
}

func writeSummary(out io.Writer, summary rescoreSummary) error {
	body, err := sonic.ConfigDefault.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	_, err = fmt.Fprintln(out, string(body))
	return err
}

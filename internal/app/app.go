package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/lineup-advisor/internal/config"
	"github.com/riskibarqy/lineup-advisor/internal/interfaces/httpapi"
	"github.com/riskibarqy/lineup-advisor/internal/platform/id"
	"github.com/riskibarqy/lineup-advisor/internal/platform/logging"
	"github.com/riskibarqy/lineup-advisor/internal/usecase"
)

// Services holds the three entry points of the engine.
type Services struct {
	Normalization  *usecase.NormalizationService
	Scoring        *usecase.ScoringService
	Recommendation *usecase.RecommendationService
}

func PolicyFromConfig(cfg config.Config) usecase.Policy {
	return usecase.Policy{
		RecentWindow:     cfg.RecentWindowWeeks,
		VolatilityClip:   cfg.VolatilityClip,
		WaiverGraceWeeks: cfg.WaiverGraceWeeks,
		UpsertBatchSize:  cfg.UpsertBatchSize,
		UpsertWorkers:    cfg.UpsertWorkers,
	}
}

func NewServices(cfg config.Config, repos *Repositories, logger *logging.Logger) Services {
	if logger == nil {
		logger = logging.Default()
	}
	policy := PolicyFromConfig(cfg)
	return Services{
		Normalization: usecase.NewNormalizationService(
			repos.Stats,
			repos.StatsWriter,
			policy,
			logger.Named("normalization"),
		),
		Scoring: usecase.NewScoringService(
			repos.Calcs,
			repos.CalcWriter,
			repos.Stats,
			repos.Players,
			repos.Matchups,
			policy,
			logger.Named("scoring"),
		),
		Recommendation: usecase.NewRecommendationService(
			repos.Players,
			repos.Rosters,
			repos.Calcs,
			repos.Availability,
			policy,
			logger.Named("recommendation"),
		),
	}
}

func NewHTTPServer(cfg config.Config, services Services, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	opts := httpapi.RouterOptions{
		ServiceName:        cfg.ServiceName,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RequestIDs:         id.NewUUIDGenerator("req", 16),
	}
	if cfg.UptraceEnabled && cfg.UptraceCaptureRequestBody {
		opts.CaptureBodyBytes = cfg.UptraceRequestBodyMaxBytes
	}

	handler := httpapi.NewHandler(services.Recommendation, logger.Named("httpapi"))
	router := httpapi.NewRouter(handler, opts, logger.Named("httpapi"))

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

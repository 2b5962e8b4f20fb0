package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/lineup-advisor/internal/domain/recommendation"
	"github.com/riskibarqy/lineup-advisor/internal/platform/logging"
	"github.com/riskibarqy/lineup-advisor/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

// Recommender is the read side the handler serves.
type Recommender interface {
	Lineup(ctx context.Context, req usecase.LineupRequest) ([]recommendation.Recommendation, error)
	Waiver(ctx context.Context, req usecase.WaiverRequest) ([]recommendation.Recommendation, error)
}

type Handler struct {
	recommender Recommender
	logger      *logging.Logger
	validator   *validator.Validate
}

func NewHandler(recommender Recommender, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		recommender: recommender,
		logger:      logger,
		validator:   validator.New(),
	}
}

type lineupRecommendationRequest struct {
	Season  int      `json:"season" validate:"required,gte=1"`
	Week    int      `json:"week" validate:"required,gte=1,lte=25"`
	TeamIDs []string `json:"team_ids" validate:"required,min=1,max=32,dive,required"`
}

type waiverRecommendationRequest struct {
	Season             int      `json:"season" validate:"required,gte=1"`
	Week               int      `json:"week" validate:"required,gte=1,lte=25"`
	TeamID             string   `json:"team_id" validate:"required"`
	AvailablePlayerIDs []string `json:"available_player_ids" validate:"omitempty,max=2000,dive,required"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) LineupRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LineupRecommendations")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	var req lineupRecommendationRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.recommender.Lineup(ctx, usecase.LineupRequest{
		LeagueID: leagueID,
		Season:   req.Season,
		Week:     req.Week,
		TeamIDs:  req.TeamIDs,
	})
	if err != nil {
		h.logFailure(ctx, "lineup recommendations failed", err, "league_id", leagueID, "season", req.Season, "week", req.Week)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recommendationListToDTO(leagueID, req.Season, req.Week, items))
}

func (h *Handler) WaiverRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.WaiverRecommendations")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	var req waiverRecommendationRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.recommender.Waiver(ctx, usecase.WaiverRequest{
		LeagueID:           leagueID,
		Season:             req.Season,
		Week:               req.Week,
		TeamID:             req.TeamID,
		AvailablePlayerIDs: req.AvailablePlayerIDs,
	})
	if err != nil {
		h.logFailure(ctx, "waiver recommendations failed", err, "league_id", leagueID, "team_id", req.TeamID, "season", req.Season, "week", req.Week)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recommendationListToDTO(leagueID, req.Season, req.Week, items))
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validator.StructCtx(ctx, dst); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// logFailure keeps caller mistakes at WARN and everything else at ERROR.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if errors.Is(err, usecase.ErrInvalidInput) || errors.Is(err, usecase.ErrNotFound) {
		h.logger.WarnContext(ctx, msg, args...)
		return
	}
	h.logger.ErrorContext(ctx, msg, args...)
}

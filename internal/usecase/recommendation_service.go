package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/lineup-advisor/internal/domain/availability"
	"github.com/riskibarqy/lineup-advisor/internal/domain/leaguecalc"
	"github.com/riskibarqy/lineup-advisor/internal/domain/lineup"
	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
	"github.com/riskibarqy/lineup-advisor/internal/domain/recommendation"
	"github.com/riskibarqy/lineup-advisor/internal/domain/roster"
	"github.com/riskibarqy/lineup-advisor/internal/domain/scoring"
	"github.com/riskibarqy/lineup-advisor/internal/domain/waiver"
	"github.com/riskibarqy/lineup-advisor/internal/platform/logging"
)

type LineupRequest struct {
	LeagueID string
	Season   int
	Week     int
	TeamIDs  []string
}

type WaiverRequest struct {
	LeagueID           string
	Season             int
	Week               int
	TeamID             string
	AvailablePlayerIDs []string
}

// RecommendationService turns stored scores into START, BENCH and ADD
// recommendations. It never writes.
type RecommendationService struct {
	playerRepo       player.Repository
	rosterRepo       roster.Repository
	calcRepo         leaguecalc.Repository
	availabilityRepo availability.Repository
	policy           Policy
	logger           *logging.Logger
}

func NewRecommendationService(
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	calcRepo leaguecalc.Repository,
	availabilityRepo availability.Repository,
	policy Policy,
	logger *logging.Logger,
) *RecommendationService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RecommendationService{
		playerRepo:       playerRepo,
		rosterRepo:       rosterRepo,
		calcRepo:         calcRepo,
		availabilityRepo: availabilityRepo,
		policy:           policy.withDefaults(),
		logger:           logger,
	}
}

// Lineup returns, per requested team in order, the positional recommendations
// in QB RB WR TE K DEF order followed by flex.
func (s *RecommendationService) Lineup(ctx context.Context, req LineupRequest) ([]recommendation.Recommendation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecommendationService.Lineup",
		attribute.String("league_id", req.LeagueID),
		attribute.Int("season", req.Season),
		attribute.Int("week", req.Week),
		attribute.Int("teams", len(req.TeamIDs)),
	)
	defer span.End()

	leagueID := strings.TrimSpace(req.LeagueID)
	teamIDs := uniqueStrings(req.TeamIDs)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if len(teamIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one team id is required", ErrInvalidInput)
	}
	if err := validateSeasonWeek(req.Season, req.Week); err != nil {
		return nil, err
	}

	var (
		entries      []roster.Entry
		requirements roster.Requirements
	)
	err := readAll(ctx,
		func(ctx context.Context) (err error) {
			entries, err = s.rosterRepo.ListByTeams(ctx, leagueID, teamIDs)
			return wrapRead("roster entries", err)
		},
		func(ctx context.Context) error {
			requirements = s.requirements(ctx, leagueID)
			return nil
		},
	)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	snap, err := s.loadSnapshot(ctx, leagueID, req.Season, req.Week, entryPlayerIDs(entries))
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	byTeam := make(map[string][]roster.Entry, len(teamIDs))
	for _, entry := range entries {
		byTeam[entry.TeamID] = append(byTeam[entry.TeamID], entry)
	}

	out := make([]recommendation.Recommendation, 0)
	for _, teamID := range teamIDs {
		candidates := make([]lineup.Candidate, 0, len(byTeam[teamID]))
		for _, entry := range byTeam[teamID] {
			rated, ok := snap.rate(entry.PlayerID)
			if !ok {
				s.logger.DebugContext(ctx, "skip rostered player without player record",
					"league_id", leagueID,
					"team_id", teamID,
					"player_id", entry.PlayerID,
				)
				continue
			}
			candidates = append(candidates, lineup.Candidate{Rated: rated, TeamID: teamID, Slot: entry.Slot})
		}
		out = append(out, lineup.Team(teamID, requirements, candidates, snap.availability)...)
	}
	return out, nil
}

// Waiver compares one team's roster against an already filtered free agent list.
func (s *RecommendationService) Waiver(ctx context.Context, req WaiverRequest) ([]recommendation.Recommendation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecommendationService.Waiver",
		attribute.String("league_id", req.LeagueID),
		attribute.String("team_id", req.TeamID),
		attribute.Int("season", req.Season),
		attribute.Int("week", req.Week),
		attribute.Int("available", len(req.AvailablePlayerIDs)),
	)
	defer span.End()

	leagueID := strings.TrimSpace(req.LeagueID)
	teamID := strings.TrimSpace(req.TeamID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if err := validateSeasonWeek(req.Season, req.Week); err != nil {
		return nil, err
	}

	entries, err := s.rosterRepo.ListByTeams(ctx, leagueID, []string{teamID})
	if err != nil {
		err = wrapRead("roster entries", err)
		recordSpanError(span, err)
		return nil, err
	}

	rosteredIDs := entryPlayerIDs(entries)
	onRoster := make(map[string]struct{}, len(rosteredIDs))
	for _, id := range rosteredIDs {
		onRoster[id] = struct{}{}
	}
	freeAgentIDs := make([]string, 0, len(req.AvailablePlayerIDs))
	for _, id := range uniqueStrings(req.AvailablePlayerIDs) {
		if _, ok := onRoster[id]; !ok {
			freeAgentIDs = append(freeAgentIDs, id)
		}
	}
	if len(rosteredIDs) == 0 || len(freeAgentIDs) == 0 {
		return []recommendation.Recommendation{}, nil
	}

	snap, err := s.loadSnapshot(ctx, leagueID, req.Season, req.Week, append(append([]string(nil), rosteredIDs...), freeAgentIDs...))
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	return waiver.Compare(waiver.Request{
		TeamID:       teamID,
		Week:         req.Week,
		GraceWeeks:   s.policy.WaiverGraceWeeks,
		Rostered:     snap.rateAll(rosteredIDs),
		FreeAgents:   snap.rateAll(freeAgentIDs),
		Availability: snap.availability,
	}), nil
}

// requirements falls back to defaults when the configuration cannot be read
// or resolved.
func (s *RecommendationService) requirements(ctx context.Context, leagueID string) roster.Requirements {
	rows, err := s.rosterRepo.ListSlotConfig(ctx, leagueID)
	if err != nil {
		s.logger.WarnContext(ctx, "list roster slot config failed, using defaults", "league_id", leagueID, "error", err)
		return roster.DefaultRequirements()
	}
	req, err := roster.Resolve(rows)
	if err != nil {
		s.logger.WarnContext(ctx, "roster slot config unusable, using defaults", "league_id", leagueID, "error", err)
	}
	return req
}

type weekSnapshot struct {
	players      map[string]player.Player
	calcs        map[string]leaguecalc.LeagueCalc
	availability availability.Snapshot
}

func (s *RecommendationService) loadSnapshot(ctx context.Context, leagueID string, season, week int, playerIDs []string) (weekSnapshot, error) {
	var (
		players  []player.Player
		calcs    []leaguecalc.LeagueCalc
		injuries []availability.Injury
		byes     []availability.Bye
	)
	if len(playerIDs) > 0 {
		err := readAll(ctx,
			func(ctx context.Context) (err error) {
				players, err = s.playerRepo.GetByIDs(ctx, playerIDs)
				return wrapRead("players", err)
			},
			func(ctx context.Context) (err error) {
				calcs, err = s.calcRepo.ListByPlayers(ctx, leagueID, season, week, playerIDs)
				return wrapRead("league calcs", err)
			},
			func(ctx context.Context) (err error) {
				injuries, err = s.availabilityRepo.ListInjuries(ctx, playerIDs)
				return wrapRead("injuries", err)
			},
			func(ctx context.Context) (err error) {
				byes, err = s.availabilityRepo.ListByes(ctx, season, playerIDs)
				return wrapRead("bye weeks", err)
			},
		)
		if err != nil {
			return weekSnapshot{}, err
		}
	}

	byPlayer := make(map[string]leaguecalc.LeagueCalc, len(calcs))
	for _, c := range calcs {
		if c.LeagueID == leagueID && c.Season == season && c.Week == week {
			byPlayer[c.PlayerID] = c
		}
	}
	return weekSnapshot{
		players:      playersByID(players),
		calcs:        byPlayer,
		availability: availability.NewSnapshot(week, injuries, byes),
	}, nil
}

// rate joins a player with its league calc. A missing calc leaves the player
// scoreless with an empty breakdown.
func (w weekSnapshot) rate(playerID string) (scoring.Rated, bool) {
	p, ok := w.players[playerID]
	if !ok {
		return scoring.Rated{}, false
	}
	out := scoring.Rated{Player: p}
	calc, ok := w.calcs[playerID]
	if !ok {
		return out, true
	}
	out.Score = calc.WeightedScore
	if model, found := scoring.ModelFor(p.Position); found {
		out.Breakdown = model.Explain(calc.Components)
	}
	return out, true
}

func (w weekSnapshot) rateAll(playerIDs []string) []scoring.Rated {
	out := make([]scoring.Rated, 0, len(playerIDs))
	for _, id := range playerIDs {
		if rated, ok := w.rate(id); ok {
			out = append(out, rated)
		}
	}
	return out
}

func entryPlayerIDs(entries []roster.Entry) []string {
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.PlayerID)
	}
	return uniqueStrings(ids)
}

func uniqueStrings(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

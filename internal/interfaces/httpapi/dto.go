package httpapi

import "github.com/riskibarqy/lineup-advisor/internal/domain/recommendation"

type recommendationListDTO struct {
	LeagueID string              `json:"league_id"`
	Season   int                 `json:"season"`
	Week     int                 `json:"week"`
	Items    []recommendationDTO `json:"items"`
}

type recommendationDTO struct {
	TeamID       string        `json:"team_id"`
	PlayerID     string        `json:"player_id"`
	PlayerName   string        `json:"player_name,omitempty"`
	Position     string        `json:"position"`
	Verdict      string        `json:"verdict"`
	Score        *float64      `json:"score"`
	Reason       string        `json:"reason"`
	Confidence   confidenceDTO `json:"confidence"`
	Baseline     baselineDTO   `json:"baseline"`
	DropPlayerID string        `json:"drop_player_id,omitempty"`
}

type confidenceDTO struct {
	Level int    `json:"level"`
	Label string `json:"label"`
}

type baselineDTO struct {
	PlayerID string   `json:"player_id,omitempty"`
	Label    string   `json:"label"`
	Score    *float64 `json:"score"`
}

func recommendationListToDTO(leagueID string, season, week int, items []recommendation.Recommendation) recommendationListDTO {
	out := recommendationListDTO{
		LeagueID: leagueID,
		Season:   season,
		Week:     week,
		Items:    make([]recommendationDTO, 0, len(items)),
	}
	for _, item := range items {
		out.Items = append(out.Items, recommendationToDTO(item))
	}
	return out
}

func recommendationToDTO(item recommendation.Recommendation) recommendationDTO {
	baseline := baselineDTO{PlayerID: item.Baseline.PlayerID, Label: item.Baseline.Label}
	if item.Baseline.HasScore {
		score := item.Baseline.Score
		baseline.Score = &score
	}
	return recommendationDTO{
		TeamID:       item.TeamID,
		PlayerID:     item.PlayerID,
		PlayerName:   item.PlayerName,
		Position:     string(item.Position),
		Verdict:      string(item.Verdict),
		Score:        item.Score,
		Reason:       item.Reason,
		Confidence:   confidenceDTO{Level: item.Confidence.Level, Label: item.Confidence.Label},
		Baseline:     baseline,
		DropPlayerID: item.Drop,
	}
}

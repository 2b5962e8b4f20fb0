package postgres

import (
	"time"

	"github.com/riskibarqy/lineup-advisor/internal/domain/playerstats"
)

type playerWeeklyStatTableModel struct {
	PlayerID   string    `db:"player_id"`
	Position   string    `db:"position"`
	Season     int       `db:"season"`
	Week       int       `db:"week"`
	Raw        string    `db:"raw_stats"`
	Derived    string    `db:"derived_features"`
	Rolling    string    `db:"rolling_features"`
	Normalized string    `db:"normalized_features"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type playerWeeklyStatInsertModel struct {
	PlayerID   string `db:"player_id"`
	Position   string `db:"position"`
	Season     int    `db:"season"`
	Week       int    `db:"week"`
	Raw        string `db:"raw_stats"`
	Derived    string `db:"derived_features"`
	Rolling    string `db:"rolling_features"`
	Normalized string `db:"normalized_features"`
}

// rawStatsDocument is the JSONB shape of raw_stats.
type rawStatsDocument struct {
	PassAttempts     int      `json:"pass_attempts"`
	PassCompletions  int      `json:"pass_completions"`
	PassYards        float64  `json:"pass_yards"`
	PassTD           int      `json:"pass_td"`
	Interceptions    int      `json:"interceptions"`
	RushAttempts     int      `json:"rush_attempts"`
	RushYards        float64  `json:"rush_yards"`
	RushTD           int      `json:"rush_td"`
	Targets          int      `json:"targets"`
	Receptions       int      `json:"receptions"`
	ReceivingYards   float64  `json:"receiving_yards"`
	ReceivingTD      int      `json:"receiving_td"`
	FumblesLost      int      `json:"fumbles_lost"`
	SnapShare        *float64 `json:"snap_share,omitempty"`
	FieldGoalsMade   int      `json:"field_goals_made"`
	FieldGoalsAtt    int      `json:"field_goals_att"`
	ExtraPointsMade  int      `json:"extra_points_made"`
	ExtraPointsAtt   int      `json:"extra_points_att"`
	Sacks            float64  `json:"sacks"`
	DefInterceptions int      `json:"def_interceptions"`
	FumbleRecoveries int      `json:"fumble_recoveries"`
	DefensiveTD      int      `json:"defensive_td"`
	PointsAllowed    *float64 `json:"points_allowed,omitempty"`
	YardsAllowed     *float64 `json:"yards_allowed,omitempty"`
}

func rawStatsToDocument(raw playerstats.RawStats) rawStatsDocument {
	return rawStatsDocument{
		PassAttempts:     raw.PassAttempts,
		PassCompletions:  raw.PassCompletions,
		PassYards:        raw.PassYards,
		PassTD:           raw.PassTD,
		Interceptions:    raw.Interceptions,
		RushAttempts:     raw.RushAttempts,
		RushYards:        raw.RushYards,
		RushTD:           raw.RushTD,
		Targets:          raw.Targets,
		Receptions:       raw.Receptions,
		ReceivingYards:   raw.ReceivingYards,
		ReceivingTD:      raw.ReceivingTD,
		FumblesLost:      raw.FumblesLost,
		SnapShare:        raw.SnapShare,
		FieldGoalsMade:   raw.FieldGoalsMade,
		FieldGoalsAtt:    raw.FieldGoalsAtt,
		ExtraPointsMade:  raw.ExtraPointsMade,
		ExtraPointsAtt:   raw.ExtraPointsAtt,
		Sacks:            raw.Sacks,
		DefInterceptions: raw.DefInterceptions,
		FumbleRecoveries: raw.FumbleRecoveries,
		DefensiveTD:      raw.DefensiveTD,
		PointsAllowed:    raw.PointsAllowed,
		YardsAllowed:     raw.YardsAllowed,
	}
}

func (d rawStatsDocument) toDomain() playerstats.RawStats {
	return playerstats.RawStats{
		PassAttempts:     d.PassAttempts,
		PassCompletions:  d.PassCompletions,
		PassYards:        d.PassYards,
		PassTD:           d.PassTD,
		Interceptions:    d.Interceptions,
		RushAttempts:     d.RushAttempts,
		RushYards:        d.RushYards,
		RushTD:           d.RushTD,
		Targets:          d.Targets,
		Receptions:       d.Receptions,
		ReceivingYards:   d.ReceivingYards,
		ReceivingTD:      d.ReceivingTD,
		FumblesLost:      d.FumblesLost,
		SnapShare:        d.SnapShare,
		FieldGoalsMade:   d.FieldGoalsMade,
		FieldGoalsAtt:    d.FieldGoalsAtt,
		ExtraPointsMade:  d.ExtraPointsMade,
		ExtraPointsAtt:   d.ExtraPointsAtt,
		Sacks:            d.Sacks,
		DefInterceptions: d.DefInterceptions,
		FumbleRecoveries: d.FumbleRecoveries,
		DefensiveTD:      d.DefensiveTD,
		PointsAllowed:    d.PointsAllowed,
		YardsAllowed:     d.YardsAllowed,
	}
}

package postgres

import (
	"database/sql"
	"time"
)

type leagueCalcTableModel struct {
	LeagueID       string          `db:"league_id"`
	PlayerID       string          `db:"player_id"`
	Position       string          `db:"position"`
	Season         int             `db:"season"`
	Week           int             `db:"week"`
	FantasyPoints  sql.NullFloat64 `db:"fantasy_points"`
	RecentMean     sql.NullFloat64 `db:"recent_mean"`
	RecentStd      sql.NullFloat64 `db:"recent_std"`
	RecentMeanNorm sql.NullFloat64 `db:"recent_mean_norm"`
	RecentStdNorm  sql.NullFloat64 `db:"recent_std_norm"`
	WeightedScore  sql.NullFloat64 `db:"weighted_score"`
	Components     string          `db:"components"`
	CalculatedAt   time.Time       `db:"calculated_at"`
}

type leagueCalcInsertModel struct {
	LeagueID       string          `db:"league_id"`
	PlayerID       string          `db:"player_id"`
	Position       string          `db:"position"`
	Season         int             `db:"season"`
	Week           int             `db:"week"`
	FantasyPoints  sql.NullFloat64 `db:"fantasy_points"`
	RecentMean     sql.NullFloat64 `db:"recent_mean"`
	RecentStd      sql.NullFloat64 `db:"recent_std"`
	RecentMeanNorm sql.NullFloat64 `db:"recent_mean_norm"`
	RecentStdNorm  sql.NullFloat64 `db:"recent_std_norm"`
	WeightedScore  sql.NullFloat64 `db:"weighted_score"`
	Components     string          `db:"components"`
	CalculatedAt   time.Time       `db:"calculated_at"`
}

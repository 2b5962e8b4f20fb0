package leaguecalc

import (
	"time"

	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
)

// LeagueCalc is the per (league, player, season, week) scoring row.
// WeightedScore is a pure function of the stat row and the inputs stored here.
type LeagueCalc struct {
	LeagueID       string
	PlayerID       string
	Position       player.Position
	Season         int
	Week           int
	FantasyPoints  *float64
	RecentMean     *float64
	RecentStd      *float64
	RecentMeanNorm *float64
	RecentStdNorm  *float64
	WeightedScore  *float64
	// Components keeps the normalized value of each factor used for WeightedScore.
	Components   map[string]float64
	CalculatedAt time.Time
}

func (c LeagueCalc) Key() Key {
	return Key{LeagueID: c.LeagueID, PlayerID: c.PlayerID, Season: c.Season, Week: c.Week}
}

// HasScore reports whether a weighted score was ever computed for the row.
func (c LeagueCalc) HasScore() bool {
	return c.WeightedScore != nil
}

type Key struct {
	LeagueID string
	PlayerID string
	Season   int
	Week     int
}

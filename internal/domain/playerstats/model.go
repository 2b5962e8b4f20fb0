package playerstats

import "github.com/riskibarqy/lineup-advisor/internal/domain/player"

// Feature names one derived per-week statistic.
type Feature string

const (
	FeaturePassYards       Feature = "pass_yards"
	FeaturePassTD          Feature = "pass_td"
	FeatureInterceptions   Feature = "interceptions"
	FeatureCompletionPct   Feature = "completion_pct"
	FeatureYardsPerPassAtt Feature = "yards_per_pass_att"
	FeatureRushAttempts    Feature = "rush_attempts"
	FeatureRushYards       Feature = "rush_yards"
	FeatureRushTD          Feature = "rush_td"
	FeatureYardsPerCarry   Feature = "yards_per_carry"
	FeatureTargets         Feature = "targets"
	FeatureReceptions      Feature = "receptions"
	FeatureReceivingYards  Feature = "receiving_yards"
	FeatureReceivingTD     Feature = "receiving_td"
	FeatureCatchRate       Feature = "catch_rate"
	FeatureYardsPerTarget  Feature = "yards_per_target"
	FeatureSnapShare       Feature = "snap_share"
	FeatureTotalTD         Feature = "total_td"
	FeatureFumblesLost     Feature = "fumbles_lost"
	FeatureFieldGoalsMade  Feature = "field_goals_made"
	FeatureFieldGoalPct    Feature = "field_goal_pct"
	FeatureExtraPointPct   Feature = "extra_point_pct"
	FeatureSacks           Feature = "sacks"
	FeatureTakeaways       Feature = "takeaways"
	FeatureDefensiveTD     Feature = "defensive_td"
	FeaturePointsAllowed   Feature = "points_allowed"
	FeatureYardsAllowed    Feature = "yards_allowed"
)

// FeatureSet maps a feature to its value. A missing key means the value is null.
type FeatureSet map[Feature]float64

func (s FeatureSet) Get(feature Feature) (float64, bool) {
	if s == nil {
		return 0, false
	}
	v, ok := s[feature]
	return v, ok
}

func (s FeatureSet) Clone() FeatureSet {
	if s == nil {
		return nil
	}
	out := make(FeatureSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// RawStats holds counting stats exactly as delivered by ingestion.
type RawStats struct {
	PassAttempts     int
	PassCompletions  int
	PassYards        float64
	PassTD           int
	Interceptions    int
	RushAttempts     int
	RushYards        float64
	RushTD           int
	Targets          int
	Receptions       int
	ReceivingYards   float64
	ReceivingTD      int
	FumblesLost      int
	SnapShare        *float64
	FieldGoalsMade   int
	FieldGoalsAtt    int
	ExtraPointsMade  int
	ExtraPointsAtt   int
	Sacks            float64
	DefInterceptions int
	FumbleRecoveries int
	DefensiveTD      int
	PointsAllowed    *float64
	YardsAllowed     *float64
}

// PlayerWeeklyStat is keyed by (player, season, week) and is always rewritten whole.
type PlayerWeeklyStat struct {
	PlayerID   string
	Position   player.Position
	Season     int
	Week       int
	Raw        RawStats
	Derived    FeatureSet
	Rolling    FeatureSet
	Normalized FeatureSet
}

func (s PlayerWeeklyStat) Key() Key {
	return Key{PlayerID: s.PlayerID, Season: s.Season, Week: s.Week}
}

type Key struct {
	PlayerID string
	Season   int
	Week     int
}

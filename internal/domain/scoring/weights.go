package scoring

import (
	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
	"github.com/riskibarqy/lineup-advisor/internal/domain/playerstats"
)

// Factor names that are not plain stat features.
const (
	FactorRecentMean         = "recent_mean"
	FactorRecentVolatility   = "recent_volatility"
	FactorOpponentDifficulty = "opponent_difficulty"
)

// Factor is one weighted input of a position model.
type Factor struct {
	Name   string
	Weight float64
	Label  string
}

// Model is the ordered factor list for one position.
type Model struct {
	Position player.Position
	Factors  []Factor
}

// IsStatFeature reports whether the factor reads a weekly stat feature rather
// than recent form or the opponent.
func (f Factor) IsStatFeature() bool {
	switch f.Name {
	case FactorRecentMean, FactorRecentVolatility, FactorOpponentDifficulty:
		return false
	default:
		return true
	}
}

func feature(f playerstats.Feature, weight float64, label string) Factor {
	return Factor{Name: string(f), Weight: weight, Label: label}
}

var (
	recentMean  = Factor{Name: FactorRecentMean, Weight: 0.20, Label: "recent scoring"}
	volatility  = Factor{Name: FactorRecentVolatility, Weight: -0.05, Label: "week-to-week consistency"}
	opponentFit = Factor{Name: FactorOpponentDifficulty, Weight: 0.10, Label: "matchup"}
)

var models = map[player.Position]Model{
	player.PositionWR: {
		Position: player.PositionWR,
		Factors: []Factor{
			feature(playerstats.FeatureReceivingYards, 0.22, "receiving yardage"),
			feature(playerstats.FeatureTargets, 0.18, "target volume"),
			feature(playerstats.FeatureReceivingTD, 0.15, "receiving touchdowns"),
			feature(playerstats.FeatureCatchRate, 0.08, "catch rate"),
			feature(playerstats.FeatureYardsPerTarget, 0.07, "yards per target"),
			feature(playerstats.FeatureSnapShare, 0.05, "snap share"),
			recentMean,
			volatility,
			opponentFit,
		},
	},
	player.PositionRB: {
		Position: player.PositionRB,
		Factors: []Factor{
			feature(playerstats.FeatureRushYards, 0.22, "rushing yardage"),
			feature(playerstats.FeatureRushAttempts, 0.15, "carry volume"),
			feature(playerstats.FeatureRushTD, 0.15, "rushing touchdowns"),
			feature(playerstats.FeatureReceptions, 0.08, "receptions"),
			feature(playerstats.FeatureReceivingYards, 0.06, "receiving yardage"),
			feature(playerstats.FeatureYardsPerCarry, 0.05, "yards per carry"),
			feature(playerstats.FeatureSnapShare, 0.05, "snap share"),
			feature(playerstats.FeatureFumblesLost, -0.05, "ball security"),
			recentMean,
			volatility,
			opponentFit,
		},
	},
	player.PositionTE: {
		Position: player.PositionTE,
		Factors: []Factor{
			feature(playerstats.FeatureTargets, 0.20, "target volume"),
			feature(playerstats.FeatureReceivingYards, 0.20, "receiving yardage"),
			feature(playerstats.FeatureReceivingTD, 0.15, "receiving touchdowns"),
			feature(playerstats.FeatureReceptions, 0.10, "receptions"),
			feature(playerstats.FeatureSnapShare, 0.05, "snap share"),
			recentMean,
			volatility,
			opponentFit,
		},
	},
	player.PositionQB: {
		Position: player.PositionQB,
		Factors: []Factor{
			feature(playerstats.FeaturePassYards, 0.20, "passing yardage"),
			feature(playerstats.FeaturePassTD, 0.20, "passing touchdowns"),
			feature(playerstats.FeatureYardsPerPassAtt, 0.08, "yards per attempt"),
			feature(playerstats.FeatureCompletionPct, 0.05, "completion rate"),
			feature(playerstats.FeatureRushYards, 0.07, "rushing upside"),
			feature(playerstats.FeatureInterceptions, -0.10, "interception avoidance"),
			recentMean,
			volatility,
			opponentFit,
		},
	},
	player.PositionK: {
		Position: player.PositionK,
		Factors: []Factor{
			feature(playerstats.FeatureFieldGoalsMade, 0.30, "field goal volume"),
			feature(playerstats.FeatureFieldGoalPct, 0.15, "field goal accuracy"),
			feature(playerstats.FeatureExtraPointPct, 0.10, "extra point accuracy"),
			{Name: FactorRecentMean, Weight: 0.25, Label: "recent scoring"},
			volatility,
			opponentFit,
		},
	},
	player.PositionDEF: {
		Position: player.PositionDEF,
		Factors: []Factor{
			feature(playerstats.FeatureTakeaways, 0.20, "takeaways"),
			feature(playerstats.FeatureSacks, 0.18, "pass rush"),
			feature(playerstats.FeatureDefensiveTD, 0.10, "defensive scores"),
			feature(playerstats.FeaturePointsAllowed, -0.15, "points allowed"),
			feature(playerstats.FeatureYardsAllowed, -0.10, "yards allowed"),
			recentMean,
			volatility,
			opponentFit,
		},
	},
}

// ModelFor returns the scoring model of a position.
func ModelFor(position player.Position) (Model, bool) {
	m, ok := models[position]
	return m, ok
}

func (m Model) Factor(name string) (Factor, bool) {
	for _, f := range m.Factors {
		if f.Name == name {
			return f, true
		}
	}
	return Factor{}, false
}

package playerstats

import "github.com/riskibarqy/lineup-advisor/internal/domain/player"

// Derive turns raw counting stats into the per-week feature set for a position.
// Ratio features with a zero denominator are left out so they stay null.
func Derive(position player.Position, raw RawStats) FeatureSet {
	out := make(FeatureSet)

	switch position {
	case player.PositionQB:
		out[FeaturePassYards] = raw.PassYards
		out[FeaturePassTD] = float64(raw.PassTD)
		out[FeatureInterceptions] = float64(raw.Interceptions)
		setRatio(out, FeatureCompletionPct, float64(raw.PassCompletions), float64(raw.PassAttempts))
		setRatio(out, FeatureYardsPerPassAtt, raw.PassYards, float64(raw.PassAttempts))
		out[FeatureRushYards] = raw.RushYards
		out[FeatureRushTD] = float64(raw.RushTD)
		out[FeatureTotalTD] = float64(raw.PassTD + raw.RushTD)
		out[FeatureFumblesLost] = float64(raw.FumblesLost)
	case player.PositionRB, player.PositionWR, player.PositionTE:
		out[FeatureRushAttempts] = float64(raw.RushAttempts)
		out[FeatureRushYards] = raw.RushYards
		out[FeatureRushTD] = float64(raw.RushTD)
		setRatio(out, FeatureYardsPerCarry, raw.RushYards, float64(raw.RushAttempts))
		out[FeatureTargets] = float64(raw.Targets)
		out[FeatureReceptions] = float64(raw.Receptions)
		out[FeatureReceivingYards] = raw.ReceivingYards
		out[FeatureReceivingTD] = float64(raw.ReceivingTD)
		setRatio(out, FeatureCatchRate, float64(raw.Receptions), float64(raw.Targets))
		setRatio(out, FeatureYardsPerTarget, raw.ReceivingYards, float64(raw.Targets))
		out[FeatureTotalTD] = float64(raw.RushTD + raw.ReceivingTD)
		out[FeatureFumblesLost] = float64(raw.FumblesLost)
	case player.PositionK:
		out[FeatureFieldGoalsMade] = float64(raw.FieldGoalsMade)
		setRatio(out, FeatureFieldGoalPct, float64(raw.FieldGoalsMade), float64(raw.FieldGoalsAtt))
		setRatio(out, FeatureExtraPointPct, float64(raw.ExtraPointsMade), float64(raw.ExtraPointsAtt))
	case player.PositionDEF:
		out[FeatureSacks] = raw.Sacks
		out[FeatureTakeaways] = float64(raw.DefInterceptions + raw.FumbleRecoveries)
		out[FeatureDefensiveTD] = float64(raw.DefensiveTD)
		if raw.PointsAllowed != nil {
			out[FeaturePointsAllowed] = *raw.PointsAllowed
		}
		if raw.YardsAllowed != nil {
			out[FeatureYardsAllowed] = *raw.YardsAllowed
		}
	}

	if raw.SnapShare != nil && position != player.PositionK && position != player.PositionDEF {
		out[FeatureSnapShare] = *raw.SnapShare
	}

	return out
}

func setRatio(out FeatureSet, feature Feature, numerator, denominator float64) {
	if denominator == 0 {
		return
	}
	out[feature] = numerator / denominator
}

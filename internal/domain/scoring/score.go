package scoring

import (
	"github.com/riskibarqy/lineup-advisor/internal/domain/analytics"
	"github.com/riskibarqy/lineup-advisor/internal/domain/playerstats"
)

// ScoreDecimals is the precision stored for weighted scores.
const ScoreDecimals = 3

// Inputs are the already-normalized values a model reads.
type Inputs struct {
	Normalized     playerstats.FeatureSet
	RecentMeanNorm *float64
	RecentStdNorm  *float64
	Opponent       *float64
}

// Components picks the value of every factor present in the inputs. Factors
// without a value are left out and count as zero. The volatility z-score is
// clipped to ±clip.
func (m Model) Components(in Inputs, clip float64) map[string]float64 {
	out := make(map[string]float64, len(m.Factors))
	for _, f := range m.Factors {
		switch f.Name {
		case FactorRecentMean:
			if in.RecentMeanNorm != nil {
				out[f.Name] = *in.RecentMeanNorm
			}
		case FactorRecentVolatility:
			if in.RecentStdNorm != nil {
				out[f.Name] = analytics.Clip(*in.RecentStdNorm, clip)
			}
		case FactorOpponentDifficulty:
			if in.Opponent != nil {
				out[f.Name] = *in.Opponent
			}
		default:
			if v, ok := in.Normalized.Get(playerstats.Feature(f.Name)); ok {
				out[f.Name] = v
			}
		}
	}
	return out
}

// Score is the weighted sum of components, rounded to ScoreDecimals.
func (m Model) Score(components map[string]float64) float64 {
	total := 0.0
	for _, f := range m.Factors {
		total += f.Weight * components[f.Name]
	}
	return analytics.Round(total, ScoreDecimals)
}

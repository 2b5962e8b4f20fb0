package scoring

import (
	"math"

	"github.com/riskibarqy/lineup-advisor/internal/domain/analytics"
	"github.com/riskibarqy/lineup-advisor/internal/domain/recommendation"
)

const (
	strongThreshold = 10.0
	mustThreshold   = 25.0
	// percentDecimals absorbs float noise so gaps on a boundary stay on it.
	percentDecimals = 6
)

// PercentDiff is the gap between two scores relative to the larger magnitude,
// with a floor of 1 on the denominator, rounded to percentDecimals.
func PercentDiff(a, b float64) float64 {
	denominator := math.Max(math.Max(math.Abs(a), math.Abs(b)), 1)
	return analytics.Round(math.Abs(a-b)/denominator*100, percentDecimals)
}

// Confidence tiers a score gap. Boundaries belong to the higher tier.
func Confidence(verdict recommendation.Verdict, a, b float64) recommendation.Confidence {
	pct := PercentDiff(a, b)
	level := 1
	switch {
	case pct >= mustThreshold:
		level = 3
	case pct >= strongThreshold:
		level = 2
	}
	return recommendation.Confidence{Level: level, Label: confidenceLabel(verdict, level)}
}

// Certain is used for injury and bye benching.
func Certain(verdict recommendation.Verdict) recommendation.Confidence {
	return recommendation.Confidence{Level: 3, Label: confidenceLabel(verdict, 3)}
}

func confidenceLabel(verdict recommendation.Verdict, level int) string {
	switch verdict {
	case recommendation.VerdictAdd:
		switch level {
		case 3:
			return "Strong Upgrade"
		case 2:
			return "Good Upgrade"
		default:
			return "Slight Upgrade"
		}
	case recommendation.VerdictBench:
		switch level {
		case 3:
			return "Must Bench"
		case 2:
			return "Strong Bench"
		default:
			return "Lean Bench"
		}
	default:
		switch level {
		case 3:
			return "Must Start"
		case 2:
			return "Strong Start"
		default:
			return "Lean Start"
		}
	}
}

package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/valyala/bytebufferpool"
)

// MinAdvantage is the smallest contribution edge worth mentioning.
const MinAdvantage = 0.01

// MaxReasons caps how many advantages are named in a justification.
const MaxReasons = 3

// Component is one factor's share of a weighted score.
type Component struct {
	Factor       Factor
	Value        float64
	Contribution float64
	// Percent is relative to the sum of positive contributions.
	Percent float64
}

// Breakdown is a score decomposed into components, largest absolute
// contribution first.
type Breakdown []Component

// Explain decomposes stored components with the model weights. Components
// without any stat feature, as for a player with no stat row that week, give
// an empty breakdown.
func (m Model) Explain(components map[string]float64) Breakdown {
	if !m.hasStatFeature(components) {
		return nil
	}

	out := make(Breakdown, 0, len(m.Factors))
	positive := 0.0
	for _, f := range m.Factors {
		value := components[f.Name]
		contribution := f.Weight * value
		if contribution > 0 {
			positive += contribution
		}
		out = append(out, Component{Factor: f, Value: value, Contribution: contribution})
	}
	if positive > 0 {
		for i := range out {
			out[i].Percent = out[i].Contribution / positive * 100
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].Contribution) > math.Abs(out[j].Contribution)
	})
	return out
}

func (m Model) hasStatFeature(components map[string]float64) bool {
	for name := range components {
		if f, ok := m.Factor(name); ok && f.IsStatFeature() {
			return true
		}
	}
	return false
}

func (b Breakdown) byFactor() map[string]Component {
	out := make(map[string]Component, len(b))
	for _, c := range b {
		out[c.Factor.Name] = c
	}
	return out
}

// Advantage is how much more one player gains from a factor than another.
type Advantage struct {
	Factor Factor
	Amount float64
}

// Compare lists the factors where a beats b by more than MinAdvantage,
// biggest edge first.
func Compare(a, b Breakdown) []Advantage {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	other := b.byFactor()
	out := make([]Advantage, 0)
	for _, ca := range a {
		cb, ok := other[ca.Factor.Name]
		if !ok {
			continue
		}
		if diff := ca.Contribution - cb.Contribution; diff > MinAdvantage {
			out = append(out, Advantage{Factor: ca.Factor, Amount: diff})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Factor.Name < out[j].Factor.Name
	})
	return out
}

// Comparison describes a preferred player against the one it was judged against.
type Comparison struct {
	Lead        string
	Winner      string
	WinnerScore float64
	Winning     Breakdown
	Loser       string
	LoserScore  float64
	Losing      Breakdown
}

// Justify renders the lead sentence followed by why Winner ranks above Loser.
// Without a breakdown on both sides it falls back to the score delta.
func Justify(m Comparison) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if m.Lead != "" {
		_, _ = buf.WriteString(m.Lead)
		_ = buf.WriteByte(' ')
	}

	advantages := Compare(m.Winning, m.Losing)
	if len(m.Winning) == 0 || len(m.Losing) == 0 || len(advantages) == 0 {
		_, _ = fmt.Fprintf(buf, "%s projects %.2f against %.2f for %s (%+.2f).",
			m.Winner, m.WinnerScore, m.LoserScore, m.Loser, m.WinnerScore-m.LoserScore)
		return buf.String()
	}

	if len(advantages) > MaxReasons {
		advantages = advantages[:MaxReasons]
	}
	_, _ = fmt.Fprintf(buf, "%s has the edge over %s in ", m.Winner, m.Loser)
	for i, adv := range advantages {
		switch {
		case i == 0:
		case i == len(advantages)-1:
			_, _ = buf.WriteString(" and ")
		default:
			_, _ = buf.WriteString(", ")
		}
		_, _ = buf.WriteString(adv.Factor.Label)
	}
	_, _ = fmt.Fprintf(buf, " (%.2f vs %.2f).", m.WinnerScore, m.LoserScore)
	return buf.String()
}

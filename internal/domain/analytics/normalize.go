// Package analytics holds the cohort statistics used by the scoring pipeline.
//
// All functions take a full snapshot of a cohort and return fresh results; nothing
// is updated incrementally, so repeating a call on the same input is idempotent.
package analytics

import "math"

// Summary describes the non-null values of a cohort.
type Summary struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
	// Std is the population standard deviation.
	Std float64
}

// Summarize ignores nil entries. Count is zero when every entry is nil.
func Summarize(values []*float64) Summary {
	var out Summary
	sum := 0.0
	for _, v := range values {
		if v == nil {
			continue
		}
		if out.Count == 0 || *v < out.Min {
			out.Min = *v
		}
		if out.Count == 0 || *v > out.Max {
			out.Max = *v
		}
		sum += *v
		out.Count++
	}
	if out.Count == 0 {
		return out
	}

	out.Mean = sum / float64(out.Count)
	squares := 0.0
	for _, v := range values {
		if v == nil {
			continue
		}
		d := *v - out.Mean
		squares += d * d
	}
	out.Std = math.Sqrt(squares / float64(out.Count))
	return out
}

// MinMax maps each non-null value to (x-min)/(max-min). A zero range maps every
// value to 0. Nil entries stay nil.
func MinMax(values []*float64) []*float64 {
	summary := Summarize(values)
	span := summary.Max - summary.Min

	out := make([]*float64, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		norm := 0.0
		if span != 0 {
			norm = (*v - summary.Min) / span
		}
		out[i] = &norm
	}
	return out
}

// ZScore maps each non-null value to (x-mean)/std. A zero std maps every value
// to 0. Nil entries stay nil.
func ZScore(values []*float64) []*float64 {
	summary := Summarize(values)

	out := make([]*float64, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		norm := 0.0
		if summary.Std != 0 {
			norm = (*v - summary.Mean) / summary.Std
		}
		out[i] = &norm
	}
	return out
}

// Clip bounds v to [-bound, bound]. A non-positive bound disables clipping.
func Clip(v, bound float64) float64 {
	if bound <= 0 {
		return v
	}
	return math.Max(-bound, math.Min(bound, v))
}

// roundingNudge is the relative correction applied before rounding. Decimal
// ties such as 1.0005 are stored just below the tie in binary.
const roundingNudge = 1e-12

// Round rounds half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale*(1+roundingNudge)) / scale
}

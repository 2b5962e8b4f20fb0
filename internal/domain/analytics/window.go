package analytics

// Window returns the inclusive week range of a trailing window of size weeks
// ending at week. The start never drops below week 1.
func Window(week, size int) (from, to int) {
	if size < 1 {
		size = 1
	}
	from = week - size + 1
	if from < 1 {
		from = 1
	}
	return from, week
}

// MeanStd returns the mean and population std of the non-null values. Both are
// nil when no value is present, so a missing history is never mistaken for zero.
func MeanStd(values []*float64) (mean, std *float64) {
	summary := Summarize(values)
	if summary.Count == 0 {
		return nil, nil
	}
	m := summary.Mean
	s := summary.Std
	return &m, &s
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

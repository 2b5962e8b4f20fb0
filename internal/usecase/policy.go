package usecase

import (
	"github.com/riskibarqy/lineup-advisor/internal/domain/waiver"
)

const (
	defaultRecentWindow    = 3
	defaultVolatilityClip  = 2.0
	defaultUpsertBatchSize = 100
	defaultUpsertWorkers   = 4
)

// Policy carries the tunables of the scoring and recommendation passes.
type Policy struct {
	RecentWindow     int
	VolatilityClip   float64
	WaiverGraceWeeks int
	UpsertBatchSize  int
	UpsertWorkers    int
}

func DefaultPolicy() Policy {
	return Policy{
		RecentWindow:     defaultRecentWindow,
		VolatilityClip:   defaultVolatilityClip,
		WaiverGraceWeeks: waiver.DefaultGraceWeeks,
		UpsertBatchSize:  defaultUpsertBatchSize,
		UpsertWorkers:    defaultUpsertWorkers,
	}
}

// withDefaults replaces unusable values with their defaults.
func (p Policy) withDefaults() Policy {
	d := DefaultPolicy()
	if p.RecentWindow < 1 {
		p.RecentWindow = d.RecentWindow
	}
	if p.VolatilityClip <= 0 {
		p.VolatilityClip = d.VolatilityClip
	}
	if p.WaiverGraceWeeks < 0 {
		p.WaiverGraceWeeks = d.WaiverGraceWeeks
	}
	if p.UpsertBatchSize <= 0 {
		p.UpsertBatchSize = d.UpsertBatchSize
	}
	if p.UpsertWorkers < 1 {
		p.UpsertWorkers = d.UpsertWorkers
	}
	return p
}

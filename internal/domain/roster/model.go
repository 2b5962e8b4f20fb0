package roster

import (
	"strings"

	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
)

// Slot is the roster slot code a player currently occupies.
type Slot string

const (
	SlotBench Slot = "BN"
	SlotIR    Slot = "IR"
	SlotTaxi  Slot = "TAXI"
	SlotFlex  Slot = "FLEX"
)

// Placement classifies a slot for lineup decisions.
type Placement int

const (
	PlacementBench Placement = iota
	PlacementStarting
	PlacementFlex
)

func (p Placement) String() string {
	switch p {
	case PlacementStarting:
		return "starting"
	case PlacementFlex:
		return "flex"
	default:
		return "bench"
	}
}

// IsFlexLabel reports whether a slot label is one of the shared flex variants
// (FLEX, WRRB_FLEX, REC_FLEX, SUPER_FLEX, ...).
func IsFlexLabel(label string) bool {
	return strings.Contains(strings.ToUpper(strings.TrimSpace(label)), "FLEX")
}

// Classify maps a slot code onto a placement. Position codes are starting
// slots, flex labels are flex slots and everything else is bench.
func Classify(slot Slot) Placement {
	if IsFlexLabel(string(slot)) {
		return PlacementFlex
	}
	if _, ok := player.ParsePosition(string(slot)); ok {
		return PlacementStarting
	}
	return PlacementBench
}

// Entry is one player on one fantasy team. Rosters are owned by ingestion and
// read-only here.
type Entry struct {
	LeagueID string
	TeamID   string
	PlayerID string
	Slot     Slot
}

func (e Entry) Placement() Placement {
	return Classify(e.Slot)
}

// SlotConfig is one row of a league's roster configuration.
type SlotConfig struct {
	LeagueID string
	Position string
	Count    int
}

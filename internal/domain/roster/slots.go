package roster

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
)

var ErrInvalidConfiguration = errors.New("invalid roster configuration")

// DefaultFlexSlots applies only when no usable configuration exists at all.
const DefaultFlexSlots = 1

// Requirements describes how many starters a league needs per position.
type Requirements struct {
	Starting     map[player.Position]int
	FlexSlots    int
	FlexEligible map[player.Position]struct{}
}

func DefaultStarting() map[player.Position]int {
	return map[player.Position]int{
		player.PositionQB:  1,
		player.PositionRB:  2,
		player.PositionWR:  2,
		player.PositionTE:  1,
		player.PositionK:   1,
		player.PositionDEF: 1,
	}
}

func DefaultFlexEligible() map[player.Position]struct{} {
	return map[player.Position]struct{}{
		player.PositionRB: {},
		player.PositionWR: {},
		player.PositionTE: {},
	}
}

// DefaultRequirements is used whenever a league configuration cannot be resolved.
func DefaultRequirements() Requirements {
	return Requirements{
		Starting:     DefaultStarting(),
		FlexSlots:    DefaultFlexSlots,
		FlexEligible: DefaultFlexEligible(),
	}
}

func (r Requirements) StartingSlots(position player.Position) int {
	return r.Starting[position]
}

func (r Requirements) IsFlexEligible(position player.Position) bool {
	_, ok := r.FlexEligible[position]
	return ok
}

// Resolve turns configuration rows into requirements. Positions missing from
// rows keep their default count, and every flex-type label adds to a single
// flex count. An empty or unusable configuration returns the defaults together
// with an error marked ErrInvalidConfiguration so the caller can log it.
func Resolve(rows []SlotConfig) (Requirements, error) {
	if len(rows) == 0 {
		return DefaultRequirements(), fmt.Errorf("%w: no slot rows", ErrInvalidConfiguration)
	}

	out := Requirements{
		Starting:     DefaultStarting(),
		FlexEligible: DefaultFlexEligible(),
	}
	usable := 0
	seen := make(map[player.Position]bool)
	for _, row := range rows {
		if row.Count < 0 {
			continue
		}
		if IsFlexLabel(row.Position) {
			out.FlexSlots += row.Count
			usable++
			continue
		}
		position, ok := player.ParsePosition(row.Position)
		if !ok {
			continue
		}
		if !seen[position] {
			out.Starting[position] = 0
			seen[position] = true
		}
		out.Starting[position] += row.Count
		usable++
	}

	if usable == 0 {
		return DefaultRequirements(), fmt.Errorf("%w: no recognizable slot rows", ErrInvalidConfiguration)
	}
	return out, nil
}

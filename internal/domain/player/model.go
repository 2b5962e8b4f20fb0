package player

import "strings"

// Position represents the fantasy football position a player is rostered at.
type Position string

const (
	PositionQB  Position = "QB"
	PositionRB  Position = "RB"
	PositionWR  Position = "WR"
	PositionTE  Position = "TE"
	PositionK   Position = "K"
	PositionDEF Position = "DEF"
)

// OrderedPositions is the display order used when emitting per-position results.
var OrderedPositions = []Position{
	PositionQB,
	PositionRB,
	PositionWR,
	PositionTE,
	PositionK,
	PositionDEF,
}

var AllPositions = map[Position]struct{}{
	PositionQB:  {},
	PositionRB:  {},
	PositionWR:  {},
	PositionTE:  {},
	PositionK:   {},
	PositionDEF: {},
}

// ParsePosition maps loose provider labels onto a known position.
func ParsePosition(raw string) (Position, bool) {
	value := Position(strings.ToUpper(strings.TrimSpace(raw)))
	switch value {
	case "DST", "D/ST", "DEFENSE":
		value = PositionDEF
	case "PK":
		value = PositionK
	}
	if _, ok := AllPositions[value]; !ok {
		return "", false
	}
	return value, true
}

// Player is a rosterable athlete.
type Player struct {
	ID       string
	Name     string
	Position Position
	NFLTeam  string
}

// DisplayName falls back to the player id when no name is known.
func (p Player) DisplayName() string {
	if strings.TrimSpace(p.Name) != "" {
		return p.Name
	}
	return p.ID
}

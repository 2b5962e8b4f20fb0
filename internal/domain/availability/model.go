package availability

import (
	"context"
	"strings"
)

// Injury is the latest reported status for a player.
type Injury struct {
	PlayerID string
	Status   string
}

// CannotPlay reports whether a status keeps a player out of the lineup.
// Questionable and probable players remain playable.
func (i Injury) CannotPlay() bool {
	return StatusCannotPlay(i.Status)
}

var cannotPlay = map[string]struct{}{
	"OUT":       {},
	"IR":        {},
	"PUP":       {},
	"SUSPENDED": {},
	"DOUBTFUL":  {},
	"NA":        {},
}

func StatusCannotPlay(status string) bool {
	_, ok := cannotPlay[strings.ToUpper(strings.TrimSpace(status))]
	return ok
}

// Bye marks a week in which a player's NFL team does not play.
type Bye struct {
	PlayerID string
	Week     int
}

// Snapshot answers availability questions for one week.
type Snapshot struct {
	week     int
	injured  map[string]string
	byeWeeks map[string]map[int]struct{}
}

func NewSnapshot(week int, injuries []Injury, byes []Bye) Snapshot {
	s := Snapshot{
		week:     week,
		injured:  make(map[string]string, len(injuries)),
		byeWeeks: make(map[string]map[int]struct{}, len(byes)),
	}
	for _, injury := range injuries {
		if injury.CannotPlay() {
			s.injured[injury.PlayerID] = strings.ToUpper(strings.TrimSpace(injury.Status))
		}
	}
	for _, bye := range byes {
		weeks, ok := s.byeWeeks[bye.PlayerID]
		if !ok {
			weeks = make(map[int]struct{}, 1)
			s.byeWeeks[bye.PlayerID] = weeks
		}
		weeks[bye.Week] = struct{}{}
	}
	return s
}

func (s Snapshot) Week() int {
	return s.week
}

// InjuryStatus returns the blocking status, if any.
func (s Snapshot) InjuryStatus(playerID string) (string, bool) {
	status, ok := s.injured[playerID]
	return status, ok
}

func (s Snapshot) IsInjured(playerID string) bool {
	_, ok := s.injured[playerID]
	return ok
}

func (s Snapshot) OnBye(playerID string) bool {
	_, ok := s.byeWeeks[playerID][s.week]
	return ok
}

// Playable is false for injured and bye-week players.
func (s Snapshot) Playable(playerID string) bool {
	return !s.IsInjured(playerID) && !s.OnBye(playerID)
}

// Repository exposes injury and bye reads.
type Repository interface {
	ListInjuries(ctx context.Context, playerIDs []string) ([]Injury, error)
	ListByes(ctx context.Context, season int, playerIDs []string) ([]Bye, error)
}

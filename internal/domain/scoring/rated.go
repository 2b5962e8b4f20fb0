package scoring

import "github.com/riskibarqy/lineup-advisor/internal/domain/player"

// Rated is a player with its weekly score and breakdown. A nil Score means
// no scoring row exists for the week.
type Rated struct {
	Player    player.Player
	Score     *float64
	Breakdown Breakdown
}

func (r Rated) HasScore() bool {
	return r.Score != nil
}

// Value is the score, or 0 when missing.
func (r Rated) Value() float64 {
	if r.Score == nil {
		return 0
	}
	return *r.Score
}

// Ranks reports whether a sorts before b: higher score first, then player id.
func Ranks(a, b Rated) bool {
	if a.Value() != b.Value() {
		return a.Value() > b.Value()
	}
	return a.Player.ID < b.Player.ID
}

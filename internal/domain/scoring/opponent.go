package scoring

import (
	"github.com/riskibarqy/lineup-advisor/internal/domain/matchup"
	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
)

// UsesUpcomingWeek reports whether a position is judged against next week's
// opponent. Kickers and defenses use the current week.
func UsesUpcomingWeek(position player.Position) bool {
	switch position {
	case player.PositionQB, player.PositionRB, player.PositionWR, player.PositionTE:
		return true
	default:
		return false
	}
}

// OpponentDifficulty resolves the difficulty index of the team a player faces.
// The upcoming week is tried first for positions that use it, falling back
// to the current week. The index is read at the current week.
func OpponentDifficulty(position player.Position, team string, week int, schedule matchup.Schedule, table matchup.DifficultyTable) (float64, bool) {
	opponent, ok := "", false
	if UsesUpcomingWeek(position) {
		opponent, ok = schedule.Opponent(team, week+1)
	}
	if !ok {
		opponent, ok = schedule.Opponent(team, week)
	}
	if !ok {
		return 0, false
	}
	return table.Lookup(opponent, week)
}

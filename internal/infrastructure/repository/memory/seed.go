package memory

import (
	"github.com/riskibarqy/lineup-advisor/internal/domain/availability"
	"github.com/riskibarqy/lineup-advisor/internal/domain/leaguecalc"
	"github.com/riskibarqy/lineup-advisor/internal/domain/matchup"
	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
	"github.com/riskibarqy/lineup-advisor/internal/domain/playerstats"
	"github.com/riskibarqy/lineup-advisor/internal/domain/roster"
)

const (
	LeagueIDDemo = "demo-league"
	SeasonDemo   = 2024
	TeamIDAlpha  = "team-alpha"
	TeamIDBravo  = "team-bravo"
)

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "qb-mahomes", Name: "Patrick Mahomes", Position: player.PositionQB, NFLTeam: "KC"},
		{ID: "qb-allen", Name: "Josh Allen", Position: player.PositionQB, NFLTeam: "BUF"},
		{ID: "qb-tua", Name: "Tua Tagovailoa", Position: player.PositionQB, NFLTeam: "MIA"},
		{ID: "rb-pacheco", Name: "Isiah Pacheco", Position: player.PositionRB, NFLTeam: "KC"},
		{ID: "rb-cook", Name: "James Cook", Position: player.PositionRB, NFLTeam: "BUF"},
		{ID: "rb-achane", Name: "De'Von Achane", Position: player.PositionRB, NFLTeam: "MIA"},
		{ID: "rb-hall", Name: "Breece Hall", Position: player.PositionRB, NFLTeam: "NYJ"},
		{ID: "wr-rice", Name: "Rashee Rice", Position: player.PositionWR, NFLTeam: "KC"},
		{ID: "wr-hill", Name: "Tyreek Hill", Position: player.PositionWR, NFLTeam: "MIA"},
		{ID: "wr-waddle", Name: "Jaylen Waddle", Position: player.PositionWR, NFLTeam: "MIA"},
		{ID: "wr-wilson", Name: "Garrett Wilson", Position: player.PositionWR, NFLTeam: "NYJ"},
		{ID: "wr-shakir", Name: "Khalil Shakir", Position: player.PositionWR, NFLTeam: "BUF"},
		{ID: "te-kelce", Name: "Travis Kelce", Position: player.PositionTE, NFLTeam: "KC"},
		{ID: "te-kincaid", Name: "Dalton Kincaid", Position: player.PositionTE, NFLTeam: "BUF"},
		{ID: "k-butker", Name: "Harrison Butker", Position: player.PositionK, NFLTeam: "KC"},
		{ID: "k-bass", Name: "Tyler Bass", Position: player.PositionK, NFLTeam: "BUF"},
		{ID: "def-kc", Name: "Kansas City", Position: player.PositionDEF, NFLTeam: "KC"},
		{ID: "def-nyj", Name: "New York Jets", Position: player.PositionDEF, NFLTeam: "NYJ"},
	}
}

func SeedRosters() []roster.Entry {
	entry := func(teamID, playerID string, slot roster.Slot) roster.Entry {
		return roster.Entry{LeagueID: LeagueIDDemo, TeamID: teamID, PlayerID: playerID, Slot: slot}
	}
	return []roster.Entry{
		entry(TeamIDAlpha, "qb-mahomes", "QB"),
		entry(TeamIDAlpha, "rb-pacheco", "RB"),
		entry(TeamIDAlpha, "rb-cook", "RB"),
		entry(TeamIDAlpha, "rb-achane", roster.SlotBench),
		entry(TeamIDAlpha, "wr-rice", "WR"),
		entry(TeamIDAlpha, "wr-hill", "WR"),
		entry(TeamIDAlpha, "wr-shakir", roster.SlotFlex),
		entry(TeamIDAlpha, "te-kelce", "TE"),
		entry(TeamIDAlpha, "k-butker", "K"),
		entry(TeamIDAlpha, "def-kc", "DEF"),
		entry(TeamIDBravo, "qb-allen", "QB"),
		entry(TeamIDBravo, "rb-hall", "RB"),
		entry(TeamIDBravo, "wr-waddle", "WR"),
		entry(TeamIDBravo, "wr-wilson", "WR"),
		entry(TeamIDBravo, "te-kincaid", "TE"),
		entry(TeamIDBravo, "k-bass", "K"),
		entry(TeamIDBravo, "def-nyj", "DEF"),
	}
}

func SeedSlotConfig() []roster.SlotConfig {
	return []roster.SlotConfig{
		{LeagueID: LeagueIDDemo, Position: "QB", Count: 1},
		{LeagueID: LeagueIDDemo, Position: "RB", Count: 2},
		{LeagueID: LeagueIDDemo, Position: "WR", Count: 2},
		{LeagueID: LeagueIDDemo, Position: "TE", Count: 1},
		{LeagueID: LeagueIDDemo, Position: "FLEX", Count: 1},
		{LeagueID: LeagueIDDemo, Position: "K", Count: 1},
		{LeagueID: LeagueIDDemo, Position: "DEF", Count: 1},
		{LeagueID: LeagueIDDemo, Position: "BN", Count: 6},
	}
}

func SeedMatchups() []matchup.Matchup {
	return []matchup.Matchup{
		{Season: SeasonDemo, Week: 1, HomeTeam: "KC", AwayTeam: "BUF"},
		{Season: SeasonDemo, Week: 1, HomeTeam: "MIA", AwayTeam: "NYJ"},
		{Season: SeasonDemo, Week: 2, HomeTeam: "BUF", AwayTeam: "MIA"},
		{Season: SeasonDemo, Week: 2, HomeTeam: "NYJ", AwayTeam: "KC"},
	}
}

func SeedDifficulty() []matchup.DifficultyIndex {
	return []matchup.DifficultyIndex{
		{Team: "KC", Season: SeasonDemo, Week: 1, Value: 0.35},
		{Team: "BUF", Season: SeasonDemo, Week: 1, Value: 0.55},
		{Team: "MIA", Season: SeasonDemo, Week: 1, Value: 0.7},
		{Team: "NYJ", Season: SeasonDemo, Week: 1, Value: 0.4},
	}
}

func SeedInjuries() []availability.Injury {
	return []availability.Injury{
		{PlayerID: "rb-cook", Status: "QUESTIONABLE"},
		{PlayerID: "wr-hill", Status: "OUT"},
	}
}

func SeedByes() map[int][]availability.Bye {
	return map[int][]availability.Bye{
		SeasonDemo: {
			{PlayerID: "def-nyj", Week: 2},
			{PlayerID: "rb-hall", Week: 2},
		},
	}
}

// SeedLeagueCalcs holds week 1 fantasy points as delivered by ingestion.
func SeedLeagueCalcs() []leaguecalc.LeagueCalc {
	points := map[string]float64{
		"qb-mahomes": 24.3, "qb-allen": 28.1, "qb-tua": 18.2,
		"rb-pacheco": 14.6, "rb-cook": 9.8, "rb-achane": 17.9, "rb-hall": 12.4,
		"wr-rice": 16.1, "wr-hill": 21.5, "wr-waddle": 11.2, "wr-wilson": 13.7, "wr-shakir": 8.3,
		"te-kelce": 10.9, "te-kincaid": 7.6,
		"k-butker": 9.0, "k-bass": 11.0,
		"def-kc": 8.0, "def-nyj": 5.0,
	}
	positions := make(map[string]player.Position)
	for _, p := range SeedPlayers() {
		positions[p.ID] = p.Position
	}

	out := make([]leaguecalc.LeagueCalc, 0, len(points))
	for id, v := range points {
		out = append(out, leaguecalc.LeagueCalc{
			LeagueID:      LeagueIDDemo,
			PlayerID:      id,
			Position:      positions[id],
			Season:        SeasonDemo,
			Week:          1,
			FantasyPoints: &v,
		})
	}
	return out
}

// SeedWeeklyStats holds week 1 raw box scores for the offensive skill players.
func SeedWeeklyStats() []playerstats.PlayerWeeklyStat {
	snap := func(v float64) *float64 { return &v }
	row := func(id string, pos player.Position, raw playerstats.RawStats) playerstats.PlayerWeeklyStat {
		return playerstats.PlayerWeeklyStat{PlayerID: id, Position: pos, Season: SeasonDemo, Week: 1, Raw: raw}
	}
	return []playerstats.PlayerWeeklyStat{
		row("qb-mahomes", player.PositionQB, playerstats.RawStats{PassAttempts: 36, PassCompletions: 26, PassYards: 291, PassTD: 2, Interceptions: 1, RushAttempts: 4, RushYards: 19, SnapShare: snap(1)}),
		row("qb-allen", player.PositionQB, playerstats.RawStats{PassAttempts: 31, PassCompletions: 21, PassYards: 262, PassTD: 2, RushAttempts: 8, RushYards: 54, RushTD: 1, SnapShare: snap(1)}),
		row("qb-tua", player.PositionQB, playerstats.RawStats{PassAttempts: 38, PassCompletions: 27, PassYards: 301, PassTD: 1, Interceptions: 1, SnapShare: snap(1)}),
		row("rb-pacheco", player.PositionRB, playerstats.RawStats{RushAttempts: 17, RushYards: 74, RushTD: 1, Targets: 3, Receptions: 2, ReceivingYards: 12, SnapShare: snap(0.62)}),
		row("rb-cook", player.PositionRB, playerstats.RawStats{RushAttempts: 14, RushYards: 58, Targets: 4, Receptions: 3, ReceivingYards: 20, FumblesLost: 1, SnapShare: snap(0.55)}),
		row("rb-achane", player.PositionRB, playerstats.RawStats{RushAttempts: 11, RushYards: 83, RushTD: 1, Targets: 5, Receptions: 4, ReceivingYards: 31, SnapShare: snap(0.48)}),
		row("rb-hall", player.PositionRB, playerstats.RawStats{RushAttempts: 16, RushYards: 66, Targets: 6, Receptions: 5, ReceivingYards: 38, SnapShare: snap(0.7)}),
		row("wr-rice", player.PositionWR, playerstats.RawStats{Targets: 9, Receptions: 7, ReceivingYards: 103, SnapShare: snap(0.81)}),
		row("wr-hill", player.PositionWR, playerstats.RawStats{Targets: 11, Receptions: 8, ReceivingYards: 130, ReceivingTD: 1, SnapShare: snap(0.86)}),
		row("wr-waddle", player.PositionWR, playerstats.RawStats{Targets: 7, Receptions: 5, ReceivingYards: 62, SnapShare: snap(0.79)}),
		row("wr-wilson", player.PositionWR, playerstats.RawStats{Targets: 10, Receptions: 6, ReceivingYards: 77, SnapShare: snap(0.92)}),
		row("wr-shakir", player.PositionWR, playerstats.RawStats{Targets: 5, Receptions: 4, ReceivingYards: 43, SnapShare: snap(0.66)}),
		row("te-kelce", player.PositionTE, playerstats.RawStats{Targets: 7, Receptions: 5, ReceivingYards: 49, SnapShare: snap(0.77)}),
		row("te-kincaid", player.PositionTE, playerstats.RawStats{Targets: 6, Receptions: 4, ReceivingYards: 36, SnapShare: snap(0.6)}),
		row("k-butker", player.PositionK, playerstats.RawStats{FieldGoalsMade: 2, FieldGoalsAtt: 2, ExtraPointsMade: 3, ExtraPointsAtt: 3}),
		row("k-bass", player.PositionK, playerstats.RawStats{FieldGoalsMade: 2, FieldGoalsAtt: 3, ExtraPointsMade: 5, ExtraPointsAtt: 5}),
		row("def-kc", player.PositionDEF, playerstats.RawStats{Sacks: 3, DefInterceptions: 1, PointsAllowed: snap(20), YardsAllowed: snap(331)}),
		row("def-nyj", player.PositionDEF, playerstats.RawStats{Sacks: 2, FumbleRecoveries: 1, PointsAllowed: snap(24), YardsAllowed: snap(356)}),
	}
}

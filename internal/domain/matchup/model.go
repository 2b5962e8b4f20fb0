package matchup

// Matchup is one scheduled game of a week.
type Matchup struct {
	Season   int
	Week     int
	HomeTeam string
	AwayTeam string
}

// Opponent returns the other side of the game for team.
func (m Matchup) Opponent(team string) (string, bool) {
	switch team {
	case "":
		return "", false
	case m.HomeTeam:
		return m.AwayTeam, true
	case m.AwayTeam:
		return m.HomeTeam, true
	default:
		return "", false
	}
}

// DifficultyIndex is an already-normalized aggregate of a team's performance,
// read as how favorable facing that team is. Higher means an easier matchup.
type DifficultyIndex struct {
	Team   string
	Season int
	Week   int
	Value  float64
}

// Schedule answers opponent lookups for a fixed set of weeks.
type Schedule struct {
	opponents map[int]map[string]string
}

func NewSchedule(matchups []Matchup) Schedule {
	opponents := make(map[int]map[string]string)
	for _, m := range matchups {
		if m.HomeTeam == "" || m.AwayTeam == "" {
			continue
		}
		if _, ok := opponents[m.Week]; !ok {
			opponents[m.Week] = make(map[string]string)
		}
		opponents[m.Week][m.HomeTeam] = m.AwayTeam
		opponents[m.Week][m.AwayTeam] = m.HomeTeam
	}
	return Schedule{opponents: opponents}
}

func (s Schedule) Opponent(team string, week int) (string, bool) {
	byTeam, ok := s.opponents[week]
	if !ok {
		return "", false
	}
	opp, ok := byTeam[team]
	return opp, ok
}

// DifficultyTable indexes difficulty values by team and week.
type DifficultyTable struct {
	values map[int]map[string]float64
}

func NewDifficultyTable(indexes []DifficultyIndex) DifficultyTable {
	values := make(map[int]map[string]float64)
	for _, idx := range indexes {
		if _, ok := values[idx.Week]; !ok {
			values[idx.Week] = make(map[string]float64)
		}
		values[idx.Week][idx.Team] = idx.Value
	}
	return DifficultyTable{values: values}
}

func (t DifficultyTable) Lookup(team string, week int) (float64, bool) {
	v, ok := t.values[week][team]
	return v, ok
}

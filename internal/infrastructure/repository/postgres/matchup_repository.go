package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/lineup-advisor/internal/domain/matchup"
	qb "github.com/riskibarqy/lineup-advisor/internal/platform/querybuilder"
)

type matchupTableModel struct {
	Season   int    `db:"season"`
	Week     int    `db:"week"`
	HomeTeam string `db:"home_team"`
	AwayTeam string `db:"away_team"`
}

type difficultyTableModel struct {
	Team   string  `db:"team"`
	Season int     `db:"season"`
	Week   int     `db:"week"`
	Value  float64 `db:"difficulty"`
}

type MatchupRepository struct {
	db *sqlx.DB
}

func NewMatchupRepository(db *sqlx.DB) *MatchupRepository {
	return &MatchupRepository{db: db}
}

func (r *MatchupRepository) ListBySeasonWeeks(ctx context.Context, season, fromWeek, toWeek int) ([]matchup.Matchup, error) {
	query, args, err := qb.Select("season", "week", "home_team", "away_team").From("matchups").
		Where(
			qb.Eq("season", season),
			qb.Between("week", fromWeek, toWeek),
		).
		OrderBy("week", "home_team").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select matchups query")
	}

	var rows []matchupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select matchups season=%d weeks=%d..%d", season, fromWeek, toWeek)
	}

	out := make([]matchup.Matchup, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchup.Matchup{
			Season:   row.Season,
			Week:     row.Week,
			HomeTeam: row.HomeTeam,
			AwayTeam: row.AwayTeam,
		})
	}
	return out, nil
}

func (r *MatchupRepository) ListDifficulty(ctx context.Context, season, week int) ([]matchup.DifficultyIndex, error) {
	query, args, err := qb.Select("team", "season", "week", "difficulty").From("team_difficulty_indexes").
		Where(
			qb.Eq("season", season),
			qb.Eq("week", week),
		).
		OrderBy("team").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select difficulty indexes query")
	}

	var rows []difficultyTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select difficulty indexes season=%d week=%d", season, week)
	}

	out := make([]matchup.DifficultyIndex, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchup.DifficultyIndex{
			Team:   row.Team,
			Season: row.Season,
			Week:   row.Week,
			Value:  row.Value,
		})
	}
	return out, nil
}

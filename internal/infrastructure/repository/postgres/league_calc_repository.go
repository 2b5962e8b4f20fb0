package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/lineup-advisor/internal/domain/leaguecalc"
	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
	qb "github.com/riskibarqy/lineup-advisor/internal/platform/querybuilder"
)

const leagueCalcsTable = "league_calcs"

// Ingestion owns fantasy_points, so a NULL from a recompute never erases it.
var leagueCalcsUpsertSuffix = qb.OnConflict(leagueCalcsTable, "league_id", "player_id", "season", "week").
	Overwrite("position").
	KeepExisting("fantasy_points").
	Overwrite(
		"recent_mean",
		"recent_std",
		"recent_mean_norm",
		"recent_std_norm",
		"weighted_score",
		"components",
		"calculated_at",
	).
	String()

var leagueCalcSelectColumns = []string{
	"league_id",
	"player_id",
	"position",
	"season",
	"week",
	"fantasy_points",
	"recent_mean",
	"recent_std",
	"recent_mean_norm",
	"recent_std_norm",
	"weighted_score",
	"components::text AS components",
	"calculated_at",
}

type LeagueCalcRepository struct {
	db *sqlx.DB
}

func NewLeagueCalcRepository(db *sqlx.DB) *LeagueCalcRepository {
	return &LeagueCalcRepository{db: db}
}

func (r *LeagueCalcRepository) ListByLeagueWeeks(ctx context.Context, leagueID string, season, fromWeek, toWeek int) ([]leaguecalc.LeagueCalc, error) {
	query, args, err := qb.Select(leagueCalcSelectColumns...).From(leagueCalcsTable).
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("season", season),
			qb.Between("week", fromWeek, toWeek),
		).
		OrderBy("week", "player_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select league calcs by weeks query")
	}

	var rows []leagueCalcTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select league calcs league=%s season=%d weeks=%d..%d", leagueID, season, fromWeek, toWeek)
	}
	return leagueCalcsFromRows(rows)
}

func (r *LeagueCalcRepository) ListByPlayers(ctx context.Context, leagueID string, season, week int, playerIDs []string) ([]leaguecalc.LeagueCalc, error) {
	if len(playerIDs) == 0 {
		return []leaguecalc.LeagueCalc{}, nil
	}

	query, args, err := qb.Select(leagueCalcSelectColumns...).From(leagueCalcsTable).
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("season", season),
			qb.Eq("week", week),
			qb.InStrings("player_id", playerIDs),
		).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select league calcs by players query")
	}

	var rows []leagueCalcTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select league calcs league=%s week=%d", leagueID, week)
	}
	return leagueCalcsFromRows(rows)
}

// LeagueCalcBulkWriter upserts a whole batch with one multi-row statement.
type LeagueCalcBulkWriter struct {
	db *sqlx.DB
}

func NewLeagueCalcBulkWriter(db *sqlx.DB) *LeagueCalcBulkWriter {
	return &LeagueCalcBulkWriter{db: db}
}

func (w *LeagueCalcBulkWriter) UpsertLeagueCalcs(ctx context.Context, rows []leaguecalc.LeagueCalc) error {
	if len(rows) == 0 {
		return nil
	}

	models, err := leagueCalcInsertModels(rows)
	if err != nil {
		return err
	}
	query, args, err := qb.InsertModels(leagueCalcsTable, models, leagueCalcsUpsertSuffix)
	if err != nil {
		return crerr.Wrap(err, "build bulk league calc upsert query")
	}
	if _, err := w.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "bulk upsert %d league calcs", len(rows))
	}
	return nil
}

// LeagueCalcRowWriter upserts row by row inside one transaction.
type LeagueCalcRowWriter struct {
	db *sqlx.DB
}

func NewLeagueCalcRowWriter(db *sqlx.DB) *LeagueCalcRowWriter {
	return &LeagueCalcRowWriter{db: db}
}

func (w *LeagueCalcRowWriter) UpsertLeagueCalcs(ctx context.Context, rows []leaguecalc.LeagueCalc) error {
	if len(rows) == 0 {
		return nil
	}

	models, err := leagueCalcInsertModels(rows)
	if err != nil {
		return err
	}
	return withTx(ctx, w.db, func(tx *sqlx.Tx) error {
		for _, model := range models {
			query, args, err := qb.InsertModel(leagueCalcsTable, model, leagueCalcsUpsertSuffix)
			if err != nil {
				return crerr.Wrap(err, "build league calc upsert query")
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return crerr.Wrapf(err, "upsert league calc player=%s week=%d", model.PlayerID, model.Week)
			}
		}
		return nil
	})
}

func leagueCalcInsertModels(rows []leaguecalc.LeagueCalc) ([]leagueCalcInsertModel, error) {
	out := make([]leagueCalcInsertModel, 0, len(rows))
	for _, row := range rows {
		components, err := encodeComponents(row.Components)
		if err != nil {
			return nil, crerr.Wrapf(err, "player=%s", row.PlayerID)
		}
		out = append(out, leagueCalcInsertModel{
			LeagueID:       row.LeagueID,
			PlayerID:       row.PlayerID,
			Position:       string(row.Position),
			Season:         row.Season,
			Week:           row.Week,
			FantasyPoints:  nullFloat(row.FantasyPoints),
			RecentMean:     nullFloat(row.RecentMean),
			RecentStd:      nullFloat(row.RecentStd),
			RecentMeanNorm: nullFloat(row.RecentMeanNorm),
			RecentStdNorm:  nullFloat(row.RecentStdNorm),
			WeightedScore:  nullFloat(row.WeightedScore),
			Components:     components,
			CalculatedAt:   row.CalculatedAt.UTC(),
		})
	}
	return out, nil
}

func leagueCalcsFromRows(rows []leagueCalcTableModel) ([]leaguecalc.LeagueCalc, error) {
	out := make([]leaguecalc.LeagueCalc, 0, len(rows))
	for _, row := range rows {
		components, err := decodeComponents(row.Components)
		if err != nil {
			return nil, crerr.Wrapf(err, "league calc player=%s week=%d", row.PlayerID, row.Week)
		}
		position, _ := player.ParsePosition(row.Position)
		out = append(out, leaguecalc.LeagueCalc{
			LeagueID:       row.LeagueID,
			PlayerID:       row.PlayerID,
			Position:       position,
			Season:         row.Season,
			Week:           row.Week,
			FantasyPoints:  floatPtr(row.FantasyPoints),
			RecentMean:     floatPtr(row.RecentMean),
			RecentStd:      floatPtr(row.RecentStd),
			RecentMeanNorm: floatPtr(row.RecentMeanNorm),
			RecentStdNorm:  floatPtr(row.RecentStdNorm),
			WeightedScore:  floatPtr(row.WeightedScore),
			Components:     components,
			CalculatedAt:   row.CalculatedAt,
		})
	}
	return out, nil
}

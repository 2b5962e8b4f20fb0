package postgres

import (
	"context"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
	"github.com/riskibarqy/lineup-advisor/internal/domain/playerstats"
	qb "github.com/riskibarqy/lineup-advisor/internal/platform/querybuilder"
)

const playerWeeklyStatsTable = "player_weekly_stats"

var playerWeeklyStatsUpsertSuffix = qb.OnConflict(playerWeeklyStatsTable, "player_id", "season", "week").
	Overwrite("position", "raw_stats", "derived_features", "rolling_features", "normalized_features").
	SetExpr("updated_at", "NOW()").
	String()

var playerWeeklyStatSelectColumns = []string{
	"player_id",
	"position",
	"season",
	"week",
	"raw_stats::text AS raw_stats",
	"derived_features::text AS derived_features",
	"rolling_features::text AS rolling_features",
	"normalized_features::text AS normalized_features",
	"updated_at",
}

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) ListBySeasonWeeks(ctx context.Context, season, fromWeek, toWeek int) ([]playerstats.PlayerWeeklyStat, error) {
	query, args, err := qb.Select(playerWeeklyStatSelectColumns...).From(playerWeeklyStatsTable).
		Where(
			qb.Eq("season", season),
			qb.Between("week", fromWeek, toWeek),
		).
		OrderBy("week", "player_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select weekly stats by weeks query")
	}

	var rows []playerWeeklyStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select weekly stats season=%d weeks=%d..%d", season, fromWeek, toWeek)
	}
	return weeklyStatsFromRows(rows)
}

func (r *PlayerStatsRepository) ListByPlayers(ctx context.Context, season, week int, playerIDs []string) ([]playerstats.PlayerWeeklyStat, error) {
	if len(playerIDs) == 0 {
		return []playerstats.PlayerWeeklyStat{}, nil
	}

	query, args, err := qb.Select(playerWeeklyStatSelectColumns...).From(playerWeeklyStatsTable).
		Where(
			qb.Eq("season", season),
			qb.Eq("week", week),
			qb.InStrings("player_id", playerIDs),
		).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select weekly stats by players query")
	}

	var rows []playerWeeklyStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select weekly stats season=%d week=%d", season, week)
	}
	return weeklyStatsFromRows(rows)
}

// PlayerStatsBulkWriter upserts a whole batch with one multi-row statement.
type PlayerStatsBulkWriter struct {
	db *sqlx.DB
}

func NewPlayerStatsBulkWriter(db *sqlx.DB) *PlayerStatsBulkWriter {
	return &PlayerStatsBulkWriter{db: db}
}

func (w *PlayerStatsBulkWriter) UpsertWeeklyStats(ctx context.Context, rows []playerstats.PlayerWeeklyStat) error {
	if len(rows) == 0 {
		return nil
	}

	models, err := weeklyStatInsertModels(rows)
	if err != nil {
		return err
	}
	query, args, err := qb.InsertModels(playerWeeklyStatsTable, models, playerWeeklyStatsUpsertSuffix)
	if err != nil {
		return crerr.Wrap(err, "build bulk weekly stats upsert query")
	}
	if _, err := w.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "bulk upsert %d weekly stats", len(rows))
	}
	return nil
}

// PlayerStatsRowWriter upserts row by row inside one transaction.
type PlayerStatsRowWriter struct {
	db *sqlx.DB
}

func NewPlayerStatsRowWriter(db *sqlx.DB) *PlayerStatsRowWriter {
	return &PlayerStatsRowWriter{db: db}
}

func (w *PlayerStatsRowWriter) UpsertWeeklyStats(ctx context.Context, rows []playerstats.PlayerWeeklyStat) error {
	if len(rows) == 0 {
		return nil
	}

	models, err := weeklyStatInsertModels(rows)
	if err != nil {
		return err
	}
	return withTx(ctx, w.db, func(tx *sqlx.Tx) error {
		for _, model := range models {
			query, args, err := qb.InsertModel(playerWeeklyStatsTable, model, playerWeeklyStatsUpsertSuffix)
			if err != nil {
				return crerr.Wrap(err, "build weekly stat upsert query")
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return crerr.Wrapf(err, "upsert weekly stat player=%s week=%d", model.PlayerID, model.Week)
			}
		}
		return nil
	})
}

func weeklyStatInsertModels(rows []playerstats.PlayerWeeklyStat) ([]playerWeeklyStatInsertModel, error) {
	out := make([]playerWeeklyStatInsertModel, 0, len(rows))
	for _, row := range rows {
		raw, err := sonic.Marshal(rawStatsToDocument(row.Raw))
		if err != nil {
			return nil, crerr.Wrapf(err, "encode raw stats player=%s", row.PlayerID)
		}
		derived, err := encodeFeatureSet(row.Derived)
		if err != nil {
			return nil, err
		}
		rolling, err := encodeFeatureSet(row.Rolling)
		if err != nil {
			return nil, err
		}
		normalized, err := encodeFeatureSet(row.Normalized)
		if err != nil {
			return nil, err
		}
		out = append(out, playerWeeklyStatInsertModel{
			PlayerID:   row.PlayerID,
			Position:   string(row.Position),
			Season:     row.Season,
			Week:       row.Week,
			Raw:        string(raw),
			Derived:    derived,
			Rolling:    rolling,
			Normalized: normalized,
		})
	}
	return out, nil
}

func weeklyStatsFromRows(rows []playerWeeklyStatTableModel) ([]playerstats.PlayerWeeklyStat, error) {
	out := make([]playerstats.PlayerWeeklyStat, 0, len(rows))
	for _, row := range rows {
		stat, err := weeklyStatFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, stat)
	}
	return out, nil
}

func weeklyStatFromRow(row playerWeeklyStatTableModel) (playerstats.PlayerWeeklyStat, error) {
	var raw rawStatsDocument
	if row.Raw != "" {
		if err := sonic.Unmarshal([]byte(row.Raw), &raw); err != nil {
			return playerstats.PlayerWeeklyStat{}, crerr.Wrapf(err, "decode raw stats player=%s week=%d", row.PlayerID, row.Week)
		}
	}
	derived, err := decodeFeatureSet(row.Derived)
	if err != nil {
		return playerstats.PlayerWeeklyStat{}, err
	}
	rolling, err := decodeFeatureSet(row.Rolling)
	if err != nil {
		return playerstats.PlayerWeeklyStat{}, err
	}
	normalized, err := decodeFeatureSet(row.Normalized)
	if err != nil {
		return playerstats.PlayerWeeklyStat{}, err
	}

	position, _ := player.ParsePosition(row.Position)
	return playerstats.PlayerWeeklyStat{
		PlayerID:   row.PlayerID,
		Position:   position,
		Season:     row.Season,
		Week:       row.Week,
		Raw:        raw.toDomain(),
		Derived:    derived,
		Rolling:    rolling,
		Normalized: normalized,
	}, nil
}

func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin transaction")
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return crerr.WithSecondaryError(err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit transaction")
	}
	return nil
}

package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/lineup-advisor/internal/domain/player"
	qb "github.com/riskibarqy/lineup-advisor/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"public_id",
	"name",
	"position",
	"nfl_team",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(
			qb.InStrings("public_id", playerIDs),
			qb.IsNull("deleted_at"),
		).
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select players by ids query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		if shouldRetryWithArrayParam(err) {
			return r.getByIDsArrayParam(ctx, playerIDs)
		}
		return nil, crerr.Wrap(err, "select players by ids")
	}
	return playersFromRows(rows), nil
}

// getByIDsArrayParam binds all ids as one text[] parameter.
func (r *PlayerRepository) getByIDsArrayParam(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(
			qb.Any("public_id", pq.Array(playerIDs)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select players by id array query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select players by id array")
	}
	return playersFromRows(rows), nil
}

func (r *PlayerRepository) ListByPositions(ctx context.Context, positions []player.Position) ([]player.Player, error) {
	if len(positions) == 0 {
		return []player.Player{}, nil
	}

	values := make([]any, 0, len(positions))
	for _, position := range positions {
		values = append(values, string(position))
	}

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(
			qb.In("position", values),
			qb.IsNull("deleted_at"),
		).
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select players by positions query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select players by positions")
	}
	return playersFromRows(rows), nil
}

func playersFromRows(rows []playerTableModel) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		position, ok := player.ParsePosition(row.Position)
		if !ok {
			continue
		}
		out = append(out, player.Player{
			ID:       row.PublicID,
			Name:     row.Name,
			Position: position,
			NFLTeam:  row.NFLTeam,
		})
	}
	return out
}

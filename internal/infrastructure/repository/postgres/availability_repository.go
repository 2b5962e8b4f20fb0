package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/lineup-advisor/internal/domain/availability"
	qb "github.com/riskibarqy/lineup-advisor/internal/platform/querybuilder"
)

type injuryTableModel struct {
	PlayerID string `db:"player_id"`
	Status   string `db:"status"`
}

type byeTableModel struct {
	PlayerID string `db:"player_id"`
	Week     int    `db:"week"`
}

type AvailabilityRepository struct {
	db *sqlx.DB
}

func NewAvailabilityRepository(db *sqlx.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// ListInjuries returns the latest reported status per player.
func (r *AvailabilityRepository) ListInjuries(ctx context.Context, playerIDs []string) ([]availability.Injury, error) {
	if len(playerIDs) == 0 {
		return []availability.Injury{}, nil
	}

	query, args, err := qb.Select("DISTINCT ON (player_id) player_id", "status").From("player_injuries").
		Where(qb.Any("player_id", pq.Array(playerIDs))).
		OrderBy("player_id", "reported_at DESC").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select injuries query")
	}

	var rows []injuryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select injuries")
	}

	out := make([]availability.Injury, 0, len(rows))
	for _, row := range rows {
		out = append(out, availability.Injury{PlayerID: row.PlayerID, Status: row.Status})
	}
	return out, nil
}

// ListByes resolves bye weeks through each player's NFL team.
func (r *AvailabilityRepository) ListByes(ctx context.Context, season int, playerIDs []string) ([]availability.Bye, error) {
	if len(playerIDs) == 0 {
		return []availability.Bye{}, nil
	}

	query, args, err := qb.Select("p.public_id AS player_id", "b.week").
		From("team_bye_weeks b JOIN players p ON p.nfl_team = b.team AND p.deleted_at IS NULL").
		Where(
			qb.Eq("b.season", season),
			qb.Any("p.public_id", pq.Array(playerIDs)),
		).
		OrderBy("p.public_id", "b.week").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select byes query")
	}

	var rows []byeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select byes season=%d", season)
	}

	out := make([]availability.Bye, 0, len(rows))
	for _, row := range rows {
		out = append(out, availability.Bye{PlayerID: row.PlayerID, Week: row.Week})
	}
	return out, nil
}

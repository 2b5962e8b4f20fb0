package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/lineup-advisor/internal/domain/roster"
	qb "github.com/riskibarqy/lineup-advisor/internal/platform/querybuilder"
)

type rosterEntryTableModel struct {
	LeagueID string `db:"league_id"`
	TeamID   string `db:"team_id"`
	PlayerID string `db:"player_id"`
	Slot     string `db:"slot"`
}

type rosterSlotConfigTableModel struct {
	LeagueID string `db:"league_id"`
	Position string `db:"position"`
	Count    int    `db:"slot_count"`
}

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) ListByTeams(ctx context.Context, leagueID string, teamIDs []string) ([]roster.Entry, error) {
	if len(teamIDs) == 0 {
		return []roster.Entry{}, nil
	}

	query, args, err := qb.Select("league_id", "team_id", "player_id", "slot").From("roster_entries").
		Where(
			qb.Eq("league_id", leagueID),
			qb.InStrings("team_id", teamIDs),
		).
		OrderBy("team_id", "player_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select roster entries query")
	}

	var rows []rosterEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select roster entries league=%s", leagueID)
	}

	out := make([]roster.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.Entry{
			LeagueID: row.LeagueID,
			TeamID:   row.TeamID,
			PlayerID: row.PlayerID,
			Slot:     roster.Slot(row.Slot),
		})
	}
	return out, nil
}

func (r *RosterRepository) ListSlotConfig(ctx context.Context, leagueID string) ([]roster.SlotConfig, error) {
	query, args, err := qb.Select("league_id", "position", "slot_count").From("roster_slot_configs").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("position").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select roster slot config query")
	}

	var rows []rosterSlotConfigTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select roster slot config league=%s", leagueID)
	}

	out := make([]roster.SlotConfig, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.SlotConfig{
			LeagueID: row.LeagueID,
			Position: row.Position,
			Count:    row.Count,
		})
	}
	return out, nil
}

package querybuilder

import "testing"

type statRow struct {
	PlayerID string  `db:"player_id"`
	Week     int     `db:"week"`
	Score    float64 `db:"score"`
	Ignored  string  `db:"-"`
}

func TestInsertModel(t *testing.T) {
	query, args, err := InsertModel("stats", statRow{PlayerID: "p1", Week: 3, Score: 1.5}, "ON CONFLICT (player_id, week) DO NOTHING")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO stats (player_id, week, score) VALUES ($1, $2, $3) ON CONFLICT (player_id, week) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "p1" || args[1] != 3 || args[2] != 1.5 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModels(t *testing.T) {
	rows := []statRow{
		{PlayerID: "p1", Week: 3, Score: 1},
		{PlayerID: "p2", Week: 3, Score: 2},
	}
	query, args, err := InsertModels("stats", rows, "ON CONFLICT (player_id, week) DO UPDATE SET score = EXCLUDED.score")
	if err != nil {
		t.Fatalf("build insert models query: %v", err)
	}

	wantQuery := "INSERT INTO stats (player_id, week, score) VALUES ($1, $2, $3), ($4, $5, $6) ON CONFLICT (player_id, week) DO UPDATE SET score = EXCLUDED.score"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 6 || args[3] != "p2" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModelsRequiresRows(t *testing.T) {
	if _, _, err := InsertModels[statRow]("stats", nil, ""); err == nil {
		t.Fatalf("expected error for empty models")
	}
}

func TestInsertModelRejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("stats", 42, ""); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
	var row *statRow
	if _, _, err := InsertModel("stats", row, ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}

func TestSelectBuilderConditions(t *testing.T) {
	query, args, err := Select("player_id").
		From("league_calcs").
		Where(
			Eq("league_id", "l1"),
			InStrings("player_id", []string{"p1", "p2"}),
			Expr("week BETWEEN ? AND ?", 2, 4),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT player_id FROM league_calcs WHERE league_id = $1 AND player_id IN ($2, $3) AND week BETWEEN $4 AND $5"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 5 || args[3] != 2 || args[4] != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInWithNoValuesMatchesNothing(t *testing.T) {
	query, args, err := Select("id").From("players").Where(In("public_id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM players WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

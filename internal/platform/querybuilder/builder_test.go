package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("player_id", "position").
		From("players").
		Where(Eq("nfl_team", "MIA"), IsNull("deleted_at")).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT player_id, position FROM players WHERE nfl_team = $1 AND deleted_at IS NULL ORDER BY player_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "MIA" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderRequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
	if _, _, err := Select().From("players").ToSQL(); err == nil {
		t.Fatalf("expected error without columns")
	}
}

func TestBetweenAndAny(t *testing.T) {
	ids := []string{"p1", "p2"}
	query, args, err := Select("week").
		From("player_weekly_stats").
		Where(
			Eq("season", 2024),
			Between("week", 2, 4),
			Any("player_id", ids),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT week FROM player_weekly_stats WHERE season = $1 AND week BETWEEN $2 AND $3 AND player_id = ANY($4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[1] != 2 || args[2] != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("matchups").
		Columns("season", "week").
		Values(2024, 1).
		Values(2024, 2).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO matchups (season, week) VALUES ($1, $2), ($3, $4) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[3] != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderRejectsShortRow(t *testing.T) {
	_, _, err := InsertInto("matchups").Columns("season", "week").Values(2024).ToSQL()
	if err == nil {
		t.Fatalf("expected error for row with missing values")
	}
}

func TestOnConflict(t *testing.T) {
	got := OnConflict("league_calcs", "league_id", "player_id").
		Overwrite("weighted_score").
		KeepExisting("fantasy_points").
		SetExpr("updated_at", "NOW()").
		String()

	want := "ON CONFLICT (league_id, player_id) DO UPDATE SET weighted_score = EXCLUDED.weighted_score, " +
		"fantasy_points = COALESCE(EXCLUDED.fantasy_points, league_calcs.fantasy_points), updated_at = NOW()"
	if got != want {
		t.Fatalf("unexpected clause:\nwant: %s\ngot:  %s", want, got)
	}

	if got := OnConflict("matchups", "season").String(); got != "ON CONFLICT (season) DO NOTHING" {
		t.Fatalf("unexpected clause: %s", got)
	}
}

package app

import (
	"strings"
	"testing"
)

func TestWithPreparedBinaryDisabled(t *testing.T) {
	t.Run("appends flag", func(t *testing.T) {
		got := withPreparedBinaryDisabled("postgres://u:p@localhost:5432/lineup_advisor?sslmode=disable", true)
		if !strings.Contains(got, "disable_prepared_binary_result=yes") {
			t.Fatalf("expected flag in url, got %q", got)
		}
		if !strings.Contains(got, "sslmode=disable") {
			t.Fatalf("expected existing params kept, got %q", got)
		}
	})

	t.Run("keeps explicit value", func(t *testing.T) {
		in := "postgres://u:p@localhost:5432/lineup_advisor?disable_prepared_binary_result=no"
		if got := withPreparedBinaryDisabled(in, true); got != in {
			t.Fatalf("expected url unchanged, got %q", got)
		}
	})

	t.Run("disabled toggle", func(t *testing.T) {
		in := "postgres://u:p@localhost:5432/lineup_advisor"
		if got := withPreparedBinaryDisabled(in, false); got != in {
			t.Fatalf("expected url unchanged, got %q", got)
		}
	})

	t.Run("key value dsn untouched", func(t *testing.T) {
		in := "host=localhost dbname=lineup_advisor"
		if got := withPreparedBinaryDisabled(in, true); got != in {
			t.Fatalf("expected dsn unchanged, got %q", got)
		}
	})
}

func TestDatabaseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "postgres://u:p@db:5432/lineup_advisor?sslmode=disable", want: "lineup_advisor"},
		{in: "host=db user=postgres dbname='lineup_stage' port=5432", want: "lineup_stage"},
		{in: "postgres://u:p@db:5432/", want: ""},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		if got := databaseName(tt.in); got != tt.want {
			t.Fatalf("databaseName(%q)=%q want=%q", tt.in, got, tt.want)
		}
	}
}

func TestTraceQuery(t *testing.T) {
	got := traceQuery(" SELECT   player_id\nFROM league_calcs \t WHERE league_id = $1 ")
	if got != "SELECT player_id FROM league_calcs WHERE league_id = $1" {
		t.Fatalf("unexpected formatted query: %q", got)
	}

	long := traceQuery("SELECT " + strings.Repeat("x, ", 400))
	if len(long) != maxTracedQueryLength+3 || !strings.HasSuffix(long, "...") {
		t.Fatalf("expected truncated query, got len=%d", len(long))
	}
}

package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("teams").
		Where(Eq("league_id", "acb-2025"), IsNull("deleted_at")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM teams WHERE league_id = $1 AND deleted_at IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "acb-2025" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_JoinAndOr(t *testing.T) {
	query, args, err := Select("g.id").
		From("games g").
		Join("teams t ON t.id = g.home_team_id").
		Where(
			Eq("g.league_id", "acb-2025"),
			Or(Eq("g.home_team_id", int64(7)), Eq("g.away_team_id", int64(7))),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT g.id FROM games g JOIN teams t ON t.id = g.home_team_id WHERE g.league_id = $1 AND (g.home_team_id = $2 OR g.away_team_id = $3)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
}

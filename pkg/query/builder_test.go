package query_test

import (
	"testing"

	"github.com/JaimeStill/superbowl/pkg/query"
)

func timberProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "timbers", "t").
		Project("id", "ID").
		Project("code", "Code").
		Project("name", "Name").
		Project("botanic_system_id", "BotanicSystemID")
}

var byCode = query.SortField{Field: "Code"}

func TestBuilder_Build(t *testing.T) {
	sql, args := query.NewBuilder(timberProjection(), byCode).Build()

	want := "SELECT t.id, t.code, t.name, t.botanic_system_id FROM public.timbers t ORDER BY t.code ASC"
	if sql != want {
		t.Errorf("Build() sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("Build() args = %v, want none", args)
	}
}

func TestBuilder_Conditions(t *testing.T) {
	name := "esch"
	var missing *int64

	sql, args := query.NewBuilder(timberProjection(), byCode).
		WhereEquals("BotanicSystemID", int64(3)).
		WhereEquals("ID", missing).
		WhereContains("Name", &name).
		OrderByFields([]query.SortField{{Field: "Name", Descending: true}}).
		Build()

	want := "SELECT t.id, t.code, t.name, t.botanic_system_id FROM public.timbers t" +
		" WHERE t.botanic_system_id = $1 AND t.name ILIKE $2 ORDER BY t.name DESC"
	if sql != want {
		t.Errorf("Build() sql = %q, want %q", sql, want)
	}
	if len(args) != 2 || args[0] != int64(3) || args[1] != "%esch%" {
		t.Errorf("Build() args = %v, want [3 %%esch%%]", args)
	}
}

func TestBuilder_WhereIn(t *testing.T) {
	sql, args := query.NewBuilder(timberProjection(), byCode).
		WhereIn("Code", []any{"ASH", "OAK"}).
		BuildCount()

	want := "SELECT COUNT(*) FROM public.timbers t WHERE t.code IN ($1, $2)"
	if sql != want {
		t.Errorf("BuildCount() sql = %q, want %q", sql, want)
	}
	if len(args) != 2 {
		t.Errorf("BuildCount() args = %v, want 2", args)
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	sql, _ := query.NewBuilder(timberProjection(), byCode).BuildPage(3, 20)

	want := "SELECT t.id, t.code, t.name, t.botanic_system_id FROM public.timbers t ORDER BY t.code ASC LIMIT 20 OFFSET 40"
	if sql != want {
		t.Errorf("BuildPage() sql = %q, want %q", sql, want)
	}
}

func TestBuilder_BuildMax(t *testing.T) {
	sql, _ := query.NewBuilder(timberProjection(), byCode).BuildMax("ID")

	want := "SELECT COALESCE(MAX(t.id), 0) FROM public.timbers t"
	if sql != want {
		t.Errorf("BuildMax() sql = %q, want %q", sql, want)
	}
}

func TestBuilder_OrderByFields_DropsUnknown(t *testing.T) {
	sql, _ := query.NewBuilder(timberProjection(), byCode).
		OrderByFields(query.ParseSortFields("Name,-id; DROP TABLE timbers,-Code")).
		Build()

	want := "SELECT t.id, t.code, t.name, t.botanic_system_id FROM public.timbers t ORDER BY t.name ASC, t.code DESC"
	if sql != want {
		t.Errorf("Build() sql = %q, want %q", sql, want)
	}
}

func TestParseSortFields(t *testing.T) {
	got := query.ParseSortFields("Ordinal, -Year,,-")
	want := []query.SortField{{Field: "Ordinal"}, {Field: "Year", Descending: true}}

	if len(got) != len(want) {
		t.Fatalf("ParseSortFields() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseSortFields()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// Package verify checks rendered rewrites against a live engine.
//
// The catalog holds one probe per enumerated rewrite: every FLOOR unit,
// every interval qualifier, the single-value degeneracy cases, null
// ordering and LIMIT-based paging. Probes outside coverage are expected to
// fail at render time and never reach the database.
package verify

import (
	"github.com/leapstack-labs/sqlshim/pkg/core"
	"github.com/leapstack-labs/sqlshim/pkg/token"
)

// Probe is one query with its expected scalar outcome.
type Probe struct {
	Name      string
	Construct string
	Stmt      *core.SelectStmt

	Want            string
	WantNull        bool
	WantError       bool // the engine must reject the query
	WantUnsupported bool // rendering must fail with a coverage error
}

// Construct groups.
const (
	ConstructFloor       = "FLOOR"
	ConstructInterval    = "INTERVAL"
	ConstructSingleValue = "SINGLE_VALUE"
	ConstructNulls       = "NULLS"
	ConstructPaging      = "OFFSET/FETCH"
)

const (
	sampleTimestamp = "2024-05-15 13:45:30"
	sampleMidnight  = "2024-05-15 00:00:00"
)

// Catalog returns a fresh copy of every probe.
func Catalog() []Probe {
	var probes []Probe
	probes = append(probes, floorProbes()...)
	probes = append(probes, intervalProbes()...)
	probes = append(probes, singleValueProbes()...)
	probes = append(probes, nullsProbes()...)
	return probes
}

// Filter returns the probes whose Construct is in constructs. An empty
// list returns all probes.
func Filter(probes []Probe, constructs ...string) []Probe {
	if len(constructs) == 0 {
		return probes
	}
	want := make(map[string]bool, len(constructs))
	for _, c := range constructs {
		want[c] = true
	}
	var out []Probe
	for _, p := range probes {
		if want[p.Construct] {
			out = append(out, p)
		}
	}
	return out
}

func floorProbes() []Probe {
	cases := []struct {
		r    core.TimeUnitRange
		want string
	}{
		{core.RangeYear, "2024-01-01"},
		{core.RangeMonth, "2024-05-01"},
		{core.RangeWeek, "2024-05-13"},
		{core.RangeDay, "2024-05-15"},
		{core.RangeHour, "2024-05-15 13:00:00"},
		{core.RangeMinute, "2024-05-15 13:45:00"},
		{core.RangeSecond, "2024-05-15 13:45:30"},
	}

	probes := make([]Probe, 0, len(cases)+2)
	for _, c := range cases {
		probes = append(probes, Probe{
			Name:      "floor " + c.r.String(),
			Construct: ConstructFloor,
			Stmt:      selectOf(floorTo(c.r)),
			Want:      c.want,
		})
	}
	for _, r := range []core.TimeUnitRange{core.RangeQuarter, core.RangeMicrosecond} {
		probes = append(probes, Probe{
			Name:            "floor " + r.String(),
			Construct:       ConstructFloor,
			Stmt:            selectOf(floorTo(r)),
			WantUnsupported: true,
		})
	}
	return probes
}

func floorTo(r core.TimeUnitRange) core.Expr {
	return core.NewCall(core.OpFloor, core.NewString(sampleTimestamp), core.NewTimeUnit(r))
}

func intervalProbes() []Probe {
	cases := []struct {
		r     core.TimeUnitRange
		value string
		want  string
	}{
		{core.RangeYear, "1", "2025-05-15 00:00:00"},
		{core.RangeQuarter, "1", "2024-08-15 00:00:00"},
		{core.RangeMonth, "2", "2024-07-15 00:00:00"},
		{core.RangeWeek, "1", "2024-05-22 00:00:00"},
		{core.RangeDay, "3", "2024-05-18 00:00:00"},
		{core.RangeHour, "4", "2024-05-15 04:00:00"},
		{core.RangeMinute, "5", "2024-05-15 00:05:00"},
		{core.RangeSecond, "6", "2024-05-15 00:00:06"},
		{core.RangeMicrosecond, "7", "2024-05-15 00:00:00.000007"},
		{core.RangeYearToMonth, "1-2", "2025-07-15 00:00:00"},
		{core.RangeDayToHour, "1 2", "2024-05-16 02:00:00"},
		{core.RangeDayToMinute, "1 2:03", "2024-05-16 02:03:00"},
		{core.RangeDayToSecond, "1 2:03:04", "2024-05-16 02:03:04"},
		{core.RangeHourToMinute, "2:03", "2024-05-15 02:03:00"},
		{core.RangeHourToSecond, "2:03:04", "2024-05-15 02:03:04"},
		{core.RangeMinuteToSecond, "3:04", "2024-05-15 00:03:04"},
	}

	probes := make([]Probe, 0, len(cases)+2)
	for _, c := range cases {
		q := core.NewIntervalQualifier(c.r.Start, c.r.End)
		probes = append(probes, Probe{
			Name:      "interval " + c.r.String(),
			Construct: ConstructInterval,
			Stmt:      selectOf(dateAdd(c.value, q)),
			Want:      c.want,
		})
	}

	frac := core.NewIntervalQualifier(core.UnitSecond, core.UnitNone)
	frac.FractionalSecondPrecision = 3
	probes = append(probes,
		Probe{
			Name:            "interval SECOND fractional 3",
			Construct:       ConstructInterval,
			Stmt:            selectOf(dateAdd("1.5", frac)),
			WantUnsupported: true,
		},
		Probe{
			Name:            "interval MILLISECOND",
			Construct:       ConstructInterval,
			Stmt:            selectOf(dateAdd("1", core.NewIntervalQualifier(core.UnitMillisecond, core.UnitNone))),
			WantUnsupported: true,
		},
	)
	return probes
}

func dateAdd(value string, q *core.IntervalQualifier) core.Expr {
	return core.NewFuncCall("DATE_ADD",
		core.NewString(sampleMidnight),
		&core.IntervalLiteral{Value: value, Qualifier: q},
	)
}

func singleValueProbes() []Probe {
	x := core.NewColumn("", "x")
	one := &core.SelectCore{Columns: []core.SelectItem{{Expr: core.NewNumber("7"), Alias: "x"}}}

	empty := &core.SelectCore{
		Columns: []core.SelectItem{{Expr: core.NewNumber("7"), Alias: "x"}},
		Where:   &core.BinaryExpr{Left: core.NewNumber("1"), Op: token.EQ, Right: core.NewNumber("0")},
	}

	two := core.NewUnionAll(
		&core.SelectCore{Columns: []core.SelectItem{{Expr: core.NewNumber("1"), Alias: "x"}}},
		core.NewSelect(core.NewNumber("2")),
	)

	return []Probe{
		{
			Name:      "single value, one row",
			Construct: ConstructSingleValue,
			Stmt:      selectFrom(core.NewCall(core.OpSingleValue, x), statement(one)),
			Want:      "7",
		},
		{
			Name:      "single value, no rows",
			Construct: ConstructSingleValue,
			Stmt:      selectFrom(core.NewCall(core.OpSingleValue, x), statement(empty)),
			WantNull:  true,
		},
		{
			Name:      "single value, two rows",
			Construct: ConstructSingleValue,
			Stmt:      selectFrom(core.NewCall(core.OpSingleValue, x), two),
			WantError: true,
		},
	}
}

func nullsProbes() []Probe {
	nullsFirst, nullsLast := true, false
	cases := []struct {
		name   string
		desc   bool
		nulls  *bool
		offset bool
		want   string
	}{
		{name: "nulls first", nulls: &nullsFirst},
		{name: "nulls last", nulls: &nullsLast, want: "1"},
		{name: "desc nulls first", desc: true, nulls: &nullsFirst},
		{name: "desc nulls last", desc: true, nulls: &nullsLast, want: "1"},
		{name: "offset without fetch", nulls: &nullsLast, offset: true},
	}

	probes := make([]Probe, 0, len(cases))
	for _, c := range cases {
		x := core.NewColumn("", "x")
		rows := core.NewUnionAll(
			&core.SelectCore{Columns: []core.SelectItem{{Expr: core.NewNumber("1"), Alias: "x"}}},
			core.NewSelectNull(),
		)
		stmt := selectFrom(x, rows)
		sc := stmt.Body.Left
		sc.OrderBy = []core.OrderByItem{{Expr: x, Desc: c.desc, NullsFirst: c.nulls}}

		construct := ConstructNulls
		if c.offset {
			construct = ConstructPaging
			sc.Offset = core.NewNumber("1")
		} else {
			sc.Limit = core.NewNumber("1")
		}

		probes = append(probes, Probe{
			Name:      c.name,
			Construct: construct,
			Stmt:      stmt,
			Want:      c.want,
			WantNull:  c.want == "",
		})
	}
	return probes
}

func statement(sc *core.SelectCore) *core.SelectStmt {
	return &core.SelectStmt{Body: &core.SelectBody{Left: sc}}
}

func selectOf(e core.Expr) *core.SelectStmt {
	return statement(core.NewSelect(e))
}

func selectFrom(e core.Expr, src *core.SelectStmt) *core.SelectStmt {
	sc := core.NewSelect(e)
	sc.From = &core.FromClause{Source: &core.DerivedTable{Select: src, Alias: "t"}}
	return statement(sc)
}

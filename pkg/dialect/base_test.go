package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlshim/pkg/core"
	"github.com/leapstack-labs/sqlshim/pkg/dialect"
	"github.com/leapstack-labs/sqlshim/pkg/format"
)

func newStandard() *dialect.Base {
	return dialect.NewDialect("standard").WithReservedWords("order").Build()
}

func TestBase_Capabilities(t *testing.T) {
	d := newStandard()
	assert.Equal(t, "standard", d.Name())
	assert.True(t, d.SupportsCharSet())
	assert.False(t, d.RequiresAliasForFromItems())
	assert.True(t, d.SupportsAliasedValues())
	assert.True(t, d.SupportsNestedAggregations())
	assert.True(t, d.SupportsGroupByWithRollup())
	assert.True(t, d.SupportsNullsOrdering())
	assert.Equal(t, core.NullsHigh, d.NullCollation())
	assert.Equal(t, core.CalendarNull, d.CalendarPolicy())
}

func TestBase_BuilderCopiesConfig(t *testing.T) {
	cfg := &core.DialectConfig{Name: "copy", SupportsCharSet: true}
	d := dialect.New(cfg).Build()
	cfg.SupportsCharSet = false
	assert.True(t, d.SupportsCharSet())
}

func TestBase_Aggregates(t *testing.T) {
	d := dialect.NewDialect("agg").Aggregates("group_concat").Build()
	assert.True(t, d.IsAggregate("sum"))
	assert.True(t, d.IsAggregate("GROUP_CONCAT"))
	assert.False(t, d.IsAggregate("coalesce"))

	// Adding aggregates to one builder does not leak into another.
	assert.False(t, newStandard().IsAggregate("GROUP_CONCAT"))
}

func TestBase_QuoteIdentifierIfNeeded(t *testing.T) {
	d := newStandard()
	tests := []struct {
		in, want string
	}{
		{"amount", "amount"},
		{"_id", "_id"},
		{"order", `"order"`},
		{"ORDER", `"ORDER"`},
		{"1st", `"1st"`},
		{"EXPR$0", `"EXPR$0"`},
		{"has space", `"has space"`},
		{`say "hi"`, `"say ""hi"""`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, d.QuoteIdentifierIfNeeded(tt.in))
		})
	}
}

func TestBase_UnparseCall(t *testing.T) {
	d := newStandard()
	x := core.NewColumn("", "x")

	tests := []struct {
		name string
		call *core.CallExpr
		want string
	}{
		{"floor", core.NewCall(core.OpFloor, x), "FLOOR(x)"},
		{"floor to unit", core.NewCall(core.OpFloor, x, core.NewTimeUnit(core.RangeMonth)), "FLOOR(x TO MONTH)"},
		{"ceil to unit", core.NewCall(core.OpCeil, x, core.NewTimeUnit(core.RangeDay)), "CEIL(x TO DAY)"},
		{"desc", core.NewCall(core.OpDesc, x), "x DESC"},
		{"single value", core.NewCall(core.OpSingleValue, x), "SINGLE_VALUE(x)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := format.FormatExpr(tt.call, d)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBase_UnparseCall_FloorOperandCount(t *testing.T) {
	x := core.NewColumn("", "x")
	day := core.NewTimeUnit(core.RangeDay)

	tests := []struct {
		name string
		call *core.CallExpr
	}{
		{"floor no operands", core.NewCall(core.OpFloor)},
		{"floor three operands", core.NewCall(core.OpFloor, x, day, core.NewNumber("9"))},
		{"ceil three operands", core.NewCall(core.OpCeil, x, day, core.NewNumber("9"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := format.FormatExpr(tt.call, newStandard())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "expects 1 or 2 operands")
		})
	}
}

func TestBase_UnparseIntervalQualifier(t *testing.T) {
	d := newStandard()

	withPrec := func(start, end core.TimeUnit, startPrec, fracPrec int) *core.IntervalQualifier {
		q := core.NewIntervalQualifier(start, end)
		q.StartPrecision = startPrec
		q.FractionalSecondPrecision = fracPrec
		return q
	}

	tests := []struct {
		name string
		q    *core.IntervalQualifier
		want string
	}{
		{"single", core.NewIntervalQualifier(core.UnitDay, core.UnitNone), "INTERVAL '1' DAY"},
		{"range", core.NewIntervalQualifier(core.UnitDay, core.UnitHour), "INTERVAL '1' DAY TO HOUR"},
		{"start precision", withPrec(core.UnitDay, core.UnitNone, 3, -1), "INTERVAL '1' DAY(3)"},
		{"default start precision omitted", withPrec(core.UnitDay, core.UnitNone, 2, -1), "INTERVAL '1' DAY"},
		{"end fraction", withPrec(core.UnitDay, core.UnitSecond, 3, 6), "INTERVAL '1' DAY(3) TO SECOND(6)"},
		{"second both", withPrec(core.UnitSecond, core.UnitNone, 4, 6), "INTERVAL '1' SECOND(4, 6)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := format.FormatExpr(&core.IntervalLiteral{Value: "1", Qualifier: tt.q}, d)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBase_RewriteSingleValueIsIdentity(t *testing.T) {
	call := core.NewCall(core.OpSingleValue, core.NewColumn("", "x"))
	got, err := newStandard().RewriteSingleValue(call)
	require.NoError(t, err)
	assert.Same(t, call, got)
}

func TestBase_EmulateNullDirectionIsNative(t *testing.T) {
	assert.Nil(t, newStandard().EmulateNullDirection(core.NewColumn("", "x"), true, false))
}

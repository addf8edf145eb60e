package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeUnit_String(t *testing.T) {
	tests := []struct {
		unit TimeUnit
		want string
	}{
		{UnitYear, "YEAR"},
		{UnitQuarter, "QUARTER"},
		{UnitWeek, "WEEK"},
		{UnitMicrosecond, "MICROSECOND"},
		{UnitIsoDow, "ISODOW"},
		{UnitNone, "NONE"},
		{TimeUnit(99), "NONE"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.unit.String())
		})
	}
}

func TestParseTimeUnit(t *testing.T) {
	for _, u := range AllTimeUnits() {
		got, ok := ParseTimeUnit(u.String())
		require.True(t, ok, u.String())
		assert.Equal(t, u, got)
	}

	got, ok := ParseTimeUnit(" day ")
	assert.True(t, ok)
	assert.Equal(t, UnitDay, got)

	_, ok = ParseTimeUnit("fortnight")
	assert.False(t, ok)
}

func TestTimeUnitRange_String(t *testing.T) {
	assert.Equal(t, "DAY", RangeDay.String())
	assert.Equal(t, "DAY TO HOUR", RangeDayToHour.String())
	assert.Equal(t, "YEAR TO MONTH", RangeYearToMonth.String())
	assert.False(t, RangeDay.HasEnd())
	assert.True(t, RangeMinuteToSecond.HasEnd())
}

func TestIntervalQualifier_Defaults(t *testing.T) {
	q := NewIntervalQualifier(UnitDay, UnitSecond)
	assert.True(t, q.UseDefaultStartPrecision())
	assert.True(t, q.UseDefaultFractionalSecondPrecision())
	assert.Equal(t, RangeDayToSecond, q.Range)

	q.FractionalSecondPrecision = 3
	assert.False(t, q.UseDefaultFractionalSecondPrecision())
}

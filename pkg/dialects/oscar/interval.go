package oscar

import (
	"github.com/leapstack-labs/sqlshim/pkg/core"
	"github.com/leapstack-labs/sqlshim/pkg/dialect"
)

// intervalUnits are the interval start units Oscar accepts.
var intervalUnits = map[core.TimeUnit]struct{}{
	core.UnitMicrosecond: {},
	core.UnitSecond:      {},
	core.UnitMinute:      {},
	core.UnitHour:        {},
	core.UnitDay:         {},
	core.UnitWeek:        {},
	core.UnitMonth:       {},
	core.UnitQuarter:     {},
	core.UnitYear:        {},
}

// IsIntervalUnit reports whether u may start an Oscar interval qualifier.
func IsIntervalUnit(u core.TimeUnit) bool {
	_, ok := intervalUnits[u]
	return ok
}

// UnparseIntervalQualifier writes the MySQL-style unit keyword: DAY, or
// DAY_HOUR for a range. A range starting at SECOND collapses to SECOND.
//
// The value string of the literal is expected in the matching layout,
// e.g. 'DAYS HOURS' for DAY_HOUR or 'MINUTES:SECONDS' for MINUTE_SECOND.
func (d *Dialect) UnparseIntervalQualifier(w dialect.Writer, q *core.IntervalQualifier, _ dialect.TypeSystem) error {
	if !q.UseDefaultFractionalSecondPrecision() {
		return dialect.Unsupported(d.Name(), "fractional second precision", "")
	}

	start := q.Range.Start
	if !IsIntervalUnit(start) {
		return dialect.Unsupported(d.Name(), "interval unit", start.String())
	}

	if start == core.UnitSecond || !q.Range.HasEnd() {
		w.Keyword(start.String())
		return nil
	}
	w.Keyword(start.String() + "_" + q.Range.End.String())
	return nil
}

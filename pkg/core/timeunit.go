package core

import "strings"

// TimeUnit is a temporal granularity.
type TimeUnit int

// TimeUnit constants. UnitNone marks an absent end unit.
const (
	UnitNone TimeUnit = iota
	UnitYear
	UnitQuarter
	UnitMonth
	UnitWeek
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
	UnitMillisecond
	UnitMicrosecond
	UnitNanosecond
	UnitDow
	UnitDoy
	UnitIsoDow
	UnitIsoYear
	UnitEpoch
	UnitDecade
	UnitCentury
	UnitMillennium
)

var timeUnitNames = map[TimeUnit]string{
	UnitYear:        "YEAR",
	UnitQuarter:     "QUARTER",
	UnitMonth:       "MONTH",
	UnitWeek:        "WEEK",
	UnitDay:         "DAY",
	UnitHour:        "HOUR",
	UnitMinute:      "MINUTE",
	UnitSecond:      "SECOND",
	UnitMillisecond: "MILLISECOND",
	UnitMicrosecond: "MICROSECOND",
	UnitNanosecond:  "NANOSECOND",
	UnitDow:         "DOW",
	UnitDoy:         "DOY",
	UnitIsoDow:      "ISODOW",
	UnitIsoYear:     "ISOYEAR",
	UnitEpoch:       "EPOCH",
	UnitDecade:      "DECADE",
	UnitCentury:     "CENTURY",
	UnitMillennium:  "MILLENNIUM",
}

// String returns the SQL keyword for the unit.
func (u TimeUnit) String() string {
	if name, ok := timeUnitNames[u]; ok {
		return name
	}
	return "NONE"
}

// AllTimeUnits returns every unit the AST can carry, in declaration order.
func AllTimeUnits() []TimeUnit {
	units := make([]TimeUnit, 0, len(timeUnitNames))
	for u := UnitYear; u <= UnitMillennium; u++ {
		units = append(units, u)
	}
	return units
}

// ParseTimeUnit looks up a unit by its SQL keyword (case-insensitive).
func ParseTimeUnit(s string) (TimeUnit, bool) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for u, name := range timeUnitNames {
		if name == upper {
			return u, true
		}
	}
	return UnitNone, false
}

// TimeUnitRange is a start unit with an optional end unit, e.g. DAY TO HOUR.
type TimeUnitRange struct {
	Start TimeUnit
	End   TimeUnit // UnitNone when the range is a single unit
}

// Named ranges.
var (
	RangeYear           = TimeUnitRange{Start: UnitYear}
	RangeQuarter        = TimeUnitRange{Start: UnitQuarter}
	RangeMonth          = TimeUnitRange{Start: UnitMonth}
	RangeWeek           = TimeUnitRange{Start: UnitWeek}
	RangeDay            = TimeUnitRange{Start: UnitDay}
	RangeHour           = TimeUnitRange{Start: UnitHour}
	RangeMinute         = TimeUnitRange{Start: UnitMinute}
	RangeSecond         = TimeUnitRange{Start: UnitSecond}
	RangeMicrosecond    = TimeUnitRange{Start: UnitMicrosecond}
	RangeYearToMonth    = TimeUnitRange{Start: UnitYear, End: UnitMonth}
	RangeDayToHour      = TimeUnitRange{Start: UnitDay, End: UnitHour}
	RangeDayToMinute    = TimeUnitRange{Start: UnitDay, End: UnitMinute}
	RangeDayToSecond    = TimeUnitRange{Start: UnitDay, End: UnitSecond}
	RangeHourToMinute   = TimeUnitRange{Start: UnitHour, End: UnitMinute}
	RangeHourToSecond   = TimeUnitRange{Start: UnitHour, End: UnitSecond}
	RangeMinuteToSecond = TimeUnitRange{Start: UnitMinute, End: UnitSecond}
)

// RangeOf builds a range; pass UnitNone as end for a single unit.
func RangeOf(start, end TimeUnit) TimeUnitRange {
	return TimeUnitRange{Start: start, End: end}
}

// HasEnd reports whether the range has an end unit.
func (r TimeUnitRange) HasEnd() bool {
	return r.End != UnitNone
}

// String renders the range in standard SQL form ("DAY" or "DAY TO HOUR").
func (r TimeUnitRange) String() string {
	if !r.HasEnd() {
		return r.Start.String()
	}
	return r.Start.String() + " TO " + r.End.String()
}

// PrecisionUnspecified marks a precision the query did not set.
const PrecisionUnspecified = -1

// IntervalQualifier is the unit part of an INTERVAL literal or type.
type IntervalQualifier struct {
	Range                     TimeUnitRange
	StartPrecision            int
	FractionalSecondPrecision int
}

// NewIntervalQualifier returns a qualifier with default precisions.
func NewIntervalQualifier(start, end TimeUnit) *IntervalQualifier {
	return &IntervalQualifier{
		Range:                     RangeOf(start, end),
		StartPrecision:            PrecisionUnspecified,
		FractionalSecondPrecision: PrecisionUnspecified,
	}
}

// UseDefaultStartPrecision reports whether the start precision was left unset.
func (q *IntervalQualifier) UseDefaultStartPrecision() bool {
	return q.StartPrecision == PrecisionUnspecified
}

// UseDefaultFractionalSecondPrecision reports whether the fractional second
// precision was left unset.
func (q *IntervalQualifier) UseDefaultFractionalSecondPrecision() bool {
	return q.FractionalSecondPrecision == PrecisionUnspecified
}

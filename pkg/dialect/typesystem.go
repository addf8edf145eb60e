package dialect

import "github.com/leapstack-labs/sqlshim/pkg/core"

// TypeSystem reports precision limits per type category.
// Implementations must be total: every core.TypeName has an answer.
type TypeSystem interface {
	// MaxPrecision is the largest precision the engine accepts.
	MaxPrecision(t core.TypeName) int
	// DefaultPrecision is the precision assumed when a type omits it.
	DefaultPrecision(t core.TypeName) int
}

// PrecisionNotApplicable is returned for categories that carry no precision.
const PrecisionNotApplicable = -1

// Standard limits shared by most engines.
const (
	MaxCharLength             = 65536
	MaxNumericPrecision       = 19
	MaxDatetimePrecision      = 3
	MaxIntervalStartPrecision = 10
	DefaultIntervalPrecision  = 2
)

// DefaultTypeSystem is the standard precision policy. Dialects wrap it and
// override the categories their engine limits differently.
type DefaultTypeSystem struct{}

// MaxPrecision returns the standard maximum precision for t.
func (DefaultTypeSystem) MaxPrecision(t core.TypeName) int {
	switch t {
	case core.TypeChar, core.TypeVarchar, core.TypeBinary, core.TypeVarbinary:
		return MaxCharLength
	case core.TypeDecimal:
		return MaxNumericPrecision
	case core.TypeTime, core.TypeTimestamp:
		return MaxDatetimePrecision
	case core.TypeIntervalYearMonth, core.TypeIntervalDayTime:
		return MaxIntervalStartPrecision
	default:
		return DefaultTypeSystem{}.DefaultPrecision(t)
	}
}

// DefaultPrecision returns the standard implied precision for t.
func (DefaultTypeSystem) DefaultPrecision(t core.TypeName) int {
	switch t {
	case core.TypeChar, core.TypeBinary:
		return 1
	case core.TypeVarchar, core.TypeVarbinary:
		return PrecisionNotApplicable
	case core.TypeDecimal:
		return MaxNumericPrecision
	case core.TypeIntervalYearMonth, core.TypeIntervalDayTime:
		return DefaultIntervalPrecision
	case core.TypeBoolean:
		return 1
	case core.TypeTinyInt:
		return 3
	case core.TypeSmallInt:
		return 5
	case core.TypeInteger:
		return 10
	case core.TypeBigInt:
		return 19
	case core.TypeReal:
		return 7
	case core.TypeFloat, core.TypeDouble:
		return 15
	case core.TypeDate, core.TypeTime, core.TypeTimestamp:
		return 0
	default:
		return PrecisionNotApplicable
	}
}

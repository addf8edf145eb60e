package oscar

import (
	"github.com/leapstack-labs/sqlshim/pkg/core"
	"github.com/leapstack-labs/sqlshim/pkg/dialect"
)

// Oscar precision limits that differ from the standard ones.
const (
	MaxCharPrecision      = 255
	MaxVarcharPrecision   = 8000
	MaxTimestampPrecision = 6
)

// TypeSystem is Oscar's precision policy: CHAR, VARCHAR and TIMESTAMP are
// capped lower than standard; every other category uses the standard limit.
type TypeSystem struct {
	dialect.DefaultTypeSystem
}

// MaxPrecision returns the largest precision Oscar accepts for t.
func (ts TypeSystem) MaxPrecision(t core.TypeName) int {
	switch t {
	case core.TypeChar:
		return MaxCharPrecision
	case core.TypeVarchar:
		return MaxVarcharPrecision
	case core.TypeTimestamp:
		return MaxTimestampPrecision
	default:
		return ts.DefaultTypeSystem.MaxPrecision(t)
	}
}

package dialect

import "github.com/leapstack-labs/sqlshim/pkg/core"

// EmulateNullDirectionWithIsNull builds the extra sort key that forces NULLs
// to the requested end for engines without NULLS FIRST / NULLS LAST.
//
// It returns nil when collation already produces the requested order.
// Otherwise it returns `e IS NULL`, wrapped in DESC when NULLs must come
// first (IS NULL is 1 for NULL rows, so ascending puts them last).
func EmulateNullDirectionWithIsNull(collation core.NullCollation, e core.Expr, nullsFirst, desc bool) core.Expr {
	if collation.IsDefaultOrder(nullsFirst, desc) {
		return nil
	}
	var key core.Expr = core.NewIsNull(e)
	if nullsFirst {
		key = core.NewCall(core.OpDesc, key)
	}
	return key
}

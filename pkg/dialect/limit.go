package dialect

import (
	"github.com/leapstack-labs/sqlshim/pkg/core"
	"github.com/leapstack-labs/sqlshim/pkg/token"
)

// MaxRowCount is the LIMIT row count meaning "all remaining rows", used when
// only an offset is given (the largest unsigned 64-bit integer).
const MaxRowCount = "18446744073709551615"

// UnparseFetchUsingLimit writes LIMIT [offset, ]fetch for engines that follow
// the MySQL row-limiting syntax. Nothing is written when both are nil.
func UnparseFetchUsingLimit(w Writer, offset, fetch core.Expr) error {
	if offset == nil && fetch == nil {
		return nil
	}

	w.Keyword(token.LIMIT.String())
	if offset != nil {
		if err := w.Expr(offset, PrecedenceNone, PrecedenceNone); err != nil {
			return err
		}
		w.Sep(",")
	}
	if fetch == nil {
		w.Print(MaxRowCount)
		return nil
	}
	return w.Expr(fetch, PrecedenceNone, PrecedenceNone)
}

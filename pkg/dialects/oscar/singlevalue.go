package oscar

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/sqlshim/pkg/core"
)

// RewriteSingleValue replaces SINGLE_VALUE(x) with
//
//	CASE COUNT(x)
//	WHEN 0 THEN NULL
//	WHEN 1 THEN x
//	ELSE (SELECT NULL UNION ALL SELECT NULL)
//	END
//
// The ELSE branch is a scalar subquery returning two rows, so a group with
// more than one row fails at execution time as SINGLE_VALUE requires.
func (d *Dialect) RewriteSingleValue(call *core.CallExpr) (core.Expr, error) {
	operand := call.Operand(0)
	if operand == nil {
		return nil, fmt.Errorf("oscar: %s requires one operand", call.Kind)
	}

	rewritten := core.NewCase(
		core.NewFuncCall("COUNT", operand),
		[]core.Expr{core.NewNumber("0"), core.NewNumber("1")},
		[]core.Expr{core.NewNull(), operand},
		core.NewScalarQuery(core.NewUnionAll(core.NewSelectNull(), core.NewSelectNull())),
	)

	d.logger.Debug("SINGLE_VALUE rewritten into CASE COUNT",
		slog.String("dialect", d.Name()),
		slog.String("operand", fmt.Sprintf("%T", operand)))
	return rewritten, nil
}

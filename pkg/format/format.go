package format

import (
	"strings"

	"github.com/leapstack-labs/sqlshim/pkg/core"
	"github.com/leapstack-labs/sqlshim/pkg/dialect"
)

// Format renders a statement for dialect d.
// Any construct outside the dialect's coverage aborts rendering and the
// returned error satisfies errors.Is(err, dialect.ErrUnsupported).
func Format(stmt *core.SelectStmt, d dialect.Dialect) (string, error) {
	if d == nil {
		return "", dialect.ErrDialectRequired
	}
	p := newPrinter(d)
	p.formatSelectStmt(stmt)
	if p.err != nil {
		return "", p.err
	}
	return p.String(), nil
}

// FormatExpr renders a single expression on one line.
func FormatExpr(e core.Expr, d dialect.Dialect) (string, error) {
	if d == nil {
		return "", dialect.ErrDialectRequired
	}
	p := newPrinter(d)
	p.inline++
	p.formatExpr(e)
	if p.err != nil {
		return "", p.err
	}
	return strings.TrimSpace(p.output.String()), nil
}

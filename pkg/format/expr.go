package format

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/sqlshim/pkg/core"
	"github.com/leapstack-labs/sqlshim/pkg/dialect"
	"github.com/leapstack-labs/sqlshim/pkg/token"
)

func (p *Printer) formatExpr(e core.Expr) {
	p.formatExprPrec(e, dialect.PrecedenceNone, dialect.PrecedenceNone)
}

// formatExprPrec formats e between operators binding leftPrec and rightPrec.
// Binding strengths are doubled so left-associative operators can tell their
// left operand (2*prec) from their right one (2*prec+1).
func (p *Printer) formatExprPrec(e core.Expr, leftPrec, rightPrec int) {
	if e == nil || p.err != nil {
		return
	}

	switch expr := e.(type) {
	case *core.Literal:
		p.formatLiteral(expr)
	case *core.ColumnRef:
		p.formatColumnRef(expr)
	case *core.BinaryExpr:
		p.formatBinaryExpr(expr, leftPrec, rightPrec)
	case *core.UnaryExpr:
		p.formatUnaryExpr(expr)
	case *core.FuncCall:
		p.formatFuncCall(expr)
	case *core.CallExpr:
		p.formatCallExpr(expr, leftPrec, rightPrec)
	case *core.TimeUnitLiteral:
		p.formatTimeUnit(expr)
	case *core.IntervalLiteral:
		p.formatIntervalLiteral(expr)
	case *core.CaseExpr:
		p.formatCaseExpr(expr)
	case *core.CastExpr:
		p.formatCastExpr(expr)
	case *core.IsNullExpr:
		p.formatIsNullExpr(expr, leftPrec, rightPrec)
	case *core.ParenExpr:
		p.formatParenExpr(expr)
	case *core.SubqueryExpr:
		p.formatSubqueryExpr(expr)
	case *core.StarExpr:
		p.formatStarExpr(expr)
	default:
		p.fail(fmt.Errorf("format: unexpected expression %T", e))
	}
}

func (p *Printer) formatLiteral(lit *core.Literal) {
	switch lit.Type {
	case core.LiteralString:
		p.write(quoteString(lit.Value))
	case core.LiteralBool:
		if b, _ := strconv.ParseBool(lit.Value); b {
			p.kw(token.TRUE)
		} else {
			p.kw(token.FALSE)
		}
	case core.LiteralNull:
		p.kw(token.NULL)
	default:
		p.write(lit.Value)
	}
}

func (p *Printer) formatColumnRef(col *core.ColumnRef) {
	if col.Table != "" {
		p.write(p.dialect.QuoteIdentifierIfNeeded(col.Table))
		p.write(".")
	}
	p.write(p.dialect.QuoteIdentifierIfNeeded(col.Column))
}

func (p *Printer) formatBinaryExpr(expr *core.BinaryExpr, leftPrec, rightPrec int) {
	prec := dialect.Precedence(expr.Op)
	opLeft, opRight := 2*prec, 2*prec+1

	parens := leftPrec > opLeft || (rightPrec != 0 && opRight <= rightPrec)
	if parens {
		p.write("(")
		leftPrec, rightPrec = dialect.PrecedenceNone, dialect.PrecedenceNone
	}

	p.formatExprPrec(expr.Left, leftPrec, opLeft)
	p.space()
	p.kw(expr.Op)
	p.space()
	p.formatExprPrec(expr.Right, opRight, rightPrec)

	if parens {
		p.write(")")
	}
}

func (p *Printer) formatUnaryExpr(expr *core.UnaryExpr) {
	p.kw(expr.Op)
	unary := 2 * dialect.PrecedenceUnary
	if expr.Op == token.NOT {
		p.space()
		unary = 2 * dialect.PrecedenceNot
	}
	p.formatExprPrec(expr.Expr, unary+1, dialect.PrecedenceNone)
}

func (p *Printer) formatFuncCall(fn *core.FuncCall) {
	agg := p.dialect.IsAggregate(fn.Name)
	if agg {
		p.enterAggregate(fn.Name)
		defer p.exitAggregate()
	}

	p.write(fn.Name)
	p.write("(")

	if fn.Distinct {
		p.kw(token.DISTINCT)
		p.space()
	}

	if fn.Star {
		p.write("*")
	} else {
		p.formatList(len(fn.Args), func(i int) { p.formatExpr(fn.Args[i]) }, ",", false)
	}

	p.write(")")
}

func (p *Printer) enterAggregate(name string) {
	if p.aggDepth > 0 && !p.dialect.SupportsNestedAggregations() {
		p.fail(dialect.Unsupported(p.dialect.Name(), "nested aggregation", name))
	}
	p.aggDepth++
}

func (p *Printer) exitAggregate() {
	p.aggDepth--
}

// formatCallExpr hands operator calls to the dialect. SINGLE_VALUE is offered
// to the dialect's rewriter first; a replacement expression is formatted in
// its place.
func (p *Printer) formatCallExpr(call *core.CallExpr, leftPrec, rightPrec int) {
	if call.Kind == core.OpSingleValue {
		rewritten, err := p.dialect.RewriteSingleValue(call)
		if err != nil {
			p.fail(err)
			return
		}
		if rewritten != core.Expr(call) {
			p.formatExprPrec(rewritten, leftPrec, rightPrec)
			return
		}
	}

	if call.Kind.IsAggregate() {
		p.enterAggregate(call.Kind.String())
		defer p.exitAggregate()
	}

	p.fail(p.dialect.UnparseCall(p, call, leftPrec, rightPrec))
}

func (p *Printer) formatTimeUnit(u *core.TimeUnitLiteral) {
	if u.Range.HasEnd() {
		p.keyword(u.Range.String())
		return
	}
	p.keyword(u.Range.Start.String())
}

func (p *Printer) formatIntervalLiteral(iv *core.IntervalLiteral) {
	p.kw(token.INTERVAL)
	p.space()
	if iv.Negative {
		p.write("-")
	}
	p.write(quoteString(iv.Value))
	if iv.Qualifier != nil {
		p.fail(p.dialect.UnparseIntervalQualifier(p, iv.Qualifier, p.dialect.TypeSystem()))
	}
}

func (p *Printer) formatCaseExpr(c *core.CaseExpr) {
	p.kw(token.CASE)

	if c.Operand != nil {
		p.space()
		p.formatExpr(c.Operand)
	}

	for _, w := range c.Whens {
		p.space()
		p.kw(token.WHEN)
		p.space()
		p.formatExpr(w.Condition)
		p.space()
		p.kw(token.THEN)
		p.space()
		p.formatExpr(w.Result)
	}

	if c.Else != nil {
		p.space()
		p.kw(token.ELSE)
		p.space()
		p.formatExpr(c.Else)
	}

	p.space()
	p.kw(token.END)
}

func (p *Printer) formatCastExpr(c *core.CastExpr) {
	p.kw(token.CAST)
	p.write("(")
	p.formatExpr(c.Expr)
	p.space()
	p.kw(token.AS)
	p.space()
	p.formatDataType(c.Type)
	p.write(")")
}

// formatDataType writes a type, clamping precision to the dialect maximum
// and dropping CHARACTER SET where the dialect has none.
func (p *Printer) formatDataType(dt *core.DataType) {
	if dt == nil {
		p.fail(fmt.Errorf("format: CAST without target type"))
		return
	}
	p.write(dt.Name.String())

	if dt.Precision != core.PrecisionUnspecified {
		prec := dt.Precision
		if maxPrec := p.dialect.TypeSystem().MaxPrecision(dt.Name); maxPrec > 0 && prec > maxPrec {
			prec = maxPrec
		}
		if dt.Scale != core.PrecisionUnspecified {
			p.write(fmt.Sprintf("(%d, %d)", prec, dt.Scale))
		} else {
			p.write(fmt.Sprintf("(%d)", prec))
		}
	}

	if dt.CharSet != "" && dt.Name.HasCharSet() && p.dialect.SupportsCharSet() {
		p.space()
		p.kw(token.CHARACTER, token.SET)
		p.space()
		p.write(p.dialect.QuoteIdentifier(dt.CharSet))
	}
}

func (p *Printer) formatIsNullExpr(is *core.IsNullExpr, leftPrec, rightPrec int) {
	prec := 2 * dialect.PrecedenceComparison
	parens := leftPrec > prec || (rightPrec != 0 && prec+1 <= rightPrec)
	if parens {
		p.write("(")
	}
	p.formatExprPrec(is.Expr, dialect.PrecedenceNone, prec)
	p.space()
	p.kw(token.IS)
	if is.Not {
		p.space()
		p.kw(token.NOT)
	}
	p.space()
	p.kw(token.NULL)
	if parens {
		p.write(")")
	}
}

func (p *Printer) formatParenExpr(paren *core.ParenExpr) {
	p.write("(")
	p.formatExpr(paren.Expr)
	p.write(")")
}

// formatSubqueryExpr writes a scalar subquery on a single line.
func (p *Printer) formatSubqueryExpr(sq *core.SubqueryExpr) {
	saved := p.aggDepth
	p.aggDepth = 0
	p.inline++

	p.write("(")
	p.formatSelectStmt(sq.Select)
	p.pendingSpace = false
	p.write(")")

	p.inline--
	p.aggDepth = saved
}

func (p *Printer) formatStarExpr(star *core.StarExpr) {
	if star.Table != "" {
		p.write(p.dialect.QuoteIdentifierIfNeeded(star.Table))
		p.write(".")
	}
	p.write("*")
}

package core

// ---------- Expression Constructors ----------
// Rewrites build replacement trees out of these instead of struct literals so
// the shape of common fragments stays in one place.

// NewNull returns the NULL literal.
func NewNull() *Literal {
	return &Literal{Type: LiteralNull, Value: "NULL"}
}

// NewNumber returns an exact numeric literal.
func NewNumber(v string) *Literal {
	return &Literal{Type: LiteralNumber, Value: v}
}

// NewString returns a character string literal.
func NewString(v string) *Literal {
	return &Literal{Type: LiteralString, Value: v}
}

// NewFuncCall returns NAME(args...).
func NewFuncCall(name string, args ...Expr) *FuncCall {
	return &FuncCall{Name: name, Args: args}
}

// NewCall returns an operator call of the given kind.
func NewCall(kind OpKind, operands ...Expr) *CallExpr {
	return &CallExpr{Kind: kind, Operands: operands}
}

// NewCase returns CASE operand WHEN w[i] THEN t[i] ... ELSE e END.
// whens and thens must have equal length.
func NewCase(operand Expr, whens, thens []Expr, elseExpr Expr) *CaseExpr {
	c := &CaseExpr{Operand: operand, Else: elseExpr}
	for i := range whens {
		c.Whens = append(c.Whens, WhenClause{Condition: whens[i], Result: thens[i]})
	}
	return c
}

// NewSelect returns SELECT items... with no FROM clause.
func NewSelect(items ...Expr) *SelectCore {
	core := &SelectCore{}
	for _, e := range items {
		core.Columns = append(core.Columns, SelectItem{Expr: e})
	}
	return core
}

// NewUnionAll returns left UNION ALL right as a statement.
func NewUnionAll(left, right *SelectCore) *SelectStmt {
	return &SelectStmt{
		Body: &SelectBody{
			Left:  left,
			Op:    SetOpUnionAll,
			Right: &SelectBody{Left: right},
		},
	}
}

// NewScalarQuery wraps a statement as a scalar subquery expression.
func NewScalarQuery(stmt *SelectStmt) *SubqueryExpr {
	return &SubqueryExpr{Select: stmt}
}

// NewTimeUnit returns the symbol literal for a unit range.
func NewTimeUnit(r TimeUnitRange) *TimeUnitLiteral {
	return &TimeUnitLiteral{Range: r}
}

// NewColumn returns an optionally qualified column reference.
func NewColumn(table, column string) *ColumnRef {
	return &ColumnRef{Table: table, Column: column}
}

// NewSelectNull returns SELECT NULL.
func NewSelectNull() *SelectCore {
	return NewSelect(NewNull())
}

// NewIsNull returns expr IS NULL.
func NewIsNull(e Expr) *IsNullExpr {
	return &IsNullExpr{Expr: e}
}

package core

import "github.com/leapstack-labs/sqlshim/pkg/token"

// ---------- Expression Types ----------

// ColumnRef represents a column reference (possibly qualified).
type ColumnRef struct {
	Table  string // optional table/alias qualifier
	Column string
}

func (*ColumnRef) node()     {}
func (*ColumnRef) exprNode() {}

// Literal represents a literal value.
type Literal struct {
	Type  LiteralType
	Value string
}

func (*Literal) node()     {}
func (*Literal) exprNode() {}

// LiteralType represents the type of a literal.
type LiteralType int

// LiteralType constants for SQL literal value types.
const (
	LiteralNumber LiteralType = iota
	LiteralString
	LiteralBool
	LiteralNull
)

// BinaryExpr represents a binary expression.
type BinaryExpr struct {
	Left  Expr
	Op    token.TokenType
	Right Expr
}

func (*BinaryExpr) node()     {}
func (*BinaryExpr) exprNode() {}

// UnaryExpr represents a unary expression.
type UnaryExpr struct {
	Op   token.TokenType
	Expr Expr
}

func (*UnaryExpr) node()     {}
func (*UnaryExpr) exprNode() {}

// FuncCall represents a plain function call rendered as NAME(args).
type FuncCall struct {
	Name     string
	Distinct bool
	Args     []Expr
	Star     bool // COUNT(*)
}

func (*FuncCall) node()     {}
func (*FuncCall) exprNode() {}

// CallExpr is an operator application whose rendering is owned by the dialect.
// Dialects intercept calls by Kind in UnparseCall; the operand slice is never
// mutated by a dialect.
type CallExpr struct {
	Kind     OpKind
	Operands []Expr
}

func (*CallExpr) node()     {}
func (*CallExpr) exprNode() {}

// OperandCount returns the number of operands.
func (c *CallExpr) OperandCount() int { return len(c.Operands) }

// Operand returns the i-th operand, or nil when out of range.
func (c *CallExpr) Operand(i int) Expr {
	if i < 0 || i >= len(c.Operands) {
		return nil
	}
	return c.Operands[i]
}

// OpKind identifies the operator of a CallExpr.
type OpKind int

// OpKind constants.
const (
	OpUnknown OpKind = iota
	// OpFloor is FLOOR(x) or FLOOR(x TO unit).
	OpFloor
	// OpCeil is CEIL(x) or CEIL(x TO unit).
	OpCeil
	// OpSingleValue asserts its group has at most one row and returns that row's value.
	OpSingleValue
	// OpDesc marks a sort key as descending. Only valid inside ORDER BY.
	OpDesc
)

// String returns the operator name.
func (k OpKind) String() string {
	switch k {
	case OpFloor:
		return "FLOOR"
	case OpCeil:
		return "CEIL"
	case OpSingleValue:
		return "SINGLE_VALUE"
	case OpDesc:
		return "DESC"
	default:
		return "UNKNOWN"
	}
}

// IsAggregate reports whether the operator is an aggregate.
func (k OpKind) IsAggregate() bool {
	return k == OpSingleValue
}

// TimeUnitLiteral is a symbol literal naming a time unit range,
// e.g. the DAY in FLOOR(ts TO DAY).
type TimeUnitLiteral struct {
	Range TimeUnitRange
}

func (*TimeUnitLiteral) node()     {}
func (*TimeUnitLiteral) exprNode() {}

// IntervalLiteral represents INTERVAL '<value>' <qualifier>.
type IntervalLiteral struct {
	Negative  bool
	Value     string
	Qualifier *IntervalQualifier
}

func (*IntervalLiteral) node()     {}
func (*IntervalLiteral) exprNode() {}

// CaseExpr represents a CASE expression.
type CaseExpr struct {
	Operand Expr // CASE operand WHEN... (optional)
	Whens   []WhenClause
	Else    Expr
}

func (*CaseExpr) node()     {}
func (*CaseExpr) exprNode() {}

// WhenClause represents a WHEN clause in CASE expression.
type WhenClause struct {
	Condition Expr
	Result    Expr
}

// CastExpr represents a CAST expression.
type CastExpr struct {
	Expr Expr
	Type *DataType
}

func (*CastExpr) node()     {}
func (*CastExpr) exprNode() {}

// IsNullExpr represents an IS NULL expression.
type IsNullExpr struct {
	Expr Expr
	Not  bool
}

func (*IsNullExpr) node()     {}
func (*IsNullExpr) exprNode() {}

// ParenExpr represents a parenthesized expression.
type ParenExpr struct {
	Expr Expr
}

func (*ParenExpr) node()     {}
func (*ParenExpr) exprNode() {}

// StarExpr represents a * expression (for SELECT *).
type StarExpr struct {
	Table string // optional table qualifier for t.*
}

func (*StarExpr) node()     {}
func (*StarExpr) exprNode() {}

// SubqueryExpr represents a scalar subquery used as an expression.
type SubqueryExpr struct {
	Select *SelectStmt
}

func (*SubqueryExpr) node()     {}
func (*SubqueryExpr) exprNode() {}

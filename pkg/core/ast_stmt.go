package core

// ---------- Statement Types ----------

// SelectStmt represents a complete SELECT statement.
type SelectStmt struct {
	Body *SelectBody
}

func (*SelectStmt) node()     {}
func (*SelectStmt) stmtNode() {}

// SelectBody represents the body of a SELECT with possible set operations.
type SelectBody struct {
	Left  *SelectCore
	Op    SetOpType   // UNION, UNION ALL, INTERSECT, EXCEPT, or empty
	Right *SelectBody // For chained set operations
}

// SetOpType represents the type of set operation.
type SetOpType string

// SetOpType constants for set operations in queries.
const (
	SetOpNone      SetOpType = ""
	SetOpUnion     SetOpType = "UNION"
	SetOpUnionAll  SetOpType = "UNION ALL"
	SetOpIntersect SetOpType = "INTERSECT"
	SetOpExcept    SetOpType = "EXCEPT"
)

// SelectCore represents the core SELECT clause.
type SelectCore struct {
	Distinct bool
	Columns  []SelectItem
	From     *FromClause
	Where    Expr
	GroupBy  []Expr
	Rollup   bool // GROUP BY ROLLUP(...)
	Having   Expr
	OrderBy  []OrderByItem
	Limit    Expr // FETCH count
	Offset   Expr
}

// SelectItem represents an item in the SELECT list.
type SelectItem struct {
	Star  bool   // SELECT *
	Expr  Expr   // Expression
	Alias string // AS alias
}

// FromClause represents the FROM clause.
type FromClause struct {
	Source TableRef
	Joins  []*Join
}

// Join represents a JOIN clause.
type Join struct {
	Type      JoinType
	Right     TableRef
	Condition Expr // ON clause
}

// JoinType is the SQL keyword prefix of a join (e.g. "LEFT").
type JoinType string

// JoinType constants.
const (
	JoinInner JoinType = "INNER"
	JoinLeft  JoinType = "LEFT"
	JoinRight JoinType = "RIGHT"
	JoinCross JoinType = "CROSS"
)

// OrderByItem represents an item in ORDER BY clause.
type OrderByItem struct {
	Expr       Expr
	Desc       bool
	NullsFirst *bool // nil means default, true = NULLS FIRST, false = NULLS LAST
}

// ---------- Table Reference Types ----------

// TableName represents a table name reference.
type TableName struct {
	Schema string
	Name   string
	Alias  string
}

func (*TableName) node()         {}
func (*TableName) tableRefNode() {}

// DerivedTable represents a subquery in FROM clause.
type DerivedTable struct {
	Select *SelectStmt
	Alias  string
}

func (*DerivedTable) node()         {}
func (*DerivedTable) tableRefNode() {}

// ValuesTable represents (VALUES (...), (...)) AS alias(col, ...) in FROM.
type ValuesTable struct {
	Rows    [][]Expr
	Alias   string
	Columns []string
}

func (*ValuesTable) node()         {}
func (*ValuesTable) tableRefNode() {}

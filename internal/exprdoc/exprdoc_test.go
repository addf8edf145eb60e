package exprdoc

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/sqlshim/pkg/core"
	"github.com/leapstack-labs/sqlshim/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func decodeExpr(t *testing.T, src string) (core.Expr, error) {
	t.Helper()
	var n yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &n))
	require.Len(t, n.Content, 1)
	doc := ExprDoc{node: n.Content[0]}
	return doc.Expr("expr")
}

func TestExprDoc_Expr(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want core.Expr
	}{
		{
			name: "bare column",
			src:  "order_ts",
			want: core.NewColumn("", "order_ts"),
		},
		{
			name: "qualified column",
			src:  "{col: o.order_ts}",
			want: core.NewColumn("o", "order_ts"),
		},
		{
			name: "bare number",
			src:  "42",
			want: core.NewNumber("42"),
		},
		{
			name: "bare null",
			src:  "~",
			want: core.NewNull(),
		},
		{
			name: "string literal",
			src:  "{str: 'it''s'}",
			want: core.NewString("it's"),
		},
		{
			name: "bool literal",
			src:  "{bool: true}",
			want: &core.Literal{Type: core.LiteralBool, Value: "true"},
		},
		{
			name: "qualified star",
			src:  "{star: o}",
			want: &core.StarExpr{Table: "o"},
		},
		{
			name: "floor to unit",
			src:  "{floor: ts, to: month}",
			want: core.NewCall(core.OpFloor, core.NewColumn("", "ts"), core.NewTimeUnit(core.RangeMonth)),
		},
		{
			name: "floor without unit",
			src:  "{floor: {num: 1.5}}",
			want: core.NewCall(core.OpFloor, core.NewNumber("1.5")),
		},
		{
			name: "ceil to range",
			src:  "{ceil: ts, to: DAY TO HOUR}",
			want: core.NewCall(core.OpCeil, core.NewColumn("", "ts"), core.NewTimeUnit(core.RangeDayToHour)),
		},
		{
			name: "single value",
			src:  "{single_value: x}",
			want: core.NewCall(core.OpSingleValue, core.NewColumn("", "x")),
		},
		{
			name: "binary operator folds left",
			src:  "{op: and, args: [a, b, c]}",
			want: &core.BinaryExpr{
				Left:  &core.BinaryExpr{Left: core.NewColumn("", "a"), Op: token.AND, Right: core.NewColumn("", "b")},
				Op:    token.AND,
				Right: core.NewColumn("", "c"),
			},
		},
		{
			name: "unary minus",
			src:  "{op: '-', args: [a]}",
			want: &core.UnaryExpr{Op: token.MINUS, Expr: core.NewColumn("", "a")},
		},
		{
			name: "count star",
			src:  "{func: count, star: true}",
			want: &core.FuncCall{Name: "COUNT", Star: true},
		},
		{
			name: "distinct function",
			src:  "{func: sum, distinct: true, args: [amount]}",
			want: &core.FuncCall{Name: "SUM", Distinct: true, Args: []core.Expr{core.NewColumn("", "amount")}},
		},
		{
			name: "interval with precisions",
			src:  "{interval: {value: '1 2:03', unit: day to minute, precision: 3}}",
			want: &core.IntervalLiteral{
				Value: "1 2:03",
				Qualifier: &core.IntervalQualifier{
					Range:                     core.RangeDayToMinute,
					StartPrecision:            3,
					FractionalSecondPrecision: core.PrecisionUnspecified,
				},
			},
		},
		{
			name: "negative interval",
			src:  "{interval: {value: '5', unit: SECOND, negative: true}}",
			want: &core.IntervalLiteral{
				Negative:  true,
				Value:     "5",
				Qualifier: core.NewIntervalQualifier(core.UnitSecond, core.UnitNone),
			},
		},
		{
			name: "case with operand",
			src:  "{case: {operand: n, when: [{if: 0, then: {null: true}}], else: n}}",
			want: &core.CaseExpr{
				Operand: core.NewColumn("", "n"),
				Whens:   []core.WhenClause{{Condition: core.NewNumber("0"), Result: core.NewNull()}},
				Else:    core.NewColumn("", "n"),
			},
		},
		{
			name: "cast with charset",
			src:  "{cast: name, type: varchar(20), charset: utf8}",
			want: &core.CastExpr{
				Expr: core.NewColumn("", "name"),
				Type: &core.DataType{Name: core.TypeVarchar, Precision: 20, Scale: core.PrecisionUnspecified, CharSet: "utf8"},
			},
		},
		{
			name: "is not null",
			src:  "{is_not_null: a}",
			want: &core.IsNullExpr{Expr: core.NewColumn("", "a"), Not: true},
		},
		{
			name: "paren",
			src:  "{paren: a}",
			want: &core.ParenExpr{Expr: core.NewColumn("", "a")},
		},
		{
			name: "scalar subquery",
			src:  "{subquery: {select: [{expr: {func: max, args: [id]}}], from: {table: t}}}",
			want: core.NewScalarQuery(&core.SelectStmt{Body: &core.SelectBody{Left: &core.SelectCore{
				Columns: []core.SelectItem{{Expr: core.NewFuncCall("MAX", core.NewColumn("", "id"))}},
				From:    &core.FromClause{Source: &core.TableName{Name: "t"}},
			}}}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeExpr(t, tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExprDoc_ExprErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{"no discriminator", "{args: [a]}", "expression needs one of"},
		{"two discriminators", "{col: a, num: 1}", `both "col" and "num"`},
		{"stray modifier", "{col: a, to: DAY}", `unknown field "to" in col expression`},
		{"unknown unit", "{floor: ts, to: FORTNIGHT}", `expr.to: unknown time unit "FORTNIGHT"`},
		{"bad range", "{floor: ts, to: DAY HOUR}", "invalid time unit range"},
		{"unknown operator", "{op: '<=>', args: [a, b]}", `unknown operator "<=>"`},
		{"not with two args", "{op: not, args: [a, b]}", "operator NOT cannot take 2 arguments"},
		{"bad number", "{num: abc}", `invalid number "abc"`},
		{"unknown type", "{cast: a, type: BLOB}", `unknown type "BLOB"`},
		{"missing type", "{cast: a}", "missing target type"},
		{"empty case", "{case: {else: 1}}", "CASE needs at least one WHEN"},
		{"unknown interval field", "{interval: {value: '1', unit: DAY, scale: 2}}", "scale"},
		{"sequence", "[a, b]", "expected an expression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeExpr(t, tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)

			var fe *FieldError
			assert.True(t, errors.As(err, &fe))
		})
	}
}

func TestParseDataType(t *testing.T) {
	tests := []struct {
		in        string
		want      *core.DataType
		wantError bool
	}{
		{in: "INTEGER", want: core.NewDataType(core.TypeInteger)},
		{in: "decimal(10, 2)", want: &core.DataType{Name: core.TypeDecimal, Precision: 10, Scale: 2}},
		{in: "TIMESTAMP(9)", want: &core.DataType{Name: core.TypeTimestamp, Precision: 9, Scale: core.PrecisionUnspecified}},
		{in: "VARCHAR(", wantError: true},
		{in: "DECIMAL(1, 2, 3)", wantError: true},
		{in: "CHAR(x)", wantError: true},
		{in: "NOPE", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDataType(tt.in)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Document(t *testing.T) {
	src := `
name: monthly_orders
dialect: oscar
query:
  select:
    - expr: {floor: order_ts, to: MONTH}
      as: month
    - expr: {func: COUNT, star: true}
      as: n
  from:
    table: orders
    alias: o
    joins:
      - type: left
        table: customers
        alias: c
        on: {op: '=', args: [o.customer_id, c.id]}
  where: {is_not_null: o.order_ts}
  group_by:
    - {floor: order_ts, to: MONTH}
  order_by:
    - {expr: month, desc: true, nulls: first}
  limit: 10
  offset: 5
`
	docs, err := DecodeString(src)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "monthly_orders", docs[0].Name)
	assert.Equal(t, "oscar", docs[0].Dialect)

	stmt, err := docs[0].Statement()
	require.NoError(t, err)

	floorMonth := core.NewCall(core.OpFloor, core.NewColumn("", "order_ts"), core.NewTimeUnit(core.RangeMonth))
	nullsFirst := true
	want := &core.SelectStmt{Body: &core.SelectBody{Left: &core.SelectCore{
		Columns: []core.SelectItem{
			{Expr: floorMonth, Alias: "month"},
			{Expr: &core.FuncCall{Name: "COUNT", Star: true}, Alias: "n"},
		},
		From: &core.FromClause{
			Source: &core.TableName{Name: "orders", Alias: "o"},
			Joins: []*core.Join{{
				Type:  core.JoinLeft,
				Right: &core.TableName{Name: "customers", Alias: "c"},
				Condition: &core.BinaryExpr{
					Left:  core.NewColumn("o", "customer_id"),
					Op:    token.EQ,
					Right: core.NewColumn("c", "id"),
				},
			}},
		},
		Where:   &core.IsNullExpr{Expr: core.NewColumn("o", "order_ts"), Not: true},
		GroupBy: []core.Expr{floorMonth},
		OrderBy: []core.OrderByItem{{Expr: core.NewColumn("", "month"), Desc: true, NullsFirst: &nullsFirst}},
		Limit:   core.NewNumber("10"),
		Offset:  core.NewNumber("5"),
	}}}
	assert.Equal(t, want, stmt)
}

func TestDecode_MultipleDocuments(t *testing.T) {
	src := `
name: first
query:
  select: [{expr: 1}]
---
name: second
query:
  select: [{expr: a}]
  from:
    values: [[1, {str: x}], [2, {str: y}]]
    alias: v
    columns: [id, label]
  union_all:
    - select: [{expr: b}]
      from: {table: t}
`
	docs, err := DecodeString(src)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "first", docs[0].Name)

	stmt, err := docs[1].Statement()
	require.NoError(t, err)

	body := stmt.Body
	assert.Equal(t, core.SetOpUnionAll, body.Op)
	require.NotNil(t, body.Right)
	assert.Equal(t, core.SetOpNone, body.Right.Op)

	vt, ok := body.Left.From.Source.(*core.ValuesTable)
	require.True(t, ok)
	assert.Equal(t, "v", vt.Alias)
	assert.Equal(t, []string{"id", "label"}, vt.Columns)
	assert.Equal(t, [][]core.Expr{
		{core.NewNumber("1"), core.NewString("x")},
		{core.NewNumber("2"), core.NewString("y")},
	}, vt.Rows)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{
			name:    "unknown top level field",
			src:     "name: x\nquery: {select: [{expr: a}]}\nextra: 1\n",
			wantMsg: "field extra not found",
		},
		{
			name:    "missing query",
			src:     "name: x\n",
			wantMsg: "document 0: missing query",
		},
		{
			name:    "unknown query field",
			src:     "query: {select: [{expr: a}], limt: 3}\n",
			wantMsg: "field limt not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeString(tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)

			var pe *ParseError
			assert.True(t, errors.As(err, &pe))
		})
	}
}

func TestDocument_StatementErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{
			name:    "empty select",
			src:     "name: q\nquery: {from: {table: t}}\n",
			wantMsg: "q: query.select: select list is empty",
		},
		{
			name:    "two sources",
			src:     "query: {select: [{expr: a}], from: {table: t, values: [[1]]}}\n",
			wantMsg: "query.from: expected exactly one of table, query or values",
		},
		{
			name:    "ragged values",
			src:     "query: {select: [{expr: a}], from: {values: [[1, 2], [3]]}}\n",
			wantMsg: "query.from.values[1]: row has 1 values, expected 2",
		},
		{
			name:    "join without on",
			src:     "query: {select: [{expr: a}], from: {table: t, joins: [{table: u}]}}\n",
			wantMsg: "query.from.joins[0].on: join needs an on condition",
		},
		{
			name:    "bad join type",
			src:     "query: {select: [{expr: a}], from: {table: t, joins: [{type: outer, table: u, on: x}]}}\n",
			wantMsg: `unknown join type "outer"`,
		},
		{
			name:    "bad nulls",
			src:     "query: {select: [{expr: a}], order_by: [{expr: a, nulls: middle}]}\n",
			wantMsg: `expected first or last, got "middle"`,
		},
		{
			name:    "rollup without keys",
			src:     "query: {select: [{expr: a}], rollup: true}\n",
			wantMsg: "rollup needs group_by keys",
		},
		{
			name:    "nested expression error path",
			src:     "query: {select: [{expr: a}, {expr: {floor: ts, to: EON}}]}\n",
			wantMsg: `query.select[1].expr.to: unknown time unit "EON"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := DecodeString(tt.src)
			require.NoError(t, err)
			require.Len(t, docs, 1)

			_, err = docs[0].Statement()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

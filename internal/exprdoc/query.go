package exprdoc

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlshim/pkg/core"
)

// QueryDoc is a SELECT query. UnionAll appends further SELECTs joined with
// UNION ALL.
type QueryDoc struct {
	Distinct bool        `yaml:"distinct"`
	Select   []ItemDoc   `yaml:"select"`
	From     *FromDoc    `yaml:"from"`
	Where    *ExprDoc    `yaml:"where"`
	GroupBy  []*ExprDoc  `yaml:"group_by"`
	Rollup   bool        `yaml:"rollup"`
	Having   *ExprDoc    `yaml:"having"`
	OrderBy  []OrderDoc  `yaml:"order_by"`
	Limit    *ExprDoc    `yaml:"limit"`
	Offset   *ExprDoc    `yaml:"offset"`
	UnionAll []*QueryDoc `yaml:"union_all"`
}

// ItemDoc is one SELECT list entry.
type ItemDoc struct {
	Expr *ExprDoc `yaml:"expr"`
	As   string   `yaml:"as"`
	Star bool     `yaml:"star"`
}

// TableDoc is a FROM source: a named table, a derived query, or VALUES rows.
type TableDoc struct {
	Table   string       `yaml:"table"`
	Schema  string       `yaml:"schema"`
	Alias   string       `yaml:"alias"`
	Query   *QueryDoc    `yaml:"query"`
	Values  [][]*ExprDoc `yaml:"values"`
	Columns []string     `yaml:"columns"`
}

// FromDoc is the FROM clause.
type FromDoc struct {
	TableDoc `yaml:",inline"`
	Joins    []JoinDoc `yaml:"joins"`
}

// JoinDoc is one JOIN; Type is empty for a plain JOIN.
type JoinDoc struct {
	Type     string `yaml:"type"`
	TableDoc `yaml:",inline"`
	On       *ExprDoc `yaml:"on"`
}

// OrderDoc is one ORDER BY key. Nulls is "", "first" or "last".
type OrderDoc struct {
	Expr  *ExprDoc `yaml:"expr"`
	Desc  bool     `yaml:"desc"`
	Nulls string   `yaml:"nulls"`
}

var joinTypes = map[string]core.JoinType{
	"":      "",
	"INNER": core.JoinInner,
	"LEFT":  core.JoinLeft,
	"RIGHT": core.JoinRight,
	"CROSS": core.JoinCross,
}

// Statement converts the query. path prefixes error locations.
func (q *QueryDoc) Statement(path string) (*core.SelectStmt, error) {
	first, err := q.core(path)
	if err != nil {
		return nil, err
	}

	body := &core.SelectBody{Left: first}
	tail := body
	for i, part := range q.UnionAll {
		pp := fmt.Sprintf("%s.union_all[%d]", path, i)
		if len(part.UnionAll) > 0 {
			return nil, fieldErr(pp+".union_all", "nested union_all is not supported")
		}
		sc, err := part.core(pp)
		if err != nil {
			return nil, err
		}
		tail.Op = core.SetOpUnionAll
		tail.Right = &core.SelectBody{Left: sc}
		tail = tail.Right
	}
	return &core.SelectStmt{Body: body}, nil
}

func (q *QueryDoc) core(path string) (*core.SelectCore, error) {
	if len(q.Select) == 0 {
		return nil, fieldErr(path+".select", "select list is empty")
	}

	sc := &core.SelectCore{Distinct: q.Distinct, Rollup: q.Rollup}
	for i, item := range q.Select {
		ip := fmt.Sprintf("%s.select[%d]", path, i)
		if item.Star {
			if item.Expr != nil {
				return nil, fieldErr(ip, "star item cannot have an expression")
			}
			sc.Columns = append(sc.Columns, core.SelectItem{Star: true})
			continue
		}
		e, err := item.Expr.Expr(ip + ".expr")
		if err != nil {
			return nil, err
		}
		sc.Columns = append(sc.Columns, core.SelectItem{Expr: e, Alias: item.As})
	}

	if q.From != nil {
		from, err := q.From.clause(path + ".from")
		if err != nil {
			return nil, err
		}
		sc.From = from
	}

	var err error
	if sc.Where, err = optionalExpr(q.Where, path+".where"); err != nil {
		return nil, err
	}
	for i, g := range q.GroupBy {
		e, err := g.Expr(fmt.Sprintf("%s.group_by[%d]", path, i))
		if err != nil {
			return nil, err
		}
		sc.GroupBy = append(sc.GroupBy, e)
	}
	if q.Rollup && len(sc.GroupBy) == 0 {
		return nil, fieldErr(path+".rollup", "rollup needs group_by keys")
	}
	if sc.Having, err = optionalExpr(q.Having, path+".having"); err != nil {
		return nil, err
	}

	for i, o := range q.OrderBy {
		op := fmt.Sprintf("%s.order_by[%d]", path, i)
		e, err := o.Expr.Expr(op + ".expr")
		if err != nil {
			return nil, err
		}
		item := core.OrderByItem{Expr: e, Desc: o.Desc}
		switch strings.ToLower(o.Nulls) {
		case "":
		case "first":
			item.NullsFirst = boolPtr(true)
		case "last":
			item.NullsFirst = boolPtr(false)
		default:
			return nil, fieldErr(op+".nulls", "expected first or last, got %q", o.Nulls)
		}
		sc.OrderBy = append(sc.OrderBy, item)
	}

	if sc.Limit, err = optionalExpr(q.Limit, path+".limit"); err != nil {
		return nil, err
	}
	if sc.Offset, err = optionalExpr(q.Offset, path+".offset"); err != nil {
		return nil, err
	}
	return sc, nil
}

func (f *FromDoc) clause(path string) (*core.FromClause, error) {
	src, err := f.ref(path)
	if err != nil {
		return nil, err
	}
	from := &core.FromClause{Source: src}
	for i, j := range f.Joins {
		jp := fmt.Sprintf("%s.joins[%d]", path, i)
		jt, ok := joinTypes[strings.ToUpper(j.Type)]
		if !ok {
			return nil, fieldErr(jp+".type", "unknown join type %q", j.Type)
		}
		right, err := j.ref(jp)
		if err != nil {
			return nil, err
		}
		cond, err := optionalExpr(j.On, jp+".on")
		if err != nil {
			return nil, err
		}
		if cond == nil && jt != core.JoinCross {
			return nil, fieldErr(jp+".on", "join needs an on condition")
		}
		from.Joins = append(from.Joins, &core.Join{Type: jt, Right: right, Condition: cond})
	}
	return from, nil
}

func (t *TableDoc) ref(path string) (core.TableRef, error) {
	sources := 0
	for _, set := range []bool{t.Table != "", t.Query != nil, len(t.Values) > 0} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, fieldErr(path, "expected exactly one of table, query or values")
	}

	switch {
	case t.Table != "":
		return &core.TableName{Schema: t.Schema, Name: t.Table, Alias: t.Alias}, nil
	case t.Query != nil:
		stmt, err := t.Query.Statement(path + ".query")
		if err != nil {
			return nil, err
		}
		return &core.DerivedTable{Select: stmt, Alias: t.Alias}, nil
	}

	vt := &core.ValuesTable{Alias: t.Alias, Columns: t.Columns}
	width := len(t.Values[0])
	for i, row := range t.Values {
		rp := fmt.Sprintf("%s.values[%d]", path, i)
		if len(row) != width {
			return nil, fieldErr(rp, "row has %d values, expected %d", len(row), width)
		}
		exprs := make([]core.Expr, 0, len(row))
		for j, v := range row {
			e, err := v.Expr(fmt.Sprintf("%s[%d]", rp, j))
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, e)
		}
		vt.Rows = append(vt.Rows, exprs)
	}
	if len(vt.Columns) > 0 && len(vt.Columns) != width {
		return nil, fieldErr(path+".columns", "%d column names for %d values", len(vt.Columns), width)
	}
	return vt, nil
}

func optionalExpr(e *ExprDoc, path string) (core.Expr, error) {
	if e == nil {
		return nil, nil
	}
	return e.Expr(path)
}

func boolPtr(b bool) *bool { return &b }

package format

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlshim/pkg/core"
	"github.com/leapstack-labs/sqlshim/pkg/dialect"
	"github.com/leapstack-labs/sqlshim/pkg/token"
)

func (p *Printer) formatSelectStmt(stmt *core.SelectStmt) {
	if stmt == nil || p.err != nil {
		return
	}
	p.formatSelectBody(stmt.Body)
}

func (p *Printer) formatSelectBody(body *core.SelectBody) {
	if body == nil {
		return
	}

	p.formatSelectCore(body.Left)

	if body.Op != core.SetOpNone {
		switch body.Op {
		case core.SetOpUnion:
			p.kw(token.UNION)
		case core.SetOpUnionAll:
			p.kw(token.UNION, token.ALL)
		case core.SetOpIntersect:
			p.kw(token.INTERSECT)
		case core.SetOpExcept:
			p.kw(token.EXCEPT)
		}
		p.writeln()
		p.formatSelectBody(body.Right)
	}
}

func (p *Printer) formatSelectCore(sc *core.SelectCore) {
	if sc == nil || p.err != nil {
		return
	}

	// SELECT [DISTINCT]
	p.kw(token.SELECT)
	if sc.Distinct {
		p.space()
		p.kw(token.DISTINCT)
	}
	p.writeln()

	// Columns
	p.indent()
	p.formatList(len(sc.Columns), func(i int) { p.formatSelectItem(sc.Columns[i]) }, ",", true)
	p.writeln()
	p.dedent()

	// FROM
	if sc.From != nil {
		p.kw(token.FROM)
		p.space()
		p.formatFromClause(sc.From)
		p.writeln()
	}

	if sc.Where != nil {
		p.kw(token.WHERE)
		p.writeln()
		p.indent()
		p.formatExpr(sc.Where)
		p.dedent()
		p.writeln()
	}

	if len(sc.GroupBy) > 0 {
		p.formatGroupBy(sc)
	}

	if sc.Having != nil {
		p.kw(token.HAVING)
		p.writeln()
		p.indent()
		p.formatExpr(sc.Having)
		p.dedent()
		p.writeln()
	}

	if len(sc.OrderBy) > 0 {
		p.formatOrderBy(sc.OrderBy)
	}

	if sc.Offset != nil || sc.Limit != nil {
		p.fail(p.dialect.UnparseOffsetFetch(p, sc.Offset, sc.Limit))
		p.writeln()
	}
}

func (p *Printer) formatGroupBy(sc *core.SelectCore) {
	p.kw(token.GROUP, token.BY)

	if sc.Rollup {
		if !p.dialect.SupportsGroupByWithRollup() {
			p.fail(dialect.Unsupported(p.dialect.Name(), "GROUP BY", "ROLLUP"))
			return
		}
		p.space()
		p.kw(token.ROLLUP)
		p.write("(")
		p.formatList(len(sc.GroupBy), func(i int) { p.formatExpr(sc.GroupBy[i]) }, ",", false)
		p.write(")")
		p.writeln()
		return
	}

	p.writeln()
	p.indent()
	p.formatList(len(sc.GroupBy), func(i int) { p.formatExpr(sc.GroupBy[i]) }, ",", true)
	p.dedent()
	p.writeln()
}

// formatOrderBy writes the sort keys. For dialects without NULLS FIRST/LAST
// an emulation key produced by the dialect is placed ahead of its sort key.
func (p *Printer) formatOrderBy(items []core.OrderByItem) {
	p.kw(token.ORDER, token.BY)
	p.writeln()
	p.indent()

	first := true
	next := func() {
		if !first {
			p.write(",")
			p.writeln()
		}
		first = false
	}

	for _, item := range items {
		if item.NullsFirst != nil && !p.dialect.SupportsNullsOrdering() {
			if key := p.dialect.EmulateNullDirection(item.Expr, *item.NullsFirst, item.Desc); key != nil {
				next()
				p.formatExpr(key)
			}
		}
		next()
		p.formatOrderByItem(item)
	}

	p.dedent()
	p.writeln()
}

func (p *Printer) formatOrderByItem(item core.OrderByItem) {
	p.formatExpr(item.Expr)
	if item.Desc {
		p.space()
		p.kw(token.DESC)
	}
	if item.NullsFirst != nil && p.dialect.SupportsNullsOrdering() {
		p.space()
		p.kw(token.NULLS)
		p.space()
		if *item.NullsFirst {
			p.kw(token.FIRST)
		} else {
			p.kw(token.LAST)
		}
	}
}

func (p *Printer) formatSelectItem(item core.SelectItem) {
	if item.Star {
		p.write("*")
		return
	}

	p.formatExpr(item.Expr)
	if item.Alias != "" {
		p.space()
		p.kw(token.AS)
		p.space()
		p.write(p.dialect.QuoteIdentifierIfNeeded(item.Alias))
	}
}

func (p *Printer) formatFromClause(from *core.FromClause) {
	if from == nil {
		return
	}

	saved := p.fromNames
	p.fromNames = fromClauseNames(from)
	defer func() { p.fromNames = saved }()

	p.formatTableRef(from.Source)

	for _, join := range from.Joins {
		p.writeln()
		p.formatJoin(join)
	}
}

// fromClauseNames collects the table names and aliases a FROM clause exposes.
func fromClauseNames(from *core.FromClause) map[string]bool {
	names := make(map[string]bool)
	add := func(ref core.TableRef) {
		switch t := ref.(type) {
		case *core.TableName:
			if t.Alias != "" {
				names[strings.ToLower(t.Alias)] = true
			} else {
				names[strings.ToLower(t.Name)] = true
			}
		case *core.DerivedTable:
			if t.Alias != "" {
				names[strings.ToLower(t.Alias)] = true
			}
		case *core.ValuesTable:
			if t.Alias != "" {
				names[strings.ToLower(t.Alias)] = true
			}
		}
	}
	add(from.Source)
	for _, join := range from.Joins {
		if join != nil {
			add(join.Right)
		}
	}
	return names
}

func (p *Printer) formatTableRef(ref core.TableRef) {
	if ref == nil || p.err != nil {
		return
	}

	switch t := ref.(type) {
	case *core.TableName:
		p.formatTableName(t)
	case *core.DerivedTable:
		p.formatDerivedTable(t)
	case *core.ValuesTable:
		p.formatValuesTable(t)
	default:
		p.fail(fmt.Errorf("format: unexpected table reference %T", ref))
	}
}

func (p *Printer) formatTableName(t *core.TableName) {
	if t.Schema != "" {
		p.write(p.dialect.QuoteIdentifierIfNeeded(t.Schema))
		p.write(".")
	}
	p.write(p.dialect.QuoteIdentifierIfNeeded(t.Name))
	if t.Alias != "" {
		p.space()
		p.write(p.dialect.QuoteIdentifierIfNeeded(t.Alias))
	}
}

func (p *Printer) formatDerivedTable(t *core.DerivedTable) {
	alias := t.Alias
	if alias == "" && p.dialect.RequiresAliasForFromItems() {
		alias = p.nextAlias()
	}

	saved := p.aggDepth
	p.aggDepth = 0

	p.write("(")
	p.writeln()
	p.indent()
	p.formatSelectStmt(t.Select)
	p.dedent()
	p.write(")")

	p.aggDepth = saved

	if alias != "" {
		p.space()
		p.write(p.dialect.QuoteIdentifierIfNeeded(alias))
	}
}

// nextAlias generates t, t0, t1, ... for unaliased derived tables, skipping
// names already used in the enclosing FROM clause.
func (p *Printer) nextAlias() string {
	for {
		seq := p.aliasSeq
		p.aliasSeq++
		alias := "t"
		if seq > 0 {
			alias = fmt.Sprintf("t%d", seq-1)
		}
		if p.fromNames[alias] {
			continue
		}
		if p.fromNames != nil {
			p.fromNames[alias] = true
		}
		return alias
	}
}

// formatValuesTable writes VALUES as a FROM item, or the equivalent
// UNION ALL of single-row SELECTs when the dialect cannot alias VALUES.
func (p *Printer) formatValuesTable(t *core.ValuesTable) {
	if len(t.Rows) == 0 {
		p.fail(fmt.Errorf("format: VALUES without rows"))
		return
	}

	if !p.dialect.SupportsAliasedValues() {
		p.formatDerivedTable(&core.DerivedTable{
			Select: valuesAsUnion(t),
			Alias:  t.Alias,
		})
		return
	}

	p.write("(")
	p.kw(token.VALUES)
	p.space()
	p.formatList(len(t.Rows), func(i int) {
		row := t.Rows[i]
		p.write("(")
		p.formatList(len(row), func(j int) { p.formatExpr(row[j]) }, ",", false)
		p.write(")")
	}, ",", false)
	p.write(")")

	if t.Alias != "" {
		p.space()
		p.kw(token.AS)
		p.space()
		p.write(p.dialect.QuoteIdentifierIfNeeded(t.Alias))
		if len(t.Columns) > 0 {
			p.write(" (")
			p.formatList(len(t.Columns), func(i int) {
				p.write(p.dialect.QuoteIdentifierIfNeeded(t.Columns[i]))
			}, ",", false)
			p.write(")")
		}
	}
}

// valuesAsUnion turns each VALUES row into SELECT v1 AS c1, ... and chains
// the rows with UNION ALL.
func valuesAsUnion(t *core.ValuesTable) *core.SelectStmt {
	var body *core.SelectBody
	for i := len(t.Rows) - 1; i >= 0; i-- {
		sc := &core.SelectCore{}
		for j, v := range t.Rows[i] {
			sc.Columns = append(sc.Columns, core.SelectItem{Expr: v, Alias: valuesColumn(t, j)})
		}
		next := &core.SelectBody{Left: sc}
		if body != nil {
			next.Op = core.SetOpUnionAll
			next.Right = body
		}
		body = next
	}
	return &core.SelectStmt{Body: body}
}

func valuesColumn(t *core.ValuesTable, i int) string {
	if i < len(t.Columns) {
		return t.Columns[i]
	}
	return fmt.Sprintf("EXPR$%d", i)
}

func (p *Printer) formatJoin(join *core.Join) {
	if join == nil {
		return
	}

	switch join.Type {
	case core.JoinInner, "":
		// Plain "JOIN" for inner (most common, cleaner output)
		p.keyword("JOIN")
	default:
		// Data-driven: JoinType string IS the keyword
		p.keyword(string(join.Type))
		p.space()
		p.keyword("JOIN")
	}
	p.space()

	p.formatTableRef(join.Right)

	if join.Condition != nil {
		// ON condition (indented)
		p.writeln()
		p.indent()
		p.keyword("ON")
		p.space()
		p.formatExpr(join.Condition)
		p.dedent()
	}
}

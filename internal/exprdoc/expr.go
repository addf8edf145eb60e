package exprdoc

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/leapstack-labs/sqlshim/pkg/core"
	"github.com/leapstack-labs/sqlshim/pkg/token"
	"gopkg.in/yaml.v3"
)

// ExprDoc holds an undecoded expression node. Conversion to core.Expr is
// deferred so errors can carry the full path of the offending field.
type ExprDoc struct {
	node *yaml.Node
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *ExprDoc) UnmarshalYAML(n *yaml.Node) error {
	e.node = n
	return nil
}

// Expr converts the node into an expression.
func (e *ExprDoc) Expr(path string) (core.Expr, error) {
	if e == nil || e.node == nil {
		return nil, fieldErr(path, "missing expression")
	}
	return toExpr(e.node, path)
}

// modifiers lists the keys allowed next to each discriminating key.
var modifiers = map[string][]string{
	"col":          nil,
	"num":          nil,
	"str":          nil,
	"bool":         nil,
	"null":         nil,
	"star":         nil,
	"op":           {"args"},
	"func":         {"args", "distinct", "star"},
	"floor":        {"to"},
	"ceil":         {"to"},
	"single_value": nil,
	"interval":     nil,
	"case":         nil,
	"cast":         {"type", "charset"},
	"is_null":      nil,
	"is_not_null":  nil,
	"paren":        nil,
	"subquery":     nil,
}

var operators = map[string]token.TokenType{
	"+":   token.PLUS,
	"-":   token.MINUS,
	"*":   token.STAR,
	"/":   token.SLASH,
	"%":   token.PERCENT,
	"||":  token.DPIPE,
	"=":   token.EQ,
	"<>":  token.NE,
	"!=":  token.NE,
	"<":   token.LT,
	">":   token.GT,
	"<=":  token.LE,
	">=":  token.GE,
	"AND": token.AND,
	"OR":  token.OR,
	"NOT": token.NOT,
}

func toExpr(n *yaml.Node, path string) (core.Expr, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return toExpr(n.Alias, path)
	case yaml.ScalarNode:
		return scalarExpr(n), nil
	case yaml.MappingNode:
		return mappingExpr(n, path)
	default:
		return nil, fieldErr(path, "expected an expression")
	}
}

func scalarExpr(n *yaml.Node) core.Expr {
	switch n.ShortTag() {
	case "!!null":
		return core.NewNull()
	case "!!int", "!!float":
		return core.NewNumber(n.Value)
	case "!!bool":
		return &core.Literal{Type: core.LiteralBool, Value: strings.ToLower(n.Value)}
	default:
		return columnRef(n.Value)
	}
}

func columnRef(name string) *core.ColumnRef {
	if i := strings.LastIndex(name, "."); i > 0 {
		return core.NewColumn(name[:i], name[i+1:])
	}
	return core.NewColumn("", name)
}

func mappingExpr(n *yaml.Node, path string) (core.Expr, error) {
	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	var keys []string
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i].Value
		fields[k] = n.Content[i+1]
		keys = append(keys, k)
	}

	var kind string
	for _, k := range keys {
		if _, ok := modifiers[k]; !ok {
			continue
		}
		if k == "star" && fields["func"] != nil {
			continue
		}
		if kind != "" {
			return nil, fieldErr(path, "expression has both %q and %q", kind, k)
		}
		kind = k
	}
	if kind == "" {
		return nil, fieldErr(path, "expression needs one of %s", strings.Join(exprKinds(), ", "))
	}
	for _, k := range keys {
		if k != kind && !slices.Contains(modifiers[kind], k) {
			return nil, fieldErr(path, "unknown field %q in %s expression", k, kind)
		}
	}

	v := fields[kind]
	sub := path + "." + kind
	switch kind {
	case "col", "num", "str", "op", "func":
		if v.Kind != yaml.ScalarNode {
			return nil, fieldErr(sub, "expected a scalar")
		}
	}

	switch kind {
	case "col":
		return columnRef(v.Value), nil
	case "num":
		if _, err := strconv.ParseFloat(v.Value, 64); err != nil {
			return nil, fieldErr(sub, "invalid number %q", v.Value)
		}
		return core.NewNumber(v.Value), nil
	case "str":
		return core.NewString(v.Value), nil
	case "bool":
		var b bool
		if err := v.Decode(&b); err != nil {
			return nil, fieldErr(sub, "invalid boolean %q", v.Value)
		}
		return &core.Literal{Type: core.LiteralBool, Value: strconv.FormatBool(b)}, nil
	case "null":
		return core.NewNull(), nil
	case "star":
		switch v.ShortTag() {
		case "!!null", "!!bool":
			return &core.StarExpr{}, nil
		}
		return &core.StarExpr{Table: v.Value}, nil
	case "op":
		return opExpr(v.Value, fields["args"], path)
	case "func":
		return funcExpr(v.Value, fields, path)
	case "floor":
		return truncExpr(core.OpFloor, v, fields["to"], path)
	case "ceil":
		return truncExpr(core.OpCeil, v, fields["to"], path)
	case "single_value":
		operand, err := toExpr(v, sub)
		if err != nil {
			return nil, err
		}
		return core.NewCall(core.OpSingleValue, operand), nil
	case "interval":
		return intervalExpr(v, sub)
	case "case":
		return caseExpr(v, sub)
	case "cast":
		return castExpr(v, fields, path)
	case "is_null", "is_not_null":
		operand, err := toExpr(v, sub)
		if err != nil {
			return nil, err
		}
		return &core.IsNullExpr{Expr: operand, Not: kind == "is_not_null"}, nil
	case "paren":
		inner, err := toExpr(v, sub)
		if err != nil {
			return nil, err
		}
		return &core.ParenExpr{Expr: inner}, nil
	default: // subquery
		var q QueryDoc
		if err := decodeStrict(v, &q); err != nil {
			return nil, fieldErr(sub, "%v", err)
		}
		stmt, err := q.Statement(sub)
		if err != nil {
			return nil, err
		}
		return core.NewScalarQuery(stmt), nil
	}
}

func exprKinds() []string {
	kinds := make([]string, 0, len(modifiers))
	for k := range modifiers {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

func exprList(n *yaml.Node, path string) ([]core.Expr, error) {
	if n == nil {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fieldErr(path, "expected a list")
	}
	out := make([]core.Expr, 0, len(n.Content))
	for i, item := range n.Content {
		e, err := toExpr(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func opExpr(op string, argsNode *yaml.Node, path string) (core.Expr, error) {
	tok, ok := operators[strings.ToUpper(op)]
	if !ok {
		return nil, fieldErr(path+".op", "unknown operator %q", op)
	}
	args, err := exprList(argsNode, path+".args")
	if err != nil {
		return nil, err
	}

	switch {
	case len(args) == 1 && (tok == token.MINUS || tok == token.NOT):
		return &core.UnaryExpr{Op: tok, Expr: args[0]}, nil
	case len(args) >= 2 && tok != token.NOT:
		e := args[0]
		for _, arg := range args[1:] {
			e = &core.BinaryExpr{Left: e, Op: tok, Right: arg}
		}
		return e, nil
	}
	return nil, fieldErr(path+".args", "operator %s cannot take %d arguments", tok, len(args))
}

func funcExpr(name string, fields map[string]*yaml.Node, path string) (core.Expr, error) {
	if name == "" {
		return nil, fieldErr(path+".func", "missing function name")
	}
	args, err := exprList(fields["args"], path+".args")
	if err != nil {
		return nil, err
	}
	fn := core.NewFuncCall(strings.ToUpper(name), args...)
	if n := fields["distinct"]; n != nil {
		if err := n.Decode(&fn.Distinct); err != nil {
			return nil, fieldErr(path+".distinct", "invalid boolean %q", n.Value)
		}
	}
	if n := fields["star"]; n != nil {
		if err := n.Decode(&fn.Star); err != nil {
			return nil, fieldErr(path+".star", "invalid boolean %q", n.Value)
		}
	}
	return fn, nil
}

func truncExpr(kind core.OpKind, operandNode, toNode *yaml.Node, path string) (core.Expr, error) {
	operand, err := toExpr(operandNode, fmt.Sprintf("%s.%s", path, strings.ToLower(kind.String())))
	if err != nil {
		return nil, err
	}
	if toNode == nil {
		return core.NewCall(kind, operand), nil
	}
	r, err := ParseRange(toNode.Value)
	if err != nil {
		return nil, fieldErr(path+".to", "%v", err)
	}
	return core.NewCall(kind, operand, core.NewTimeUnit(r)), nil
}

type intervalDoc struct {
	Value      string `yaml:"value"`
	Unit       string `yaml:"unit"`
	Negative   bool   `yaml:"negative"`
	Precision  *int   `yaml:"precision"`
	Fractional *int   `yaml:"fractional"`
}

func intervalExpr(n *yaml.Node, path string) (core.Expr, error) {
	var doc intervalDoc
	if err := decodeStrict(n, &doc); err != nil {
		return nil, fieldErr(path, "%v", err)
	}
	r, err := ParseRange(doc.Unit)
	if err != nil {
		return nil, fieldErr(path+".unit", "%v", err)
	}
	q := core.NewIntervalQualifier(r.Start, r.End)
	if doc.Precision != nil {
		q.StartPrecision = *doc.Precision
	}
	if doc.Fractional != nil {
		q.FractionalSecondPrecision = *doc.Fractional
	}
	return &core.IntervalLiteral{Negative: doc.Negative, Value: doc.Value, Qualifier: q}, nil
}

type whenDoc struct {
	If   *ExprDoc `yaml:"if"`
	Then *ExprDoc `yaml:"then"`
}

type caseDoc struct {
	Operand *ExprDoc  `yaml:"operand"`
	When    []whenDoc `yaml:"when"`
	Else    *ExprDoc  `yaml:"else"`
}

func caseExpr(n *yaml.Node, path string) (core.Expr, error) {
	var doc caseDoc
	if err := decodeStrict(n, &doc); err != nil {
		return nil, fieldErr(path, "%v", err)
	}
	if len(doc.When) == 0 {
		return nil, fieldErr(path+".when", "CASE needs at least one WHEN")
	}

	c := &core.CaseExpr{}
	var err error
	if doc.Operand != nil {
		if c.Operand, err = doc.Operand.Expr(path + ".operand"); err != nil {
			return nil, err
		}
	}
	for i, w := range doc.When {
		wp := fmt.Sprintf("%s.when[%d]", path, i)
		cond, err := w.If.Expr(wp + ".if")
		if err != nil {
			return nil, err
		}
		result, err := w.Then.Expr(wp + ".then")
		if err != nil {
			return nil, err
		}
		c.Whens = append(c.Whens, core.WhenClause{Condition: cond, Result: result})
	}
	if doc.Else != nil {
		if c.Else, err = doc.Else.Expr(path + ".else"); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func castExpr(v *yaml.Node, fields map[string]*yaml.Node, path string) (core.Expr, error) {
	operand, err := toExpr(v, path+".cast")
	if err != nil {
		return nil, err
	}
	typeNode := fields["type"]
	if typeNode == nil {
		return nil, fieldErr(path+".type", "missing target type")
	}
	dt, err := ParseDataType(typeNode.Value)
	if err != nil {
		return nil, fieldErr(path+".type", "%v", err)
	}
	if cs := fields["charset"]; cs != nil {
		dt.CharSet = cs.Value
	}
	return &core.CastExpr{Expr: operand, Type: dt}, nil
}

// ParseRange parses a time unit range such as "MONTH" or "DAY TO SECOND".
func ParseRange(s string) (core.TimeUnitRange, error) {
	parts := strings.Fields(strings.ToUpper(s))
	switch {
	case len(parts) == 1:
		u, ok := core.ParseTimeUnit(parts[0])
		if !ok {
			return core.TimeUnitRange{}, fmt.Errorf("unknown time unit %q", parts[0])
		}
		return core.RangeOf(u, core.UnitNone), nil
	case len(parts) == 3 && parts[1] == "TO":
		start, ok := core.ParseTimeUnit(parts[0])
		if !ok {
			return core.TimeUnitRange{}, fmt.Errorf("unknown time unit %q", parts[0])
		}
		end, ok := core.ParseTimeUnit(parts[2])
		if !ok {
			return core.TimeUnitRange{}, fmt.Errorf("unknown time unit %q", parts[2])
		}
		return core.RangeOf(start, end), nil
	}
	return core.TimeUnitRange{}, fmt.Errorf("invalid time unit range %q", s)
}

// ParseDataType parses a type reference such as "VARCHAR(20)" or
// "DECIMAL(10, 2)".
func ParseDataType(s string) (*core.DataType, error) {
	name, args, hasArgs := strings.Cut(strings.TrimSpace(s), "(")
	tn, ok := core.ParseTypeName(strings.TrimSpace(name))
	if !ok {
		return nil, fmt.Errorf("unknown type %q", strings.TrimSpace(name))
	}
	dt := core.NewDataType(tn)
	if !hasArgs {
		return dt, nil
	}

	args, closed := strings.CutSuffix(strings.TrimSpace(args), ")")
	if !closed {
		return nil, fmt.Errorf("unterminated type arguments in %q", s)
	}
	nums := strings.Split(args, ",")
	if len(nums) > 2 {
		return nil, fmt.Errorf("too many type arguments in %q", s)
	}
	vals := make([]int, len(nums))
	for i, n := range nums {
		v, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil || v < 0 {
			return nil, fmt.Errorf("invalid type argument %q in %q", strings.TrimSpace(n), s)
		}
		vals[i] = v
	}
	dt.Precision = vals[0]
	if len(vals) == 2 {
		dt.Scale = vals[1]
	}
	return dt, nil
}

// decodeStrict decodes a subtree rejecting unknown fields. Node.Decode does
// not carry the decoder's KnownFields setting, so the node is re-encoded.
func decodeStrict(n *yaml.Node, out any) error {
	b, err := yaml.Marshal(n)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	return dec.Decode(out)
}

package dialect

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlshim/pkg/core"
	"github.com/leapstack-labs/sqlshim/pkg/token"
)

// Base implements Dialect with standard SQL behavior.
// Concrete dialects embed *Base and override the methods their engine
// spells differently.
type Base struct {
	cfg           *core.DialectConfig
	reservedWords map[string]struct{}
	aggregates    map[string]struct{}
	typeSystem    TypeSystem
}

// StandardAggregates are the aggregate functions every dialect knows.
var StandardAggregates = []string{
	"SUM", "COUNT", "AVG", "MIN", "MAX",
	"STDDEV_POP", "STDDEV_SAMP", "VAR_POP", "VAR_SAMP",
}

var _ Dialect = (*Base)(nil)

// Builder provides a fluent API for constructing a Base.
type Builder struct {
	cfg           core.DialectConfig
	reservedWords []string
	aggregates    []string
	typeSystem    TypeSystem
}

// NewDialect starts a standard dialect named name: double-quoted
// identifiers, native NULLS FIRST/LAST, and every capability enabled.
func NewDialect(name string) *Builder {
	return New(&core.DialectConfig{
		Name: name,
		Identifiers: core.IdentifierConfig{
			Quote:         `"`,
			QuoteEnd:      `"`,
			Escape:        `""`,
			Normalization: core.NormLowercase,
		},
		NullCollation:              core.NullsHigh,
		CalendarPolicy:             core.CalendarNull,
		SupportsCharSet:            true,
		SupportsAliasedValues:      true,
		SupportsNestedAggregations: true,
		SupportsGroupByWithRollup:  true,
		SupportsNullsOrdering:      true,
	})
}

// New starts a dialect from an existing configuration. The configuration is
// copied, so later changes to cfg do not leak into the built dialect.
func New(cfg *core.DialectConfig) *Builder {
	return &Builder{
		cfg:        *cfg,
		aggregates: StandardAggregates,
		typeSystem: DefaultTypeSystem{},
	}
}

// Aggregates adds aggregate function names beyond StandardAggregates.
func (b *Builder) Aggregates(funcs ...string) *Builder {
	b.aggregates = append(append([]string(nil), b.aggregates...), funcs...)
	return b
}

// WithReservedWords adds words that must be quoted when used as identifiers.
func (b *Builder) WithReservedWords(words ...string) *Builder {
	b.reservedWords = append(b.reservedWords, words...)
	return b
}

// WithDataTypes sets the type keywords listed for the dialect.
func (b *Builder) WithDataTypes(types ...string) *Builder {
	b.cfg.DataTypes = types
	return b
}

// WithTypeSystem replaces the default precision policy.
func (b *Builder) WithTypeSystem(ts TypeSystem) *Builder {
	b.typeSystem = ts
	return b
}

// Build returns the configured dialect.
func (b *Builder) Build() *Base {
	cfg := b.cfg
	d := &Base{
		cfg:           &cfg,
		reservedWords: make(map[string]struct{}, len(b.reservedWords)),
		aggregates:    make(map[string]struct{}, len(b.aggregates)),
		typeSystem:    b.typeSystem,
	}
	for _, w := range b.reservedWords {
		d.reservedWords[strings.ToLower(w)] = struct{}{}
	}
	for _, f := range b.aggregates {
		d.aggregates[strings.ToUpper(f)] = struct{}{}
	}
	return d
}

// ---------- Capabilities ----------

// Name returns the dialect identifier.
func (d *Base) Name() string { return d.cfg.Name }

// Config returns the dialect's static configuration.
func (d *Base) Config() *core.DialectConfig { return d.cfg }

// SupportsCharSet reports whether a type may carry CHARACTER SET.
func (d *Base) SupportsCharSet() bool { return d.cfg.SupportsCharSet }

// RequiresAliasForFromItems reports whether every derived table needs an alias.
func (d *Base) RequiresAliasForFromItems() bool { return d.cfg.RequiresAliasForFromItems }

// SupportsAliasedValues reports whether VALUES may appear as an aliased FROM item.
func (d *Base) SupportsAliasedValues() bool { return d.cfg.SupportsAliasedValues }

// SupportsNestedAggregations reports whether an aggregate may contain another.
func (d *Base) SupportsNestedAggregations() bool { return d.cfg.SupportsNestedAggregations }

// SupportsGroupByWithRollup reports whether GROUP BY ROLLUP is accepted.
func (d *Base) SupportsGroupByWithRollup() bool { return d.cfg.SupportsGroupByWithRollup }

// SupportsNullsOrdering reports whether ORDER BY accepts NULLS FIRST/LAST.
func (d *Base) SupportsNullsOrdering() bool { return d.cfg.SupportsNullsOrdering }

// NullCollation returns where NULLs sort when ORDER BY does not say.
func (d *Base) NullCollation() core.NullCollation { return d.cfg.NullCollation }

// CalendarPolicy returns how pre-Gregorian dates are handled.
func (d *Base) CalendarPolicy() core.CalendarPolicy { return d.cfg.CalendarPolicy }

// IsAggregate reports whether name is an aggregate function (case-insensitive).
func (d *Base) IsAggregate(name string) bool {
	_, ok := d.aggregates[strings.ToUpper(name)]
	return ok
}

// TypeSystem returns the dialect's precision policy.
func (d *Base) TypeSystem() TypeSystem {
	if d.typeSystem == nil {
		return DefaultTypeSystem{}
	}
	return d.typeSystem
}

// ---------- Identifiers ----------

// IsReservedWord returns true if word must be quoted as an identifier.
func (d *Base) IsReservedWord(word string) bool {
	_, ok := d.reservedWords[strings.ToLower(word)]
	return ok
}

// QuoteIdentifier quotes an identifier using the dialect's quote characters.
func (d *Base) QuoteIdentifier(name string) string {
	id := d.cfg.Identifiers
	// Escape any existing quote end characters in the name (e.g., ` -> ``)
	escaped := strings.ReplaceAll(name, id.QuoteEnd, id.Escape)
	return id.Quote + escaped + id.QuoteEnd
}

// QuoteIdentifierIfNeeded quotes an identifier only if it is reserved or
// is not a plain word.
func (d *Base) QuoteIdentifierIfNeeded(name string) string {
	if d.IsReservedWord(name) || !isPlainIdentifier(name) {
		return d.QuoteIdentifier(name)
	}
	return name
}

func isPlainIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// ---------- Unparsing ----------

// UnparseCall writes the standard spelling of a call:
// FLOOR(x), FLOOR(x TO unit), x DESC, or NAME(a, b, ...).
func (d *Base) UnparseCall(w Writer, call *core.CallExpr, _, _ int) error {
	switch call.Kind {
	case core.OpFloor, core.OpCeil:
		if n := call.OperandCount(); n < 1 || n > 2 {
			return fmt.Errorf("%s expects 1 or 2 operands, got %d", call.Kind, n)
		}
		w.Keyword(call.Kind.String())
		f := w.StartList("(", ")")
		if err := w.Expr(call.Operand(0), PrecedenceNone, PrecedenceNone); err != nil {
			return err
		}
		if call.OperandCount() == 2 {
			w.Keyword(token.TO.String())
			if err := w.Expr(call.Operand(1), PrecedenceNone, PrecedenceNone); err != nil {
				return err
			}
		}
		w.EndList(f)
		return nil

	case core.OpDesc:
		if err := w.Expr(call.Operand(0), PrecedenceNone, PrecedenceNone); err != nil {
			return err
		}
		w.Keyword(token.DESC.String())
		return nil

	default:
		w.Keyword(call.Kind.String())
		f := w.StartList("(", ")")
		for i, op := range call.Operands {
			if i > 0 {
				w.Sep(",")
			}
			if err := w.Expr(op, PrecedenceNone, PrecedenceNone); err != nil {
				return err
			}
		}
		w.EndList(f)
		return nil
	}
}

// UnparseIntervalQualifier writes the standard form, e.g. DAY(3) TO SECOND(6).
func (d *Base) UnparseIntervalQualifier(w Writer, q *core.IntervalQualifier, ts TypeSystem) error {
	start := q.Range.Start
	w.Keyword(start.String())

	startPrec := !q.UseDefaultStartPrecision() &&
		q.StartPrecision != ts.DefaultPrecision(intervalType(q.Range))
	fracPrec := !q.UseDefaultFractionalSecondPrecision()

	switch {
	case startPrec && start == core.UnitSecond && fracPrec:
		w.Print(fmt.Sprintf("(%d, %d)", q.StartPrecision, q.FractionalSecondPrecision))
	case startPrec:
		w.Print(fmt.Sprintf("(%d)", q.StartPrecision))
	}

	if q.Range.HasEnd() {
		w.Keyword(token.TO.String())
		w.Keyword(q.Range.End.String())
		if q.Range.End == core.UnitSecond && fracPrec {
			w.Print(fmt.Sprintf("(%d)", q.FractionalSecondPrecision))
		}
	}
	return nil
}

// UnparseOffsetFetch writes OFFSET n ROWS FETCH NEXT m ROWS ONLY.
func (d *Base) UnparseOffsetFetch(w Writer, offset, fetch core.Expr) error {
	if offset != nil {
		w.Keyword(token.OFFSET.String())
		if err := w.Expr(offset, PrecedenceNone, PrecedenceNone); err != nil {
			return err
		}
		w.Keyword(token.ROWS.String())
	}
	if fetch != nil {
		w.Keyword(token.FETCH.String())
		w.Keyword(token.NEXT.String())
		if err := w.Expr(fetch, PrecedenceNone, PrecedenceNone); err != nil {
			return err
		}
		w.Keyword(token.ROWS.String())
		w.Keyword(token.ONLY.String())
	}
	return nil
}

// ---------- Emulation ----------

// EmulateNullDirection returns nil: the standard dialect orders NULLs natively.
func (d *Base) EmulateNullDirection(core.Expr, bool, bool) core.Expr {
	return nil
}

// RewriteSingleValue returns the call unchanged.
func (d *Base) RewriteSingleValue(call *core.CallExpr) (core.Expr, error) {
	return call, nil
}

func intervalType(r core.TimeUnitRange) core.TypeName {
	switch r.Start {
	case core.UnitYear, core.UnitQuarter, core.UnitMonth:
		return core.TypeIntervalYearMonth
	default:
		return core.TypeIntervalDayTime
	}
}

package oscar

import (
	"log/slog"

	"github.com/leapstack-labs/sqlshim/pkg/core"
	"github.com/leapstack-labs/sqlshim/pkg/dialect"
)

func init() {
	dialect.Register(Oscar)
}

// Dialect is the Oscar dialect. It embeds the standard behavior and overrides
// FLOOR, interval qualifiers, SINGLE_VALUE, null ordering and row limiting.
// A Dialect is immutable and safe for concurrent use.
type Dialect struct {
	*dialect.Base
	logger *slog.Logger
}

var _ dialect.Dialect = (*Dialect)(nil)

// Option configures a Dialect.
type Option func(*Dialect)

// WithLogger sets the logger used for rewrite diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dialect) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates an Oscar dialect.
func New(opts ...Option) *Dialect {
	d := &Dialect{
		Base: dialect.New(Config).
			WithReservedWords(oscarReservedWords...).
			Aggregates(oscarAggregates...).
			WithTypeSystem(TypeSystem{}).
			Build(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Oscar is the registered Oscar dialect.
var Oscar = New()

// UnparseCall writes FLOOR(x TO unit) in Oscar's date-function form.
// Everything else, including single-operand FLOOR, uses the standard spelling.
func (d *Dialect) UnparseCall(w dialect.Writer, call *core.CallExpr, leftPrec, rightPrec int) error {
	if call.Kind == core.OpFloor && call.OperandCount() == 2 {
		return d.unparseFloor(w, call)
	}
	return d.Base.UnparseCall(w, call, leftPrec, rightPrec)
}

// UnparseOffsetFetch writes LIMIT [offset, ]fetch.
func (d *Dialect) UnparseOffsetFetch(w dialect.Writer, offset, fetch core.Expr) error {
	return dialect.UnparseFetchUsingLimit(w, offset, fetch)
}

// EmulateNullDirection sorts NULLs with an extra IS NULL key, since Oscar
// has no NULLS FIRST / NULLS LAST.
func (d *Dialect) EmulateNullDirection(e core.Expr, nullsFirst, desc bool) core.Expr {
	return dialect.EmulateNullDirectionWithIsNull(d.NullCollation(), e, nullsFirst, desc)
}

// Package dialect defines the contract between the SQL printer and the
// dialects it renders for.
//
// A dialect is a set of capability answers plus a handful of extension points
// the printer calls when it meets a construct whose spelling varies between
// engines. Concrete dialects live in pkg/dialects/*/ and usually embed *Base,
// overriding only what their engine does differently.
package dialect

import (
	"github.com/leapstack-labs/sqlshim/pkg/core"
)

// Dialect is everything the printer needs from a target engine.
type Dialect interface {
	Capabilities
	Unparser
	NullEmulator
	Rewriter

	// TypeSystem returns the engine's precision limits.
	TypeSystem() TypeSystem
}

// Capabilities answers fixed questions about what the engine accepts.
// Answers never change for the lifetime of a dialect value.
type Capabilities interface {
	Name() string
	Config() *core.DialectConfig
	SupportsCharSet() bool
	RequiresAliasForFromItems() bool
	SupportsAliasedValues() bool
	SupportsNestedAggregations() bool
	SupportsGroupByWithRollup() bool
	SupportsNullsOrdering() bool
	NullCollation() core.NullCollation
	CalendarPolicy() core.CalendarPolicy

	// IsAggregate reports whether a plain function name is an aggregate.
	IsAggregate(name string) bool
}

// Unparser owns the spelling of dialect-specific constructs.
//
// Each method either writes the construct to w or returns an error; a
// returned error means nothing usable was written and the statement must be
// abandoned.
type Unparser interface {
	QuoteIdentifier(name string) string
	QuoteIdentifierIfNeeded(name string) string

	// UnparseCall writes an operator call. leftPrec and rightPrec are the
	// binding strengths of the surrounding operators.
	UnparseCall(w Writer, call *core.CallExpr, leftPrec, rightPrec int) error

	// UnparseIntervalQualifier writes the unit part of an interval literal.
	UnparseIntervalQualifier(w Writer, q *core.IntervalQualifier, ts TypeSystem) error

	// UnparseOffsetFetch writes the row-limiting clause. Either argument may be nil.
	UnparseOffsetFetch(w Writer, offset, fetch core.Expr) error
}

// NullEmulator produces extra sort keys for engines that cannot say
// NULLS FIRST / NULLS LAST.
type NullEmulator interface {
	// EmulateNullDirection returns a sort key to place ahead of e so NULLs
	// land where requested, or nil when no extra key is needed.
	EmulateNullDirection(e core.Expr, nullsFirst, desc bool) core.Expr
}

// Rewriter substitutes expressions the engine cannot evaluate.
type Rewriter interface {
	// RewriteSingleValue replaces a SINGLE_VALUE aggregate call.
	RewriteSingleValue(call *core.CallExpr) (core.Expr, error)
}

// Writer is the token sink dialects write to.
//
// Keyword, Literal and Identifier insert a separating space when the previous
// token would otherwise run into them; Print writes its text verbatim.
type Writer interface {
	Keyword(kw string)
	Print(s string)
	Literal(s string)
	Identifier(name string)
	// Sep writes a list separator followed by a space.
	Sep(sep string)
	StartList(open, close string) Frame
	EndList(f Frame)
	// Expr writes a nested expression using the active dialect.
	Expr(e core.Expr, leftPrec, rightPrec int) error
}

// Frame is an open bracketed list returned by Writer.StartList.
type Frame struct {
	Open  string
	Close string
}

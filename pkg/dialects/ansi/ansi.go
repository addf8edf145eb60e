// Package ansi provides the standard SQL dialect.
//
// ANSI orders NULLs natively, spells FLOOR and interval qualifiers the
// standard way, and limits rows with OFFSET/FETCH. It is the reference other
// dialects are compared against.
package ansi

import (
	"github.com/leapstack-labs/sqlshim/pkg/dialect"
)

func init() {
	dialect.Register(ANSI)
}

// ANSI is the standard SQL dialect.
var ANSI = dialect.NewDialect("ansi").
	WithReservedWords(
		"all", "and", "as", "asc", "by", "case", "cast", "desc", "distinct",
		"else", "end", "except", "false", "fetch", "from", "group", "having",
		"intersect", "interval", "is", "join", "limit", "not", "null", "offset",
		"on", "or", "order", "select", "table", "then", "true", "union",
		"values", "when", "where", "with", "year", "month", "day", "hour",
		"minute", "second",
	).
	WithDataTypes(
		"BOOLEAN", "SMALLINT", "INTEGER", "BIGINT", "DECIMAL", "REAL", "DOUBLE",
		"CHAR", "VARCHAR", "BINARY", "VARBINARY", "DATE", "TIME", "TIMESTAMP",
	).
	Build()

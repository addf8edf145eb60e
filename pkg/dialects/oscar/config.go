// Package oscar provides the Oscar SQL dialect.
//
// Oscar accepts MySQL-style date functions and LIMIT but lacks several
// standard constructs. The dialect rewrites those into forms Oscar accepts and
// fails with a *dialect.UnsupportedError for anything outside its coverage.
package oscar

import "github.com/leapstack-labs/sqlshim/pkg/core"

// Config is the Oscar dialect configuration.
// This is pure data; behavior lives on Dialect.
var Config = &core.DialectConfig{
	Name:        "oscar",
	Placeholder: core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormUppercase,
	},

	NullCollation:  core.NullsLow,
	CalendarPolicy: core.CalendarShift,

	// Oscar does NOT support these:
	// - CHARACTER SET on a type
	// - VALUES as a FROM item
	// - aggregates nested in aggregates
	// - GROUP BY ROLLUP / WITH ROLLUP
	// - NULLS FIRST / NULLS LAST
	SupportsCharSet:            false,
	RequiresAliasForFromItems:  true,
	SupportsAliasedValues:      false,
	SupportsNestedAggregations: false,
	SupportsGroupByWithRollup:  false,
	SupportsNullsOrdering:      false,

	DataTypes: []string{
		"BOOLEAN", "TINYINT", "SMALLINT", "INTEGER", "BIGINT",
		"DECIMAL", "NUMERIC", "FLOAT", "REAL", "DOUBLE",
		"CHAR", "VARCHAR", "BINARY", "VARBINARY",
		"DATE", "TIME", "TIMESTAMP",
	},
}

// oscarReservedWords are words that must be quoted when used as identifiers.
var oscarReservedWords = []string{
	"all", "and", "as", "asc", "between", "by", "case", "cast", "check",
	"column", "create", "cross", "current_date", "current_time",
	"current_timestamp", "default", "delete", "desc", "distinct", "else",
	"end", "except", "exists", "false", "for", "from", "full", "group",
	"having", "in", "inner", "insert", "intersect", "interval", "into", "is",
	"join", "left", "like", "limit", "not", "null", "offset", "on", "or",
	"order", "right", "rownum", "select", "set", "table", "then", "to",
	"true", "union", "update", "user", "values", "when", "where", "with",
}

// oscarAggregates are Oscar's aggregate functions beyond the standard set.
var oscarAggregates = []string{
	"GROUP_CONCAT", "BIT_AND", "BIT_OR", "BIT_XOR", "STD", "STDDEV", "VARIANCE",
}

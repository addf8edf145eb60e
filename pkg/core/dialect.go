package core

// DialectConfig holds the static configuration for a SQL dialect.
// This is pure data with no rendering behavior.
//
// The runtime behavior (call unparsing, rewrites) lives in pkg/dialect
// implementations, which embed this config.
type DialectConfig struct {
	// Name is the dialect identifier (e.g., "ansi", "oscar")
	Name string

	// Identifiers defines quoting and normalization rules
	Identifiers IdentifierConfig

	// Placeholder defines how query parameters are formatted
	Placeholder PlaceholderStyle

	// NullCollation is where the engine sorts NULLs when ORDER BY does not say
	NullCollation NullCollation

	// CalendarPolicy is how the engine treats dates before the Gregorian switch
	CalendarPolicy CalendarPolicy

	// Capability flags consulted by the printer
	SupportsCharSet            bool // VARCHAR(30) CHARACTER SET "ISO-8859-1"
	RequiresAliasForFromItems  bool // every derived table needs an alias
	SupportsAliasedValues      bool // VALUES (...) AS t(c) in FROM
	SupportsNestedAggregations bool // SUM(SUM(x))
	SupportsGroupByWithRollup  bool // GROUP BY ROLLUP(...) / WITH ROLLUP
	SupportsNullsOrdering      bool // ORDER BY x NULLS FIRST

	// DataTypes lists type keywords for completion and documentation
	DataTypes []string
}

// NormalizationStrategy defines how unquoted identifiers are normalized.
type NormalizationStrategy int

const (
	// NormLowercase normalizes unquoted identifiers to lowercase (default SQL behavior).
	NormLowercase NormalizationStrategy = iota
	// NormUppercase normalizes unquoted identifiers to uppercase (Oracle, Oscar).
	NormUppercase
	// NormCaseSensitive preserves identifier case exactly (MySQL).
	NormCaseSensitive
)

// PlaceholderStyle defines how query parameters are formatted.
type PlaceholderStyle int

const (
	// PlaceholderQuestion uses ? for all parameters (MySQL, Oscar).
	PlaceholderQuestion PlaceholderStyle = iota
	// PlaceholderDollar uses $1, $2, etc. for parameters (PostgreSQL).
	PlaceholderDollar
)

// IdentifierConfig defines how identifiers are quoted and normalized.
type IdentifierConfig struct {
	Quote         string                // Quote character: ", `
	QuoteEnd      string                // End quote character (usually same as Quote)
	Escape        string                // Escape sequence: "", ``
	Normalization NormalizationStrategy // How to normalize unquoted identifiers
}

// NullCollation describes where NULL values sort by default.
type NullCollation int

const (
	// NullsHigh sorts NULLs as if larger than any value (last ascending, first descending).
	NullsHigh NullCollation = iota
	// NullsLow sorts NULLs as if smaller than any value (first ascending, last descending).
	NullsLow
	// NullsAlwaysFirst puts NULLs first regardless of direction.
	NullsAlwaysFirst
	// NullsAlwaysLast puts NULLs last regardless of direction.
	NullsAlwaysLast
)

// String returns the string representation of NullCollation.
func (n NullCollation) String() string {
	switch n {
	case NullsHigh:
		return "high"
	case NullsLow:
		return "low"
	case NullsAlwaysFirst:
		return "first"
	case NullsAlwaysLast:
		return "last"
	default:
		return "unknown"
	}
}

// IsDefaultOrder reports whether the engine already sorts NULLs the requested
// way for the given direction, so no emulation is needed.
func (n NullCollation) IsDefaultOrder(nullsFirst, desc bool) bool {
	asc := !desc
	nullsLast := !nullsFirst
	switch n {
	case NullsAlwaysFirst:
		return nullsFirst
	case NullsAlwaysLast:
		return nullsLast
	case NullsLow:
		return (asc && nullsFirst) || (desc && nullsLast)
	default: // NullsHigh
		return (asc && nullsLast) || (desc && nullsFirst)
	}
}

// CalendarPolicy describes how an engine maps dates before the Gregorian
// calendar switch (1582-10-15).
type CalendarPolicy int

const (
	// CalendarNone means the engine has no notion of a calendar switch.
	CalendarNone CalendarPolicy = iota
	// CalendarNull means pre-switch dates become NULL.
	CalendarNull
	// CalendarLocal means dates are interpreted in the local calendar.
	CalendarLocal
	// CalendarProlepticGregorian means the Gregorian calendar is extended backwards.
	CalendarProlepticGregorian
	// CalendarShift means pre-switch dates are shifted by the Julian/Gregorian offset.
	CalendarShift
)

// String returns the string representation of CalendarPolicy.
func (c CalendarPolicy) String() string {
	switch c {
	case CalendarNone:
		return "none"
	case CalendarNull:
		return "null"
	case CalendarLocal:
		return "local"
	case CalendarProlepticGregorian:
		return "proleptic_gregorian"
	case CalendarShift:
		return "shift"
	default:
		return "unknown"
	}
}

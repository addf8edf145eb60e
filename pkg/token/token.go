// Package token defines the keyword and operator tokens the SQL printer emits.
//
// Tokens are printed through their String form, so a dialect never spells a
// keyword by hand unless the keyword is dialect specific (DATE_FORMAT, DAY_HOUR).
package token

import "fmt"

// TokenType represents a keyword or operator token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

//nolint:revive // TOKEN_* names are intentionally ALL_CAPS for SQL token conventions
const (
	ILLEGAL TokenType = iota

	// Operators
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %
	DPIPE   // ||
	EQ      // =
	NE      // <>
	LT      // <
	GT      // >
	LE      // <=
	GE      // >=

	// Keywords (alphabetical)
	ALL
	AND
	AS
	BY
	CASE
	CAST
	CHARACTER
	DESC
	DISTINCT
	ELSE
	END
	EXCEPT
	FALSE
	FETCH
	FIRST
	FROM
	GROUP
	HAVING
	INTERSECT
	INTERVAL
	IS
	LAST
	LIMIT
	NEXT
	NOT
	NULL
	NULLS
	OFFSET
	ONLY
	OR
	ORDER
	ROLLUP
	ROWS
	SELECT
	SET
	THEN
	TO
	TRUE
	UNION
	VALUES
	WHEN
	WHERE
)

// String returns the SQL spelling of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[TokenType]string{
	ILLEGAL: "ILLEGAL",

	PLUS:    "+",
	MINUS:   "-",
	STAR:    "*",
	SLASH:   "/",
	PERCENT: "%",
	DPIPE:   "||",
	EQ:      "=",
	NE:      "<>",
	LT:      "<",
	GT:      ">",
	LE:      "<=",
	GE:      ">=",

	ALL:       "ALL",
	AND:       "AND",
	AS:        "AS",
	BY:        "BY",
	CASE:      "CASE",
	CAST:      "CAST",
	CHARACTER: "CHARACTER",
	DESC:      "DESC",
	DISTINCT:  "DISTINCT",
	ELSE:      "ELSE",
	END:       "END",
	EXCEPT:    "EXCEPT",
	FALSE:     "FALSE",
	FETCH:     "FETCH",
	FIRST:     "FIRST",
	FROM:      "FROM",
	GROUP:     "GROUP",
	HAVING:    "HAVING",
	INTERSECT: "INTERSECT",
	INTERVAL:  "INTERVAL",
	IS:        "IS",
	LAST:      "LAST",
	LIMIT:     "LIMIT",
	NEXT:      "NEXT",
	NOT:       "NOT",
	NULL:      "NULL",
	NULLS:     "NULLS",
	OFFSET:    "OFFSET",
	ONLY:      "ONLY",
	OR:        "OR",
	ORDER:     "ORDER",
	ROLLUP:    "ROLLUP",
	ROWS:      "ROWS",
	SELECT:    "SELECT",
	SET:       "SET",
	THEN:      "THEN",
	TO:        "TO",
	TRUE:      "TRUE",
	UNION:     "UNION",
	VALUES:    "VALUES",
	WHEN:      "WHEN",
	WHERE:     "WHERE",
}

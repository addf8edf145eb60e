package dialect

import "github.com/leapstack-labs/sqlshim/pkg/token"

// Binding strengths used when deciding whether a nested expression needs
// parentheses. Higher binds tighter.
const (
	PrecedenceNone       = 0
	PrecedenceOr         = 1
	PrecedenceAnd        = 2
	PrecedenceNot        = 3
	PrecedenceComparison = 4 // =, <>, <, >, <=, >=, IS
	PrecedenceAddition   = 5 // +, -, ||
	PrecedenceMultiply   = 6 // *, /, %
	PrecedenceUnary      = 7 // -, +, NOT
	PrecedencePostfix    = 8
)

var operatorPrecedence = map[token.TokenType]int{
	// Logical operators (lowest precedence)
	token.OR:  PrecedenceOr,
	token.AND: PrecedenceAnd,

	// Comparison operators
	token.EQ: PrecedenceComparison,
	token.NE: PrecedenceComparison,
	token.LT: PrecedenceComparison,
	token.GT: PrecedenceComparison,
	token.LE: PrecedenceComparison,
	token.GE: PrecedenceComparison,
	token.IS: PrecedenceComparison,

	// Arithmetic operators
	token.PLUS:  PrecedenceAddition,
	token.MINUS: PrecedenceAddition,
	token.DPIPE: PrecedenceAddition, // || string concatenation

	// Multiplicative operators (highest precedence for binary ops)
	token.STAR:    PrecedenceMultiply,
	token.SLASH:   PrecedenceMultiply,
	token.PERCENT: PrecedenceMultiply,
}

// Precedence returns the binding strength of a binary operator token,
// or PrecedenceNone for tokens that are not binary operators.
func Precedence(t token.TokenType) int {
	return operatorPrecedence[t]
}

package dialect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlshim/pkg/token"
)

func TestRegistry(t *testing.T) {
	d := NewDialect("Registry_Test").Build()
	Register(d)

	got, ok := Get("registry_test")
	require.True(t, ok)
	assert.Same(t, d, got)

	assert.Contains(t, List(), "registry_test")

	got, err := Lookup("REGISTRY_TEST")
	require.NoError(t, err)
	assert.Same(t, d, got)
}

func TestLookup_Errors(t *testing.T) {
	_, err := Lookup("")
	assert.ErrorIs(t, err, ErrDialectRequired)

	_, err = Lookup("nope")
	var unknown *UnknownDialectError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "nope", unknown.Name)
	assert.Contains(t, err.Error(), `unknown dialect "nope"`)
}

func TestUnsupportedError(t *testing.T) {
	err := Unsupported("oscar", "FLOOR time unit", "QUARTER")
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, "oscar: unsupported FLOOR time unit: QUARTER", err.Error())

	err = Unsupported("oscar", "fractional second precision", "")
	assert.Equal(t, "oscar: unsupported fractional second precision", err.Error())

	assert.False(t, errors.Is(errors.New("other"), ErrUnsupported))
}

func TestPrecedence(t *testing.T) {
	assert.Less(t, Precedence(token.OR), Precedence(token.AND))
	assert.Equal(t, PrecedenceNone, Precedence(token.SELECT))
}

package oscar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlshim/internal/testutil"
	"github.com/leapstack-labs/sqlshim/pkg/core"
	"github.com/leapstack-labs/sqlshim/pkg/dialects/oscar"
	"github.com/leapstack-labs/sqlshim/pkg/format"
)

func TestRewriteSingleValue_Structure(t *testing.T) {
	d := oscar.New(oscar.WithLogger(testutil.NewTestLogger(t)))
	operand := core.NewColumn("", "x")

	rewritten, err := d.RewriteSingleValue(core.NewCall(core.OpSingleValue, operand))
	require.NoError(t, err)

	c, ok := rewritten.(*core.CaseExpr)
	require.True(t, ok, "expected *core.CaseExpr, got %T", rewritten)

	count, ok := c.Operand.(*core.FuncCall)
	require.True(t, ok)
	assert.Equal(t, "COUNT", count.Name)
	require.Len(t, count.Args, 1)
	assert.Same(t, operand, count.Args[0])

	require.Len(t, c.Whens, 2)
	assert.Equal(t, core.NewNumber("0"), c.Whens[0].Condition)
	assert.Equal(t, core.NewNull(), c.Whens[0].Result)
	assert.Equal(t, core.NewNumber("1"), c.Whens[1].Condition)
	assert.Same(t, operand, c.Whens[1].Result)

	sq, ok := c.Else.(*core.SubqueryExpr)
	require.True(t, ok)
	body := sq.Select.Body
	assert.Equal(t, core.SetOpUnionAll, body.Op)
	assert.Equal(t, core.NewSelectNull(), body.Left)
	assert.Equal(t, core.NewSelectNull(), body.Right.Left)
	assert.Nil(t, body.Right.Right)
}

func TestRewriteSingleValue_Rendered(t *testing.T) {
	call := core.NewCall(core.OpSingleValue, core.NewColumn("", "x"))

	got, err := format.FormatExpr(call, oscar.Oscar)
	require.NoError(t, err)
	assert.Equal(t,
		"CASE COUNT(x) WHEN 0 THEN NULL WHEN 1 THEN x ELSE (SELECT NULL UNION ALL SELECT NULL) END",
		got)
}

func TestRewriteSingleValue_DoesNotMutateCall(t *testing.T) {
	operand := core.NewColumn("t", "x")
	call := core.NewCall(core.OpSingleValue, operand)

	_, err := oscar.Oscar.RewriteSingleValue(call)
	require.NoError(t, err)
	require.Len(t, call.Operands, 1)
	assert.Same(t, operand, call.Operands[0])
	assert.Equal(t, core.OpSingleValue, call.Kind)
}

func TestRewriteSingleValue_MissingOperand(t *testing.T) {
	_, err := oscar.Oscar.RewriteSingleValue(core.NewCall(core.OpSingleValue))
	assert.Error(t, err)
}

package commands

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/sqlshim/internal/cli/output"
	"github.com/leapstack-labs/sqlshim/pkg/core"
	"github.com/leapstack-labs/sqlshim/pkg/dialect"
	"github.com/spf13/cobra"
)

// NewCapabilitiesCommand creates the capabilities command.
func NewCapabilitiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "capabilities [dialect]",
		Aliases: []string{"caps"},
		Short:   "Show what a dialect supports and its precision limits",
		Long: `Show the capability answers the printer consults for a dialect and the
maximum and default precision it enforces for every type category.

A precision of -1 means the category carries no precision.`,
		Example: `  # Capabilities of the configured dialect
  sqlshim capabilities

  # Compare against the reference dialect
  sqlshim capabilities ansi --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runCapabilities(cmd, name)
		},
	}

	return cmd
}

func runCapabilities(cmd *cobra.Command, name string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	d, err := cmdCtx.Dialect(name)
	if err != nil {
		return err
	}

	caps := capabilitiesOf(d)
	precision := precisionOf(d.TypeSystem())

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(output.CapabilitiesOutput{
			Dialect:      d.Name(),
			Capabilities: caps,
			Precision:    precision,
		})
	}

	r.Header(1, "Dialect: "+d.Name())
	if r.EffectiveMode() == output.ModeText {
		r.Println("")
	}

	capRows := make([]table.Row, 0, len(caps))
	for _, c := range caps {
		capRows = append(capRows, table.Row{output.Label(c.Name), c.Value})
	}
	r.Table(table.Row{"Capability", "Value"}, capRows)
	r.Println("")

	r.Header(2, "Precision")
	if r.EffectiveMode() == output.ModeText {
		r.Println("")
	}
	precRows := make([]table.Row, 0, len(precision))
	for _, p := range precision {
		precRows = append(precRows, table.Row{p.Type, p.Max, p.Default})
	}
	r.Table(table.Row{"Type", "Max Precision", "Default Precision"}, precRows)

	return nil
}

func capabilitiesOf(d dialect.Dialect) []output.CapabilityOutput {
	flag := func(name string, v bool) output.CapabilityOutput {
		return output.CapabilityOutput{Name: name, Value: strconv.FormatBool(v)}
	}
	return []output.CapabilityOutput{
		flag("supports_char_set", d.SupportsCharSet()),
		flag("requires_alias_for_from_items", d.RequiresAliasForFromItems()),
		flag("supports_aliased_values", d.SupportsAliasedValues()),
		flag("supports_nested_aggregations", d.SupportsNestedAggregations()),
		flag("supports_group_by_with_rollup", d.SupportsGroupByWithRollup()),
		flag("supports_nulls_ordering", d.SupportsNullsOrdering()),
		{Name: "null_collation", Value: d.NullCollation().String()},
		{Name: "calendar_policy", Value: d.CalendarPolicy().String()},
	}
}

func precisionOf(ts dialect.TypeSystem) []output.PrecisionOutput {
	types := core.AllTypeNames()
	out := make([]output.PrecisionOutput, 0, len(types))
	for _, t := range types {
		out = append(out, output.PrecisionOutput{
			Type:    t.String(),
			Max:     ts.MaxPrecision(t),
			Default: ts.DefaultPrecision(t),
		})
	}
	return out
}

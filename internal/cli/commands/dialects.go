package commands

import (
	"strings"

	"github.com/leapstack-labs/sqlshim/internal/cli/output"
	"github.com/leapstack-labs/sqlshim/pkg/dialect"
	"github.com/spf13/cobra"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List registered dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			names := dialect.List()
			list := make([]output.DialectOutput, 0, len(names))
			for _, name := range names {
				list = append(list, output.DialectOutput{
					Name:    name,
					Default: strings.EqualFold(name, cmdCtx.Cfg.Dialect),
				})
			}

			switch r.EffectiveMode() {
			case output.ModeJSON:
				return r.JSON(list)
			case output.ModeMarkdown:
				r.Header(1, "Dialects")
				for _, d := range list {
					line := "- " + d.Name
					if d.Default {
						line += " (default)"
					}
					r.Println(line)
				}
			default:
				for _, d := range list {
					if d.Default {
						r.Println(r.Styles().Bold.Render(d.Name) + " " + r.Styles().Muted.Render("(default)"))
						continue
					}
					r.Println(d.Name)
				}
			}
			return nil
		},
	}
}

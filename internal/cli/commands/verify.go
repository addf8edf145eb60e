package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/sqlshim/internal/cli/output"
	"github.com/leapstack-labs/sqlshim/internal/config"
	"github.com/leapstack-labs/sqlshim/internal/verify"
	"github.com/leapstack-labs/sqlshim/pkg/adapter"
	"github.com/leapstack-labs/sqlshim/pkg/dialect"
	"github.com/leapstack-labs/sqlshim/pkg/format"
	"github.com/spf13/cobra"
)

// ErrNoTarget is returned by verify when no target engine is configured.
var ErrNoTarget = errors.New("no target configured: set target.type in sqlshim.yaml or pass --target")

// VerifyOptions holds options for the verify command.
type VerifyOptions struct {
	Constructs []string
	DryRun     bool
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand() *cobra.Command {
	opts := &VerifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check rewrites against a live engine",
		Long: `Render every probe in the built-in catalog and run it against the
configured target, comparing the result with the expected value.

Probes cover temporal truncation, interval units, single-value aggregates,
null ordering and offset-only paging. Probes for constructs the dialect
rejects pass when rendering fails with a coverage error.`,
		Example: `  # Verify against the target in sqlshim.yaml
  sqlshim verify

  # Only truncation and interval probes, against an explicit host
  sqlshim verify --target oscar --host db.internal --construct floor,interval

  # Show the SQL each probe would run
  sqlshim verify --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Constructs, "construct", nil,
		"Only run probes for these constructs (floor, interval, single_value, nulls, offset/fetch)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print probe SQL without connecting")

	cmd.Flags().String("target", "", "Target adapter type (e.g. oscar)")
	cmd.Flags().String("host", "", "Target host")
	cmd.Flags().Int("port", 0, "Target port")
	cmd.Flags().String("user", "", "Target user")
	cmd.Flags().String("password", "", "Target password")
	cmd.Flags().String("database", "", "Target database")
	cmd.Flags().Int("concurrency", config.DefaultConcurrency, "Probes run at once")
	cmd.Flags().Duration("timeout", config.DefaultTimeout, "Per-probe timeout")

	_ = cmd.RegisterFlagCompletionFunc("construct", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"floor", "interval", "single_value", "nulls", "offset/fetch"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("target", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return adapter.ListAdapters(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runVerify(cmd *cobra.Command, opts *VerifyOptions) error {
	cmdCtx := NewCommandContext(cmd)
	ctx := cmd.Context()

	constructs := make([]string, 0, len(opts.Constructs))
	for _, c := range opts.Constructs {
		constructs = append(constructs, strings.ToUpper(strings.TrimSpace(c)))
	}
	probes := verify.Filter(verify.Catalog(), constructs...)
	if len(probes) == 0 {
		return fmt.Errorf("no probes match constructs %s", strings.Join(opts.Constructs, ", "))
	}

	if opts.DryRun {
		d, err := cmdCtx.Dialect("")
		if err != nil {
			return err
		}
		return renderProbes(cmdCtx.Renderer, d, probes)
	}

	target := cmdCtx.Cfg.Target
	if target == nil || target.Type == "" {
		return ErrNoTarget
	}

	a, err := adapter.Open(ctx, target.AdapterConfig(), cmdCtx.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	version, err := a.ServerVersion(ctx)
	if err != nil {
		cmdCtx.Logger.Warn("could not read server version", "error", err)
	}

	runOpts := []verify.Option{
		verify.WithConcurrency(cmdCtx.Cfg.Verify.Concurrency),
		verify.WithTimeout(cmdCtx.Cfg.Verify.Timeout),
		verify.WithLogger(cmdCtx.Logger),
	}
	dialectName := a.Dialect().Name()
	if f := cmd.Flags().Lookup("dialect"); f != nil && f.Changed {
		d, err := cmdCtx.Dialect("")
		if err != nil {
			return err
		}
		runOpts = append(runOpts, verify.WithDialect(d))
		dialectName = d.Name()
	}

	runner := verify.NewRunner(a, runOpts...)
	results, err := runner.Run(ctx, probes)
	if err != nil {
		return err
	}

	if err := renderResults(cmdCtx.Renderer, dialectName, version, results); err != nil {
		return err
	}

	if _, failed := verify.Summary(results); failed > 0 {
		return fmt.Errorf("%d of %d probes failed", failed, len(results))
	}
	return nil
}

func renderProbes(r *output.Renderer, d dialect.Dialect, probes []verify.Probe) error {
	out := make([]output.ProbeOutput, 0, len(probes))
	for _, p := range probes {
		po := output.ProbeOutput{Name: p.Name, Construct: p.Construct}
		sql, err := format.Format(p.Stmt, d)
		switch {
		case err != nil:
			po.Detail = err.Error()
			po.Passed = p.WantUnsupported && errors.Is(err, dialect.ErrUnsupported)
		case p.WantUnsupported:
			po.SQL = strings.TrimSpace(sql)
			po.Detail = "expected a coverage error"
		default:
			po.SQL = strings.TrimSpace(sql)
			po.Passed = true
		}
		out = append(out, po)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeMarkdown:
		r.Header(1, "Probes: "+d.Name())
		for _, po := range out {
			r.Println(output.FormatHeader(2, po.Name))
			r.Println("")
			if po.SQL != "" {
				r.Println(output.FormatCodeBlock("sql", po.SQL))
			} else {
				r.Println(po.Detail)
			}
			r.Println("")
		}
	default:
		for _, po := range out {
			r.Println(r.Styles().Muted.Render("-- " + po.Name))
			if po.SQL != "" {
				r.Println(po.SQL + ";")
			} else {
				r.Println(r.Styles().Muted.Render("-- " + po.Detail))
			}
		}
	}
	return nil
}

func renderResults(r *output.Renderer, dialectName, version string, results []verify.Result) error {
	passed, failed := verify.Summary(results)

	probes := make([]output.ProbeOutput, 0, len(results))
	for _, res := range results {
		probes = append(probes, output.ProbeOutput{
			Name:       res.Probe.Name,
			Construct:  res.Probe.Construct,
			SQL:        strings.TrimSpace(res.SQL),
			Passed:     res.Passed(),
			Detail:     res.Detail(),
			DurationMS: res.Duration.Milliseconds(),
		})
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(output.VerifyOutput{
			Dialect:       dialectName,
			ServerVersion: version,
			Passed:        passed,
			Failed:        failed,
			Probes:        probes,
		})
	case output.ModeMarkdown:
		r.Header(1, "Verify: "+dialectName)
		if version != "" {
			r.Println(output.FormatKeyValue("server", version))
			r.Println("")
		}
		rows := make([]table.Row, 0, len(probes))
		for _, p := range probes {
			status := "PASS"
			if !p.Passed {
				status = "FAIL"
			}
			rows = append(rows, table.Row{p.Name, p.Construct, status, p.Detail})
		}
		r.Table(table.Row{"Probe", "Construct", "Result", "Detail"}, rows)
		r.Println("")
		r.Printf("%d passed, %d failed\n", passed, failed)
	default:
		title := "Verify: " + dialectName
		if version != "" {
			title += " (" + version + ")"
		}
		r.Header(1, title)
		for _, p := range probes {
			status := "success"
			if !p.Passed {
				status = "failed"
			}
			r.StatusLine(p.Name, status, p.Detail)
		}
		r.Println("")
		summary := fmt.Sprintf("%d passed, %d failed", passed, failed)
		if failed > 0 {
			r.Println(r.Styles().Error.Render(summary))
		} else {
			r.Success(summary)
		}
	}
	return nil
}

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leapstack-labs/sqlshim/internal/cli/output"
	"github.com/leapstack-labs/sqlshim/internal/exprdoc"
	"github.com/leapstack-labs/sqlshim/pkg/format"
	"github.com/spf13/cobra"
)

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Render query documents as SQL for a dialect",
		Long: `Render YAML query documents as SQL in the target dialect.

Each document may name its own dialect; --dialect overrides every document.
Constructs the dialect cannot express stop rendering with an error and no
SQL is printed for that run.

Output adapts to environment:
  - Terminal: Plain SQL (suitable for syntax highlighting)
  - Piped/Scripted: Markdown with code block`,
		Example: `  # Render a document for Oscar
  sqlshim render queries/daily.yaml

  # Read documents from stdin
  cat queries/daily.yaml | sqlshim render

  # Render for another dialect as JSON
  sqlshim render queries/daily.yaml --dialect ansi --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args)
		},
	}

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	docs, err := readDocuments(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	forced := ""
	if f := cmd.Flags().Lookup("dialect"); f != nil && f.Changed {
		forced = cmdCtx.Cfg.Dialect
	}

	rendered := make([]output.RenderOutput, 0, len(docs))
	for i, doc := range docs {
		name := doc.Dialect
		if forced != "" {
			name = forced
		}
		d, err := cmdCtx.Dialect(name)
		if err != nil {
			return err
		}

		stmt, err := doc.Statement()
		if err != nil {
			return err
		}

		sql, err := format.Format(stmt, d)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", documentLabel(doc, i), err)
		}
		cmdCtx.Logger.Debug("rendered document", "document", documentLabel(doc, i), "dialect", d.Name())

		rendered = append(rendered, output.RenderOutput{
			Name:    doc.Name,
			Dialect: d.Name(),
			SQL:     strings.TrimSpace(sql),
		})
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(rendered)
	case output.ModeMarkdown:
		for i, out := range rendered {
			title := "Rendered SQL"
			if out.Name != "" {
				title += ": " + out.Name
			}
			if i > 0 {
				r.Println("")
			}
			r.Println(output.FormatHeader(1, title))
			r.Println("")
			r.Println(output.FormatKeyValue("dialect", out.Dialect))
			r.Println("")
			r.Println(output.FormatCodeBlock("sql", out.SQL))
		}
	default:
		for _, out := range rendered {
			if out.Name != "" {
				r.Println(r.Styles().Muted.Render("-- " + out.Name))
			}
			r.Println(out.SQL + ";")
		}
	}

	return nil
}

// readDocuments decodes every document from the named files, or from stdin
// when no file (or "-") is given.
func readDocuments(stdin io.Reader, paths []string) ([]*exprdoc.Document, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	var docs []*exprdoc.Document
	for _, path := range paths {
		var (
			batch []*exprdoc.Document
			err   error
		)
		if path == "-" {
			batch, err = exprdoc.Decode(stdin)
		} else {
			batch, err = decodeFile(path)
		}
		if err != nil {
			if path == "-" {
				path = "stdin"
			}
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		docs = append(docs, batch...)
	}

	if len(docs) == 0 {
		return nil, errors.New("no query documents found")
	}
	return docs, nil
}

func decodeFile(path string) ([]*exprdoc.Document, error) {
	f, err := os.Open(path) //nolint:gosec // path is a user-supplied CLI argument
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return exprdoc.Decode(f)
}

func documentLabel(doc *exprdoc.Document, i int) string {
	if doc.Name != "" {
		return doc.Name
	}
	return fmt.Sprintf("document %d", i)
}

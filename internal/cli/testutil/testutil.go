// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlshim/internal/cli/output"
)

// DailyOrdersDoc is a query document exercising FLOOR, null ordering and paging.
const DailyOrdersDoc = `name: daily_orders
query:
  select:
    - expr: {floor: order_ts, to: DAY}
      as: order_day
    - expr: {func: COUNT, star: true}
      as: orders
  from: {table: orders}
  group_by:
    - {floor: order_ts, to: DAY}
  order_by:
    - expr: order_day
      nulls: last
  limit: 10
  offset: 20
`

// WeeklyDoc truncates to a week, which Oscar spells with STR_TO_DATE.
const WeeklyDoc = `name: weekly
query:
  select:
    - expr: {floor: created_at, to: WEEK}
      as: week_start
  from: {table: events}
`

// QuarterDoc truncates to a quarter, which Oscar cannot express.
const QuarterDoc = `name: quarterly
query:
  select:
    - expr: {floor: created_at, to: QUARTER}
  from: {table: events}
`

// SetupTestProject creates a temporary directory holding sqlshim.yaml (when
// configYAML is non-empty) and the given query documents under queries/.
// It returns the directory.
func SetupTestProject(t *testing.T, configYAML string, docs map[string]string) string {
	t.Helper()

	tmpDir := t.TempDir()
	queriesDir := filepath.Join(tmpDir, "queries")
	if err := os.MkdirAll(queriesDir, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", queriesDir, err)
	}

	if configYAML != "" {
		if err := os.WriteFile(filepath.Join(tmpDir, "sqlshim.yaml"), []byte(configYAML), 0o600); err != nil {
			t.Fatalf("failed to create sqlshim.yaml: %v", err)
		}
	}

	for name, content := range docs {
		if err := os.WriteFile(filepath.Join(queriesDir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	return tmpDir
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.OutputMode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// NewTestRendererText creates a new test renderer in text mode (simulated TTY).
func NewTestRendererText() *TestRenderer {
	return NewTestRenderer(output.ModeText, true)
}

// NewTestRendererMarkdown creates a new test renderer in markdown mode.
func NewTestRendererMarkdown() *TestRenderer {
	return NewTestRenderer(output.ModeMarkdown, false)
}

// NewTestRendererJSON creates a new test renderer in JSON mode.
func NewTestRendererJSON() *TestRenderer {
	return NewTestRenderer(output.ModeJSON, false)
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown performs basic markdown validation.
// It checks for unclosed code fences and empty headers.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	fenceCount := strings.Count(md, "```")
	if fenceCount%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", fenceCount)
	}

	lines := strings.Split(md, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}

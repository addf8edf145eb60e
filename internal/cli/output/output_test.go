package output

import (
	"bytes"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode(t *testing.T) {
	tests := []struct {
		in   string
		want OutputMode
	}{
		{"", ModeAuto},
		{"auto", ModeAuto},
		{"TEXT", ModeText},
		{" markdown ", ModeMarkdown},
		{"json", ModeJSON},
		{"yaml", ModeAuto},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Mode(tt.in))
		})
	}
}

func TestRenderer_EffectiveMode(t *testing.T) {
	var out, errOut bytes.Buffer

	assert.Equal(t, ModeText, NewRendererWithTTY(&out, &errOut, true, ModeAuto).EffectiveMode())
	assert.Equal(t, ModeMarkdown, NewRendererWithTTY(&out, &errOut, false, ModeAuto).EffectiveMode())
	assert.Equal(t, ModeJSON, NewRendererWithTTY(&out, &errOut, true, ModeJSON).EffectiveMode())
	assert.False(t, NewRenderer(&out, &errOut, ModeAuto).IsTTY())
}

func TestRenderer_Header(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeMarkdown)
	r.Header(2, "Capabilities")
	assert.Equal(t, "## Capabilities\n\n", out.String())

	out.Reset()
	r = NewRendererWithTTY(&out, &errOut, false, ModeText)
	r.Header(1, "Capabilities")
	assert.Contains(t, out.String(), "Capabilities")
}

func TestRenderer_StatusLine(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeText)

	r.StatusLine("floor YEAR", "success", "")
	r.StatusLine("floor WEEK", "failed", "got 2024-05-12")
	r.StatusLine("floor QUARTER", "skipped", "")

	lines := out.String()
	assert.Contains(t, lines, "✓ floor YEAR\n")
	assert.Contains(t, lines, "✗ floor WEEK  got 2024-05-12\n")
	assert.Contains(t, lines, "- floor QUARTER\n")
}

func TestRenderer_Warning(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeText)
	r.Warning("careful")
	assert.Empty(t, out.String())
	assert.Equal(t, "careful\n", errOut.String())
}

func TestRenderer_JSON(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeJSON)
	require.NoError(t, r.JSON(map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", out.String())
}

func TestRenderer_Table(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeMarkdown)
	r.Table(table.Row{"Type", "Max Precision"}, []table.Row{{"VARCHAR", 8000}})

	got := out.String()
	assert.Contains(t, got, "| Type | Max Precision |")
	assert.Contains(t, got, "| VARCHAR | 8000 |")

	out.Reset()
	r = NewRendererWithTTY(&out, &errOut, true, ModeText)
	r.Table(table.Row{"Type"}, []table.Row{{"CHAR"}})
	assert.Contains(t, out.String(), "CHAR")
	assert.Contains(t, out.String(), "┌")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(0, "Title"))
	assert.Equal(t, "### Title", FormatHeader(3, "Title"))
	assert.Equal(t, "- **dialect**: oscar", FormatKeyValue("dialect", "oscar"))
	assert.Equal(t, "```sql\nSELECT 1\n```", FormatCodeBlock("sql", "SELECT 1\n"))
	assert.Equal(t, "Supports Char Set", Label("supports_char_set"))
}

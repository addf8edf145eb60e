// Package format renders core statements as SQL text for a target dialect.
package format

import (
	"bytes"
	"strings"

	"github.com/leapstack-labs/sqlshim/pkg/core"
	"github.com/leapstack-labs/sqlshim/pkg/dialect"
	"github.com/leapstack-labs/sqlshim/pkg/token"
)

const indentSize = 2

// Printer handles SQL formatting with proper indentation and style.
// It implements dialect.Writer so dialects can emit tokens directly.
type Printer struct {
	dialect      dialect.Dialect
	output       *bytes.Buffer
	depth        int
	atLineStart  bool
	pendingSpace bool

	// inline > 0 renders nested statements on one line (scalar subqueries).
	inline int
	// aggDepth counts enclosing aggregate calls.
	aggDepth int
	// aliasSeq numbers generated derived-table aliases.
	aliasSeq int
	// fromNames holds the lower-cased names visible in the current FROM clause.
	fromNames map[string]bool

	err error
}

var _ dialect.Writer = (*Printer)(nil)

func newPrinter(d dialect.Dialect) *Printer {
	return &Printer{
		dialect:     d,
		output:      &bytes.Buffer{},
		atLineStart: true,
	}
}

// String returns the formatted output.
func (p *Printer) String() string {
	return strings.TrimRight(p.output.String(), "\n ") + "\n"
}

// fail records the first error; later output is discarded by the caller.
func (p *Printer) fail(err error) {
	if p.err == nil && err != nil {
		p.err = err
	}
}

func (p *Printer) write(s string) {
	if s == "" {
		return
	}
	if p.pendingSpace {
		p.pendingSpace = false
		if !p.atLineStart && s[0] != ')' && s[0] != ',' && !p.lastByteIs('(', ' ') {
			p.output.WriteByte(' ')
		}
	}
	if p.atLineStart && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *Printer) writeln() {
	if p.inline > 0 {
		p.pendingSpace = true
		return
	}
	p.pendingSpace = false
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *Printer) keyword(s string) {
	p.write(strings.ToUpper(s))
}

func (p *Printer) indent() {
	p.depth++
}

func (p *Printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

// space requests a single space before the next token.
func (p *Printer) space() {
	p.pendingSpace = true
}

// kw prints a keyword based on the token type.
func (p *Printer) kw(tokens ...token.TokenType) {
	for i, t := range tokens {
		if i > 0 {
			p.space()
		}
		p.write(t.String())
	}
}

func (p *Printer) lastByteIs(bs ...byte) bool {
	n := p.output.Len()
	if n == 0 {
		return false
	}
	last := p.output.Bytes()[n-1]
	for _, b := range bs {
		if last == b {
			return true
		}
	}
	return false
}

// separate requests a space if the previous token would run into the next.
func (p *Printer) separate() {
	if p.pendingSpace || p.atLineStart || p.output.Len() == 0 {
		return
	}
	last := p.output.Bytes()[p.output.Len()-1]
	switch {
	case last == '_', last == '\'', last == '"', last == '`', last == ')',
		last >= 'a' && last <= 'z', last >= 'A' && last <= 'Z', last >= '0' && last <= '9':
		p.pendingSpace = true
	}
}

// formatList prints a list of items with separators.
// count is the number of items, format is called for each index,
// sep is the separator string, multiline adds newlines after separators.
func (p *Printer) formatList(count int, format func(i int), sep string, multiline bool) {
	for i := 0; i < count; i++ {
		format(i)
		if i < count-1 {
			p.write(sep)
			if multiline {
				p.writeln()
			} else {
				p.space()
			}
		}
	}
}

// ---------- dialect.Writer ----------

// Keyword writes a keyword, separated from a preceding word.
func (p *Printer) Keyword(kw string) {
	p.separate()
	p.keyword(kw)
}

// Print writes s verbatim.
func (p *Printer) Print(s string) {
	p.write(s)
}

// Literal writes s as a single-quoted string literal.
func (p *Printer) Literal(s string) {
	p.separate()
	p.write(quoteString(s))
}

// Identifier writes name, quoted when the dialect requires it.
func (p *Printer) Identifier(name string) {
	p.separate()
	p.write(p.dialect.QuoteIdentifierIfNeeded(name))
}

// Sep writes a list separator followed by a space.
func (p *Printer) Sep(sep string) {
	p.pendingSpace = false
	p.write(sep)
	p.space()
}

// StartList opens a bracketed list.
func (p *Printer) StartList(open, close string) dialect.Frame {
	p.write(open)
	return dialect.Frame{Open: open, Close: close}
}

// EndList closes a list opened by StartList.
func (p *Printer) EndList(f dialect.Frame) {
	p.pendingSpace = false
	p.write(f.Close)
}

// Expr writes a nested expression through the active dialect.
func (p *Printer) Expr(e core.Expr, leftPrec, rightPrec int) error {
	p.separate()
	p.formatExprPrec(e, leftPrec, rightPrec)
	return p.err
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

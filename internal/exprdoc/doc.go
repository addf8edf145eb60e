// Package exprdoc decodes YAML query documents into the core AST.
//
// A document names the query to render and, optionally, the dialect to
// render it for:
//
//	name: monthly_orders
//	dialect: oscar
//	query:
//	  select:
//	    - expr: {floor: order_ts, to: MONTH}
//	      as: month
//	    - expr: {func: COUNT, star: true}
//	  from: {table: orders}
//	  group_by:
//	    - {floor: order_ts, to: MONTH}
//	  order_by:
//	    - {expr: month, desc: true, nulls: first}
//	  limit: 10
//
// Expressions are YAML mappings with one discriminating key (col, num, str,
// bool, null, star, op, func, floor, ceil, single_value, interval, case,
// cast, is_null, is_not_null, paren, subquery). Plain scalars are shorthand:
// strings are column references, numbers are numeric literals, and ~ is NULL.
package exprdoc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/sqlshim/pkg/core"
	"gopkg.in/yaml.v3"
)

// Document is one YAML document in a render input stream.
type Document struct {
	Name    string    `yaml:"name"`
	Dialect string    `yaml:"dialect"`
	Query   *QueryDoc `yaml:"query"`
}

// Decode reads every document in r. Unknown fields are rejected.
func Decode(r io.Reader) ([]*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var docs []*Document
	for i := 0; ; i++ {
		var doc Document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Document: i, Message: err.Error()}
		}
		if doc.Query == nil {
			return nil, &ParseError{Document: i, Message: "missing query"}
		}
		docs = append(docs, &doc)
	}
	return docs, nil
}

// DecodeString is Decode over a string.
func DecodeString(s string) ([]*Document, error) {
	return Decode(strings.NewReader(s))
}

// Statement converts the document's query into a SELECT statement.
func (d *Document) Statement() (*core.SelectStmt, error) {
	if d.Query == nil {
		return nil, errors.New("document has no query")
	}
	stmt, err := d.Query.Statement("query")
	if err != nil {
		if d.Name != "" {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
		return nil, err
	}
	return stmt, nil
}

// ParseError reports a document that could not be decoded.
type ParseError struct {
	Document int
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("document %d: %s", e.Document, e.Message)
}

// FieldError reports an invalid value at a path inside a document.
type FieldError struct {
	Path    string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func fieldErr(path, format string, args ...any) error {
	return &FieldError{Path: path, Message: fmt.Sprintf(format, args...)}
}

package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/itchyny/gojq"
	"gopkg.in/yaml.v3"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is human-readable tabular output (default).
	FormatTable Format = "table"
	// FormatJSON is pretty-printed JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format type.
// Empty string defaults to FormatTable.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatTable, "":
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", errors.New("invalid --output format (expected table|json|yaml)")
	}
}

// Printer handles output formatting across different formats.
type Printer struct {
	w      io.Writer
	format Format
	query  string
}

// NewPrinter creates a new Printer that writes to w in the given format.
// A non-empty query is a jq filter applied to structured output.
func NewPrinter(w io.Writer, format Format, query string) *Printer {
	return &Printer{
		w:      w,
		format: format,
		query:  query,
	}
}

// Structured reports whether the printer emits machine-readable output.
func (p *Printer) Structured() bool {
	return p.format == FormatJSON || p.format == FormatYAML
}

// Print outputs data as JSON or YAML. Table output goes through PrintTable.
func (p *Printer) Print(data interface{}) error {
	switch p.format {
	case FormatJSON:
		return p.printJSON(data)
	case FormatYAML:
		return p.printYAML(data)
	default:
		return fmt.Errorf("table format requires PrintTable method")
	}
}

// printJSON outputs data as pretty-printed JSON.
// If a jq query is set, it filters the output.
func (p *Printer) printJSON(data interface{}) error {
	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if p.query == "" {
		return enc.Encode(data)
	}

	results, err := p.runQuery(data)
	if err != nil {
		return err
	}
	for _, v := range results {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

// printYAML outputs data as YAML. A jq query is applied first and each
// result becomes its own document.
func (p *Printer) printYAML(data interface{}) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()

	if p.query == "" {
		return enc.Encode(data)
	}

	results, err := p.runQuery(data)
	if err != nil {
		return err
	}
	for _, v := range results {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

// runQuery evaluates the jq filter. gojq works on plain maps and slices, so
// data takes a round trip through JSON first.
func (p *Printer) runQuery(data interface{}) ([]interface{}, error) {
	parsed, err := gojq.Parse(p.query)
	if err != nil {
		return nil, fmt.Errorf("invalid --query: %w", err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("invalid --query: %w", err)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding output: %w", err)
	}
	var input interface{}
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, fmt.Errorf("decoding output: %w", err)
	}

	var results []interface{}
	iter := code.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return nil, fmt.Errorf("query error: %w", err)
		}
		results = append(results, v)
	}
	return results, nil
}

// PrintTable prints rows under headers as aligned columns.
func (p *Printer) PrintTable(headers []string, rows [][]string) error {
	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)

	for i, h := range headers {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, h)
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}

	return w.Flush()
}

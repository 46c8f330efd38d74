package ux

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

// Tabular is implemented by command results that can render as a table
type Tabular interface {
	TableHeaders() []string
	TableRows() [][]string
}

// Formatter writes command results to the terminal in one output format
type Formatter interface {
	Format(data interface{}) error
}

// FormatterOptions contains configuration for formatters
type FormatterOptions struct {
	// Writer is where output is written (defaults to os.Stdout)
	Writer io.Writer
}

// NewFormatter creates a formatter based on the format string
func NewFormatter(format string, opts *FormatterOptions) (Formatter, error) {
	if opts == nil {
		opts = &FormatterOptions{Writer: os.Stdout}
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch format {
	case "json":
		return &JSONFormatter{opts: opts}, nil
	case "table", "":
		return &TableFormatter{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s (supported: table, json)", format)
	}
}

// JSONFormatter formats output as indented JSON
type JSONFormatter struct {
	opts *FormatterOptions
}

// Format writes data as JSON
func (f *JSONFormatter) Format(data interface{}) error {
	encoder := json.NewEncoder(f.opts.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// TableFormatter formats output as an aligned text table
type TableFormatter struct {
	opts *FormatterOptions
}

// Format writes data as a table. Tabular values render with a header
// row; strings and Stringers print as-is.
func (f *TableFormatter) Format(data interface{}) error {
	switch v := data.(type) {
	case Tabular:
		return f.writeTable(v.TableHeaders(), v.TableRows())
	case string:
		_, err := fmt.Fprintln(f.opts.Writer, v)
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(f.opts.Writer, v.String())
		return err
	default:
		return fmt.Errorf("table formatter requires Tabular, string or Stringer data")
	}
}

func (f *TableFormatter) writeTable(headers []string, rows [][]string) error {
	w := tabwriter.NewWriter(f.opts.Writer, 0, 4, 2, ' ', 0)

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

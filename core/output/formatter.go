// Package output renders calculation results for humans and machines.
// Formatters never alter the numbers they are handed.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"port-tariff/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the result
	Render(w io.Writer, result *types.CalculationResult) error
}

// New returns the formatter for a format name
func New(format string, showDetails bool) (Formatter, error) {
	switch Format(format) {
	case FormatCLI, "":
		return &CLIFormatter{ShowDetails: showDetails}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown output format: %s", format)
}

// CLIFormatter renders a breakdown table
type CLIFormatter struct {
	// ShowDetails adds charging method and band columns
	ShowDetails bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the breakdown table
func (f *CLIFormatter) Render(w io.Writer, result *types.CalculationResult) error {
	if result.Empty() {
		_, err := fmt.Fprintln(w, "No applicable tariff components.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if f.ShowDetails {
		fmt.Fprintln(tw, "COMPONENT\tCOST\tMETHOD\tBAND")
		for _, entry := range result.Breakdown {
			method, _ := entry.Details["charging_method"].(string)
			bandRange, _ := entry.Details["band"].(string)
			fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\n",
				entry.Component, entry.Cost.StringFixed(2), result.Currency, method, bandRange)
		}
	} else {
		fmt.Fprintln(tw, "COMPONENT\tCOST")
		// Collapse breakdown lines into per-component totals.
		names := make([]string, 0, len(result.Components))
		for name := range result.Components {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(tw, "%s\t%s %s\n", name, result.Components[name].StringFixed(2), result.Currency)
		}
	}
	fmt.Fprintf(tw, "TOTAL\t%s %s\n", result.Total.StringFixed(2), result.Currency)
	return tw.Flush()
}

// JSONFormatter renders the result as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the result as JSON
func (f *JSONFormatter) Render(w io.Writer, result *types.CalculationResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"port-tariff/core/types"
)

func sampleResult() *types.CalculationResult {
	result := types.NewCalculationResult("SEK")
	result.AddComponent(types.ComponentPortInfrastructureDues.String(),
		decimal.NewFromInt(50000), nil,
		map[string]any{"charging_method": "per_gt", "band": "0-10000"})
	result.AddComponent(types.ComponentEnvironmentalDiscounts.String(),
		decimal.NewFromInt(-5000), nil, nil)
	return result
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   Format
		ok     bool
	}{
		{name: "cli", format: "cli", want: FormatCLI, ok: true},
		{name: "json", format: "json", want: FormatJSON, ok: true},
		{name: "default is cli", format: "", want: FormatCLI, ok: true},
		{name: "unknown", format: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.format, false)
			if tt.ok && (err != nil || f.Format() != tt.want) {
				t.Errorf("New(%q) = %v, %v", tt.format, f, err)
			}
			if !tt.ok && err == nil {
				t.Errorf("expected error for format %q", tt.format)
			}
		})
	}
}

func TestCLIFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{}
	if err := f.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"COMPONENT", "port_infrastructure_dues", "50000.00 SEK",
		"environmental_discounts", "-5000.00 SEK", "TOTAL", "45000.00 SEK",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCLIFormatterDetails(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{ShowDetails: true}
	if err := f.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"METHOD", "BAND", "per_gt", "0-10000"} {
		if !strings.Contains(out, want) {
			t.Errorf("detailed output missing %q:\n%s", want, out)
		}
	}
}

func TestCLIFormatterEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{}
	if err := f.Render(&buf, types.NewCalculationResult("SEK")); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "No applicable tariff components.") {
		t.Errorf("unexpected empty-result output: %q", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}
	if err := f.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded struct {
		Total     decimal.Decimal  `json:"total"`
		Currency  string           `json:"currency"`
		Breakdown []map[string]any `json:"breakdown"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if !decoded.Total.Equal(decimal.NewFromInt(45000)) {
		t.Errorf("expected total 45000, got %s", decoded.Total)
	}
	if decoded.Currency != "SEK" {
		t.Errorf("expected currency SEK, got %q", decoded.Currency)
	}
	if len(decoded.Breakdown) != 2 {
		t.Errorf("expected 2 breakdown lines, got %d", len(decoded.Breakdown))
	}
}

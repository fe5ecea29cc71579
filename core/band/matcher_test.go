package band

import (
	"testing"

	"port-tariff/core/types"
)

func fp(v float64) *float64 {
	return &v
}

func TestFindHalfOpenInterval(t *testing.T) {
	rule := &types.TariffRule{
		Bands: []types.Band{
			{Name: "GT_0_500", BandType: types.BandTypeStandard, MinValue: fp(0), MaxValue: fp(500)},
			{Name: "GT_500_2000", BandType: types.BandTypeStandard, MinValue: fp(500), MaxValue: fp(2000)},
			{Name: "GT_2000_plus", BandType: types.BandTypeStandard, MinValue: fp(2000)},
		},
	}

	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "lower bound is inclusive", value: 0, expected: "GT_0_500"},
		{name: "inside first band", value: 499.9, expected: "GT_0_500"},
		{name: "upper bound is exclusive", value: 500, expected: "GT_500_2000"},
		{name: "inside second band", value: 1999, expected: "GT_500_2000"},
		{name: "open-ended band", value: 1000000, expected: "GT_2000_plus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Find(rule, tt.value, types.BandTypeStandard)
			if b == nil {
				t.Fatalf("expected band %q, got none", tt.expected)
			}
			if b.Name != tt.expected {
				t.Errorf("expected band %q, got %q", tt.expected, b.Name)
			}
		})
	}
}

func TestFindFirstDeclaredMatchWins(t *testing.T) {
	// Overlapping bands are legal; declaration order decides.
	rule := &types.TariffRule{
		Bands: []types.Band{
			{Name: "wide", BandType: types.BandTypeStandard, MinValue: fp(0), MaxValue: fp(10000)},
			{Name: "narrow", BandType: types.BandTypeStandard, MinValue: fp(400), MaxValue: fp(600)},
		},
	}

	b := Find(rule, 500, types.BandTypeStandard)
	if b == nil || b.Name != "wide" {
		t.Fatalf("expected first declared band to win, got %+v", b)
	}
}

func TestFindFiltersByBandType(t *testing.T) {
	rule := &types.TariffRule{
		Bands: []types.Band{
			{Name: "calls_1_2", BandType: types.BandTypeCallsPerWeek, MinValue: fp(1), MaxValue: fp(3)},
			{Name: "GT_all", BandType: types.BandTypeStandard, MinValue: fp(0)},
		},
	}

	b := Find(rule, 2, types.BandTypeCallsPerWeek)
	if b == nil || b.Name != "calls_1_2" {
		t.Fatalf("expected calls_1_2, got %+v", b)
	}

	b = Find(rule, 2, types.BandTypeStandard)
	if b == nil || b.Name != "GT_all" {
		t.Fatalf("expected GT_all, got %+v", b)
	}
}

func TestFindLegacyTagFallback(t *testing.T) {
	tests := []struct {
		name      string
		bandType  string
		requested string
		found     bool
	}{
		{name: "gt falls back to standard", bandType: types.BandTypeStandard, requested: types.BandTypeGT, found: true},
		{name: "gt falls back to gt_range", bandType: types.BandTypeGTRange, requested: types.BandTypeGT, found: true},
		{name: "standard does not fall back", bandType: types.BandTypeGTRange, requested: types.BandTypeStandard, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &types.TariffRule{
				Bands: []types.Band{
					{Name: "only", BandType: tt.bandType, MinValue: fp(0)},
				},
			}
			b := Find(rule, 100, tt.requested)
			if tt.found && b == nil {
				t.Fatal("expected fallback to find the band")
			}
			if !tt.found && b != nil {
				t.Fatalf("expected no band, got %q", b.Name)
			}
		})
	}
}

func TestFindNoMatchIsNil(t *testing.T) {
	rule := &types.TariffRule{
		Bands: []types.Band{
			{Name: "GT_0_500", BandType: types.BandTypeStandard, MinValue: fp(0), MaxValue: fp(500)},
		},
	}
	if b := Find(rule, 500, types.BandTypeStandard); b != nil {
		t.Fatalf("expected nil for out-of-range value, got %q", b.Name)
	}
	if b := Find(&types.TariffRule{}, 500, types.BandTypeStandard); b != nil {
		t.Fatalf("expected nil for bandless rule, got %q", b.Name)
	}
}

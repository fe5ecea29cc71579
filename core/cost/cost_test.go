package cost

import (
	"testing"

	"github.com/shopspring/decimal"

	"port-tariff/core/types"
)

func dp(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func fp(v float64) *float64 {
	return &v
}

func TestComponentCostRateTimesQuantity(t *testing.T) {
	tests := []struct {
		name     string
		method   types.ChargingMethod
		ctx      types.Context
		rate     float64
		expected string
	}{
		{name: "per GT", method: types.PerGT, ctx: types.Context{types.FieldGT: 5000.0}, rate: 0.13, expected: "650"},
		{name: "per m3", method: types.PerM3, ctx: types.Context{types.FieldVolumeM3: 20.0}, rate: 150, expected: "3000"},
		{name: "per ton", method: types.PerTon, ctx: types.Context{types.FieldTonnage: 12.0}, rate: 10, expected: "120"},
		{name: "per metre LOA", method: types.PerMetreLOA, ctx: types.Context{types.FieldLOAMetres: 180.0}, rate: 2, expected: "360"},
		{name: "per passenger", method: types.PerPassenger, ctx: types.Context{types.FieldPassengerCount: 2400}, rate: 5, expected: "12000"},
		{name: "per TEU", method: types.PerTEU, ctx: types.Context{types.FieldTEU: 800}, rate: 12, expected: "9600"},
		{name: "missing quantity bills zero", method: types.PerGT, ctx: types.Context{}, rate: 0.13, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &types.TariffRule{
				ChargingMethod: tt.method,
				Pricing:        types.PricingRule{Rate: dp(tt.rate)},
			}
			got := ComponentCost(rule, tt.ctx, nil)
			if !got.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestComponentCostFlatFee(t *testing.T) {
	rule := &types.TariffRule{
		ChargingMethod: types.FlatPerCall,
		Pricing:        types.PricingRule{FlatFee: dp(5000)},
	}
	got := ComponentCost(rule, types.Context{}, nil)
	if !got.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected 5000, got %s", got)
	}
}

func TestComponentCostNoPricingIsZero(t *testing.T) {
	rule := &types.TariffRule{ChargingMethod: types.PerGT}
	got := ComponentCost(rule, types.Context{types.FieldGT: 5000.0}, nil)
	if !got.IsZero() {
		t.Errorf("expected zero, got %s", got)
	}
}

func TestComponentCostUnmappedMethodBillsZeroQuantity(t *testing.T) {
	rule := &types.TariffRule{
		ChargingMethod: types.Percentage,
		Pricing:        types.PricingRule{Rate: dp(100)},
	}
	got := ComponentCost(rule, types.Context{types.FieldGT: 5000.0}, nil)
	if !got.IsZero() {
		t.Errorf("expected zero for unmapped charging method, got %s", got)
	}
}

func TestComponentCostQuantityOverride(t *testing.T) {
	rule := &types.TariffRule{
		ChargingMethod: types.PerM3,
		Pricing:        types.PricingRule{Rate: dp(150)},
	}
	got := ComponentCost(rule, types.Context{types.FieldVolumeM3: 15.0}, fp(4))
	if !got.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected override quantity to win: expected 600, got %s", got)
	}
}

func TestComponentCostPercentageAdjustment(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		expected   string
	}{
		{name: "negative percentage discounts", percentage: -10, expected: "900"},
		{name: "positive percentage marks up", percentage: 25, expected: "1250"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &types.TariffRule{
				ChargingMethod: types.FlatPerCall,
				Pricing:        types.PricingRule{FlatFee: dp(1000), Percentage: dp(tt.percentage)},
			}
			got := ComponentCost(rule, types.Context{}, nil)
			if !got.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestComponentCostClamping(t *testing.T) {
	tests := []struct {
		name     string
		gt       float64
		min      *decimal.Decimal
		max      *decimal.Decimal
		expected string
	}{
		{name: "min charge lifts small amounts", gt: 10, min: dp(500), expected: "500"},
		{name: "max charge caps large amounts", gt: 100000, max: dp(5000), expected: "5000"},
		{name: "inside bounds untouched", gt: 2000, min: dp(100), max: dp(5000), expected: "2000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &types.TariffRule{
				ChargingMethod: types.PerGT,
				Pricing:        types.PricingRule{Rate: dp(1), MinCharge: tt.min, MaxCharge: tt.max},
			}
			got := ComponentCost(rule, types.Context{types.FieldGT: tt.gt}, nil)
			if !got.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

// Package cost computes the monetary cost of a single tariff
// component from its rule and the vessel context. All amounts are
// decimals; never use float64 for money.
package cost

import (
	"github.com/shopspring/decimal"

	"port-tariff/core/types"
)

// quantityFields maps a charging method to the context field holding
// its billing quantity. Flat-fee and per-call methods bill quantity 1;
// an unmapped method bills quantity 0.
var quantityFields = map[types.ChargingMethod]string{
	types.PerGT:        types.FieldGT,
	types.PerM3:        types.FieldVolumeM3,
	types.PerTon:       types.FieldTonnage,
	types.PerMetreLOA:  types.FieldLOAMetres,
	types.PerPassenger: types.FieldPassengerCount,
	types.PerTEU:       types.FieldTEU,
}

// ComponentCost calculates the cost of one component under a rule.
// An explicit quantity override takes precedence over the charging
// method's context field (the engine uses this to bill only excess
// sludge volume).
//
// Base amount is rate x quantity when a rate is set, else the flat
// fee, else zero. A signed percentage then adjusts the amount, and
// min/max charges clamp it, in that order.
func ComponentCost(rule *types.TariffRule, ctx types.Context, quantityOverride *float64) decimal.Decimal {
	pricing := rule.Pricing

	quantity := 0.0
	if quantityOverride != nil {
		quantity = *quantityOverride
	} else {
		quantity = quantityFor(rule.ChargingMethod, ctx)
	}

	var amount decimal.Decimal
	switch {
	case pricing.Rate != nil:
		amount = pricing.Rate.Mul(decimal.NewFromFloat(quantity))
	case pricing.FlatFee != nil:
		amount = *pricing.FlatFee
	default:
		amount = decimal.Zero
	}

	if pricing.Percentage != nil {
		// percentage is signed: -10 discounts, +5 marks up
		factor := decimal.NewFromInt(1).Add(pricing.Percentage.Div(decimal.NewFromInt(100)))
		amount = amount.Mul(factor)
	}

	if pricing.MinCharge != nil && amount.LessThan(*pricing.MinCharge) {
		amount = *pricing.MinCharge
	}
	if pricing.MaxCharge != nil && amount.GreaterThan(*pricing.MaxCharge) {
		amount = *pricing.MaxCharge
	}

	return amount
}

// quantityFor extracts the billing quantity from the context for a
// charging method
func quantityFor(method types.ChargingMethod, ctx types.Context) float64 {
	if field, ok := quantityFields[method]; ok {
		return contextNumber(ctx, field)
	}
	if method == types.FlatPerCall || method == types.PerCall {
		return 1
	}
	return 0
}

func contextNumber(ctx types.Context, field string) float64 {
	switch v := ctx[field].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

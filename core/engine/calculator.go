// Package engine orchestrates deterministic tariff calculation. It
// filters rules by vessel type, orders them by the component priority
// policy, applies exclusivity, and folds matching rules into a
// CalculationResult. It performs no I/O and never errors on
// business-data mismatches: a missing parameter, unmatched band or
// unmet condition only means a rule contributes nothing.
package engine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"port-tariff/core/band"
	"port-tariff/core/condition"
	"port-tariff/core/cost"
	"port-tariff/core/types"
	"port-tariff/internal/logging"
)

// Calculator is the deterministic tariff engine. The rule database is
// owned for the calculator's lifetime and read-only; concurrent
// Calculate calls are safe.
type Calculator struct {
	db  *types.TariffDatabase
	cfg Config
}

// New creates a calculator over a loaded rule database
func New(db *types.TariffDatabase, cfg Config) *Calculator {
	return &Calculator{db: db, cfg: cfg}
}

// Database returns the rule database the calculator serves
func (c *Calculator) Database() *types.TariffDatabase {
	return c.db
}

// Calculate computes the tariff for one set of vessel parameters.
// Without a vessel type it returns a well-formed zero-total result;
// callers distinguish no-data from a genuine zero-cost call via
// Empty().
func (c *Calculator) Calculate(params *types.VesselParameters) *types.CalculationResult {
	result := types.NewCalculationResult(c.cfg.Currency)

	if params == nil || params.VesselType == "" {
		return result
	}

	rules := c.db.RulesFor(params.VesselType, "")
	ctx := params.ToContext()

	// Stable ascending sort: most specific rules evaluate first, and
	// equal-priority rules keep their declared order.
	sorted := make([]*types.TariffRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return rulePriority(sorted[i]) < rulePriority(sorted[j])
	})

	applied := make(map[types.TariffComponent]bool)

	for _, rule := range sorted {
		if !condition.Applicable(rule, ctx) {
			continue
		}
		if c.skipForExclusivity(rule, applied) {
			continue
		}

		matched, bandRange := c.matchBand(rule, ctx, applied)
		if !matched {
			continue
		}

		c.markApplied(rule, applied)

		override := c.excessSludgeOverride(rule, ctx)
		amount := cost.ComponentCost(rule, ctx, override)
		if amount.IsZero() {
			continue
		}

		details := map[string]any{
			"charging_method": rule.ChargingMethod.String(),
			"rate":            rule.Pricing.Rate,
			"currency":        rule.Pricing.Currency,
		}
		if bandRange != "" {
			details["band"] = bandRange
		}
		if rule.Pricing.Percentage != nil {
			details["percentage"] = rule.Pricing.Percentage
		}

		result.AddComponent(rule.Component.String(), amount, rule, details)
		logging.Debug("applied tariff rule",
			zap.String("component", rule.Component.String()),
			zap.String("charging_method", rule.ChargingMethod.String()),
			zap.String("cost", amount.String()))
	}

	c.applyEnvironmentalDiscount(ctx, result)

	return result
}

// skipForExclusivity enforces the per-component accumulation policy
// before banding.
func (c *Calculator) skipForExclusivity(rule *types.TariffRule, applied map[types.TariffComponent]bool) bool {
	if !applied[rule.Component] {
		return false
	}
	switch policyFor(rule.Component) {
	case exclusive:
		return true
	case baseChargeOnce:
		// Only the per-GT positive-rate base due is exclusive;
		// discount rules and other units always accumulate.
		return rule.ChargingMethod == types.PerGT &&
			rule.Pricing.Rate != nil && rule.Pricing.Rate.IsPositive()
	case perGTOnce:
		// Per-m3 excess-volume charges are never blocked.
		return rule.ChargingMethod == types.PerGT
	}
	return false
}

// matchBand resolves the rule's band, if any. For banded rules the
// lookup value follows the charging method: tonnage-like methods band
// on gross tonnage, volume and weight methods on volume (falling back
// to tonnage when no volume was supplied). Returns matched=false when
// a banded rule finds no band.
func (c *Calculator) matchBand(rule *types.TariffRule, ctx types.Context, applied map[types.TariffComponent]bool) (bool, string) {
	if !rule.Banded() {
		return true, ""
	}

	value := contextFloat(ctx, types.FieldGT)
	if rule.ChargingMethod == types.PerM3 || rule.ChargingMethod == types.PerTon {
		if v, ok := ctx[types.FieldVolumeM3]; ok {
			value = asFloat(v)
		} else {
			value = contextFloat(ctx, types.FieldTonnage)
		}
	}

	// Rule sources tag tonnage bands inconsistently; the lookup tries
	// the two tags populated by the current extractor, in order.
	b := band.Find(rule, value, types.BandTypeStandard)
	if b == nil {
		b = band.Find(rule, value, types.BandTypeGTRange)
	}
	if b == nil {
		return false, ""
	}

	// An imperfect sort can still present a second matching rate
	// table for an already-charged exclusive component.
	if policyFor(rule.Component) == exclusive && len(rule.Bands) > 1 && applied[rule.Component] {
		return false, ""
	}

	return true, formatBandRange(b)
}

// markApplied records a charge under the component policy. Exclusive
// components are marked only when a band matched or the rule is
// bandless; the charge-once components only for their specific per-GT
// base-due case.
func (c *Calculator) markApplied(rule *types.TariffRule, applied map[types.TariffComponent]bool) {
	switch policyFor(rule.Component) {
	case exclusive:
		applied[rule.Component] = true
	case baseChargeOnce:
		if rule.ChargingMethod == types.PerGT && rule.Pricing.Rate != nil && rule.Pricing.Rate.IsPositive() {
			applied[rule.Component] = true
		}
	case perGTOnce:
		if rule.ChargingMethod == types.PerGT {
			applied[rule.Component] = true
		}
	}
}

// excessSludgeOverride bills only the volume above the free allowance
// for per-m3 sludge rules conditioned on exceeding it. The condition
// is recognized textually ("more than" with the allowance threshold),
// matching how extracted rules phrase the exemption.
func (c *Calculator) excessSludgeOverride(rule *types.TariffRule, ctx types.Context) *float64 {
	if rule.Component != types.ComponentSludgeOilyBilgeWater || rule.ChargingMethod != types.PerM3 {
		return nil
	}
	volume := contextFloat(ctx, types.FieldSludgeVolume)
	if volume <= c.cfg.FreeSludgeVolumeM3 {
		return nil
	}

	threshold := strconv.FormatFloat(c.cfg.FreeSludgeVolumeM3, 'f', -1, 64)
	for i := range rule.Conditions {
		cond := &rule.Conditions[i]
		if cond.Field != "quantity" && cond.Field != types.FieldSludgeVolume {
			continue
		}
		if strings.Contains(strings.ToLower(cond.Operator), "more than") &&
			strings.Contains(stringifyValue(cond.Value), threshold) {
			excess := volume - c.cfg.FreeSludgeVolumeM3
			return &excess
		}
	}
	return nil
}

// applyEnvironmentalDiscount appends the automatic ESI discount: a
// qualifying score discounts positive port infrastructure dues by the
// configured percentage, as a synthetic component with no originating
// rule.
func (c *Calculator) applyEnvironmentalDiscount(ctx types.Context, result *types.CalculationResult) {
	score, ok := ctx[types.FieldESIScore]
	if !ok {
		return
	}
	if asFloat(score) < c.cfg.ESIScoreThreshold {
		return
	}

	dues := result.ComponentCost(types.ComponentPortInfrastructureDues)
	if !dues.IsPositive() {
		return
	}

	discount := dues.Mul(decimal.NewFromFloat(c.cfg.ESIDiscountPercent)).Div(decimal.NewFromInt(100))
	result.AddComponent(types.ComponentEnvironmentalDiscounts.String(), discount, nil, map[string]any{
		"type":       "ESI_discount",
		"percentage": c.cfg.ESIDiscountPercent,
		"applied_to": types.ComponentPortInfrastructureDues.String(),
	})
}

func formatBandRange(b *types.Band) string {
	min, max := "", ""
	if b.MinValue != nil {
		min = strconv.FormatFloat(*b.MinValue, 'f', -1, 64)
	}
	if b.MaxValue != nil {
		max = strconv.FormatFloat(*b.MaxValue, 'f', -1, 64)
	}
	return min + "-" + max
}

func contextFloat(ctx types.Context, field string) float64 {
	if v, ok := ctx[field]; ok {
		return asFloat(v)
	}
	return 0
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

func stringifyValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	}
	return ""
}

// Package loader - Structural rule validation
package loader

import (
	"port-tariff/core/types"
	"port-tariff/internal/errors"
)

// ValidateRule checks the structural invariants the engine assumes.
// The engine itself never re-validates: a rule that passes here is
// safe to evaluate.
func ValidateRule(rule *types.TariffRule) error {
	if !rule.VesselType.Valid() {
		return errors.Newf(errors.TypeRules, "unknown vessel type %q", rule.VesselType)
	}
	if !rule.Component.Valid() {
		return errors.Newf(errors.TypeRules, "unknown component %q", rule.Component)
	}
	if !rule.ChargingMethod.Valid() {
		return errors.Newf(errors.TypeRules, "unknown charging method %q", rule.ChargingMethod)
	}

	for i := range rule.Bands {
		b := &rule.Bands[i]
		if b.BandType == "" {
			return errors.Newf(errors.TypeRules, "band %q missing band_type", b.Name)
		}
		if b.MinValue != nil && b.MaxValue != nil && *b.MinValue > *b.MaxValue {
			return errors.Newf(errors.TypeRules, "band %q has min above max", b.Name)
		}
	}

	for i := range rule.Conditions {
		c := &rule.Conditions[i]
		if c.Field == "" {
			return errors.New(errors.TypeRules, "condition missing field")
		}
		if c.Operator == "" {
			return errors.Newf(errors.TypeRules, "condition on %q missing operator", c.Field)
		}
	}

	return nil
}

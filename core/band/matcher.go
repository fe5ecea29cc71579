// Package band matches a numeric value against a rule's rate bands.
package band

import "port-tariff/core/types"

// legacyTonnageTags are tried, in order, when a lookup under the
// canonical tonnage tag finds nothing. Older extracted rule sets tag
// the same semantic band "standard" or "gt_range" instead of "gt".
var legacyTonnageTags = []string{types.BandTypeStandard, types.BandTypeGTRange}

// Find scans the rule's bands in declared order and returns the first
// band of the requested type whose half-open interval [min, max)
// contains value. Missing bounds are unbounded.
//
// A nil return means the rule does not apply at this value; it is not
// an error.
func Find(rule *types.TariffRule, value float64, bandType string) *types.Band {
	if b := findByType(rule, value, bandType); b != nil {
		return b
	}
	if bandType == types.BandTypeGT {
		for _, alt := range legacyTonnageTags {
			if b := findByType(rule, value, alt); b != nil {
				return b
			}
		}
	}
	return nil
}

func findByType(rule *types.TariffRule, value float64, bandType string) *types.Band {
	for i := range rule.Bands {
		b := &rule.Bands[i]
		if b.BandType != bandType {
			continue
		}
		if b.Contains(value) {
			return b
		}
	}
	return nil
}

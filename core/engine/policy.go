// Package engine - Component exclusivity and priority policy
package engine

import (
	"port-tariff/core/condition"
	"port-tariff/core/types"
)

// exclusivityMode decides how repeat charges for one component are
// handled within a single calculation.
type exclusivityMode int

const (
	// accumulate components are additive; every matching rule charges
	accumulate exclusivityMode = iota

	// exclusive components charge through at most one rule per call
	exclusive

	// baseChargeOnce components charge their per-GT positive-rate base
	// due once; discounts and other units still accumulate
	baseChargeOnce

	// perGTOnce components charge per GT once; per-m3 excess-volume
	// rules are never blocked by a prior application
	perGTOnce
)

// componentPolicies is the per-component policy table. Components not
// listed accumulate. Matching on the closed TariffComponent set keeps
// the policy in one place instead of string comparisons scattered
// through the orchestrator.
var componentPolicies = map[types.TariffComponent]exclusivityMode{
	types.ComponentPortInfrastructureDues:  exclusive,
	types.ComponentShipGeneratedSolidWaste: baseChargeOnce,
	types.ComponentSludgeOilyBilgeWater:    perGTOnce,
}

func policyFor(component types.TariffComponent) exclusivityMode {
	if mode, ok := componentPolicies[component]; ok {
		return mode
	}
	return accumulate
}

// Priority sentinels. Lower sorts first; rules evaluate most specific
// first under a stable ascending sort.
const (
	// defaultPriority is the least specific bucket
	defaultPriority = 999

	// ambiguousPriorityOffset pushes rules with merged contradictory
	// arrival conditions behind cleanly-extracted ones
	ambiguousPriorityOffset = 100
)

// rulePriority computes the sort key for a rule.
//
// Exclusive banded components prefer rules with fewer bands (a
// single-band rule is more specific than a full rate table). The
// charge-once waste and sludge components prefer fewer conditions,
// except that a rule carrying more than one arrival-region condition
// (the merged-extraction tolerance case) sorts after clean rules.
func rulePriority(rule *types.TariffRule) int {
	switch policyFor(rule.Component) {
	case exclusive:
		if rule.Banded() {
			return len(rule.Bands)
		}
	case baseChargeOnce, perGTOnce:
		if condition.ArrivalConditionCount(rule) > 1 {
			return ambiguousPriorityOffset + len(rule.Conditions)
		}
		return len(rule.Conditions)
	}
	return defaultPriority
}

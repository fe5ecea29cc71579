// Package types - Calculation result accumulator
package types

import "github.com/shopspring/decimal"

// BreakdownEntry is one line of the calculation breakdown
type BreakdownEntry struct {
	// Component is the billable due name
	Component string `json:"component"`

	// Cost is the signed amount for this line
	Cost decimal.Decimal `json:"cost"`

	// RuleDescription describes the originating rule
	RuleDescription string `json:"rule_description"`

	// Details carries charging method, rate, band range, percentage
	Details map[string]any `json:"details"`
}

// CalculationResult accumulates the outcome of one calculate call.
// It is created fresh per call, mutated only within that call, and
// never shared between calls.
type CalculationResult struct {
	// Components maps component name to accumulated signed cost
	Components map[string]decimal.Decimal `json:"components"`

	// Total is the running sum across all components
	Total decimal.Decimal `json:"total"`

	// Breakdown lists entries in application order
	Breakdown []BreakdownEntry `json:"breakdown"`

	// AppliedRules parallels Breakdown; a nil entry marks a synthetic
	// component such as the automatic environmental discount
	AppliedRules []*TariffRule `json:"-"`

	// Currency is the result currency code
	Currency string `json:"currency"`
}

// NewCalculationResult creates an empty result
func NewCalculationResult(currency string) *CalculationResult {
	return &CalculationResult{
		Components: make(map[string]decimal.Decimal),
		Currency:   currency,
	}
}

// AddComponent records a component cost. An existing component
// accumulates (additive charges and discounts); the breakdown gains a
// new entry either way. rule may be nil for auto-applied components.
func (r *CalculationResult) AddComponent(component string, cost decimal.Decimal, rule *TariffRule, details map[string]any) {
	r.Components[component] = r.Components[component].Add(cost)
	r.Total = r.Total.Add(cost)

	description := component
	if rule != nil && rule.Description != "" {
		description = rule.Description
	}
	r.Breakdown = append(r.Breakdown, BreakdownEntry{
		Component:       component,
		Cost:            cost,
		RuleDescription: description,
		Details:         details,
	})
	r.AppliedRules = append(r.AppliedRules, rule)
}

// ComponentCost returns the accumulated cost for a component, zero if
// the component never contributed
func (r *CalculationResult) ComponentCost(component TariffComponent) decimal.Decimal {
	return r.Components[string(component)]
}

// Empty reports whether nothing was charged
func (r *CalculationResult) Empty() bool {
	return len(r.Breakdown) == 0
}

// Package types - Bands, conditions, pricing and rules
package types

import (
	"math"

	"github.com/shopspring/decimal"
)

// Band type tags used by rule sources. BandTypeGT is the canonical
// tonnage tag; BandTypeStandard and BandTypeGTRange are legacy
// spellings still present in extracted rule sets.
const (
	BandTypeGT           = "gt"
	BandTypeStandard     = "standard"
	BandTypeGTRange      = "gt_range"
	BandTypeCallsPerWeek = "calls_per_week"
)

// Band is a half-open numeric interval selecting a rate within a rule.
// A value matches iff MinValue <= value < MaxValue; a missing bound is
// unbounded. Bands within a rule need not be disjoint; the first
// declared match wins.
type Band struct {
	// Name identifies the band (e.g. "GT_0_500")
	Name string `json:"name"`

	// MinValue is the inclusive lower bound; nil means unbounded below
	MinValue *float64 `json:"min_value,omitempty"`

	// MaxValue is the exclusive upper bound; nil means unbounded above
	MaxValue *float64 `json:"max_value,omitempty"`

	// BandType tags the interpretation (tonnage range, call frequency, ...)
	BandType string `json:"band_type"`
}

// Contains reports whether value falls inside the band interval
func (b *Band) Contains(value float64) bool {
	min := math.Inf(-1)
	if b.MinValue != nil {
		min = *b.MinValue
	}
	max := math.Inf(1)
	if b.MaxValue != nil {
		max = *b.MaxValue
	}
	return min <= value && value < max
}

// Operator is a canonical condition operator tag. Rule sources carry a
// large synonym set ("from", "more than", ">=", ...); the loader
// normalizes every condition to one of these tags once, at load time.
type Operator string

const (
	OpEqual          Operator = "eq"
	OpNotEqual       Operator = "ne"
	OpGreater        Operator = "gt"
	OpGreaterOrEqual Operator = "gte"
	OpLess           Operator = "lt"
	OpLessOrEqual    Operator = "lte"
	OpIn             Operator = "in"
	OpNotIn          Operator = "not_in"

	// OpUnknown marks an operator outside the synonym set. Evaluation
	// falls back to case-insensitive string equality, never an error.
	OpUnknown Operator = ""
)

// Condition gates a rule on a context field. Field and Operator are
// free-form as authored; Op and CanonicalField are stamped by the
// loader's normalization pass and are not part of the wire format.
type Condition struct {
	// Field is the field name as authored (e.g. "arrival port")
	Field string `json:"field"`

	// Operator is the comparison operator as authored
	Operator string `json:"operator"`

	// Value is the comparison target: scalar or list
	Value any `json:"value"`

	// Description is an optional human-readable explanation
	Description string `json:"description,omitempty"`

	// Op is the canonical operator tag (load-time normalization)
	Op Operator `json:"-"`

	// CanonicalField is the aliased context key (load-time normalization)
	CanonicalField string `json:"-"`
}

// PricingRule defines the pricing formula for a tariff component.
// At most one of Rate and FlatFee is expected to drive the base
// amount; when neither is set the cost is zero.
type PricingRule struct {
	// Rate is the per-unit amount (e.g. SEK per GT); nil if not rate-based
	Rate *decimal.Decimal `json:"rate,omitempty"`

	// Currency is the currency code
	Currency string `json:"currency,omitempty"`

	// FlatFee is a flat amount per call; nil if rate-based
	FlatFee *decimal.Decimal `json:"flat_fee,omitempty"`

	// Percentage is a signed adjustment: -10 means a 10% discount,
	// +5 a 5% markup
	Percentage *decimal.Decimal `json:"percentage,omitempty"`

	// Formula is descriptive only; the engine never interprets it
	Formula string `json:"formula,omitempty"`

	// MinCharge clamps the amount from below when set
	MinCharge *decimal.Decimal `json:"min_charge,omitempty"`

	// MaxCharge clamps the amount from above when set
	MaxCharge *decimal.Decimal `json:"max_charge,omitempty"`
}

// TariffRule defines how one component is charged for one vessel type.
// Rules are immutable once loaded and shared read-only across
// concurrent calculations.
type TariffRule struct {
	// VesselType this rule applies to
	VesselType VesselType `json:"vessel_type"`

	// Component is the billable due
	Component TariffComponent `json:"component"`

	// ChargingMethod is the billing unit
	ChargingMethod ChargingMethod `json:"charging_method"`

	// Bands holds ordered rate intervals; may be empty
	Bands []Band `json:"bands,omitempty"`

	// Conditions gate applicability; empty means unconditional
	Conditions []Condition `json:"conditions,omitempty"`

	// Pricing is the pricing formula
	Pricing PricingRule `json:"pricing"`

	// Description is a human-readable summary
	Description string `json:"description,omitempty"`

	// Notes carries special considerations
	Notes string `json:"notes,omitempty"`
}

// Banded reports whether the rule carries rate bands
func (r *TariffRule) Banded() bool {
	return len(r.Bands) > 0
}

// Package api - Request and response shapes
package api

import (
	"port-tariff/core/types"
)

// CalculateRequest is the body of POST /calculate. Parameters come
// already structured from the query-understanding collaborator.
type CalculateRequest struct {
	Parameters types.VesselParameters `json:"parameters"`
}

// CalculateResponse is the calculation output contract. Downstream
// response generation must not regenerate or alter these numbers.
type CalculateResponse struct {
	// Total is the total tariff cost
	Total float64 `json:"total"`

	// Components maps component name to accumulated cost
	Components map[string]float64 `json:"components"`

	// Breakdown lists entries in application order
	Breakdown []BreakdownEntry `json:"breakdown"`

	// Currency is the result currency code
	Currency string `json:"currency"`

	// Metadata carries execution context
	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// BreakdownEntry is one breakdown line
type BreakdownEntry struct {
	Component       string         `json:"component"`
	Cost            float64        `json:"cost"`
	RuleDescription string         `json:"rule_description"`
	Details         map[string]any `json:"details"`
}

// ResponseMetadata carries execution context
type ResponseMetadata struct {
	// InputHash is a deterministic hash of the request parameters
	InputHash string `json:"input_hash"`

	// EngineVersion is the serving engine version
	EngineVersion string `json:"engine_version"`

	// RulesVersion is the loaded tariff version
	RulesVersion string `json:"rules_version"`

	// PortName names the port the tariff belongs to
	PortName string `json:"port_name"`

	// DurationMs is the handling time in milliseconds
	DurationMs int64 `json:"duration_ms"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RuleSummary is one rule in GET /rules responses
type RuleSummary struct {
	VesselType     string `json:"vessel_type"`
	Component      string `json:"component"`
	ChargingMethod string `json:"charging_method"`
	Bands          int    `json:"bands"`
	Conditions     int    `json:"conditions"`
	Description    string `json:"description,omitempty"`
}

// toResponse converts an engine result to the wire shape
func toResponse(result *types.CalculationResult) *CalculateResponse {
	resp := &CalculateResponse{
		Total:      result.Total.InexactFloat64(),
		Components: make(map[string]float64, len(result.Components)),
		Breakdown:  make([]BreakdownEntry, 0, len(result.Breakdown)),
		Currency:   result.Currency,
	}
	for name, amount := range result.Components {
		resp.Components[name] = amount.InexactFloat64()
	}
	for _, entry := range result.Breakdown {
		resp.Breakdown = append(resp.Breakdown, BreakdownEntry{
			Component:       entry.Component,
			Cost:            entry.Cost.InexactFloat64(),
			RuleDescription: entry.RuleDescription,
			Details:         entry.Details,
		})
	}
	return resp
}

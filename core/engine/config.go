// Package engine - Engine configuration
package engine

// Config holds the engine's tariff policy constants. They are
// injected at construction rather than read from package globals so
// two calculators with different policies can coexist.
type Config struct {
	// ESIScoreThreshold is the minimum Environmental Ship Index score
	// qualifying for the automatic environmental discount
	ESIScoreThreshold float64 `json:"esi_score_threshold"`

	// ESIDiscountPercent is the signed discount applied to port
	// infrastructure dues for qualifying vessels (-10 = 10% off)
	ESIDiscountPercent float64 `json:"esi_discount_percent"`

	// FreeSludgeVolumeM3 is the sludge volume included in the base
	// due; only volume above it is billed per cubic metre
	FreeSludgeVolumeM3 float64 `json:"free_sludge_volume_m3"`

	// Currency is the result currency code
	Currency string `json:"currency"`
}

// DefaultConfig returns the Port of Gothenburg 2025 policy constants
func DefaultConfig() Config {
	return Config{
		ESIScoreThreshold:  30,
		ESIDiscountPercent: -10,
		FreeSludgeVolumeM3: 11,
		Currency:           "SEK",
	}
}

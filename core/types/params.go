// Package types - Vessel parameters and calculation context
package types

// Canonical context field keys. Conditions reference these after the
// loader's field aliasing; the engine populates them from
// VesselParameters.
const (
	FieldGT                  = "gt"
	FieldDWT                 = "dwt"
	FieldVolumeM3            = "volume_m3"
	FieldTonnage             = "tonnage"
	FieldLOAMetres           = "loa_metres"
	FieldPassengerCount      = "passenger_count"
	FieldTEU                 = "teu"
	FieldArrivalOrigin       = "arrival_origin"
	FieldArrivalRegion       = "arrival_region"
	FieldSludgeVolume        = "sludge_volume"
	FieldCallsPerWeek        = "calls_per_week"
	FieldESIScore            = "esi_score"
	FieldUseOPS              = "use_ops"
	FieldIsInlandWaterway    = "is_inland_waterway"
	FieldWasteCertificate    = "discount_certificate_for_waste"
	FieldFossilFreeFuelShare = "fossil_free_fuel_share"
)

// Context holds the field values conditions are evaluated against.
// Values are numbers, strings or booleans; an absent key means the
// parameter was not supplied.
type Context map[string]any

// VesselParameters is the structured input handed to the engine by the
// query-understanding collaborator. Absent optional values are nil or
// zero, never errors. Size metrics default to zero in the evaluation
// context; the remaining fields stay absent when nil so conditions on
// them evaluate to false.
type VesselParameters struct {
	// VesselType is required; without it the calculation is empty
	VesselType VesselType `json:"vessel_type" yaml:"vessel_type"`

	// GT is the gross tonnage
	GT float64 `json:"gt,omitempty" yaml:"gt"`

	// DWT is the deadweight tonnage
	DWT float64 `json:"dwt,omitempty" yaml:"dwt"`

	// VolumeM3 is a volume in cubic metres
	VolumeM3 float64 `json:"volume_m3,omitempty" yaml:"volume_m3"`

	// Tonnage is a cargo weight in tons
	Tonnage float64 `json:"tonnage,omitempty" yaml:"tonnage"`

	// LOAMetres is the length overall in metres
	LOAMetres float64 `json:"loa_metres,omitempty" yaml:"loa_metres"`

	// PassengerCount is the number of passengers
	PassengerCount int `json:"passenger_count,omitempty" yaml:"passenger_count"`

	// TEU is the container count in twenty-foot equivalent units
	TEU int `json:"teu,omitempty" yaml:"teu"`

	// ArrivalOrigin is "EU" or "non-EU"
	ArrivalOrigin *string `json:"arrival_origin,omitempty" yaml:"arrival_origin"`

	// SludgeVolume is the sludge volume in cubic metres
	SludgeVolume *float64 `json:"sludge_volume,omitempty" yaml:"sludge_volume"`

	// CallsPerWeek is the call frequency on a liner service
	CallsPerWeek *int `json:"calls_per_week,omitempty" yaml:"calls_per_week"`

	// ESIScore is the Environmental Ship Index score
	ESIScore *float64 `json:"esi_score,omitempty" yaml:"esi_score"`

	// UseOPS reports onshore power supply usage
	UseOPS *bool `json:"use_ops,omitempty" yaml:"use_ops"`

	// IsInlandWaterway flags inland waterway traffic
	IsInlandWaterway *bool `json:"is_inland_waterway,omitempty" yaml:"is_inland_waterway"`

	// WasteCertificate flags a valid waste discount certificate
	WasteCertificate *bool `json:"discount_certificate_for_waste,omitempty" yaml:"discount_certificate_for_waste"`

	// FossilFreeFuelShare is the fossil-free fuel share (0-1)
	FossilFreeFuelShare *float64 `json:"fossil_free_fuel_share,omitempty" yaml:"fossil_free_fuel_share"`
}

// ToContext builds the evaluation context for condition checking.
// The arrival origin is published under both its canonical key and
// the arrival_region alias used by newer rule sources.
func (p *VesselParameters) ToContext() Context {
	ctx := Context{
		FieldGT:             p.GT,
		FieldDWT:            p.DWT,
		FieldVolumeM3:       p.VolumeM3,
		FieldTonnage:        p.Tonnage,
		FieldLOAMetres:      p.LOAMetres,
		FieldPassengerCount: p.PassengerCount,
		FieldTEU:            p.TEU,
	}
	if p.ArrivalOrigin != nil {
		ctx[FieldArrivalOrigin] = *p.ArrivalOrigin
		ctx[FieldArrivalRegion] = *p.ArrivalOrigin
	}
	if p.SludgeVolume != nil {
		ctx[FieldSludgeVolume] = *p.SludgeVolume
	}
	if p.CallsPerWeek != nil {
		ctx[FieldCallsPerWeek] = *p.CallsPerWeek
	}
	if p.ESIScore != nil {
		ctx[FieldESIScore] = *p.ESIScore
	}
	if p.UseOPS != nil {
		ctx[FieldUseOPS] = *p.UseOPS
	}
	if p.IsInlandWaterway != nil {
		ctx[FieldIsInlandWaterway] = *p.IsInlandWaterway
	}
	if p.WasteCertificate != nil {
		ctx[FieldWasteCertificate] = *p.WasteCertificate
	}
	if p.FossilFreeFuelShare != nil {
		ctx[FieldFossilFreeFuelShare] = *p.FossilFreeFuelShare
	}
	return ctx
}

// Package types - Tariff rule model
// These are pure data types with load-time validation invariants.
// Rules are immutable once loaded; calculation never mutates them.
package types

// VesselType identifies a vessel category in the port tariff
type VesselType string

const (
	VesselTankers             VesselType = "tankers"
	VesselContainerVessels    VesselType = "container_vessels"
	VesselRoRoVessels         VesselType = "roro_vessels"
	VesselCarCarriers         VesselType = "car_carriers"
	VesselRoPaxPassenger      VesselType = "ropax_passenger_vessels"
	VesselCruiseVessels       VesselType = "cruise_vessels"
	VesselBreakBulkLoLo       VesselType = "break_bulk_lolo_vessels"
	VesselInlandWaterways     VesselType = "inland_waterways"
	VesselYachts              VesselType = "yachts"
	VesselArchipelagoTraffic  VesselType = "archipelago_traffic"
	VesselHarbourVessels      VesselType = "harbour_vessels"
	VesselOtherVessels        VesselType = "other_vessels"
)

// String returns the string representation
func (v VesselType) String() string {
	return string(v)
}

// Valid reports whether the vessel type is a known category
func (v VesselType) Valid() bool {
	switch v {
	case VesselTankers, VesselContainerVessels, VesselRoRoVessels,
		VesselCarCarriers, VesselRoPaxPassenger, VesselCruiseVessels,
		VesselBreakBulkLoLo, VesselInlandWaterways, VesselYachts,
		VesselArchipelagoTraffic, VesselHarbourVessels, VesselOtherVessels:
		return true
	}
	return false
}

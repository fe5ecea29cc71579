// Package types - Tariff components and charging methods
package types

// TariffComponent names a billable due
type TariffComponent string

const (
	// Common components
	ComponentPortInfrastructureDues  TariffComponent = "port_infrastructure_dues"
	ComponentShipGeneratedSolidWaste TariffComponent = "ship_generated_solid_waste"
	ComponentSludgeOilyBilgeWater    TariffComponent = "sludge_oily_bilge_water"
	ComponentScrubberWaste           TariffComponent = "scrubber_waste"
	ComponentEnvironmentalDiscounts  TariffComponent = "environmental_discounts"
	ComponentFreshWater              TariffComponent = "fresh_water"
	ComponentRinsingWater            TariffComponent = "rinsing_water"
	ComponentLayUpDues               TariffComponent = "lay_up_dues"
	ComponentConnectingToOPS         TariffComponent = "connecting_to_ops"

	// Container-specific
	ComponentIntroductoryDiscount TariffComponent = "introductory_discount"
	ComponentFrequencyDiscount    TariffComponent = "frequency_discount"

	// Cruise and passenger-specific
	ComponentISPSFees      TariffComponent = "isps_fees"
	ComponentPassengerDues TariffComponent = "passenger_dues"

	// Yacht-specific
	ComponentBlackGreyWater       TariffComponent = "black_grey_water"
	ComponentSecurityPatrolISPS   TariffComponent = "security_patrol_isps_due"

	// Other vessels
	ComponentPassingVesselDues              TariffComponent = "passing_vessel_dues"
	ComponentBunkeringCrewChangeDiscount    TariffComponent = "bunkering_crew_change_provisioning_discount"
	ComponentRepairsLayingUpTankCleaning    TariffComponent = "repairs_laying_up_tank_cleaning_fees"
	ComponentServiceVesselsNavalShipFees    TariffComponent = "service_vessels_naval_ship_fees"
	ComponentPortDuesForCargo               TariffComponent = "port_dues_for_cargo"
)

// String returns the string representation
func (c TariffComponent) String() string {
	return string(c)
}

// Valid reports whether the component is a known due
func (c TariffComponent) Valid() bool {
	switch c {
	case ComponentPortInfrastructureDues, ComponentShipGeneratedSolidWaste,
		ComponentSludgeOilyBilgeWater, ComponentScrubberWaste,
		ComponentEnvironmentalDiscounts, ComponentFreshWater,
		ComponentRinsingWater, ComponentLayUpDues, ComponentConnectingToOPS,
		ComponentIntroductoryDiscount, ComponentFrequencyDiscount,
		ComponentISPSFees, ComponentPassengerDues, ComponentBlackGreyWater,
		ComponentSecurityPatrolISPS, ComponentPassingVesselDues,
		ComponentBunkeringCrewChangeDiscount, ComponentRepairsLayingUpTankCleaning,
		ComponentServiceVesselsNavalShipFees, ComponentPortDuesForCargo:
		return true
	}
	return false
}

// ChargingMethod is the billing unit for a tariff component
type ChargingMethod string

const (
	// PerGT charges per gross tonnage
	PerGT ChargingMethod = "per_gt"

	// PerM3 charges per cubic metre
	PerM3 ChargingMethod = "per_m3"

	// PerTon charges per ton
	PerTon ChargingMethod = "per_ton"

	// PerMetreLOA charges per metre of length overall
	PerMetreLOA ChargingMethod = "per_metre_loa"

	// FlatPerCall is a flat fee per port call
	FlatPerCall ChargingMethod = "flat_sek_per_call"

	// Per24hPeriod charges per started 24-hour period
	Per24hPeriod ChargingMethod = "per_24h_period"

	// PerPassenger charges per passenger
	PerPassenger ChargingMethod = "per_passenger"

	// PerTEU charges per twenty-foot equivalent unit
	PerTEU ChargingMethod = "per_teu"

	// PerCall charges per port call
	PerCall ChargingMethod = "per_call"

	// Percentage is a percentage discount or markup
	Percentage ChargingMethod = "percentage"
)

// String returns the string representation
func (m ChargingMethod) String() string {
	return string(m)
}

// Valid reports whether the charging method is known
func (m ChargingMethod) Valid() bool {
	switch m {
	case PerGT, PerM3, PerTon, PerMetreLOA, FlatPerCall, Per24hPeriod,
		PerPassenger, PerTEU, PerCall, Percentage:
		return true
	}
	return false
}

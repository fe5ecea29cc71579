package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestToContext(t *testing.T) {
	origin := "EU"
	sludge := 15.0
	params := &VesselParameters{
		VesselType:    VesselTankers,
		GT:            5000,
		ArrivalOrigin: &origin,
		SludgeVolume:  &sludge,
	}

	ctx := params.ToContext()

	if ctx[FieldGT] != 5000.0 {
		t.Errorf("expected gt 5000, got %v", ctx[FieldGT])
	}
	// Size metrics are always present, zero when unsupplied.
	if v, ok := ctx[FieldVolumeM3]; !ok || v != 0.0 {
		t.Errorf("expected volume_m3 present as 0, got %v (present=%v)", v, ok)
	}
	// The arrival origin is published under both spellings.
	if ctx[FieldArrivalOrigin] != "EU" || ctx[FieldArrivalRegion] != "EU" {
		t.Errorf("expected arrival under both keys, got %v / %v",
			ctx[FieldArrivalOrigin], ctx[FieldArrivalRegion])
	}
	if ctx[FieldSludgeVolume] != 15.0 {
		t.Errorf("expected sludge_volume 15, got %v", ctx[FieldSludgeVolume])
	}
}

func TestToContextAbsentOptionals(t *testing.T) {
	ctx := (&VesselParameters{VesselType: VesselTankers}).ToContext()

	for _, key := range []string{
		FieldArrivalOrigin, FieldArrivalRegion, FieldSludgeVolume,
		FieldCallsPerWeek, FieldESIScore, FieldUseOPS,
		FieldIsInlandWaterway, FieldWasteCertificate, FieldFossilFreeFuelShare,
	} {
		if _, ok := ctx[key]; ok {
			t.Errorf("expected %q absent when not supplied", key)
		}
	}
}

func TestCalculationResultAccumulates(t *testing.T) {
	result := NewCalculationResult("SEK")
	rule := &TariffRule{
		Component:   ComponentSludgeOilyBilgeWater,
		Description: "base charge",
	}

	result.AddComponent(ComponentSludgeOilyBilgeWater.String(), decimal.NewFromInt(100), rule, nil)
	result.AddComponent(ComponentSludgeOilyBilgeWater.String(), decimal.NewFromInt(600), nil, nil)

	got := result.ComponentCost(ComponentSludgeOilyBilgeWater)
	if !got.Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected accumulated 700, got %s", got)
	}
	if !result.Total.Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected total 700, got %s", result.Total)
	}
	if len(result.Breakdown) != 2 {
		t.Fatalf("expected 2 breakdown lines, got %d", len(result.Breakdown))
	}
	if result.Breakdown[0].RuleDescription != "base charge" {
		t.Errorf("unexpected description %q", result.Breakdown[0].RuleDescription)
	}
	// A nil rule falls back to the component name.
	if result.Breakdown[1].RuleDescription != ComponentSludgeOilyBilgeWater.String() {
		t.Errorf("unexpected fallback description %q", result.Breakdown[1].RuleDescription)
	}
}

func TestRulesFor(t *testing.T) {
	db := &TariffDatabase{Rules: []TariffRule{
		{VesselType: VesselTankers, Component: ComponentPortInfrastructureDues},
		{VesselType: VesselTankers, Component: ComponentShipGeneratedSolidWaste},
		{VesselType: VesselYachts, Component: ComponentPortInfrastructureDues},
	}}

	if got := len(db.RulesFor(VesselTankers, "")); got != 2 {
		t.Errorf("expected 2 tanker rules, got %d", got)
	}
	if got := len(db.RulesFor(VesselTankers, ComponentPortInfrastructureDues)); got != 1 {
		t.Errorf("expected 1 filtered rule, got %d", got)
	}
	if got := len(db.RulesFor("", "")); got != 3 {
		t.Errorf("expected all rules with empty filter, got %d", got)
	}
	if got := len(db.RulesFor(VesselCruiseVessels, "")); got != 0 {
		t.Errorf("expected no cruise rules, got %d", got)
	}
}

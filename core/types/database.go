// Package types - Tariff rule database
package types

// TariffDatabase is the ordered collection of tariff rules for one
// port. It is built once by the loader, treated as immutable
// afterwards, and may be read concurrently without locking.
type TariffDatabase struct {
	// Rules holds all tariff rules in declared order
	Rules []TariffRule `json:"rules"`

	// Version is the tariff version or year
	Version string `json:"version"`

	// PortName names the port the tariff belongs to
	PortName string `json:"port_name"`
}

// RulesFor returns the rules matching the given vessel type and
// component filters, in declared order. A zero-value filter matches
// everything.
func (d *TariffDatabase) RulesFor(vesselType VesselType, component TariffComponent) []*TariffRule {
	var out []*TariffRule
	for i := range d.Rules {
		r := &d.Rules[i]
		if vesselType != "" && r.VesselType != vesselType {
			continue
		}
		if component != "" && r.Component != component {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Len returns the number of rules
func (d *TariffDatabase) Len() int {
	return len(d.Rules)
}

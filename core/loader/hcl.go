// Package loader - HCL rule databases
// Hand-authored tariff files use HCL blocks instead of the
// extractor's JSON:
//
//	version   = "2025"
//	port_name = "Port of Gothenburg"
//
//	rule {
//	  vessel_type     = "tankers"
//	  component       = "port_infrastructure_dues"
//	  charging_method = "per_gt"
//
//	  band {
//	    name      = "GT_0_500"
//	    band_type = "standard"
//	    min_value = 0
//	    max_value = 500
//	  }
//
//	  pricing {
//	    rate     = 12.5
//	    currency = "SEK"
//	  }
//	}
package loader

import (
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"

	"port-tariff/core/types"
	"port-tariff/internal/errors"
	"port-tariff/internal/logging"
)

type hclDatabase struct {
	Version  string    `hcl:"version,optional"`
	PortName string    `hcl:"port_name,optional"`
	Rules    []hclRule `hcl:"rule,block"`
}

type hclRule struct {
	VesselType     string         `hcl:"vessel_type"`
	Component      string         `hcl:"component"`
	ChargingMethod string         `hcl:"charging_method"`
	Description    string         `hcl:"description,optional"`
	Notes          string         `hcl:"notes,optional"`
	Bands          []hclBand      `hcl:"band,block"`
	Conditions     []hclCondition `hcl:"condition,block"`
	Pricing        *hclPricing    `hcl:"pricing,block"`
}

type hclBand struct {
	Name     string   `hcl:"name"`
	BandType string   `hcl:"band_type"`
	MinValue *float64 `hcl:"min_value,optional"`
	MaxValue *float64 `hcl:"max_value,optional"`
}

type hclCondition struct {
	Field       string    `hcl:"field"`
	Operator    string    `hcl:"operator"`
	Value       cty.Value `hcl:"value"`
	Description string    `hcl:"description,optional"`
}

type hclPricing struct {
	Rate       *float64 `hcl:"rate,optional"`
	Currency   string   `hcl:"currency,optional"`
	FlatFee    *float64 `hcl:"flat_fee,optional"`
	Percentage *float64 `hcl:"percentage,optional"`
	Formula    string   `hcl:"formula,optional"`
	MinCharge  *float64 `hcl:"min_charge,optional"`
	MaxCharge  *float64 `hcl:"max_charge,optional"`
}

// LoadHCL reads a hand-authored HCL rule database
func LoadHCL(path string) (*types.TariffDatabase, error) {
	var raw hclDatabase
	if err := hclsimple.DecodeFile(path, nil, &raw); err != nil {
		return nil, errors.Parsing("decoding HCL tariff file", err)
	}

	db := &types.TariffDatabase{
		Version:  raw.Version,
		PortName: raw.PortName,
	}
	if db.Version == "" {
		db.Version = defaultVersion
	}
	if db.PortName == "" {
		db.PortName = defaultPortName
	}

	for i := range raw.Rules {
		rule := convertHCLRule(&raw.Rules[i])
		if err := ValidateRule(rule); err != nil {
			logging.Warn("dropping invalid tariff rule",
				zap.Int("index", i), zap.Error(err))
			continue
		}
		db.Rules = append(db.Rules, *rule)
	}

	normalize(db)

	logging.Info("loaded tariff rules",
		zap.String("path", path),
		zap.String("port", db.PortName),
		zap.String("version", db.Version),
		zap.Int("rules", len(db.Rules)))
	return db, nil
}

func convertHCLRule(raw *hclRule) *types.TariffRule {
	rule := &types.TariffRule{
		VesselType:     types.VesselType(raw.VesselType),
		Component:      types.TariffComponent(raw.Component),
		ChargingMethod: types.ChargingMethod(raw.ChargingMethod),
		Description:    raw.Description,
		Notes:          raw.Notes,
	}

	for _, b := range raw.Bands {
		rule.Bands = append(rule.Bands, types.Band{
			Name:     b.Name,
			BandType: b.BandType,
			MinValue: b.MinValue,
			MaxValue: b.MaxValue,
		})
	}

	for _, c := range raw.Conditions {
		rule.Conditions = append(rule.Conditions, types.Condition{
			Field:       c.Field,
			Operator:    c.Operator,
			Value:       ctyToGo(c.Value),
			Description: c.Description,
		})
	}

	if raw.Pricing != nil {
		rule.Pricing = types.PricingRule{
			Rate:       decimalPtr(raw.Pricing.Rate),
			Currency:   raw.Pricing.Currency,
			FlatFee:    decimalPtr(raw.Pricing.FlatFee),
			Percentage: decimalPtr(raw.Pricing.Percentage),
			Formula:    raw.Pricing.Formula,
			MinCharge:  decimalPtr(raw.Pricing.MinCharge),
			MaxCharge:  decimalPtr(raw.Pricing.MaxCharge),
		}
	}

	return rule
}

// ctyToGo converts an HCL attribute value to the loose condition
// value representation the evaluator works with
func ctyToGo(v cty.Value) any {
	if v.IsNull() || !v.IsKnown() {
		return nil
	}
	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString()
	case ty == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return f
	case ty == cty.Bool:
		return v.True()
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		var out []any
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			out = append(out, ctyToGo(ev))
		}
		return out
	default:
		return v.GoString()
	}
}

func decimalPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

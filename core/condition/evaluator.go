// Package condition evaluates tariff rule conditions against a
// vessel parameter context. It owns field-name aliasing and
// operator-synonym normalization; rule sources author both with a
// large free-form vocabulary.
//
// Evaluation never returns an error: a missing field, an unparseable
// number or an unknown operator all degrade to a boolean outcome, so
// a bad condition means "rule does not apply", not a failure.
package condition

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"port-tariff/core/types"
)

// fieldAliases maps author-facing field spellings to canonical
// context keys. Unlisted fields are looked up verbatim.
var fieldAliases = map[string]string{
	"arrival port":              types.FieldArrivalOrigin,
	"arrival_region":            types.FieldArrivalOrigin,
	"sludge_volume":             types.FieldSludgeVolume,
	"sludge_volume_m3":          types.FieldSludgeVolume,
	"quantity":                  types.FieldSludgeVolume,
	"calls_per_week":            types.FieldCallsPerWeek,
	"calls_per_week_on_service": types.FieldCallsPerWeek,
	"certificates":              types.FieldWasteCertificate,
	"ESI score":                 types.FieldESIScore,
	"fossil-free fuel percentage": types.FieldFossilFreeFuelShare,
}

// operatorSynonyms maps every recognized operator spelling to its
// canonical tag. "from" and "must" mean "equals" in extracted data;
// "more than" means "greater than".
var operatorSynonyms = map[string]types.Operator{
	"eq": types.OpEqual, "=": types.OpEqual, "==": types.OpEqual,
	"equals": types.OpEqual, "from": types.OpEqual, "must": types.OpEqual,

	"ne": types.OpNotEqual, "!=": types.OpNotEqual, "<>": types.OpNotEqual,
	"not_equals": types.OpNotEqual,

	"gt": types.OpGreater, ">": types.OpGreater,
	"greater_than": types.OpGreater, "more than": types.OpGreater,

	"gte": types.OpGreaterOrEqual, ">=": types.OpGreaterOrEqual,
	"greater_than_or_equal": types.OpGreaterOrEqual, "at least": types.OpGreaterOrEqual,

	"lt": types.OpLess, "<": types.OpLess,
	"less_than": types.OpLess, "less than": types.OpLess,

	"lte": types.OpLessOrEqual, "<=": types.OpLessOrEqual,
	"less_than_or_equal": types.OpLessOrEqual, "at most": types.OpLessOrEqual,

	"in": types.OpIn, "contains": types.OpIn,
	"not_in": types.OpNotIn, "not contains": types.OpNotIn,
}

// ParseOperator normalizes an operator spelling to its canonical tag.
// Unrecognized spellings map to OpUnknown.
func ParseOperator(operator string) types.Operator {
	return operatorSynonyms[strings.ToLower(operator)]
}

// CanonicalField resolves a condition field to its canonical context key
func CanonicalField(field string) string {
	if canon, ok := fieldAliases[field]; ok {
		return canon
	}
	return field
}

// Normalize stamps the canonical operator and field tags on every
// condition of a rule. The loader runs this once per rule so
// evaluation does not re-match synonym strings per call.
func Normalize(rule *types.TariffRule) {
	for i := range rule.Conditions {
		c := &rule.Conditions[i]
		c.Op = ParseOperator(c.Operator)
		c.CanonicalField = CanonicalField(c.Field)
	}
}

// Evaluate reports whether a single condition holds in the context.
// A missing or nil field value is false, never an error.
func Evaluate(cond *types.Condition, ctx types.Context) bool {
	lookup := cond.CanonicalField
	if lookup == "" {
		lookup = CanonicalField(cond.Field)
	}
	fieldValue, ok := ctx[lookup]
	if !ok || fieldValue == nil {
		// Aliased key absent: fall back to the raw field name.
		fieldValue, ok = ctx[cond.Field]
		if !ok || fieldValue == nil {
			return false
		}
	}

	op := cond.Op
	if op == types.OpUnknown {
		if parsed, known := operatorSynonyms[strings.ToLower(cond.Operator)]; known {
			op = parsed
		}
	}
	target := cond.Value

	switch op {
	case types.OpEqual:
		return evalEquality(cond, fieldValue, target)
	case types.OpNotEqual:
		return !looseEqual(fieldValue, target)
	case types.OpGreater, types.OpGreaterOrEqual, types.OpLess, types.OpLessOrEqual:
		return evalOrdering(op, fieldValue, target)
	case types.OpIn:
		return evalMembership(fieldValue, target)
	case types.OpNotIn:
		return !evalMembership(fieldValue, target)
	default:
		// Unknown operator: default to case-insensitive equality.
		return strings.EqualFold(stringify(fieldValue), stringify(target))
	}
}

// arrivalFields are the region-type condition fields with EU/non-EU
// matching semantics
func isArrivalField(field string) bool {
	return field == "arrival port" || field == types.FieldArrivalRegion
}

func evalEquality(cond *types.Condition, fieldValue, target any) bool {
	// Arrival region conditions match loosely across the EU / non-EU
	// spellings found in extracted rules.
	if isArrivalField(cond.Field) {
		if targetStr, ok := target.(string); ok {
			return matchArrivalRegion(fieldValue, targetStr)
		}
		return strings.EqualFold(stringify(fieldValue), stringify(target))
	}

	// Certificate conditions coerce both sides to boolean.
	if cond.Field == "certificates" {
		if targetStr, ok := target.(string); ok {
			lower := strings.ToLower(targetStr)
			if strings.Contains(lower, "valid") || strings.Contains(lower, "has") || strings.Contains(lower, "true") {
				return truthy(fieldValue)
			}
		}
		return truthy(fieldValue) == truthy(target)
	}

	return looseEqual(fieldValue, target)
}

// matchArrivalRegion tests an arrival origin value against a target
// phrase such as "EU", "non-European ports" or "from European ports".
// The "non" check runs first: "non-european" also contains "european".
func matchArrivalRegion(fieldValue any, target string) bool {
	targetLower := strings.ToLower(target)
	fieldStr, isStr := fieldValue.(string)
	fieldLower := strings.ToLower(stringify(fieldValue))

	if strings.Contains(targetLower, "non") {
		switch fieldLower {
		case "non-eu", "non_eu", "non-europe", "non_europe", "non-european", "non_european":
			return true
		}
		if fieldStr == "non-EU" || fieldStr == "non_EU" {
			return true
		}
		return isStr && strings.Contains(fieldLower, "non") &&
			(strings.Contains(fieldLower, "eu") || strings.Contains(fieldLower, "europe"))
	}

	if strings.Contains(targetLower, "eu") || strings.Contains(targetLower, "europe") || strings.Contains(targetLower, "european") {
		switch fieldLower {
		case "eu", "europe", "european":
			return true
		}
		return fieldStr == "EU"
	}

	// Target names neither region: exact case-insensitive match.
	return fieldLower == targetLower
}

func evalOrdering(op types.Operator, fieldValue, target any) bool {
	fieldNum, fieldOK := toNumber(fieldValue)
	targetNum, targetOK := toNumber(target)
	if fieldOK && targetOK {
		switch op {
		case types.OpGreater:
			return fieldNum > targetNum
		case types.OpGreaterOrEqual:
			return fieldNum >= targetNum
		case types.OpLess:
			return fieldNum < targetNum
		case types.OpLessOrEqual:
			return fieldNum <= targetNum
		}
	}

	// Either side failed to parse: compare as strings for this pair.
	fieldStr, targetStr := stringify(fieldValue), stringify(target)
	switch op {
	case types.OpGreater:
		return fieldStr > targetStr
	case types.OpGreaterOrEqual:
		return fieldStr >= targetStr
	case types.OpLess:
		return fieldStr < targetStr
	case types.OpLessOrEqual:
		return fieldStr <= targetStr
	}
	return false
}

func evalMembership(fieldValue, target any) bool {
	if list, ok := target.([]any); ok {
		for _, item := range list {
			if looseEqual(fieldValue, item) {
				return true
			}
		}
		return false
	}
	return strings.Contains(stringify(target), stringify(fieldValue))
}

var numberPattern = regexp.MustCompile(`\d+\.?\d*`)

// toNumber coerces a context or condition value to a float. Strings
// yield their first embedded numeric substring ("more than 11 m3" -> 11).
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		if match := numberPattern.FindString(n); match != "" {
			if f, err := strconv.ParseFloat(match, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// looseEqual compares two values with cross-type numeric equality
// (5000 == 5000.0) and plain equality otherwise
func looseEqual(a, b any) bool {
	if af, aok := directNumber(a); aok {
		if bf, bok := directNumber(b); bok {
			return af == bf
		}
	}
	return stringify(a) == stringify(b) && fmt.Sprintf("%T", a) == fmt.Sprintf("%T", b)
}

// directNumber returns a numeric value without string extraction
func directNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// truthy mirrors loose boolean coercion: false, zero, nil and the
// empty string are false, everything else is true
func truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		return b != ""
	default:
		if f, ok := directNumber(v); ok {
			return f != 0
		}
		return true
	}
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Package condition - Rule-level applicability
package condition

import (
	"strings"

	"port-tariff/core/types"
)

// Applicable reports whether a rule's conditions hold in the context.
// A rule without conditions always applies; otherwise all conditions
// are combined with AND.
//
// Tolerance rule: extraction sometimes produces one rule carrying both
// a "from EU" and a "from non-EU" condition. When a rule has more than
// one equality-class condition on an arrival-region field, those
// conditions combine with OR; the remaining conditions still AND
// against that result.
func Applicable(rule *types.TariffRule, ctx types.Context) bool {
	if len(rule.Conditions) == 0 {
		return true
	}

	arrival := arrivalEqualityConditions(rule)
	if len(arrival) > 1 {
		anyArrival := false
		for _, c := range arrival {
			if Evaluate(c, ctx) {
				anyArrival = true
				break
			}
		}
		if !anyArrival {
			return false
		}
		for i := range rule.Conditions {
			c := &rule.Conditions[i]
			if containsCondition(arrival, c) {
				continue
			}
			if !Evaluate(c, ctx) {
				return false
			}
		}
		return true
	}

	for i := range rule.Conditions {
		if !Evaluate(&rule.Conditions[i], ctx) {
			return false
		}
	}
	return true
}

// arrivalEqualityConditions returns the equality-class conditions on
// arrival-region fields, the subject of the OR tolerance
func arrivalEqualityConditions(rule *types.TariffRule) []*types.Condition {
	var out []*types.Condition
	for i := range rule.Conditions {
		c := &rule.Conditions[i]
		if !isArrivalField(c.Field) {
			continue
		}
		switch strings.ToLower(c.Operator) {
		case "from", "eq", "=":
			out = append(out, c)
		}
	}
	return out
}

// ArrivalConditionCount counts conditions on arrival-region fields,
// regardless of operator. The engine's priority policy uses it to push
// ambiguous merged rules later in the evaluation order.
func ArrivalConditionCount(rule *types.TariffRule) int {
	n := 0
	for i := range rule.Conditions {
		if isArrivalField(rule.Conditions[i].Field) {
			n++
		}
	}
	return n
}

func containsCondition(set []*types.Condition, c *types.Condition) bool {
	for _, s := range set {
		if s == c {
			return true
		}
	}
	return false
}

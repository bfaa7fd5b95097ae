package platform

import (
	"fmt"
	"strings"
)

// Property identifies an element property a search criterion matches on.
type Property int

const (
	PropControlType Property = iota
	PropAutomationID
	PropName
	PropClassName
)

func (p Property) String() string {
	switch p {
	case PropControlType:
		return "controlType"
	case PropAutomationID:
		return "automationId"
	case PropName:
		return "name"
	case PropClassName:
		return "className"
	default:
		return fmt.Sprintf("property(%d)", int(p))
	}
}

// Criterion is one atomic property match.
type Criterion struct {
	Prop  Property
	Value string
}

// Condition is a conjunction of criteria over element properties. An
// empty condition matches any element.
type Condition struct {
	Criteria []Criterion
}

// MatchAny is the unconstrained condition.
var MatchAny = Condition{}

// And returns a copy of the condition with an extra criterion appended.
func (c Condition) And(prop Property, value string) Condition {
	criteria := make([]Criterion, len(c.Criteria), len(c.Criteria)+1)
	copy(criteria, c.Criteria)
	return Condition{Criteria: append(criteria, Criterion{Prop: prop, Value: value})}
}

// Empty reports whether the condition has no criteria.
func (c Condition) Empty() bool {
	return len(c.Criteria) == 0
}

func (c Condition) String() string {
	if c.Empty() {
		return "any"
	}
	parts := make([]string, len(c.Criteria))
	for i, cr := range c.Criteria {
		parts[i] = fmt.Sprintf("%s=%q", cr.Prop, cr.Value)
	}
	return strings.Join(parts, " and ")
}

// Props carries the matchable properties of one element. Providers that
// have no native condition support can evaluate conditions themselves
// through Condition.Matches.
type Props struct {
	ControlType  string
	AutomationID string
	Name         string
	ClassName    string
}

// Matches reports whether an element with the given properties satisfies
// every criterion. Property values compare case-sensitively except the
// name, which providers report with inconsistent casing in practice.
func (c Condition) Matches(p Props) bool {
	for _, cr := range c.Criteria {
		switch cr.Prop {
		case PropControlType:
			if p.ControlType != cr.Value {
				return false
			}
		case PropAutomationID:
			if p.AutomationID != cr.Value {
				return false
			}
		case PropName:
			if !strings.EqualFold(p.Name, cr.Value) {
				return false
			}
		case PropClassName:
			if p.ClassName != cr.Value {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Package engine resolves script steps against a live accessibility
// tree and carries out their actions. All waiting is deadline-bounded
// polling; nothing here assumes the tree is stable between steps.
package engine

import (
	"github.com/shimf/uidrive/internal/model"
	"github.com/shimf/uidrive/internal/platform"
)

// BuildCondition composes the search condition for a step's selector
// fields. A recognized control type contributes the first criterion, a
// recognized selector kind the second; unrecognized tokens contribute
// nothing, so a step with neither yields the match-any condition.
//
// Path and Keys selectors are not element searches; the menu navigator
// and keystroke injection consume those directly, so they contribute no
// criterion either.
func BuildCondition(controlType, by, selector string) platform.Condition {
	cond := platform.MatchAny

	if ct, ok := model.ParseControlType(controlType); ok {
		cond = cond.And(platform.PropControlType, ct)
	}

	kind, ok := model.ParseBy(by)
	if !ok {
		return cond
	}
	switch kind {
	case model.ByAutomationID:
		cond = cond.And(platform.PropAutomationID, selector)
	case model.ByName:
		cond = cond.And(platform.PropName, selector)
	case model.ByClassName:
		cond = cond.And(platform.PropClassName, selector)
	case model.ByTitle:
		// Titles and names share the same underlying property.
		cond = cond.And(platform.PropName, selector)
	case model.ByPath, model.ByKeys:
	}
	return cond
}

package platform

import "testing"

func TestCondition_EmptyMatchesAnything(t *testing.T) {
	if !MatchAny.Matches(Props{}) {
		t.Error("empty condition should match an empty element")
	}
	if !MatchAny.Matches(Props{ControlType: "Button", Name: "OK"}) {
		t.Error("empty condition should match any element")
	}
}

func TestCondition_ConjunctionRequiresAllCriteria(t *testing.T) {
	cond := MatchAny.
		And(PropControlType, "Button").
		And(PropName, "Save")

	if !cond.Matches(Props{ControlType: "Button", Name: "Save"}) {
		t.Error("expected full match")
	}
	if cond.Matches(Props{ControlType: "Button", Name: "Cancel"}) {
		t.Error("name mismatch should fail the conjunction")
	}
	if cond.Matches(Props{ControlType: "Edit", Name: "Save"}) {
		t.Error("control-type mismatch should fail the conjunction")
	}
}

func TestCondition_NameComparesCaseInsensitively(t *testing.T) {
	cond := MatchAny.And(PropName, "save")
	if !cond.Matches(Props{Name: "Save"}) {
		t.Error("name matching should be case-insensitive")
	}
}

func TestCondition_AutomationIDAndClassNameExact(t *testing.T) {
	cond := MatchAny.And(PropAutomationID, "btnOk")
	if cond.Matches(Props{AutomationID: "btnok"}) {
		t.Error("automation-id matching should be case-sensitive")
	}
	cond = MatchAny.And(PropClassName, "TextBox")
	if !cond.Matches(Props{ClassName: "TextBox"}) {
		t.Error("expected class-name match")
	}
}

func TestCondition_AndDoesNotMutateReceiver(t *testing.T) {
	base := MatchAny.And(PropControlType, "Button")
	a := base.And(PropName, "A")
	b := base.And(PropName, "B")
	if len(base.Criteria) != 1 {
		t.Errorf("base condition mutated: %s", base)
	}
	if a.Criteria[1].Value != "A" || b.Criteria[1].Value != "B" {
		t.Errorf("derived conditions interfered: %s / %s", a, b)
	}
}

func TestCondition_String(t *testing.T) {
	if got := MatchAny.String(); got != "any" {
		t.Errorf("empty condition string = %q", got)
	}
	cond := MatchAny.And(PropControlType, "Button").And(PropAutomationID, "ok")
	want := `controlType="Button" and automationId="ok"`
	if got := cond.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

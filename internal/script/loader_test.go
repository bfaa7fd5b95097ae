package script

import (
	"strings"
	"testing"
)

const sampleCSV = `Action, Window, ControlType, By, Selector, Value, TimeoutMs
FocusWindow, , , Title, Contoso Invoicing, ,
WaitFor, Contoso, Button, AutomationId, btnNew, , 10000

Click, Contoso, Button, Name, New Invoice, ,
SetText, Contoso, Edit, AutomationId, txtAmount, 1250.00,
Menu, Contoso, , Path, File>Export CSV, ,
Log, , , , , invoice exported ,
`

func TestLoadCSV_ParsesSteps(t *testing.T) {
	steps, err := LoadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 6 {
		t.Fatalf("expected 6 steps (blank line skipped), got %d", len(steps))
	}

	first := steps[0]
	if first.Action != "FocusWindow" || first.By != "Title" || first.Selector != "Contoso Invoicing" {
		t.Errorf("unexpected first step: %+v", first)
	}

	second := steps[1]
	if second.TimeoutMs != 10000 {
		t.Errorf("expected TimeoutMs 10000, got %d", second.TimeoutMs)
	}
	if second.ControlType != "Button" || second.Selector != "btnNew" {
		t.Errorf("unexpected second step: %+v", second)
	}

	if steps[5].Value != "invoice exported" {
		t.Errorf("fields should be trimmed, got %q", steps[5].Value)
	}
}

func TestLoadCSV_HeaderRequired(t *testing.T) {
	if _, err := LoadCSV(strings.NewReader("")); err == nil {
		t.Error("empty script should fail")
	}
	if _, err := LoadCSV(strings.NewReader("Foo, Bar\nClick, x\n")); err == nil {
		t.Error("header without an Action column should fail")
	}
}

func TestLoadCSV_HeaderCaseAndOrderInsensitive(t *testing.T) {
	csv := "selector,ACTION,timeoutms\nOK,Click,250\n"
	steps, err := LoadCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(steps))
	}
	if steps[0].Action != "Click" || steps[0].Selector != "OK" || steps[0].TimeoutMs != 250 {
		t.Errorf("unexpected step: %+v", steps[0])
	}
}

func TestLoadCSV_MissingTrailingColumnsTolerated(t *testing.T) {
	csv := "Action, Window, ControlType, By, Selector, Value, TimeoutMs\nSleep\n"
	steps, err := LoadCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 1 || steps[0].Action != "Sleep" || steps[0].TimeoutMs != 0 {
		t.Errorf("unexpected step: %+v", steps)
	}
}

func TestLoadCSV_InvalidTimeout(t *testing.T) {
	csv := "Action, TimeoutMs\nSleep, soon\n"
	_, err := LoadCSV(strings.NewReader(csv))
	if err == nil {
		t.Fatal("expected an error for a non-integer TimeoutMs")
	}
	if !strings.Contains(err.Error(), "soon") {
		t.Errorf("error should name the bad value, got %v", err)
	}
}

func TestLoadCSV_BlankishRowsSkipped(t *testing.T) {
	csv := "Action, Window, By, Selector\n , , , \nClick, Main, Name, OK\n"
	steps, err := LoadCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 1 {
		t.Errorf("expected the all-blank row skipped, got %d steps", len(steps))
	}
}

func TestLoadYAML_ParsesSteps(t *testing.T) {
	src := `
- action: WaitFor
  window: Contoso
  controlType: Button
  by: AutomationId
  selector: btnNew
  timeoutMs: 2000
- action: Log
  value: "  done  "
`
	steps, err := LoadYAML(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if steps[0].Action != "WaitFor" || steps[0].TimeoutMs != 2000 {
		t.Errorf("unexpected first step: %+v", steps[0])
	}
	if steps[1].Value != "done" {
		t.Errorf("fields should be trimmed, got %q", steps[1].Value)
	}
}

func TestLoadYAML_Malformed(t *testing.T) {
	if _, err := LoadYAML(strings.NewReader("action: not-a-list")); err == nil {
		t.Error("expected an error for a non-list document")
	}
}

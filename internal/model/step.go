package model

import "strings"

// Step is one row of a driving script. Steps are immutable once loaded:
// the loader produces them, the executor consumes them, nothing mutates
// them in between.
type Step struct {
	Action      string `yaml:"action"                json:"action"`
	Window      string `yaml:"window,omitempty"      json:"window,omitempty"`
	ControlType string `yaml:"controlType,omitempty" json:"controlType,omitempty"`
	By          string `yaml:"by,omitempty"          json:"by,omitempty"`
	Selector    string `yaml:"selector,omitempty"    json:"selector,omitempty"`
	Value       string `yaml:"value,omitempty"       json:"value,omitempty"`
	TimeoutMs   int    `yaml:"timeoutMs,omitempty"   json:"timeoutMs,omitempty"`
}

// Action identifies a step's operation. The loader keeps the raw token;
// the executor normalizes it at dispatch time so an unrecognized action
// fails the step rather than the load.
type Action string

const (
	ActionFocusWindow Action = "focuswindow"
	ActionWaitFor     Action = "waitfor"
	ActionClick       Action = "click"
	ActionSetText     Action = "settext"
	ActionSendKeys    Action = "sendkeys"
	ActionMenu        Action = "menu"
	ActionSleep       Action = "sleep"
	ActionIfExists    Action = "ifexists"
	ActionLog         Action = "log"
)

var actions = map[string]Action{
	"focuswindow": ActionFocusWindow,
	"waitfor":     ActionWaitFor,
	"click":       ActionClick,
	"settext":     ActionSetText,
	"sendkeys":    ActionSendKeys,
	"menu":        ActionMenu,
	"sleep":       ActionSleep,
	"ifexists":    ActionIfExists,
	"log":         ActionLog,
}

// ParseAction normalizes an action token case-insensitively.
// Returns false for tokens outside the vocabulary.
func ParseAction(s string) (Action, bool) {
	a, ok := actions[strings.ToLower(strings.TrimSpace(s))]
	return a, ok
}

// By identifies which element property a step's selector matches against.
type By string

const (
	ByAutomationID By = "automationid"
	ByName         By = "name"
	ByClassName    By = "classname"
	ByTitle        By = "title"
	ByPath         By = "path"
	ByKeys         By = "keys"
)

var selectorKinds = map[string]By{
	"automationid": ByAutomationID,
	"name":         ByName,
	"classname":    ByClassName,
	"title":        ByTitle,
	"path":         ByPath,
	"keys":         ByKeys,
}

// ParseBy normalizes a selector-kind token case-insensitively.
// Unrecognized tokens return false; callers treat that as "no criterion"
// rather than an error.
func ParseBy(s string) (By, bool) {
	b, ok := selectorKinds[strings.ToLower(strings.TrimSpace(s))]
	return b, ok
}

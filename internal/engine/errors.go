package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyMenuPath is raised for a menu path with no segments, before
// any tree interaction.
var ErrEmptyMenuPath = errors.New("menu path has no segments")

// ErrAborted is returned when the stop probe fires between steps.
var ErrAborted = errors.New("run aborted by stop request")

// WindowNotFoundError means no matching top-level window surfaced before
// the resolution deadline.
type WindowNotFoundError struct {
	Title   string
	Timeout time.Duration
}

func (e *WindowNotFoundError) Error() string {
	if e.Title == "" {
		return fmt.Sprintf("no top-level window appeared within %s", e.Timeout)
	}
	return fmt.Sprintf("window with title containing %q not found within %s", e.Title, e.Timeout)
}

// ElementNotFoundError means no matching descendant surfaced before the
// resolution deadline. It carries the selector metadata for diagnostics.
type ElementNotFoundError struct {
	ControlType string
	By          string
	Selector    string
	Timeout     time.Duration
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("element not found within %s (controlType=%q by=%q selector=%q)",
		e.Timeout, e.ControlType, e.By, e.Selector)
}

// MenuSegmentError names the first unmatched segment of a menu path.
type MenuSegmentError struct {
	Segment string
	Path    string
}

func (e *MenuSegmentError) Error() string {
	return fmt.Sprintf("menu item %q not found (path %q)", e.Segment, e.Path)
}

// UnsupportedActionError names an action token outside the vocabulary.
type UnsupportedActionError struct {
	Token string
}

func (e *UnsupportedActionError) Error() string {
	return fmt.Sprintf("unsupported action %q", e.Token)
}

// StepError wraps a fatal step failure with the step's action context.
type StepError struct {
	Step     int
	Action   string
	By       string
	Selector string
	Value    string
	Err      error
}

func (e *StepError) Error() string {
	msg := fmt.Sprintf("step %d (%s", e.Step, e.Action)
	if e.Selector != "" {
		msg += fmt.Sprintf(" %s=%q", selectorKind(e.By), e.Selector)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" value=%q", e.Value)
	}
	return msg + "): " + e.Err.Error()
}

func (e *StepError) Unwrap() error { return e.Err }

func selectorKind(by string) string {
	if by == "" {
		return "selector"
	}
	return by
}

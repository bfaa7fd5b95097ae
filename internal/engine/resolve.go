package engine

import (
	"strings"
	"time"

	"github.com/shimf/uidrive/internal/platform"
)

// pollInterval is the fixed sleep between tree queries while waiting
// for a window or element to surface.
const pollInterval = 100 * time.Millisecond

// ResolveWindow polls the session's top-level windows until one whose
// title contains titleSubstring (case-insensitively) appears or the
// timeout elapses. An empty substring selects the first window in
// enumeration order. Enumeration errors count as "no windows yet";
// absence is reported as ok=false, never as an error, so the caller
// decides whether that is fatal.
func ResolveWindow(sess platform.Session, titleSubstring string, timeout time.Duration) (platform.Window, bool) {
	return resolveWindowUntil(sess, titleSubstring, time.Now().Add(timeout))
}

func resolveWindowUntil(sess platform.Session, titleSubstring string, deadline time.Time) (platform.Window, bool) {
	want := strings.ToLower(strings.TrimSpace(titleSubstring))
	for {
		windows, err := sess.TopLevelWindows()
		if err == nil {
			for _, w := range windows {
				if want == "" || strings.Contains(strings.ToLower(w.Title()), want) {
					return w, true
				}
			}
		}
		if !time.Now().Before(deadline) {
			return nil, false
		}
		time.Sleep(pollInterval)
	}
}

// ResolveElement resolves the window for a step, then polls its
// descendant tree for an element matching the built condition. The
// window and element share one deadline computed at entry.
//
// A window that never surfaces is fatal regardless of required. For the
// element itself, required selects between the two termination modes:
// escalate the elapsed deadline to ElementNotFoundError, or return
// (nil, nil) so an optional probe can complete without failing.
func ResolveElement(sess platform.Session, windowTitle, controlType, by, selector string, required bool, timeout time.Duration) (platform.Element, error) {
	deadline := time.Now().Add(timeout)

	win, ok := resolveWindowUntil(sess, windowTitle, deadline)
	if !ok {
		return nil, &WindowNotFoundError{Title: windowTitle, Timeout: timeout}
	}

	cond := BuildCondition(controlType, by, selector)
	for {
		el, err := win.Find(cond)
		if err == nil && el != nil {
			return el, nil
		}
		if !time.Now().Before(deadline) {
			break
		}
		time.Sleep(pollInterval)
	}

	if required {
		return nil, &ElementNotFoundError{
			ControlType: controlType,
			By:          by,
			Selector:    selector,
			Timeout:     timeout,
		}
	}
	return nil, nil
}

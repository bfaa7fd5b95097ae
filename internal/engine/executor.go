package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shimf/uidrive/internal/model"
	"github.com/shimf/uidrive/internal/platform"
)

// DefaultStepTimeout bounds a step's resolution when the script gives
// no TimeoutMs.
const DefaultStepTimeout = 5 * time.Second

// closeWindowToken is the one key sequence SendKeys treats specially;
// everything else is injected as literal text.
const closeWindowToken = "{CLOSE}"

// StepResult reports the outcome of one executed step.
type StepResult struct {
	Step    int    `yaml:"step"               json:"step"`
	OK      bool   `yaml:"ok"                 json:"ok"`
	Action  string `yaml:"action"             json:"action"`
	Error   string `yaml:"error,omitempty"    json:"error,omitempty"`
	Target  string `yaml:"target,omitempty"   json:"target,omitempty"`
	Message string `yaml:"message,omitempty"  json:"message,omitempty"`
	Elapsed string `yaml:"elapsed,omitempty"  json:"elapsed,omitempty"`
}

// Executor runs script steps against one tree session. It holds no
// state across steps beyond the session and logger: every resolution is
// attempted fresh because the external UI is not assumed stable between
// actions.
type Executor struct {
	sess           platform.Session
	log            *slog.Logger
	defaultTimeout time.Duration
	stop           func() bool
}

// Option configures an Executor.
type Option func(*Executor)

// WithDefaultTimeout overrides the per-step timeout used when a step
// carries no TimeoutMs.
func WithDefaultTimeout(d time.Duration) Option {
	return func(e *Executor) {
		if d > 0 {
			e.defaultTimeout = d
		}
	}
}

// WithStop installs a probe checked before each step; a true result
// aborts the run with ErrAborted. The probe is never consulted
// mid-step.
func WithStop(fn func() bool) Option {
	return func(e *Executor) { e.stop = fn }
}

// New creates an executor over a session. The logger is required; pass
// a discarding logger to silence run output.
func New(sess platform.Session, log *slog.Logger, opts ...Option) *Executor {
	e := &Executor{
		sess:           sess,
		log:            log,
		defaultTimeout: DefaultStepTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes steps strictly in order, one at a time. The first fatal
// failure stops the run; remaining steps are not attempted. The
// returned results cover every step that was started, including the
// failing one.
func (e *Executor) Run(steps []model.Step) ([]StepResult, error) {
	results := make([]StepResult, 0, len(steps))
	for i, step := range steps {
		if e.stop != nil && e.stop() {
			e.log.Warn("run aborted before step", "step", i+1)
			return results, ErrAborted
		}

		res, err := e.runStep(step)
		res.Step = i + 1
		res.OK = err == nil
		if err != nil {
			serr := &StepError{
				Step:     i + 1,
				Action:   step.Action,
				By:       step.By,
				Selector: step.Selector,
				Value:    step.Value,
				Err:      err,
			}
			res.Error = err.Error()
			results = append(results, res)
			e.log.Error("step failed",
				"step", i+1,
				"action", step.Action,
				"by", step.By,
				"selector", step.Selector,
				"error", err)
			return results, serr
		}
		results = append(results, res)
		e.log.Debug("step completed", "step", i+1, "action", res.Action)
	}
	return results, nil
}

func (e *Executor) runStep(step model.Step) (StepResult, error) {
	timeout := e.defaultTimeout
	if step.TimeoutMs > 0 {
		timeout = time.Duration(step.TimeoutMs) * time.Millisecond
	}

	action, ok := model.ParseAction(step.Action)
	if !ok {
		return StepResult{Action: step.Action}, &UnsupportedActionError{Token: step.Action}
	}
	res := StepResult{Action: string(action)}

	switch action {
	case model.ActionFocusWindow:
		title := step.Selector
		if title == "" {
			title = step.Window
		}
		win, found := ResolveWindow(e.sess, title, timeout)
		if !found {
			// Best-effort: a missing window is not fatal here.
			e.log.Debug("window not found, skipping focus", "title", title)
			return res, nil
		}
		if err := win.Focus(); err != nil {
			e.log.Warn("failed to focus window", "title", win.Title(), "error", err)
			return res, nil
		}
		res.Target = win.Title()
		return res, nil

	case model.ActionWaitFor:
		start := time.Now()
		el, err := e.resolveStepElement(step, true, timeout)
		if err != nil {
			return res, err
		}
		res.Target = el.Name()
		res.Elapsed = fmt.Sprintf("%.1fs", time.Since(start).Seconds())
		return res, nil

	case model.ActionClick:
		el, err := e.resolveStepElement(step, true, timeout)
		if err != nil {
			return res, err
		}
		res.Target = el.Name()
		if inv, ok := el.Invoker(); ok {
			return res, inv.Invoke()
		}
		return res, el.Click()

	case model.ActionSetText:
		el, err := e.resolveStepElement(step, true, timeout)
		if err != nil {
			return res, err
		}
		res.Target = el.Name()
		if tb, ok := el.TextBox(); ok {
			if err := el.Focus(); err != nil {
				return res, err
			}
			return res, tb.SetText(step.Value)
		}
		// No text-value capability: replace the content with literal
		// keystrokes instead.
		if err := el.Focus(); err != nil {
			return res, err
		}
		kb := e.sess.Keyboard()
		if err := kb.SelectAll(); err != nil {
			return res, err
		}
		return res, kb.TypeText(step.Value)

	case model.ActionSendKeys:
		payload := step.Selector
		if payload == "" {
			payload = step.Value
		}
		if win, found := ResolveWindow(e.sess, step.Window, timeout); found {
			if err := win.Focus(); err != nil {
				e.log.Warn("failed to focus window before keys", "title", win.Title(), "error", err)
			}
		} else {
			e.log.Debug("window not found, sending keys to current focus", "title", step.Window)
		}
		kb := e.sess.Keyboard()
		if payload == closeWindowToken {
			return res, kb.CloseWindow()
		}
		return res, kb.TypeText(payload)

	case model.ActionMenu:
		win, found := ResolveWindow(e.sess, step.Window, timeout)
		if !found {
			return res, &WindowNotFoundError{Title: step.Window, Timeout: timeout}
		}
		path := step.Selector
		if path == "" {
			path = step.Value
		}
		res.Target = path
		return res, NavigateMenu(win, path)

	case model.ActionSleep:
		// TimeoutMs is the pause duration here, not a deadline.
		time.Sleep(timeout)
		res.Elapsed = timeout.String()
		return res, nil

	case model.ActionIfExists:
		el, err := e.resolveStepElement(step, false, timeout)
		switch {
		case err != nil:
			e.log.Debug("optional probe failed", "selector", step.Selector, "error", err)
		case el == nil:
			e.log.Debug("optional probe found nothing", "selector", step.Selector)
		default:
			res.Target = el.Name()
		}
		return res, nil

	case model.ActionLog:
		msg := step.Value
		if msg == "" {
			msg = step.Selector
		}
		e.log.Info(msg)
		res.Message = msg
		return res, nil

	default:
		return res, &UnsupportedActionError{Token: step.Action}
	}
}

func (e *Executor) resolveStepElement(step model.Step, required bool, timeout time.Duration) (platform.Element, error) {
	return ResolveElement(e.sess, step.Window, step.ControlType, step.By, step.Selector, required, timeout)
}

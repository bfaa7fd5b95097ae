package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shimf/uidrive/internal/platform"
)

// The fakes below stand in for a tree provider. They are deliberately
// mutable so tests can model a UI that changes between polls: windows
// surfacing late, elements appearing after a delay, menus re-rendering
// their subtree after an invoke.

type fakeElement struct {
	props      platform.Props
	invokable  bool
	editable   bool
	onInvoke   func()
	invokes    int
	clicks     int
	focusCalls int
	text       string
}

func (f *fakeElement) Name() string { return f.props.Name }

func (f *fakeElement) Focus() error {
	f.focusCalls++
	return nil
}

func (f *fakeElement) Click() error {
	f.clicks++
	return nil
}

func (f *fakeElement) Invoker() (platform.Invoker, bool) {
	if !f.invokable {
		return nil, false
	}
	return (*fakeInvoker)(f), true
}

func (f *fakeElement) TextBox() (platform.TextBox, bool) {
	if !f.editable {
		return nil, false
	}
	return (*fakeTextBox)(f), true
}

type fakeInvoker fakeElement

func (f *fakeInvoker) Invoke() error {
	f.invokes++
	if f.onInvoke != nil {
		f.onInvoke()
	}
	return nil
}

type fakeTextBox fakeElement

func (f *fakeTextBox) SetText(value string) error {
	f.text = value
	return nil
}

type fakeWindow struct {
	title       string
	elements    []*fakeElement
	appearAfter int // Find calls returning nothing before elements show up
	findCalls   int
	focusCalls  int
	findErr     error
}

func (w *fakeWindow) Title() string { return w.title }

func (w *fakeWindow) Focus() error {
	w.focusCalls++
	return nil
}

func (w *fakeWindow) Find(cond platform.Condition) (platform.Element, error) {
	w.findCalls++
	if w.findErr != nil {
		return nil, w.findErr
	}
	if w.findCalls <= w.appearAfter {
		return nil, nil
	}
	for _, el := range w.elements {
		if cond.Matches(el.props) {
			return el, nil
		}
	}
	return nil, nil
}

func (w *fakeWindow) add(el *fakeElement) {
	w.elements = append(w.elements, el)
}

type fakeKeyboard struct {
	ops []string
}

func (k *fakeKeyboard) TypeText(text string) error {
	k.ops = append(k.ops, "type:"+text)
	return nil
}

func (k *fakeKeyboard) SelectAll() error {
	k.ops = append(k.ops, "selectall")
	return nil
}

func (k *fakeKeyboard) CloseWindow() error {
	k.ops = append(k.ops, "close")
	return nil
}

type fakeSession struct {
	windows    []*fakeWindow
	errsBefore int // TopLevelWindows calls that fail before enumeration works
	enumCalls  int
	kb         *fakeKeyboard
	closed     bool
}

func newFakeSession(windows ...*fakeWindow) *fakeSession {
	return &fakeSession{windows: windows, kb: &fakeKeyboard{}}
}

func (s *fakeSession) TopLevelWindows() ([]platform.Window, error) {
	s.enumCalls++
	if s.enumCalls <= s.errsBefore {
		return nil, errors.New("transient enumeration failure")
	}
	out := make([]platform.Window, len(s.windows))
	for i, w := range s.windows {
		out[i] = w
	}
	return out, nil
}

func (s *fakeSession) Keyboard() platform.Keyboard { return s.kb }

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

// captureHandler records log messages so tests can assert what the
// executor emitted (or, for fail-fast checks, did not emit).
type captureHandler struct {
	mu   sync.Mutex
	msgs []string
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.msgs = append(h.msgs, r.Message)
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

func (h *captureHandler) contains(msg string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, m := range h.msgs {
		if m == msg {
			return true
		}
	}
	return false
}

func testLogger() (*slog.Logger, *captureHandler) {
	h := &captureHandler{}
	return slog.New(h), h
}

func platformProps(controlType, name string) platform.Props {
	return platform.Props{ControlType: controlType, Name: name}
}

func button(name string) *fakeElement {
	return &fakeElement{
		props:     platform.Props{ControlType: "Button", Name: name, AutomationID: fmt.Sprintf("btn%s", name)},
		invokable: true,
	}
}

func menuItem(name string) *fakeElement {
	return &fakeElement{
		props:     platform.Props{ControlType: "MenuItem", Name: name},
		invokable: true,
	}
}

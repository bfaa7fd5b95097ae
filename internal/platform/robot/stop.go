package robot

import (
	"sync"

	hook "github.com/robotn/gohook"
)

// StopWatcher listens for a global hotkey and latches once it fires.
// The executor polls Triggered between steps; a run that is already
// inside a step finishes that step first.
type StopWatcher struct {
	triggered chan struct{}
	once      sync.Once
}

// WatchKey starts a global key listener for the given key name
// (e.g. "esc", "f12"). Call Close when the run ends.
func WatchKey(key string) *StopWatcher {
	w := &StopWatcher{triggered: make(chan struct{})}
	hook.Register(hook.KeyDown, []string{key}, func(hook.Event) {
		w.once.Do(func() { close(w.triggered) })
	})
	go hook.Process(hook.Start())
	return w
}

// Triggered reports whether the hotkey has been pressed.
func (w *StopWatcher) Triggered() bool {
	select {
	case <-w.triggered:
		return true
	default:
		return false
	}
}

// Close stops the global listener.
func (w *StopWatcher) Close() {
	hook.End()
}

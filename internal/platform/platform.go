package platform

// Driver binds to a target application, either by launching its
// executable or by attaching to an already-running instance.
type Driver interface {
	// Launch starts the executable at path and opens a tree session on it.
	Launch(path string) (Session, error)

	// Attach opens a tree session on a running application whose main
	// window title contains the given substring.
	Attach(titleSubstring string) (Session, error)
}

// Session is a live connection to a target application's accessibility
// tree. It is held for the duration of a run and closed on every exit
// path.
type Session interface {
	// TopLevelWindows enumerates the application's current top-level
	// windows in provider order.
	TopLevelWindows() ([]Window, error)

	// Keyboard returns the session's input-injection surface.
	Keyboard() Keyboard

	Close() error
}

// Window is a transient handle to a top-level window. Handles are only
// valid for the step that resolved them; the tree may change between
// steps.
type Window interface {
	Title() string

	// Focus brings the window to the foreground.
	Focus() error

	// Find returns the first descendant matching the condition, in
	// provider traversal order. A nil element with a nil error means no
	// match in the current tree snapshot.
	Find(cond Condition) (Element, error)
}

// Element is a transient handle to an element inside a window.
type Element interface {
	Name() string
	Focus() error

	// Click performs a generic click on the element.
	Click() error

	// Invoker probes for the invoke capability (buttons, menu items).
	Invoker() (Invoker, bool)

	// TextBox probes for the text-value capability (editable fields).
	TextBox() (TextBox, bool)
}

// Invoker is the specialized view of an element that supports the
// invoke pattern.
type Invoker interface {
	Invoke() error
}

// TextBox is the specialized view of an element whose value can be set
// directly, without simulating keystrokes.
type TextBox interface {
	SetText(value string) error
}

// Keyboard injects input events into the focused target.
type Keyboard interface {
	// TypeText sends the text as literal keystrokes.
	TypeText(text string) error

	// SelectAll sends the platform select-all chord.
	SelectAll() error

	// CloseWindow sends the platform close-window chord.
	CloseWindow() error
}

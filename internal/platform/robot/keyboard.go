// Package robot implements input injection on top of robotgo. It backs
// the keyboard surface of tree drivers and the standalone type command;
// it deliberately knows nothing about accessibility trees.
package robot

import (
	"runtime"

	"github.com/go-vgo/robotgo"
)

// Keyboard injects keystrokes into whatever currently holds focus.
type Keyboard struct{}

// modKey returns the primary modifier for editing chords on this OS.
func modKey() string {
	if runtime.GOOS == "darwin" {
		return "cmd"
	}
	return "ctrl"
}

// TypeText sends the text as literal keystrokes.
func (Keyboard) TypeText(text string) error {
	robotgo.TypeStr(text)
	return nil
}

// SelectAll sends the platform select-all chord.
func (Keyboard) SelectAll() error {
	return robotgo.KeyTap("a", modKey())
}

// CloseWindow sends the platform close-window chord.
func (Keyboard) CloseWindow() error {
	if runtime.GOOS == "darwin" {
		return robotgo.KeyTap("w", "cmd")
	}
	return robotgo.KeyTap("f4", "alt")
}

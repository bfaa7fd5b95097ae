package engine

import (
	"strings"
	"time"

	"github.com/shimf/uidrive/internal/model"
	"github.com/shimf/uidrive/internal/platform"
)

// menuPause is the settle time after invoking a menu item, before the
// next segment is searched. Menus collapse and re-render their subtree
// after each click.
const menuPause = 150 * time.Millisecond

// NavigateMenu walks a ">"-delimited path of menu-item names under the
// given window, invoking each segment in order. The search scope resets
// to the window after every invocation; the clicked item's subtree is
// stale by then.
//
// Each segment is first searched as a menu item with that name. Some
// applications expose menu entries without the menu-item role, so a
// name-only search is the fallback before the segment is reported
// missing.
func NavigateMenu(win platform.Window, path string) error {
	segments := splitMenuPath(path)
	if len(segments) == 0 {
		return ErrEmptyMenuPath
	}

	for i, segment := range segments {
		item := findMenuItem(win, segment)
		if item == nil {
			return &MenuSegmentError{Segment: segment, Path: path}
		}

		if inv, ok := item.Invoker(); ok {
			_ = item.Focus()
			if err := inv.Invoke(); err != nil {
				return err
			}
		} else if err := item.Click(); err != nil {
			return err
		}

		if i < len(segments)-1 {
			time.Sleep(menuPause)
		}
	}
	return nil
}

func findMenuItem(win platform.Window, name string) platform.Element {
	cond := platform.MatchAny.
		And(platform.PropControlType, model.ControlTypeMenuItem).
		And(platform.PropName, name)
	if el, err := win.Find(cond); err == nil && el != nil {
		return el
	}
	el, err := win.Find(platform.MatchAny.And(platform.PropName, name))
	if err != nil {
		return nil
	}
	return el
}

func splitMenuPath(path string) []string {
	var segments []string
	for _, part := range strings.Split(path, ">") {
		if part = strings.TrimSpace(part); part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

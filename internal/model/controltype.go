package model

import "strings"

// controlTypes is the recognized control-type vocabulary, keyed by
// lowercased token. Values are the canonical names handed to tree
// providers in search conditions.
var controlTypes = map[string]string{
	"button":      "Button",
	"edit":        "Edit",
	"text":        "Text",
	"menuitem":    "MenuItem",
	"menubar":     "MenuBar",
	"menu":        "Menu",
	"window":      "Window",
	"checkbox":    "CheckBox",
	"radiobutton": "RadioButton",
	"combobox":    "ComboBox",
	"list":        "List",
	"listitem":    "ListItem",
	"tree":        "Tree",
	"treeitem":    "TreeItem",
	"tab":         "Tab",
	"tabitem":     "TabItem",
	"pane":        "Pane",
	"document":    "Document",
	"hyperlink":   "Hyperlink",
	"image":       "Image",
	"toolbar":     "ToolBar",
	"statusbar":   "StatusBar",
}

// ControlTypeMenuItem is the canonical name the menu navigator searches for.
const ControlTypeMenuItem = "MenuItem"

// ParseControlType resolves a control-type hint case-insensitively to its
// canonical name. Returns false for hints outside the vocabulary; those
// contribute no search criterion.
func ParseControlType(s string) (string, bool) {
	ct, ok := controlTypes[strings.ToLower(strings.TrimSpace(s))]
	return ct, ok
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/shimf/uidrive/internal/platform"
)

const attachPrefix = "attach:"

// openSession binds to a target: either the path of an executable to
// launch, or "Attach:<titleSubstring>" to attach to a running window.
func openSession(driver platform.Driver, target string) (platform.Session, error) {
	if len(target) >= len(attachPrefix) && strings.EqualFold(target[:len(attachPrefix)], attachPrefix) {
		title := target[len(attachPrefix):]
		sess, err := driver.Attach(title)
		if err != nil {
			return nil, fmt.Errorf("failed to attach to %q: %w", title, err)
		}
		return sess, nil
	}
	sess, err := driver.Launch(target)
	if err != nil {
		return nil, fmt.Errorf("failed to launch %q: %w", target, err)
	}
	return sess, nil
}

// Parameter extraction helpers for MCP tool argument maps.

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		// Handle numeric values that may arrive as int/float
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

package platform

import (
	"fmt"
	"runtime"
)

// ErrUnsupported is returned on platforms with no registered tree driver.
var ErrUnsupported = fmt.Errorf("no accessibility-tree driver is available on %s/%s", runtime.GOOS, runtime.GOARCH)

// NewDriverFunc is set by OS-specific driver packages via init().
var NewDriverFunc func() (Driver, error)

// NewDriver returns the tree driver for the current OS.
func NewDriver() (Driver, error) {
	if NewDriverFunc == nil {
		return nil, ErrUnsupported
	}
	return NewDriverFunc()
}

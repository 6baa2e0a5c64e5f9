package driver

import (
	"errors"
	"fmt"

	"github.com/tebeka/selenium"
)

// ErrDriver marks failures that come from the driver itself: resolving the
// binary, starting it, or the WebDriver protocol rejecting a command.
var ErrDriver = errors.New("webdriver error")

// IsDriverError reports whether err is a driver-specific failure, either
// wrapping [ErrDriver] or carrying a *selenium.Error from the remote end.
func IsDriverError(err error) bool {
	if errors.Is(err, ErrDriver) {
		return true
	}

	var remoteErr *selenium.Error
	return errors.As(err, &remoteErr)
}

// errorChain flattens err and everything it wraps, depth first, into
// "<type>: <message>" entries. Errors joined or wrapped with several %w verbs
// contribute each branch in order.
func errorChain(err error) []string {
	var chain []string

	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		chain = append(chain, fmt.Sprintf("%T: %s", e, e.Error()))

		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)

	return chain
}

// Package overlay injects a full-page message panel into a browser session.
//
// After [Inject] the page exposes window.showLmsMessage(text) and
// window.hideLmsMessage(); [Show] and [Hide] call them from Go.
package overlay

import (
	_ "embed"
	"fmt"
)

//go:embed overlay.js
var injectScript string

const (
	showScript = "window.showLmsMessage(arguments[0]);"
	hideScript = "window.hideLmsMessage();"
)

// ScriptExecutor runs JavaScript in the page context of a browser session.
type ScriptExecutor interface {
	ExecuteScript(script string, args []any) (any, error)
}

// Inject adds the overlay style, its DOM nodes and the two helper functions
// to the current document. It reports false when the overlay was already
// present, in which case the document is left unchanged.
func Inject(s ScriptExecutor) (bool, error) {
	result, err := s.ExecuteScript(injectScript, nil)
	if err != nil {
		return false, fmt.Errorf("inject overlay: %w", err)
	}

	injected, _ := result.(bool)
	return injected, nil
}

// Show displays message in the overlay. [Inject] must have run on the
// current document first.
func Show(s ScriptExecutor, message string) error {
	if _, err := s.ExecuteScript(showScript, []any{message}); err != nil {
		return fmt.Errorf("show overlay message: %w", err)
	}

	return nil
}

// Hide hides the overlay.
func Hide(s ScriptExecutor) error {
	if _, err := s.ExecuteScript(hideScript, nil); err != nil {
		return fmt.Errorf("hide overlay: %w", err)
	}

	return nil
}

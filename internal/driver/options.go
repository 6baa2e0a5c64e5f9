package driver

import (
	"slices"
	"strings"

	"github.com/MKhiriev/lms-automation/internal/config"
	"github.com/tebeka/selenium"
)

// Browser arguments set by [BuildOptions].
const (
	ArgStartMaximized = "--start-maximized"
	ArgHeadless       = "--headless"

	edgeBrowserName  = "MicrosoftEdge"
	edgeOptionsField = "ms:edgeOptions"
)

// Options holds the command-line arguments passed to the Edge browser.
type Options struct {
	Args []string
}

// BuildOptions returns options with a maximized window and, when
// cfg.HeadlessMode equals "true" in any case, headless mode.
func BuildOptions(cfg config.Driver) Options {
	args := []string{ArgStartMaximized}
	if strings.EqualFold(cfg.HeadlessMode, "true") {
		args = append(args, ArgHeadless)
	}

	return Options{Args: args}
}

// Headless reports whether the headless flag is present.
func (o Options) Headless() bool {
	return slices.Contains(o.Args, ArgHeadless)
}

// Capabilities converts the options into W3C capabilities understood by
// msedgedriver.
func (o Options) Capabilities() selenium.Capabilities {
	caps := selenium.Capabilities{"browserName": edgeBrowserName}
	caps[edgeOptionsField] = map[string]any{"args": slices.Clone(o.Args)}

	return caps
}

package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/MKhiriev/lms-automation/internal/logger"
	"github.com/tebeka/selenium"
)

type seleniumOpener struct {
	output io.Writer
	logger *logger.Logger
}

// NewSeleniumOpener returns a [SessionOpener] that runs msedgedriver as a
// local WebDriver service on a free loopback port and connects to it with
// tebeka/selenium. Driver process output is written to output; nil discards
// it.
func NewSeleniumOpener(output io.Writer, log *logger.Logger) SessionOpener {
	if output == nil {
		output = io.Discard
	}

	return &seleniumOpener{output: output, logger: log}
}

// Open implements [SessionOpener]. Errors from starting the driver process or
// creating the remote session wrap [ErrDriver]; the driver process is stopped
// when the session cannot be created.
func (o *seleniumOpener) Open(ctx context.Context, driverPath string, opts Options) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	port, err := freePort()
	if err != nil {
		return nil, fmt.Errorf("pick driver port: %w", err)
	}

	service, err := selenium.NewChromeDriverService(driverPath, port, selenium.Output(o.output))
	if err != nil {
		return nil, fmt.Errorf("%w: start %s: %w", ErrDriver, driverPath, err)
	}

	wd, err := selenium.NewRemote(opts.Capabilities(), fmt.Sprintf("http://127.0.0.1:%d", port))
	if err != nil {
		if stopErr := service.Stop(); stopErr != nil {
			o.logger.Warn().Err(stopErr).Msg("failed to stop driver service")
		}
		return nil, fmt.Errorf("%w: create session: %w", ErrDriver, err)
	}

	o.logger.Debug().
		Int("port", port).
		Strs("args", opts.Args).
		Msg("browser session opened")

	return &edgeSession{wd: wd, service: service}, nil
}

// edgeSession couples a WebDriver session with the driver process serving it.
type edgeSession struct {
	wd      selenium.WebDriver
	service *selenium.Service
}

// ExecuteScript implements [Session].
func (s *edgeSession) ExecuteScript(script string, args []any) (any, error) {
	return s.wd.ExecuteScript(script, args)
}

// SetPageLoadTimeout implements [Session].
func (s *edgeSession) SetPageLoadTimeout(timeout time.Duration) error {
	return s.wd.SetPageLoadTimeout(timeout)
}

// Quit implements [Session]. It closes the browser and then stops the driver
// process, returning both errors if both steps fail.
func (s *edgeSession) Quit() error {
	return errors.Join(s.wd.Quit(), s.service.Stop())
}

// WebDriver exposes the underlying selenium client for page interaction.
func (s *edgeSession) WebDriver() selenium.WebDriver {
	return s.wd
}

func freePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}

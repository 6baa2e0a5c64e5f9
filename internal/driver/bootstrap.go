// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package driver

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lms-automation/internal/config"
	"github.com/MKhiriev/lms-automation/internal/logger"
)

// Bootstrapper runs the driver setup sequence against its collaborators.
type Bootstrapper struct {
	cfg       config.Driver
	installer Installer
	opener    SessionOpener

	logger *logger.Logger
}

// NewBootstrapper constructs a Bootstrapper. A zero cfg.PageLoadTimeout is
// replaced with [config.DefaultPageLoadTimeout].
func NewBootstrapper(cfg config.Driver, installer Installer, opener SessionOpener, log *logger.Logger) *Bootstrapper {
	if cfg.PageLoadTimeout <= 0 {
		cfg.PageLoadTimeout = config.DefaultPageLoadTimeout
	}

	return &Bootstrapper{
		cfg:       cfg,
		installer: installer,
		opener:    opener,
		logger:    log,
	}
}

// Setup prepares the driver cache, resolves the driver binary, opens a
// session and applies the page-load timeout, in that order.
//
// Failures after the cache is prepared are logged at error level, tagged as a
// webdriver failure (see [IsDriverError]) or as unexpected, and returned
// without retry. The returned session belongs to the caller.
func (b *Bootstrapper) Setup(ctx context.Context) (Session, error) {
	cachePath, err := PrepareCache(b.cfg, b.logger)
	if err != nil {
		return nil, err
	}

	session, err := b.start(ctx, cachePath)
	if err != nil {
		b.logFailure(err)
		return nil, err
	}

	b.logger.Info().Msg("EdgeDriver successfully initialized")
	return session, nil
}

func (b *Bootstrapper) start(ctx context.Context, cachePath string) (Session, error) {
	driverPath, err := b.installer.Install(ctx, cachePath)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve driver binary: %w", ErrDriver, err)
	}
	b.logger.Debug().Str("driver_path", driverPath).Msg("driver binary resolved")

	opts := BuildOptions(b.cfg)
	session, err := b.opener.Open(ctx, driverPath, opts)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	if err = session.SetPageLoadTimeout(b.cfg.PageLoadTimeout); err != nil {
		if quitErr := session.Quit(); quitErr != nil {
			b.logger.Warn().Err(quitErr).Msg("failed to quit session after setup error")
		}
		return nil, fmt.Errorf("set page load timeout: %w", err)
	}

	return session, nil
}

// logFailure logs err together with every error it wraps under "causes".
func (b *Bootstrapper) logFailure(err error) {
	event := b.logger.Error().
		Err(err).
		Strs("causes", errorChain(err))

	if IsDriverError(err) {
		event.Msg("webdriver failure while setting up EdgeDriver")
		return
	}

	event.Msg("unexpected error while setting up EdgeDriver")
}

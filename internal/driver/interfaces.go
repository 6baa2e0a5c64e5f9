// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package driver bootstraps a Microsoft Edge WebDriver session.
//
// The bootstrap sequence is linear: prepare the driver cache directory,
// resolve a msedgedriver binary through an [Installer], open a [Session]
// through a [SessionOpener] with the options built by [BuildOptions], and
// apply the page-load timeout. The concrete installer lives in the installer
// package; [NewSeleniumOpener] provides the tebeka/selenium backed opener.
//
// Both collaborators are narrow interfaces so the bootstrap logic can be
// tested against gomock fakes from internal/mock.
package driver

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/driver_mock.go -package=mock

// Installer resolves a driver binary, downloading it into cacheDir when it
// is not cached yet. It returns the absolute path of the executable.
type Installer interface {
	Install(ctx context.Context, cacheDir string) (string, error)
}

// SessionOpener starts the driver binary at driverPath and opens a browser
// session configured with opts.
type SessionOpener interface {
	Open(ctx context.Context, driverPath string, opts Options) (Session, error)
}

// Session is a live browser session. It is owned by the caller of
// [Bootstrapper.Setup], who is responsible for calling Quit.
type Session interface {
	// ExecuteScript runs script in the page context and returns its result.
	ExecuteScript(script string, args []any) (any, error)

	// SetPageLoadTimeout bounds how long a navigation may take.
	SetPageLoadTimeout(timeout time.Duration) error

	// Quit closes the browser and stops the driver process.
	Quit() error
}

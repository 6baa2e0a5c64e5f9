package driver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/lms-automation/internal/config"
	"github.com/MKhiriev/lms-automation/internal/driver"
	"github.com/MKhiriev/lms-automation/internal/logger"
	"github.com/MKhiriev/lms-automation/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tebeka/selenium"
	"go.uber.org/mock/gomock"
)

const driverPath = "/cache/drivers/edgedriver/linux64/121.0/msedgedriver"

// newTestBootstrapper builds a Bootstrapper over gomock fakes.
func newTestBootstrapper(
	t *testing.T,
	ctrl *gomock.Controller,
	cfg config.Driver,
	log *logger.Logger,
) (
	*driver.Bootstrapper,
	*mock.MockInstaller,
	*mock.MockSessionOpener,
	*mock.MockSession,
	string,
) {
	t.Helper()
	cache := filepath.Join(t.TempDir(), "wdm")
	cfg.CachePath = cache

	installer := mock.NewMockInstaller(ctrl)
	opener := mock.NewMockSessionOpener(ctrl)
	session := mock.NewMockSession(ctrl)

	return driver.NewBootstrapper(cfg, installer, opener, log), installer, opener, session, cache
}

func bufferLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log, err := logger.NewLoggerWithWriter(&buf, "driver", config.Log{Level: "DEBUG"})
	require.NoError(t, err)
	return log, &buf
}

func lastLogEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

// ── Setup ────────────────────────────────────────────────────────────────────

func TestBootstrapper_Setup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	log, buf := bufferLogger(t)
	b, installer, opener, session, cache := newTestBootstrapper(t, ctrl, config.Driver{HeadlessMode: "TRUE"}, log)
	ctx := context.Background()

	gomock.InOrder(
		installer.EXPECT().Install(ctx, cache).Return(driverPath, nil),
		opener.EXPECT().Open(ctx, driverPath, driver.Options{
			Args: []string{driver.ArgStartMaximized, driver.ArgHeadless},
		}).Return(session, nil),
		session.EXPECT().SetPageLoadTimeout(30*time.Second).Return(nil),
	)

	got, err := b.Setup(ctx)
	require.NoError(t, err)
	assert.Same(t, session, got)
	assert.DirExists(t, cache)
	assert.Contains(t, buf.String(), "EdgeDriver successfully initialized")
}

func TestBootstrapper_Setup_UsesConfiguredTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	b, installer, opener, session, _ := newTestBootstrapper(t, ctrl, config.Driver{PageLoadTimeout: time.Minute}, logger.Nop())

	installer.EXPECT().Install(gomock.Any(), gomock.Any()).Return(driverPath, nil)
	opener.EXPECT().Open(gomock.Any(), driverPath, gomock.Any()).Return(session, nil)
	session.EXPECT().SetPageLoadTimeout(time.Minute).Return(nil)

	_, err := b.Setup(context.Background())
	require.NoError(t, err)
}

func TestBootstrapper_Setup_InstallFailureIsDriverError(t *testing.T) {
	ctrl := gomock.NewController(t)
	log, buf := bufferLogger(t)
	b, installer, _, _, _ := newTestBootstrapper(t, ctrl, config.Driver{}, log)

	installer.EXPECT().Install(gomock.Any(), gomock.Any()).Return("", assert.AnError)

	got, err := b.Setup(context.Background())
	assert.Nil(t, got)
	require.ErrorIs(t, err, assert.AnError)
	assert.True(t, driver.IsDriverError(err))
	assert.Contains(t, buf.String(), "webdriver failure while setting up EdgeDriver")

	entry := lastLogEntry(t, buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, []any{
		"*fmt.wrapErrors: " + err.Error(),
		"*errors.errorString: " + driver.ErrDriver.Error(),
		"*errors.errorString: " + assert.AnError.Error(),
	}, entry["causes"])
}

func TestBootstrapper_Setup_RemoteErrorIsDriverError(t *testing.T) {
	ctrl := gomock.NewController(t)
	log, buf := bufferLogger(t)
	b, installer, opener, _, _ := newTestBootstrapper(t, ctrl, config.Driver{}, log)

	remoteErr := &selenium.Error{Err: "session not created", Message: "browser version mismatch"}
	installer.EXPECT().Install(gomock.Any(), gomock.Any()).Return(driverPath, nil)
	opener.EXPECT().Open(gomock.Any(), driverPath, gomock.Any()).Return(nil, remoteErr)

	_, err := b.Setup(context.Background())

	var got *selenium.Error
	require.ErrorAs(t, err, &got)
	assert.Same(t, remoteErr, got)
	assert.True(t, driver.IsDriverError(err))
	assert.Contains(t, buf.String(), "webdriver failure while setting up EdgeDriver")
}

func TestBootstrapper_Setup_OtherOpenErrorIsUnexpected(t *testing.T) {
	ctrl := gomock.NewController(t)
	log, buf := bufferLogger(t)
	b, installer, opener, _, _ := newTestBootstrapper(t, ctrl, config.Driver{}, log)

	installer.EXPECT().Install(gomock.Any(), gomock.Any()).Return(driverPath, nil)
	opener.EXPECT().Open(gomock.Any(), driverPath, gomock.Any()).Return(nil, context.Canceled)

	_, err := b.Setup(context.Background())

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, driver.IsDriverError(err))
	assert.Contains(t, buf.String(), "unexpected error while setting up EdgeDriver")

	entry := lastLogEntry(t, buf)
	assert.Equal(t, []any{
		"*fmt.wrapError: open session: context canceled",
		"*errors.errorString: context canceled",
	}, entry["causes"])
}

func TestBootstrapper_Setup_TimeoutFailureQuitsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	b, installer, opener, session, _ := newTestBootstrapper(t, ctrl, config.Driver{}, logger.Nop())

	timeoutErr := errors.New("timeouts rejected")
	installer.EXPECT().Install(gomock.Any(), gomock.Any()).Return(driverPath, nil)
	opener.EXPECT().Open(gomock.Any(), driverPath, gomock.Any()).Return(session, nil)
	gomock.InOrder(
		session.EXPECT().SetPageLoadTimeout(gomock.Any()).Return(timeoutErr),
		session.EXPECT().Quit().Return(nil),
	)

	got, err := b.Setup(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, timeoutErr)
}

func TestBootstrapper_Setup_CacheFailureSkipsInstaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	installer := mock.NewMockInstaller(ctrl)
	opener := mock.NewMockSessionOpener(ctrl)

	occupied := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(occupied, []byte("x"), 0o600))

	b := driver.NewBootstrapper(config.Driver{CachePath: occupied}, installer, opener, logger.Nop())

	_, err := b.Setup(context.Background())
	assert.Error(t, err)
}

// ── IsDriverError ────────────────────────────────────────────────────────────

func TestIsDriverError(t *testing.T) {
	assert.True(t, driver.IsDriverError(driver.ErrDriver))
	assert.True(t, driver.IsDriverError(&selenium.Error{Err: "no such window"}))
	assert.False(t, driver.IsDriverError(assert.AnError))
	assert.False(t, driver.IsDriverError(nil))
}

package installer

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/lms-automation/internal/config"
	"github.com/MKhiriev/lms-automation/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

const testVersion = "121.0.2277.83"

// ── helpers ───────────────────────────────────────────────────────────────────

func utf16Body(t *testing.T, s string) []byte {
	t.Helper()
	b, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func zipWith(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

type mirror struct {
	server   *httptest.Server
	requests atomic.Int32
}

func newMirror(t *testing.T, latest []byte, archive []byte) *mirror {
	t.Helper()
	m := &mirror{}
	mux := http.NewServeMux()
	mux.HandleFunc("/LATEST_STABLE", func(w http.ResponseWriter, r *http.Request) {
		m.requests.Add(1)
		_, _ = w.Write(latest)
	})
	mux.HandleFunc("/"+testVersion+"/edgedriver_linux64.zip", func(w http.ResponseWriter, r *http.Request) {
		m.requests.Add(1)
		_, _ = w.Write(archive)
	})
	m.server = httptest.NewServer(mux)
	t.Cleanup(m.server.Close)
	return m
}

func newTestInstaller(baseURL, version string) *EdgeInstaller {
	return &EdgeInstaller{
		client:   resty.New().SetBaseURL(baseURL),
		version:  version,
		platform: PlatformLinux64,
		logger:   logger.Nop(),
	}
}

// ── DetectPlatform ────────────────────────────────────────────────────────────

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		goos, goarch string
		expected     Platform
		binary       string
	}{
		{"windows", "amd64", PlatformWin64, "msedgedriver.exe"},
		{"windows", "386", PlatformWin32, "msedgedriver.exe"},
		{"windows", "arm64", PlatformWinArm, "msedgedriver.exe"},
		{"darwin", "amd64", PlatformMac64, "msedgedriver"},
		{"darwin", "arm64", PlatformMacM1, "msedgedriver"},
		{"linux", "amd64", PlatformLinux64, "msedgedriver"},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			p, err := DetectPlatform(tt.goos, tt.goarch)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
			assert.Equal(t, tt.binary, p.BinaryName())
			assert.Equal(t, "edgedriver_"+string(tt.expected)+".zip", p.ArchiveName())
		})
	}
}

func TestDetectPlatform_Unsupported(t *testing.T) {
	_, err := DetectPlatform("linux", "riscv64")
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

// ── decodeVersion ─────────────────────────────────────────────────────────────

func TestDecodeVersion_UTF16WithBOM(t *testing.T) {
	v, err := decodeVersion(utf16Body(t, testVersion+"\r\n"))
	require.NoError(t, err)
	assert.Equal(t, testVersion, v)
}

func TestDecodeVersion_PlainUTF8(t *testing.T) {
	v, err := decodeVersion([]byte(" " + testVersion + "\n"))
	require.NoError(t, err)
	assert.Equal(t, testVersion, v)
}

func TestDecodeVersion_Garbage(t *testing.T) {
	_, err := decodeVersion([]byte("<html>not found</html>"))
	assert.ErrorIs(t, err, ErrInvalidVersion)
}

// ── Install ───────────────────────────────────────────────────────────────────

func TestInstall_DownloadsLatestStable(t *testing.T) {
	archive := zipWith(t, map[string]string{
		"msedgedriver":              "#!/bin/sh\n",
		"Driver_Notes/credits.html": "<html></html>",
	})
	m := newMirror(t, utf16Body(t, testVersion), archive)
	cache := t.TempDir()

	path, err := newTestInstaller(m.server.URL, "").Install(context.Background(), cache)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cache, "drivers", "edgedriver", "linux64", testVersion, "msedgedriver"), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\n", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	assert.Equal(t, int32(2), m.requests.Load())
}

func TestInstall_CacheHitSkipsDownload(t *testing.T) {
	m := newMirror(t, nil, nil)
	cache := t.TempDir()

	cached := filepath.Join(cache, "drivers", "edgedriver", "linux64", testVersion, "msedgedriver")
	require.NoError(t, os.MkdirAll(filepath.Dir(cached), 0o755))
	require.NoError(t, os.WriteFile(cached, []byte("cached"), 0o755))

	path, err := newTestInstaller(m.server.URL, testVersion).Install(context.Background(), cache)
	require.NoError(t, err)
	assert.Equal(t, cached, path)
	assert.Zero(t, m.requests.Load())
}

func TestInstall_PinnedVersionSkipsLatestStable(t *testing.T) {
	archive := zipWith(t, map[string]string{"msedgedriver": "bin"})
	m := newMirror(t, []byte("999.0.0.0"), archive)

	path, err := newTestInstaller(m.server.URL, testVersion).Install(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, path, testVersion)
	assert.Equal(t, int32(1), m.requests.Load())
}

func TestInstall_ArchiveWithoutBinary(t *testing.T) {
	archive := zipWith(t, map[string]string{"README.txt": "nothing here"})
	m := newMirror(t, utf16Body(t, testVersion), archive)

	_, err := newTestInstaller(m.server.URL, "").Install(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrNoBinaryInArchive)
}

func TestInstall_MirrorReturnsNotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(server.Close)

	_, err := newTestInstaller(server.URL, "").Install(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrDownload)
}

func TestInstall_InvalidPinnedVersion(t *testing.T) {
	_, err := newTestInstaller("http://127.0.0.1:1", "latest").Install(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrInvalidVersion)
}

func TestInstall_CanceledContext(t *testing.T) {
	m := newMirror(t, utf16Body(t, testVersion), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestInstaller(m.server.URL, "").Install(ctx, t.TempDir())
	assert.ErrorIs(t, err, ErrDownload)
}

// ── NewEdgeInstaller ──────────────────────────────────────────────────────────

func TestNewEdgeInstaller_TrimsConfig(t *testing.T) {
	inst, err := NewEdgeInstaller(config.Driver{
		MirrorURL: "https://mirror.example/",
		Version:   " " + testVersion + " ",
	}, logger.Nop())
	if err != nil {
		assert.ErrorIs(t, err, ErrUnsupportedPlatform)
		t.Skip("no msedgedriver build for this platform")
	}

	assert.Equal(t, testVersion, inst.version)
	assert.Equal(t, "https://mirror.example", inst.client.BaseURL)
}

package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/lms-automation/internal/config"
	"github.com/MKhiriev/lms-automation/internal/logger"
	"github.com/mitchellh/go-homedir"
)

// PrepareCache resolves the driver cache directory and creates it if absent.
//
// The directory is cfg.CachePath (with a leading "~" expanded) or ~/.wdm when
// unset. Calling it repeatedly is safe. Creation failures are returned.
func PrepareCache(cfg config.Driver, log *logger.Logger) (string, error) {
	path, err := resolveCachePath(cfg.CachePath)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("create driver cache directory: %w", err)
	}

	wdmLocal := "0"
	if cfg.Local {
		wdmLocal = "1"
	}
	log.Debug().Msgf("WDM_LOCAL: %s", wdmLocal)
	log.Debug().Msgf("WDM_CACHE_PATH: %s", path)

	return path, nil
}

func resolveCachePath(configured string) (string, error) {
	if configured != "" {
		path, err := homedir.Expand(configured)
		if err != nil {
			return "", fmt.Errorf("expand driver cache path: %w", err)
		}
		return filepath.Abs(path)
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, config.DefaultCacheDirName), nil
}

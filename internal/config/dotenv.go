package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const envFileName = ".env"

// defaultEnvFilePath returns the .env file located one directory above the
// running executable. It falls back to ".env" in the working directory when
// the executable path cannot be resolved.
func defaultEnvFilePath() string {
	execPath, err := os.Executable()
	if err != nil {
		return envFileName
	}

	return filepath.Join(filepath.Dir(execPath), "..", envFileName)
}

// lookupEnvFilePath picks the .env location: the -env-file flag first, then
// ENV_FILE from the process environment, then [defaultEnvFilePath].
func lookupEnvFilePath(flags *StructuredConfig) string {
	if flags != nil && flags.EnvFilePath != "" {
		return flags.EnvFilePath
	}
	if path := os.Getenv("ENV_FILE"); path != "" {
		return path
	}

	return defaultEnvFilePath()
}

// readDotEnv parses key=value pairs from path with godotenv. A missing file
// is not an error and yields an empty map.
func readDotEnv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading env file %q: %w", path, err)
	}

	return values, nil
}

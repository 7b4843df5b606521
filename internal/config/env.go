package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDatabasePath = "ATTENDANCE_DB"
	EnvExportDir    = "ATTENDANCE_EXPORT_DIR"
	EnvLogLevel     = "ATTENDANCE_LOG_LEVEL"
	EnvLogFormat    = "ATTENDANCE_LOG_FORMAT"
	EnvBusyTimeout  = "ATTENDANCE_BUSY_TIMEOUT"
)

// parseEnv overlays cfg with ATTENDANCE_* variables. Values from dotenvPath
// are used only for keys lookup does not know. A missing dotenv file is not
// an error.
func parseEnv(cfg *Config, dotenvPath string, lookup func(string) (string, bool)) {
	fileVars, err := godotenv.Read(dotenvPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	if v, ok := get(EnvDatabasePath); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := get(EnvExportDir); ok {
		cfg.ExportDir = v
	}
	if v, ok := get(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := get(EnvLogFormat); ok && v != "" {
		cfg.LogFormat = v
	}
	if v, ok := get(EnvBusyTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.BusyTimeout = d
	}
}

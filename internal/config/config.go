package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the attendance terminal.
type Config struct {
	DatabasePath string
	// ExportDir overrides export directory discovery when non-empty.
	ExportDir   string
	LogLevel    string
	LogFormat   string
	BusyTimeout time.Duration
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "attendance.db"
	c.ExportDir = ""
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.BusyTimeout = 5 * time.Second
}

// LoadConfig builds a Config from defaults, the environment, an optional
// config file and the process flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, ".env", os.LookupEnv)
	parseFile(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}

package config

import (
	"flag"

	"github.com/dmitrijs2005/attendance/internal/flagx"
)

// parseFlags populates cfg from args, considering only the flags it owns.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-o", "-l", "-f", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "database file path")
	fs.StringVar(&cfg.ExportDir, "o", cfg.ExportDir, "export directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json)")
	fs.DurationVar(&cfg.BusyTimeout, "t", cfg.BusyTimeout, "busy timeout, e.g. 5s")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

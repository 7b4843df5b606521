// Package config loads runtime configuration for the attendance terminal.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a ".env" file in the
//     working directory. Variables already set in the process environment
//     win over the file.
//  3. Optional config file selected with -c or -config. The format follows
//     the extension: ".yaml"/".yml" for YAML, anything else for JSON.
//  4. Command-line flags, which override everything above.
//
// Environment
//
//	ATTENDANCE_DB            database file path
//	ATTENDANCE_EXPORT_DIR    directory for spreadsheet exports
//	ATTENDANCE_LOG_LEVEL     debug | info | warn | error
//	ATTENDANCE_LOG_FORMAT    text | json
//	ATTENDANCE_BUSY_TIMEOUT  e.g. "5s"
//
// Flags
//
//	-d string   database file path
//	-o string   export directory
//	-l string   log level
//	-f string   log format
//	-t duration busy timeout
//
// # File schema
//
// Durations use timex.Duration and accept "5s" or integer nanoseconds:
//
//	database_path: attendance.db
//	export_dir: /srv/exports
//	log_level: debug
//	log_format: json
//	busy_timeout: 5s
//
// Malformed files or flags make the loaders panic; the entry point treats
// that as a fatal startup error.
package config

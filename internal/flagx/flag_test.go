package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-d", "ledger.db", "-l", "debug"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d", "ledger.db"},
		},
		{
			name:         "equals form",
			args:         []string{"-o=/tmp/exports", "-d", "ledger.db"},
			allowedFlags: []string{"-o"},
			want:         []string{"-o=/tmp/exports"},
		},
		{
			name:         "unknown flags and positionals dropped",
			args:         []string{"-x", "1", "--y=2", "kiosk"},
			allowedFlags: []string{"-d", "-o"},
			want:         []string{},
		},
		{
			name:         "dangling flag kept alone",
			args:         []string{"-d"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d"},
		},
		{
			name:         "next flag is not taken as value",
			args:         []string{"-c", "-l", "warn"},
			allowedFlags: []string{"-c", "-l"},
			want:         []string{"-c", "-l", "warn"},
		},
		{
			name:         "order preserved across repeats",
			args:         []string{"-f", "text", "-d", "a.db", "-f", "json"},
			allowedFlags: []string{"-f", "-d"},
			want:         []string{"-f", "text", "-d", "a.db", "-f", "json"},
		},
		{
			name:         "empty",
			args:         nil,
			allowedFlags: []string{"-d"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"-c", "attendance.yaml"}, want: "attendance.yaml"},
		{name: "long", args: []string{"-config", "attendance.json"}, want: "attendance.json"},
		{name: "equals", args: []string{"--config=conf/a.yml"}, want: "conf/a.yml"},
		{name: "other flags ignored", args: []string{"-d", "x.db", "-l", "debug"}, want: ""},
		{name: "last wins", args: []string{"-c", "one.json", "-config", "two.yaml"}, want: "two.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFileFlag(tt.args))
		})
	}
}

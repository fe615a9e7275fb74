package logging

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// redirectStateHome points the XDG state directory at a per-test temp dir so
// SetupLogger's log file never lands in the real state home. Cleanups run
// last-in-first-out: the Reload registered here fires after t.Setenv has
// restored the environment.
func redirectStateHome(t *testing.T) {
	t.Helper()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
}

func TestSetupLoggerLevels(t *testing.T) {
	redirectStateHome(t)

	tests := []struct {
		name      string
		verbosity int
		want      zerolog.Level
	}{
		{name: "default is warn", verbosity: 0, want: zerolog.WarnLevel},
		{name: "v is info", verbosity: 1, want: zerolog.InfoLevel},
		{name: "vv is debug", verbosity: 2, want: zerolog.DebugLevel},
		{name: "vvv is trace", verbosity: 3, want: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetupLogger(tt.verbosity)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("resolver")
	// The component logger must be usable without any prior setup.
	logger.Debug().Msg("test message")
}

func TestLogFilePath(t *testing.T) {
	// xdg caches the state dir at init time, so only the stable suffix is
	// worth asserting here.
	assert.True(t, strings.HasSuffix(LogFilePath(), filepath.Join("repoloc", "repoloc.log")))
}

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToInfo(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "empty", level: "", want: zerolog.InfoLevel},
		{name: "garbage", level: "loud", want: zerolog.InfoLevel},
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New(Config{Level: tt.level})
			defer result.Close()

			assert.Equal(t, tt.want, result.Logger.GetLevel())
		})
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecotrack.log")

	result := New(Config{Level: "info", File: path})
	result.Logger.Info().Str("component", "test").Msg("hello")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"component":"test"`)
}

func TestNewSurvivesUnopenableFile(t *testing.T) {
	result := New(Config{Level: "info", File: filepath.Join(t.TempDir(), "missing", "deep", "ecotrack.log")})
	defer result.Close()

	// Must not panic and must still produce a usable logger.
	result.Logger.Info().Msg("still alive")
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	componentLogger := Component(logger, "tracker")
	componentLogger.Info().Msg("loaded")

	assert.Contains(t, buf.String(), `"component":"tracker"`)
}

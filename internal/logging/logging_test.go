package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/riparto/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "riparto.log")
	logger, closer, err := New(config.LogConfig{Path: path, Level: "debug"})
	require.NoError(t, err)

	logger.WithField("run_id", "abc").Debug("allocation stored")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "allocation stored")
	require.Contains(t, string(data), "run_id=abc")
}

func TestNewRejectsBadLevel(t *testing.T) {
	t.Parallel()

	_, _, err := New(config.LogConfig{Path: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	require.Error(t, err)
}

func TestCommandLineFormatter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	CommandLine(&buf).WithField("ignored", true).Info("saved run 1")
	require.Equal(t, "saved run 1\n", buf.String())
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { Discard().Error("dropped") })
}

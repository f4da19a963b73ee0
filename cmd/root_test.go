package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_ClosesLogFileWhenCommandFails(t *testing.T) {
	chdir(t, t.TempDir())
	logPath := filepath.Join(t.TempDir(), "depwalk.log")
	t.Cleanup(func() {
		logfile = ""
		logCloser = nil
		rootCmd.SetErr(os.Stderr)
	})

	rootCmd.SetArgs([]string{"walk", filepath.Join(t.TempDir(), "missing"), "--output", "-", "--logfile", logPath})
	rootCmd.SetErr(&bytes.Buffer{})

	require.Error(t, execute())
	require.NotNil(t, logCloser)
	assert.ErrorIs(t, logCloser.Close(), os.ErrClosed)
	_, err := os.Stat(logPath)
	assert.NoError(t, err)
}

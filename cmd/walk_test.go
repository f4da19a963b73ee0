package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkCommand(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "com", "example", "service-a", "consumer-x"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "com", "example", "service-a", "pom.xml"), nil, 0o644))
	out := filepath.Join(t.TempDir(), "graph.json")
	chdir(t, t.TempDir())

	rootCmd.SetArgs([]string{"walk", root, "--output", out})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"parent":"com.example:service-a","child":"consumer-x"}]`, string(data))
}

func TestWalkCommand_MissingRoot(t *testing.T) {
	chdir(t, t.TempDir())
	rootCmd.SetArgs([]string{"walk", filepath.Join(t.TempDir(), "missing"), "--output", "-"})
	rootCmd.SetErr(&bytes.Buffer{})

	assert.Error(t, rootCmd.Execute())
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "depwalk dev\n", buf.String())
}

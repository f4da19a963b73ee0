package generator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/psanford/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tristendillon/depwalk/core/config"
	"github.com/tristendillon/depwalk/core/logger"
	"github.com/tristendillon/depwalk/core/walker"
)

func contractsFS(t *testing.T) *memfs.FS {
	t.Helper()
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("com/example/service-a/consumer-x", 0o755))
	require.NoError(t, fsys.MkdirAll("com/example/service-a/consumer-y", 0o755))
	require.NoError(t, fsys.WriteFile("com/example/service-a/pom.xml", nil, 0o644))
	require.NoError(t, fsys.MkdirAll("org/other/lib-b/2.0/consumer-z", 0o755))
	require.NoError(t, fsys.WriteFile("org/other/lib-b/2.0/build.gradle", nil, 0o644))
	return fsys
}

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.Root = "/contracts"
	cfg.Output.Path = filepath.Join(t.TempDir(), "relationships.json")
	return cfg
}

func TestGenerate_WritesContractFile(t *testing.T) {
	cfg := testConfig(t)
	g, err := NewGraphGenerator(cfg, logger.Discard())
	require.NoError(t, err)
	g.FS = contractsFS(t)

	result, err := g.Generate(logger.DEBUG)
	require.NoError(t, err)

	assert.True(t, result.Written)
	assert.Equal(t, []string{"com.example:service-a", "org.other:lib-b"}, result.Producers)

	data, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"parent":"com.example:service-a","child":"consumer-x"},
		{"parent":"com.example:service-a","child":"consumer-y"},
		{"parent":"org.other:lib-b","child":"consumer-z"}
	]`, string(data))
}

func TestGenerate_SkipsUnchangedOutput(t *testing.T) {
	fsys := contractsFS(t)
	g, err := NewGraphGenerator(testConfig(t), logger.Discard())
	require.NoError(t, err)
	g.FS = fsys

	first, err := g.Generate(logger.DEBUG)
	require.NoError(t, err)
	require.True(t, first.Written)

	second, err := g.Generate(logger.DEBUG)
	require.NoError(t, err)
	assert.False(t, second.Written)
	assert.Equal(t, first.Relationships, second.Relationships)

	require.NoError(t, fsys.MkdirAll("org/other/lib-b/2.0/consumer-w", 0o755))
	third, err := g.Generate(logger.DEBUG)
	require.NoError(t, err)
	assert.True(t, third.Written)
	assert.Len(t, third.Relationships, 4)
}

func TestGenerate_MissingRoot(t *testing.T) {
	cfg := testConfig(t)
	cfg.Root = filepath.Join(t.TempDir(), "missing")
	g, err := NewGraphGenerator(cfg, logger.Discard())
	require.NoError(t, err)

	_, err = g.Generate(logger.DEBUG)

	var fsErr *walker.FilesystemError
	assert.True(t, errors.As(err, &fsErr))
	_, statErr := os.Stat(cfg.Output.Path)
	assert.True(t, os.IsNotExist(statErr), "no output is written on failure")
}

func TestNewGraphGenerator_RejectsUnknownFormat(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.Format = "xml"

	_, err := NewGraphGenerator(cfg, logger.Discard())
	assert.Error(t, err)
}

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/repoloc/pkg/pathinfo"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Command flags are package globals; put them back between tests.
	t.Cleanup(func() {
		basePath = ""
		forceBase = false
		checkReachable = false
		proxyURL = ""
		proxyUser = ""
		proxyPassword = ""
		proxyDefaultCreds = false
		formatName = ""
		verbosity = 0
		cfgFile = ""
		noColor = false
	})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

func TestResolveCommandURL(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := runCommand(t, "resolve", "https://example.com/repo/manifest.toml")

	require.NoError(t, err)
	assert.Contains(t, out, "http")
	assert.Contains(t, out, "https://example.com/repo/manifest.toml")
}

func TestResolveCommandFileJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "manifest.toml")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	chdir(t, dir)

	out, err := runCommand(t, "resolve", file, "--format", "json")
	require.NoError(t, err)

	var info pathinfo.PathInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.True(t, info.Valid)
	assert.Equal(t, pathinfo.TypeFile, info.Type)
}

func TestResolveCommandMissingExitsNonZero(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := runCommand(t, "resolve", "missing.txt")

	require.Error(t, err)
	assert.Contains(t, out, "missing.txt")
	assert.Contains(t, out, "unresolved")
}

func TestGenconfigCommand(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := runCommand(t, "genconfig")

	require.NoError(t, err)
	assert.Contains(t, out, "[http]")
	assert.Contains(t, out, "timeout = 8")
}

func TestUnknownFormatFlag(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := runCommand(t, "resolve", "https://example.com/x", "--format", "yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

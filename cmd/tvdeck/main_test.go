package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/tvdeck/internal/bridge"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfg := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfg, nil, 0o600))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCatalogDump(t *testing.T) {
	out, _, err := execute(t, "catalog", "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "The Last Frontier")
	assert.Contains(t, out, "com.netflix.mediaclient")
}

func TestOpen_WithoutBridgeFails(t *testing.T) {
	_, stderr, err := execute(t, "--bridge", "none", "open", "netflix")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no bridge")
	assert.Contains(t, stderr, "no launch bridge available")
}

func TestOpen_RequiresAppID(t *testing.T) {
	_, _, err := execute(t, "open")
	require.Error(t, err)
}

func TestOpen_UnknownBridgeKind(t *testing.T) {
	_, _, err := execute(t, "--bridge", "carrier-pigeon", "open", "netflix")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "bridge"), err.Error())
}

func TestReportOutcome(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, reportOutcome(&buf, "spotify", bridge.Launched))
	assert.Equal(t, "opened spotify\n", buf.String())
	assert.Error(t, reportOutcome(&buf, "prime", bridge.NoPackage))
}

// Copyright 2026 The Paymap Authors
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsZeroConfig(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad_ParsesAllFields(t *testing.T) {
	dir := t.TempDir()
	content := `input: systems.csv
output: map.html
format: json
all_systems: true
overrides: extra.toml
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "systems.csv", cfg.Input)
	assert.Equal(t, "map.html", cfg.Output)
	assert.Equal(t, "json", cfg.Format)
	require.NotNil(t, cfg.AllSystems)
	assert.True(t, *cfg.AllSystems)
	assert.Equal(t, "extra.toml", cfg.Overrides)
}

func TestLoad_UnsetBoolStaysNil(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("input: x.csv\n"), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Nil(t, cfg.AllSystems)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("input: [broken\n"), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestWrite_RoundTrips(t *testing.T) {
	on := true
	cfg := &Config{Input: "a.csv", Format: "html", AllSystems: &on}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, cfg))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), buf.Bytes(), 0o600))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

/*
 * main_test.go, part of lmpdata.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

const waterXYZ = `6
two waters
O   0.000  0.000  0.000
H   0.757  0.586  0.000
H  -0.757  0.586  0.000
O   3.000  0.000  0.000
H   3.757  0.586  0.000
H   2.243  0.586  0.000
`

const waterRecipe = `{
  "box": [[-2, 6], [-2, 4], [-2, 2]],
  "forcefield": {
    "pairs": [{"key": ["OW"], "values": [0.1553, 3.166]}, {"key": ["HW"], "values": [0, 0]}],
    "bonds": [{"key": ["OW", "HW"], "values": [554.1349, 1.0]}],
    "angles": [{"key": ["HW", "OW", "HW"], "values": [45.7696, 109.47]}]
  },
  "molecules": [{
    "name": "SPC",
    "labels": ["OW", "HW", "HW"],
    "charges": [-0.82, 0.41, 0.41],
    "bonds": [{"atoms": [0, 1], "key": ["OW", "HW"]}, {"atoms": [2, 0], "key": ["HW", "OW"]}],
    "angles": [{"atoms": [1, 0, 2], "key": ["HW", "OW", "HW"]}]
  }],
  "counts": [2],
  "xyz": "water.xyz"
}`

func writeInputs(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "water.xyz"), []byte(waterXYZ), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "water.json"), []byte(waterRecipe), 0644))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildInfoConvert(t *testing.T) {
	dir := writeInputs(t)
	gz := filepath.Join(dir, "water.data.gz")
	_, err := run(t, "build", filepath.Join(dir, "water.json"), "-o", gz)
	require.NoError(t, err)

	out, err := run(t, "info", gz)
	require.NoError(t, err)
	assert.Contains(t, out, "atoms: 6\n")
	assert.Contains(t, out, "atom types: 2\n")
	assert.Contains(t, out, "bonds: 4 (1 types)\n")
	assert.Contains(t, out, "angles: 2 (1 types)\n")
	assert.Contains(t, out, "box x: -2 6\n")
	assert.NotContains(t, out, "warning:")

	plain := filepath.Join(dir, "water.data")
	_, err = run(t, "convert", gz, plain, "--title", "two SPC waters")
	require.NoError(t, err)
	b, err := os.ReadFile(plain)
	require.NoError(t, err)
	text := string(b)
	assert.True(t, strings.HasPrefix(text, "two SPC waters\n"))
	assert.Contains(t, text, "\nAtoms # full\n\n1 1 2 -0.82 0 0 0\n")
	assert.Contains(t, text, "\nBonds\n\n1 1 1 2\n2 1 3 1\n3 1 4 5\n4 1 6 4\n")
}

func TestBuildFitBox(t *testing.T) {
	dir := writeInputs(t)
	recipe := strings.Replace(waterRecipe, `"box": [[-2, 6], [-2, 4], [-2, 2]],`, `"box": [[0, 1], [0, 1], [0, 1]], "fit_box": true,`, 1)
	name := filepath.Join(dir, "fit.json")
	require.NoError(t, os.WriteFile(name, []byte(recipe), 0644))
	data := filepath.Join(dir, "fit.data")
	_, err := run(t, "build", name, "-o", data)
	require.NoError(t, err)

	out, err := run(t, "info", data)
	require.NoError(t, err)
	assert.Contains(t, out, "box x: 0 5\n")
	assert.Contains(t, out, "box y: 0 1\n")
	assert.Contains(t, out, "box z: 0 1\n")

	//A title that looks like a section keyword survives a conversion.
	renamed := filepath.Join(dir, "renamed.data")
	_, err = run(t, "convert", data, renamed, "--title", "Atoms")
	require.NoError(t, err)
	out, err = run(t, "info", renamed)
	require.NoError(t, err)
	assert.Contains(t, out, "title: Atoms\n")
	assert.Contains(t, out, "atoms: 6\n")
}

func TestBuildErrors(t *testing.T) {
	dir := writeInputs(t)
	_, err := run(t, "build", filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
	_, err = run(t, "info")
	assert.Error(t, err)
}

func TestPlotCmd(t *testing.T) {
	dir := writeInputs(t)
	data := filepath.Join(dir, "water.data.zst")
	_, err := run(t, "build", filepath.Join(dir, "water.json"), "-o", data)
	require.NoError(t, err)
	prefix := filepath.Join(dir, "water")
	_, err = run(t, "plot", data, "-o", prefix)
	require.NoError(t, err)
	for _, suffix := range []string{"_types.png", "_bonds.png", "_angles.png"} {
		assert.FileExists(t, prefix+suffix)
	}
	assert.NoFileExists(t, prefix+"_dihedrals.png")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lmpdata.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: from file\nlog:\n  format: json\n"), 0644))
	t.Setenv("LMPDATA_LOG_LEVEL", "debug")
	c, err := loadConfig(newViper(), path)
	require.NoError(t, err)
	assert.Equal(t, "from file", c.Title)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "debug", c.Log.Level)

	t.Setenv("LMPDATA_TITLE", "from env")
	c, err = loadConfig(newViper(), "")
	require.NoError(t, err)
	assert.Equal(t, "from env", c.Title)
	assert.Equal(t, "console", c.Log.Format)

	t.Setenv("LMPDATA_LOG_FORMAT", "xml")
	_, err = loadConfig(newViper(), "")
	assert.Error(t, err)
	_, err = loadConfig(newViper(), filepath.Join(dir, "nothere.yaml"))
	assert.Error(t, err)
}

func TestConfigTitle(t *testing.T) {
	dir := writeInputs(t)
	t.Setenv("LMPDATA_TITLE", "configured title")
	out := filepath.Join(dir, "water.data")
	_, err := run(t, "build", filepath.Join(dir, "water.json"), "-o", out)
	require.NoError(t, err)
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "configured title\n"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("whatever"))
	l, err := newLogger(logConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "curve.yaml")
	require.NoError(t, os.WriteFile(name, []byte(text), 0600))
	return name
}

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig([]byte(`
degree: 2
count: 4
knots: 0,0,0,1,2,2,2
points:
  - {index: 1, x: 300, y: 200, weight: 2}
  - {index: 2, x: 500, y: 200}
steps: 50
`))
	require.NoError(t, err)
	assert.Equal(t, "2", cfg.Degree)
	assert.Equal(t, "4", cfg.Count)
	assert.Equal(t, "0,0,0,1,2,2,2", cfg.Knots)
	assert.Equal(t, 50, cfg.Steps)
	require.Len(t, cfg.Points, 2)
	require.NotNil(t, cfg.Points[0].Weight)
	assert.Equal(t, 2.0, *cfg.Points[0].Weight)
	assert.Nil(t, cfg.Points[1].Weight)
}

func TestRun(t *testing.T) {
	name := writeConfig(t, `
degree: 1
count: 2
knots: 0,0,1,1
points:
  - {index: 0, x: 0, y: 0}
  - {index: 1, x: 10, y: 0}
steps: 3
`)
	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", name}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0 0", lines[0])
	assert.Empty(t, stderr.String())

	stdout.Reset()
	code = run([]string{"-config", name, "-steps", "7"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Len(t, strings.Split(strings.TrimSpace(stdout.String()), "\n"), 7)
}

func TestRunKnotFallback(t *testing.T) {
	name := writeConfig(t, `
degree: 2
count: 3
knots: 1,2
`)
	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", name}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "invalid number of knots")
	assert.Contains(t, stderr.String(), "using 0,1,2,3,4,5")
	assert.Len(t, strings.Split(strings.TrimSpace(stdout.String()), "\n"), defaultSteps)

	name = writeConfig(t, `
degree: 2
count: 3
knots: 1,two,3,4,5,6
`)
	stderr.Reset()
	code = run([]string{"-config", name}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "invalid knots")
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 1, run([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &stdout, &stderr))

	bad := writeConfig(t, "degree: [\n")
	assert.Equal(t, 1, run([]string{"-config", bad}, &stdout, &stderr))

	badDegree := writeConfig(t, "degree: two\ncount: 3\n")
	stderr.Reset()
	assert.Equal(t, 1, run([]string{"-config", badDegree}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "degree")

	badIndex := writeConfig(t, "degree: 1\ncount: 2\npoints:\n  - {index: 5, x: 1, y: 1}\n")
	assert.Equal(t, 1, run([]string{"-config", badIndex}, &stdout, &stderr))

	assert.Equal(t, 2, run([]string{"-nope"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
}

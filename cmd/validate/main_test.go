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

func TestRun_DefaultTables(t *testing.T) {
	var out bytes.Buffer
	code := run("", &out)

	assert.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "All validations passed.")
	assert.Contains(t, out.String(), "46 characters, 9 lucky points, 4 groups, 8 advice entries")
}

func TestRun_IncompleteTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	data := strings.Join([]string{
		"characters:",
		"  ก: 1",
		"lucky_points:",
		"  - point: 1",
		"  - point: 1",
		"lucky_point_groups:",
		"  - group: a",
		"    points: [2, 3]",
		"  - group: b",
		"    points: [3]",
		"lucky_number_advice:",
		"  - day: 0",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	var out bytes.Buffer
	code := run(path, &out)
	report := out.String()

	assert.Equal(t, 1, code)
	assert.Contains(t, report, "Validation FAILED.")
	assert.Contains(t, report, `consonant 'ข' (U+0E02) has no value`)
	assert.Contains(t, report, "bucket 2 has no lucky point")
	assert.Contains(t, report, "bucket 1 is defined 2 times")
	assert.Contains(t, report, `total 3 is in "a" and "b"`)
	assert.Contains(t, report, "Monday (1)")
}

func TestRun_MissingFile(t *testing.T) {
	var out bytes.Buffer
	code := run(filepath.Join(t.TempDir(), "missing.yaml"), &out)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "FATAL")
}

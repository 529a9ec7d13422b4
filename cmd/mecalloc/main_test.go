package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mecalloc/allocation"
	"github.com/katalvlaran/mecalloc/placement"
)

// tenUnits is the ten-unit instance: unit k weighs k, rows are units 1..10
// and columns placements 1..10.
const tenUnits = `name: ten-units
weights: [1, 2, 3, 4, 5, 6, 7, 8, 9, 10]
matrix:
  - [1, 0, 0, 1, 0, 1, 0, 0, 0, 1]
  - [1, 1, 0, 0, 0, 0, 0, 0, 0, 1]
  - [1, 0, 1, 0, 1, 0, 0, 0, 0, 0]
  - [0, 1, 0, 0, 0, 1, 1, 0, 0, 1]
  - [0, 0, 0, 1, 1, 0, 0, 1, 0, 0]
  - [0, 0, 1, 0, 1, 0, 0, 0, 1, 0]
  - [0, 0, 0, 0, 0, 0, 1, 1, 0, 1]
  - [0, 0, 0, 0, 0, 0, 1, 0, 1, 0]
  - [0, 0, 0, 0, 0, 0, 0, 0, 1, 0]
  - [0, 0, 0, 0, 0, 0, 0, 1, 1, 0]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(NewConfig())
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestAllocate_Local(t *testing.T) {
	doc := writeFile(t, "ten.yaml", tenUnits)

	out, logs, err := run(t, "allocate", "-f", doc)
	require.NoError(t, err)

	assert.Equal(t, "strategy: local\n"+
		"placement 3: units [3 6] cost 9\n"+
		"placement 4: units [1 5] cost 6\n"+
		"total cost: 15\n", out)
	assert.Contains(t, logs, "local search finished")
}

func TestAllocate_Sequential(t *testing.T) {
	doc := writeFile(t, "ten.yaml", tenUnits)

	out, _, err := run(t, "allocate", "-f", doc, "--strategy", "sequential")
	require.NoError(t, err)
	assert.Contains(t, out, "total cost: 36\n")
}

func TestAllocate_ConfigFileAndFlagPrecedence(t *testing.T) {
	doc := writeFile(t, "ten.yaml", tenUnits)
	conf := writeFile(t, "mecalloc.yaml", "strategy: sequential\nlog:\n  level: error\n")

	out, logs, err := run(t, "allocate", "-f", doc, "--config", conf)
	require.NoError(t, err)
	assert.Contains(t, out, "strategy: sequential")
	assert.Empty(t, logs, "info logs suppressed by config")

	out, _, err = run(t, "allocate", "-f", doc, "--config", conf, "--strategy", "local")
	require.NoError(t, err)
	assert.Contains(t, out, "strategy: local")
}

func TestAllocate_Errors(t *testing.T) {
	doc := writeFile(t, "ten.yaml", tenUnits)

	_, _, err := run(t, "allocate", "-f", doc, "--strategy", "exact")
	assert.ErrorIs(t, err, errUnknownStrategy)

	_, _, err = run(t, "allocate", "-f", doc, "--delta", "1")
	assert.ErrorIs(t, err, allocation.ErrInvalidDelta)

	_, _, err = run(t, "allocate")
	assert.Error(t, err, "missing --file")

	bad := writeFile(t, "bad.yaml", "weights: [1]\nmatrix: [[2]]\n")
	_, _, err = run(t, "allocate", "-f", bad)
	assert.Error(t, err)
}

func TestGenerateThenInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")

	_, _, err := run(t, "generate", "--vertices", "12", "--delta", "3", "--seed", "9", "-o", path)
	require.NoError(t, err)

	doc, err := placement.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "random-n12-d3-s9", doc.Name)
	assert.Len(t, doc.Weights, 12)

	out, _, err := run(t, "inspect", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "units: 12\n")
	assert.Contains(t, out, "placements: 6\n")
	assert.Contains(t, out, "placement matrix:\n")

	again, _, err := run(t, "generate", "--vertices", "12", "--delta", "3", "--seed", "9")
	require.NoError(t, err)
	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(saved), again, "same seed, same document")
}

func TestInspect_SmallDocument(t *testing.T) {
	doc := writeFile(t, "small.yaml", `name: small
weights: [1, 2, 3]
matrix:
  - [1, 0]
  - [1, 1]
  - [0, 1]
`)
	out, _, err := run(t, "inspect", "-f", doc)
	require.NoError(t, err)

	assert.Equal(t, "name: small\n"+
		"units: 3\n"+
		"placements: 2\n"+
		"conflicts: 1\n"+
		"  1 - 2\n"+
		"components: [[1 2]]\n"+
		"placement matrix:\n"+
		"  1 2\n"+
		"1 1 0\n"+
		"2 1 1\n"+
		"3 0 1\n", out)
}

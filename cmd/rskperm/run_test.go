package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rskperm/rsk"
)

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

// TestGolden_ForcedShapes uses shapes with a single SYT, so output does not
// depend on the random stream.
func TestGolden_ForcedShapes(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"sample_column_bumping", []string{"sample", "--shape", "1^3", "--mode", "bumping", "--seed", "7"}},
		{"sample_row_shortcut", []string{"sample", "-s", "4"}},
		{"tableau_column", []string{"tableau", "--shape", "1,1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := execute(t, tc.args...)
			require.Equal(t, ExitSuccess, code, errOut)
			newGoldie(t).Assert(t, tc.name, []byte(out))
		})
	}
}

func TestSample_JSON(t *testing.T) {
	code, out, errOut := execute(t, "sample", "--shape", "3,2,2", "--seed", "42", "--format", "json", "--parallel")
	require.Equal(t, ExitSuccess, code, errOut)

	var doc resultDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []int{3, 2, 2}, doc.Shape)
	assert.Equal(t, 7, doc.N)
	assert.Equal(t, "shortcut", doc.Mode)
	assert.NotEmpty(t, doc.RunID)
	require.NoError(t, rsk.Permutation(doc.Permutation).Validate())

	// Same seed, same permutation.
	_, again, _ := execute(t, "sample", "--shape", "3,2,2", "--seed", "42", "--format", "json", "--parallel")
	var doc2 resultDoc
	require.NoError(t, json.Unmarshal([]byte(again), &doc2))
	assert.Equal(t, doc.Permutation, doc2.Permutation)
	assert.Equal(t, doc.P, doc2.P)
}

func TestTableau_YAML(t *testing.T) {
	code, out, errOut := execute(t, "tableau", "--shape", "3", "--format", "yaml")
	require.Equal(t, ExitSuccess, code, errOut)

	var doc tableauDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []int{3}, doc.Shape)
	assert.Equal(t, [][]int{{1, 2, 3}}, doc.Tableau)
}

func TestStaircase(t *testing.T) {
	code, out, errOut := execute(t, "staircase", "3", "--seed", "1")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.True(t, strings.HasPrefix(out, "shape: 3,2,1 (n=6)\n"), out)

	code, _, errOut = execute(t, "staircase", "0")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, errOut, "staircase size")
}

func TestSample_LargeShapeAbbreviates(t *testing.T) {
	code, out, errOut := execute(t, "sample", "--shape", "15^15", "--seed", "3")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Contains(t, out, "σ of size 225 (first 20)")
	assert.NotContains(t, out, "P:")
}

func TestSample_CellsResizesShape(t *testing.T) {
	code, out, errOut := execute(t, "sample", "--shape", "2,1", "--cells", "10", "--seed", "9", "--format", "json")
	require.Equal(t, ExitSuccess, code, errOut)

	var doc resultDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []int{4, 4, 1, 1}, doc.Shape)
	assert.Equal(t, 10, doc.N)
	require.NoError(t, rsk.Permutation(doc.Permutation).Validate())
}

func TestEnvAndConfigFile(t *testing.T) {
	t.Setenv("RSKPERM_FORMAT", "json")
	code, out, errOut := execute(t, "sample", "--shape", "2,1", "--seed", "5")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.True(t, json.Valid([]byte(out)), out)

	path := filepath.Join(t.TempDir(), "rskperm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: yaml\nmode: bumping\n"), 0o600))
	t.Setenv("RSKPERM_FORMAT", "")
	code, out, errOut = execute(t, "sample", "--shape", "2,2", "--config", path)
	require.Equal(t, ExitSuccess, code, errOut)
	var doc resultDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "bumping", doc.Mode)

	// Flags win over the file.
	code, out, errOut = execute(t, "sample", "--shape", "2,2", "--config", path, "--mode", "shortcut")
	require.Equal(t, ExitSuccess, code, errOut)
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "shortcut", doc.Mode)
}

func TestVerboseLogsToStderr(t *testing.T) {
	code, _, errOut := execute(t, "sample", "--shape", "2,2", "--seed", "1", "-v")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Contains(t, errOut, `"msg":"permutation sampled"`)
	assert.Contains(t, errOut, `"run_id"`)
}

func TestExitCodes(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
	}{
		{"MissingShape", []string{"sample"}, ExitCommandError},
		{"BadShape", []string{"sample", "--shape", "1,2"}, ExitCommandError},
		{"OverflowingShape", []string{"sample", "--shape", "4611686018427387904^4"}, ExitCommandError},
		{"HugeRow", []string{"tableau", "--shape", "9223372036854775807"}, ExitCommandError},
		{"NegativeCells", []string{"sample", "--shape", "2", "--cells=-3"}, ExitCommandError},
		{"TooManyCells", []string{"sample", "--shape", "2", "--cells", "2000000"}, ExitCommandError},
		{"BadFormat", []string{"sample", "--shape", "2", "--format", "xml"}, ExitCommandError},
		{"BadMode", []string{"sample", "--shape", "2", "--mode", "bubble"}, ExitCommandError},
		{"UnknownFlag", []string{"sample", "--nope"}, ExitCommandError},
		{"MissingConfig", []string{"sample", "--shape", "2", "--config", "/nonexistent/rskperm.yaml"}, ExitCommandError},
		{"Exhausted", []string{"sample", "--shape", "9,1", "--seed", "1", "--max-attempts", "1"}, ExitFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, errOut := execute(t, tc.args...)
			assert.Equal(t, tc.code, code, errOut)
			assert.Contains(t, errOut, "error:")
		})
	}
}

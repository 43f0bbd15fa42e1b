package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseg/segment"
)

const scenarioCSV = "a,b,weight\n0,1,0.1\n1,2,0.2\n2,3,10\n"

// run executes the root command on fs and returns what it wrote to stdout.
func run(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	out, _, err := runStreams(t, fs, args...)

	return out, err
}

// runStreams is run with stderr returned separately.
func runStreams(t *testing.T, fs afero.Fs, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(fs)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestSegmentCmd_CSV(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/edges.csv", []byte(scenarioCSV), 0o644))

	out, err := run(t, fs, "segment", "-i", "/in/edges.csv", "--scale", "1")
	require.NoError(t, err)
	assert.Equal(t, "0\n0\n0\n1\n", out)

	out, err = run(t, fs, "segment", "-i", "/in/edges.csv", "--min-size", "2")
	require.NoError(t, err)
	assert.Equal(t, "0\n0\n0\n0\n", out)
}

func TestSegmentCmd_LogsOnStderr(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/edges.csv", []byte(scenarioCSV), 0o644))

	stdout, stderr, err := runStreams(t, fs, "segment", "-i", "/in/edges.csv")
	require.NoError(t, err)
	assert.Equal(t, "0\n0\n0\n1\n", stdout)
	assert.Contains(t, stderr, "edge list loaded")
	assert.Contains(t, stderr, "segmentation done")

	stdout, stderr, err = runStreams(t, fs, "segment", "-i", "/in/edges.csv", "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "0\n0\n0\n1\n", stdout)
	assert.NotContains(t, stdout, "segmentation done")
	assert.Contains(t, stderr, "segmentation done")
}

func TestSegmentCmd_ExplicitVertices(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/edges.csv", []byte(scenarioCSV), 0o644))

	out, err := run(t, fs, "segment", "-i", "/edges.csv", "--vertices", "6")
	require.NoError(t, err)
	assert.Equal(t, "0\n0\n0\n1\n2\n3\n", out)
}

func TestSegmentCmd_JSONInOrderAndOutput(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := `{"vertices": 3, "edges": [[0, 1, 0.1], [1, 2, 1.9]]}`
	require.NoError(t, afero.WriteFile(fs, "/g.json", []byte(doc), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/g.order", []byte("1 0\n"), 0o644))

	_, err := run(t, fs, "segment", "-i", "/g.json", "--order", "/g.order", "--scale", "2",
		"--json", "-o", "/out/labels.json")
	require.NoError(t, err)

	body, err := afero.ReadFile(fs, "/out/labels.json")
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"labels":[0,0,0],"segments":1,"sizes":[3],"stats":{"edges":2,"merges":2,"rejected":0,"cleanup-merges":0}}`,
		string(body))
}

func TestSegmentCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "lvseg.toml")
	cfg := "[segment]\nscale = 1.0\nmin-size = 2\n[status]\nmetrics-file = \"/out/lvseg.prom\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/edges.csv", []byte(scenarioCSV), 0o644))

	out, err := run(t, fs, "segment", "-c", cfgPath, "-i", "/edges.csv")
	require.NoError(t, err)
	assert.Equal(t, "0\n0\n0\n0\n", out)

	// The flag wins over the file.
	out, err = run(t, fs, "segment", "-c", cfgPath, "-i", "/edges.csv", "--min-size", "0")
	require.NoError(t, err)
	assert.Equal(t, "0\n0\n0\n1\n", out)

	prom, err := afero.ReadFile(fs, "/out/lvseg.prom")
	require.NoError(t, err)
	assert.Contains(t, string(prom), "lvseg_segment_runs_total")
}

func TestSegmentCmd_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/edges.csv", []byte(scenarioCSV), 0o644))

	_, err := run(t, fs, "segment", "-i", "/missing.csv")
	assert.Error(t, err)

	_, err = run(t, fs, "segment", "-i", "/edges.csv", "--scale", "0")
	assert.Error(t, err)

	_, err = run(t, fs, "segment", "-i", "/edges.csv", "--vertices", "3")
	assert.ErrorIs(t, err, segment.ErrInvalidSize)

	require.NoError(t, afero.WriteFile(fs, "/bad.order", []byte("0 0 1"), 0o644))
	_, err = run(t, fs, "segment", "-i", "/edges.csv", "--order", "/bad.order")
	assert.ErrorIs(t, err, segment.ErrInvalidOrder)
}

func TestExecute_ReportsErrorOnce(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := execute(afero.NewMemMapFs(), []string{"segment", "-i", "/missing.csv"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.True(t, strings.HasPrefix(stderr.String(), "Error: "), stderr.String())
	assert.Equal(t, 1, strings.Count(stderr.String(), "Error:"), stderr.String())
	assert.Equal(t, 1, strings.Count(stderr.String(), "\n"), stderr.String())
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, afero.NewMemMapFs(), "version")
	require.NoError(t, err)
	assert.Equal(t, "lvseg dev\n", out)
}

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommand(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "results.csv")

	cmd := NewRunCommand()

	var buf bytes.Buffer

	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{
		"--sizes", "64,128",
		"--patterns", "random,duplicates",
		"--trials", "2",
		"--warmup", "0",
		"--seed", "7",
		"--csv", csvPath,
		"--no-color",
	})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Heap Sort Benchmark")
	assert.Contains(t, out, "random")
	assert.Contains(t, out, "duplicates")
	assert.Contains(t, out, "Results exported to "+csvPath)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)

	assert.Contains(t, string(data), "Size,Pattern,Trial")

	// Header plus 2 sizes x 2 patterns x 2 trials.
	lines := bytes.Count(data, []byte("\n"))
	assert.Equal(t, 9, lines)
}

func TestRunCommandQuiet(t *testing.T) {
	cmd := NewRunCommand()

	var buf bytes.Buffer

	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{
		"--sizes", "32",
		"--patterns", "sorted",
		"--trials", "1",
		"--warmup", "0",
		"--quiet",
	})

	require.NoError(t, cmd.Execute())
	assert.NotContains(t, buf.String(), "Heap Sort Benchmark")
}

func TestRunCommandHTMLExport(t *testing.T) {
	htmlPath := filepath.Join(t.TempDir(), "charts.html")

	cmd := NewRunCommand()

	var buf bytes.Buffer

	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{
		"--sizes", "32,64",
		"--patterns", "random",
		"--trials", "1",
		"--warmup", "0",
		"--html", htmlPath,
		"--quiet",
	})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Charts exported to "+htmlPath)

	data, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Mean Sort Time")
}

func TestRunCommandRejectsUnknownPattern(t *testing.T) {
	cmd := NewRunCommand()

	var buf bytes.Buffer

	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{
		"--sizes", "32",
		"--patterns", "zigzag",
		"--trials", "1",
		"--warmup", "0",
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zigzag")
}

func TestRunCommandConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bench.yaml")

	content := []byte(`benchmark:
  sizes: [16]
  patterns: [reverse]
  trials: 1
  warmup: 0
`)
	require.NoError(t, os.WriteFile(configPath, content, 0o600))

	cmd := NewRunCommand()

	var buf bytes.Buffer

	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--config", configPath, "--no-color"})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "reverse")
	assert.Contains(t, out, "1 cells, 1 trials total")
}

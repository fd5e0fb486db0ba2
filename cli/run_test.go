package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldwell/webfontgen/cli"
)

func TestRun_CopyOnlyWithCSS(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.ttf")
	require.NoError(t, os.WriteFile(input, []byte("fake ttf bytes"), 0o644))
	outDir := filepath.Join(dir, "out")

	var stdout, stderr bytes.Buffer
	code := cli.Run([]string{"-o", outDir, "-f", "ttf", "-p", "out/", "-c", "-", input}, &stdout, &stderr)

	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "@font-face {")
	assert.Contains(t, stdout.String(), "url(out/a.ttf) format('truetype')")
	assert.Empty(t, stderr.String())

	data, err := os.ReadFile(filepath.Join(outDir, "a.ttf"))
	require.NoError(t, err)
	assert.Equal(t, "fake ttf bytes", string(data))
}

func TestRun_InlineFormatAlreadyPresentSkipsProducingIt(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.ttf")
	require.NoError(t, os.WriteFile(input, []byte("fake ttf bytes"), 0o644))
	outDir := filepath.Join(dir, "out")

	var stdout, stderr bytes.Buffer
	code := cli.Run([]string{"-o", outDir, "-f", "ttf:inline", "-c", "-", input}, &stdout, &stderr)

	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "data:application/font-sfnt;base64,")

	_, err := os.Stat(filepath.Join(outDir, "a.ttf"))
	assert.True(t, os.IsNotExist(err), "an already-present inline format should not be produced into the output dir")
}

func TestRun_MissingInputsReturnsOne(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := cli.Run([]string{"-o", "out"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr.String())
}

func TestRun_UnreachableOutputReturnsOne(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.eot")
	require.NoError(t, os.WriteFile(input, []byte("fake eot bytes"), 0o644))

	var stdout, stderr bytes.Buffer
	code := cli.Run([]string{"-o", filepath.Join(dir, "out"), "-f", "woff2", input}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "unreachable")
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := cli.Run([]string{"-v"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), cli.Version)
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := cli.Run([]string{"-h"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Usage: webfontgen")
}

func TestRun_Dot(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.ttf")
	require.NoError(t, os.WriteFile(input, []byte("fake ttf bytes"), 0o644))

	var stdout, stderr bytes.Buffer
	code := cli.Run([]string{"-o", filepath.Join(dir, "out"), "--dot", input}, &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "digraph {")
	assert.Contains(t, stdout.String(), `label="fontforge"`)

	_, err := os.Stat(filepath.Join(dir, "out", "a.ttf"))
	assert.True(t, os.IsNotExist(err), "--dot must not convert anything")
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkship/inkship/pkg/wpi"
)

var inkshipEnv = []string{
	"INKSHIP_FORMATS", "INKSHIP_OUT_DIR", "INKSHIP_STATE_DIR", "INKSHIP_LOG_LEVEL",
	"INKSHIP_STROKE_COLOR", "INKSHIP_STROKE_WIDTH", "INKSHIP_PAGE_WIDTH", "INKSHIP_PAGE_HEIGHT",
	"INKSHIP_PNG_WIDTH", "INKSHIP_PNG_HEIGHT", "INKSHIP_GROUP_LAYERS", "INKSHIP_STRICT_STROKES",
	"INKSHIP_DEBOUNCE", "INKSHIP_RETRY_INTERVAL", "INKSHIP_RETRY_MAX",
}

// isolate points HOME at a temp dir and clears INKSHIP_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range inkshipEnv {
		t.Setenv(k, "")
	}
	return home
}

func writeCapture(t *testing.T, dir string, blocks ...byte) string {
	t.Helper()
	data := append(make([]byte, wpi.HeaderSize), blocks...)
	path := filepath.Join(dir, "note.wpi")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

var oneStroke = []byte{
	byte(wpi.DescStroke), 3, 1,
	byte(wpi.DescPenXY), 6, 0, 0, 0, 0,
	byte(wpi.DescStroke), 3, 0,
}

func TestRun_Converts(t *testing.T) {
	dir := isolate(t)
	in := writeCapture(t, dir, oneStroke...)

	var stderr bytes.Buffer
	require.Equal(t, 0, run([]string{in}, &stderr), stderr.String())
	require.FileExists(t, in+".svg")
}

func TestRun_FatalDecodeExitsNonZero(t *testing.T) {
	dir := isolate(t)
	in := writeCapture(t, dir, byte(wpi.DescStroke), 3, 1, 66, 3, 0)

	var stderr bytes.Buffer
	require.Equal(t, 1, run([]string{in}, &stderr))
	require.Contains(t, stderr.String(), "unknown block descriptor")
	require.NoFileExists(t, in+".svg")
}

func TestRun_MissingArgs(t *testing.T) {
	isolate(t)
	var stderr bytes.Buffer
	require.Equal(t, 1, run([]string{}, &stderr))
}

func TestRun_ConfigPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		flags  []string
		expect string
	}{
		{name: "file", expect: ".json"},
		{name: "env over file", env: map[string]string{"INKSHIP_FORMATS": "png"}, expect: ".png"},
		{
			name:   "flag over env",
			env:    map[string]string{"INKSHIP_FORMATS": "png"},
			flags:  []string{"--format", "svg"},
			expect: ".svg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			in := writeCapture(t, dir, oneStroke...)
			out := filepath.Join(dir, "out")
			cfgPath := filepath.Join(dir, "config.toml")
			toml := "formats = [\"json\"]\nout_dir = \"" + filepath.ToSlash(out) + "\"\n"
			require.NoError(t, os.WriteFile(cfgPath, []byte(toml), 0o644))
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			args := append([]string{"--config", cfgPath}, tt.flags...)
			var stderr bytes.Buffer
			require.Equal(t, 0, run(append(args, in), &stderr), stderr.String())

			entries, err := os.ReadDir(out)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			require.Equal(t, "note.wpi"+tt.expect, entries[0].Name())
		})
	}
}

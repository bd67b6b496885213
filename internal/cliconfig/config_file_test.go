package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false
	zero := 0

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				Formats:       []string{"svg", "png"},
				OutDir:        "/out",
				StrokeWidth:   2.5,
				PNGWidth:      1000,
				Debounce:      "2s",
				StrictStrokes: &trueVal,
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Formats:       []string{"svg", "png"},
				OutDir:        "/out",
				StrokeWidth:   2.5,
				PNGWidth:      1000,
				Debounce:      2 * time.Second,
				StrictStrokes: true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				OutDir:   "/config/out",
				LogLevel: "debug",
			},
			changed: map[string]bool{"out-dir": true},
			initial: Config{
				OutDir:   "/flag/out",
				LogLevel: "info",
			},
			expected: Config{
				OutDir:   "/flag/out", // unchanged because flag was set
				LogLevel: "debug",
			},
		},
		{
			name: "ignores empty and zero values",
			fileConfig: FileConfig{
				GroupLayers: &falseVal,
			},
			changed: map[string]bool{},
			initial: Config{
				Formats:     []string{"json"},
				StrokeWidth: 1,
				GroupLayers: true,
			},
			expected: Config{
				Formats:     []string{"json"},
				StrokeWidth: 1,
				GroupLayers: false,
			},
		},
		{
			name: "zero retry max overrides default",
			fileConfig: FileConfig{
				RetryMax: &zero,
			},
			changed: map[string]bool{},
			initial: Config{RetryMax: 5},
			expected: Config{
				RetryMax: 0,
			},
		},
		{
			name: "absent retry max keeps default",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    Config{RetryMax: 5},
			expected: Config{
				RetryMax: 5,
			},
		},
		{
			name: "returns error for invalid duration",
			fileConfig: FileConfig{
				RetryInterval: "soon",
			},
			changed: map[string]bool{},
			initial: Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyFileConfig() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("ApplyFileConfig() unexpected error: %v", err)
				return
			}

			if strings.Join(cfg.Formats, ",") != strings.Join(tt.expected.Formats, ",") {
				t.Errorf("Formats = %v, want %v", cfg.Formats, tt.expected.Formats)
			}
			if cfg.OutDir != tt.expected.OutDir {
				t.Errorf("OutDir = %v, want %v", cfg.OutDir, tt.expected.OutDir)
			}
			if cfg.LogLevel != tt.expected.LogLevel {
				t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, tt.expected.LogLevel)
			}
			if cfg.StrokeWidth != tt.expected.StrokeWidth {
				t.Errorf("StrokeWidth = %v, want %v", cfg.StrokeWidth, tt.expected.StrokeWidth)
			}
			if cfg.PNGWidth != tt.expected.PNGWidth {
				t.Errorf("PNGWidth = %v, want %v", cfg.PNGWidth, tt.expected.PNGWidth)
			}
			if cfg.Debounce != tt.expected.Debounce {
				t.Errorf("Debounce = %v, want %v", cfg.Debounce, tt.expected.Debounce)
			}
			if cfg.RetryMax != tt.expected.RetryMax {
				t.Errorf("RetryMax = %v, want %v", cfg.RetryMax, tt.expected.RetryMax)
			}
			if cfg.StrictStrokes != tt.expected.StrictStrokes {
				t.Errorf("StrictStrokes = %v, want %v", cfg.StrictStrokes, tt.expected.StrictStrokes)
			}
			if cfg.GroupLayers != tt.expected.GroupLayers {
				t.Errorf("GroupLayers = %v, want %v", cfg.GroupLayers, tt.expected.GroupLayers)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.toml")

	tomlContent := `
formats = ["svg", "json"]
out_dir = "/tmp/out"
stroke_width = 1.5
png_width = 2000
debounce = "1s"
strict_strokes = true
retry_max = 0
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if len(fc.Formats) != 2 || fc.Formats[1] != "json" {
		t.Errorf("Formats = %v, want [svg json]", fc.Formats)
	}
	if fc.OutDir != "/tmp/out" {
		t.Errorf("OutDir = %v, want /tmp/out", fc.OutDir)
	}
	if fc.StrokeWidth != 1.5 {
		t.Errorf("StrokeWidth = %v, want 1.5", fc.StrokeWidth)
	}
	if fc.PNGWidth != 2000 {
		t.Errorf("PNGWidth = %v, want 2000", fc.PNGWidth)
	}
	if fc.Debounce != "1s" {
		t.Errorf("Debounce = %v, want 1s", fc.Debounce)
	}
	if fc.StrictStrokes == nil || *fc.StrictStrokes != true {
		t.Errorf("StrictStrokes = %v, want true", fc.StrictStrokes)
	}
	if fc.RetryMax == nil || *fc.RetryMax != 0 {
		t.Errorf("RetryMax = %v, want 0", fc.RetryMax)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.toml")

	invalidContent := `
out_dir = "/test"
this is not valid toml
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	_, err := LoadFileConfig(configPath)
	if err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if path != "" && !strings.Contains(path, ".inkship") {
		t.Errorf("DefaultConfigPath() = %v, should contain .inkship", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}

	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantDataFile string
		wantColor    string
		wantErr      bool
	}{
		{
			name:         "full config",
			content:      "data_file: /data/habits.json\ncolor: never\n",
			wantDataFile: "/data/habits.json",
			wantColor:    "never",
		},
		{
			name:      "empty file keeps defaults",
			content:   "",
			wantColor: "auto",
		},
		{
			name:         "only data_file",
			content:      "data_file: habits.json\n",
			wantDataFile: "habits.json",
			wantColor:    "auto",
		},
		{
			name:    "invalid yaml",
			content: "data_file: [unclosed\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, t.TempDir(), tt.content)

			cfg, err := LoadFile(path)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.DataFile != tt.wantDataFile {
				t.Errorf("DataFile = %q, want %q", cfg.DataFile, tt.wantDataFile)
			}
			if cfg.Color != tt.wantColor {
				t.Errorf("Color = %q, want %q", cfg.Color, tt.wantColor)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Color != "auto" {
		t.Errorf("Color = %q, want auto", cfg.Color)
	}
	if cfg.DataFile != "" {
		t.Errorf("DataFile = %q, want empty", cfg.DataFile)
	}
}

func TestLoad_UsesConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HABITS_CONFIG_HOME", dir)
	writeConfigFile(t, dir, "data_file: /tmp/h.json\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataFile != "/tmp/h.json" {
		t.Errorf("DataFile = %q, want /tmp/h.json", cfg.DataFile)
	}
}

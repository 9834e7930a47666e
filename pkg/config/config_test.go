package config

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Files) != 1 || cfg.Files[0] != "-" {
		t.Errorf("Files = %v, want [-]", cfg.Files)
	}
	if cfg.NumberLines || cfg.NumberNonblankLines {
		t.Error("numbering should be off by default")
	}

	// Callers must not be able to change the shared default.
	cfg.Files[0] = "changed"
	if DefaultFiles[0] != "-" {
		t.Error("DefaultConfig shares its Files slice with DefaultFiles")
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		files     []string
		number    bool
		nonblank  bool
		wantFiles []string
		wantErr   string
	}{
		{name: "defaults to stdin", wantFiles: []string{"-"}},
		{name: "keeps order", files: []string{"b", "-", "a"}, number: true, wantFiles: []string{"b", "-", "a"}},
		{name: "nonblank", files: []string{"x"}, nonblank: true, wantFiles: []string{"x"}},
		{name: "both flags", files: []string{"x"}, number: true, nonblank: true, wantErr: "mutually exclusive"},
		{name: "empty token", files: []string{"a", ""}, wantErr: "files[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New(tt.files, tt.number, tt.nonblank)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("New() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if strings.Join(cfg.Files, ",") != strings.Join(tt.wantFiles, ",") {
				t.Errorf("Files = %v, want %v", cfg.Files, tt.wantFiles)
			}
			if cfg.NumberLines != tt.number || cfg.NumberNonblankLines != tt.nonblank {
				t.Errorf("flags = %v/%v, want %v/%v", cfg.NumberLines, cfg.NumberNonblankLines, tt.number, tt.nonblank)
			}
		})
	}
}

func TestValidate_NoFiles(t *testing.T) {
	err := Validate(&Config{})
	if err == nil || !strings.Contains(err.Error(), "at least one source") {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestConfig_YAML(t *testing.T) {
	data := `files: [a.txt, "-"]
number_nonblank_lines: true
`
	var cfg Config
	if err := yaml.Unmarshal([]byte(data), &cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if err := Validate(&cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(cfg.Files) != 2 || cfg.Files[1] != "-" {
		t.Errorf("Files = %v", cfg.Files)
	}
	if cfg.NumberLines || !cfg.NumberNonblankLines {
		t.Errorf("flags = %v/%v, want false/true", cfg.NumberLines, cfg.NumberNonblankLines)
	}
}

package config

import (
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/vango-dev/htmlnode/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Log.Format != DefaultLogFormat {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, DefaultLogFormat)
	}
	if cfg.Metrics.Namespace != DefaultMetricsNamespace {
		t.Errorf("Metrics.Namespace = %q, want %q", cfg.Metrics.Namespace, DefaultMetricsNamespace)
	}
	if cfg.Output != "" {
		t.Errorf("Output = %q, want stdout", cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	// Test loading non-existent config
	_, err := Load(tmpDir)
	var ne *errors.NodeError
	if !stderrors.As(err, &ne) || ne.Code != errors.CodeConfigNotFound {
		t.Fatalf("expected %s for missing config, got %v", errors.CodeConfigNotFound, err)
	}

	configPath := filepath.Join(tmpDir, ConfigFileName)
	configJSON := `{
  "output": "out/index.html",
  "trailingNewline": true,
  "log": {
    "level": "debug"
  },
  "metrics": {
    "file": "/var/lib/metrics/htmlnode.prom"
  }
}
`
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := &Config{
		Output:          "out/index.html",
		TrailingNewline: true,
		Log:             LogConfig{Level: "debug", Format: DefaultLogFormat},
		Metrics:         MetricsConfig{File: "/var/lib/metrics/htmlnode.prom", Namespace: DefaultMetricsNamespace},
	}
	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	if cfg.Path() != configPath {
		t.Errorf("Path() = %q, want %q", cfg.Path(), configPath)
	}
	if cfg.OutputPath() != filepath.Join(tmpDir, "out", "index.html") {
		t.Errorf("OutputPath() = %q", cfg.OutputPath())
	}
	if cfg.MetricsPath() != "/var/lib/metrics/htmlnode.prom" {
		t.Errorf("MetricsPath() = %q", cfg.MetricsPath())
	}
	level, err := cfg.SlogLevel()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, %v; want debug", level, err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(`{"output": `), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(tmpDir)
	var ne *errors.NodeError
	if !stderrors.As(err, &ne) || ne.Code != errors.CodeConfigRead {
		t.Fatalf("expected %s, got %v", errors.CodeConfigRead, err)
	}
	if !strings.Contains(ne.Suggestion, "valid JSON") {
		t.Errorf("Suggestion = %q", ne.Suggestion)
	}
}

func TestLoadJSONErrorLocation(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine int
	}{
		{
			name:     "syntax",
			content:  "{\n  \"output\": \"dist/index.html\",\n  \"log\": {\"level\" \"debug\"}\n}\n",
			wantLine: 3,
		},
		{
			name:     "type",
			content:  "{\n  \"trailingNewline\": \"yes\"\n}\n",
			wantLine: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFileName)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := LoadFile(path)
			var ne *errors.NodeError
			if !stderrors.As(err, &ne) || ne.Code != errors.CodeConfigRead {
				t.Fatalf("expected %s, got %v", errors.CodeConfigRead, err)
			}
			if ne.Location == nil {
				t.Fatal("expected a location")
			}
			if ne.Location.File != path || ne.Location.Line != tt.wantLine {
				t.Errorf("Location = %s, want %s:%d", ne.Location, path, tt.wantLine)
			}
			if len(ne.Context) == 0 {
				t.Error("expected source context")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "warn level", mutate: func(c *Config) { c.Log.Level = "warn" }},
		{name: "json format", mutate: func(c *Config) { c.Log.Format = LogFormatJSON }},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: true},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: true},
		{name: "bad namespace", mutate: func(c *Config) { c.Metrics.Namespace = "html-node" }, wantErr: true},
		{name: "digit namespace", mutate: func(c *Config) { c.Metrics.Namespace = "1x" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !stderrors.Is(err, errors.New(errors.CodeConfigInvalid)) {
				t.Errorf("expected %s, got %v", errors.CodeConfigInvalid, err)
			}
		})
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(`{"log": {"format": "xml"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tmpDir); err == nil {
		t.Error("expected validation error")
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	if err := cfg.Save(); err == nil {
		t.Error("Save without a path should fail")
	}

	cfg.Output = "index.html"
	cfg.Metrics.File = "m.prom"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "}\n") {
		t.Error("saved config should end with a newline")
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	loaded.TrailingNewline = true
	if err := loaded.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	again, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !again.TrailingNewline {
		t.Error("Save should persist changes to the loaded path")
	}
}

func TestResolvePaths(t *testing.T) {
	cfg := New()
	if cfg.Dir() != "." {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), ".")
	}
	if cfg.OutputPath() != "" {
		t.Errorf("OutputPath() = %q, want stdout", cfg.OutputPath())
	}

	cfg.Output = "-"
	if cfg.OutputPath() != "-" {
		t.Errorf("OutputPath() = %q, want %q", cfg.OutputPath(), "-")
	}

	cfg.Output = "page.html"
	if cfg.OutputPath() != "page.html" {
		t.Errorf("OutputPath() = %q, want %q", cfg.OutputPath(), "page.html")
	}
}

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	if _, err := FindProjectRoot(nested); err == nil {
		t.Error("expected error without a config file")
	}

	if err := New().SaveTo(filepath.Join(tmpDir, ConfigFileName)); err != nil {
		t.Fatal(err)
	}
	if !Exists(tmpDir) {
		t.Fatal("Exists should report the saved config")
	}

	root, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}
	want, _ := filepath.Abs(tmpDir)
	if root != want {
		t.Errorf("root = %q, want %q", root, want)
	}
}

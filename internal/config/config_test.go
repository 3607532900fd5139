package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Site.Title != "Doc Extract" {
		t.Errorf("expected default title %q, got %q", "Doc Extract", cfg.Site.Title)
	}
	if cfg.Site.Package != "doc-extract" {
		t.Errorf("expected default package %q, got %q", "doc-extract", cfg.Site.Package)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir %q, got %q", "public", cfg.OutputDir)
	}
	if cfg.Demo.MaxUploadMB != 10 {
		t.Errorf("expected default max_upload_mb 10, got %d", cfg.Demo.MaxUploadMB)
	}
	if len(cfg.Demo.Accept) != 6 {
		t.Errorf("expected 6 accept patterns, got %d", len(cfg.Demo.Accept))
	}
}

func TestMaxUploadBytes(t *testing.T) {
	d := DemoConfig{MaxUploadMB: 2}
	if got := d.MaxUploadBytes(); got != 2<<20 {
		t.Errorf("MaxUploadBytes() = %d, want %d", got, 2<<20)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.docextract.yml")

	original := DefaultConfig()
	original.Site.Title = "Doc Extract Pro"
	original.Site.Version = "v2.0.0"
	original.Links.Repo = "https://example.com/repo"
	original.Demo.Endpoint = "http://localhost:4000/api/parse"
	original.Demo.Accept = []string{"*.pdf", "*.txt"}
	original.Server.Port = 8081

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Site.Title != original.Site.Title {
		t.Errorf("site.title: got %q, want %q", loaded.Site.Title, original.Site.Title)
	}
	if loaded.Site.Version != original.Site.Version {
		t.Errorf("site.version: got %q, want %q", loaded.Site.Version, original.Site.Version)
	}
	if loaded.Links.Repo != original.Links.Repo {
		t.Errorf("links.repo: got %q, want %q", loaded.Links.Repo, original.Links.Repo)
	}
	if loaded.Demo.Endpoint != original.Demo.Endpoint {
		t.Errorf("demo.endpoint: got %q, want %q", loaded.Demo.Endpoint, original.Demo.Endpoint)
	}
	if loaded.Server.Port != original.Server.Port {
		t.Errorf("server.port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if len(loaded.Demo.Accept) != len(original.Demo.Accept) {
		t.Fatalf("demo.accept length: got %d, want %d", len(loaded.Demo.Accept), len(original.Demo.Accept))
	}
	for i, v := range loaded.Demo.Accept {
		if v != original.Demo.Accept[i] {
			t.Errorf("demo.accept[%d]: got %q, want %q", i, v, original.Demo.Accept[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Site.Title != "Doc Extract" {
		t.Errorf("expected default title, got %q", cfg.Site.Title)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("DOCEXTRACT_OUTPUT_DIR", "dist")
	t.Setenv("DOCEXTRACT_DEMO__ENDPOINT", "https://parse.example.com/api/parse")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "dist" {
		t.Errorf("env override failed: got %q, want %q", loaded.OutputDir, "dist")
	}
	if loaded.Demo.Endpoint != "https://parse.example.com/api/parse" {
		t.Errorf("nested env override failed: got %q", loaded.Demo.Endpoint)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("site: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"DOCEXTRACT_OUTPUT_DIR", "output_dir"},
		{"DOCEXTRACT_DEMO__ENDPOINT", "demo.endpoint"},
		{"DOCEXTRACT_DEMO__MAX_UPLOAD_MB", "demo.max_upload_mb"},
		{"DOCEXTRACT_SERVER__PORT", "server.port"},
	}
	for _, tt := range tests {
		if got := envKey(tt.input); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty title", func(c *Config) { c.Site.Title = "" }},
		{"empty package", func(c *Config) { c.Site.Package = "" }},
		{"relative repo link", func(c *Config) { c.Links.Repo = "/repo" }},
		{"ftp readme link", func(c *Config) { c.Links.Readme = "ftp://example.com/readme" }},
		{"endpoint without host", func(c *Config) { c.Demo.Endpoint = "http:///api/parse" }},
		{"zero upload limit", func(c *Config) { c.Demo.MaxUploadMB = 0 }},
		{"negative timeout", func(c *Config) { c.Demo.TimeoutSeconds = -1 }},
		{"no accept patterns", func(c *Config) { c.Demo.Accept = nil }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"3000", false},
		{" 8080 ", false},
		{"0", true},
		{"65536", true},
		{"abc", true},
	}
	for _, tt := range tests {
		err := validatePort(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("validatePort(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

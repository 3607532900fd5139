package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "DOCEXTRACT_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DOCEXTRACT_*). Nested keys use a double
// underscore: DOCEXTRACT_DEMO__ENDPOINT -> demo.endpoint.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// Slices decode into the existing backing array, so drop the default
	// list when the file or env supplies its own.
	if k.Exists("demo.accept") {
		cfg.Demo.Accept = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps DOCEXTRACT_DEMO__MAX_UPLOAD_MB to demo.max_upload_mb.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Site.Title == "" {
		return fmt.Errorf("site.title is required")
	}
	if c.Site.Package == "" {
		return fmt.Errorf("site.package is required")
	}

	links := map[string]string{
		"links.repo":     c.Links.Repo,
		"links.readme":   c.Links.Readme,
		"links.github":   c.Links.GitHub,
		"links.linkedin": c.Links.LinkedIn,
	}
	for key, v := range links {
		if v == "" {
			continue
		}
		if err := validateURL(v); err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
	}

	if c.Demo.Endpoint != "" {
		if err := validateURL(c.Demo.Endpoint); err != nil {
			return fmt.Errorf("invalid demo.endpoint: %w", err)
		}
	}
	if c.Demo.MaxUploadMB <= 0 {
		return fmt.Errorf("demo.max_upload_mb must be positive")
	}
	if c.Demo.TimeoutSeconds < 0 {
		return fmt.Errorf("demo.timeout_seconds must be non-negative")
	}
	if len(c.Demo.Accept) == 0 {
		return fmt.Errorf("demo.accept must list at least one pattern")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q must be an http(s) URL", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	return nil
}

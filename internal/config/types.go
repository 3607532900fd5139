package config

// Config is the top-level site configuration, corresponding to .docextract.yml.
type Config struct {
	Site      SiteConfig   `yaml:"site" koanf:"site"`
	Links     LinksConfig  `yaml:"links" koanf:"links"`
	Demo      DemoConfig   `yaml:"demo" koanf:"demo"`
	Server    ServerConfig `yaml:"server" koanf:"server"`
	OutputDir string       `yaml:"output_dir" koanf:"output_dir"`
}

// SiteConfig holds the branding shown in the header, hero and footer.
type SiteConfig struct {
	Title   string `yaml:"title" koanf:"title"`
	Version string `yaml:"version" koanf:"version"`
	Package string `yaml:"package" koanf:"package"`
}

// LinksConfig holds the outbound links. All of them open in a new tab.
type LinksConfig struct {
	Repo     string `yaml:"repo" koanf:"repo"`
	Readme   string `yaml:"readme" koanf:"readme"`
	GitHub   string `yaml:"github" koanf:"github"`
	LinkedIn string `yaml:"linkedin" koanf:"linkedin"`
}

// DemoConfig configures the live demo panel and the upstream parse endpoint
// that uploads are forwarded to.
type DemoConfig struct {
	Endpoint       string   `yaml:"endpoint" koanf:"endpoint"`
	MaxUploadMB    int      `yaml:"max_upload_mb" koanf:"max_upload_mb"`
	Accept         []string `yaml:"accept" koanf:"accept"`
	TimeoutSeconds int      `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

// ServerConfig holds HTTP server settings for `serve`.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

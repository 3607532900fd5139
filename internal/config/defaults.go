package config

// DefaultAccept lists the upload patterns the demo panel accepts.
var DefaultAccept = []string{
	"*.pdf",
	"*.docx",
	"*.doc",
	"*.ppt",
	"*.pptx",
	"*.txt",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:   "Doc Extract",
			Version: "v1.0.4",
			Package: "doc-extract",
		},
		Links: LinksConfig{
			Repo:     "https://github.com/HaiderNakara/doc-extract",
			Readme:   "https://github.com/HaiderNakara/doc-extract#readme",
			GitHub:   "https://github.com/HaiderNakara",
			LinkedIn: "https://www.linkedin.com/in/haidernakara",
		},
		Demo: DemoConfig{
			Endpoint:       "",
			MaxUploadMB:    10,
			Accept:         append([]string(nil), DefaultAccept...),
			TimeoutSeconds: 60,
		},
		Server: ServerConfig{
			Port: 3000,
		},
		OutputDir: "public",
	}
}

// MaxUploadBytes returns the demo upload limit in bytes.
func (d DemoConfig) MaxUploadBytes() int64 {
	return int64(d.MaxUploadMB) << 20
}

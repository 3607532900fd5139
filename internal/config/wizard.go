package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// DefaultPath is the config file written by the wizard.
const DefaultPath = ".docextract.yml"

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to docextract-site! Let's configure your landing page.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Branding.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Site.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.Site.Title = strings.TrimSpace(title)

	versionPrompt := promptui.Prompt{
		Label:   "Latest release shown in the hero badge",
		Default: cfg.Site.Version,
	}
	version, err := versionPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site version: %w", err)
	}
	cfg.Site.Version = strings.TrimSpace(version)

	// 2. Repository link.
	repoPrompt := promptui.Prompt{
		Label:    "Source repository URL",
		Default:  cfg.Links.Repo,
		Validate: validateURL,
	}
	repo, err := repoPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("repository url: %w", err)
	}
	cfg.Links.Repo = repo
	cfg.Links.Readme = strings.TrimSuffix(repo, "/") + "#readme"

	// 3. Demo endpoint.
	demoPrompt := promptui.Select{
		Label: "Enable the live demo panel?",
		Items: []string{
			"yes: forward uploads to a parse endpoint",
			"no:  leave the demo without an endpoint",
		},
	}
	demoIdx, _, err := demoPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("demo selection: %w", err)
	}
	if demoIdx == 0 {
		endpointPrompt := promptui.Prompt{
			Label:    "Parse endpoint URL",
			Default:  "http://localhost:4000/api/parse",
			Validate: validateURL,
		}
		endpoint, err := endpointPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("demo endpoint: %w", err)
		}
		cfg.Demo.Endpoint = endpoint
	}

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port for `docextract-site serve`",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n <= 0 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

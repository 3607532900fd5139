package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HaiderNakara/doc-extract-web/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a site configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the site title, links and demo endpoint, and writes a .docextract.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		fmt.Printf("Run `docextract-site serve` to preview %s.\n", cfg.Site.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

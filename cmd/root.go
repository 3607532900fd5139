package cmd

import (
	"github.com/spf13/cobra"

	"github.com/HaiderNakara/doc-extract-web/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docextract-site",
	Short: "Build and serve the Doc Extract documentation site",
	Long: `docextract-site renders the landing and documentation site for the
doc-extract library. It writes a self-contained static site, or serves
it locally with a live demo that forwards uploads to a parse endpoint.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HaiderNakara/doc-extract-web/internal/progress"
	"github.com/HaiderNakara/doc-extract-web/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the static site",
	Long:  `Renders the landing page, the live demo page and their assets into the output directory.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	st, err := site.New(cfg)
	if err != nil {
		return err
	}

	generator := site.NewGenerator(st, outputDir, progress.NewReporter())
	written, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d files)\n", outputDir, len(written))
	if cfg.Demo.Endpoint == "" {
		fmt.Println("Live demo has no parse endpoint; set demo.endpoint to enable uploads.")
	}
	return nil
}

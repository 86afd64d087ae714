package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/coleweb/internal/docs"
	"github.com/ziadkadry99/coleweb/internal/progress"
	"github.com/ziadkadry99/coleweb/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the website as static HTML",
	Long:  `Renders every page with the default theme and writes a self-contained static site. Platform detection and view state run in the browser.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "output directory (defaults to export_dir from config)")
	exportCmd.Flags().String("progress", "auto", "progress display: auto, bar, plain or none")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	progressFlag, _ := cmd.Flags().GetString("progress")
	style, err := progress.ParseStyle(progressFlag)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.ExportDir
	}

	catalog, err := docs.Load()
	if err != nil {
		return fmt.Errorf("loading documentation: %w", err)
	}
	s, err := site.New(site.Options{
		SiteName:   cfg.SiteName,
		Catalog:    catalog,
		PopupDelay: cfg.PopupDelay,
	})
	if err != nil {
		return err
	}

	generator := site.NewSiteGenerator(s, outputDir)
	generator.Reporter = progress.New(style, os.Stderr)
	pageCount, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Static site exported: %s (%d pages)\n", outputDir, pageCount)
	return nil
}

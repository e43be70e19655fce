package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/book-reader/internal/progress"
	"github.com/ziadkadry99/book-reader/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the book as a static single-page site",
	Long:  `Renders the book, its chapter sidebar and the reader script into a self-contained static site, copying any configured assets alongside.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	buildCmd.Flags().String("base-path", "", "override the URL path the site is hosted under")
	buildCmd.Flags().Bool("serve", false, "start a local HTTP server after building")
	buildCmd.Flags().Int("port", 0, "port for the local preview server (defaults to port from config)")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, b, err := loadBook()
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	if base, _ := cmd.Flags().GetString("base-path"); base != "" {
		cfg.BasePath = base
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	generator := site.NewGenerator(b, cfg.OutputDir, siteOptions(cfg))
	generator.Reporter = progress.NewReporter()
	generator.Log = component("site")
	if cfg.BookPath != "" {
		generator.AssetRoot = filepath.Dir(cfg.BookPath)
		generator.AssetPatterns = cfg.Assets
	}

	fileCount, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Static site built: %s (%d files, %d chapters)\n", cfg.OutputDir, fileCount, len(b.Chapters))

	serve, _ := cmd.Flags().GetBool("serve")
	if !serve {
		return nil
	}

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Port
	}
	openBrowser, _ := cmd.Flags().GetBool("open")

	fmt.Printf("Serving at http://localhost:%d%s, press Ctrl+C to stop\n", port, cfg.BasePath)
	if err := site.Serve(cfg.OutputDir, port, cfg.BasePath, openBrowser, component("preview")); err != nil {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}

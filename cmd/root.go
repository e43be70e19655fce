package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	log     = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "bookreader",
	Short: "Single-page markdown book reader with a live chapter sidebar",
	Long: `Book Reader turns one markdown book into a single-page reader: a
two-level chapter table of contents in a sidebar, the rendered book beside
it, and an active-chapter highlight that follows the reader's position.
It builds static sites, serves a live reader, and exposes the table of
contents to AI agents via MCP.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".bookreader.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setupLogging sends logs to stderr so stdout stays free for command output
// and the MCP protocol.
func setupLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

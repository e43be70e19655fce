package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/book-reader/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize bookreader configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the book, its theme and the build output, and writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/book-reader/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the book's chapters and sections to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, b, err := loadBook()
		if err != nil {
			return err
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "bookreader MCP server started on stdio (book=%q, chapters=%d)\n", b.Title, len(b.Chapters))

		srv := mcpserver.NewServer(b)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

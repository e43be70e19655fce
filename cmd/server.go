package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/book-reader/internal/server"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the live reader server",
	Long:  `Serves the reader page, a JSON table of contents API, and a websocket that tracks each reader's active chapter.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, b, err := loadBook()
		if err != nil {
			return err
		}

		port := serverPort
		if port == 0 {
			port = cfg.Port
		}

		srv, err := server.New(server.Config{
			Port:     port,
			AllowAll: true,
		}, b, siteOptions(cfg), component("server"))
		if err != nil {
			return err
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			log.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Warn("server shutdown")
			}
		}()

		fmt.Fprintf(os.Stderr, "bookreader server %s starting on port %d\n", Version, port)
		fmt.Fprintf(os.Stderr, "  Book: %s\n", b.Title)
		fmt.Fprintf(os.Stderr, "  Chapters: %d\n", len(b.Chapters))

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "Port to listen on (defaults to port from config)")
	rootCmd.AddCommand(serverCmd)
}

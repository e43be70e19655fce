package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/book-reader/internal/book"
	"github.com/ziadkadry99/book-reader/internal/config"
	"github.com/ziadkadry99/book-reader/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `bookreader init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadBook loads the config and the book it points to.
func loadBook() (*config.Config, *book.Book, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	b, err := cfg.LoadBook()
	if err != nil {
		return nil, nil, fmt.Errorf("loading book: %w", err)
	}
	source := cfg.BookPath
	if source == "" {
		source = "bundled"
	}
	log.WithFields(logrus.Fields{
		"book":     source,
		"headings": len(b.Headings),
		"chapters": len(b.Chapters),
	}).Debug("book loaded")
	return cfg, b, nil
}

// siteOptions maps the reader settings onto renderer options.
func siteOptions(cfg *config.Config) site.Options {
	return site.Options{
		BasePath:           cfg.BasePath,
		EditURL:            cfg.EditURL,
		Theme:              string(cfg.Reader.Theme),
		HighlightStyle:     cfg.Reader.HighlightStyle,
		RootMargin:         cfg.Reader.RootMargin,
		ScrollTopThreshold: cfg.Reader.ScrollTopThreshold,
	}
}

// component returns a log entry tagged with the subsystem name.
func component(name string) *logrus.Entry {
	return log.WithField("component", name)
}

package config

import "github.com/ziadkadry99/book-reader/internal/book"

// DefaultAssets are glob patterns, relative to the book's directory, copied
// into a built site by default.
var DefaultAssets = []string{
	"images/**",
	"*.png",
	"*.jpg",
	"*.svg",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: "dist",
		BasePath:  "/",
		Port:      8080,
		Assets:    DefaultAssets,
		Chapters: Chapters{
			Prefix:          book.DefaultChapterPrefix,
			TakeawaysMarker: book.DefaultTakeawaysMarker,
		},
		Reader: Reader{
			Theme:              ThemeSystem,
			HighlightStyle:     "github",
			RootMargin:         "-20% 0px -70% 0px",
			ScrollTopThreshold: 400,
		},
	}
}

// Builder returns the chapter builder described by the config.
func (c *Config) Builder() book.Builder {
	return book.Builder{
		ChapterPrefix:   c.Chapters.Prefix,
		TakeawaysMarker: c.Chapters.TakeawaysMarker,
	}
}

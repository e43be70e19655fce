package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/book-reader/assets"
	"github.com/ziadkadry99/book-reader/internal/book"
)

// EnvPrefix is the prefix for environment overrides. A double underscore
// separates nested keys: BOOKREADER_READER__THEME -> reader.theme.
const EnvPrefix = "BOOKREADER_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (BOOKREADER_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validThemes is the set of recognized theme values.
var validThemes = map[Theme]bool{
	ThemeLight:  true,
	ThemeDark:   true,
	ThemeSystem: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if !strings.HasPrefix(c.BasePath, "/") || !strings.HasSuffix(c.BasePath, "/") {
		return fmt.Errorf("invalid base_path %q: must start and end with /", c.BasePath)
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if c.Chapters.Prefix == "" {
		return fmt.Errorf("chapters.prefix is required")
	}

	if c.Reader.Theme != "" && !validThemes[c.Reader.Theme] {
		return fmt.Errorf("invalid reader.theme %q: must be one of light, dark, system", c.Reader.Theme)
	}

	if c.Reader.RootMargin == "" {
		return fmt.Errorf("reader.root_margin is required")
	}

	if c.Reader.ScrollTopThreshold < 0 {
		return fmt.Errorf("reader.scroll_top_threshold must be non-negative")
	}

	return nil
}

// LoadBook loads the configured book file, or the bundled book when no
// book_path is set.
func (c *Config) LoadBook() (*book.Book, error) {
	opts := []book.Option{
		book.WithTitle(c.Title),
		book.WithAuthor(c.Author),
		book.WithBuilder(c.Builder()),
	}
	if c.BookPath == "" {
		return book.Load(assets.Book, opts...), nil
	}
	return book.LoadFile(c.BookPath, opts...)
}

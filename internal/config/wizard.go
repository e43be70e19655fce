package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectBook looks for a markdown file in the current directory that is
// likely the book source.
func detectBook() string {
	for _, pattern := range []string{"book.md", "BOOK.md", "*.md"} {
		matches, _ := filepath.Glob(pattern)
		for _, m := range matches {
			if !strings.EqualFold(m, "README.md") {
				return m
			}
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to bookreader! Let's configure your book.")
	fmt.Println()

	cfg := DefaultConfig()

	bookPrompt := promptui.Prompt{
		Label:   "Markdown book file (leave blank for the bundled book)",
		Default: detectBook(),
	}
	bookPath, err := bookPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("book path: %w", err)
	}
	cfg.BookPath = strings.TrimSpace(bookPath)

	titlePrompt := promptui.Prompt{
		Label: "Title (leave blank to use the first # heading)",
	}
	if cfg.Title, err = titlePrompt.Run(); err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	authorPrompt := promptui.Prompt{
		Label: "Author",
	}
	if cfg.Author, err = authorPrompt.Run(); err != nil {
		return nil, fmt.Errorf("author: %w", err)
	}

	themePrompt := promptui.Select{
		Label: "Default theme",
		Items: []string{string(ThemeSystem), string(ThemeLight), string(ThemeDark)},
	}
	_, theme, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.Reader.Theme = Theme(theme)

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	basePrompt := promptui.Prompt{
		Label:   "Base path the site is served from",
		Default: cfg.BasePath,
		Validate: func(s string) error {
			if !strings.HasPrefix(s, "/") || !strings.HasSuffix(s, "/") {
				return fmt.Errorf("must start and end with /")
			}
			return nil
		},
	}
	if cfg.BasePath, err = basePrompt.Run(); err != nil {
		return nil, fmt.Errorf("base path: %w", err)
	}

	assetsPrompt := promptui.Prompt{
		Label:   "Static asset patterns (comma-separated globs)",
		Default: strings.Join(DefaultAssets, ","),
	}
	assetsStr, err := assetsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("asset patterns: %w", err)
	}
	cfg.Assets = splitAndTrim(assetsStr)

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}

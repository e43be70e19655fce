package config

// Theme selects the reader's initial color scheme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Config is the top-level bookreader configuration, corresponding to .bookreader.yml.
type Config struct {
	Title     string   `yaml:"title" koanf:"title"`
	Author    string   `yaml:"author" koanf:"author"`
	BookPath  string   `yaml:"book_path" koanf:"book_path"`
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	BasePath  string   `yaml:"base_path" koanf:"base_path"`
	Port      int      `yaml:"port" koanf:"port"`
	EditURL   string   `yaml:"edit_url" koanf:"edit_url"`
	Assets    []string `yaml:"assets" koanf:"assets"`
	Chapters  Chapters `yaml:"chapters" koanf:"chapters"`
	Reader    Reader   `yaml:"reader" koanf:"reader"`
}

// Chapters holds the markers used to fold headings into chapters.
type Chapters struct {
	Prefix          string `yaml:"prefix" koanf:"prefix"`
	TakeawaysMarker string `yaml:"takeaways_marker" koanf:"takeaways_marker"`
}

// Reader holds settings for the rendered page.
type Reader struct {
	Theme              Theme  `yaml:"theme" koanf:"theme"`
	HighlightStyle     string `yaml:"highlight_style" koanf:"highlight_style"`
	RootMargin         string `yaml:"root_margin" koanf:"root_margin"`
	ScrollTopThreshold int    `yaml:"scroll_top_threshold" koanf:"scroll_top_threshold"`
}

package domain

// Config represents the svgstore configuration loaded from svgstore.yaml.
type Config struct {
	Paths      PathsConfig
	PublicPath string

	// Manifest is the output-relative path of the icon manifest. Empty disables it.
	Manifest string

	Rewrite RewriteConfig
	Sprites []SpriteConfig
}

type PathsConfig struct {
	OutputDir  string
	ReportsDir string
}

// RewriteConfig selects the build outputs inspected during reference rewriting.
type RewriteConfig struct {
	Include []string
}

// SpriteConfig describes one sprite: where its icons come from and where it goes.
type SpriteConfig struct {
	// Directory is the root scanned for icons.
	Directory string
	// Pattern is a doublestar glob evaluated under Directory.
	Pattern string
	// Name is the logical output path; it may embed [hash]-style tokens.
	Name string

	Prefix string
	Suffix string

	Optimizer OptimizerOptions

	// Emit controls whether the sprite file is materialized into the output.
	Emit bool
}

// Naming returns the symbol naming options of the sprite.
func (c SpriteConfig) Naming() Naming {
	return Naming{Prefix: c.Prefix, Suffix: c.Suffix}
}

// Naming holds the prefix/suffix applied to symbol names.
type Naming struct {
	Prefix string
	Suffix string
}

// OptimizerOptions is passed through opaquely to the markup normalizer.
type OptimizerOptions struct {
	// Command, when set, pipes icons through an external program (argv form).
	Command []string
	// Plugins toggles named transforms; unknown names are ignored by the built-in optimizer.
	Plugins map[string]bool
}

// Enabled reports whether the named transform is switched on.
func (o OptimizerOptions) Enabled(name string) bool {
	if o.Plugins == nil {
		return false
	}
	return o.Plugins[name]
}

const (
	DefaultSpriteName    = "images/sprite.svg"
	DefaultIconPattern   = "**/*.svg"
	DefaultSymbolPrefix  = "icon-"
	DefaultOutputDir     = "dist"
	DefaultReportsDir    = ".svgstore/reports"
	DefaultIconDirectory = "icons"
)

// DefaultConfig provides sane defaults if svgstore.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			OutputDir:  DefaultOutputDir,
			ReportsDir: DefaultReportsDir,
		},
		Rewrite: RewriteConfig{
			Include: []string{"**/*.html", "**/*.css", "**/*.js"},
		},
	}
}

// DefaultSpriteConfig mirrors the defaults applied to every sprite entry.
func DefaultSpriteConfig() SpriteConfig {
	return SpriteConfig{
		Directory: DefaultIconDirectory,
		Pattern:   DefaultIconPattern,
		Name:      DefaultSpriteName,
		Prefix:    DefaultSymbolPrefix,
		Suffix:    "",
		Optimizer: OptimizerOptions{Plugins: map[string]bool{}},
		Emit:      true,
	}
}

package config

type YAMLFile struct {
	Svgstore YAMLConfig `yaml:"svgstore"`
}

type YAMLConfig struct {
	OutputDir  string       `yaml:"output_dir"`
	PublicPath *string      `yaml:"public_path"`
	Manifest   string       `yaml:"manifest"`
	ReportsDir string       `yaml:"reports_dir"`
	Rewrite    YAMLRewrite  `yaml:"rewrite"`
	Sprites    []YAMLSprite `yaml:"sprites"`
}

type YAMLRewrite struct {
	Include []string `yaml:"include"`
}

type YAMLSprite struct {
	Directory string        `yaml:"directory"`
	Pattern   string        `yaml:"pattern"`
	Name      string        `yaml:"name"`
	Prefix    *string       `yaml:"prefix"`
	Suffix    string        `yaml:"suffix"`
	Emit      *bool         `yaml:"emit"`
	Optimizer YAMLOptimizer `yaml:"optimizer"`
}

type YAMLOptimizer struct {
	Command []string        `yaml:"command"`
	Plugins map[string]bool `yaml:"plugins"`
}

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/aalvaropc/svgstore/internal/domain"
)

// Overrides are the environment variables that take precedence over svgstore.yaml.
type Overrides struct {
	OutputDir  string `env:"SVGSTORE_OUTPUT_DIR"`
	PublicPath string `env:"SVGSTORE_PUBLIC_PATH"`
	Manifest   string `env:"SVGSTORE_MANIFEST"`
	NoEmit     bool   `env:"SVGSTORE_NO_EMIT"`
}

// ParseEnv loads Overrides from the process environment.
func ParseEnv() (Overrides, error) {
	var o Overrides
	if err := env.Parse(&o); err != nil {
		return o, &domain.OpError{
			Op:   "config.env",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("parse env: %w", err),
		}
	}
	return o, nil
}

// ApplyEnv applies environment overrides to cfg.
func ApplyEnv(cfg domain.Config) (domain.Config, error) {
	o, err := ParseEnv()
	if err != nil {
		return cfg, err
	}
	return o.Apply(cfg), nil
}

// Apply returns cfg with the non-empty overrides set.
func (o Overrides) Apply(cfg domain.Config) domain.Config {
	if v := strings.TrimSpace(o.OutputDir); v != "" {
		cfg.Paths.OutputDir = v
	}
	if v := strings.TrimSpace(o.PublicPath); v != "" {
		cfg.PublicPath = v
	}
	if v := strings.TrimSpace(o.Manifest); v != "" {
		cfg.Manifest = v
	}
	if o.NoEmit {
		cfg = DisableEmit(cfg)
	}
	return cfg
}

// DisableEmit turns off emission for every sprite.
func DisableEmit(cfg domain.Config) domain.Config {
	sprites := make([]domain.SpriteConfig, len(cfg.Sprites))
	for i, s := range cfg.Sprites {
		s.Emit = false
		sprites[i] = s
	}
	cfg.Sprites = sprites
	return cfg
}

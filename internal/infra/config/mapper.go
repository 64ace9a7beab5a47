package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aalvaropc/svgstore/internal/domain"
)

// MapConfig applies a parsed svgstore.yaml on top of domain.DefaultConfig.
func MapConfig(path string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if v := strings.TrimSpace(yc.OutputDir); v != "" {
		cfg.Paths.OutputDir = v
	}
	if v := strings.TrimSpace(yc.ReportsDir); v != "" {
		cfg.Paths.ReportsDir = v
	}
	if yc.PublicPath != nil {
		cfg.PublicPath = strings.TrimSpace(*yc.PublicPath)
	}
	cfg.Manifest = strings.TrimSpace(yc.Manifest)

	if yc.Rewrite.Include != nil {
		cfg.Rewrite.Include = make([]string, 0, len(yc.Rewrite.Include))
		for i, g := range yc.Rewrite.Include {
			if !doublestar.ValidatePattern(g) {
				return domain.Config{}, invalidField(path, fmt.Sprintf("rewrite.include[%d]", i), fmt.Sprintf("invalid glob %q", g))
			}
			cfg.Rewrite.Include = append(cfg.Rewrite.Include, g)
		}
	}

	if len(yc.Sprites) == 0 {
		return domain.Config{}, invalidField(path, "sprites", "at least one sprite is required")
	}

	cfg.Sprites = make([]domain.SpriteConfig, 0, len(yc.Sprites))
	for i, ys := range yc.Sprites {
		sc, err := mapSprite(path, fmt.Sprintf("sprites[%d]", i), ys)
		if err != nil {
			return domain.Config{}, err
		}
		cfg.Sprites = append(cfg.Sprites, sc)
	}

	return cfg, nil
}

func mapSprite(file, field string, ys YAMLSprite) (domain.SpriteConfig, error) {
	sc := domain.DefaultSpriteConfig()

	if v := strings.TrimSpace(ys.Directory); v != "" {
		sc.Directory = v
	}
	if v := strings.TrimSpace(ys.Pattern); v != "" {
		if !doublestar.ValidatePattern(v) {
			return sc, invalidField(file, field+".pattern", fmt.Sprintf("invalid glob %q", v))
		}
		sc.Pattern = v
	}
	if v := strings.TrimSpace(ys.Name); v != "" {
		if path.IsAbs(v) || strings.HasPrefix(path.Clean(v), "..") {
			return sc, invalidField(file, field+".name", "name must be relative to the output directory")
		}
		sc.Name = v
	}
	if ys.Prefix != nil {
		sc.Prefix = *ys.Prefix
	}
	sc.Suffix = ys.Suffix
	if ys.Emit != nil {
		sc.Emit = *ys.Emit
	}

	sc.Optimizer.Command = ys.Optimizer.Command
	for k, v := range ys.Optimizer.Plugins {
		sc.Optimizer.Plugins[k] = v
	}

	return sc, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

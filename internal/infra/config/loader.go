package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/svgstore/internal/domain"
)

// FileName is the workspace configuration file.
const FileName = "svgstore.yaml"

// Load reads svgstore.yaml from root, maps it and applies environment overrides.
func Load(root string) (domain.Config, error) {
	cfg, err := LoadFile(filepath.Join(root, FileName))
	if err != nil {
		return cfg, err
	}
	return ApplyEnv(cfg)
}

func LoadFile(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLFile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto.Svgstore)
}

package workspacefinder

import (
	"github.com/aalvaropc/svgstore/internal/domain"
	"github.com/aalvaropc/svgstore/internal/infra/config"
)

// LoadConfig loads svgstore.yaml from the workspace root, applies defaults and
// environment overrides.
func LoadConfig(root string) (domain.Config, error) {
	return config.Load(root)
}

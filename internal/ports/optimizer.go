package ports

import (
	"context"

	"github.com/aalvaropc/svgstore/internal/domain"
)

// Optimizer normalizes raw icon markup before it is registered.
type Optimizer interface {
	Optimize(ctx context.Context, raw []byte, opts domain.OptimizerOptions) (string, error)
}

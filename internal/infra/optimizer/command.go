package optimizer

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/aalvaropc/svgstore/internal/domain"
	"github.com/aalvaropc/svgstore/internal/ports"
)

// Command pipes icon markup through an external program (for example
// "svgo -i - -o -") when the sprite configures one, then hands the result to
// Next. Without a configured command it only runs Next.
type Command struct {
	Next ports.Optimizer
	Dir  string
}

type CommandOption func(*Command)

// WithDir runs commands from dir, usually the workspace root.
func WithDir(dir string) CommandOption {
	return func(c *Command) { c.Dir = dir }
}

func NewCommand(next ports.Optimizer, opts ...CommandOption) *Command {
	c := &Command{Next: next}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.Optimizer = (*Command)(nil)

func (c *Command) Optimize(ctx context.Context, raw []byte, opts domain.OptimizerOptions) (string, error) {
	if len(opts.Command) == 0 {
		return c.next(ctx, raw, opts)
	}

	cmd := exec.CommandContext(ctx, opts.Command[0], opts.Command[1:]...)
	cmd.Dir = c.Dir
	cmd.Stdin = bytes.NewReader(raw)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return "", &domain.OpError{
			Op:   "optimizer.command",
			Kind: domain.KindNormalization,
			Path: opts.Command[0],
			Err:  fmt.Errorf("%w: %w", domain.ErrNormalization, err),
		}
	}

	return c.next(ctx, stdout.Bytes(), opts)
}

func (c *Command) next(ctx context.Context, raw []byte, opts domain.OptimizerOptions) (string, error) {
	if c.Next == nil {
		return string(raw), nil
	}
	return c.Next.Optimize(ctx, raw, opts)
}

package optimizer

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/aalvaropc/svgstore/internal/domain"
)

func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

func TestCommand_PipesThroughProgramThenNext(t *testing.T) {
	requireTool(t, "cat")

	c := NewCommand(NewBasic())
	opts := plugins(PluginCollapseWhitespace)
	opts.Command = []string{"cat"}

	got, err := c.Optimize(context.Background(), []byte("<svg>\n  <g/>\n</svg>"), opts)
	if err != nil {
		t.Fatalf("Optimize error: %v", err)
	}
	if got != "<svg><g/></svg>" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestCommand_WithoutCommandDelegates(t *testing.T) {
	got, err := NewCommand(nil).Optimize(context.Background(), []byte("<svg/>"), domain.OptimizerOptions{})
	if err != nil || got != "<svg/>" {
		t.Fatalf("unexpected result %q, %v", got, err)
	}
}

func TestCommand_FailureIsNormalizationError(t *testing.T) {
	requireTool(t, "false")

	opts := domain.OptimizerOptions{Command: []string{"false"}}
	_, err := NewCommand(NewBasic()).Optimize(context.Background(), []byte("<svg/>"), opts)
	if !domain.IsKind(err, domain.KindNormalization) {
		t.Fatalf("expected normalization error, got %v", err)
	}
	if !errors.Is(err, domain.ErrNormalization) {
		t.Fatalf("expected ErrNormalization in chain, got %v", err)
	}
}

func TestCommand_MissingBinary(t *testing.T) {
	opts := domain.OptimizerOptions{Command: []string{"svgstore-definitely-missing-binary"}}
	_, err := NewCommand(nil).Optimize(context.Background(), []byte("<svg/>"), opts)
	if !domain.IsKind(err, domain.KindNormalization) {
		t.Fatalf("expected normalization error, got %v", err)
	}
}

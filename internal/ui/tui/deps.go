package tui

import (
	"log/slog"

	"github.com/aalvaropc/svgstore/internal/ports"
)

type Deps struct {
	Reports ports.ReportStore
	// ReportID selects a saved report; empty means the latest one.
	ReportID string
	Root     string

	Logger *slog.Logger
	Debug  bool
}

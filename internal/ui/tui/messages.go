package tui

import "github.com/aalvaropc/svgstore/internal/domain"

type reportLoadedMsg struct {
	report domain.BuildReport
	err    error
}

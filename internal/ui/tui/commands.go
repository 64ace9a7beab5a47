package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func cmdLoadReport(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Reports == nil {
			return reportLoadedMsg{err: errors.New("report store is nil")}
		}

		id := strings.TrimSpace(deps.ReportID)
		if id == "" {
			rep, err := deps.Reports.LatestReport()
			if err != nil && deps.Logger != nil {
				deps.Logger.Warn("browse.load.failed", "report", "latest", "err", err)
			}
			return reportLoadedMsg{report: rep, err: err}
		}

		rep, err := deps.Reports.LoadReport(id)
		if err != nil && deps.Logger != nil {
			deps.Logger.Warn("browse.load.failed", "report", id, "err", err)
		}
		return reportLoadedMsg{report: rep, err: err}
	}
}

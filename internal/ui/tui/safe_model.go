package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const panicToast = "Unexpected error (see logs)"

// safeModel recovers panics from the browser so the terminal is restored
// and the user lands back on the sprite list.
type safeModel struct {
	m      model
	log    *slog.Logger
	panics int
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) logPanic(where string, r any) {
	s.log.Error("panic.recovered",
		"where", where,
		"panic", fmt.Sprint(r),
		"count", s.panics,
		"stack", string(debug.Stack()),
	)
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s.panics++
		s.logPanic("tui.update", r)

		s.m.scr = screenSprites
		s.m.toast = panicToast
		next, cmd = s, nil
	}()

	inner, c := s.m.Update(msg)
	if m, ok := inner.(model); ok {
		s.m = m
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.view", r)
			out = panicToast
		}
	}()
	return s.m.View()
}

var _ tea.Model = safeModel{}

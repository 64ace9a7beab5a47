package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/svgstore/internal/domain"
)

type fakeReports struct {
	latest domain.BuildReport
	byID   map[string]domain.BuildReport
	err    error
}

func (f *fakeReports) SaveReport(domain.BuildReport) (string, error) { return "", nil }

func (f *fakeReports) LoadReport(id string) (domain.BuildReport, error) {
	rep, ok := f.byID[id]
	if !ok {
		return domain.BuildReport{}, &domain.OpError{Op: "reportstore.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return rep, nil
}

func (f *fakeReports) LatestReport() (domain.BuildReport, error) { return f.latest, f.err }

func (f *fakeReports) ListReports() ([]domain.ReportRef, error) { return nil, nil }

func sampleReport() domain.BuildReport {
	return domain.BuildReport{
		ID:    "20260101T000000Z_sprite",
		Phase: domain.PhaseEmitted,
		Sprites: []domain.SpriteReport{{
			Name:        "sprite.svg",
			LogicalPath: "sprite.svg",
			FinalPath:   "sprite.svg",
			Size:        120,
			Emitted:     true,
			Icons: []domain.IconReport{
				{Source: "icons/home.svg", Name: "home", Symbol: "icon-home", URL: "/sprite.svg#icon-home"},
				{Source: "icons/user.svg", Name: "user", Symbol: "icon-user", URL: "/sprite.svg#icon-user"},
			},
		}},
		Failures: []domain.IconFailure{{Sprite: "sprite.svg", Source: "icons/bad.svg", Kind: domain.KindMalformedMarkup, Message: "bad"}},
	}
}

func loaded(t *testing.T, rep domain.BuildReport) model {
	t.Helper()
	next, _ := newModel(Deps{}).Update(reportLoadedMsg{report: rep})
	return next.(model)
}

func press(t *testing.T, m model, msg tea.KeyMsg) model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(model)
}

func TestCmdLoadReport_Latest(t *testing.T) {
	store := &fakeReports{latest: sampleReport()}
	msg := cmdLoadReport(Deps{Reports: store})()

	got, ok := msg.(reportLoadedMsg)
	if !ok {
		t.Fatalf("expected reportLoadedMsg, got %T", msg)
	}
	if got.err != nil || got.report.ID != "20260101T000000Z_sprite" {
		t.Fatalf("expected latest report, got id=%q err=%v", got.report.ID, got.err)
	}
}

func TestCmdLoadReport_ByIDMissing(t *testing.T) {
	store := &fakeReports{byID: map[string]domain.BuildReport{}}
	msg := cmdLoadReport(Deps{Reports: store, ReportID: "nope"})().(reportLoadedMsg)

	if !domain.IsKind(msg.err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", msg.err)
	}
}

func TestCmdLoadReport_NilStore(t *testing.T) {
	msg := cmdLoadReport(Deps{})().(reportLoadedMsg)
	if msg.err == nil {
		t.Fatalf("expected error for nil store")
	}
}

func TestModel_ReportLoadedPopulatesSprites(t *testing.T) {
	m := loaded(t, sampleReport())

	if m.report == nil {
		t.Fatalf("expected report to be set")
	}
	if got := len(m.sprites.Items()); got != 1 {
		t.Fatalf("expected 1 sprite item, got %d", got)
	}
	if !strings.Contains(m.View(), "1 icon failure(s)") {
		t.Fatalf("expected failure hint in view")
	}
}

func TestModel_LoadErrorSetsToast(t *testing.T) {
	err := &domain.OpError{Op: "reportstore.latest", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	next, _ := newModel(Deps{}).Update(reportLoadedMsg{err: err})
	m := next.(model)

	if m.report != nil {
		t.Fatalf("expected no report")
	}
	if !strings.Contains(m.toast, "svgstore build") {
		t.Fatalf("expected build tip, got %q", m.toast)
	}
}

func TestModel_EnterOpensSymbolsAndEscGoesBack(t *testing.T) {
	m := loaded(t, sampleReport())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.scr != screenSymbols {
		t.Fatalf("expected symbols screen, got %v", m.scr)
	}
	if got := len(m.symbols.Items()); got != 2 {
		t.Fatalf("expected 2 symbol items, got %d", got)
	}
	if !strings.Contains(m.View(), "/sprite.svg#icon-home") {
		t.Fatalf("expected selected symbol URL in view")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scr != screenSprites {
		t.Fatalf("expected sprites screen, got %v", m.scr)
	}
}

func TestModel_FailuresScreen(t *testing.T) {
	m := loaded(t, sampleReport())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	if m.scr != screenFailures {
		t.Fatalf("expected failures screen, got %v", m.scr)
	}
	if !strings.Contains(m.View(), "icons/bad.svg") {
		t.Fatalf("expected failure source in view")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if m.scr != screenSprites {
		t.Fatalf("expected q to return to sprites, got %v", m.scr)
	}
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"no report", &domain.OpError{Op: "reportstore.latest", Kind: domain.KindNotFound}, "No build report found (run `svgstore build` first)"},
		{"workspace", &domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindNotFound}, "Workspace not found"},
		{"yaml line", &domain.OpError{Op: "config.load", Kind: domain.KindInvalidConfig, Path: "/w/svgstore.yaml", Err: errors.New("yaml: line 7: did not find expected key")}, "Invalid YAML at svgstore.yaml line 7"},
		{"markup", &domain.OpError{Op: "build.ingest", Kind: domain.KindMalformedMarkup, Path: "icons/a.svg"}, "Malformed SVG a.svg"},
		{"conflict", &domain.OpError{Op: "build.emit", Kind: domain.KindConflict, Path: "sprite.svg"}, "Output conflict at sprite.svg"},
		{"plain", errors.New("boom"), "Unexpected error (see logs)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := userMessage(tc.err); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestClampString(t *testing.T) {
	if got := clampString("héllo", 3); got != "hél…" {
		t.Fatalf("expected %q, got %q", "hél…", got)
	}
	if got := clampString("abc", 5); got != "abc" {
		t.Fatalf("expected unchanged, got %q", got)
	}
	if got := clampString("abc", 0); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestSafeModel_ViewRecoversPanic(t *testing.T) {
	m := newModel(Deps{})
	m.report = &domain.BuildReport{}
	m.scr = screenSymbols

	if got := wrapSafe(m, nil).View(); got != panicToast {
		t.Fatalf("expected %q, got %q", panicToast, got)
	}
}

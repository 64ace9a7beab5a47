package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/svgstore/internal/domain"
)

type screen int

const (
	screenSprites screen = iota
	screenSymbols
	screenFailures
)

type spriteItem struct {
	idx int
	sr  domain.SpriteReport
}

func (i spriteItem) Title() string { return i.sr.FinalPath }
func (i spriteItem) Description() string {
	return fmt.Sprintf("%d symbols • %d bytes • %s", len(i.sr.Icons), i.sr.Size, emittedLabel(i.sr))
}
func (i spriteItem) FilterValue() string { return i.sr.LogicalPath + " " + i.sr.FinalPath }

type iconItem struct {
	ir domain.IconReport
}

func (i iconItem) Title() string       { return i.ir.Symbol }
func (i iconItem) Description() string { return i.ir.Source }
func (i iconItem) FilterValue() string { return i.ir.Symbol }

type model struct {
	theme Theme
	deps  Deps

	scr     screen
	sprites list.Model
	symbols list.Model

	report *domain.BuildReport
	active int
	toast  string
	width  int
}

func Run(deps Deps) error {
	p := tea.NewProgram(wrapSafe(newModel(deps), deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newList(title string) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 80, 20)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	return l
}

func newModel(deps Deps) model {
	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		scr:     screenSprites,
		sprites: newList("Sprites"),
		symbols: newList("Symbols"),
		toast:   "Loading report…",
	}
}

func (m model) Init() tea.Cmd { return cmdLoadReport(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.sprites.SetSize(msg.Width-4, msg.Height-12)
		m.symbols.SetSize(msg.Width-4, msg.Height-16)
		return m, nil

	case reportLoadedMsg:
		if msg.err != nil {
			m.report = nil
			m.toast = userMessage(msg.err)
			return m, nil
		}
		rep := msg.report
		m.report = &rep
		m.toast = ""
		items := make([]list.Item, 0, len(rep.Sprites))
		for i, sr := range rep.Sprites {
			items = append(items, spriteItem{idx: i, sr: sr})
		}
		cmd := m.sprites.SetItems(items)
		return m, cmd

	case tea.KeyMsg:
		if m.activeList().FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenSprites {
				return m, tea.Quit
			}
			m.scr = screenSprites
			return m, nil

		case "esc", "b":
			if m.scr != screenSprites {
				m.scr = screenSprites
				return m, nil
			}

		case "f":
			if m.report != nil && m.scr == screenSprites {
				m.scr = screenFailures
				return m, nil
			}

		case "enter":
			if m.scr == screenSprites {
				it, ok := m.sprites.SelectedItem().(spriteItem)
				if !ok {
					return m, nil
				}
				m.active = it.idx
				items := make([]list.Item, 0, len(it.sr.Icons))
				for _, ir := range it.sr.Icons {
					items = append(items, iconItem{ir: ir})
				}
				m.symbols.Title = it.sr.Name
				m.symbols.ResetFilter()
				m.symbols.Select(0)
				cmd := m.symbols.SetItems(items)
				m.scr = screenSymbols
				return m, cmd
			}
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenSprites:
		m.sprites, cmd = m.sprites.Update(msg)
	case screenSymbols:
		m.symbols, cmd = m.symbols.Update(msg)
	}
	return m, cmd
}

func (m model) activeList() list.Model {
	if m.scr == screenSymbols {
		return m.symbols
	}
	return m.sprites
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("svgstore") + "\n" + m.theme.Subtitle.Render(m.subtitle()) + "\n"

	if m.report == nil {
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.toast) + "\n" + m.theme.Help.Render("q quit"))
	}

	switch m.scr {
	case screenSprites:
		help := m.theme.Help.Render("↑/↓ navigate • enter symbols • f failures • / search • q quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.sprites.View()) + "\n" + m.statusLine() + help)

	case screenSymbols:
		sr := m.report.Sprites[m.active]
		detail := m.theme.Badge(emittedLabel(sr)) + "\n" + renderSpriteDetails(sr)
		if it, ok := m.symbols.SelectedItem().(iconItem); ok {
			detail += "\n" + m.theme.Code.Render(renderIconDetails(it.ir))
		}
		help := m.theme.Help.Render("↑/↓ navigate • / search • esc/b back • q sprites")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.symbols.View()) + "\n" + detail + "\n" + help)

	case screenFailures:
		card := m.theme.Card.Render(m.theme.Title.Render("Icon failures") + "\n\n" + m.theme.Warn.Render(renderFailures(m.report.Failures)))
		return wrap.Render(header + "\n" + card + "\n" + m.theme.Help.Render("esc/b back • q sprites"))

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) subtitle() string {
	if m.report == nil {
		return "Build report browser"
	}
	id := m.report.ID
	if id == "" {
		id = "(unsaved)"
	}
	return fmt.Sprintf("Report %s • phase %s • %d sprite(s)", id, m.report.Phase, len(m.report.Sprites))
}

func (m model) statusLine() string {
	if m.report == nil || len(m.report.Failures) == 0 {
		return ""
	}
	return m.theme.Warn.Render(fmt.Sprintf("⚠ %d icon failure(s), press f", len(m.report.Failures))) + "\n"
}

// Package review lets the user tick or untick planned renames before they are applied.
package review

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/kxue43/rename-toolkit/rename"
)

type (
	item struct {
		plan rename.Outcome
		drop bool
	}

	Model struct {
		help      help.Model
		dump      io.Writer
		items     []item
		index     int
		submitted bool
	}

	keyMap struct{}
)

var (
	keys = struct {
		up     key.Binding
		down   key.Binding
		tick   key.Binding
		all    key.Binding
		submit key.Binding
		help   key.Binding
		quit   key.Binding
	}{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		tick: key.NewBinding(
			key.WithKeys("x", " "),
			key.WithHelp("x", "tick/untick"),
		),
		all: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "tick/untick all"),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "rename ticked"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c", "q"),
			key.WithHelp("esc", "quit"),
		),
	}

	palette = struct {
		magenta lipgloss.Color
		grey    lipgloss.Color
	}{
		magenta: lipgloss.Color("212"),
		grey:    lipgloss.Color("241"),
	}

	highlightedStyle = lipgloss.NewStyle().Foreground(palette.magenta)

	arrowStyle = lipgloss.NewStyle().Foreground(palette.grey)
)

func getStyle(dropped, highlighted bool) lipgloss.Style {
	style := lipgloss.NewStyle().Strikethrough(dropped)

	if highlighted {
		style = style.Foreground(palette.magenta)
	}

	return style
}

func (keyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.tick, keys.submit, keys.help, keys.quit}
}

func (keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.up, keys.down, keys.tick, keys.all},
		{keys.submit, keys.help, keys.quit},
	}
}

// New returns a model with every plan ticked.
// When dump is not nil, every message the model receives is written to it.
func New(plans []rename.Outcome, dump io.Writer) Model {
	m := Model{
		help:  help.New(),
		dump:  dump,
		items: make([]item, len(plans)),
	}

	for i := range plans {
		m.items[i] = item{plan: plans[i]}
	}

	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.submit):
			m.submitted = true

			return m, tea.Quit
		case key.Matches(msg, keys.up):
			if m.index > 0 {
				m.index--
			}
		case key.Matches(msg, keys.down):
			if m.index < len(m.items)-1 {
				m.index++
			}
		case key.Matches(msg, keys.tick):
			if len(m.items) > 0 {
				m.items[m.index].drop = !m.items[m.index].drop
			}
		case key.Matches(msg, keys.all):
			m.toggleAll()
		case key.Matches(msg, keys.help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

// toggleAll drops every item unless all of them are dropped already.
func (m *Model) toggleAll() {
	drop := false

	for i := range m.items {
		if !m.items[i].drop {
			drop = true

			break
		}
	}

	for i := range m.items {
		m.items[i].drop = drop
	}
}

func (m Model) View() string {
	if m.submitted {
		return ""
	}

	var b strings.Builder

	b.WriteString("Review renames:\n\n")

	if len(m.items) == 0 {
		b.WriteString("  Nothing to rename.\n")
	}

	for i, it := range m.items {
		highlighted := i == m.index

		if highlighted {
			b.WriteString(highlightedStyle.Render("> "))
		} else {
			b.WriteString("  ")
		}

		if it.drop {
			b.WriteString("[ ] ")
		} else {
			b.WriteString("[x] ")
		}

		style := getStyle(it.drop, highlighted)

		b.WriteString(style.Render(it.plan.Old))
		b.WriteString(arrowStyle.Render(" -> "))
		b.WriteString(style.Render(it.plan.New))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(keyMap{}))
	b.WriteString("\n")

	return b.String()
}

func (m Model) Submitted() bool {
	return m.submitted
}

// Selected returns the ticked plans, or nothing when the review was abandoned.
func (m Model) Selected() []rename.Outcome {
	if !m.submitted {
		return nil
	}

	selected := make([]rename.Outcome, 0, len(m.items))

	for _, it := range m.items {
		if !it.drop {
			selected = append(selected, it.plan)
		}
	}

	return selected
}

// Run shows the review on out, reading keys from in, and returns the model it ended with.
func Run(plans []rename.Outcome, in io.Reader, out io.Writer, dump io.Writer) (Model, error) {
	p := tea.NewProgram(New(plans, dump), tea.WithInput(in), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return Model{}, fmt.Errorf("failed to run rename review: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Model{}, fmt.Errorf("unexpected model type %T from rename review", final)
	}

	return m, nil
}

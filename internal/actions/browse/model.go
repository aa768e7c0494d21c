package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/moray-shell/moray/internal/help"
	"github.com/moray-shell/moray/internal/signature"
	"github.com/moray-shell/moray/internal/ui/style"
)

const sidebarWidth = 24

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Search key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
	Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
	Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type model struct {
	all      []signature.Signature
	filtered []signature.Signature
	cursor   int

	detail viewport.Model

	searchMode  bool
	searchQuery string

	width  int
	height int
	ready  bool
}

func newModel(sigs []signature.Signature) model {
	return model{
		all:      sigs,
		filtered: sigs,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail = viewport.New(max(m.width-sidebarWidth-3, 20), max(m.height-3, 5))
		m.ready = true
		m.refreshDetail()
		return m, nil

	case tea.KeyMsg:
		if m.searchMode {
			return m.updateSearch(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.refreshDetail()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				m.refreshDetail()
			}
			return m, nil

		case key.Matches(msg, keys.Search):
			m.searchMode = true
			return m, nil

		case key.Matches(msg, keys.Clear):
			m.searchQuery = ""
			m.applyFilter()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searchMode = false
		if msg.String() == "esc" {
			m.searchQuery = ""
			m.applyFilter()
		}
	case "backspace":
		if len(m.searchQuery) > 0 {
			m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
			m.applyFilter()
		}
	default:
		if len(msg.String()) == 1 {
			m.searchQuery += msg.String()
			m.applyFilter()
		}
	}
	return m, nil
}

func (m *model) applyFilter() {
	if m.searchQuery == "" {
		m.filtered = m.all
	} else {
		q := strings.ToLower(m.searchQuery)
		var out []signature.Signature
		for _, sig := range m.all {
			if strings.Contains(strings.ToLower(sig.Name), q) ||
				strings.Contains(strings.ToLower(sig.Usage), q) {
				out = append(out, sig)
			}
		}
		m.filtered = out
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = max(len(m.filtered)-1, 0)
	}
	m.refreshDetail()
}

func (m *model) refreshDetail() {
	if !m.ready {
		return
	}
	if len(m.filtered) == 0 {
		m.detail.SetContent("No commands match.")
		return
	}
	m.detail.SetContent(help.Render(m.filtered[m.cursor], style.NewStyler()))
	m.detail.GotoTop()
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}

	sidebar := m.renderSidebar()
	detail := m.detail.View()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(sidebarWidth).Render(sidebar),
		" | ",
		detail,
	)

	return body + "\n" + m.renderFooter()
}

func (m model) renderSidebar() string {
	var b strings.Builder

	visible := m.height - 3
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}

	for i := start; i < len(m.filtered) && i-start < visible; i++ {
		name := m.filtered[i].Name
		if i == m.cursor {
			b.WriteString(style.Info("> " + name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) renderFooter() string {
	if m.searchMode {
		return style.Info("/" + m.searchQuery)
	}

	status := fmt.Sprintf("%d/%d commands", len(m.filtered), len(m.all))
	if m.searchQuery != "" {
		status += fmt.Sprintf("  (filter: %s)", m.searchQuery)
	}
	return style.Muted(status + "   j/k navigate   / search   q quit")
}

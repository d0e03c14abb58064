package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"SignalDeck/internal/model"
	"SignalDeck/internal/render"
	"SignalDeck/internal/session"
	"SignalDeck/internal/snapshot"
)

func (m Model) View() string {
	if !m.ready {
		return "\n  Loading..."
	}
	body := m.viewport.View()
	switch m.mode {
	case modeSymbol:
		body = m.overlay(m.viewSymbolPrompt())
	case modeTopics:
		body = m.overlay(m.viewTopicList())
	case modeTopic:
		body = m.overlay(m.viewTopic())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		m.viewTabs(),
		body,
		m.viewStatus(),
		m.viewHelp(),
	)
}

// activePanel returns the panel of the active tab. Panel IDs match tab names.
func (m Model) activePanel() render.Panel {
	set := m.ctrl.Panels()
	if p, ok := set.ByID(string(m.ctrl.Tabs().Active())); ok {
		return p
	}
	return set.Overview
}

func (m *Model) rebuildContent() {
	blocks := []string{m.renderPanel(m.activePanel())}

	tab := m.ctrl.Tabs().Active()
	if m.surface != nil && (tab == session.TabOverview || tab == session.TabTechnical) {
		title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Info).Render("Price History")
		blocks = append(blocks, "", title, m.surface.View())
	}

	pad := lipgloss.NewStyle().Padding(0, 2)
	m.viewport.SetContent(pad.Render(strings.Join(blocks, "\n")))
}

func (m Model) viewHeader() string {
	t := m.theme
	parts := []string{lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("SignalDeck")}

	snap := m.ctrl.Snapshot()
	if snap == nil {
		return strings.Join(parts, "  ")
	}
	parts = append(parts, lipgloss.NewStyle().Bold(true).Foreground(t.Text).Render(snap.Symbol))
	if p := snap.Price; p != nil && p.Value.Valid {
		parts = append(parts, lipgloss.NewStyle().Foreground(t.Text).Render(render.Currency(p.Value)))
		if p.Change.Valid {
			change := fmt.Sprintf("%s (%s%%)", render.Signed(p.Change.Value, 2), render.Signed(p.ChangePercent.Float(), 2))
			parts = append(parts, t.class(render.SignClass(p.Change.Value)).Render(change))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) viewTabs() string {
	t := m.theme
	active := lipgloss.NewStyle().Bold(true).Foreground(t.Base).Background(t.Primary).Padding(0, 1)
	inactive := lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1)

	tabs := make([]string, len(session.Tabs))
	for i, tab := range session.Tabs {
		label := fmt.Sprintf("%d %s", i+1, tab.Title())
		if m.ctrl.Tabs().IsActive(tab) {
			tabs[i] = active.Render(label)
		} else {
			tabs[i] = inactive.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	t := m.theme
	if m.status != "" {
		color := t.Info
		if m.statusErr {
			color = t.Error
		}
		return lipgloss.NewStyle().Foreground(color).Render(m.status)
	}
	if n := m.pending(); n > 0 {
		return lipgloss.NewStyle().Foreground(t.Muted).Render(fmt.Sprintf("Loading %d resource(s)…", n))
	}
	return ""
}

func (m Model) pending() int {
	snap := m.ctrl.Snapshot()
	if snap == nil {
		return 0
	}
	n := 0
	for _, k := range model.Kinds {
		if snap.Status(k).State == snapshot.StatePending {
			n++
		}
	}
	return n
}

func (m Model) viewHelp() string {
	var bindings []key.Binding
	switch m.mode {
	case modeSymbol:
		bindings = []key.Binding{
			key.NewBinding(key.WithHelp("enter", "load")),
			key.NewBinding(key.WithHelp("esc", "cancel")),
		}
	case modeTopics:
		bindings = []key.Binding{
			key.NewBinding(key.WithHelp("↑/↓", "select")),
			key.NewBinding(key.WithHelp("enter", "explain")),
			keys.Back,
		}
	case modeTopic:
		bindings = []key.Binding{key.NewBinding(key.WithHelp("esc", "close"))}
	default:
		bindings = keys.dashboardHelp()
	}

	parts := make([]string, len(bindings))
	for i, b := range bindings {
		h := b.Help()
		parts[i] = h.Key + " " + h.Desc
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(parts, " • "))
}

func (m Model) overlay(content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Primary).
		Padding(1, 2).
		Width(min(m.width-4, 72)).
		Render(content)
	return lipgloss.Place(m.width, m.viewport.Height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) viewSymbolPrompt() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent).Render("Load symbol")
	return title + "\n\n" + m.input.View()
}

func (m Model) viewTopicList() string {
	t := m.theme
	lines := []string{lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Render("Explain a metric"), ""}
	for i, topic := range m.topics {
		if i == m.cursor {
			lines = append(lines, lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render("› "+topicLabel(topic)))
			continue
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Subtext).Render("  "+topicLabel(topic)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewTopic() string {
	t := m.theme
	tp := m.topic
	if tp == nil {
		return ""
	}
	heading := lipgloss.NewStyle().Bold(true).Foreground(t.Info)
	text := lipgloss.NewStyle().Foreground(t.Text)

	lines := []string{lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Render(tp.Title), ""}
	if tp.Description != "" {
		lines = append(lines, text.Render(tp.Description), "")
	}
	list := tp.HowToRead
	if len(list) == 0 {
		list = tp.Interpretation
	}
	if len(list) > 0 {
		lines = append(lines, heading.Render("How to read it"))
		for _, item := range list {
			lines = append(lines, text.Render("• "+item))
		}
		lines = append(lines, "")
	}
	if tp.Usage != "" {
		lines = append(lines, heading.Render("Using it"), text.Render(tp.Usage))
	}
	if tp.BeginnerTip != "" {
		lines = append(lines, "", heading.Render("Tip"), text.Render(tp.BeginnerTip))
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

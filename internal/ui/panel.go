package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"SignalDeck/internal/render"
)

const (
	labelWidth = 18
	barWidth   = 30
)

// renderPanel turns a panel description into styled text.
func (m Model) renderPanel(p render.Panel) string {
	t := m.theme
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Render(p.Title)
	if p.Placeholder != "" {
		style := t.class(render.ClassMuted)
		if p.Loading {
			style = lipgloss.NewStyle().Foreground(t.Info)
		}
		return title + "\n\n" + style.Render(p.Placeholder)
	}

	lines := []string{title}
	for _, s := range p.Sections {
		lines = append(lines, "")
		lines = append(lines, m.renderSection(s)...)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSection(s render.Section) []string {
	t := m.theme
	label := lipgloss.NewStyle().Width(labelWidth).Foreground(t.Subtext)

	var out []string
	if s.Title != "" {
		out = append(out, lipgloss.NewStyle().Bold(true).Foreground(t.Info).Render(s.Title))
	}
	for _, r := range s.Rows {
		out = append(out, label.Render(r.Label)+t.class(r.Class).Render(r.Value))
	}
	for _, b := range s.Bars {
		bar := renderBar(b.Percent, barWidth, t.ClassColor(b.Class), t.Border)
		out = append(out, label.Render(b.Label)+bar+" "+t.class(b.Class).Render(b.Value))
	}
	for i, item := range s.Items {
		bullet := "• "
		if s.Ordered {
			bullet = fmt.Sprintf("%d. ", i+1)
		}
		out = append(out, lipgloss.NewStyle().Foreground(t.Text).Render(bullet+item))
	}
	if s.Text != "" {
		out = append(out, lipgloss.NewStyle().Width(max(m.width-6, 20)).Foreground(t.Text).Render(s.Text))
	}
	return out
}

// renderBar draws a gauge of width cells filled to percent (0-100), using
// eighth-cell blocks for the fractional part.
func renderBar(percent float64, width int, color, emptyColor lipgloss.Color) string {
	fractionalBlocks := []rune{'▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}

	percent = math.Max(0, math.Min(100, percent))
	if width < 1 {
		width = 1
	}
	fill := percent / 100 * float64(width)
	full := int(fill)
	fraction := fill - float64(full)

	filled := lipgloss.NewStyle().Foreground(color)
	var sb strings.Builder
	sb.WriteString(filled.Render(strings.Repeat("█", full)))
	cells := full
	if idx := int(fraction*8) - 1; idx >= 0 && cells < width {
		sb.WriteString(filled.Render(string(fractionalBlocks[idx])))
		cells++
	}
	if cells < width {
		sb.WriteString(lipgloss.NewStyle().Foreground(emptyColor).Render(strings.Repeat("░", width-cells)))
	}
	return sb.String()
}

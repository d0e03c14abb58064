package ui

import (
	"github.com/charmbracelet/lipgloss"

	"SignalDeck/internal/render"
)

// Theme holds the semantic color palette for the dashboard.
type Theme struct {
	Base    lipgloss.Color
	Surface lipgloss.Color
	Border  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

// DefaultTheme uses the CharmTone palette.
var DefaultTheme = Theme{
	Base:    lipgloss.Color("#201F26"), // Pepper
	Surface: lipgloss.Color("#2D2C35"), // BBQ
	Border:  lipgloss.Color("#4D4C57"), // Iron
	Muted:   lipgloss.Color("#858392"), // Squid
	Text:    lipgloss.Color("#DFDBDD"), // Ash
	Subtext: lipgloss.Color("#BFBCC8"), // Smoke
	Primary: lipgloss.Color("#6B50FF"), // Charple
	Accent:  lipgloss.Color("#FF60FF"), // Dolly
	Success: lipgloss.Color("#00FFB2"), // Julep
	Warning: lipgloss.Color("#FFD300"),
	Error:   lipgloss.Color("#E94090"),
	Info:    lipgloss.Color("#00CED1"),
}

// ClassColor maps a render class to a palette color.
func (t Theme) ClassColor(c render.Class) lipgloss.Color {
	switch c {
	case render.ClassPositive, render.ClassBuy, render.ClassOversold:
		return t.Success
	case render.ClassNegative, render.ClassSell, render.ClassOverbought:
		return t.Error
	case render.ClassHold, render.ClassNeutral:
		return t.Warning
	case render.ClassMuted:
		return t.Muted
	}
	return t.Text
}

func (t Theme) class(c render.Class) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.ClassColor(c))
}

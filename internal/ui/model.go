// Package ui is the bubbletea front end of the dashboard. The update loop is
// the only goroutine that touches the session controller; fetches run as
// commands and come back as messages.
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"SignalDeck/internal/chart"
	"SignalDeck/internal/education"
	"SignalDeck/internal/model"
	"SignalDeck/internal/session"
)

const (
	defaultToastTTL = 4 * time.Second
	chartHeight     = 10
	// chrome is the number of lines outside the viewport: header, tab bar,
	// status line and help line.
	chrome = 4
)

type mode int

const (
	modeDashboard mode = iota
	modeSymbol
	modeTopics
	modeTopic
)

// Options configures a Model.
type Options struct {
	Controller *session.Controller
	Education  *education.Library
	Chart      *chart.Adapter
	Surface    *chart.Terminal
	Symbol     string
	Log        zerolog.Logger
	Theme      *Theme
	// ToastTTL is how long a status message stays on screen.
	ToastTTL time.Duration
}

type Model struct {
	ctrl     *session.Controller
	library  *education.Library
	chart    *chart.Adapter
	surface  *chart.Terminal
	log      zerolog.Logger
	theme    Theme
	symbol   string
	toastTTL time.Duration

	// UI state
	width  int
	height int
	ready  bool
	mode   mode

	input    textinput.Model
	topics   []string
	cursor   int
	topic    *model.Topic
	topicKey string

	status    string
	statusErr bool
	statusSeq int

	contentDirty bool
	viewport     viewport.Model
}

// Messages

type arrivalMsg struct {
	arrival session.Arrival
}

// RefreshMsg asks the model to re-request every resource of the current
// symbol. The refresh scheduler delivers it with Program.Send.
type RefreshMsg struct{}

type topicMsg struct {
	key   string
	topic *model.Topic
	err   error
}

type statusMsg struct {
	text string
	err  bool
}

type clearStatusMsg struct {
	seq int
}

// NewModel creates the dashboard model. The first symbol load starts in Init.
func NewModel(opts Options) Model {
	in := textinput.New()
	in.Placeholder = "AAPL"
	in.CharLimit = 12
	in.Width = 16
	in.Prompt = "Symbol: "

	m := Model{
		ctrl:     opts.Controller,
		library:  opts.Education,
		chart:    opts.Chart,
		surface:  opts.Surface,
		log:      opts.Log.With().Str("component", "ui").Logger(),
		theme:    DefaultTheme,
		symbol:   opts.Symbol,
		toastTTL: opts.ToastTTL,
		input:    in,
	}
	if opts.Theme != nil {
		m.theme = *opts.Theme
	}
	if m.toastTTL <= 0 {
		m.toastTTL = defaultToastTTL
	}
	if s := m.surface; s != nil && s.Above == "" {
		s.Above, s.Below, s.Muted = m.theme.Success, m.theme.Error, m.theme.Muted
		s.SMA20, s.SMA50 = m.theme.Info, m.theme.Accent
	}
	return m
}

func (m Model) Init() tea.Cmd {
	reqs, err := m.ctrl.SelectSymbol(m.symbol)
	if err != nil {
		return statusCmd(err.Error(), true)
	}
	return fetchAll(m.ctrl, reqs)
}

// Commands

func fetchAll(c *session.Controller, reqs []session.Request) tea.Cmd {
	if len(reqs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(reqs))
	for i, req := range reqs {
		cmds[i] = fetchCmd(c, req)
	}
	return tea.Batch(cmds...)
}

func fetchCmd(c *session.Controller, req session.Request) tea.Cmd {
	return func() tea.Msg {
		return arrivalMsg{arrival: c.Fetch(context.Background(), req)}
	}
}

func lookupCmd(lib *education.Library, topic string) tea.Cmd {
	return func() tea.Msg {
		t, err := lib.Lookup(context.Background(), topic)
		return topicMsg{key: lib.Key(topic), topic: t, err: err}
	}
}

func statusCmd(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, err: isErr} }
}

func clearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// activeTopics lists the education topics behind the rows of the active
// panel, in display order and without repeats.
func (m Model) activeTopics() []string {
	p := m.activePanel()
	seen := make(map[string]bool)
	var out []string
	for _, s := range p.Sections {
		for _, r := range s.Rows {
			if r.Topic == "" || seen[r.Topic] {
				continue
			}
			seen[r.Topic] = true
			out = append(out, r.Topic)
		}
	}
	return out
}

func topicLabel(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

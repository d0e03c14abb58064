package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"SignalDeck/internal/education"
	"SignalDeck/internal/session"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		m.contentDirty = true

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		cmds = append(cmds, cmd)

	case arrivalMsg:
		cmds = append(cmds, m.applyArrival(msg.arrival))

	case RefreshMsg:
		cmds = append(cmds, fetchAll(m.ctrl, m.ctrl.Refresh()))

	case topicMsg:
		if msg.err != nil {
			text := "Explanation unavailable: " + msg.err.Error()
			if errors.Is(msg.err, education.ErrTopicNotFound) {
				text = fmt.Sprintf("No explanation for %q", topicLabel(msg.key))
			}
			cmds = append(cmds, m.setStatus(text, true))
			break
		}
		// The user may have closed the picker while the lookup was in flight.
		if m.mode == modeTopics {
			m.topic = msg.topic
			m.topicKey = msg.key
			m.mode = modeTopic
		}

	case statusMsg:
		cmds = append(cmds, m.setStatus(msg.text, msg.err))

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}

	default:
		if m.mode == modeSymbol {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.ready && m.contentDirty {
		m.rebuildContent()
		m.contentDirty = false
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch m.mode {
	case modeSymbol:
		return m.handleSymbolKey(msg)
	case modeTopics:
		return m.handleTopicsKey(msg)
	case modeTopic:
		if key.Matches(msg, keys.Back, keys.Enter, keys.Quit) {
			m.mode = modeDashboard
			m.topic = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.NextTab):
		return m.switched(m.ctrl.NextTab())
	case key.Matches(msg, keys.PrevTab):
		return m.switched(m.ctrl.PrevTab())
	case key.Matches(msg, keys.Refresh):
		reqs := m.ctrl.Refresh()
		if len(reqs) == 0 {
			return m, nil
		}
		return m, tea.Batch(fetchAll(m.ctrl, reqs), m.setStatus("Refreshing "+m.ctrl.Symbol(), false))
	case key.Matches(msg, keys.Symbol):
		m.mode = modeSymbol
		m.input.SetValue("")
		return m, m.input.Focus()
	case key.Matches(msg, keys.Learn):
		topics := m.activeTopics()
		if len(topics) == 0 || m.library == nil {
			return m, m.setStatus("Nothing to explain on this tab", false)
		}
		m.topics = topics
		m.cursor = 0
		m.mode = modeTopics
		return m, nil
	}

	for i, b := range keys.Tab {
		if i < len(session.Tabs) && key.Matches(msg, b) {
			reqs, err := m.ctrl.SwitchTab(string(session.Tabs[i]))
			if err != nil {
				return m, m.setStatus(err.Error(), true)
			}
			return m.switched(reqs)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleSymbolKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		m.mode = modeDashboard
		m.input.Blur()
		return m, nil
	case key.Matches(msg, keys.Enter):
		reqs, err := m.ctrl.SelectSymbol(m.input.Value())
		if err != nil {
			return m, m.setStatus(err.Error(), true)
		}
		m.mode = modeDashboard
		m.input.Blur()
		m.symbol = m.ctrl.Symbol()
		if m.chart != nil {
			// Clear the previous symbol's chart until technical data arrives.
			_, _ = m.chart.Update(nil)
		}
		m.contentDirty = true
		m.viewport.GotoTop()
		return m, fetchAll(m.ctrl, reqs)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleTopicsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back, keys.Quit):
		m.mode = modeDashboard
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.topics)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Enter):
		if m.cursor < len(m.topics) {
			return m, lookupCmd(m.library, m.topics[m.cursor])
		}
	}
	return m, nil
}

func (m Model) switched(reqs []session.Request) (Model, tea.Cmd) {
	m.contentDirty = true
	m.viewport.GotoTop()
	return m, fetchAll(m.ctrl, reqs)
}

// applyArrival merges one settled fetch. Superseded arrivals are dropped
// quietly; failures keep their placeholder and raise a toast.
func (m *Model) applyArrival(a session.Arrival) tea.Cmd {
	changed, err := m.ctrl.Apply(a)
	if err != nil {
		if errors.Is(err, session.ErrSuperseded) {
			return nil
		}
		return m.setStatus(err.Error(), true)
	}
	if changed {
		m.contentDirty = true
	}
	if a.Result.Err != nil {
		return m.setStatus(fmt.Sprintf("%s unavailable: %v", a.Kind, a.Result.Err), true)
	}
	return nil
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	return clearStatusAfter(m.toastTTL, m.statusSeq)
}

func (m *Model) resize() {
	h := m.height - chrome
	if h < 1 {
		h = 1
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, h)
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = h
	}
	if m.surface != nil {
		m.surface.Width = max(m.width-6, 10)
		m.surface.Height = chartHeight
		if m.chart != nil {
			_ = m.surface.Draw(m.chart.Last())
		}
	}
}

package session

import (
	"fmt"
	"strings"

	"SignalDeck/internal/model"
)

// Tab is one dashboard panel selector.
type Tab string

const (
	TabOverview    Tab = "overview"
	TabTechnical   Tab = "technical"
	TabSignals     Tab = "signals"
	TabFundamental Tab = "fundamental"
	TabSentiment   Tab = "sentiment"
	TabExpert      Tab = "expert"
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabOverview, TabTechnical, TabSignals, TabFundamental, TabSentiment, TabExpert}

// DefaultKinds are requested on every symbol load regardless of the active tab.
var DefaultKinds = []model.ResourceKind{model.KindOverview, model.KindTechnical}

// Kinds returns the resources backing the tab.
func (t Tab) Kinds() []model.ResourceKind {
	switch t {
	case TabOverview:
		return []model.ResourceKind{model.KindOverview, model.KindTechnical}
	case TabTechnical:
		return []model.ResourceKind{model.KindTechnical}
	case TabSignals:
		return []model.ResourceKind{model.KindSignals}
	case TabFundamental:
		return []model.ResourceKind{model.KindFundamental}
	case TabSentiment:
		return []model.ResourceKind{model.KindSentiment}
	case TabExpert:
		return []model.ResourceKind{model.KindExpert}
	}
	return nil
}

// Title is the tab label.
func (t Tab) Title() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// ParseTab validates a tab name.
func ParseTab(name string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(name)))
	for _, v := range Tabs {
		if v == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tab %q", name)
}

// TabController tracks the active tab. Exactly one tab is active.
type TabController struct {
	active Tab
}

// NewTabController starts on the overview tab.
func NewTabController() *TabController {
	return &TabController{active: TabOverview}
}

func (c *TabController) Active() Tab { return c.active }

func (c *TabController) IsActive(t Tab) bool { return c.active == t }

// Switch activates name. Unknown names leave the state unchanged.
func (c *TabController) Switch(name string) (Tab, error) {
	t, err := ParseTab(name)
	if err != nil {
		return c.active, err
	}
	c.active = t
	return t, nil
}

// Next activates the tab after the active one, wrapping around.
func (c *TabController) Next() Tab { return c.step(1) }

// Prev activates the tab before the active one, wrapping around.
func (c *TabController) Prev() Tab { return c.step(-1) }

func (c *TabController) step(d int) Tab {
	idx := 0
	for i, t := range Tabs {
		if t == c.active {
			idx = i
			break
		}
	}
	idx = (idx + d + len(Tabs)) % len(Tabs)
	c.active = Tabs[idx]
	return c.active
}

// Package render turns snapshot data into panel descriptions. Renderers are
// pure: they never fetch and never write to the terminal.
package render

// Class is the semantic styling hint of a value.
type Class string

const (
	ClassNone       Class = ""
	ClassPositive   Class = "positive"
	ClassNegative   Class = "negative"
	ClassNeutral    Class = "neutral"
	ClassBuy        Class = "buy"
	ClassSell       Class = "sell"
	ClassHold       Class = "hold"
	ClassOverbought Class = "overbought"
	ClassOversold   Class = "oversold"
	ClassMuted      Class = "muted"
)

// Row is one labelled value. Topic names the education entry for the label.
type Row struct {
	Label string
	Value string
	Class Class
	Topic string
}

// Bar is a horizontal gauge filled to Percent (0-100).
type Bar struct {
	Label   string
	Value   string
	Percent float64
	Class   Class
}

// Section groups rows, a list and free text under a title.
type Section struct {
	Title   string
	Rows    []Row
	Bars    []Bar
	Items   []string
	Ordered bool
	Text    string
}

// Panel describes one dashboard panel. When Placeholder is set the panel has
// no sections and shows only that text.
type Panel struct {
	ID          string
	Title       string
	Loading     bool
	Placeholder string
	Sections    []Section
}

// Loading text shown while a panel's resource is in flight.
const LoadingText = "Loading…"

// Row returns the first row with label across all sections.
func (p Panel) Row(label string) (Row, bool) {
	for _, s := range p.Sections {
		if r, ok := s.Row(label); ok {
			return r, true
		}
	}
	return Row{}, false
}

// Section returns the section with title.
func (p Panel) Section(title string) (Section, bool) {
	for _, s := range p.Sections {
		if s.Title == title {
			return s, true
		}
	}
	return Section{}, false
}

// Row returns the row with label in s.
func (s Section) Row(label string) (Row, bool) {
	for _, r := range s.Rows {
		if r.Label == label {
			return r, true
		}
	}
	return Row{}, false
}

func loading(id, title string) Panel {
	return Panel{ID: id, Title: title, Loading: true, Placeholder: LoadingText}
}

func placeholder(id, title, text string) Panel {
	return Panel{ID: id, Title: title, Placeholder: text}
}

// capList returns the first n items, or all of them when n <= 0.
func capList(items []string, n int) []string {
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}

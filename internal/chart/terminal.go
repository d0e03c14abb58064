package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"SignalDeck/internal/model"
)

// Block elements for sub-character vertical resolution (1/8 to 8/8).
var blockChars = [9]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

const lineRune = '•'

// Terminal draws prices as a filled area of Unicode blocks with the SMA lines
// plotted over it and a price axis on the left. Columns at or above the first
// visible price use Above, columns below use Below.
type Terminal struct {
	Width  int
	Height int
	Above  lipgloss.Color
	Below  lipgloss.Color
	Muted  lipgloss.Color
	SMA20  lipgloss.Color
	SMA50  lipgloss.Color

	view string
}

// Draw renders s into the surface buffer.
func (t *Terminal) Draw(s Series) error {
	muted := lipgloss.NewStyle().Foreground(t.Muted)
	if len(carry(s.Prices)) == 0 {
		t.view = muted.Render("No chart data")
		return nil
	}
	var rows []string
	if t.Width > 0 && t.Height > 0 {
		rows = t.plot(s)
	}
	rows = append(rows, t.legend(s))
	t.view = strings.Join(rows, "\n")
	return nil
}

// View returns the last drawn chart.
func (t *Terminal) View() string { return t.view }

func (t *Terminal) plot(s Series) []string {
	lo, hi := bounds(s.Prices, s.SMA20, s.SMA50)
	top, bottom := fmt.Sprintf("%.2f", hi), fmt.Sprintf("%.2f", lo)
	gutter := max(len(top), len(bottom)) + 1
	width := t.Width - gutter
	if width < 1 {
		gutter, width = 0, t.Width
	}

	prices := carry(columns(s.Prices, width))
	sma20 := columns(s.SMA20, width)
	sma50 := columns(s.SMA50, width)
	sc := newScale(lo, hi, t.Height)

	muted := lipgloss.NewStyle().Foreground(t.Muted)
	above := lipgloss.NewStyle().Foreground(t.Above)
	below := lipgloss.NewStyle().Foreground(t.Below)
	line20 := lipgloss.NewStyle().Foreground(t.SMA20)
	line50 := lipgloss.NewStyle().Foreground(t.SMA50)
	baseline := prices[0]

	rows := make([]string, t.Height)
	for row := range rows {
		var sb strings.Builder
		if gutter > 0 {
			label := ""
			switch row {
			case 0:
				label = top
			case t.Height - 1:
				label = bottom
			}
			sb.WriteString(muted.Render(fmt.Sprintf("%*s ", gutter-1, label)))
		}
		for col, p := range prices {
			switch {
			case sc.on(sma20, col, row):
				sb.WriteString(line20.Render(string(lineRune)))
			case sc.on(sma50, col, row):
				sb.WriteString(line50.Render(string(lineRune)))
			default:
				block := sc.block(p, row)
				if block == ' ' {
					sb.WriteRune(' ')
					continue
				}
				style := above
				if p < baseline {
					style = below
				}
				sb.WriteString(style.Render(string(block)))
			}
		}
		rows[row] = sb.String()
	}
	return rows
}

func (t *Terminal) legend(s Series) string {
	muted := lipgloss.NewStyle().Foreground(t.Muted)
	parts := []string{muted.Render(fmt.Sprintf("%d pts", s.Len()))}
	key := func(c lipgloss.Color, name string, ns []model.Number) {
		if v, ok := lastValid(ns); ok {
			swatch := lipgloss.NewStyle().Foreground(c).Render(string(lineRune))
			parts = append(parts, swatch+" "+muted.Render(fmt.Sprintf("%s $%.2f", name, v)))
		}
	}
	key(t.SMA20, "SMA20", s.SMA20)
	key(t.SMA50, "SMA50", s.SMA50)
	if len(s.Labels) > 0 && s.Labels[0] != "" {
		parts = append(parts, muted.Render(fmt.Sprintf("%s → %s", s.Labels[0], s.Labels[len(s.Labels)-1])))
	}
	return strings.Join(parts, "  ")
}

// scale maps values onto eighth-block levels, height*8 of them. Every value
// sits at least one level up so flat series stay visible.
type scale struct {
	lo, span float64
	height   int
}

func newScale(lo, hi float64, height int) scale {
	span := hi - lo
	if span == 0 {
		span = 1
	}
	return scale{lo: lo, span: span, height: height}
}

func (sc scale) level(v float64) int {
	levels := sc.height * 8
	l := int((v-sc.lo)/sc.span*float64(levels-1)) + 1
	return min(max(l, 1), levels)
}

// block returns the glyph of a column of height v in row, counted from the top.
func (sc scale) block(v float64, row int) rune {
	fill := sc.level(v) - (sc.height-1-row)*8
	if fill <= 0 {
		return ' '
	}
	return blockChars[min(fill, 8)]
}

// on reports whether line passes through row at col.
func (sc scale) on(line []model.Number, col, row int) bool {
	if col >= len(line) || !line[col].Valid {
		return false
	}
	return sc.height-1-(sc.level(line[col].Value)-1)/8 == row
}

// columns reduces ns to at most n points. Each column keeps the last valid
// value of the span it covers, so it reads as that span's close; a span with
// no valid value stays a gap.
func columns(ns []model.Number, n int) []model.Number {
	if len(ns) <= n {
		out := make([]model.Number, len(ns))
		copy(out, ns)
		return out
	}
	out := make([]model.Number, n)
	for i := range out {
		start, end := i*len(ns)/n, (i+1)*len(ns)/n
		for j := end - 1; j >= start; j-- {
			if ns[j].Valid {
				out[i] = ns[j]
				break
			}
		}
	}
	return out
}

// carry fills gaps with the last valid value. Leading gaps take the first
// valid value; a series with none yields nil.
func carry(ns []model.Number) []float64 {
	first := -1
	for i, n := range ns {
		if n.Valid {
			first = i
			break
		}
	}
	if first < 0 {
		return nil
	}
	out := make([]float64, len(ns))
	prev := ns[first].Value
	for i, n := range ns {
		if n.Valid {
			prev = n.Value
		}
		out[i] = prev
	}
	return out
}

// bounds returns the smallest and largest valid value across lines.
func bounds(lines ...[]model.Number) (lo, hi float64) {
	seen := false
	for _, line := range lines {
		for _, n := range line {
			if !n.Valid {
				continue
			}
			if !seen || n.Value < lo {
				lo = n.Value
			}
			if !seen || n.Value > hi {
				hi = n.Value
			}
			seen = true
		}
	}
	return lo, hi
}

func lastValid(ns []model.Number) (float64, bool) {
	for i := len(ns) - 1; i >= 0; i-- {
		if ns[i].Valid {
			return ns[i].Value, true
		}
	}
	return 0, false
}

// Package chart adapts technical chart data to a drawing surface.
package chart

import (
	"errors"

	"SignalDeck/internal/model"
)

// MaxPoints is the number of most recent points handed to a surface.
const MaxPoints = 100

// Series is the surface-ready form of the price chart. All slices have the
// same length; an absent SMA line is nil and gaps are invalid Numbers.
type Series struct {
	Labels []string
	Prices []model.Number
	SMA20  []model.Number
	SMA50  []model.Number
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.Prices) }

// Surface is the charting capability.
type Surface interface {
	Draw(s Series) error
}

// Adapter truncates chart data and forwards it to a Surface.
type Adapter struct {
	surface Surface
	max     int
	last    Series
}

// NewAdapter creates an adapter drawing on surface.
func NewAdapter(surface Surface) *Adapter {
	return &Adapter{surface: surface, max: MaxPoints}
}

// Last returns the most recently drawn series.
func (a *Adapter) Last() Series { return a.last }

// Update converts data and draws it. Nil data clears the surface.
func (a *Adapter) Update(data *model.ChartData) (Series, error) {
	if a.surface == nil {
		return Series{}, errors.New("chart: no surface")
	}
	s := Convert(data, a.max)
	if err := a.surface.Draw(s); err != nil {
		return s, err
	}
	a.last = s
	return s, nil
}

// Convert keeps the most recent max points. Dates and SMA lines shorter than
// the price series are aligned to its tail; an SMA line with no points stays
// empty.
func Convert(data *model.ChartData, max int) Series {
	if data == nil || len(data.Prices) == 0 {
		return Series{}
	}
	n := len(data.Prices)
	keep := n
	if max > 0 && keep > max {
		keep = max
	}
	s := Series{Prices: tail(data.Prices, keep)}

	s.Labels = make([]string, keep)
	dates := data.Dates
	if len(dates) > n {
		dates = dates[:n]
	}
	alignTail(s.Labels, dates)

	s.SMA20 = line(data.SMA20, n, keep)
	s.SMA50 = line(data.SMA50, n, keep)
	return s
}

func line(src []model.Number, n, keep int) []model.Number {
	if len(src) == 0 {
		return nil
	}
	if len(src) > n {
		src = src[:n]
	}
	out := make([]model.Number, keep)
	alignTail(out, src)
	return out
}

func tail[T any](src []T, keep int) []T {
	out := make([]T, keep)
	copy(out, src[len(src)-keep:])
	return out
}

// alignTail copies the end of src into the end of dst.
func alignTail[T any](dst, src []T) {
	if len(src) > len(dst) {
		src = src[len(src)-len(dst):]
	}
	copy(dst[len(dst)-len(src):], src)
}

package chart

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SignalDeck/internal/model"
)

type recordingSurface struct {
	drawn []Series
	err   error
}

func (r *recordingSurface) Draw(s Series) error {
	if r.err != nil {
		return r.err
	}
	r.drawn = append(r.drawn, s)
	return nil
}

func chartData(n int) *model.ChartData {
	d := &model.ChartData{}
	for i := 0; i < n; i++ {
		d.Dates = append(d.Dates, fmt.Sprintf("d%03d", i))
		d.Prices = append(d.Prices, model.Num(float64(i)))
	}
	return d
}

func TestUpdate_TruncatesToMostRecent(t *testing.T) {
	data := chartData(250)
	data.SMA20 = model.Nums(model.Floats(data.Prices))

	surface := &recordingSurface{}
	s, err := NewAdapter(surface).Update(data)
	require.NoError(t, err)
	require.Len(t, surface.drawn, 1)

	assert.Equal(t, MaxPoints, s.Len())
	assert.Equal(t, "d150", s.Labels[0])
	assert.Equal(t, "d249", s.Labels[MaxPoints-1])
	assert.Equal(t, 150.0, s.Prices[0].Value)
	assert.Equal(t, 249.0, s.Prices[MaxPoints-1].Value)
	assert.Len(t, s.SMA20, MaxPoints)
	assert.Equal(t, 150.0, s.SMA20[0].Value)
	assert.Nil(t, s.SMA50)
}

func TestConvert_ShortSeriesUntouched(t *testing.T) {
	s := Convert(chartData(3), MaxPoints)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"d000", "d001", "d002"}, s.Labels)
}

func TestConvert_ShortSMAAlignedToTail(t *testing.T) {
	data := chartData(5)
	data.SMA50 = []model.Number{model.Num(2.5), {}, model.Num(3.5)}

	s := Convert(data, MaxPoints)
	require.Len(t, s.SMA50, 5)
	assert.False(t, s.SMA50[0].Valid)
	assert.False(t, s.SMA50[1].Valid)
	assert.Equal(t, 2.5, s.SMA50[2].Value)
	assert.False(t, s.SMA50[3].Valid)
	assert.Equal(t, 3.5, s.SMA50[4].Value)
}

func TestConvert_Empty(t *testing.T) {
	assert.Equal(t, 0, Convert(nil, MaxPoints).Len())
	assert.Equal(t, 0, Convert(&model.ChartData{Dates: []string{"a"}}, MaxPoints).Len())
}

func TestUpdate_SurfaceError(t *testing.T) {
	a := NewAdapter(&recordingSurface{err: errors.New("closed")})
	_, err := a.Update(chartData(3))
	assert.Error(t, err)
	assert.Equal(t, 0, a.Last().Len())
}

func TestTerminal_Draw(t *testing.T) {
	term := &Terminal{Width: 20, Height: 4, Above: "#00FF00", Below: "#FF0000", Muted: "#888888", SMA20: "#00CED1"}
	data := chartData(40)
	data.Prices[3] = model.Number{}
	data.SMA20 = []model.Number{model.Num(12.25)}

	_, err := NewAdapter(term).Update(data)
	require.NoError(t, err)
	view := ansi.Strip(term.View())
	assert.Contains(t, view, "40 pts")
	assert.Contains(t, view, "SMA20 $12.25")
	assert.NotContains(t, view, "SMA50")
	assert.Equal(t, 4, strings.Count(view, "\n"))

	lines := strings.Split(view, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "39.00 "), "top axis label: %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[3], " 0.00 "), "bottom axis label: %q", lines[3])
	assert.Contains(t, strings.Join(lines[:4], "\n"), string(lineRune), "SMA20 drawn inside the plot")

	require.NoError(t, term.Draw(Series{}))
	assert.Contains(t, term.View(), "No chart data")
}

func TestTerminal_DrawBeforeResize(t *testing.T) {
	term := &Terminal{}
	require.NoError(t, term.Draw(Convert(chartData(5), MaxPoints)))
	assert.Equal(t, "5 pts  d000 → d004", ansi.Strip(term.View()))
}

func TestColumns_KeepBucketClose(t *testing.T) {
	nums := []model.Number{model.Num(1), model.Num(2), model.Num(3), {}}
	assert.Equal(t, []model.Number{model.Num(2), model.Num(3)}, columns(nums, 2))
	assert.Equal(t, []model.Number{{}, {}}, columns([]model.Number{{}, {}, {}, {}}, 2))
	assert.Equal(t, nums, columns(nums, 10))
}

func TestCarry(t *testing.T) {
	assert.Equal(t, []float64{2, 2, 2, 5}, carry([]model.Number{{}, model.Num(2), {}, model.Num(5)}))
	assert.Nil(t, carry([]model.Number{{}, {}}))
}

package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SignalDeck/internal/model"
)

func linearBars(n int, start, step float64) []model.OHLCV {
	bars := make([]model.OHLCV, n)
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		p := start + float64(i)*step
		bars[i] = model.OHLCV{
			Time:   t0.AddDate(0, 0, i),
			Open:   p,
			High:   p + 1,
			Low:    p - 1,
			Close:  p,
			Volume: 1_000_000,
		}
	}
	return bars
}

func TestSMA(t *testing.T) {
	v, err := SMA([]float64{1, 2, 3, 4, 5}, 5)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v, 1e-9)

	v, err = SMA([]float64{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, v, 1e-9)

	_, err = SMA([]float64{1, 2}, 3)
	assert.Error(t, err)
	_, err = SMA([]float64{1, 2}, 0)
	assert.Error(t, err)
}

func TestSMASeries_WarmupAbsent(t *testing.T) {
	got := SMASeries([]float64{2, 4, 6, 8}, 3)
	require.Len(t, got, 4)
	assert.False(t, got[0].Valid)
	assert.False(t, got[1].Valid)
	assert.Equal(t, model.Num(4), got[2])
	assert.Equal(t, model.Num(6), got[3])
}

func TestRSI(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
		want   float64
	}{
		{"insufficient data", []float64{1, 2, 3}, 50},
		{"only gains", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RSI(tt.closes, 14)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	down := make([]float64, 20)
	for i := range down {
		down[i] = float64(100 - i)
	}
	got, err := RSI(down, 14)
	require.NoError(t, err)
	assert.InDelta(t, 0, got, 1e-9)

	_, err = RSI(down, 0)
	assert.Error(t, err)
}

func TestRange52wAndPosition(t *testing.T) {
	bars := linearBars(300, 100, 1)
	high, low, err := Range52w(bars)
	require.NoError(t, err)
	// Only the last 252 bars count: closes 148..399.
	assert.InDelta(t, 400, high, 1e-9)
	assert.InDelta(t, 147, low, 1e-9)

	_, _, err = Range52w(nil)
	assert.Error(t, err)

	pos, err := Position(175, 200, 150)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, pos, 1e-9)
	pos, _ = Position(250, 200, 150)
	assert.InDelta(t, 1.0, pos, 1e-9)
	pos, _ = Position(10, 10, 10)
	assert.InDelta(t, 0.5, pos, 1e-9)
	_, err = Position(1, 1, 2)
	assert.Error(t, err)
}

func TestSupportResistance(t *testing.T) {
	assert.Empty(t, SupportResistance(linearBars(5, 100, 1), 20).Support)

	sr := SupportResistance(linearBars(30, 100, 1), 20)
	assert.NotEmpty(t, sr.Support)
	assert.NotEmpty(t, sr.Resistance)
	assert.LessOrEqual(t, len(sr.Support), 3)
	assert.LessOrEqual(t, len(sr.Resistance), 3)
	for i := 1; i < len(sr.Resistance); i++ {
		assert.Less(t, sr.Resistance[i-1].Value, sr.Resistance[i].Value)
	}
	for i := 1; i < len(sr.Support); i++ {
		assert.Greater(t, sr.Support[i-1].Value, sr.Support[i].Value)
	}
}

func TestMACD_Uptrend(t *testing.T) {
	assert.False(t, MACD([]float64{1, 2, 3}).MACD.Valid)

	m := MACD(linearCloses(60, 100, 1))
	require.True(t, m.MACD.Valid)
	assert.Greater(t, m.MACD.Value, 0.0)
}

func TestBollinger(t *testing.T) {
	flat := make([]float64, 20)
	for i := range flat {
		flat[i] = 50
	}
	bands, pb := Bollinger(flat, 20, 2)
	assert.Equal(t, model.Num(50), bands.Middle)
	assert.Equal(t, bands.Upper, bands.Lower)
	assert.InDelta(t, 0.5, pb, 1e-9)

	_, pb = Bollinger([]float64{1}, 20, 2)
	assert.InDelta(t, 0.5, pb, 1e-9)
}

func TestVolume(t *testing.T) {
	bars := linearBars(25, 100, 1)
	bars[len(bars)-1].Volume = 3_000_000
	va, sig := Volume(bars)
	assert.Equal(t, VolumeBullishStrong, sig)
	assert.Greater(t, va.Ratio.Value, 1.2)
	assert.Equal(t, model.Num(3_000_000), va.Current)

	bars = linearBars(25, 200, -1)
	bars[len(bars)-1].Volume = 100_000
	_, sig = Volume(bars)
	assert.Equal(t, VolumeBearishWeak, sig)

	_, sig = Volume(bars[:1])
	assert.Equal(t, VolumeNeutral, sig)
}

func TestCompute(t *testing.T) {
	_, err := Compute(linearBars(1, 100, 1))
	require.Error(t, err)

	a, err := Compute(linearBars(120, 100, 0.5))
	require.NoError(t, err)
	ind := a.Indicators
	assert.Equal(t, model.Num(159.5), ind.CurrentPrice)
	assert.Equal(t, model.Num(0.5), ind.PriceChange)
	assert.True(t, ind.SMA.SMA20.Valid)
	assert.True(t, ind.SMA.SMA50.Valid)
	assert.False(t, ind.SMA.SMA200.Valid, "SMA200 needs 200 bars")
	assert.InDelta(t, 100, ind.RSI.Value, 1e-9)

	require.Len(t, a.Chart.Prices, 120)
	assert.Len(t, a.Chart.Dates, 120)
	assert.Equal(t, "2025-01-01", a.Chart.Dates[0])
	assert.False(t, a.Chart.SMA50[48].Valid)
	assert.True(t, a.Chart.SMA50[49].Valid)
}

func linearCloses(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

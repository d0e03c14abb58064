package calculator

import (
	"math"

	"github.com/markcheno/go-talib"
	"gonum.org/v1/gonum/stat"

	"SignalDeck/internal/model"
)

// macdLookback is the number of closes before the 12/26/9 MACD settles.
const macdLookback = 26 + 9 - 1

// MACD computes the 12/26 EMA difference, its 9-period signal line and the
// histogram at the last close.
func MACD(closes []float64) model.MACD {
	if len(closes) <= macdLookback {
		return model.MACD{}
	}
	line, signal, hist := talib.Macd(closes, 12, 26, 9)
	last := len(closes) - 1
	if math.IsNaN(line[last]) || math.IsNaN(signal[last]) {
		return model.MACD{}
	}
	return model.MACD{
		MACD:      model.Num(Round(line[last], 4)),
		Signal:    model.Num(Round(signal[last], 4)),
		Histogram: model.Num(Round(hist[last], 4)),
	}
}

// Bollinger computes the bands at k standard deviations around the SMA and
// the %B position of the last close.
func Bollinger(closes []float64, period int, k float64) (model.BollingerBands, float64) {
	if period <= 1 || len(closes) < period {
		return model.BollingerBands{}, 0.5
	}
	ub, mb, lb := talib.BBands(closes, period, k, k, talib.SMA)
	last := len(closes) - 1
	upper, mid, lower := ub[last], mb[last], lb[last]
	if math.IsNaN(upper) || math.IsNaN(lower) {
		return model.BollingerBands{}, 0.5
	}

	percentB := 0.5
	if upper != lower {
		percentB = (closes[len(closes)-1] - lower) / (upper - lower)
	}
	return model.BollingerBands{
		Upper:  model.Num(Round(upper, 2)),
		Middle: model.Num(Round(mid, 2)),
		Lower:  model.Num(Round(lower, 2)),
	}, percentB
}

// Volume signals derived from the price move and the volume ratio.
const (
	VolumeBullishStrong = "bullish_strong"
	VolumeBullishWeak   = "bullish_weak"
	VolumeBearishStrong = "bearish_strong"
	VolumeBearishWeak   = "bearish_weak"
	VolumeNeutral       = "neutral"
)

// Volume compares the last bar's volume to its 20-bar average and reads it
// against the last price move.
func Volume(bars []model.OHLCV) (model.VolumeAnalysis, string) {
	if len(bars) < 2 {
		return model.VolumeAnalysis{Interpretation: "Not enough volume history"}, VolumeNeutral
	}
	vols := make([]float64, len(bars))
	for i, b := range bars {
		vols[i] = b.Volume
	}
	current := vols[len(vols)-1]
	period := 20
	if len(vols) < period {
		period = len(vols)
	}
	avg := stat.Mean(vols[len(vols)-period:], nil)
	ratio := 1.0
	if avg > 0 {
		ratio = current / avg
	}

	change := bars[len(bars)-1].Close - bars[len(bars)-2].Close
	signal, text := VolumeNeutral, "Normal volume activity"
	switch {
	case change > 0 && ratio > 1.2:
		signal, text = VolumeBullishStrong, "Price up on high volume - Strong bullish signal"
	case change > 0 && ratio < 0.8:
		signal, text = VolumeBullishWeak, "Price up on low volume - Weak bullish signal"
	case change < 0 && ratio > 1.2:
		signal, text = VolumeBearishStrong, "Price down on high volume - Strong bearish signal"
	case change < 0 && ratio < 0.8:
		signal, text = VolumeBearishWeak, "Price down on low volume - Weak bearish signal"
	}
	return model.VolumeAnalysis{
		Current:        model.Num(math.Round(current)),
		Avg20:          model.Num(math.Round(avg)),
		Ratio:          model.Num(Round(ratio, 2)),
		Interpretation: text,
	}, signal
}

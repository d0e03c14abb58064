package calculator

import (
	"errors"
	"math"
	"sort"

	"SignalDeck/internal/model"
)

// tradingDaysPerYear is the 52-week lookback in daily bars.
const tradingDaysPerYear = 252

// Range52w scans the most recent 252 bars and returns the high and low.
func Range52w(bars []model.OHLCV) (high, low float64, err error) {
	if len(bars) == 0 {
		return 0, 0, errors.New("no daily bars provided")
	}
	start := len(bars) - tradingDaysPerYear
	if start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, b := range bars[start:] {
		high = math.Max(high, b.High)
		low = math.Min(low, b.Low)
	}
	return high, low, nil
}

// Position returns where current sits within [low, high], clamped to 0..1.
func Position(current, high, low float64) (float64, error) {
	if high == low {
		return 0.5, nil
	}
	if high < low {
		return 0, errors.New("high must be >= low")
	}
	return math.Min(1, math.Max(0, (current-low)/(high-low))), nil
}

// SupportResistance finds local swing lows and highs over the last lookback
// bars and adds the classic pivot levels of the final bar. It returns at
// most three supports (nearest first) and three resistances (ascending).
func SupportResistance(bars []model.OHLCV, lookback int) model.SupportResistance {
	sr := model.SupportResistance{Support: []model.Number{}, Resistance: []model.Number{}}
	if lookback < 3 || len(bars) < lookback {
		return sr
	}
	recent := bars[len(bars)-lookback:]

	var supports, resistances []float64
	for i := 1; i < len(recent)-1; i++ {
		if recent[i].High > recent[i-1].High && recent[i].High > recent[i+1].High {
			resistances = append(resistances, recent[i].High)
		}
		if recent[i].Low < recent[i-1].Low && recent[i].Low < recent[i+1].Low {
			supports = append(supports, recent[i].Low)
		}
	}

	last := bars[len(bars)-1]
	pivot := (last.High + last.Low + last.Close) / 3
	spread := last.High - last.Low
	resistances = append(resistances, 2*pivot-last.Low, pivot+spread)
	supports = append(supports, 2*pivot-last.High, pivot-spread)

	res := uniqueRounded(resistances)
	sort.Float64s(res)
	if len(res) > 3 {
		res = res[len(res)-3:]
	}
	sup := uniqueRounded(supports)
	sort.Sort(sort.Reverse(sort.Float64Slice(sup)))
	if len(sup) > 3 {
		sup = sup[:3]
	}
	sr.Resistance = model.Nums(res)
	sr.Support = model.Nums(sup)
	return sr
}

func uniqueRounded(vs []float64) []float64 {
	seen := make(map[float64]bool, len(vs))
	out := make([]float64, 0, len(vs))
	for _, v := range vs {
		r := Round(v, 2)
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

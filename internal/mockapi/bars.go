package mockapi

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"SignalDeck/internal/calculator"
	"SignalDeck/internal/model"
)

// historyDays is the number of daily bars generated per symbol; enough for
// SMA200 and the 52-week range.
const historyDays = 300

// rngFor returns a generator that depends only on seed, symbol and salt, so
// each resource is reproducible regardless of request order.
func rngFor(seed int64, symbol, salt string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(symbol))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(salt))
	return rand.New(rand.NewSource(seed ^ int64(h.Sum64())))
}

// generateBars builds a random-walk daily series ending on the last trading
// day at or before end. The last close is p.Price and the one before it is
// p.Price - p.Change.
func generateBars(p Profile, seed int64, count int, end time.Time) []model.OHLCV {
	if count < 2 {
		count = 2
	}
	rng := rngFor(seed, p.Symbol, "bars")

	walk := make([]float64, count-1)
	price := 1.0
	for i := range walk {
		price *= 1 + p.Volatility*rng.NormFloat64()
		walk[i] = price
	}
	scale := (p.Price - p.Change) / walk[len(walk)-1]
	closes := make([]float64, count)
	for i, w := range walk {
		closes[i] = w * scale
	}
	closes[count-1] = p.Price

	dates := tradingDays(end, count)
	bars := make([]model.OHLCV, count)
	for i, c := range closes {
		open := c * (1 + p.Volatility*0.3*rng.NormFloat64())
		if i > 0 {
			open = closes[i-1]
		}
		spread := c * p.Volatility * (0.5 + rng.Float64())
		bars[i] = model.OHLCV{
			Time:   dates[i],
			Open:   calculator.Round(open, 2),
			High:   calculator.Round(math.Max(open, c)+spread*rng.Float64(), 2),
			Low:    calculator.Round(math.Min(open, c)-spread*rng.Float64(), 2),
			Close:  calculator.Round(c, 2),
			Volume: math.Round(p.AvgVolume * (0.6 + 0.8*rng.Float64())),
		}
	}
	return bars
}

// tradingDays returns count weekdays ending at or before end, oldest first.
func tradingDays(end time.Time, count int) []time.Time {
	d := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	out := make([]time.Time, count)
	for i := count - 1; i >= 0; i-- {
		for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			d = d.AddDate(0, 0, -1)
		}
		out[i] = d
		d = d.AddDate(0, 0, -1)
	}
	return out
}

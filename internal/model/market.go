package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds raw daily bars for one symbol.
type PriceSeries struct {
	Symbol    string
	DailyBars []OHLCV
	FetchedAt time.Time
}

// Closes extracts closing prices in bar order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.DailyBars))
	for i, b := range s.DailyBars {
		closes[i] = b.Close
	}
	return closes
}

package calculator

import (
	"errors"

	"SignalDeck/internal/model"
)

// Analysis is the full indicator set computed from one bar series, plus the
// intermediate readings the signal engine scores.
type Analysis struct {
	Indicators   *model.Indicators
	Chart        *model.ChartData
	VolumeSignal string
	PercentB     float64
	High52w      float64
	Low52w       float64
}

// Compute derives every technical indicator from daily bars. It needs at
// least two bars; indicators whose window is longer than the series are
// left absent.
func Compute(bars []model.OHLCV) (*Analysis, error) {
	if len(bars) < 2 {
		return nil, errors.New("at least two daily bars are required")
	}
	series := model.PriceSeries{DailyBars: bars}
	closes := series.Closes()
	last := closes[len(closes)-1]
	prev := closes[len(closes)-2]

	rsi, err := RSI(closes, 14)
	if err != nil {
		return nil, err
	}
	bands, percentB := Bollinger(closes, 20, 2)
	volume, volSignal := Volume(bars)
	high, low, err := Range52w(bars)
	if err != nil {
		return nil, err
	}

	ind := &model.Indicators{
		CurrentPrice:       model.Num(Round(last, 2)),
		PriceChange:        model.Num(Round(last-prev, 2)),
		PriceChangePercent: model.Num(Round((last-prev)/prev*100, 2)),
		RSI:                model.Num(Round(rsi, 2)),
		MACD:               MACD(closes),
		SMA: model.SMA{
			SMA20:  smaOrAbsent(closes, 20),
			SMA50:  smaOrAbsent(closes, 50),
			SMA200: smaOrAbsent(closes, 200),
		},
		VolumeAnalysis:    volume,
		BollingerBands:    bands,
		SupportResistance: SupportResistance(bars, 20),
	}

	dates := make([]string, len(bars))
	for i, b := range bars {
		dates[i] = b.Time.Format("2006-01-02")
	}
	chart := &model.ChartData{
		Dates:  dates,
		Prices: model.Nums(closes),
		SMA20:  SMASeries(closes, 20),
		SMA50:  SMASeries(closes, 50),
	}

	return &Analysis{
		Indicators:   ind,
		Chart:        chart,
		VolumeSignal: volSignal,
		PercentB:     percentB,
		High52w:      high,
		Low52w:       low,
	}, nil
}

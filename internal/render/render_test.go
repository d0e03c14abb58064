package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SignalDeck/internal/collector"
	"SignalDeck/internal/model"
	"SignalDeck/internal/snapshot"
)

func mustRow(t *testing.T, p Panel, label string) Row {
	t.Helper()
	r, ok := p.Row(label)
	require.True(t, ok, "row %q missing in panel %s", label, p.ID)
	return r
}

func mustSectionRow(t *testing.T, p Panel, title, label string) Row {
	t.Helper()
	s, ok := p.Section(title)
	require.True(t, ok, "section %q missing in panel %s", title, p.ID)
	r, ok := s.Row(label)
	require.True(t, ok, "row %q missing in section %q", label, title)
	return r
}

func TestOverview_IBM(t *testing.T) {
	s := snapshot.New("IBM", 1)
	_, err := s.Merge(collector.Success(model.KindOverview, "IBM", &model.Overview{
		Name:     "International Business Machines",
		Symbol:   "IBM",
		Exchange: "NYSE",
		CurrentPrice: model.CurrentPrice{
			Price:              model.Num(288.42),
			PriceChange:        model.Num(1.7),
			PriceChangePercent: model.Num(0.59),
		},
		KeyStats: model.KeyStats{
			MarketCap:     model.Num(264e9),
			PERatio:       model.Num(22.45),
			DividendYield: model.Num(0.0452),
		},
	}))
	require.NoError(t, err)

	p := Overview(OverviewOf(s))
	assert.False(t, p.Loading)
	assert.Equal(t, "International Business Machines", p.Title)
	assert.Equal(t, "IBM • NYSE", mustRow(t, p, "Listing").Value)

	assert.Equal(t, "$288.42", mustRow(t, p, "Price").Value)
	change := mustRow(t, p, "Change")
	assert.Equal(t, "+1.70", change.Value)
	assert.Equal(t, ClassPositive, change.Class)
	pct := mustRow(t, p, "Change %")
	assert.Equal(t, "+0.59%", pct.Value)
	assert.Equal(t, ClassPositive, pct.Class)

	assert.Equal(t, "$264.00B", mustRow(t, p, "Market Cap").Value)
	assert.Equal(t, "22.45", mustRow(t, p, "P/E Ratio").Value)
	assert.Equal(t, "4.52%", mustRow(t, p, "Dividend Yield").Value)
	assert.Equal(t, "--", mustRow(t, p, "52W Range").Value)
}

func TestOverview_NegativeChange(t *testing.T) {
	p := Overview(OverviewInput{
		Symbol: "AAPL",
		Price:  &snapshot.Price{Value: model.Num(190), Change: model.Num(-2.35), ChangePercent: model.Num(-1.22)},
	})
	change := mustRow(t, p, "Change")
	assert.Equal(t, "-2.35", change.Value)
	assert.Equal(t, ClassNegative, change.Class)
	assert.Equal(t, "-1.22%", mustRow(t, p, "Change %").Value)
	assert.Equal(t, "N/A", mustRow(t, p, "Market Cap").Value)
}

func TestOverview_Loading(t *testing.T) {
	p := Overview(OverviewInput{Symbol: "IBM", State: snapshot.StatePending})
	assert.True(t, p.Loading)
	assert.Equal(t, LoadingText, p.Placeholder)
}

func TestOverview_FailedShowsPlaceholderValues(t *testing.T) {
	s := snapshot.New("IBM", 1)
	_, _ = s.Merge(collector.Failure(model.KindOverview, "IBM", &collector.FetchError{Class: collector.NetworkError}))

	p := Overview(OverviewOf(s))
	assert.False(t, p.Loading)
	assert.Equal(t, "N/A", mustRow(t, p, "Price").Value)
	assert.Equal(t, "--", mustRow(t, p, "Change").Value)
	assert.Equal(t, "N/A", mustRow(t, p, "Market Cap").Value)
	assert.Equal(t, "--", mustRow(t, p, "P/E Ratio").Value)
}

func TestTechnical_Overbought(t *testing.T) {
	p := Technical(&model.Indicators{RSI: model.Num(81.79)})

	rsi := mustRow(t, p, "RSI")
	assert.Equal(t, "81.79", rsi.Value)
	assert.Equal(t, ClassOverbought, rsi.Class)
	assert.Equal(t, "Overbought", mustRow(t, p, "Status").Value)

	assert.Equal(t, "0.000", mustRow(t, p, "MACD").Value)
	assert.Equal(t, "N/A", mustRow(t, p, "SMA 20").Value)
	assert.Equal(t, "N/A", mustRow(t, p, "Current").Value)
	assert.Equal(t, "1.00x", mustRow(t, p, "Ratio").Value)
	assert.Equal(t, "0.000", mustSectionRow(t, p, "MACD", "Signal").Value)
	assert.Equal(t, "Normal volume", mustSectionRow(t, p, "Volume", "Signal").Value)
	assert.Equal(t, "N/A", mustRow(t, p, "Resistance").Value)
}

func TestTechnical_FailedFetchRendersDefaults(t *testing.T) {
	s := snapshot.New("IBM", 1)
	assert.True(t, All(s).Technical.Loading)

	_, err := s.Merge(collector.Failure(model.KindTechnical, "IBM", &collector.FetchError{Class: collector.NetworkError}))
	require.NoError(t, err)

	p := All(s).Technical
	assert.False(t, p.Loading)
	assert.Empty(t, p.Placeholder)
	assert.Equal(t, "50.00", mustRow(t, p, "RSI").Value)
	assert.Equal(t, "Neutral", mustRow(t, p, "Status").Value)
	assert.Equal(t, "N/A", mustRow(t, p, "SMA 20").Value)
	assert.Equal(t, "1.00x", mustRow(t, p, "Ratio").Value)
}

func TestTechnical_FullIndicators(t *testing.T) {
	ind := &model.Indicators{
		RSI:  model.Num(45.5),
		MACD: model.MACD{MACD: model.Num(2.1014), Signal: model.Num(1.5), Histogram: model.Num(-0.25)},
		SMA:  model.SMA{SMA20: model.Num(285.1), SMA50: model.Num(270.456)},
		VolumeAnalysis: model.VolumeAnalysis{
			Current: model.Num(4372457), Avg20: model.Num(5.4e6), Ratio: model.Num(0.81), Interpretation: "Below average",
		},
		SupportResistance: model.SupportResistance{
			Support:    model.Nums([]float64{286.05}),
			Resistance: model.Nums([]float64{292.05, 295.67}),
		},
		SignalStrength: model.SignalStrength{
			Strength: model.Num(-37.5), Action: "WEAK_SELL", Confidence: model.Num(23),
			Signals: []string{"a", "b", "c", "d", "e", "f", "g"},
		},
	}
	p := Technical(ind)

	assert.Equal(t, "Neutral", mustRow(t, p, "Status").Value)
	assert.Equal(t, "2.101", mustRow(t, p, "MACD").Value)
	hist := mustRow(t, p, "Histogram")
	assert.Equal(t, "-0.250", hist.Value)
	assert.Equal(t, ClassNegative, hist.Class)
	assert.Equal(t, "$285.10", mustRow(t, p, "SMA 20").Value)
	assert.Equal(t, "$270.46", mustRow(t, p, "SMA 50").Value)
	assert.Equal(t, "N/A", mustRow(t, p, "SMA 200").Value)
	assert.Equal(t, "4.37M", mustRow(t, p, "Current").Value)
	assert.Equal(t, "0.81x", mustRow(t, p, "Ratio").Value)
	assert.Equal(t, "$292.05 | $295.67", mustRow(t, p, "Resistance").Value)
	assert.Equal(t, "$286.05", mustRow(t, p, "Support").Value)

	strength, ok := p.Section("Signal Strength")
	require.True(t, ok)
	assert.Len(t, strength.Items, StrengthSignalCap)
	require.Len(t, strength.Bars, 1)
	assert.Equal(t, 37.5, strength.Bars[0].Percent)
	assert.Equal(t, ClassNegative, strength.Bars[0].Class)
	assert.Equal(t, ClassSell, mustRow(t, p, "Action").Class)
	assert.Equal(t, "23.0%", mustRow(t, p, "Confidence").Value)
}

func TestSignals_FailureDoesNotBlockTechnical(t *testing.T) {
	s := snapshot.New("IBM", 1)
	_, _ = s.Merge(collector.Failure(model.KindSignals, "IBM", &collector.FetchError{Class: collector.HTTPStatusError, Status: 500}))
	_, _ = s.Merge(collector.Success(model.KindTechnical, "IBM", &model.Technical{
		Indicators: &model.Indicators{RSI: model.Num(81.79)},
	}))

	set := All(s)
	assert.Equal(t, NoSignals, set.Signals.Placeholder)
	assert.False(t, set.Signals.Loading)
	assert.Empty(t, set.Signals.Sections)
	assert.Equal(t, "81.79", mustRow(t, set.Technical, "RSI").Value)
}

func TestSignals_Rendered(t *testing.T) {
	p := Signals(&model.TradeSignal{
		Signal:          "STRONG_BUY",
		Confidence:      model.Num(72.46),
		Strength:        model.Num(61.26),
		Reasoning:       []string{"RSI recovering", "MACD bullish crossover"},
		TechnicalSignal: "BULLISH",
		SentimentSignal: "BEARISH",
	}, snapshot.StateLoaded)

	action := mustRow(t, p, "Action")
	assert.Equal(t, "STRONG_BUY", action.Value)
	assert.Equal(t, ClassBuy, action.Class)
	assert.Equal(t, "72.5%", mustRow(t, p, "Confidence").Value)
	assert.Equal(t, "61.3", mustRow(t, p, "Strength").Value)

	reasons, ok := p.Section("Reasoning")
	require.True(t, ok)
	assert.True(t, reasons.Ordered)
	assert.Equal(t, []string{"RSI recovering", "MACD bullish crossover"}, reasons.Items)

	assert.Equal(t, ClassPositive, mustRow(t, p, "Technical").Class)
	assert.Equal(t, "NEUTRAL", mustRow(t, p, "Fundamental").Value)
	assert.Equal(t, ClassNegative, mustRow(t, p, "Sentiment").Class)
}

func TestAnalysisPlaceholders(t *testing.T) {
	assert.Equal(t, NoFundamental, Fundamental(nil, snapshot.StateLoaded).Placeholder)
	assert.Equal(t, NoSentiment, Sentiment(nil, snapshot.StateFailed).Placeholder)
	assert.Equal(t, NoExpert, Expert(&model.Expert{}, snapshot.StateLoaded).Placeholder)
	assert.True(t, Fundamental(nil, snapshot.StatePending).Loading)
	assert.True(t, Signals(nil, snapshot.StateIdle).Loading)
}

func TestFundamental_Metrics(t *testing.T) {
	p := Fundamental(&model.FundamentalAnalysis{
		Metrics: model.FundamentalMetrics{
			PERatio:       model.Num(22.456),
			ProfitMargin:  model.Num(-0.1234),
			RevenueGrowth: model.Num(0.05),
		},
		Scores:         model.FundamentalScores{Overall: model.Num(68.2)},
		Interpretation: "Solid fundamentals",
	}, snapshot.StateLoaded)

	pe := mustRow(t, p, "P/E Ratio")
	assert.Equal(t, "22.46", pe.Value)
	assert.Equal(t, ClassPositive, pe.Class)
	margin := mustRow(t, p, "Profit Margin")
	assert.Equal(t, "-0.12", margin.Value)
	assert.Equal(t, ClassNegative, margin.Class)
	peg := mustRow(t, p, "PEG Ratio")
	assert.Equal(t, "N/A", peg.Value)
	assert.Equal(t, ClassMuted, peg.Class)

	interp, ok := p.Section("Interpretation")
	require.True(t, ok)
	assert.Equal(t, "Solid fundamentals", interp.Text)
}

func TestSentiment_HistoryCapped(t *testing.T) {
	hist := make([]model.SentimentPoint, 15)
	for i := range hist {
		hist[i] = model.SentimentPoint{Date: "2024-06-01", Normalized: model.Num(float64(i) / 10), Count: model.Num(3)}
	}
	p := Sentiment(&model.SentimentAnalysis{
		Score:  model.Num(0.35),
		Trend:  "improving",
		Scores: model.SentimentScores{Historical: hist},
	}, snapshot.StateLoaded)

	history, ok := p.Section("History")
	require.True(t, ok)
	assert.Len(t, history.Rows, SentimentHistoryCap)
	assert.Equal(t, "0.00 (3)", history.Rows[0].Value)
	assert.Equal(t, ClassPositive, mustRow(t, p, "Trend").Class)
	assert.Equal(t, "0.35", mustRow(t, p, "Score").Value)
}

func TestExpert_Rendered(t *testing.T) {
	p := Expert(&model.Expert{
		ComputedSignal: &model.ComputedSignal{
			Action:     "WEAK_BUY",
			Strength:   model.Num(37.5),
			Confidence: model.Num(23),
			Indicators: map[string]model.IndicatorSignal{
				"rsi":             {Signal: "OVERBOUGHT", Weight: "25%", Contribution: "81.79"},
				"moving_averages": {Signal: "UPTREND", Weight: "18%"},
			},
		},
		ExpertAnalysis: &model.ExpertAnalysis{Action: "BUY", Confidence: model.Num(78), Analysis: "Strong momentum", Agreement: false},
	}, snapshot.StateLoaded)

	indicators, ok := p.Section("Indicators")
	require.True(t, ok)
	require.Len(t, indicators.Rows, 2)
	assert.Equal(t, "Moving Averages", indicators.Rows[0].Label)
	assert.Equal(t, ClassPositive, indicators.Rows[0].Class)
	assert.Equal(t, "RSI (14)", indicators.Rows[1].Label)
	assert.Equal(t, "OVERBOUGHT · 25% · 81.79", indicators.Rows[1].Value)

	view, ok := p.Section("Expert View")
	require.True(t, ok)
	assert.Equal(t, "Strong momentum", view.Text)
	assert.Equal(t, "Signals Diverge", mustRow(t, p, "Agreement").Value)
	assert.Equal(t, "BUY", mustSectionRow(t, p, "Expert View", "Action").Value)
	assert.Equal(t, "78.0%", mustSectionRow(t, p, "Expert View", "Confidence").Value)
}

package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SignalDeck/internal/calculator"
	"SignalDeck/internal/model"
)

func bullish() *calculator.Analysis {
	return &calculator.Analysis{
		Indicators: &model.Indicators{
			CurrentPrice: model.Num(110),
			RSI:          model.Num(55),
			MACD:         model.MACD{MACD: model.Num(2), Signal: model.Num(1), Histogram: model.Num(1)},
			SMA:          model.SMA{SMA20: model.Num(105), SMA50: model.Num(100)},
			VolumeAnalysis: model.VolumeAnalysis{
				Ratio: model.Num(1.5),
			},
			SupportResistance: model.SupportResistance{
				Support:    []model.Number{model.Num(100)},
				Resistance: []model.Number{model.Num(111)},
			},
		},
		VolumeSignal: calculator.VolumeBullishStrong,
		PercentB:     0.5,
	}
}

func bearish() *calculator.Analysis {
	return &calculator.Analysis{
		Indicators: &model.Indicators{
			CurrentPrice: model.Num(90),
			RSI:          model.Num(75),
			MACD:         model.MACD{MACD: model.Num(0), Signal: model.Num(1), Histogram: model.Num(-1)},
			SMA:          model.SMA{SMA20: model.Num(95), SMA50: model.Num(100)},
		},
		VolumeSignal: calculator.VolumeBearishStrong,
		PercentB:     0.5,
	}
}

func TestTechnicalStrength(t *testing.T) {
	s := TechnicalStrength(bullish())
	assert.Equal(t, model.Num(81.25), s.Strength)
	assert.Equal(t, "STRONG BUY", s.Action)
	assert.Equal(t, model.Num(100), s.Confidence)
	assert.Equal(t, []string{"RSI bullish", "MACD bullish crossover", "Price above moving averages", "Strong volume confirmation"}, s.Signals)

	s = TechnicalStrength(bearish())
	assert.Equal(t, model.Num(-93.75), s.Strength)
	assert.Equal(t, "STRONG SELL", s.Action)

	flat := bearish()
	flat.Indicators.MACD = model.MACD{MACD: model.Num(1), Signal: model.Num(2), Histogram: model.Num(0.1)}
	flat.Indicators.SMA = model.SMA{}
	flat.VolumeSignal = calculator.VolumeNeutral
	s = TechnicalStrength(flat)
	assert.Equal(t, model.Num(0), s.Strength)
	assert.Equal(t, "HOLD", s.Action)
}

func TestMapTier(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{80, "STRONG BUY"},
		{50, "STRONG BUY"},
		{49.99, "BUY"},
		{25, "BUY"},
		{10, "WEAK BUY"},
		{9.99, "HOLD"},
		{-9.99, "HOLD"},
		{-10, "WEAK SELL"},
		{-25, "SELL"},
		{-49.9, "SELL"},
		{-50, "STRONG SELL"},
		{-100, "STRONG SELL"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mapTier(tt.score).Action, "score %v", tt.score)
	}
}

func TestEvaluate_TechnicalOnly(t *testing.T) {
	sig := Evaluate(bullish(), nil, nil)
	assert.Equal(t, "STRONG BUY", sig.Signal)
	assert.Equal(t, model.Num(75), sig.Strength)
	assert.Equal(t, model.Num(87.5), sig.Confidence)
	assert.Equal(t, "BUY", sig.TechnicalSignal)
	assert.Empty(t, sig.FundamentalSignal)
	assert.Empty(t, sig.SentimentSignal)
	assert.Len(t, sig.Reasoning, 6)
}

func strongFundamentals() *model.FundamentalAnalysis {
	return &model.FundamentalAnalysis{Metrics: model.FundamentalMetrics{
		PERatio:       model.Num(15),
		RevenueGrowth: model.Num(12),
		ProfitMargin:  model.Num(20),
		DebtToEquity:  model.Num(0.3),
		ROE:           model.Num(25),
	}}
}

func TestEvaluate_AllComponentsAgree(t *testing.T) {
	sent := &model.SentimentAnalysis{
		Score:      model.Num(0.6),
		NewsVolume: model.Num(120),
		Trend:      TrendImproving,
		SocialBuzz: model.Num(90),
	}
	sig := Evaluate(bullish(), strongFundamentals(), sent)
	assert.Equal(t, "STRONG BUY", sig.Signal)
	assert.InDelta(t, 83.33, sig.Strength.Value, 0.01)
	assert.InDelta(t, 91.67, sig.Confidence.Value, 0.01)
	assert.Equal(t, "BUY", sig.FundamentalSignal)
	assert.Equal(t, "BUY", sig.SentimentSignal)
	assert.Len(t, sig.Reasoning, maxReasons)
}

func TestEvaluate_MixedSignalsLowConfidence(t *testing.T) {
	weak := &model.FundamentalAnalysis{Metrics: model.FundamentalMetrics{
		PERatio:       model.Num(40),
		RevenueGrowth: model.Num(-5),
		ProfitMargin:  model.Num(2),
		DebtToEquity:  model.Num(3),
		ROE:           model.Num(2),
	}}
	sig := Evaluate(bullish(), weak, nil)
	assert.Equal(t, "HOLD", sig.Signal)
	assert.Equal(t, "SELL", sig.FundamentalSignal)
	assert.Equal(t, model.Num(0), sig.Confidence)
}

func TestExpert(t *testing.T) {
	e := Expert(bullish())
	require.NotNil(t, e.ComputedSignal)
	require.NotNil(t, e.ExpertAnalysis)

	assert.Equal(t, "STRONG BUY", e.ComputedSignal.Action)
	assert.Equal(t, "STRONG BUY", e.ExpertAnalysis.Action)
	assert.True(t, e.ExpertAnalysis.Agreement)
	assert.Contains(t, e.ExpertAnalysis.Analysis, "agrees with")

	ind := e.ComputedSignal.Indicators
	require.Len(t, ind, 6)
	assert.Equal(t, model.IndicatorSignal{Signal: "NEUTRAL", Weight: "25%", Contribution: "55.00"}, ind["rsi"])
	assert.Equal(t, "BULLISH", ind["macd"].Signal)
	assert.Equal(t, "UPTREND", ind["moving_averages"].Signal)
	assert.Equal(t, "Price vs SMA20: 4.76%", ind["moving_averages"].Contribution)
	assert.Equal(t, "BULLISH_STRONG", ind["volume"].Signal)
	assert.Equal(t, "%B: 0.500", ind["bollinger_bands"].Contribution)
	assert.Equal(t, "AT_RESISTANCE", ind["support_resistance"].Signal)
	assert.Equal(t, "Next R: $111.00", ind["support_resistance"].Contribution)
}

func TestExpert_Divergence(t *testing.T) {
	a := bullish()
	// Technical composite stays bullish while the RSI and Bollinger
	// readings drag the computed signal down.
	a.Indicators.RSI = model.Num(85)
	a.PercentB = 0.95
	a.VolumeSignal = calculator.VolumeNeutral
	e := Expert(a)
	assert.Equal(t, "STRONG BUY", e.ExpertAnalysis.Action)
	assert.Equal(t, "HOLD", e.ComputedSignal.Action)
	assert.False(t, e.ExpertAnalysis.Agreement)
	assert.Contains(t, e.ExpertAnalysis.Analysis, "diverges from")
}

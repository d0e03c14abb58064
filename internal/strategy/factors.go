package strategy

import (
	"fmt"
	"math"

	"SignalDeck/internal/calculator"
	"SignalDeck/internal/model"
)

// Factor is one component's contribution to the composite signal, scored
// from -100 (bearish) to +100 (bullish).
type Factor struct {
	Name    string
	Score   float64
	Weight  float64
	Reasons []string
}

// Signal returns BUY, SELL or NEUTRAL for the factor alone.
func (f Factor) Signal() string {
	switch {
	case f.Score >= 20:
		return "BUY"
	case f.Score <= -20:
		return "SELL"
	}
	return "NEUTRAL"
}

// Composite weights. They are normalised over the factors actually present.
const (
	WeightTechnical   = 0.40
	WeightFundamental = 0.30
	WeightSentiment   = 0.20
)

// scoreTechnical scores RSI, MACD, moving averages, Bollinger %B and volume.
func scoreTechnical(a *calculator.Analysis) Factor {
	ind := a.Indicators
	f := Factor{Name: "technical", Weight: WeightTechnical}
	price := ind.CurrentPrice.Float()

	rsi := ind.RSI.Or(50)
	switch {
	case rsi < 30:
		f.Score += 30
		f.Reasons = append(f.Reasons, fmt.Sprintf("RSI oversold at %.1f (bullish)", rsi))
	case rsi > 70:
		f.Score -= 30
		f.Reasons = append(f.Reasons, fmt.Sprintf("RSI overbought at %.1f (bearish)", rsi))
	case rsi > 50 && rsi < 60:
		f.Score += 10
		f.Reasons = append(f.Reasons, fmt.Sprintf("RSI trending bullish at %.1f", rsi))
	}

	hist := ind.MACD.Histogram.Float()
	if hist > 0 {
		f.Score += 20
		f.Reasons = append(f.Reasons, fmt.Sprintf("MACD histogram positive (%.3f)", hist))
		if ind.MACD.MACD.Float() > ind.MACD.Signal.Float() {
			f.Score += 10
			f.Reasons = append(f.Reasons, "MACD above signal line (bullish crossover)")
		}
	} else {
		f.Score -= 20
		f.Reasons = append(f.Reasons, fmt.Sprintf("MACD histogram negative (%.3f)", hist))
	}

	for _, ma := range []struct {
		name   string
		value  model.Number
		points float64
	}{
		{"SMA20", ind.SMA.SMA20, 10},
		{"SMA50", ind.SMA.SMA50, 10},
		{"SMA200", ind.SMA.SMA200, 15},
	} {
		if ma.value.Positive() && price > ma.value.Value {
			f.Score += ma.points
			f.Reasons = append(f.Reasons, fmt.Sprintf("Price above %s (%.2f)", ma.name, ma.value.Value))
		}
	}

	switch {
	case a.PercentB < 0.2:
		f.Score += 20
		f.Reasons = append(f.Reasons, "Near lower Bollinger Band (oversold)")
	case a.PercentB > 0.8:
		f.Score -= 20
		f.Reasons = append(f.Reasons, "Near upper Bollinger Band (overbought)")
	}

	switch a.VolumeSignal {
	case calculator.VolumeBullishStrong:
		f.Score += 15
		f.Reasons = append(f.Reasons, "Strong buying volume detected")
	case calculator.VolumeBearishStrong:
		f.Score -= 15
		f.Reasons = append(f.Reasons, "Strong selling volume detected")
	}

	f.Score = clamp(f.Score, -100, 100)
	return f
}

// scoreFundamental scores valuation, growth, margins, leverage and returns.
func scoreFundamental(fa *model.FundamentalAnalysis) Factor {
	m := fa.Metrics
	f := Factor{Name: "fundamental", Weight: WeightFundamental}

	pe := m.PERatio.Float()
	switch {
	case pe > 0 && pe < benchPE*0.8:
		f.Score += 30
		f.Reasons = append(f.Reasons, fmt.Sprintf("Undervalued P/E: %.2f vs sector %d", pe, benchPE))
	case pe > benchPE*1.2:
		f.Score -= 20
		f.Reasons = append(f.Reasons, fmt.Sprintf("Overvalued P/E: %.2f vs sector %d", pe, benchPE))
	}

	growth := m.RevenueGrowth.Float()
	switch {
	case growth > 10:
		f.Score += 25
		f.Reasons = append(f.Reasons, fmt.Sprintf("Strong revenue growth: %.1f%%", growth))
	case growth < 0:
		f.Score -= 25
		f.Reasons = append(f.Reasons, fmt.Sprintf("Negative revenue growth: %.1f%%", growth))
	}

	margin := m.ProfitMargin.Float()
	switch {
	case margin > 15:
		f.Score += 20
		f.Reasons = append(f.Reasons, fmt.Sprintf("Healthy profit margin: %.1f%%", margin))
	case margin < 5:
		f.Score -= 15
		f.Reasons = append(f.Reasons, fmt.Sprintf("Low profit margin: %.1f%%", margin))
	}

	de := m.DebtToEquity.Float()
	switch {
	case de < 0.5:
		f.Score += 15
		f.Reasons = append(f.Reasons, fmt.Sprintf("Low debt/equity: %.2f", de))
	case de > 2:
		f.Score -= 20
		f.Reasons = append(f.Reasons, fmt.Sprintf("High debt/equity: %.2f", de))
	}

	roe := m.ROE.Float()
	switch {
	case roe > 15:
		f.Score += 20
		f.Reasons = append(f.Reasons, fmt.Sprintf("Strong ROE: %.1f%%", roe))
	case roe < 5:
		f.Score -= 15
		f.Reasons = append(f.Reasons, fmt.Sprintf("Low ROE: %.1f%%", roe))
	}

	f.Score = clamp(f.Score, -100, 100)
	return f
}

// scoreSentiment scores the overall sentiment plus trend, coverage and buzz.
func scoreSentiment(sa *model.SentimentAnalysis) Factor {
	f := Factor{Name: "sentiment", Weight: WeightSentiment}

	score := sa.Score.Float()
	f.Score += score * 50
	switch {
	case score > 0.5:
		f.Reasons = append(f.Reasons, fmt.Sprintf("Very positive sentiment: %.2f", score))
	case score > 0.2:
		f.Reasons = append(f.Reasons, fmt.Sprintf("Positive sentiment: %.2f", score))
	case score < -0.5:
		f.Reasons = append(f.Reasons, fmt.Sprintf("Very negative sentiment: %.2f", score))
	case score < -0.2:
		f.Reasons = append(f.Reasons, fmt.Sprintf("Negative sentiment: %.2f", score))
	}

	if n := sa.NewsVolume.Float(); n > 100 {
		f.Score += 10
		f.Reasons = append(f.Reasons, fmt.Sprintf("High news coverage: %.0f articles", n))
	}
	switch sa.Trend {
	case TrendImproving:
		f.Score += 20
		f.Reasons = append(f.Reasons, "Sentiment trend improving")
	case TrendDeteriorating:
		f.Score -= 20
		f.Reasons = append(f.Reasons, "Sentiment trend deteriorating")
	}
	if buzz := sa.SocialBuzz.Float(); buzz > 80 {
		f.Score += 15
		f.Reasons = append(f.Reasons, fmt.Sprintf("High social media buzz: %.0f%%", buzz))
	}

	f.Score = clamp(f.Score, -100, 100)
	return f
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

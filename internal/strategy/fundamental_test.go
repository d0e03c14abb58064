package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"SignalDeck/internal/model"
)

func TestScoreFundamentals(t *testing.T) {
	m := strongFundamentals().Metrics
	m.PEGRatio = model.Num(0.8)
	m.PriceToBook = model.Num(0.9)
	m.OperatingMargin = model.Num(25)
	m.EarningsGrowth = model.Num(20)
	m.CurrentRatio = model.Num(2)

	scores, text := ScoreFundamentals(m)
	assert.Equal(t, model.Num(100), scores.Valuation)
	assert.Equal(t, model.Num(100), scores.Profitability)
	assert.Equal(t, model.Num(100), scores.Growth)
	assert.Equal(t, model.Num(100), scores.Health)
	assert.InDelta(t, 100, scores.Overall.Value, 1e-9)
	assert.Equal(t, "Excellent fundamentals - Strong buy candidate", text)

	scores, text = ScoreFundamentals(model.FundamentalMetrics{})
	assert.Equal(t, model.Num(50), scores.Valuation)
	assert.Equal(t, model.Num(0), scores.Profitability)
	assert.Equal(t, model.Num(50), scores.Growth)
	assert.Equal(t, model.Num(50), scores.Health)
	assert.InDelta(t, 32.5, scores.Overall.Value, 1e-9)
	assert.Equal(t, "Weak fundamentals - Consider selling", text)
}

func TestSentimentTrend(t *testing.T) {
	points := func(vs ...float64) []model.SentimentPoint {
		out := make([]model.SentimentPoint, len(vs))
		for i, v := range vs {
			out[i] = model.SentimentPoint{Normalized: model.Num(v)}
		}
		return out
	}
	assert.Equal(t, TrendImproving, SentimentTrend(points(0.8, 0.7, 0.6, 0.1, 0.0, -0.1)))
	assert.Equal(t, TrendDeteriorating, SentimentTrend(points(-0.1, 0.0, 0.1, 0.6, 0.7, 0.8)))
	assert.Equal(t, TrendStable, SentimentTrend(points(0.2, 0.2, 0.2)))
	assert.Equal(t, TrendStable, SentimentTrend(points(0.9)))
}

func TestInterpretSentiment(t *testing.T) {
	assert.Equal(t, "Very positive sentiment and improving with high news coverage",
		InterpretSentiment(0.6, TrendImproving, 60))
	assert.Equal(t, "Neutral sentiment and stable with low news coverage",
		InterpretSentiment(0, TrendStable, 5))
	assert.Equal(t, "Negative sentiment but deteriorating with moderate news coverage",
		InterpretSentiment(-0.1, TrendDeteriorating, 30))
}

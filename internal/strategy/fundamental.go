package strategy

import (
	"gonum.org/v1/gonum/stat"

	"SignalDeck/internal/model"
)

// Industry benchmarks the fundamental scores compare against.
const (
	benchPE            = 25
	benchProfitMargin  = 15
	benchROE           = 15
	benchDebtToEquity  = 1.0
	benchCurrentRatio  = 1.5
	benchRevenueGrowth = 10
)

// ScoreFundamentals grades metrics into 0-100 category scores, an overall
// weighted score and a one-line interpretation.
func ScoreFundamentals(m model.FundamentalMetrics) (model.FundamentalScores, string) {
	valuation := 50.0
	switch pe := m.PERatio.Float(); {
	case pe > 0 && pe < benchPE*0.8:
		valuation += 20
	case pe > benchPE*1.5:
		valuation -= 20
	}
	switch peg := m.PEGRatio.Float(); {
	case peg > 0 && peg < 1:
		valuation += 15
	case peg > 2:
		valuation -= 15
	}
	switch pb := m.PriceToBook.Float(); {
	case pb > 0 && pb < 1:
		valuation += 15
	case pb > 5:
		valuation -= 10
	}

	profitability := 50.0
	switch roe := m.ROE.Float(); {
	case roe > benchROE:
		profitability += 20
	case roe < benchROE*0.5:
		profitability -= 20
	}
	switch margin := m.ProfitMargin.Float(); {
	case margin > benchProfitMargin:
		profitability += 20
	case margin < 5:
		profitability -= 20
	}
	switch op := m.OperatingMargin.Float(); {
	case op > 20:
		profitability += 10
	case op < 10:
		profitability -= 10
	}

	growth := 50.0
	switch rg := m.RevenueGrowth.Float(); {
	case rg > benchRevenueGrowth:
		growth += 25
	case rg < 0:
		growth -= 25
	}
	switch eg := m.EarningsGrowth.Float(); {
	case eg > 15:
		growth += 25
	case eg < 0:
		growth -= 25
	}

	health := 50.0
	switch de := m.DebtToEquity.Float(); {
	case de < benchDebtToEquity*0.5:
		health += 25
	case de > benchDebtToEquity*2:
		health -= 25
	}
	switch cr := m.CurrentRatio.Float(); {
	case cr > benchCurrentRatio:
		health += 25
	case cr < 1:
		health -= 25
	}

	valuation = clamp(valuation, 0, 100)
	profitability = clamp(profitability, 0, 100)
	growth = clamp(growth, 0, 100)
	health = clamp(health, 0, 100)
	overall := valuation*0.25 + profitability*0.35 + growth*0.25 + health*0.15

	return model.FundamentalScores{
		Overall:       model.Num(overall),
		Valuation:     model.Num(valuation),
		Profitability: model.Num(profitability),
		Growth:        model.Num(growth),
		Health:        model.Num(health),
	}, interpretFundamentals(overall)
}

func interpretFundamentals(overall float64) string {
	switch {
	case overall >= 75:
		return "Excellent fundamentals - Strong buy candidate"
	case overall >= 60:
		return "Good fundamentals - Consider buying"
	case overall >= 40:
		return "Average fundamentals - Neutral"
	case overall >= 25:
		return "Weak fundamentals - Consider selling"
	}
	return "Poor fundamentals - Strong sell candidate"
}

// SentimentTrend compares the newest third of the history with the oldest
// third. History is ordered newest first.
func SentimentTrend(history []model.SentimentPoint) string {
	if len(history) < 3 {
		return TrendStable
	}
	third := len(history) / 3
	values := make([]float64, len(history))
	for i, p := range history {
		values[i] = p.Normalized.Float()
	}
	diff := stat.Mean(values[:third], nil) - stat.Mean(values[len(values)-third:], nil)
	switch {
	case diff > 0.1:
		return TrendImproving
	case diff < -0.1:
		return TrendDeteriorating
	}
	return TrendStable
}

// InterpretSentiment describes a score with its trend and news coverage.
func InterpretSentiment(score float64, trend string, articles int) string {
	level := "Very negative"
	switch {
	case score >= 0.5:
		level = "Very positive"
	case score >= 0.2:
		level = "Positive"
	case score >= 0.05:
		level = "Slightly positive"
	case score >= -0.05:
		level = "Neutral"
	case score >= -0.2:
		level = "Negative"
	}
	trendText := " and stable"
	switch trend {
	case TrendImproving:
		trendText = " and improving"
	case TrendDeteriorating:
		trendText = " but deteriorating"
	}
	coverage := " with low news coverage"
	switch {
	case articles > 50:
		coverage = " with high news coverage"
	case articles > 20:
		coverage = " with moderate news coverage"
	}
	return level + " sentiment" + trendText + coverage
}

package mockapi

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"SignalDeck/internal/calculator"
	"SignalDeck/internal/model"
	"SignalDeck/internal/strategy"
)

// overviewResponse mirrors the upstream company-overview feed, which sends
// key statistics as strings and "None" for missing values.
type overviewResponse struct {
	Symbol       string             `json:"symbol"`
	Name         string             `json:"name"`
	Sector       string             `json:"sector"`
	Industry     string             `json:"industry"`
	Exchange     string             `json:"exchange"`
	CurrentPrice model.CurrentPrice `json:"current_price"`
	KeyStats     map[string]string  `json:"key_stats"`
}

func buildOverview(p Profile, a *calculator.Analysis) overviewResponse {
	ind := a.Indicators
	price := ind.CurrentPrice.Float()
	stats := map[string]string{
		"market_cap":         strconv.FormatFloat(math.Round(p.Shares*price), 'f', 0, 64),
		"pe_ratio":           "None",
		"dividend_yield":     "None",
		"eps":                fmt.Sprintf("%.2f", p.EPS),
		"beta":               fmt.Sprintf("%.3f", p.Beta),
		"52_week_high":       fmt.Sprintf("%.2f", a.High52w),
		"52_week_low":        fmt.Sprintf("%.2f", a.Low52w),
		"shares_outstanding": strconv.FormatFloat(p.Shares, 'f', 0, 64),
	}
	if p.EPS > 0 {
		stats["pe_ratio"] = fmt.Sprintf("%.2f", price/p.EPS)
	}
	if p.DividendYield > 0 {
		stats["dividend_yield"] = fmt.Sprintf("%.4f", p.DividendYield)
	}
	return overviewResponse{
		Symbol:   p.Symbol,
		Name:     p.Name,
		Sector:   p.Sector,
		Industry: p.Industry,
		Exchange: p.Exchange,
		CurrentPrice: model.CurrentPrice{
			Price:              ind.CurrentPrice,
			PriceChange:        ind.PriceChange,
			PriceChangePercent: ind.PriceChangePercent,
		},
		KeyStats: stats,
	}
}

// between draws uniformly from [lo, hi) rounded to two places.
func between(rng *rand.Rand, lo, hi float64) model.Number {
	return model.Num(calculator.Round(lo+rng.Float64()*(hi-lo), 2))
}

func buildFundamental(p Profile, seed int64) *model.FundamentalAnalysis {
	rng := rngFor(seed, p.Symbol, "fundamental")
	m := model.FundamentalMetrics{
		PEGRatio:                between(rng, 0.5, 3),
		PriceToBook:             between(rng, 0.8, 12),
		PriceToSales:            between(rng, 1, 10),
		EVToRevenue:             between(rng, 1, 11),
		EVToEBITDA:              between(rng, 6, 30),
		ProfitMargin:            between(rng, 2, 35),
		OperatingMargin:         between(rng, 5, 40),
		ROE:                     between(rng, 3, 45),
		ROA:                     between(rng, 1, 20),
		RevenueGrowth:           between(rng, -5, 25),
		EarningsGrowth:          between(rng, -10, 30),
		QuarterlyRevenueGrowth:  between(rng, -5, 20),
		QuarterlyEarningsGrowth: between(rng, -10, 30),
		DebtToEquity:            between(rng, 0.1, 3),
		CurrentRatio:            between(rng, 0.7, 3),
		QuickRatio:              between(rng, 0.5, 2.5),
		DividendYield:           model.Num(calculator.Round(p.DividendYield*100, 2)),
		PayoutRatio:             between(rng, 0, 80),
		EPS:                     model.Num(p.EPS),
		Beta:                    model.Num(p.Beta),
	}
	if p.EPS > 0 {
		m.PERatio = model.Num(calculator.Round(p.Price/p.EPS, 2))
	}
	if p.DividendYield == 0 {
		m.PayoutRatio = model.Num(0)
	}
	scores, text := strategy.ScoreFundamentals(m)
	return &model.FundamentalAnalysis{Metrics: m, Scores: scores, Interpretation: text}
}

// sentimentHistoryDays is the length of the daily sentiment history.
const sentimentHistoryDays = 30

func buildSentiment(p Profile, seed int64, now time.Time) *model.SentimentAnalysis {
	rng := rngFor(seed, p.Symbol, "sentiment")

	// History is newest first.
	history := make([]model.SentimentPoint, sentimentHistoryDays)
	level := rng.Float64()*1.2 - 0.6
	for i := range history {
		level = math.Max(-1, math.Min(1, level+0.15*rng.NormFloat64()))
		history[i] = model.SentimentPoint{
			Date:       now.AddDate(0, 0, -i).Format("2006-01-02"),
			Normalized: model.Num(calculator.Round(level, 3)),
			Count:      model.Num(float64(5 + rng.Intn(36))),
		}
	}

	articles := 20 + rng.Intn(131)
	positive := rng.Intn(articles + 1)
	negative := rng.Intn(articles - positive + 1)
	neutral := articles - positive - negative
	newsScore := float64(positive-negative) / float64(articles)

	transcriptScore := rng.Float64()*1.4 - 0.7
	score := calculator.Round(0.6*newsScore+0.4*transcriptScore, 3)
	trend := strategy.SentimentTrend(history)

	return &model.SentimentAnalysis{
		Score:      model.Num(score),
		Trend:      trend,
		NewsVolume: model.Num(float64(articles)),
		SocialBuzz: between(rng, 10, 100),
		Components: model.SentimentComponents{
			News: model.NewsSentiment{
				Score:            model.Num(calculator.Round(newsScore, 3)),
				ArticleCount:     model.Num(float64(articles)),
				PositiveArticles: model.Num(float64(positive)),
				NegativeArticles: model.Num(float64(negative)),
				NeutralArticles:  model.Num(float64(neutral)),
			},
			Transcripts: model.TranscriptSentiment{
				Score:           model.Num(calculator.Round(transcriptScore, 3)),
				TranscriptCount: model.Num(4),
				Confidence:      between(rng, 0.5, 0.95),
			},
		},
		Scores:         model.SentimentScores{Historical: history},
		Interpretation: strategy.InterpretSentiment(score, trend, articles),
	}
}

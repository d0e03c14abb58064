package strategy

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"SignalDeck/internal/calculator"
	"SignalDeck/internal/model"
)

// Sentiment trends.
const (
	TrendImproving     = "improving"
	TrendDeteriorating = "deteriorating"
	TrendStable        = "stable"
)

// maxReasons caps the composite reasoning list.
const maxReasons = 10

// Tier maps a minimum composite score to an action.
type Tier struct {
	MinScore float64
	Action   string
}

// Tiers are checked top-down; scores below the last fall to DefaultTier.
// Sell tiers are inclusive at their upper bound, so -10 is a WEAK SELL.
var Tiers = []Tier{
	{50, "STRONG BUY"},
	{25, "BUY"},
	{10, "WEAK BUY"},
	{math.Nextafter(-10, 0), "HOLD"},
	{math.Nextafter(-25, 0), "WEAK SELL"},
	{math.Nextafter(-50, 0), "SELL"},
}

// DefaultTier is the action for scores at or below -50.
var DefaultTier = Tier{Action: "STRONG SELL"}

func mapTier(score float64) Tier {
	for _, t := range Tiers {
		if score >= t.MinScore {
			return t
		}
	}
	return DefaultTier
}

// TechnicalStrength computes the technical-only composite shown in the
// technical panel: -100 (strong sell) to +100 (strong buy).
func TechnicalStrength(a *calculator.Analysis) model.SignalStrength {
	ind := a.Indicators
	var points float64
	const totalWeight = 80.0
	signals := []string{}

	rsi := ind.RSI.Or(50)
	switch {
	case rsi > 70:
		points -= 15
		signals = append(signals, "RSI overbought")
	case rsi < 30:
		points += 15
		signals = append(signals, "RSI oversold")
	case rsi > 50 && rsi < 60:
		points += 5
		signals = append(signals, "RSI bullish")
	case rsi > 40 && rsi < 50:
		points -= 5
		signals = append(signals, "RSI bearish")
	}

	macd := ind.MACD
	if macd.Histogram.Float() > 0 {
		points += 15
		if macd.MACD.Float() > macd.Signal.Float() {
			points += 10
			signals = append(signals, "MACD bullish crossover")
		}
	} else {
		points -= 15
		if macd.MACD.Float() < macd.Signal.Float() {
			points -= 10
			signals = append(signals, "MACD bearish crossover")
		}
	}

	price := ind.CurrentPrice.Float()
	if sma20, sma50 := ind.SMA.SMA20, ind.SMA.SMA50; sma20.Positive() && sma50.Positive() {
		switch {
		case price > sma20.Value && sma20.Value > sma50.Value:
			points += 20
			signals = append(signals, "Price above moving averages")
		case price < sma20.Value && sma20.Value < sma50.Value:
			points -= 20
			signals = append(signals, "Price below moving averages")
		}
	}

	switch a.VolumeSignal {
	case calculator.VolumeBullishStrong:
		points += 15
		signals = append(signals, "Strong volume confirmation")
	case calculator.VolumeBearishStrong:
		points -= 15
		signals = append(signals, "Strong selling volume")
	}

	strength := points / totalWeight * 100
	action := "HOLD"
	switch {
	case strength > 30:
		action = "STRONG BUY"
	case strength > 10:
		action = "BUY"
	case strength < -30:
		action = "STRONG SELL"
	case strength < -10:
		action = "SELL"
	}
	return model.SignalStrength{
		Strength:   model.Num(calculator.Round(strength, 2)),
		Action:     action,
		Confidence: model.Num(calculator.Round(math.Min(100, math.Abs(strength)*1.5), 2)),
		Signals:    signals,
	}
}

// Evaluate computes the composite trade signal. fundamental and sentiment
// may be nil; weights are renormalised over what is present.
func Evaluate(a *calculator.Analysis, fundamental *model.FundamentalAnalysis, sentiment *model.SentimentAnalysis) *model.TradeSignal {
	factors := []Factor{scoreTechnical(a)}
	if fundamental != nil {
		factors = append(factors, scoreFundamental(fundamental))
	}
	if sentiment != nil {
		factors = append(factors, scoreSentiment(sentiment))
	}

	var total, weight float64
	reasons := []string{}
	for _, f := range factors {
		total += f.Score * f.Weight
		weight += f.Weight
		reasons = append(reasons, f.Reasons...)
	}
	score := total / weight
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}

	sig := &model.TradeSignal{
		Signal:          mapTier(score).Action,
		Strength:        model.Num(calculator.Round(score, 2)),
		Confidence:      model.Num(calculator.Round(confidence(factors), 2)),
		Reasoning:       reasons,
		TechnicalSignal: factors[0].Signal(),
	}
	for _, f := range factors[1:] {
		switch f.Name {
		case "fundamental":
			sig.FundamentalSignal = f.Signal()
		case "sentiment":
			sig.SentimentSignal = f.Signal()
		}
	}
	return sig
}

// confidence is high when every factor points the same way and falls with
// their spread otherwise.
func confidence(factors []Factor) float64 {
	if len(factors) == 0 {
		return 0
	}
	allPos, allNeg := true, true
	var sum, mag float64
	for _, f := range factors {
		allPos = allPos && f.Score > 0
		allNeg = allNeg && f.Score < 0
		sum += f.Score
		mag += math.Abs(f.Score)
	}
	n := float64(len(factors))
	if allPos || allNeg {
		return math.Min(100, 50+mag/n*0.5)
	}
	mean := sum / n
	var variance float64
	for _, f := range factors {
		variance += (f.Score - mean) * (f.Score - mean)
	}
	return math.Max(0, 50-math.Sqrt(variance/n))
}

// Indicator weights in the expert breakdown.
var indicatorWeights = map[string]string{
	"rsi":                "25%",
	"macd":               "20%",
	"moving_averages":    "18%",
	"volume":             "15%",
	"bollinger_bands":    "12%",
	"support_resistance": "10%",
}

// Expert builds the computed-signal breakdown and a rule-based narrative
// for the trading-expert view.
func Expert(a *calculator.Analysis) *model.Expert {
	ind := a.Indicators
	computed := Evaluate(a, nil, nil)
	tech := TechnicalStrength(a)
	price := ind.CurrentPrice.Float()

	indicators := map[string]model.IndicatorSignal{}
	add := func(name, signal, contribution string) {
		indicators[name] = model.IndicatorSignal{Signal: signal, Weight: indicatorWeights[name], Contribution: contribution}
	}

	rsi := ind.RSI.Or(50)
	add("rsi", band(rsi, 70, 30, "OVERBOUGHT", "OVERSOLD"), fmt.Sprintf("%.2f", rsi))
	hist := ind.MACD.Histogram.Float()
	macdSignal := "BEARISH"
	if hist > 0 {
		macdSignal = "BULLISH"
	}
	add("macd", macdSignal, fmt.Sprintf("%.3f", hist))
	sma20 := ind.SMA.SMA20.Or(price)
	trend := "DOWNTREND"
	if price > sma20 {
		trend = "UPTREND"
	}
	add("moving_averages", trend, fmt.Sprintf("Price vs SMA20: %.2f%%", (price/math.Max(sma20, 1)-1)*100))
	add("volume", strings.ToUpper(a.VolumeSignal), fmt.Sprintf("%.2fx", ind.VolumeAnalysis.Ratio.Or(1)))
	add("bollinger_bands", band(a.PercentB, 0.8, 0.2, "OVERBOUGHT", "OVERSOLD"), fmt.Sprintf("%%B: %.3f", a.PercentB))
	add("support_resistance", levelSignal(price, ind.SupportResistance), nextResistance(ind.SupportResistance))

	agreement := direction(tech.Action) == direction(computed.Signal)
	verdict := "agrees with"
	if !agreement {
		verdict = "diverges from"
	}
	narrative := fmt.Sprintf(
		"At $%.2f the technical composite reads %s (strength %.1f) with RSI %.1f and MACD histogram %.3f. "+
			"This %s the computed %s signal.",
		price, tech.Action, tech.Strength.Float(), rsi, hist, verdict, computed.Signal)

	return &model.Expert{
		ComputedSignal: &model.ComputedSignal{
			Action:     computed.Signal,
			Strength:   computed.Strength,
			Confidence: computed.Confidence,
			Reasoning:  computed.Reasoning,
			Indicators: indicators,
		},
		ExpertAnalysis: &model.ExpertAnalysis{
			Action:     tech.Action,
			Confidence: tech.Confidence,
			Analysis:   narrative,
			Agreement:  agreement,
		},
	}
}

func band(v, hi, lo float64, above, below string) string {
	switch {
	case v > hi:
		return above
	case v < lo:
		return below
	}
	return "NEUTRAL"
}

func levelSignal(price float64, sr model.SupportResistance) string {
	for _, r := range sr.Resistance {
		if math.Abs(price-r.Float()) < 2 {
			return "AT_RESISTANCE"
		}
	}
	for _, s := range sr.Support {
		if math.Abs(price-s.Float()) < 2 {
			return "AT_SUPPORT"
		}
	}
	return "NEUTRAL"
}

func nextResistance(sr model.SupportResistance) string {
	if len(sr.Resistance) == 0 {
		return "Next R: N/A"
	}
	levels := model.Floats(sr.Resistance)
	sort.Float64s(levels)
	return fmt.Sprintf("Next R: $%.2f", levels[0])
}

// direction collapses an action to -1, 0 or +1.
func direction(action string) int {
	switch {
	case strings.Contains(action, "BUY"):
		return 1
	case strings.Contains(action, "SELL"):
		return -1
	}
	return 0
}

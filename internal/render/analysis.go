package render

import (
	"fmt"
	"sort"
	"strings"

	"SignalDeck/internal/model"
	"SignalDeck/internal/snapshot"
)

// SentimentHistoryCap bounds the history list to the most recent entries.
const SentimentHistoryCap = 10

type metric struct {
	label string
	value model.Number
}

func metricRows(ms []metric) []Row {
	rows := make([]Row, len(ms))
	for i, m := range ms {
		rows[i] = Row{Label: m.label, Value: Fixed(m.value, 2), Class: numClass(m.value)}
	}
	return rows
}

// Fundamental renders valuation, profitability, growth and health metrics.
func Fundamental(a *model.FundamentalAnalysis, state snapshot.State) Panel {
	const id, title = "fundamental", "Fundamental Analysis"
	if a == nil {
		return pendingOr(id, title, NoFundamental, state)
	}
	m := a.Metrics
	s := a.Scores
	p := Panel{ID: id, Title: title}

	scoreMetrics := []metric{
		{"Overall", s.Overall},
		{"Valuation", s.Valuation},
		{"Profitability", s.Profitability},
		{"Growth", s.Growth},
		{"Health", s.Health},
	}
	scores := Section{Title: "Scores", Rows: metricRows(scoreMetrics)}
	for _, r := range scoreMetrics {
		scores.Bars = append(scores.Bars, Bar{Label: r.label, Value: Fixed(r.value, 2), Percent: clampPercent(r.value.Float()), Class: numClass(r.value)})
	}
	p.Sections = append(p.Sections, scores)

	p.Sections = append(p.Sections,
		Section{Title: "Valuation", Rows: metricRows([]metric{
			{"P/E Ratio", m.PERatio},
			{"PEG Ratio", m.PEGRatio},
			{"Price/Book", m.PriceToBook},
			{"Price/Sales", m.PriceToSales},
			{"EV/Revenue", m.EVToRevenue},
			{"EV/EBITDA", m.EVToEBITDA},
		})},
		Section{Title: "Profitability", Rows: metricRows([]metric{
			{"Profit Margin", m.ProfitMargin},
			{"Operating Margin", m.OperatingMargin},
			{"ROE", m.ROE},
			{"ROA", m.ROA},
		})},
		Section{Title: "Growth", Rows: metricRows([]metric{
			{"Revenue Growth", m.RevenueGrowth},
			{"Earnings Growth", m.EarningsGrowth},
			{"Quarterly Revenue Growth", m.QuarterlyRevenueGrowth},
			{"Quarterly Earnings Growth", m.QuarterlyEarningsGrowth},
		})},
		Section{Title: "Financial Health", Rows: metricRows([]metric{
			{"Debt/Equity", m.DebtToEquity},
			{"Current Ratio", m.CurrentRatio},
			{"Quick Ratio", m.QuickRatio},
		})},
		Section{Title: "Dividends & Risk", Rows: metricRows([]metric{
			{"Dividend Yield", m.DividendYield},
			{"Payout Ratio", m.PayoutRatio},
			{"EPS", m.EPS},
			{"Beta", m.Beta},
		})},
	)
	if a.Interpretation != "" {
		p.Sections = append(p.Sections, Section{Title: "Interpretation", Text: a.Interpretation})
	}
	return p
}

// Sentiment renders news and transcript sentiment with recent history.
func Sentiment(a *model.SentimentAnalysis, state snapshot.State) Panel {
	const id, title = "sentiment", "Sentiment Analysis"
	if a == nil {
		return pendingOr(id, title, NoSentiment, state)
	}
	p := Panel{ID: id, Title: title}

	trend := orDefault(a.Trend, "neutral")
	p.Sections = append(p.Sections, Section{
		Title: "Overall",
		Rows: append(metricRows([]metric{{"Score", a.Score}}),
			Row{Label: "Trend", Value: trend, Class: TrendClass(trend)},
			Row{Label: "News Volume", Value: Fixed(a.NewsVolume, 0)},
			Row{Label: "Social Buzz", Value: Fixed(a.SocialBuzz, 2), Class: numClass(a.SocialBuzz)},
		),
		Bars: []Bar{{Label: "Buzz", Value: Fixed(a.SocialBuzz, 0), Percent: clampPercent(a.SocialBuzz.Float()), Class: ClassNeutral}},
	})

	news := a.Components.News
	p.Sections = append(p.Sections, Section{
		Title: "News",
		Rows: append(metricRows([]metric{{"Score", news.Score}}),
			Row{Label: "Articles", Value: Fixed(news.ArticleCount, 0)},
			Row{Label: "Positive", Value: Fixed(news.PositiveArticles, 0), Class: ClassPositive},
			Row{Label: "Negative", Value: Fixed(news.NegativeArticles, 0), Class: ClassNegative},
			Row{Label: "Neutral", Value: Fixed(news.NeutralArticles, 0), Class: ClassNeutral},
		),
	})

	tr := a.Components.Transcripts
	p.Sections = append(p.Sections, Section{
		Title: "Transcripts",
		Rows: append(metricRows([]metric{{"Score", tr.Score}}),
			Row{Label: "Transcripts", Value: Fixed(tr.TranscriptCount, 0)},
			Row{Label: "Confidence", Value: Fixed(tr.Confidence, 2), Class: numClass(tr.Confidence)},
		),
	})

	hist := a.Scores.Historical
	if len(hist) > SentimentHistoryCap {
		hist = hist[:SentimentHistoryCap]
	}
	history := Section{Title: "History"}
	for _, h := range hist {
		history.Rows = append(history.Rows, Row{
			Label: orDefault(h.Date, dash),
			Value: fmt.Sprintf("%s (%s)", Fixed(h.Normalized, 2), Fixed(h.Count, 0)),
			Class: numClass(h.Normalized),
		})
	}
	if len(history.Rows) > 0 {
		p.Sections = append(p.Sections, history)
	}
	if a.Interpretation != "" {
		p.Sections = append(p.Sections, Section{Title: "Interpretation", Text: a.Interpretation})
	}
	return p
}

// Expert renders the computed model signal next to the narrative analysis.
func Expert(e *model.Expert, state snapshot.State) Panel {
	const id, title = "expert", "Expert Analysis"
	if e == nil || (e.ComputedSignal == nil && e.ExpertAnalysis == nil) {
		return pendingOr(id, title, NoExpert, state)
	}
	p := Panel{ID: id, Title: title}

	if cs := e.ComputedSignal; cs != nil {
		action := orDefault(cs.Action, "HOLD")
		strength := cs.Strength.Float()
		sec := Section{
			Title: "Computed Signal",
			Rows: []Row{
				{Label: "Action", Value: action, Class: ActionClass(action)},
				{Label: "Confidence", Value: Percent(cs.Confidence)},
				{Label: "Strength", Value: fmt.Sprintf("%.1f", strength), Class: SignClass(strength)},
			},
			Bars:    []Bar{{Label: "Strength", Value: fmt.Sprintf("%.1f", strength), Percent: clampPercent(strength), Class: SignClass(strength)}},
			Items:   capList(cs.Reasoning, 0),
			Ordered: true,
		}
		p.Sections = append(p.Sections, sec)

		if len(cs.Indicators) > 0 {
			names := make([]string, 0, len(cs.Indicators))
			for name := range cs.Indicators {
				names = append(names, name)
			}
			sort.Strings(names)
			ind := Section{Title: "Indicators"}
			for _, name := range names {
				sig := cs.Indicators[name]
				value := orDefault(sig.Signal, "NEUTRAL")
				if sig.Weight != "" {
					value += " · " + sig.Weight
				}
				if sig.Contribution != "" {
					value += " · " + sig.Contribution
				}
				ind.Rows = append(ind.Rows, Row{Label: indicatorLabel(name), Value: value, Class: TrendClass(sig.Signal)})
			}
			p.Sections = append(p.Sections, ind)
		}
	}

	if ea := e.ExpertAnalysis; ea != nil {
		action := orDefault(ea.Action, "HOLD")
		agreement, class := "Signals Diverge", ClassNegative
		if ea.Agreement {
			agreement, class = "Signals Agree", ClassPositive
		}
		p.Sections = append(p.Sections, Section{
			Title: "Expert View",
			Rows: []Row{
				{Label: "Action", Value: action, Class: ActionClass(action)},
				{Label: "Confidence", Value: Percent(ea.Confidence)},
				{Label: "Agreement", Value: agreement, Class: class},
			},
			Text: orDefault(ea.Analysis, "Expert analysis not available"),
		})
	}
	return p
}

func indicatorLabel(key string) string {
	switch key {
	case "rsi":
		return "RSI (14)"
	case "macd":
		return "MACD"
	}
	words := strings.Split(key, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

package model

// FundamentalResponse is the /fundamental/{symbol} payload.
type FundamentalResponse struct {
	Symbol   string               `json:"symbol,omitempty"`
	Analysis *FundamentalAnalysis `json:"analysis"`
}

type FundamentalAnalysis struct {
	Metrics        FundamentalMetrics `json:"metrics"`
	Scores         FundamentalScores  `json:"scores"`
	Interpretation string             `json:"interpretation"`
}

type FundamentalMetrics struct {
	PERatio                 Number `json:"pe_ratio"`
	PEGRatio                Number `json:"peg_ratio"`
	PriceToBook             Number `json:"price_to_book"`
	PriceToSales            Number `json:"price_to_sales"`
	EVToRevenue             Number `json:"ev_to_revenue"`
	EVToEBITDA              Number `json:"ev_to_ebitda"`
	ProfitMargin            Number `json:"profit_margin"`
	OperatingMargin         Number `json:"operating_margin"`
	ROE                     Number `json:"roe"`
	ROA                     Number `json:"roa"`
	RevenueGrowth           Number `json:"revenue_growth"`
	EarningsGrowth          Number `json:"earnings_growth"`
	QuarterlyRevenueGrowth  Number `json:"quarterly_revenue_growth"`
	QuarterlyEarningsGrowth Number `json:"quarterly_earnings_growth"`
	DebtToEquity            Number `json:"debt_to_equity"`
	CurrentRatio            Number `json:"current_ratio"`
	QuickRatio              Number `json:"quick_ratio"`
	DividendYield           Number `json:"dividend_yield"`
	PayoutRatio             Number `json:"payout_ratio"`
	EPS                     Number `json:"eps"`
	Beta                    Number `json:"beta"`
}

type FundamentalScores struct {
	Overall       Number `json:"overall"`
	Valuation     Number `json:"valuation"`
	Profitability Number `json:"profitability"`
	Growth        Number `json:"growth"`
	Health        Number `json:"health"`
}

// SentimentResponse is the /sentiment/{symbol} payload.
type SentimentResponse struct {
	Symbol   string             `json:"symbol,omitempty"`
	Analysis *SentimentAnalysis `json:"analysis"`
}

type SentimentAnalysis struct {
	Score          Number              `json:"score"`
	Trend          string              `json:"trend"`
	NewsVolume     Number              `json:"news_volume"`
	SocialBuzz     Number              `json:"social_buzz"`
	Components     SentimentComponents `json:"components"`
	Scores         SentimentScores     `json:"scores"`
	Interpretation string              `json:"interpretation"`
}

type SentimentComponents struct {
	News        NewsSentiment       `json:"news"`
	Transcripts TranscriptSentiment `json:"transcripts"`
}

type NewsSentiment struct {
	Score            Number `json:"score"`
	ArticleCount     Number `json:"article_count"`
	PositiveArticles Number `json:"positive_articles"`
	NegativeArticles Number `json:"negative_articles"`
	NeutralArticles  Number `json:"neutral_articles"`
}

type TranscriptSentiment struct {
	Score           Number `json:"score"`
	TranscriptCount Number `json:"transcript_count"`
	Confidence      Number `json:"confidence"`
}

type SentimentScores struct {
	Historical []SentimentPoint `json:"historical"`
}

type SentimentPoint struct {
	Date       string `json:"date"`
	Normalized Number `json:"normalized"`
	Count      Number `json:"count"`
}

// Topic is one education entry, from the local table or /education/{topic}.
type Topic struct {
	Title           string   `json:"title" yaml:"title"`
	Description     string   `json:"description" yaml:"description"`
	Interpretation  []string `json:"interpretation" yaml:"interpretation"`
	Usage           string   `json:"usage" yaml:"usage"`
	WhatItIs        string   `json:"what_it_is,omitempty" yaml:"what_it_is,omitempty"`
	WhyImportant    string   `json:"why_important,omitempty" yaml:"why_important,omitempty"`
	HowToRead       []string `json:"how_to_read,omitempty" yaml:"how_to_read,omitempty"`
	CurrentAnalysis string   `json:"current_analysis,omitempty" yaml:"current_analysis,omitempty"`
	BeginnerTip     string   `json:"beginner_tip,omitempty" yaml:"beginner_tip,omitempty"`
	TradingStrategy string   `json:"trading_strategy,omitempty" yaml:"trading_strategy,omitempty"`
	Importance      string   `json:"importance,omitempty" yaml:"importance,omitempty"`
	Effect          string   `json:"effect,omitempty" yaml:"effect,omitempty"`
}

// SymbolList is the /symbols payload.
type SymbolList struct {
	Symbols []string `json:"symbols"`
	Default string   `json:"default"`
}

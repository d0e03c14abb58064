package model

// SignalsResponse is the /signals/{symbol} payload.
type SignalsResponse struct {
	Symbol    string       `json:"symbol,omitempty"`
	Timestamp string       `json:"timestamp,omitempty"`
	Signal    *TradeSignal `json:"signal"`
}

// TradeSignal is the composite action across technical, fundamental and
// sentiment inputs.
type TradeSignal struct {
	Signal            string   `json:"signal"`
	Confidence        Number   `json:"confidence"`
	Strength          Number   `json:"strength"`
	Reasoning         []string `json:"reasoning"`
	TechnicalSignal   string   `json:"technical_signal"`
	FundamentalSignal string   `json:"fundamental_signal"`
	SentimentSignal   string   `json:"sentiment_signal"`
}

// Expert is the /trading-expert/{symbol} payload.
type Expert struct {
	Symbol         string          `json:"symbol,omitempty"`
	Timestamp      string          `json:"timestamp,omitempty"`
	ComputedSignal *ComputedSignal `json:"computed_signal"`
	ExpertAnalysis *ExpertAnalysis `json:"expert_analysis"`
}

// ComputedSignal is the mathematical model's view.
type ComputedSignal struct {
	Action     string                     `json:"action"`
	Strength   Number                     `json:"strength"`
	Confidence Number                     `json:"confidence"`
	Reasoning  []string                   `json:"reasoning"`
	Indicators map[string]IndicatorSignal `json:"indicators,omitempty"`
}

// IndicatorSignal is one indicator's contribution to the computed signal.
type IndicatorSignal struct {
	Signal       string `json:"signal"`
	Weight       string `json:"weight"`
	Contribution string `json:"contribution,omitempty"`
}

// ExpertAnalysis is the narrative block.
type ExpertAnalysis struct {
	Action     string `json:"action"`
	Confidence Number `json:"confidence"`
	Analysis   string `json:"analysis"`
	Agreement  bool   `json:"agreement"`
}

package model

// Technical is the /technical/{symbol} payload.
type Technical struct {
	Symbol     string      `json:"symbol,omitempty"`
	Timestamp  string      `json:"timestamp,omitempty"`
	Indicators *Indicators `json:"indicators"`
	ChartData  *ChartData  `json:"chart_data"`
}

// Indicators holds all computed technical indicators.
type Indicators struct {
	CurrentPrice       Number            `json:"current_price"`
	PriceChange        Number            `json:"price_change"`
	PriceChangePercent Number            `json:"price_change_percent"`
	RSI                Number            `json:"rsi"`
	MACD               MACD              `json:"macd"`
	SMA                SMA               `json:"sma"`
	VolumeAnalysis     VolumeAnalysis    `json:"volume_analysis"`
	BollingerBands     BollingerBands    `json:"bollinger_bands"`
	SupportResistance  SupportResistance `json:"support_resistance"`
	SignalStrength     SignalStrength    `json:"signal_strength"`
}

type MACD struct {
	MACD      Number `json:"macd"`
	Signal    Number `json:"signal"`
	Histogram Number `json:"histogram"`
}

type SMA struct {
	SMA20  Number `json:"sma_20"`
	SMA50  Number `json:"sma_50"`
	SMA200 Number `json:"sma_200"`
}

type VolumeAnalysis struct {
	Current        Number `json:"current"`
	Avg20          Number `json:"avg_20"`
	Ratio          Number `json:"ratio"`
	Interpretation string `json:"interpretation"`
}

type BollingerBands struct {
	Upper  Number `json:"upper"`
	Middle Number `json:"middle"`
	Lower  Number `json:"lower"`
}

type SupportResistance struct {
	Support    []Number `json:"support"`
	Resistance []Number `json:"resistance"`
}

// SignalStrength is the technical-only composite, -100 (strong sell) to +100.
type SignalStrength struct {
	Strength   Number   `json:"strength"`
	Action     string   `json:"action"`
	Confidence Number   `json:"confidence"`
	Signals    []string `json:"signals"`
}

// ChartData holds parallel series for the price chart. SMA series may be
// missing or contain nulls for the warm-up window.
type ChartData struct {
	Dates  []string `json:"dates"`
	Prices []Number `json:"prices"`
	SMA20  []Number `json:"sma_20,omitempty"`
	SMA50  []Number `json:"sma_50,omitempty"`
}

package model

import "strings"

// Overview is the /overview/{symbol} payload.
type Overview struct {
	Name         string       `json:"name"`
	Symbol       string       `json:"symbol"`
	Exchange     string       `json:"exchange"`
	Sector       string       `json:"sector,omitempty"`
	Industry     string       `json:"industry,omitempty"`
	CurrentPrice CurrentPrice `json:"current_price"`
	KeyStats     KeyStats     `json:"key_stats"`
}

// CurrentPrice is the latest quote block.
type CurrentPrice struct {
	Price              Number `json:"price"`
	PriceChange        Number `json:"price_change"`
	PriceChangePercent Number `json:"price_change_percent"`
}

// KeyStats holds headline company statistics. Low52w/High52w are canonical;
// Range52w is the legacy "low - high" string some backends still send.
type KeyStats struct {
	MarketCap     Number `json:"market_cap"`
	PERatio       Number `json:"pe_ratio"`
	DividendYield Number `json:"dividend_yield"`
	EPS           Number `json:"eps"`
	Beta          Number `json:"beta"`
	Low52w        Number `json:"52_week_low"`
	High52w       Number `json:"52_week_high"`
	Range52w      string `json:"range52w,omitempty"`
}

// Range returns the 52-week low and high, falling back to the legacy
// Range52w string when the canonical fields are absent.
func (s KeyStats) Range() (low, high Number) {
	if s.Low52w.Valid || s.High52w.Valid || s.Range52w == "" {
		return s.Low52w, s.High52w
	}
	parts := strings.SplitN(s.Range52w, "-", 2)
	if len(parts) != 2 {
		return s.Low52w, s.High52w
	}
	_ = low.UnmarshalJSON([]byte(quote(parts[0])))
	_ = high.UnmarshalJSON([]byte(quote(parts[1])))
	return low, high
}

func quote(s string) string {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	return `"` + strings.ReplaceAll(s, `"`, "") + `"`
}

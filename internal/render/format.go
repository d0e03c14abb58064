package render

import (
	"fmt"
	"strconv"
	"strings"

	"SignalDeck/internal/model"
)

const (
	na   = "N/A"
	dash = "--"
)

// MarketCap formats a market capitalisation with T/B/M suffixes.
func MarketCap(n model.Number) string {
	if !n.Valid {
		return na
	}
	v := n.Value
	switch {
	case v >= 1e12:
		return fmt.Sprintf("$%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	}
	return fmt.Sprintf("$%.2f", v)
}

// Volume formats a share count with K/M/B suffixes.
func Volume(n model.Number) string {
	if !n.Positive() {
		return na
	}
	v := n.Value
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.0fK", v/1e3)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Currency formats a present value as $x.xx and an absent one as N/A.
func Currency(n model.Number) string {
	if !n.Valid {
		return na
	}
	return fmt.Sprintf("$%.2f", n.Value)
}

// Level formats a price level, treating zero as absent.
func Level(n model.Number) string {
	if !n.Positive() {
		return na
	}
	return fmt.Sprintf("$%.2f", n.Value)
}

// Signed prefixes non-negative values with "+".
func Signed(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if v >= 0 && !strings.HasPrefix(s, "-") {
		return "+" + s
	}
	return s
}

// PERatio shows the ratio only when it is positive.
func PERatio(n model.Number) string {
	if !n.Positive() {
		return dash
	}
	return fmt.Sprintf("%.2f", n.Value)
}

// DividendYield normalises a yield to percent. Values above 1 are already
// percentages; values at or below 1 are fractions.
func DividendYield(n model.Number) string {
	if !n.Positive() {
		return dash
	}
	v := n.Value
	if v <= 1 {
		v *= 100
	}
	return fmt.Sprintf("%.2f%%", v)
}

// Range52w formats the 52-week range as "$low - $high".
func Range52w(low, high model.Number) string {
	if !low.Positive() || !high.Positive() {
		return dash
	}
	return fmt.Sprintf("$%.2f - $%.2f", low.Value, high.Value)
}

// Levels joins support or resistance levels.
func Levels(ns []model.Number) string {
	parts := make([]string, 0, len(ns))
	for _, n := range ns {
		if n.Valid {
			parts = append(parts, fmt.Sprintf("$%.2f", n.Value))
		}
	}
	if len(parts) == 0 {
		return na
	}
	return strings.Join(parts, " | ")
}

// Fixed formats with the given decimals, N/A when absent.
func Fixed(n model.Number, decimals int) string {
	if !n.Valid {
		return na
	}
	return strconv.FormatFloat(n.Value, 'f', decimals, 64)
}

// Percent formats a 0-100 value as x.x%, substituting 0 when absent.
func Percent(n model.Number) string {
	return fmt.Sprintf("%.1f%%", n.Float())
}

// RSIStatus classifies an RSI reading. 70 and 30 are Neutral.
func RSIStatus(rsi float64) string {
	switch {
	case rsi > 70:
		return "Overbought"
	case rsi < 30:
		return "Oversold"
	}
	return "Neutral"
}

func rsiClass(rsi float64) Class {
	switch RSIStatus(rsi) {
	case "Overbought":
		return ClassOverbought
	case "Oversold":
		return ClassOversold
	}
	return ClassNeutral
}

// ActionClass maps an action string to buy, sell or hold by substring.
func ActionClass(action string) Class {
	a := strings.ToUpper(action)
	switch {
	case strings.Contains(a, "BUY"):
		return ClassBuy
	case strings.Contains(a, "SELL"):
		return ClassSell
	}
	return ClassHold
}

// TrendClass maps indicator words to positive, negative or neutral.
func TrendClass(signal string) Class {
	s := strings.ToUpper(signal)
	for _, w := range []string{"BUY", "BULLISH", "UPTREND", "POSITIVE", "IMPROVING"} {
		if strings.Contains(s, w) {
			return ClassPositive
		}
	}
	for _, w := range []string{"SELL", "BEARISH", "DOWNTREND", "NEGATIVE", "DETERIORATING"} {
		if strings.Contains(s, w) {
			return ClassNegative
		}
	}
	return ClassNeutral
}

// SignClass is positive for v >= 0.
func SignClass(v float64) Class {
	if v >= 0 {
		return ClassPositive
	}
	return ClassNegative
}

func numClass(n model.Number) Class {
	if !n.Valid {
		return ClassMuted
	}
	return SignClass(n.Value)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

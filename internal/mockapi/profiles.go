package mockapi

import "sort"

// Profile seeds the synthetic analytics for one ticker. Price and Change
// pin the last two closes so the quote is stable across runs.
type Profile struct {
	Symbol        string
	Name          string
	Exchange      string
	Sector        string
	Industry      string
	Price         float64
	Change        float64
	Shares        float64
	EPS           float64
	Beta          float64
	DividendYield float64 // fraction; 0 means the company pays none
	Volatility    float64 // daily return standard deviation
	AvgVolume     float64
}

// DefaultSymbol is served as the /symbols default.
const DefaultSymbol = "IBM"

var profiles = map[string]Profile{
	"IBM": {
		Symbol: "IBM", Name: "International Business Machines", Exchange: "NYSE",
		Sector: "TECHNOLOGY", Industry: "COMPUTER & OFFICE EQUIPMENT",
		Price: 288.42, Change: 1.70, Shares: 929_000_000, EPS: 6.43, Beta: 0.69,
		DividendYield: 0.0232, Volatility: 0.012, AvgVolume: 4_200_000,
	},
	"AAPL": {
		Symbol: "AAPL", Name: "Apple Inc", Exchange: "NASDAQ",
		Sector: "TECHNOLOGY", Industry: "ELECTRONIC COMPUTERS",
		Price: 229.87, Change: -1.23, Shares: 15_200_000_000, EPS: 6.08, Beta: 1.24,
		DividendYield: 0.0044, Volatility: 0.015, AvgVolume: 52_000_000,
	},
	"MSFT": {
		Symbol: "MSFT", Name: "Microsoft Corporation", Exchange: "NASDAQ",
		Sector: "TECHNOLOGY", Industry: "SERVICES-PREPACKAGED SOFTWARE",
		Price: 415.26, Change: 3.12, Shares: 7_430_000_000, EPS: 12.41, Beta: 0.90,
		DividendYield: 0.0079, Volatility: 0.013, AvgVolume: 21_000_000,
	},
	"NVDA": {
		Symbol: "NVDA", Name: "NVIDIA Corporation", Exchange: "NASDAQ",
		Sector: "TECHNOLOGY", Industry: "SEMICONDUCTORS & RELATED DEVICES",
		Price: 131.60, Change: 2.45, Shares: 24_500_000_000, EPS: 2.53, Beta: 1.68,
		DividendYield: 0.0003, Volatility: 0.028, AvgVolume: 240_000_000,
	},
	"TSLA": {
		Symbol: "TSLA", Name: "Tesla Inc", Exchange: "NASDAQ",
		Sector: "MANUFACTURING", Industry: "MOTOR VEHICLES & PASSENGER CAR BODIES",
		Price: 248.50, Change: -6.80, Shares: 3_200_000_000, EPS: 3.65, Beta: 2.31,
		Volatility: 0.032, AvgVolume: 95_000_000,
	},
	"GOOGL": {
		Symbol: "GOOGL", Name: "Alphabet Inc Class A", Exchange: "NASDAQ",
		Sector: "TECHNOLOGY", Industry: "SERVICES-COMPUTER PROGRAMMING",
		Price: 165.39, Change: 0.84, Shares: 12_300_000_000, EPS: 7.54, Beta: 1.03,
		DividendYield: 0.0048, Volatility: 0.017, AvgVolume: 27_000_000,
	},
}

// Symbols lists the served tickers in sorted order.
func Symbols() []string {
	out := make([]string, 0, len(profiles))
	for s := range profiles {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func lookupProfile(symbol string) (Profile, bool) {
	p, ok := profiles[symbol]
	return p, ok
}

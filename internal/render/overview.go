package render

import (
	"fmt"

	"SignalDeck/internal/model"
	"SignalDeck/internal/snapshot"
)

// OverviewInput is the snapshot slice behind the overview panel.
type OverviewInput struct {
	Symbol  string
	Price   *snapshot.Price
	Company *snapshot.Company
	Stats   *snapshot.KeyStats
	Volume  model.Number
	State   snapshot.State
}

func OverviewOf(s *snapshot.Snapshot) OverviewInput {
	in := OverviewInput{
		Symbol:  s.Symbol,
		Price:   s.Price,
		Company: s.Company,
		Stats:   s.KeyStats,
		State:   s.Status(model.KindOverview).State,
	}
	if s.Indicators != nil {
		in.Volume = s.Indicators.VolumeAnalysis.Current
	}
	return in
}

// Overview renders the company header, quote and key statistics.
func Overview(in OverviewInput) Panel {
	if in.Price == nil && in.Company == nil {
		if in.State == snapshot.StateFailed {
			return placeholder("overview", in.Symbol, "No overview data available.")
		}
		return loading("overview", in.Symbol)
	}

	company := in.Company
	if company == nil {
		company = &snapshot.Company{Name: in.Symbol, Symbol: in.Symbol, Placeholder: true}
	}
	p := Panel{ID: "overview", Title: orDefault(company.Name, in.Symbol)}

	listing := orDefault(company.Symbol, in.Symbol)
	if company.Exchange != "" {
		listing += " • " + company.Exchange
	}
	header := Section{Rows: []Row{{Label: "Listing", Value: listing}}}
	if company.Sector != "" {
		header.Rows = append(header.Rows, Row{Label: "Sector", Value: company.Sector})
	}
	p.Sections = append(p.Sections, header)
	p.Sections = append(p.Sections, quoteSection(in.Price))
	p.Sections = append(p.Sections, statsSection(in.Stats, in.Volume))
	return p
}

func quoteSection(price *snapshot.Price) Section {
	sec := Section{Title: "Price"}
	if price == nil {
		price = &snapshot.Price{}
	}
	sec.Rows = append(sec.Rows, Row{Label: "Price", Value: Currency(price.Value)})

	if !price.Change.Valid && !price.ChangePercent.Valid {
		sec.Rows = append(sec.Rows,
			Row{Label: "Change", Value: dash, Class: ClassMuted},
			Row{Label: "Change %", Value: dash, Class: ClassMuted},
		)
	} else {
		change := price.Change.Float()
		class := SignClass(change)
		sec.Rows = append(sec.Rows,
			Row{Label: "Change", Value: Signed(change, 2), Class: class},
			Row{Label: "Change %", Value: Signed(price.ChangePercent.Float(), 2) + "%", Class: class},
		)
	}
	if price.Source != "" {
		src := string(price.Source)
		if price.AsOf != "" {
			src = fmt.Sprintf("%s @ %s", src, price.AsOf)
		}
		sec.Rows = append(sec.Rows, Row{Label: "Source", Value: src, Class: ClassMuted})
	}
	return sec
}

func statsSection(stats *snapshot.KeyStats, volume model.Number) Section {
	if stats == nil {
		stats = &snapshot.KeyStats{}
	}
	beta := dash
	if stats.Beta.Valid {
		beta = fmt.Sprintf("%.2f", stats.Beta.Value)
	}
	return Section{
		Title: "Key Statistics",
		Rows: []Row{
			{Label: "Market Cap", Value: MarketCap(stats.MarketCap), Topic: "market_cap"},
			{Label: "P/E Ratio", Value: PERatio(stats.PERatio), Topic: "pe_ratio"},
			{Label: "Dividend Yield", Value: DividendYield(stats.DividendYield), Topic: "dividend_yield"},
			{Label: "52W Range", Value: Range52w(stats.Low52w, stats.High52w), Topic: "52_week_range"},
			{Label: "EPS", Value: Currency(stats.EPS), Topic: "eps"},
			{Label: "Beta", Value: beta, Topic: "beta"},
			{Label: "Volume", Value: Volume(volume), Topic: "volume"},
		},
	}
}

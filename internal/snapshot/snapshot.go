// Package snapshot folds independently fetched analytics resources into one
// render-ready view of a symbol.
package snapshot

import (
	"errors"
	"fmt"
	"reflect"

	"SignalDeck/internal/collector"
	"SignalDeck/internal/model"
)

// ErrStaleSymbol is returned when a result belongs to another symbol.
var ErrStaleSymbol = errors.New("result is for a different symbol")

// State is the lifecycle of one resource within a snapshot.
type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
	StateLoaded  State = "loaded"
	StateFailed  State = "failed"
)

// ResourceStatus tracks one resource. Err holds the most recent failure, even
// when an earlier load succeeded and the data is still shown.
type ResourceStatus struct {
	State State
	Err   error
}

// Price is the reconciled quote. Source is the kind that supplied Value, or
// empty for the placeholder.
type Price struct {
	Value         model.Number
	Change        model.Number
	ChangePercent model.Number
	AsOf          string
	Source        model.ResourceKind
}

// Company identifies the listing. Placeholder is set when Overview never loaded.
type Company struct {
	Name        string
	Symbol      string
	Exchange    string
	Sector      string
	Industry    string
	Placeholder bool
}

type KeyStats struct {
	MarketCap     model.Number
	PERatio       model.Number
	DividendYield model.Number
	EPS           model.Number
	Beta          model.Number
	Low52w        model.Number
	High52w       model.Number
}

// Snapshot is the merged state for exactly one symbol. Every field stays nil
// until its source resolves.
type Snapshot struct {
	Symbol     string
	Generation uint64

	Price       *Price
	Company     *Company
	KeyStats    *KeyStats
	Indicators  *model.Indicators
	Chart       *model.ChartData
	Signal      *model.TradeSignal
	Expert      *model.Expert
	Fundamental *model.FundamentalAnalysis
	Sentiment   *model.SentimentAnalysis

	status map[model.ResourceKind]ResourceStatus
	loaded map[model.ResourceKind]bool
}

// New creates an empty snapshot for symbol.
func New(symbol string, generation uint64) *Snapshot {
	return &Snapshot{
		Symbol:     symbol,
		Generation: generation,
		status:     make(map[model.ResourceKind]ResourceStatus),
		loaded:     make(map[model.ResourceKind]bool),
	}
}

// Status returns the lifecycle of kind.
func (s *Snapshot) Status(kind model.ResourceKind) ResourceStatus {
	if st, ok := s.status[kind]; ok {
		return st
	}
	return ResourceStatus{State: StateIdle}
}

// MarkPending records that kind was requested. A kind that already loaded
// keeps its state so a refresh does not flash the loading view.
func (s *Snapshot) MarkPending(kind model.ResourceKind) {
	if s.loaded[kind] {
		return
	}
	st := s.status[kind]
	st.State = StatePending
	s.status[kind] = st
}

// Requested reports whether kind was ever requested for this snapshot.
func (s *Snapshot) Requested(kind model.ResourceKind) bool {
	_, ok := s.status[kind]
	return ok
}

// Loaded reports whether kind resolved successfully at least once.
func (s *Snapshot) Loaded(kind model.ResourceKind) bool { return s.loaded[kind] }

// Merge applies one settled result and reports whether the snapshot changed.
// Merging the same result again is a no-op.
func (s *Snapshot) Merge(res collector.FetchResult) (bool, error) {
	if res.Symbol != s.Symbol {
		return false, fmt.Errorf("merge %s for %s into %s: %w", res.Kind, res.Symbol, s.Symbol, ErrStaleSymbol)
	}
	if !res.Kind.Valid() {
		return false, fmt.Errorf("merge: unknown resource kind %q", res.Kind)
	}
	if res.Err != nil {
		return s.fail(res.Kind, res.Err), nil
	}

	changed, err := s.apply(res.Kind, res.Payload)
	if err != nil {
		fe := &collector.FetchError{Class: collector.ParseError, Kind: res.Kind, Symbol: res.Symbol, Err: err}
		return s.fail(res.Kind, fe), nil
	}
	s.loaded[res.Kind] = true
	if s.setStatus(res.Kind, ResourceStatus{State: StateLoaded}) {
		changed = true
	}
	return changed, nil
}

func (s *Snapshot) apply(kind model.ResourceKind, payload any) (bool, error) {
	switch kind {
	case model.KindOverview:
		p, ok := payload.(*model.Overview)
		if !ok || p == nil {
			return false, typeError(kind, payload)
		}
		return s.applyOverview(p), nil
	case model.KindTechnical:
		p, ok := payload.(*model.Technical)
		if !ok || p == nil {
			return false, typeError(kind, payload)
		}
		return s.applyTechnical(p), nil
	case model.KindSignals:
		p, ok := payload.(*model.SignalsResponse)
		if !ok || p == nil {
			return false, typeError(kind, payload)
		}
		return set(&s.Signal, p.Signal), nil
	case model.KindExpert:
		p, ok := payload.(*model.Expert)
		if !ok || p == nil {
			return false, typeError(kind, payload)
		}
		if p.ComputedSignal == nil && p.ExpertAnalysis == nil {
			return set(&s.Expert, nil), nil
		}
		return set(&s.Expert, p), nil
	case model.KindFundamental:
		p, ok := payload.(*model.FundamentalResponse)
		if !ok || p == nil {
			return false, typeError(kind, payload)
		}
		return set(&s.Fundamental, p.Analysis), nil
	case model.KindSentiment:
		p, ok := payload.(*model.SentimentResponse)
		if !ok || p == nil {
			return false, typeError(kind, payload)
		}
		return set(&s.Sentiment, p.Analysis), nil
	}
	return false, fmt.Errorf("unknown resource kind %q", kind)
}

func (s *Snapshot) applyOverview(p *model.Overview) bool {
	company := &Company{
		Name:     p.Name,
		Symbol:   p.Symbol,
		Exchange: p.Exchange,
		Sector:   p.Sector,
		Industry: p.Industry,
	}
	if company.Symbol == "" {
		company.Symbol = s.Symbol
	}
	low, high := p.KeyStats.Range()
	stats := &KeyStats{
		MarketCap:     p.KeyStats.MarketCap,
		PERatio:       p.KeyStats.PERatio,
		DividendYield: p.KeyStats.DividendYield,
		EPS:           p.KeyStats.EPS,
		Beta:          p.KeyStats.Beta,
		Low52w:        low,
		High52w:       high,
	}
	changed := set(&s.Company, company)
	if set(&s.KeyStats, stats) {
		changed = true
	}

	// Technical owns the price once it has supplied one; overview only fills
	// change fields technical left absent.
	if s.Price != nil && s.Price.Source == model.KindTechnical {
		price := *s.Price
		if !price.Change.Valid {
			price.Change = p.CurrentPrice.PriceChange
		}
		if !price.ChangePercent.Valid {
			price.ChangePercent = p.CurrentPrice.PriceChangePercent
		}
		if set(&s.Price, &price) {
			changed = true
		}
		return changed
	}
	if !p.CurrentPrice.Price.Valid && s.Price != nil {
		return changed
	}
	price := &Price{
		Value:         p.CurrentPrice.Price,
		Change:        p.CurrentPrice.PriceChange,
		ChangePercent: p.CurrentPrice.PriceChangePercent,
	}
	if price.Value.Valid {
		price.Source = model.KindOverview
	}
	if set(&s.Price, price) {
		changed = true
	}
	return changed
}

func (s *Snapshot) applyTechnical(p *model.Technical) bool {
	ind := p.Indicators
	if ind == nil {
		ind = &model.Indicators{}
	}
	chart := p.ChartData
	if chart == nil {
		chart = &model.ChartData{}
	}
	changed := set(&s.Indicators, ind)
	if set(&s.Chart, chart) {
		changed = true
	}

	if !ind.CurrentPrice.Valid {
		return changed
	}
	price := &Price{
		Value:         ind.CurrentPrice,
		Change:        ind.PriceChange,
		ChangePercent: ind.PriceChangePercent,
		AsOf:          p.Timestamp,
		Source:        model.KindTechnical,
	}
	if s.Price != nil {
		if !price.Change.Valid {
			price.Change = s.Price.Change
		}
		if !price.ChangePercent.Valid {
			price.ChangePercent = s.Price.ChangePercent
		}
	}
	if set(&s.Price, price) {
		changed = true
	}
	return changed
}

// fail records err for kind and writes placeholders for fields that never
// loaded. Loaded data is kept.
func (s *Snapshot) fail(kind model.ResourceKind, err error) bool {
	if s.loaded[kind] {
		return s.setStatus(kind, ResourceStatus{State: StateLoaded, Err: err})
	}
	changed := s.setStatus(kind, ResourceStatus{State: StateFailed, Err: err})

	switch kind {
	case model.KindOverview:
		if s.Company == nil {
			s.Company = &Company{Name: s.Symbol, Symbol: s.Symbol, Exchange: "N/A", Placeholder: true}
			changed = true
		}
		if s.KeyStats == nil {
			s.KeyStats = &KeyStats{}
			changed = true
		}
	case model.KindTechnical:
		if s.Indicators == nil {
			s.Indicators = &model.Indicators{}
			changed = true
		}
		if s.Chart == nil {
			s.Chart = &model.ChartData{}
			changed = true
		}
	}
	if (kind == model.KindOverview || kind == model.KindTechnical) && s.Price == nil {
		s.Price = &Price{}
		changed = true
	}
	return changed
}

func (s *Snapshot) setStatus(kind model.ResourceKind, st ResourceStatus) bool {
	if cur, ok := s.status[kind]; ok && reflect.DeepEqual(cur, st) {
		return false
	}
	s.status[kind] = st
	return true
}

func set[T any](dst **T, v *T) bool {
	if reflect.DeepEqual(*dst, v) {
		return false
	}
	*dst = v
	return true
}

func typeError(kind model.ResourceKind, payload any) error {
	return fmt.Errorf("unexpected %s payload %T", kind, payload)
}

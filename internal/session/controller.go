// Package session owns the dashboard state for one user session: the current
// symbol, its snapshot and the active tab.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"SignalDeck/internal/chart"
	"SignalDeck/internal/collector"
	"SignalDeck/internal/model"
	"SignalDeck/internal/render"
	"SignalDeck/internal/snapshot"
)

// ErrSuperseded is returned for arrivals issued before the latest symbol change.
var ErrSuperseded = errors.New("arrival superseded by a newer symbol load")

// ErrNoSymbol is returned when an operation needs a selected symbol.
var ErrNoSymbol = errors.New("no symbol selected")

// Request is one resource fetch tagged with the load generation that issued it.
type Request struct {
	Kind       model.ResourceKind
	Symbol     string
	Generation uint64
}

// Arrival is a settled Request.
type Arrival struct {
	Request
	Result collector.FetchResult
}

// Controller sequences requests and merges arrivals for the current symbol.
// It is not safe for concurrent use: callers apply arrivals from a single
// goroutine, such as the UI event loop.
type Controller struct {
	fetcher collector.Fetcher
	tabs    *TabController
	chart   *chart.Adapter
	log     zerolog.Logger

	generation uint64
	snap       *snapshot.Snapshot
}

// Option configures a Controller.
type Option func(*Controller)

// WithChart forwards technical chart data to a.
func WithChart(a *chart.Adapter) Option {
	return func(c *Controller) { c.chart = a }
}

// NewController creates a controller with no symbol selected.
func NewController(fetcher collector.Fetcher, log zerolog.Logger, opts ...Option) *Controller {
	c := &Controller{
		fetcher: fetcher,
		tabs:    NewTabController(),
		log:     log.With().Str("component", "session").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Tabs() *TabController { return c.tabs }

func (c *Controller) Generation() uint64 { return c.generation }

// Snapshot returns the current snapshot, nil before the first SelectSymbol.
func (c *Controller) Snapshot() *snapshot.Snapshot { return c.snap }

// Symbol returns the current symbol.
func (c *Controller) Symbol() string {
	if c.snap == nil {
		return ""
	}
	return c.snap.Symbol
}

// Panels renders every panel from the current snapshot.
func (c *Controller) Panels() render.Set {
	if c.snap == nil {
		return render.All(snapshot.New("", 0))
	}
	return render.All(c.snap)
}

// SelectSymbol discards the current snapshot and returns the requests for the
// new symbol: the default resources plus those of the active tab.
func (c *Controller) SelectSymbol(symbol string) ([]Request, error) {
	sym, err := model.NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	c.generation++
	c.snap = snapshot.New(sym, c.generation)
	c.log.Info().Str("symbol", sym).Uint64("generation", c.generation).Msg("symbol selected")

	kinds := append([]model.ResourceKind{}, DefaultKinds...)
	kinds = append(kinds, c.tabs.Active().Kinds()...)
	return c.issue(kinds, false), nil
}

// SwitchTab activates name and returns requests for its resources that have
// not been requested for the current symbol.
func (c *Controller) SwitchTab(name string) ([]Request, error) {
	t, err := c.tabs.Switch(name)
	if err != nil {
		return nil, err
	}
	return c.pendingFor(t), nil
}

// NextTab and PrevTab cycle the active tab.
func (c *Controller) NextTab() []Request { return c.pendingFor(c.tabs.Next()) }

func (c *Controller) PrevTab() []Request { return c.pendingFor(c.tabs.Prev()) }

func (c *Controller) pendingFor(t Tab) []Request {
	if c.snap == nil {
		return nil
	}
	return c.issue(t.Kinds(), false)
}

// Refresh re-requests every resource already requested for the current
// symbol. The snapshot is kept and arrivals merge over it.
func (c *Controller) Refresh() []Request {
	if c.snap == nil {
		return nil
	}
	var kinds []model.ResourceKind
	for _, k := range model.Kinds {
		if c.snap.Requested(k) {
			kinds = append(kinds, k)
		}
	}
	return c.issue(kinds, true)
}

func (c *Controller) issue(kinds []model.ResourceKind, again bool) []Request {
	var reqs []Request
	seen := make(map[model.ResourceKind]bool, len(kinds))
	for _, k := range kinds {
		if seen[k] || (!again && c.snap.Requested(k)) {
			continue
		}
		seen[k] = true
		c.snap.MarkPending(k)
		reqs = append(reqs, Request{Kind: k, Symbol: c.snap.Symbol, Generation: c.generation})
	}
	return reqs
}

// Fetch performs req. It may run on any goroutine.
func (c *Controller) Fetch(ctx context.Context, req Request) Arrival {
	return Arrival{Request: req, Result: c.fetcher.Fetch(ctx, req.Kind, req.Symbol)}
}

// Apply merges a and reports whether the snapshot changed. Arrivals from an
// earlier generation are dropped with ErrSuperseded.
func (c *Controller) Apply(a Arrival) (bool, error) {
	if c.snap == nil || a.Generation != c.generation {
		c.log.Debug().
			Str("kind", string(a.Kind)).
			Str("symbol", a.Symbol).
			Uint64("generation", a.Generation).
			Msg("dropping superseded arrival")
		return false, fmt.Errorf("apply %s/%s: %w", a.Kind, a.Symbol, ErrSuperseded)
	}

	res := a.Result
	if res.Symbol == "" {
		res.Symbol = a.Symbol
	}
	if res.Kind == "" {
		res.Kind = a.Kind
	}
	if res.Err != nil {
		c.log.Warn().Err(res.Err).Str("kind", string(res.Kind)).Str("symbol", res.Symbol).Msg("resource failed")
	}
	changed, err := c.snap.Merge(res)
	if err != nil {
		return false, err
	}
	if changed && res.Kind == model.KindTechnical && c.chart != nil {
		if _, err := c.chart.Update(c.snap.Chart); err != nil {
			c.log.Warn().Err(err).Msg("chart update failed")
		}
	}
	return changed, nil
}

// Load fetches reqs concurrently and applies each arrival on the calling
// goroutine as it settles. Superseded arrivals are skipped.
func (c *Controller) Load(ctx context.Context, reqs []Request) error {
	arrivals := make(chan Arrival, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	for _, req := range reqs {
		req := req
		g.Go(func() error {
			arrivals <- c.Fetch(gctx, req)
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(arrivals)
	}()

	var errs []error
	for a := range arrivals {
		if _, err := c.Apply(a); err != nil && !errors.Is(err, ErrSuperseded) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

package collector

import (
	"context"

	"SignalDeck/internal/model"
)

// Fetcher defines the interface for fetching analytics resources.
// Implementations must be safe for concurrent use; every call settles.
type Fetcher interface {
	Fetch(ctx context.Context, kind model.ResourceKind, symbol string) FetchResult
	FetchTopic(ctx context.Context, topic string) (*model.Topic, error)
	FetchSymbols(ctx context.Context) (*model.SymbolList, error)
	Name() string
}

// FetchResult is the settled outcome of one resource fetch. Exactly one of
// Payload and Err is set. Payload holds the decoded response for Kind:
// *model.Overview, *model.Technical, *model.SignalsResponse, *model.Expert,
// *model.FundamentalResponse or *model.SentimentResponse.
type FetchResult struct {
	Kind     model.ResourceKind
	Symbol   string
	Payload  any
	Err      error
	Attempts int
}

// OK reports whether the fetch succeeded.
func (r FetchResult) OK() bool { return r.Err == nil }

// Success builds a successful result.
func Success(kind model.ResourceKind, symbol string, payload any) FetchResult {
	return FetchResult{Kind: kind, Symbol: symbol, Payload: payload, Attempts: 1}
}

// Failure builds a failed result. A bare error is classified as a network error.
func Failure(kind model.ResourceKind, symbol string, err error) FetchResult {
	if ClassOf(err) == "" {
		err = &FetchError{Class: NetworkError, Kind: kind, Symbol: symbol, Err: err}
	}
	return FetchResult{Kind: kind, Symbol: symbol, Err: err, Attempts: 1}
}

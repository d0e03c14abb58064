package collector

import (
	"context"
	"sync"

	"SignalDeck/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Payloads and Failures are keyed by kind and apply to every symbol.
type MockFetcher struct {
	Payloads map[model.ResourceKind]any
	Failures map[model.ResourceKind]*FetchError
	Topics   map[string]*model.Topic
	Symbols  *model.SymbolList

	mu    sync.Mutex
	calls map[model.ResourceKind]int
}

// NewMockFetcher creates an empty MockFetcher.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{
		Payloads: make(map[model.ResourceKind]any),
		Failures: make(map[model.ResourceKind]*FetchError),
		Topics:   make(map[string]*model.Topic),
		calls:    make(map[model.ResourceKind]int),
	}
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) Fetch(_ context.Context, kind model.ResourceKind, symbol string) FetchResult {
	m.mu.Lock()
	m.calls[kind]++
	payload := m.Payloads[kind]
	failure := m.Failures[kind]
	m.mu.Unlock()

	if failure != nil {
		fe := *failure
		fe.Kind, fe.Symbol = kind, symbol
		return Failure(kind, symbol, &fe)
	}
	if payload == nil {
		return Failure(kind, symbol, &FetchError{Class: HTTPStatusError, Kind: kind, Symbol: symbol, Status: 404})
	}
	return Success(kind, symbol, payload)
}

func (m *MockFetcher) FetchTopic(_ context.Context, topic string) (*model.Topic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["education"]++
	if t, ok := m.Topics[topic]; ok {
		return t, nil
	}
	return nil, &FetchError{Class: HTTPStatusError, Kind: "education", Symbol: topic, Status: 404}
}

func (m *MockFetcher) FetchSymbols(_ context.Context) (*model.SymbolList, error) {
	if m.Symbols == nil {
		return nil, &FetchError{Class: HTTPStatusError, Kind: "symbols", Status: 404}
	}
	return m.Symbols, nil
}

// Calls returns how many times kind was fetched.
func (m *MockFetcher) Calls(kind model.ResourceKind) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[kind]
}

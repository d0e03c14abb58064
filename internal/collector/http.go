package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"SignalDeck/internal/model"
)

const maxBodyBytes = 8 << 20

// Options configures an HTTPFetcher.
type Options struct {
	BaseURL  string
	ProxyURL string
	Timeout  time.Duration
	Retries  int
	Backoff  time.Duration
}

// HTTPFetcher implements Fetcher against the analytics REST API.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
	Retries int
	Backoff time.Duration
	log     zerolog.Logger
}

// NewHTTPFetcher creates a fetcher with optional proxy support.
func NewHTTPFetcher(opts Options, log zerolog.Logger) *HTTPFetcher {
	transport := &http.Transport{Proxy: http.ProxyFromEnvironment}
	if opts.ProxyURL != "" {
		if u, err := url.Parse(opts.ProxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	retries := opts.Retries
	if retries < 0 {
		retries = 0
	}
	return &HTTPFetcher{
		BaseURL: strings.TrimRight(opts.BaseURL, "/"),
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		Retries: retries,
		Backoff: opts.Backoff,
		log:     log.With().Str("component", "fetcher").Logger(),
	}
}

func (f *HTTPFetcher) Name() string { return "http" }

// Fetch performs GET {base}/{kind}/{symbol} and decodes the payload.
func (f *HTTPFetcher) Fetch(ctx context.Context, kind model.ResourceKind, symbol string) FetchResult {
	if !kind.Valid() {
		return Failure(kind, symbol, &FetchError{Class: InvalidRequest, Kind: kind, Symbol: symbol, Detail: "unknown resource kind"})
	}
	sym, err := model.NormalizeSymbol(symbol)
	if err != nil {
		return Failure(kind, symbol, &FetchError{Class: InvalidRequest, Kind: kind, Symbol: symbol, Err: err})
	}

	path := "/" + kind.Path() + "/" + url.PathEscape(sym)
	var body []byte
	attempts, err := retry(ctx, f.Retries, f.Backoff, func() error {
		var getErr error
		body, getErr = f.get(ctx, path, kind, sym)
		if getErr != nil {
			f.log.Debug().Err(getErr).Str("kind", string(kind)).Str("symbol", sym).Msg("fetch attempt failed")
		}
		return getErr
	})
	if err != nil {
		f.log.Warn().Err(err).Str("kind", string(kind)).Str("symbol", sym).Int("attempts", attempts).Msg("fetch failed")
		res := Failure(kind, sym, err)
		res.Attempts = attempts
		return res
	}

	payload, err := DecodePayload(kind, body)
	if err != nil {
		res := Failure(kind, sym, &FetchError{Class: ParseError, Kind: kind, Symbol: sym, Err: err})
		res.Attempts = attempts
		return res
	}
	res := Success(kind, sym, payload)
	res.Attempts = attempts
	return res
}

// FetchTopic performs GET {base}/education/{topic}.
func (f *HTTPFetcher) FetchTopic(ctx context.Context, topic string) (*model.Topic, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, &FetchError{Class: InvalidRequest, Kind: "education", Detail: "topic is required"}
	}
	var t model.Topic
	if err := f.getInto(ctx, "/education/"+url.PathEscape(topic), "education", topic, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// FetchSymbols performs GET {base}/symbols.
func (f *HTTPFetcher) FetchSymbols(ctx context.Context) (*model.SymbolList, error) {
	var l model.SymbolList
	if err := f.getInto(ctx, "/symbols", "symbols", "", &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (f *HTTPFetcher) getInto(ctx context.Context, path string, kind model.ResourceKind, symbol string, target any) error {
	var body []byte
	_, err := retry(ctx, f.Retries, f.Backoff, func() error {
		var getErr error
		body, getErr = f.get(ctx, path, kind, symbol)
		return getErr
	})
	if err != nil {
		return err
	}
	if err := decodeObject(body, target); err != nil {
		return &FetchError{Class: ParseError, Kind: kind, Symbol: symbol, Err: err}
	}
	return nil
}

func (f *HTTPFetcher) get(ctx context.Context, path string, kind model.ResourceKind, symbol string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+path, nil)
	if err != nil {
		return nil, &FetchError{Class: InvalidRequest, Kind: kind, Symbol: symbol, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, &FetchError{Class: NetworkError, Kind: kind, Symbol: symbol, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &FetchError{Class: NetworkError, Kind: kind, Symbol: symbol, Err: fmt.Errorf("read body: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			Class:  HTTPStatusError,
			Kind:   kind,
			Symbol: symbol,
			Status: resp.StatusCode,
			Detail: snippet(body),
		}
	}
	return body, nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}

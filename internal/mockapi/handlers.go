package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"SignalDeck/internal/calculator"
	"SignalDeck/internal/model"
	"SignalDeck/internal/strategy"
)

// chartDays is how many bars of chart history the technical payload carries.
const chartDays = 180

type resourceFunc func(p Profile, now time.Time) (any, error)

// resource wraps a per-symbol handler with symbol lookup, failure injection
// and JSON encoding.
func (s *Server) resource(kind model.ResourceKind, fn resourceFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "symbol")))
		if s.fail[kind] {
			s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("injected %s failure", kind))
			return
		}
		p, ok := lookupProfile(symbol)
		if !ok {
			s.writeError(w, http.StatusNotFound, fmt.Sprintf("No data found for %s", symbol))
			return
		}
		body, err := fn(p, s.now())
		if err != nil {
			s.log.Error().Err(err).Str("kind", string(kind)).Str("symbol", symbol).Msg("build payload")
			s.writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		s.writeJSON(w, http.StatusOK, body)
	}
}

func (s *Server) analysis(p Profile, now time.Time) (*calculator.Analysis, error) {
	return calculator.Compute(generateBars(p, s.seed, historyDays, now))
}

func (s *Server) overview(p Profile, now time.Time) (any, error) {
	a, err := s.analysis(p, now)
	if err != nil {
		return nil, err
	}
	return buildOverview(p, a), nil
}

func (s *Server) technical(p Profile, now time.Time) (any, error) {
	a, err := s.analysis(p, now)
	if err != nil {
		return nil, err
	}
	a.Indicators.SignalStrength = strategy.TechnicalStrength(a)
	return model.Technical{
		Symbol:     p.Symbol,
		Timestamp:  now.Format(time.RFC3339),
		Indicators: a.Indicators,
		ChartData:  tailChart(a.Chart, chartDays),
	}, nil
}

func (s *Server) signals(p Profile, now time.Time) (any, error) {
	a, err := s.analysis(p, now)
	if err != nil {
		return nil, err
	}
	sig := strategy.Evaluate(a, buildFundamental(p, s.seed), buildSentiment(p, s.seed, now))
	return model.SignalsResponse{Symbol: p.Symbol, Timestamp: now.Format(time.RFC3339), Signal: sig}, nil
}

func (s *Server) expert(p Profile, now time.Time) (any, error) {
	a, err := s.analysis(p, now)
	if err != nil {
		return nil, err
	}
	e := strategy.Expert(a)
	e.Symbol = p.Symbol
	e.Timestamp = now.Format(time.RFC3339)
	return e, nil
}

func (s *Server) fundamental(p Profile, _ time.Time) (any, error) {
	return model.FundamentalResponse{Symbol: p.Symbol, Analysis: buildFundamental(p, s.seed)}, nil
}

func (s *Server) sentiment(p Profile, now time.Time) (any, error) {
	return model.SentimentResponse{Symbol: p.Symbol, Analysis: buildSentiment(p, s.seed, now)}, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": s.now().Format(time.RFC3339),
	})
}

func (s *Server) handleSymbols(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, model.SymbolList{Symbols: Symbols(), Default: DefaultSymbol})
}

func (s *Server) handleEducation(w http.ResponseWriter, r *http.Request) {
	topic, ok := s.topics.lookup(chi.URLParam(r, "topic"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "Educational content not found")
		return
	}
	s.writeJSON(w, http.StatusOK, topic)
}

func tailChart(c *model.ChartData, n int) *model.ChartData {
	if c == nil || len(c.Prices) <= n {
		return c
	}
	from := len(c.Prices) - n
	return &model.ChartData{
		Dates:  c.Dates[from:],
		Prices: c.Prices[from:],
		SMA20:  c.SMA20[from:],
		SMA50:  c.SMA50[from:],
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"detail": message})
}

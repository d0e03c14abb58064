// Package mockapi serves deterministic synthetic analytics over the same
// REST surface the dashboard consumes.
package mockapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"SignalDeck/internal/model"
)

// Config configures the mock API server.
type Config struct {
	Addr string
	Log  zerolog.Logger
	// Fail lists resource kinds that answer 500, for failure drills.
	Fail []model.ResourceKind
	// Seed shifts every generated series; the same seed yields the same data.
	Seed int64
	// Now anchors bar dates and timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Server is the mock analytics HTTP server.
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	fail   map[model.ResourceKind]bool
	seed   int64
	now    func() time.Time
	topics *topicTable
}

// New creates a Server with routes and middleware installed.
func New(cfg Config) (*Server, error) {
	topics, err := loadTopics()
	if err != nil {
		return nil, err
	}
	s := &Server{
		router: chi.NewRouter(),
		log:    cfg.Log.With().Str("component", "mockapi").Logger(),
		fail:   make(map[model.ResourceKind]bool, len(cfg.Fail)),
		seed:   cfg.Seed,
		now:    cfg.Now,
		topics: topics,
	}
	if s.now == nil {
		s.now = time.Now
	}
	for _, k := range cfg.Fail {
		s.fail[k] = true
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// Handler exposes the router, for httptest servers.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/symbols", s.handleSymbols)
		r.Get("/overview/{symbol}", s.resource(model.KindOverview, s.overview))
		r.Get("/technical/{symbol}", s.resource(model.KindTechnical, s.technical))
		r.Get("/signals/{symbol}", s.resource(model.KindSignals, s.signals))
		r.Get("/trading-expert/{symbol}", s.resource(model.KindExpert, s.expert))
		r.Get("/fundamental/{symbol}", s.resource(model.KindFundamental, s.fundamental))
		r.Get("/sentiment/{symbol}", s.resource(model.KindSentiment, s.sentiment))
		r.Get("/education/{topic}", s.handleEducation)
	})
}

// Start serves until Shutdown.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting mock analytics API")
	return s.server.ListenAndServe()
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down mock analytics API")
	return s.server.Shutdown(ctx)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}

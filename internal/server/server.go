package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/KaramelBytes/postpulse/internal/analysis"
	"github.com/KaramelBytes/postpulse/internal/dataset"
)

// Config holds server configuration.
type Config struct {
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	// DateLayouts and TimeLayouts parse the window query parameters.
	DateLayouts []string
	TimeLayouts []string
}

// DefaultConfig returns a local-only configuration.
func DefaultConfig() Config {
	return Config{
		Host:           "127.0.0.1",
		Port:           8080,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		RateLimitRPS:   20,
		RateLimitBurst: 40,
		DateLayouts:    dataset.DefaultDateLayouts,
		TimeLayouts:    dataset.DefaultTimeLayouts,
	}
}

// Server is the read-only HTTP view over one loaded dataset.
type Server struct {
	router   *mux.Router
	server   *http.Server
	config   Config
	data     *dataset.Dataset
	accounts []string
	opt      analysis.Options
	metrics  *Metrics
	limiter  *Limiter
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

// New creates a server over data. Metrics are registered on reg; a nil reg
// uses a private registry.
func New(data *dataset.Dataset, cfg Config, opt analysis.Options, reg *prometheus.Registry) *Server {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if len(cfg.DateLayouts) == 0 {
		cfg.DateLayouts = dataset.DefaultDateLayouts
	}
	if len(cfg.TimeLayouts) == 0 {
		cfg.TimeLayouts = dataset.DefaultTimeLayouts
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	s := &Server{
		router:   mux.NewRouter(),
		config:   cfg,
		data:     data,
		accounts: dataset.ListAccounts(data.Records),
		opt:      opt,
		metrics:  NewMetrics(reg),
		limiter:  NewLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}
	s.setupRoutes(reg)
	s.server = &http.Server{
		Addr:         s.Address(),
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

func (s *Server) setupRoutes(reg *prometheus.Registry) {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.requestLoggingMiddleware)
	s.router.Use(s.rateLimitMiddleware)

	s.router.Handle("/metrics", s.metrics.Handler(reg)).Methods("GET")

	api := s.router.PathPrefix("/").Subrouter()
	api.Use(s.jsonContentTypeMiddleware)
	api.HandleFunc("/health", s.Health).Methods("GET")
	api.HandleFunc("/accounts", s.Accounts).Methods("GET")
	api.HandleFunc("/accounts/{username}", s.Dashboard).Methods("GET")
	api.HandleFunc("/accounts/{username}/comments", s.Comments).Methods("GET")

	s.router.NotFoundHandler = s.requestIDMiddleware(http.HandlerFunc(s.NotFound))
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Address returns host:port.
func (s *Server) Address() string {
	return net.JoinHostPort(s.config.Host, fmt.Sprint(s.config.Port))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Address())
	if err != nil {
		return fmt.Errorf("port %d is busy or unavailable: %w", s.config.Port, err)
	}
	log.Info().Str("addr", s.Address()).Int("accounts", len(s.accounts)).Msg("serving dashboard API (read-only)")

	errc := make(chan error, 1)
	go func() { errc <- s.server.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()[:8]
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)
		duration := time.Since(start)

		route := routeName(r)
		s.metrics.Observe(route, wrapper.statusCode, duration)
		log.Info().
			Str("request_id", requestID(r)).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapper.statusCode).
			Dur("duration", duration).
			Msg("request")
	})
}

func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !s.limiter.Allow(host) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			writeError(w, r, http.StatusTooManyRequests, "rate_limited", "Too many requests, slow down")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) jsonContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func requestID(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return "unknown"
}

func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

// responseWrapper captures HTTP status codes for logging.
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

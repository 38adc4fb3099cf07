// Package httpapi exposes a planner over HTTP with gin. Every handler runs
// under one mutex, so the planner and its network see a single caller at a
// time.
package httpapi

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/weatherpath/network"
	"github.com/katalvlaran/weatherpath/planner"
)

// Server holds the planner and the lock serializing access to it.
type Server struct {
	mu          sync.Mutex
	p           *planner.Planner
	log         *zap.Logger
	corsOrigins []string
	onChange    func()
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access and error logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCORSOrigins enables CORS for the listed origins ("*" allows any).
func WithCORSOrigins(origins ...string) Option {
	return func(s *Server) { s.corsOrigins = origins }
}

// WithOnChange registers a callback run (under the lock) after every
// successful mutation.
func WithOnChange(fn func()) Option {
	return func(s *Server) { s.onChange = fn }
}

// New creates a Server over p.
func New(p *planner.Planner, opts ...Option) *Server {
	s := &Server{p: p, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(s.log))
	if len(s.corsOrigins) > 0 {
		cfg := cors.DefaultConfig()
		if len(s.corsOrigins) == 1 && s.corsOrigins[0] == "*" {
			cfg.AllowAllOrigins = true
		} else {
			cfg.AllowOrigins = s.corsOrigins
		}
		cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
		cfg.AllowHeaders = []string{"Origin", "Content-Type", RequestIDHeader}
		cfg.ExposeHeaders = []string{RequestIDHeader}
		r.Use(cors.New(cfg))
	}

	r.GET("/health", s.health)
	r.GET("/cities", s.locked(s.cities))
	r.GET("/route", s.locked(s.route))
	r.GET("/center", s.locked(s.center))
	r.GET("/distances/:city", s.locked(s.distances))
	r.GET("/matrix", s.locked(s.matrix))
	r.POST("/edges", s.locked(s.addEdge))
	r.PATCH("/edges/:from/:to", s.locked(s.updateEdge))
	r.DELETE("/edges/:from/:to", s.locked(s.removeEdge))

	return r
}

func (s *Server) locked(h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		h(c)
	}
}

// changed runs the mutation hook; callers hold the lock.
func (s *Server) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// fail maps domain errors to status codes.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, planner.ErrUnknownCity):
		status = http.StatusNotFound
	case errors.Is(err, network.ErrInvalidName),
		errors.Is(err, network.ErrInvalidWeight),
		errors.Is(err, network.ErrInvalidRegime),
		errors.Is(err, network.ErrSelfLoop),
		errors.Is(err, errBadRequest):
		status = http.StatusBadRequest
	}
	rid := GetRequestID(c.Request.Context())
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err), zap.String("id", rid))
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error(), RequestID: rid})
}

var errBadRequest = errors.New("bad request")

// regimeParam reads ?regime=, defaulting to the planner's active regime.
func (s *Server) regimeParam(c *gin.Context) (network.Regime, error) {
	raw := strings.TrimSpace(c.Query("regime"))
	if raw == "" {
		return s.p.Active(), nil
	}

	return network.ParseRegime(raw)
}

// finite turns +Inf into a JSON null.
func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}

	return &v
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

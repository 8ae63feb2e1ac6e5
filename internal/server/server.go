// Package server exposes the calculators over HTTP. Calculation endpoints
// are POST-only and wrap their result in calculation metadata (request id,
// timestamps, duration); catalog endpoints are GET. Errors always use the
// JSON envelope {status, message}.
package server

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"github.com/skaranth/facpay/internal/calculation"
	"github.com/skaranth/facpay/internal/domain"
)

// Server serves the compensation API.
type Server struct {
	engine   *calculation.CalculationEngine
	settings domain.Settings
	validate *validator.Validate
	log      *logrus.Logger
}

// NewServer creates a server over an engine and a settings snapshot.
func NewServer(engine *calculation.CalculationEngine, settings domain.Settings, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{
		engine:   engine,
		settings: settings,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// ListenAndServe blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.log.WithField("addr", addr).Info("compensation service starting")
	if err := fasthttp.ListenAndServe(addr, s.Handler); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Handler is the fasthttp request handler with the full route table.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	s.log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
	}).Debug("request")

	switch {
	case path == "/healthz" && method == fasthttp.MethodGet:
		s.handleHealth(ctx)
	case path == "/v1/compare" && method == fasthttp.MethodPost:
		s.handleCompare(ctx)
	case path == "/v1/baseline" && method == fasthttp.MethodPost:
		s.handleBaseline(ctx)
	case path == "/v1/projection" && method == fasthttp.MethodPost:
		s.handleProjection(ctx)
	case path == "/v1/positions" && method == fasthttp.MethodGet:
		s.handlePositions(ctx)
	case path == "/v1/levels" && method == fasthttp.MethodGet:
		s.handleLevels(ctx)
	case path == "/v1/compare" || path == "/v1/baseline" || path == "/v1/projection" ||
		path == "/v1/positions" || path == "/v1/levels":
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

// Package server exposes the load calculator over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"cold_load_calc/internal/report"
	"cold_load_calc/load"
)

// Request is the body of every calculation endpoint.
type Request struct {
	Name       string               `json:"name"`
	Room       load.RoomInput       `json:"room"`
	Conditions load.ConditionsInput `json:"conditions"`
	Product    load.ProductInput    `json:"product"`
}

// Response is the body of a successful calculation.
type Response struct {
	Result   load.LoadResult      `json:"result"`
	Input    load.NormalizedInput `json:"input"`
	Warnings []load.Violation     `json:"warnings,omitempty"`
}

// ErrorResponse is the body of a rejected request.
type ErrorResponse struct {
	Error      string           `json:"error"`
	Violations []load.Violation `json:"violations,omitempty"`
}

var errNonFinite = errors.New("result contains non-finite values")

// Server serves load calculations over HTTP.
type Server struct {
	calc     *load.Calculator
	metrics  *metrics
	gatherer prometheus.Gatherer
	limiter  *ipRateLimiter
	router   *mux.Router
}

// Option configures a Server.
type Option func(*Server)

// WithRateLimit limits every client address to r calculation requests per
// second with bursts of b. A non-positive r leaves the API unlimited.
func WithRateLimit(r rate.Limit, b int) Option {
	return func(s *Server) {
		if r > 0 {
			s.limiter = newIPRateLimiter(r, b)
		}
	}
}

// New builds the routes of the API. Metrics are registered on reg and served
// from it.
func New(calc *load.Calculator, reg *prometheus.Registry, opts ...Option) *Server {
	s := &Server{
		calc:     calc,
		metrics:  newMetrics(reg),
		gatherer: reg,
		router:   mux.NewRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(logRequests)

	// Full paths on the root router: mux answers a method mismatch inside a
	// subrouter with 404, not 405.
	s.router.Handle("/api/v1/load", s.limit(s.handleLoad)).Methods(http.MethodPost)
	s.router.Handle("/api/v1/load/report", s.limit(s.handleReport)).Methods(http.MethodPost)
	s.router.Handle("/api/v1/load/csv", s.limit(s.handleCSV)).Methods(http.MethodPost)
	s.router.HandleFunc("/api/v1/tables", s.handleTables).Methods(http.MethodGet)

	s.router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
}

// Handler returns the API with CORS headers applied.
func (s *Server) Handler() http.Handler {
	return cors(s.router)
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

/*
Decode, compute and check one request.

	Returns:
		ok is false when a response has already been written
	Notes:
		Validation problems are returned as warnings. They reject the request
		only with ?strict=true, or when the result cannot be represented.
*/
func (s *Server) evaluate(w http.ResponseWriter, r *http.Request, format string) (req Request, resp Response, ok bool) {
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.observe(format, outcomeBadRequest, nil)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request payload"})
		return req, resp, false
	}

	in := s.calc.Normalize(req.Room, req.Conditions, req.Product)
	res := s.calc.Evaluate(in)
	violations := load.Violations(load.Validate(in))

	strict := r.URL.Query().Get("strict") == "true"
	switch {
	case strict && len(violations) > 0:
		s.metrics.observe(format, outcomeInvalid, nil)
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: load.ErrInvalidConfiguration.Error(), Violations: violations})
		return req, resp, false
	case !res.Finite():
		s.metrics.observe(format, outcomeInvalid, nil)
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: errNonFinite.Error(), Violations: violations})
		return req, resp, false
	}

	s.metrics.observe(format, outcomeOK, &res)
	return req, Response{Result: res, Input: in, Warnings: violations}, true
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	_, resp, ok := s.evaluate(w, r, formatJSON)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	req, resp, ok := s.evaluate(w, r, formatPDF)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="cold-room-load.pdf"`)
	if err := report.WritePDF(w, req.Name, resp.Result); err != nil {
		log.Error().Err(err).Msg("pdf report failed")
	}
}

func (s *Server) handleCSV(w http.ResponseWriter, r *http.Request) {
	req, resp, ok := s.evaluate(w, r, formatCSV)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="cold-room-load.csv"`)
	if err := report.WriteCSV(w, []report.Row{report.NewRow(req.Name, resp.Result)}); err != nil {
		log.Error().Err(err).Msg("csv report failed")
	}
}

func (s *Server) handleTables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.calc.Tables())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

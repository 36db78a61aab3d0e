// SPDX-License-Identifier: MIT

// Package server exposes lvlmath over an HTTP JSON API.
//
// Routes:
//
//	POST   /api/solve              solve a problem (JSON or multipart upload)
//	GET    /api/history            newest history records (?limit=, at most 50)
//	GET    /api/history/{id}       one record
//	DELETE /api/history/{id}       delete a record
//	POST   /api/matrix             matrix workbench
//	GET    /api/integral/rules     integral rule catalogue
//	POST   /api/integral           evaluate an integral rule
//	POST   /api/calc               evaluate an arithmetic expression
//	GET    /api/plot               PNG preview of a 2D expression
//	GET    /healthz                liveness
//
// Every response carries permissive CORS headers; OPTIONS is answered with 204.
package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlmath/history"
	"github.com/katalvlaran/lvlmath/solver"
)

// DefaultMaxUpload bounds multipart bodies when no limit is configured.
const DefaultMaxUpload = 10 << 20

// Solver is the completion dependency of /api/solve.
type Solver interface {
	Solve(ctx context.Context, req solver.Request) (*solver.Solution, error)
}

// Store is the persistence dependency of the history routes.
type Store interface {
	Insert(ctx context.Context, problemText, problemType string, solution any) (history.Record, error)
	List(ctx context.Context, limit int) ([]history.Record, error)
	Get(ctx context.Context, id string) (history.Record, error)
	Delete(ctx context.Context, id string) error
}

// Option configures a Server.
type Option func(*Server)

// WithLogger attaches a logger. A nil logger panics.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("server: WithLogger(nil)")
	}

	return func(s *Server) { s.log = log }
}

// WithMaxUpload bounds multipart /api/solve bodies in bytes. JSON solve
// bodies may use twice that to fit a base64 image.
func WithMaxUpload(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxUpload = n
		}
	}
}

// Server routes API requests to the computation packages, the Solver and the Store.
type Server struct {
	solver    Solver
	store     Store
	log       *zap.Logger
	maxUpload int64
	handler   http.Handler
}

// New builds the handler tree. A nil Solver makes /api/solve answer 503;
// a nil Store disables saving and the history routes answer 503.
func New(sv Solver, st Store, opts ...Option) *Server {
	s := &Server{solver: sv, store: st, log: zap.NewNop(), maxUpload: DefaultMaxUpload}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/solve", s.handleSolve)
	mux.HandleFunc("GET /api/history", s.handleHistoryList)
	mux.HandleFunc("GET /api/history/{id}", s.handleHistoryGet)
	mux.HandleFunc("DELETE /api/history/{id}", s.handleHistoryDelete)
	mux.HandleFunc("POST /api/matrix", s.handleMatrix)
	mux.HandleFunc("GET /api/integral/rules", s.handleIntegralRules)
	mux.HandleFunc("POST /api/integral", s.handleIntegral)
	mux.HandleFunc("POST /api/calc", s.handleCalc)
	mux.HandleFunc("GET /api/plot", s.handlePlot)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.handler = s.logRequests(cors(mux))

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.handler.ServeHTTP(w, r) }

// HTTPServer wraps s in an *http.Server listening on addr.
func (s *Server) HTTPServer(addr string, readTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		ErrorLog:          zap.NewStdLog(s.log),
	}
}

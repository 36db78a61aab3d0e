// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlmath/history"
	"github.com/katalvlaran/lvlmath/solver"
)

var errUnavailable = errors.New("service not configured")

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Debug("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorBody{Error: msg})
}

// fail maps err to a status code and writes it.
//
//	solver.ErrRateLimited  → 429
//	solver.ErrUsageLimit   → 402
//	request validation     → 400
//	history.ErrNotFound    → 404
//	missing dependency     → 503
//	anything else          → 500
func (s *Server) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, solver.ErrRateLimited):
		s.writeError(w, http.StatusTooManyRequests, solver.ErrRateLimited.Error())
	case errors.Is(err, solver.ErrUsageLimit):
		s.writeError(w, http.StatusPaymentRequired, solver.ErrUsageLimit.Error())
	case errors.Is(err, solver.ErrEmptyProblem):
		s.writeError(w, http.StatusBadRequest, solver.ErrEmptyProblem.Error())
	case errors.Is(err, solver.ErrUnsupportedFile):
		s.writeError(w, http.StatusBadRequest, solver.ErrUnsupportedFile.Error())
	case errors.Is(err, history.ErrNotFound):
		s.writeError(w, http.StatusNotFound, history.ErrNotFound.Error())
	case errors.Is(err, errUnavailable), errors.Is(err, solver.ErrNotConfigured):
		s.writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		s.log.Error("request error", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) badRequest(w http.ResponseWriter, msg string) {
	s.writeError(w, http.StatusBadRequest, msg)
}

// rejectBody writes 413 when err came from an over-limit body and 400 with
// msg otherwise.
func (s *Server) rejectBody(w http.ResponseWriter, err error, msg string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		s.writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		return
	}
	s.badRequest(w, msg)
}

// MaxJSONBody caps the JSON bodies of the tool routes.
const MaxJSONBody = 1 << 20

// decodeJSON reads at most limit bytes of r.Body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, limit int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	return json.NewDecoder(r.Body).Decode(v)
}

// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlmath/history"
	"github.com/katalvlaran/lvlmath/solver"
)

// HeaderHistoryID carries the id of the history record saved by /api/solve.
const HeaderHistoryID = "X-History-ID"

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if s.solver == nil {
		s.fail(w, fmt.Errorf("solver: %w", errUnavailable))
		return
	}

	req, err := s.readSolveRequest(w, r)
	if err != nil {
		if errors.Is(err, solver.ErrUnsupportedFile) {
			s.fail(w, err)
			return
		}
		s.rejectBody(w, err, err.Error())
		return
	}

	sol, err := s.solver.Solve(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}

	if s.store != nil {
		rec, err := s.store.Insert(r.Context(), solver.HistoryText(req, sol), solver.ProblemType(req), sol)
		if err != nil {
			s.log.Warn("error saving to history", zap.Error(err))
		} else {
			w.Header().Set(HeaderHistoryID, rec.ID)
		}
	}

	s.writeJSON(w, http.StatusOK, sol)
}

// readSolveRequest accepts either a JSON solver.Request or a multipart form
// with a "problem" field and an optional "file" part.
func (s *Server) readSolveRequest(w http.ResponseWriter, r *http.Request) (solver.Request, error) {
	var req solver.Request
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		// Base64 inflates an upload by a third.
		if err := decodeJSON(w, r, &req, 2*s.maxUpload); err != nil {
			return req, fmt.Errorf("invalid JSON body: %w", err)
		}

		return req, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		return req, fmt.Errorf("invalid multipart body: %w", err)
	}
	req.Problem = r.FormValue("problem")

	f, hdr, err := r.FormFile("file")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return req, nil
	case err != nil:
		return req, fmt.Errorf("invalid upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return req, fmt.Errorf("read upload: %w", err)
	}
	req.ImageBase64, req.MIMEType, err = solver.EncodeUpload(hdr.Filename, data)
	if err != nil {
		return req, err
	}

	return req, nil
}

func (s *Server) historyStore(w http.ResponseWriter) (Store, bool) {
	if s.store == nil {
		s.fail(w, fmt.Errorf("history: %w", errUnavailable))
		return nil, false
	}

	return s.store, true
}

func (s *Server) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	st, ok := s.historyStore(w)
	if !ok {
		return
	}
	limit := history.MaxList
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.badRequest(w, "limit must be an integer")
			return
		}
		limit = n
	}

	recs, err := st.List(r.Context(), limit)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleHistoryGet(w http.ResponseWriter, r *http.Request) {
	st, ok := s.historyStore(w)
	if !ok {
		return
	}
	rec, err := st.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleHistoryDelete(w http.ResponseWriter, r *http.Request) {
	st, ok := s.historyStore(w)
	if !ok {
		return
	}
	if err := st.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

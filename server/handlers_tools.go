// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/katalvlaran/lvlmath/calc"
	"github.com/katalvlaran/lvlmath/graphing"
	"github.com/katalvlaran/lvlmath/integral"
	"github.com/katalvlaran/lvlmath/workbench"
)

type matrixRequest struct {
	Op string      `json:"op"`
	A  [][]float64 `json:"a"`
	B  [][]float64 `json:"b,omitempty"`
}

type matrixResponse struct {
	Op     string      `json:"op"`
	OK     bool        `json:"ok"`
	Matrix [][]float64 `json:"matrix,omitempty"`
	Scalar *float64    `json:"scalar,omitempty"`
	Text   string      `json:"text"`
}

// handleMatrix runs one workbench operation. Computation failures are not
// HTTP errors: the response carries ok=false and the sentinel text.
func (s *Server) handleMatrix(w http.ResponseWriter, r *http.Request) {
	var req matrixRequest
	if err := decodeJSON(w, r, &req, MaxJSONBody); err != nil {
		s.rejectBody(w, err, "invalid JSON body")
		return
	}
	op, err := workbench.ParseOp(req.Op)
	if err != nil {
		s.badRequest(w, err.Error())
		return
	}

	res := workbench.Compute(op, req.A, req.B)
	s.writeJSON(w, http.StatusOK, matrixResponse{
		Op:     op.String(),
		OK:     res.OK(),
		Matrix: res.Matrix,
		Scalar: res.Scalar,
		Text:   res.Text,
	})
}

func (s *Server) handleIntegralRules(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, integral.Rules())
}

type integralRequest struct {
	Rule   string             `json:"rule"`
	Params map[string]float64 `json:"params"`
}

type resultResponse struct {
	Result string `json:"result"`
	Error  string `json:"error,omitempty"`
}

// handleIntegral selects the rule (parameters at their defaults), applies
// the supplied parameters and evaluates.
func (s *Server) handleIntegral(w http.ResponseWriter, r *http.Request) {
	var req integralRequest
	if err := decodeJSON(w, r, &req, MaxJSONBody); err != nil {
		s.rejectBody(w, err, "invalid JSON body")
		return
	}
	id, err := integral.ParseRuleID(req.Rule)
	if err != nil {
		s.badRequest(w, err.Error())
		return
	}

	ev := integral.NewEvaluator(integral.WithLogger(s.log))
	if err = ev.Select(id); err != nil {
		s.badRequest(w, err.Error())
		return
	}
	for k, v := range req.Params {
		if err = ev.Set(k, v); err != nil {
			s.badRequest(w, err.Error())
			return
		}
	}
	s.writeJSON(w, http.StatusOK, resultResponse{Result: ev.Evaluate()})
}

type calcRequest struct {
	Expression string `json:"expression"`
}

func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	var req calcRequest
	if err := decodeJSON(w, r, &req, MaxJSONBody); err != nil {
		s.rejectBody(w, err, "invalid JSON body")
		return
	}
	v, err := calc.Eval(req.Expression)
	if err != nil {
		s.writeJSON(w, http.StatusOK, resultResponse{Result: calc.KeypadError, Error: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, resultResponse{Result: calc.FormatResult(v)})
}

// handlePlot renders expr over [xmin, xmax] × [ymin, ymax]; unset bounds
// default to graphing.DefaultRange.
func (s *Server) handlePlot(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	expr := q.Get("expr")
	if expr == "" {
		s.badRequest(w, "expr is required")
		return
	}

	xr, yr := graphing.DefaultRange, graphing.DefaultRange
	for _, b := range []struct {
		key string
		dst *float64
	}{
		{"xmin", &xr.Min}, {"xmax", &xr.Max}, {"ymin", &yr.Min}, {"ymax", &yr.Max},
	} {
		v := q.Get(b.key)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.badRequest(w, b.key+" must be a number")
			return
		}
		*b.dst = f
	}

	var buf bytes.Buffer
	if err := graphing.RenderPNG(&buf, expr, xr, yr); err != nil {
		s.badRequest(w, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SPDX-License-Identifier: MIT

package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/lvlmath/history"
	"github.com/katalvlaran/lvlmath/server"
	"github.com/katalvlaran/lvlmath/solver"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeSolver struct {
	sol  *solver.Solution
	err  error
	last solver.Request
}

func (f *fakeSolver) Solve(_ context.Context, req solver.Request) (*solver.Solution, error) {
	f.last = req
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return f.sol, f.err
}

type memStore struct {
	recs []history.Record
	seq  int
	err  error
}

func (m *memStore) Insert(_ context.Context, text, typ string, sol any) (history.Record, error) {
	if m.err != nil {
		return history.Record{}, m.err
	}
	data, err := json.Marshal(sol)
	if err != nil {
		return history.Record{}, err
	}
	m.seq++
	rec := history.Record{
		ID:           fmt.Sprintf("rec-%d", m.seq),
		ProblemText:  text,
		ProblemType:  typ,
		SolutionData: data,
		CreatedAt:    time.Unix(int64(m.seq), 0).UTC(),
	}
	m.recs = append([]history.Record{rec}, m.recs...)

	return rec, nil
}

func (m *memStore) List(_ context.Context, limit int) ([]history.Record, error) {
	if limit <= 0 || limit > history.MaxList {
		limit = history.MaxList
	}
	if limit > len(m.recs) {
		limit = len(m.recs)
	}

	return m.recs[:limit], nil
}

func (m *memStore) Get(_ context.Context, id string) (history.Record, error) {
	for _, r := range m.recs {
		if r.ID == id {
			return r, nil
		}
	}

	return history.Record{}, history.ErrNotFound
}

func (m *memStore) Delete(_ context.Context, id string) error {
	for i, r := range m.recs {
		if r.ID == id {
			m.recs = append(m.recs[:i], m.recs[i+1:]...)
			return nil
		}
	}

	return history.ErrNotFound
}

type ServerSuite struct {
	suite.Suite
	solver *fakeSolver
	store  *memStore
	srv    *server.Server
}

func (s *ServerSuite) SetupTest() {
	s.solver = &fakeSolver{sol: &solver.Solution{
		ProblemExtracted: "x^2 - 4 = 0",
		Solution:         &solver.Worked{FinalAnswer: "x = ±2"},
	}}
	s.store = &memStore{}
	s.srv = server.New(s.solver, s.store, server.WithLogger(zaptest.NewLogger(s.T())))
}

func (s *ServerSuite) do(method, target string, body any) *httptest.ResponseRecorder {
	var rd *bytes.Reader
	switch b := body.(type) {
	case nil:
		rd = bytes.NewReader(nil)
	case string:
		rd = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		s.Require().NoError(err)
		rd = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.srv.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func (s *ServerSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", decode[map[string]string](s.T(), rec)["status"])
}

func (s *ServerSuite) TestCORSPreflight() {
	rec := s.do(http.MethodOptions, "/api/solve", nil)
	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	s.Contains(rec.Header().Get("Access-Control-Allow-Headers"), "content-type")

	rec = s.do(http.MethodGet, "/healthz", nil)
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *ServerSuite) TestSolve_SavesHistory() {
	rec := s.do(http.MethodPost, "/api/solve", solver.Request{Problem: "x^2-4=0"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	sol := decode[solver.Solution](s.T(), rec)
	s.Equal("x = ±2", sol.Solution.FinalAnswer)
	s.Equal("rec-1", rec.Header().Get(server.HeaderHistoryID))

	s.Require().Len(s.store.recs, 1)
	s.Equal("x^2 - 4 = 0", s.store.recs[0].ProblemText)
	s.Equal(solver.TypeText, s.store.recs[0].ProblemType)
}

func (s *ServerSuite) TestSolve_EmptyProblem() {
	rec := s.do(http.MethodPost, "/api/solve", solver.Request{})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Empty(s.store.recs)
}

func (s *ServerSuite) TestSolve_BadJSON() {
	rec := s.do(http.MethodPost, "/api/solve", "{not json")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerSuite) TestSolve_UpstreamStatusMapping() {
	for _, tc := range []struct {
		err  error
		code int
		msg  string
	}{
		{fmt.Errorf("Solve: %w", solver.ErrRateLimited), http.StatusTooManyRequests, solver.ErrRateLimited.Error()},
		{fmt.Errorf("Solve: %w", solver.ErrUsageLimit), http.StatusPaymentRequired, solver.ErrUsageLimit.Error()},
		{fmt.Errorf("Solve: %w", solver.ErrUpstream), http.StatusInternalServerError, ""},
	} {
		s.solver.err = tc.err
		rec := s.do(http.MethodPost, "/api/solve", solver.Request{Problem: "1+1"})
		s.Equal(tc.code, rec.Code)
		if tc.msg != "" {
			s.Equal(tc.msg, decode[map[string]string](s.T(), rec)["error"])
		}
	}
	s.Empty(s.store.recs)
}

func (s *ServerSuite) TestSolve_StoreFailureStillAnswers() {
	s.store.err = fmt.Errorf("disk full")
	rec := s.do(http.MethodPost, "/api/solve", solver.Request{Problem: "1+1"})
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Header().Get(server.HeaderHistoryID))
}

func (s *ServerSuite) TestSolve_MultipartUpload() {
	var img bytes.Buffer
	s.Require().NoError(png.Encode(&img, image.NewGray(image.Rect(0, 0, 2, 2))))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	s.Require().NoError(mw.WriteField("problem", "solve the pictured equation"))
	fw, err := mw.CreateFormFile("file", "eq.png")
	s.Require().NoError(err)
	_, err = fw.Write(img.Bytes())
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/solve", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.srv.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("solve the pictured equation", s.solver.last.Problem)
	s.Equal("image/png", s.solver.last.MIMEType)
	s.True(s.solver.last.HasUpload())
	s.Equal(solver.TypeImage, s.store.recs[0].ProblemType)
}

func (s *ServerSuite) TestHistory_Lifecycle() {
	for i := 0; i < 3; i++ {
		rec := s.do(http.MethodPost, "/api/solve", solver.Request{Problem: fmt.Sprintf("p%d", i)})
		s.Require().Equal(http.StatusOK, rec.Code)
	}

	rec := s.do(http.MethodGet, "/api/history?limit=2", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	recs := decode[[]history.Record](s.T(), rec)
	s.Require().Len(recs, 2)
	s.Equal("rec-3", recs[0].ID)

	rec = s.do(http.MethodGet, "/api/history/rec-2", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("rec-2", decode[history.Record](s.T(), rec).ID)

	rec = s.do(http.MethodDelete, "/api/history/rec-2", nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/history/rec-2", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	rec = s.do(http.MethodDelete, "/api/history/rec-2", nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/history?limit=abc", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerSuite) TestMatrix() {
	rec := s.do(http.MethodPost, "/api/matrix", map[string]any{
		"op": "multiply",
		"a":  [][]float64{{1, 2}, {3, 4}},
		"b":  [][]float64{{5, 6}, {7, 8}},
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	out := decode[map[string]any](s.T(), rec)
	s.Equal(true, out["ok"])
	s.Equal([]any{[]any{19.0, 22.0}, []any{43.0, 50.0}}, out["matrix"])

	rec = s.do(http.MethodPost, "/api/matrix", map[string]any{
		"op": "inv",
		"a":  [][]float64{{1, 2}, {2, 4}},
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	out = decode[map[string]any](s.T(), rec)
	s.Equal(false, out["ok"])
	s.Equal("Singular matrix - no inverse exists", out["text"])

	rec = s.do(http.MethodPost, "/api/matrix", map[string]any{"op": "trace", "a": [][]float64{{1}}})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerSuite) TestIntegral() {
	rec := s.do(http.MethodGet, "/api/integral/rules", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Len(decode[[]map[string]any](s.T(), rec), 5)

	rec = s.do(http.MethodPost, "/api/integral", map[string]any{
		"rule":   "power",
		"params": map[string]float64{"a": 1, "n": 1},
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("0.5·x^2 + C", decode[map[string]string](s.T(), rec)["result"])

	rec = s.do(http.MethodPost, "/api/integral", map[string]any{"rule": "gamma"})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/integral", map[string]any{
		"rule":   "power",
		"params": map[string]float64{"z": 1},
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerSuite) TestCalc() {
	rec := s.do(http.MethodPost, "/api/calc", map[string]string{"expression": "2+3*4"})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("14", decode[map[string]string](s.T(), rec)["result"])

	rec = s.do(http.MethodPost, "/api/calc", map[string]string{"expression": "1/0"})
	s.Require().Equal(http.StatusOK, rec.Code)
	out := decode[map[string]string](s.T(), rec)
	s.Equal("Error", out["result"])
	s.NotEmpty(out["error"])
}

func (s *ServerSuite) TestCalc_OversizedBody() {
	big := `{"expression":"` + strings.Repeat("1+", server.MaxJSONBody) + `1"}`
	rec := s.do(http.MethodPost, "/api/calc", big)
	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	s.Contains(decode[map[string]string](s.T(), rec)["error"], "exceeds")

	rec = s.do(http.MethodPost, "/api/matrix", big)
	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
}

func (s *ServerSuite) TestCalc_DeepNesting() {
	src := strings.Repeat("(", 10000) + "1" + strings.Repeat(")", 10000)
	rec := s.do(http.MethodPost, "/api/calc", map[string]string{"expression": src})
	s.Require().Equal(http.StatusOK, rec.Code)
	out := decode[map[string]string](s.T(), rec)
	s.Equal("Error", out["result"])
	s.Contains(out["error"], "nesting")
}

func TestServer_SolveBodyCap(t *testing.T) {
	srv := server.New(&fakeSolver{}, nil, server.WithMaxUpload(64))
	body := `{"problem":"` + strings.Repeat("x", 512) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/solve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code, rec.Body.String())
}

func (s *ServerSuite) TestPlot() {
	rec := s.do(http.MethodGet, "/api/plot?expr=sin(x)&xmin=-3&xmax=3&ymin=-2&ymax=2", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("image/png", rec.Header().Get("Content-Type"))
	_, err := png.Decode(rec.Body)
	s.NoError(err)

	for _, q := range []string{"", "?expr=x&xmin=oops", "?expr=x&xmin=5&xmax=1", "?expr=(x"} {
		rec = s.do(http.MethodGet, "/api/plot"+q, nil)
		s.Equal(http.StatusBadRequest, rec.Code, q)
	}
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func TestServer_Unconfigured(t *testing.T) {
	srv := server.New(nil, nil)

	for _, tc := range []struct{ method, target, body string }{
		{http.MethodPost, "/api/solve", `{"problem":"1+1"}`},
		{http.MethodGet, "/api/history", ""},
		{http.MethodDelete, "/api/history/x", ""},
	} {
		req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, tc.target)
	}
}

func TestServer_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	server.New(nil, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/calc", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

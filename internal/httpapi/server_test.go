package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/legisignal/internal/features"
	"github.com/fyrsmithlabs/legisignal/internal/heatmap"
	"github.com/fyrsmithlabs/legisignal/internal/logging"
	"github.com/fyrsmithlabs/legisignal/internal/scoring"
)

var testNow = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T, cfg *Config) *Server {
	t.Helper()
	clock := func() time.Time { return testNow }
	extractor := features.NewExtractor(features.Config{}, features.WithClock(clock))
	scorer, err := scoring.NewScorer(scoring.Config{}, extractor, scoring.WithClock(clock))
	require.NoError(t, err)
	generator := heatmap.NewGenerator(heatmap.Config{}, heatmap.WithClock(clock))

	srv, err := NewServer(scorer, generator, logging.NewTestLogger().Logger, cfg)
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNewServerValidation(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("nil scorer rejected", func(t *testing.T) {
		_, err := NewServer(nil, heatmap.NewGenerator(heatmap.Config{}), logging.NewTestLogger().Logger, nil)
		require.Error(t, err)
	})

	t.Run("nil logger rejected", func(t *testing.T) {
		_, err := NewServer(srv.scorer, srv.generator, nil, nil)
		require.Error(t, err)
	})
}

func TestHealthz(t *testing.T) {
	rec := doJSON(t, newTestServer(t, nil), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "legisignal")
}

func TestScoreEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("single signal", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/v1/score",
			`{"signal":{"signal_id":"sig-1","title":"Veteran deadline notice","comments_close_date":"2026-09-03"}}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Results []scoring.Result `json:"results"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "sig-1", resp.Results[0].SignalID)
		assert.NotEmpty(t, resp.Results[0].Recommendations)
	})

	t.Run("batch preserves order", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/v1/score",
			`{"signals":[{"signal_id":"a"},{"signal_id":"b"}]}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Results []scoring.Result `json:"results"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 2)
		assert.Equal(t, "a", resp.Results[0].SignalID)
		assert.Equal(t, "b", resp.Results[1].SignalID)
	})

	t.Run("invalid shape rejected at the boundary", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/v1/score", `[1,2,3]`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty request rejected", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/v1/score", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestScoreImportanceEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodPost, "/v1/score/importance",
		`{"signal_id":"sig-2","title":"Mandatory compliance deadline"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var pred scoring.Prediction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pred))
	assert.Equal(t, "sig-2", pred.SignalID)
	assert.Len(t, pred.Factors, 5)
}

func TestHeatmapEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("empty input yields a valid empty map", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/v1/heatmap", `{}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var hm heatmap.HeatMap
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hm))
		assert.NotEmpty(t, hm.ID)
		assert.Equal(t, 0, hm.Total)
	})

	t.Run("bills and hearings", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/v1/heatmap",
			`{"bills":[{"bill_id":"hr-1","title":"Comprehensive Care Reform Act","latest_action_text":"Passed House"}],
			  "hearings":[{"event_id":"ev-1","title":"FY2027 VA Budget Review"}]}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var hm heatmap.HeatMap
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hm))
		assert.Equal(t, 2, hm.Total)
	})

	t.Run("invalid shape rejected", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/v1/heatmap", `"nope"`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRateLimit(t *testing.T) {
	srv := newTestServer(t, &Config{Host: "localhost", Port: 8750, RateLimit: 1, RateBurst: 1})

	first := doJSON(t, srv, http.MethodPost, "/v1/score", `{"signals":[{"signal_id":"a"}]}`)
	assert.Equal(t, http.StatusOK, first.Code)

	second := doJSON(t, srv, http.MethodPost, "/v1/score", `{"signals":[{"signal_id":"a"}]}`)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	// Unlimited endpoints stay reachable.
	health := doJSON(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, health.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	doJSON(t, srv, http.MethodPost, "/v1/score", `{"signals":[{"signal_id":"a"}]}`)

	rec := doJSON(t, srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "legisignal_signals_scored_total")
}

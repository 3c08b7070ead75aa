package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrov/caliber/internal/engine"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	eng := engine.New(engine.DefaultConfig(), nil)
	return NewServer(eng, nil, nil).Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProcessAttemptEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/attempts",
		`{"user_id":"alice","item_id":"i1","score":1,"binary_score":1,"time_taken":20000}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res engine.AttemptResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 1.0, res.Accuracy)
	assert.Greater(t, res.Rating, 1500.0, "rating should rise after a win")
}

func TestProcessAttemptEndpoint_Validation(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		name string
		body string
	}{
		{"missing ids", `{"score":1,"binary_score":1}`},
		{"score out of range", `{"user_id":"a","item_id":"i","score":1.5,"binary_score":1}`},
		{"bad binary score", `{"user_id":"a","item_id":"i","score":1,"binary_score":2}`},
		{"malformed body", `{"user_id":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/attempts", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestNextItemEndpoint(t *testing.T) {
	router := newTestRouter()

	// Empty candidate set is an explicit no-selection, not an error.
	w := doJSON(t, router, http.MethodPost, "/api/users/alice/next-item", `{"candidates":[]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Selected bool   `json:"selected"`
		ItemID   string `json:"item_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Selected)

	w = doJSON(t, router, http.MethodPost, "/api/users/alice/next-item",
		`{"candidates":["i1","i2"]}`)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.True(t, res.Selected)
	assert.Contains(t, []string{"i1", "i2"}, res.ItemID)
}

func TestCalibrateAndGetItem(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPut, "/api/items/i1",
		`{"difficulty":0.8,"discrimination":1.4,"concepts":["loops"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/items/i1", "")
	var item engine.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 0.8, item.Difficulty)
	assert.Equal(t, 1.4, item.Discrimination)
	assert.Equal(t, []string{"loops"}, item.Concepts)
}

func TestAnalyticsEndpoint(t *testing.T) {
	router := newTestRouter()
	doJSON(t, router, http.MethodPost, "/api/attempts",
		`{"user_id":"alice","item_id":"i1","score":1,"binary_score":1,"time_taken":20000}`)

	w := doJSON(t, router, http.MethodGet, "/api/users/alice/analytics", "")
	require.Equal(t, http.StatusOK, w.Code)

	var a engine.Analytics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &a))
	assert.Equal(t, 1, a.AttemptsTotal)
	assert.Equal(t, "alice", a.UserID)
}

func TestDifficultyEndpoints(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/users/alice/difficulty/adapt", "")
	require.Equal(t, http.StatusOK, w.Code)

	var ev struct {
		Adapted bool `json:"adapted"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ev))
	assert.False(t, ev.Adapted, "no history should mean no adaptation")

	w = doJSON(t, router, http.MethodGet, "/api/users/alice/difficulty", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/users/alice/difficulty/insights", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/users/alice/difficulty/optimal", "")
	assert.Equal(t, http.StatusBadRequest, w.Code, "concept parameter is required")

	w = doJSON(t, router, http.MethodGet, "/api/users/alice/difficulty/optimal?concept=loops", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSkillGapEndpoints(t *testing.T) {
	router := newTestRouter()
	doJSON(t, router, http.MethodPut, "/api/items/i1",
		`{"difficulty":0,"discrimination":1,"concepts":["recursion"]}`)
	for i := 0; i < 4; i++ {
		doJSON(t, router, http.MethodPost, "/api/attempts",
			`{"user_id":"alice","item_id":"i1","score":0,"binary_score":0,"time_taken":40000}`)
	}

	w := doJSON(t, router, http.MethodGet, "/api/users/alice/gaps", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Gaps []struct {
			Concept string `json:"concept"`
		} `json:"gaps"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Gaps)

	concepts := make([]string, len(res.Gaps))
	for i, g := range res.Gaps {
		concepts[i] = g.Concept
	}
	assert.Contains(t, concepts, "recursion")
}

func TestImprovementPathEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/users/alice/improvement-path", "")
	assert.Equal(t, http.StatusBadRequest, w.Code, "target parameter is required")

	w = doJSON(t, router, http.MethodGet, "/api/users/alice/improvement-path?target=loops", "")
	require.Equal(t, http.StatusOK, w.Code)

	var path struct {
		TargetConcept string   `json:"target_concept"`
		Sequence      []string `json:"sequence"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &path))
	assert.Equal(t, "loops", path.TargetConcept)
	assert.NotEmpty(t, path.Sequence)
}

func TestStatsAndHealth(t *testing.T) {
	router := newTestRouter()
	doJSON(t, router, http.MethodPost, "/api/attempts",
		`{"user_id":"alice","item_id":"i1","score":0,"binary_score":0,"time_taken":20000}`)

	w := doJSON(t, router, http.MethodGet, "/api/stats", "")
	var stats engine.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, engine.Stats{Users: 1, Items: 1, TotalAttempts: 1}, stats)

	w = doJSON(t, router, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

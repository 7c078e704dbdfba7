package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Evgen-Mutagen/go-cost-manager/internal/model"
	"github.com/Evgen-Mutagen/go-cost-manager/internal/repository"
)

var errStoreDown = errors.New("connection refused")

type brokenStore struct {
	*repository.MemoryStore
}

func (brokenStore) Costs() repository.CostRepository { return brokenCosts{} }

func (brokenStore) Ping(context.Context) error { return errStoreDown }

type brokenCosts struct{}

func (brokenCosts) Create(context.Context, *model.Cost) error { return errStoreDown }

func (brokenCosts) GetByUserID(context.Context, int64) ([]*model.Cost, error) {
	return nil, errStoreDown
}

func (brokenCosts) GetByUserIDInRange(context.Context, int64, time.Time, time.Time) ([]*model.Cost, error) {
	return nil, errStoreDown
}

func newTestApp(t *testing.T, store repository.Store) *App {
	t.Helper()
	cfg := &Config{RunAddress: ":0", Location: time.UTC}
	return New(cfg, store, zaptest.NewLogger(t))
}

func seededStore(t *testing.T) *repository.MemoryStore {
	t.Helper()
	store := repository.NewMemoryStore()
	require.NoError(t, store.AddUser(model.User{ID: 123, FirstName: "Dana", LastName: "Levi"}))
	return store
}

func do(t *testing.T, a *App, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	var decoded map[string]any
	if strings.HasPrefix(strings.TrimSpace(rr.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded), rr.Body.String())
	}
	return rr, decoded
}

func TestAddCost(t *testing.T) {
	a := newTestApp(t, seededStore(t))

	rr, body := do(t, a, http.MethodPost, "/api/add",
		`{"userid":123,"description":"groceries","category":"food","sum":50,"createdAt":"2024-03-05T09:00:00Z"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	assert.NotEmpty(t, body["_id"])
	assert.EqualValues(t, 123, body["userid"])
	assert.Equal(t, "groceries", body["description"])
	assert.Equal(t, "food", body["category"])
	assert.EqualValues(t, 50, body["sum"])
	assert.Equal(t, "2024-03-05T09:00:00Z", body["createdAt"])
}

func TestAddCostAcceptsNumericStrings(t *testing.T) {
	a := newTestApp(t, seededStore(t))

	rr, body := do(t, a, http.MethodPost, "/api/add",
		`{"userid":"123","description":"gym","category":"sport","sum":"30.5"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.EqualValues(t, 123, body["userid"])
	assert.EqualValues(t, 30.5, body["sum"])

	createdAt, err := time.Parse(time.RFC3339Nano, body["createdAt"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), createdAt, time.Minute)
}

func TestAddCostErrors(t *testing.T) {
	store := seededStore(t)
	a := newTestApp(t, store)

	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantError string
	}{
		{"missing sum", `{"userid":123,"description":"x","category":"food"}`, http.StatusBadRequest, "Missing required fields"},
		{"zero sum", `{"userid":123,"description":"x","category":"food","sum":0}`, http.StatusBadRequest, "Missing required fields"},
		{"empty body", ``, http.StatusBadRequest, "Missing required fields"},
		{"malformed", `{"userid":`, http.StatusBadRequest, "Invalid request format"},
		{"non-numeric sum", `{"userid":123,"description":"x","category":"food","sum":"lots"}`, http.StatusBadRequest, "Invalid request format"},
		{"bad date", `{"userid":123,"description":"x","category":"food","sum":5,"createdAt":"someday"}`, http.StatusBadRequest, "Invalid createdAt"},
		{"unknown user", `{"userid":999,"description":"x","category":"food","sum":5}`, http.StatusNotFound, "User not found"},
		{"NaN sum", `{"userid":123,"description":"x","category":"food","sum":"NaN"}`, http.StatusBadRequest, "Missing required fields"},
		{"NaN userid", `{"userid":"NaN","description":"x","category":"food","sum":5}`, http.StatusBadRequest, "Missing required fields"},
		{"infinite sum", `{"userid":123,"description":"x","category":"food","sum":"Infinity"}`, http.StatusBadRequest, "Invalid request format"},
		{"numeric description", `{"userid":123,"description":42,"category":"food","sum":5}`, http.StatusBadRequest, "Invalid request format"},
		{"boolean createdAt", `{"userid":123,"description":"x","category":"food","sum":5,"createdAt":true}`, http.StatusBadRequest, "Invalid request format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, body := do(t, a, http.MethodPost, "/api/add", tt.body)
			assert.Equal(t, tt.wantCode, rr.Code, rr.Body.String())
			assert.Equal(t, tt.wantError, body["error"])
		})
	}

	costs, err := store.Costs().GetByUserID(context.Background(), 123)
	require.NoError(t, err)
	assert.Empty(t, costs)

	rr, body := do(t, a, http.MethodGet, "/api/users/123", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.EqualValues(t, 0, body["total"])

	rr, _ = do(t, a, http.MethodGet, "/api/report?id=123&year=2024&month=3", "")
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func TestAddCostEpochMillisCreatedAt(t *testing.T) {
	a := newTestApp(t, seededStore(t))

	rr, body := do(t, a, http.MethodPost, "/api/add",
		`{"userid":123,"description":"groceries","category":"food","sum":50,"createdAt":1709625600000}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "2024-03-05T08:00:00Z", body["createdAt"])

	rr, _ = do(t, a, http.MethodGet, "/api/report?id=123&year=2024&month=3", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"food":[{"sum":50,"description":"groceries","day":5}]`)
}

func TestAddCostInvalidCategoryListsValidOnes(t *testing.T) {
	a := newTestApp(t, seededStore(t))

	rr, body := do(t, a, http.MethodPost, "/api/add",
		`{"userid":123,"description":"bus","category":"transport","sum":5}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid category", body["error"])
	assert.Equal(t, []any{"food", "health", "housing", "sport", "education"}, body["validCategories"])
}

func TestMonthlyReport(t *testing.T) {
	a := newTestApp(t, seededStore(t))
	for _, payload := range []string{
		`{"userid":123,"description":"groceries","category":"food","sum":50,"createdAt":"2024-03-05"}`,
		`{"userid":123,"description":"rent","category":"housing","sum":200,"createdAt":"2024-03-20"}`,
		`{"userid":123,"description":"bakery","category":"food","sum":30,"createdAt":"2024-04-01"}`,
	} {
		rr, _ := do(t, a, http.MethodPost, "/api/add", payload)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	}

	rr, _ := do(t, a, http.MethodGet, "/api/report?id=123&year=2024&month=3", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{
		"userid": 123,
		"year": 2024,
		"month": 3,
		"costs": {
			"food": [{"sum": 50, "description": "groceries", "day": 5}],
			"health": [],
			"housing": [{"sum": 200, "description": "rent", "day": 20}],
			"sport": [],
			"education": []
		}
	}`, rr.Body.String())

	rr, body := do(t, a, http.MethodGet, "/api/users/123", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, map[string]any{
		"first_name": "Dana",
		"last_name":  "Levi",
		"id":         float64(123),
		"total":      float64(280),
	}, body)
}

func TestMonthlyReportErrors(t *testing.T) {
	a := newTestApp(t, seededStore(t))

	tests := []struct {
		target    string
		wantCode  int
		wantError string
	}{
		{"/api/report?id=123&month=3", http.StatusBadRequest, "Missing required query parameters: id, year, month"},
		{"/api/report", http.StatusBadRequest, "Missing required query parameters: id, year, month"},
		{"/api/report?id=abc&year=2024&month=3", http.StatusBadRequest, "Query parameters id, year, and month must be numbers"},
		{"/api/report?id=999&year=2024&month=3", http.StatusNotFound, "User not found"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rr, body := do(t, a, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestUserDetailsErrors(t *testing.T) {
	a := newTestApp(t, seededStore(t))

	rr, body := do(t, a, http.MethodGet, "/api/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid user ID", body["error"])

	rr, body = do(t, a, http.MethodGet, "/api/users/42", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "User not found", body["error"])
}

func TestUserDetailsWithoutCosts(t *testing.T) {
	a := newTestApp(t, seededStore(t))

	rr, body := do(t, a, http.MethodGet, "/api/users/123", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.EqualValues(t, 0, body["total"])
}

func TestAbout(t *testing.T) {
	a := newTestApp(t, seededStore(t))

	rr, _ := do(t, a, http.MethodGet, "/api/about", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`[{"first_name":"Ofek","last_name":"Vaknin"},{"first_name":"Mark David","last_name":"Boyko"}]`,
		rr.Body.String())
}

func TestStoreFailuresAreServerErrors(t *testing.T) {
	a := newTestApp(t, brokenStore{seededStore(t)})

	for _, tc := range []struct{ method, target, body string }{
		{http.MethodPost, "/api/add", `{"userid":123,"description":"x","category":"food","sum":5}`},
		{http.MethodGet, "/api/report?id=123&year=2024&month=3", ""},
		{http.MethodGet, "/api/users/123", ""},
	} {
		rr, body := do(t, a, tc.method, tc.target, tc.body)
		assert.Equal(t, http.StatusInternalServerError, rr.Code, tc.target)
		assert.Equal(t, "Server error", body["error"])
		assert.Contains(t, body["message"], "connection refused")
	}
}

func TestHealth(t *testing.T) {
	rr, body := do(t, newTestApp(t, seededStore(t)), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", body["status"])

	rr, body = do(t, newTestApp(t, brokenStore{seededStore(t)}), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "unavailable", body["status"])
}

func TestUnknownRoutes(t *testing.T) {
	a := newTestApp(t, seededStore(t))

	rr, body := do(t, a, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Not found", body["error"])

	rr, body = do(t, a, http.MethodGet, "/api/add", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "Method not allowed", body["error"])
}

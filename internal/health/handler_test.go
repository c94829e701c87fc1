// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err error
}

func (s stubChecker) Ping(context.Context) error {
	return s.err
}

func newTestHandler(dbErr, redisErr error) *Handler {
	return NewHandler(
		stubChecker{err: dbErr},
		stubChecker{err: redisErr},
		"postgres",
	)
}

func get(
	t *testing.T,
	h *Handler,
	path string,
) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	r.Route("/api", func(r chi.Router) {
		h.RegisterAPIRoutes(r)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestTest(t *testing.T) {
	h := newTestHandler(nil, nil)

	rec, body := get(t, h, "/api/test")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Backend is running", body["message"])
	assert.Equal(t, "Connected to postgres", body["database"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestHealth(t *testing.T) {
	t.Run("DatabaseReachable", func(t *testing.T) {
		h := newTestHandler(nil, nil)

		rec, body := get(t, h, "/api/health")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "Database connection successful", body["message"])
	})

	t.Run("DatabaseDown", func(t *testing.T) {
		h := newTestHandler(errors.New("connection refused"), nil)

		rec, body := get(t, h, "/api/health")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Database connection failed", body["message"])
	})
}

func TestLiveness(t *testing.T) {
	h := newTestHandler(nil, nil)

	rec, body := get(t, h, "/livez")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])

	h.SetShutdown(true)
	rec, body = get(t, h, "/livez")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "shutting_down", body["status"])
}

func TestReadiness(t *testing.T) {
	t.Run("AllHealthy", func(t *testing.T) {
		h := newTestHandler(nil, nil)

		rec, body := get(t, h, "/readyz")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", body["status"])

		checks, ok := body["checks"].([]any)
		require.True(t, ok)
		assert.Len(t, checks, 2)
	})

	t.Run("RedisDown", func(t *testing.T) {
		h := newTestHandler(nil, errors.New("connection refused"))

		rec, body := get(t, h, "/readyz")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "degraded", body["status"])
	})

	t.Run("NotReady", func(t *testing.T) {
		h := newTestHandler(nil, nil)
		h.SetReady(false)

		rec, body := get(t, h, "/readyz")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "not_ready", body["status"])
	})
}

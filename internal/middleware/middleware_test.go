package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-redis/redis_rate/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/konradlukasiewicz/brotein-shake/internal/telemetry/metrics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPanicRecovery(t *testing.T) {
	metricsManager := metrics.NewTestManager()
	server := PanicRecovery(metricsManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	require.NotPanics(t, func() {
		server.ServeHTTP(rr, req)
	})
}

func TestCors(t *testing.T) {
	server := Cors()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://localhost:8080", rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rr = httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRequestMetrics(t *testing.T) {
	metricsManager := metrics.NewTestManager()
	server := RequestMetrics(metricsManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/planner/splits", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

type fakeRateLimiter struct {
	allowed int
}

func (f *fakeRateLimiter) Allow(_ context.Context, _ string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	return &redis_rate.Result{Allowed: f.allowed}, nil
}

func TestRateLimit(t *testing.T) {
	metricsManager := metrics.NewTestManager()

	allowing := RateLimit(&fakeRateLimiter{allowed: 1}, "login", 5, metricsManager)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)
	req := httptest.NewRequest(http.MethodPost, "/a/login", nil)
	rr := httptest.NewRecorder()
	allowing.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	blocking := RateLimit(&fakeRateLimiter{allowed: 0}, "login", 5, metricsManager)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)
	rr = httptest.NewRecorder()
	blocking.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTooEarly, rr.Code)
}

func TestDrainAndCloseRequest(t *testing.T) {
	server := DrainAndCloseRequest()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	return rr.Body.String()
}

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/notes/{id}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/notes/n1", nil))
	}

	assert.Contains(t, scrape(t, m), `http_requests_total{method="GET",route="/notes/{id}",status="418"} 2`)
}

func TestObserveAuth(t *testing.T) {
	m := New()
	m.ObserveAuth(AuthMissing)
	m.ObserveAuth(AuthMissing)
	m.ObserveAuth(AuthOK)

	body := scrape(t, m)
	assert.Contains(t, body, `auth_gate_decisions_total{outcome="missing"} 2`)
	assert.Contains(t, body, `auth_gate_decisions_total{outcome="ok"} 1`)
}

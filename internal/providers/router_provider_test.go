package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dummyHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func TestRouterProvider_MethodPatterns(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/logs", dummyHandler())
	rp.Post("/logs", dummyHandler())
	rp.Put("/logs/{id}", dummyHandler())
	rp.Delete("/logs/{id}", dummyHandler())

	routes := rp.GetRoutes()
	require.Len(t, routes, 4)
	assert.Equal(t, "GET /logs", routes[0].Url)
	assert.Equal(t, "POST /logs", routes[1].Url)
	assert.Equal(t, "PUT /logs/{id}", routes[2].Url)
	assert.Equal(t, "DELETE /logs/{id}", routes[3].Url)
}

func TestRouterProvider_MuxRejectsWrongMethod(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/test", dummyHandler())

	mux := http.NewServeMux()
	for _, route := range rp.GetRoutes() {
		mux.Handle(route.Url, route.Handler)
	}

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/test", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

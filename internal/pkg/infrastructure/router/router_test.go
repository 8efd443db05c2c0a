package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func TestListedOriginIsAllowedWithCredentials(t *testing.T) {
	is := is.New(t)

	resp := testRequest(New("test", "http://localhost:3000"), "http://localhost:3000")

	is.Equal(resp.Header().Get("Access-Control-Allow-Origin"), "http://localhost:3000")
	is.Equal(resp.Header().Get("Access-Control-Allow-Credentials"), "true")
}

func TestUnlistedOriginIsNotAllowed(t *testing.T) {
	is := is.New(t)

	resp := testRequest(New("test", "http://localhost:3000"), "http://evil.example.com")

	is.Equal(resp.Header().Get("Access-Control-Allow-Origin"), "")
}

func TestWildcardOriginDoesNotAllowCredentials(t *testing.T) {
	is := is.New(t)

	resp := testRequest(New("test"), "http://evil.example.com")

	is.Equal(resp.Header().Get("Access-Control-Allow-Origin"), "*")
	is.Equal(resp.Header().Get("Access-Control-Allow-Credentials"), "")
}

func testRequest(r *chi.Mux, origin string) *httptest.ResponseRecorder {
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", origin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

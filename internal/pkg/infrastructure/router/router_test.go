package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	is := is.New(t)

	r := New("test", []string{"https://app.example.com"})
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	is.Equal(w.Code, http.StatusNoContent)
	is.Equal(w.Header().Get("Access-Control-Allow-Origin"), "https://app.example.com")
}

func TestCORSIgnoresUnknownOrigin(t *testing.T) {
	is := is.New(t)

	r := New("test", []string{"https://app.example.com"})
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	is.Equal(w.Header().Get("Access-Control-Allow-Origin"), "")
}

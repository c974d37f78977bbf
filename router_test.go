package pagetable

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestStdRouter(t *testing.T) {
	mux := http.NewServeMux()
	stdRouter := NewRouter(mux)

	stdRouter.HandleMethod(http.MethodGet, "/handle", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("StdRouter HandleMethod"))
	}))
	stdRouter.HandleMethod(http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("root"))
	}))

	{
		req := httptest.NewRequest(http.MethodGet, "/handle", http.NoBody)
		rec := httptest.NewRecorder()
		stdRouter.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
		if rec.Body.String() != "StdRouter HandleMethod" {
			t.Errorf("expected body %q, got %q", "StdRouter HandleMethod", rec.Body.String())
		}
	}
	{
		// "/" only matches the root, not every path
		req := httptest.NewRequest(http.MethodGet, "/other", http.NoBody)
		rec := httptest.NewRecorder()
		stdRouter.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
		}
	}
	{
		req := httptest.NewRequest(http.MethodPost, "/handle", http.NoBody)
		rec := httptest.NewRecorder()
		stdRouter.ServeHTTP(rec, req)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
		}
	}
}

func TestChiRouter(t *testing.T) {
	r := NewChiRouter(chi.NewRouter())

	r.HandleMethod(http.MethodGet, "/withid/{id}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ChiRouter with ID: " + chi.URLParam(r, "id")))
	}))
	r.HandleMethod("", "/any", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("any " + r.Method))
	}))

	{
		req := httptest.NewRequest(http.MethodGet, "/withid/123", http.NoBody)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
		if rec.Body.String() != "ChiRouter with ID: 123" {
			t.Errorf("expected body %q, got %q", "ChiRouter with ID: 123", rec.Body.String())
		}
	}
	{
		req := httptest.NewRequest(http.MethodPut, "/any", http.NoBody)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Body.String() != "any PUT" {
			t.Errorf("expected body %q, got %q", "any PUT", rec.Body.String())
		}
	}
}

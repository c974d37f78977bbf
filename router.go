package pagetable

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is an interface for registering HTTP routes.
// It lets a Handler mount its table onto different routing implementations.
type Router interface {
	HandleMethod(method, pattern string, handler http.Handler)
}

type stdRouter struct {
	router *http.ServeMux
}

// NewRouter creates a new router that wraps http.ServeMux.
// If router is nil, it uses http.DefaultServeMux.
//
// Example:
//
//	mux := http.NewServeMux()
//	h := pagetable.NewHandler(table)
//	h.Mount(pagetable.NewRouter(mux))
func NewRouter(router *http.ServeMux) *stdRouter {
	if router == nil {
		router = http.DefaultServeMux
	}
	return &stdRouter{router: router}
}

func (r *stdRouter) HandleMethod(method, pattern string, handler http.Handler) {
	if pattern == "/" {
		pattern = "/{$}"
	}
	if method != "" {
		pattern = method + " " + pattern
	}
	r.router.Handle(pattern, handler)
}

func (r *stdRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

type chiRouter struct {
	router chi.Router
}

// NewChiRouter adapts a chi.Router to Router.
func NewChiRouter(r chi.Router) *chiRouter {
	return &chiRouter{router: r}
}

func (r *chiRouter) HandleMethod(method, pattern string, handler http.Handler) {
	if method == "" {
		r.router.Handle(pattern, handler)
	} else {
		r.router.Method(method, pattern, handler)
	}
}

func (r *chiRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

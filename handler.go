package pagetable

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/angelofallars/htmx-go"
)

// MiddlewareFunc wraps the handler of a route. The not-found handler is
// wrapped with the zero Route.
type MiddlewareFunc func(http.Handler, Route) http.Handler

// Layout wraps page content into a full document. m is the zero Match when
// rendering the not-found page.
type Layout func(m Match, content templ.Component) templ.Component

var errNilComponent = errors.New("page returned a nil component")

// Handler serves a Table over HTTP. Each request is resolved through the
// table and the matching page is rendered; a path with no match gets the
// not-found page with status 404.
//
// For htmx requests only the page content is rendered and HX-Push-Url is set,
// so the browser history follows the navigation. Other requests get the
// content wrapped in the layout.
type Handler struct {
	table       *Table
	layout      Layout
	notFound    templ.Component
	onError     func(http.ResponseWriter, *http.Request, error)
	middlewares []MiddlewareFunc
	logger      *slog.Logger

	pages   map[string]http.Handler
	missing http.Handler
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLayout sets the layout wrapping full page renders.
func WithLayout(layout Layout) HandlerOption {
	return func(h *Handler) {
		h.layout = layout
	}
}

// WithNotFound sets the component rendered when no route matches.
func WithNotFound(c templ.Component) HandlerOption {
	return func(h *Handler) {
		h.notFound = c
	}
}

// WithErrorHandler sets the function called when a page fails to render.
// Nothing has been written to w when it is called.
func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) HandlerOption {
	return func(h *Handler) {
		h.onError = onError
	}
}

// WithMiddlewares adds middlewares applied to every route handler and the
// not-found handler. They are applied in order, so the last one is outermost.
func WithMiddlewares(middlewares ...MiddlewareFunc) HandlerOption {
	return func(h *Handler) {
		h.middlewares = append(h.middlewares, middlewares...)
	}
}

// WithLogger sets the logger. It defaults to slog.Default().
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

// NewHandler creates a Handler serving t.
func NewHandler(t *Table, opts ...HandlerOption) *Handler {
	h := &Handler{
		table:    t,
		layout:   func(_ Match, content templ.Component) templ.Component { return content },
		notFound: defaultNotFound,
		logger:   slog.Default(),
	}
	h.onError = h.defaultError
	for _, opt := range opts {
		opt(h)
	}

	h.pages = make(map[string]http.Handler, len(t.routes))
	for _, route := range t.routes {
		h.pages[route.Name] = h.wrap(http.HandlerFunc(h.servePage), route)
	}
	h.missing = h.wrap(http.HandlerFunc(h.serveNotFound), Route{})
	return h
}

func (h *Handler) wrap(handler http.Handler, route Route) http.Handler {
	for _, mw := range h.middlewares {
		handler = mw(handler, route)
	}
	return handler
}

// Table returns the table served by h.
func (h *Handler) Table() *Table { return h.table }

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := tableCtx.WithValue(r.Context(), h.table)
	m, ok := h.table.Resolve(r.URL.EscapedPath())
	if !ok {
		h.missing.ServeHTTP(w, r.WithContext(ctx))
		return
	}
	ctx = matchCtx.WithValue(ctx, &m)
	h.pages[m.Route.Name].ServeHTTP(w, r.WithContext(ctx))
}

// Mount registers the concrete patterns of every route with GET on router.
// A route with an optional parameter registers both forms, so /editor/{id?}
// registers /editor and /editor/{id}. All of them are served by h, which
// resolves the path through the table again; mount h as the router's
// not-found handler too so that trailing slash and case tolerance apply.
func (h *Handler) Mount(router Router) {
	seen := make(map[string]bool)
	for _, p := range h.table.patterns {
		for _, concrete := range p.expand() {
			shape := patternShape(concrete)
			if seen[shape] {
				continue
			}
			seen[shape] = true
			router.HandleMethod(http.MethodGet, concrete, h)
		}
	}
}

// patternShape drops parameter names so /a/{x} and /a/{y} compare equal.
func patternShape(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		if strings.HasPrefix(part, "{") {
			parts[i] = "{}"
		}
	}
	return strings.Join(parts, "/")
}

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request) {
	m, ok := MatchFromContext(r.Context())
	if !ok {
		h.onError(w, r, errors.New("no route match in context"))
		return
	}
	content := m.Route.Page.Page(m.Props())
	if content == nil {
		h.onError(w, r, fmt.Errorf("route %s: %w", m.Route.Name, errNilComponent))
		return
	}
	if isPartial(r) {
		hx := htmx.NewResponse().PushURL(r.URL.RequestURI())
		h.render(w, r, http.StatusOK, content, &hx)
		return
	}
	h.render(w, r, http.StatusOK, h.layout(m, content), nil)
}

func (h *Handler) serveNotFound(w http.ResponseWriter, r *http.Request) {
	if isPartial(r) {
		h.render(w, r, http.StatusNotFound, h.notFound, nil)
		return
	}
	h.render(w, r, http.StatusNotFound, h.layout(Match{}, h.notFound), nil)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, comp templ.Component, hx *htmx.Response) {
	bw := newBuffered(w)
	if err := comp.Render(r.Context(), bw); err != nil {
		bw.discard()
		h.onError(w, r, fmt.Errorf("render %s: %w", r.URL.Path, err))
		return
	}
	if hx != nil {
		headers, err := hx.Headers()
		if err != nil {
			bw.discard()
			h.onError(w, r, fmt.Errorf("htmx headers: %w", err))
			return
		}
		for k, v := range headers {
			w.Header().Set(k, v)
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := bw.close(status); err != nil {
		h.logger.DebugContext(r.Context(), "write response", "path", r.URL.Path, "error", err)
	}
}

func (h *Handler) defaultError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "serve page", "path", r.URL.Path, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

var defaultNotFound = templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, "<h1>404 page not found</h1>")
	return err
})

package pagetable

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Logging logs every navigation served by the handler at info level, with the
// route name, path, kind (full or htmx), status and duration.
func Logging(logger *slog.Logger) MiddlewareFunc {
	return func(next http.Handler, route Route) http.Handler {
		name := routeLabel(route)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.LogAttrs(r.Context(), slog.LevelInfo, "navigate",
				slog.String("route", name),
				slog.String("path", r.URL.Path),
				slog.String("kind", requestKind(r)),
				slog.Int("status", statusOf(ww)),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func routeLabel(route Route) string {
	if route.Name == "" {
		return "not_found"
	}
	return route.Name
}

func statusOf(ww middleware.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}

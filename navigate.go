package pagetable

import (
	"net/http"

	"github.com/angelofallars/htmx-go"
)

type navigateOptions struct {
	status int
	reload bool
}

// NavigateOption configures Navigate.
type NavigateOption func(*navigateOptions)

// WithStatus sets the redirect status used for non-htmx requests.
// The default is 303 See Other.
func WithStatus(code int) NavigateOption {
	return func(o *navigateOptions) {
		o.status = code
	}
}

// WithReload makes htmx clients do a full page load instead of swapping
// content.
func WithReload() NavigateOption {
	return func(o *navigateOptions) {
		o.reload = true
	}
}

// Navigate redirects the client to path. htmx clients get HX-Location, which
// swaps the new page in and pushes it onto the history, or HX-Redirect with
// WithReload. Other clients get a plain HTTP redirect.
func Navigate(w http.ResponseWriter, r *http.Request, path string, opts ...NavigateOption) error {
	o := navigateOptions{status: http.StatusSeeOther}
	for _, opt := range opts {
		opt(&o)
	}
	if htmx.IsHTMX(r) {
		resp := htmx.NewResponse()
		if o.reload {
			resp = resp.Redirect(path)
		} else {
			resp = resp.Location(path)
		}
		return resp.Write(w)
	}
	http.Redirect(w, r, path, o.status)
	return nil
}

// NavigateTo is Navigate to the path of a named route, built with URLFor.
func NavigateTo(w http.ResponseWriter, r *http.Request, name string, args ...any) error {
	path, err := URLFor(r.Context(), name, args...)
	if err != nil {
		return err
	}
	return Navigate(w, r, path)
}

package pagetable

import (
	"net/http"

	"github.com/angelofallars/htmx-go"
)

// isPartial reports whether r only wants the page content. History restore
// requests are htmx requests that still need the full document.
func isPartial(r *http.Request) bool {
	return htmx.IsHTMX(r) && !htmx.IsHistoryRestoreRequest(r)
}

func requestKind(r *http.Request) string {
	if isPartial(r) {
		return "htmx"
	}
	return "full"
}

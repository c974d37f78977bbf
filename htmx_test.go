package pagetable

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_requestKind(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "plain request", want: "full"},
		{name: "htmx request", headers: map[string]string{"HX-Request": "true"}, want: "htmx"},
		{name: "boosted link", headers: map[string]string{"HX-Request": "true", "HX-Boosted": "true"}, want: "htmx"},
		{
			name:    "history restore",
			headers: map[string]string{"HX-Request": "true", "HX-History-Restore-Request": "true"},
			want:    "full",
		},
		{name: "not true", headers: map[string]string{"HX-Request": "false"}, want: "full"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if diff := cmp.Diff(tt.want, requestKind(req)); diff != "" {
				t.Errorf("requestKind() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

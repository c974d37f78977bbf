//lint:file-ignore U1000 Ignore unused code in test file

package pagetable

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type textPage struct{}

func (textPage) Page(Props) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "text")
		return err
	})
}

type ptrPage struct{}

func (*ptrPage) Page(Props) templ.Component { return textPage{}.Page(nil) }

type notAPage struct{}

func TestParse(t *testing.T) {
	type pages struct {
		home        textPage  `route:"/ home"`
		dashboard   *ptrPage  `route:"/dashboard"`
		editor      textPage  `route:"/editor/{id?} editor props"`
		aiAssistant ptrPage   `route:"/ai-assistant"`
		untagged    notAPage
	}

	routes, err := Parse(&pages{})
	require.NoError(t, err)
	require.Len(t, routes, 4)

	want := []struct {
		path, name string
		props      bool
	}{
		{"/", "home", false},
		{"/dashboard", "dashboard", false},
		{"/editor/{id?}", "editor", true},
		{"/ai-assistant", "ai-assistant", false},
	}
	for i, w := range want {
		assert.Equal(t, w.path, routes[i].Path)
		assert.Equal(t, w.name, routes[i].Name)
		assert.Equal(t, w.props, routes[i].Props)
		assert.NotNil(t, routes[i].Page)
	}

	table, err := New(routes)
	require.NoError(t, err)
	m, ok := table.Resolve("/editor/9")
	require.True(t, ok)
	assert.Equal(t, "editor", m.Route.Name)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		v       any
		wantErr string
	}{
		{name: "nil", v: nil, wantErr: "nil value"},
		{name: "not a struct", v: "pages", wantErr: "not a struct"},
		{
			name: "field is not a page",
			v: struct {
				p notAPage `route:"/p"`
			}{},
			wantErr: "does not implement Page",
		},
		{
			name: "empty tag",
			v: struct {
				p textPage `route:""`
			}{},
			wantErr: "empty route tag",
		},
		{
			name: "unknown flag",
			v: struct {
				p textPage `route:"/p p readonly"`
			}{},
			wantErr: "unknown route flag",
		},
		{
			name: "too many fields",
			v: struct {
				p textPage `route:"/p p props extra"`
			}{},
			wantErr: "too many fields",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.v)
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr), "got %v", err)
		})
	}
}

func Test_kebabCase(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"", ""},
		{"home", "home"},
		{"aiAssistant", "ai-assistant"},
		{"Dashboard", "dashboard"},
		{"bioEditorPage", "bio-editor-page"},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			assert.Equal(t, tt.want, kebabCase(tt.s))
		})
	}
}

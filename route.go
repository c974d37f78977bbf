package pagetable

import (
	"maps"

	"github.com/a-h/templ"
)

// Page is the target of a Route. Page returns the component that mounts the
// page for the given props.
type Page interface {
	Page(props Props) templ.Component
}

// PageFunc adapts a function to the Page interface.
type PageFunc func(props Props) templ.Component

func (f PageFunc) Page(props Props) templ.Component { return f(props) }

// Props are the inputs a page receives from the path parameters of its route.
type Props map[string]string

// Get returns the named prop and whether it was present.
func (p Props) Get(name string) (string, bool) {
	v, ok := p[name]
	return v, ok
}

// Route maps a path pattern to a page.
//
// Path is made of static segments and {name} parameters. The last segment may
// be an optional parameter written {name?}. When Props is true, matched
// parameters are forwarded to the page.
type Route struct {
	Path  string
	Name  string
	Page  Page
	Props bool
}

// Match is the result of resolving a path against a Table.
type Match struct {
	Route  Route
	Path   string
	Params map[string]string
}

// Props returns the props the matched page receives. It is empty unless the
// route forwards its parameters.
func (m Match) Props() Props {
	if !m.Route.Props || len(m.Params) == 0 {
		return Props{}
	}
	return Props(maps.Clone(m.Params))
}

package pagetable

import (
	"fmt"
	"slices"
	"strings"
)

// Table is an ordered set of routes. It is immutable after New and safe for
// concurrent use.
type Table struct {
	routes    []Route
	patterns  []pattern
	byName    map[string]int
	strict    bool
	sensitive bool
}

// Option configures how a Table matches paths.
type Option func(*Table)

// WithStrict disables trailing slash tolerance: /dashboard/ no longer
// matches /dashboard.
func WithStrict() Option {
	return func(t *Table) {
		t.strict = true
	}
}

// WithSensitive makes static segments match case-sensitively.
func WithSensitive() Option {
	return func(t *Table) {
		t.sensitive = true
	}
}

// New validates routes and builds a Table from them. Routes keep their order;
// when patterns overlap the earlier route wins.
func New(routes []Route, opts ...Option) (*Table, error) {
	t := &Table{
		routes:   slices.Clone(routes),
		patterns: make([]pattern, len(routes)),
		byName:   make(map[string]int, len(routes)),
	}
	for _, opt := range opts {
		opt(t)
	}
	for i, r := range t.routes {
		if r.Name == "" {
			return nil, fmt.Errorf("route %d (%s): %w", i, r.Path, ErrEmptyName)
		}
		if j, ok := t.byName[r.Name]; ok {
			return nil, fmt.Errorf("%w %q: routes %d and %d", ErrDuplicateName, r.Name, j, i)
		}
		if r.Page == nil {
			return nil, fmt.Errorf("route %q: %w", r.Name, ErrNilPage)
		}
		p, err := parsePattern(r.Path)
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", r.Name, err)
		}
		t.patterns[i] = p
		t.byName[r.Name] = i
	}
	return t, nil
}

// Resolve returns the first route matching path. The query string and
// fragment are ignored. It reports false when no route matches.
func (t *Table) Resolve(path string) (Match, bool) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		path = "/"
	}
	for i, p := range t.patterns {
		if params, ok := p.match(path, t.strict, t.sensitive); ok {
			return Match{Route: t.routes[i], Path: path, Params: params}, true
		}
	}
	return Match{}, false
}

// Routes returns the routes in declaration order.
func (t *Table) Routes() []Route {
	return slices.Clone(t.routes)
}

// Route returns the route with the given name.
func (t *Table) Route(name string) (Route, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Len returns the number of routes.
func (t *Table) Len() int { return len(t.routes) }

func (t *Table) pattern(name string) (pattern, bool) {
	i, ok := t.byName[name]
	if !ok {
		return pattern{}, false
	}
	return t.patterns[i], true
}

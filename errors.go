package pagetable

import "errors"

var (
	// ErrEmptyName is returned by New for a route without a name.
	ErrEmptyName = errors.New("route name is empty")
	// ErrDuplicateName is returned by New when two routes share a name.
	ErrDuplicateName = errors.New("duplicate route name")
	// ErrNilPage is returned by New for a route without a page.
	ErrNilPage = errors.New("route page is nil")
	// ErrInvalidPattern is returned by New for a malformed path pattern.
	ErrInvalidPattern = errors.New("invalid route pattern")
	// ErrUnknownRoute is returned by URLFor when no route has the given name.
	ErrUnknownRoute = errors.New("unknown route")
)

// Package app declares the navigation table of the biography writing
// assistant and the pages it mounts.
package app

import (
	"github.com/jackielii/pagetable"
)

// routes is the navigation table. Order matters: the first match wins.
//
//lint:ignore U1000 fields are read through their route tags
type routes struct {
	home        homePage        `route:"/ home"`
	dashboard   dashboardPage   `route:"/dashboard dashboard"`
	editor      editorPage      `route:"/editor/{id?} editor props"`
	aiAssistant aiAssistantPage `route:"/ai-assistant ai-assistant"`
}

// Routes returns the routes of the application in declaration order.
func Routes() ([]pagetable.Route, error) {
	return pagetable.Parse(routes{})
}

// NewTable builds the application's route table.
func NewTable(opts ...pagetable.Option) (*pagetable.Table, error) {
	rs, err := Routes()
	if err != nil {
		return nil, err
	}
	return pagetable.New(rs, opts...)
}

// NewHandler builds the table and a handler serving it with the application
// layout and not-found page.
func NewHandler(tableOpts []pagetable.Option, opts ...pagetable.HandlerOption) (*pagetable.Handler, error) {
	t, err := NewTable(tableOpts...)
	if err != nil {
		return nil, err
	}
	opts = append([]pagetable.HandlerOption{
		pagetable.WithLayout(Layout),
		pagetable.WithNotFound(NotFound()),
	}, opts...)
	return pagetable.NewHandler(t, opts...), nil
}

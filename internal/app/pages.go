package app

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/jackielii/pagetable"
)

type homePage struct{}

func (homePage) Page(pagetable.Props) templ.Component {
	return section("home", "Biography Writing Assistant",
		"Capture a life story chapter by chapter.")
}

type dashboardPage struct{}

func (dashboardPage) Page(pagetable.Props) templ.Component {
	return section("dashboard", "Dashboard", "Your biography projects.")
}

type editorPage struct{}

func (editorPage) Page(props pagetable.Props) templ.Component {
	if id, ok := props.Get("id"); ok {
		return section("editor", "Biography Editor", "Editing biography "+id+".")
	}
	return section("editor", "Biography Editor", "Start a new biography.")
}

type aiAssistantPage struct{}

func (aiAssistantPage) Page(pagetable.Props) templ.Component {
	return section("ai-assistant", "AI Assistant",
		"Generate outlines, draft chapters and prepare interview questions.")
}

// NotFound is rendered when no route matches.
func NotFound() templ.Component {
	return section("not-found", "Page not found", "The page you are looking for does not exist.")
}

// section renders a page body. data-page names the mounted page.
func section(page, title, body string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section data-page="%s"><h1>%s</h1><p>%s</p></section>`,
			templ.EscapeString(page), templ.EscapeString(title), templ.EscapeString(body))
		return err
	})
}

// htmxConfig lets 404 responses swap in so the not-found page shows on
// boosted navigation.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"404","swap":true,"error":false},{"code":"[45]..","swap":false,"error":true}]}`

var navLinks = []struct{ name, label string }{
	{"home", "Home"},
	{"dashboard", "Dashboard"},
	{"editor", "Editor"},
	{"ai-assistant", "AI Assistant"},
}

// Layout wraps page content with the document shell and navigation. Links
// are boosted by htmx and swap into #content.
func Layout(m pagetable.Match, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := "Biography Writing Assistant"
		if m.Route.Name != "" {
			title = m.Route.Name + " · " + title
		}
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html><head><meta charset="utf-8"><title>%s</title>`+
			`<meta name="htmx-config" content='%s'>`+
			`<script src="https://unpkg.com/htmx.org@2.0.4"></script></head>`+
			`<body hx-boost="true" hx-target="#content" hx-swap="innerHTML"><nav>`,
			templ.EscapeString(title), htmxConfig); err != nil {
			return err
		}
		for _, link := range navLinks {
			href, err := pagetable.URLFor(ctx, link.name)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, `<a href="%s">%s</a>`,
				templ.EscapeString(href), templ.EscapeString(link.label)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</nav><main id="content">`); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

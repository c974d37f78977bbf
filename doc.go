// Package pagetable provides an ordered, immutable table of page routes.
// Paths resolve to the first route whose pattern matches, in declaration order,
// and the matched page is mounted by rendering its templ component. A Handler
// serves the table over HTTP and cooperates with htmx so that boosted links
// swap page content and push the resolved URL onto the browser history.
package pagetable

package pagetable

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// PrintRoutes returns the routes of t as an aligned listing in declaration
// order.
func PrintRoutes(t *Table) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tPATH\tPROPS")
	for i, r := range t.routes {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%t\n", i+1, r.Name, r.Path, r.Props)
	}
	_ = tw.Flush()
	return sb.String()
}

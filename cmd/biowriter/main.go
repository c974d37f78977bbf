package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "biowriter",
		Short:   "Serve the biography writing assistant pages",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		Long: `biowriter serves the pages of the biography writing assistant:
home, dashboard, biography editor and AI assistant.

Navigation resolves through an ordered route table; the first matching
route wins and unknown paths get the not-found page.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default ./biowriter.yaml)")
	rootCmd.PersistentFlags().Bool("strict", false, "do not tolerate trailing slashes")
	rootCmd.PersistentFlags().Bool("sensitive", false, "match static path segments case-sensitively")

	rootCmd.AddCommand(
		serveCmd(),
		routesCmd(),
		resolveCmd(),
	)
	return rootCmd
}

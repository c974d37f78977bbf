package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/jackielii/pagetable"
	"github.com/jackielii/pagetable/internal/app"
	"github.com/jackielii/pagetable/internal/config"
	"github.com/spf13/cobra"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	return config.Load(file, cmd.Flags())
}

func tableOptions(cfg *config.Config) []pagetable.Option {
	var opts []pagetable.Option
	if cfg.Routes.Strict {
		opts = append(opts, pagetable.WithStrict())
	}
	if cfg.Routes.Sensitive {
		opts = append(opts, pagetable.WithSensitive())
	}
	return opts
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			t, err := app.NewTable(tableOptions(cfg)...)
			if err != nil {
				return err
			}
			cmd.Print(pagetable.PrintRoutes(t))
			return nil
		},
	}
}

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Resolve a path against the route table",
		Example: `  biowriter resolve /editor/42
  biowriter resolve --strict /dashboard/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			t, err := app.NewTable(tableOptions(cfg)...)
			if err != nil {
				return err
			}
			m, ok := t.Resolve(args[0])
			if !ok {
				return fmt.Errorf("not found: %s", args[0])
			}
			cmd.Printf("route: %s\npattern: %s\n", m.Route.Name, m.Route.Path)
			props := m.Props()
			for _, name := range slices.Sorted(maps.Keys(props)) {
				cmd.Printf("prop %s: %s\n", name, props[name])
			}
			return nil
		},
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/renbou/pathrouter/routemetrics"
	"github.com/spf13/cobra"
)

func (c *cli) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that the route table contains no conflicting routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			router, err := c.build(false)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d routes, no conflicts\n", len(router.Routes()))
			return nil
		},
	}
}

// matchResult is a single line of the match command's output.
type matchResult struct {
	Path   string            `json:"path"`
	Route  *string           `json:"route"`
	Params map[string]string `json:"params,omitempty"`
}

func (c *cli) matchCmd() *cobra.Command {
	var (
		metrics   bool
		skipCheck bool
	)

	cmd := &cobra.Command{
		Use:   "match PATH...",
		Short: "Resolve paths against the route table",
		Long: `Resolve each path against the route table, printing one JSON object per line
with the matched route name and the values bound to its wildcards.
The route is null for paths not matched by any route.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, paths []string) error {
			router, err := c.build(skipCheck)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()

			instrumented, err := routemetrics.New(router, routemetrics.Opts{Registerer: reg})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())

			for _, path := range paths {
				result := matchResult{Path: path}

				if route, params, ok := instrumented.MatchParams(path); ok {
					name := route.Name()
					result.Route, result.Params = &name, params
				}

				if err := enc.Encode(result); err != nil {
					return fmt.Errorf("writing match result: %w", err)
				}
			}

			if !metrics {
				return nil
			}

			return writeMetrics(cmd.OutOrStdout(), reg)
		},
	}

	cmd.Flags().BoolVar(&metrics, "metrics", false, "Print the match counters in the Prometheus text format after the results")
	cmd.Flags().BoolVar(&skipCheck, "skip-check", false, "Don't fail on route tables with conflicting routes")

	return cmd
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	return nil
}

func (c *cli) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate ROUTE [NAME=VALUE...]",
		Short: "Generate a path for the named route from wildcard values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bindings, err := parseBindings(args[1:])
			if err != nil {
				return err
			}

			router, err := c.build(false)
			if err != nil {
				return err
			}

			path, err := router.Generate(args[0], bindings)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func parseBindings(args []string) (map[string]string, error) {
	bindings := make(map[string]string, len(args))

	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid binding %q, expected NAME=VALUE", arg)
		}

		bindings[name] = value
	}

	return bindings, nil
}

func (c *cli) routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the routes of the route table with their canonical patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			router, err := c.build(true)
			if err != nil {
				return err
			}

			routes := router.Routes()

			width := 0
			for _, route := range routes {
				width = max(width, len(route.Name()))
			}

			// already sorted by name
			for _, route := range routes {
				fmt.Fprintf(cmd.OutOrStdout(), "%-*s  %s\n", width, route.Name(), route.Pattern().String())
			}

			return nil
		},
	}
}

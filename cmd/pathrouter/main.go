package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/renbou/pathrouter"
	"github.com/renbou/pathrouter/internal/config"
	"github.com/renbou/pathrouter/routelog"
	"github.com/renbou/pathrouter/routing"
	"github.com/spf13/cobra"
)

func main() {
	if err := mainImpl(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

type cli struct {
	logger     routelog.Logger
	configPath string
}

func mainImpl(args []string) error {
	c := &cli{
		logger: routelog.WrapPlainLogger(slog.New(slog.NewJSONHandler(
			os.Stderr,
			&slog.HandlerOptions{Level: config.LogLevel()},
		))),
	}

	rootCmd := c.rootCmd()
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		c.logger.Error("Command failed", "error", err)
		return err
	}

	return nil
}

func (c *cli) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pathrouter",
		Short: "Check and query route tables of named path patterns",
		Long: `pathrouter loads a route table of named path patterns such as "/users/:id"
from an HCL, JSON or YAML file, verifies that no two routes can match the same path,
and resolves paths against it.

The route table is read from the file specified by --config, or autodiscovered
using the PATHROUTER_CONFIG environment variable and the pathrouter.{hcl,json,yaml}
and routes.{hcl,json,yaml} files in the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&c.configPath, "config", "", "Manually specified path to the route table file. By default, the file is autodiscovered.")

	cmd.AddCommand(
		c.checkCmd(),
		c.matchCmd(),
		c.generateCmd(),
		c.routesCmd(),
	)

	return cmd
}

// build loads the route table and builds a router from it, optionally skipping the conflict check.
func (c *cli) build(skipCheck bool) (*routing.Router, error) {
	cfg, err := config.Load(c.logger, c.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading route table: %w", err)
	}

	return pathrouter.Build(cfg, pathrouter.BuildOpts{Logger: c.logger, SkipConflictCheck: skipCheck})
}

// Package pathrouter resolves slash-delimited request paths against a table of named path patterns,
// such as "/users/:id/posts", extracting the values bound to wildcard segments.
//
// The matching itself is implemented by [routing.Router] over [pathpattern.Pattern] templates.
// This package additionally defines the route table configuration, which can be read from HCL, JSON or YAML files
// by the pathrouter CLI, and [Build] for turning such a configuration into a router which is proven unambiguous.
package pathrouter

import (
	"fmt"

	"github.com/renbou/pathrouter/pathpattern"
	"github.com/renbou/pathrouter/routelog"
	"github.com/renbou/pathrouter/routing"
)

// Config is a route table.
type Config struct {
	Routes []RouteConfig
}

// RouteConfig defines a single named route.
type RouteConfig struct {
	Name    string
	Pattern string
}

// BuildOpts define all the optional settings which can be set for [Build].
type BuildOpts struct {
	// Logs are discarded by default.
	Logger routelog.Logger
	// SkipConflictCheck disables the [routing.Router.CheckConflicts] call after registration,
	// leaving it up to the caller.
	SkipConflictCheck bool
}

func (o BuildOpts) withDefaults() BuildOpts {
	if o.Logger == nil {
		o.Logger = routelog.Discard()
	}

	return o
}

// Build registers all the configured routes in order on a new router,
// and then checks that the resulting route set is unambiguous.
func Build(cfg *Config, opts BuildOpts) (*routing.Router, error) {
	opts = opts.withDefaults()

	router := routing.NewRouter(routing.RouterOpts{Logger: opts.Logger})

	for i := range cfg.Routes {
		routeCfg := &cfg.Routes[i]

		pattern, err := pathpattern.New(routeCfg.Pattern)
		if err != nil {
			return nil, fmt.Errorf("parsing pattern of route %q: %w", routeCfg.Name, err)
		}

		route, err := routing.NewRoute(routeCfg.Name, pattern)
		if err != nil {
			return nil, err
		}

		if err := router.Register(route); err != nil {
			return nil, fmt.Errorf("registering route %q: %w", routeCfg.Name, err)
		}
	}

	if opts.SkipConflictCheck {
		return router, nil
	}

	if err := router.CheckConflicts(); err != nil {
		return nil, fmt.Errorf("checking route conflicts: %w", err)
	}

	opts.Logger.WithComponent("pathrouter").Info("Route table built", "routes", len(cfg.Routes))

	return router, nil
}

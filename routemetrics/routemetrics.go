// Package routemetrics instruments path matching of a [routing.Router] with Prometheus metrics.
package routemetrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/renbou/pathrouter/routing"
)

// Opts define all the optional settings which can be set for [Router].
type Opts struct {
	// Namespace is the metrics namespace, "pathrouter" by default.
	Namespace string
	// Subsystem is the metrics subsystem, empty by default.
	Subsystem string
	// Registerer is the registry to which the metrics are added, [prometheus.DefaultRegisterer] by default.
	Registerer prometheus.Registerer
}

func (o Opts) withDefaults() Opts {
	if o.Namespace == "" {
		o.Namespace = "pathrouter"
	}

	if o.Registerer == nil {
		o.Registerer = prometheus.DefaultRegisterer
	}

	return o
}

// Router wraps a built [routing.Router], counting matched paths by route name and unmatched paths.
// The wrapped router is only read, so Router is safe for concurrent use under the same conditions.
type Router struct {
	*routing.Router

	matches *prometheus.CounterVec
	misses  prometheus.Counter
}

// New registers the match metrics with the configured registerer and returns the instrumented router.
// An error is returned if metrics with the same names are already registered,
// in which case none of the metrics stay registered.
func New(router *routing.Router, opts Opts) (*Router, error) {
	opts = opts.withDefaults()

	r := &Router{
		Router: router,
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "matches_total",
			Help:      "Number of paths matched, by route name.",
		}, []string{"route"}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "misses_total",
			Help:      "Number of paths not matched by any route.",
		}),
	}

	collectors := []prometheus.Collector{r.matches, r.misses}
	for i, c := range collectors {
		if err := opts.Registerer.Register(c); err != nil {
			// leave the registerer as it was so that New can be retried
			for _, registered := range collectors[:i] {
				opts.Registerer.Unregister(registered)
			}

			return nil, fmt.Errorf("registering route match metrics: %w", err)
		}
	}

	// Initialize all series so that routes which are never matched are still exported.
	for _, route := range router.Routes() {
		r.matches.WithLabelValues(route.Name())
	}

	return r, nil
}

// Match is like [routing.Router.Match] but records the result.
func (r *Router) Match(path string) (*routing.Route, bool) {
	route, ok := r.Router.Match(path)
	r.record(route, ok)
	return route, ok
}

// MatchParams is like [routing.Router.MatchParams] but records the result.
func (r *Router) MatchParams(path string) (*routing.Route, map[string]string, bool) {
	route, params, ok := r.Router.MatchParams(path)
	r.record(route, ok)
	return route, params, ok
}

func (r *Router) record(route *routing.Route, ok bool) {
	if !ok {
		r.misses.Inc()
		return
	}

	r.matches.WithLabelValues(route.Name()).Inc()
}

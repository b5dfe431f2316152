// Package routing provides a router resolving request paths against a set of named [pathpattern] templates.
//
// A [Router] is used in two phases. During the build phase a single owner calls [Router.Register] for every route,
// and then [Router.CheckConflicts] once to prove that no two registered patterns can match the same concrete path.
// After that the router is never modified, and [Router.Match], [Router.Lookup] and the other read methods
// can be called concurrently from any number of goroutines without locking.
//
// Matching walks a trie with one level per path segment, preferring a literal segment over a wildcard at the same level
// and never backtracking, so more specific routes can coexist with wildcard fallbacks at the same depth.
package routing

import (
	"errors"
	"fmt"

	"github.com/renbou/pathrouter/pathpattern"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNilInput is returned when a required argument such as a route or a pattern is nil.
var ErrNilInput = errors.New("unexpected nil input")

// ErrUnknownRoute is returned by [Router.Generate] when no route with the specified name is registered.
var ErrUnknownRoute = errors.New("unknown route")

// Route is a named path pattern. Routes are immutable, and the same *Route returned from [NewRoute]
// is returned by the router it was registered with on every lookup or match.
type Route struct {
	name    string
	pattern *pathpattern.Pattern
}

// NewRoute creates a new route with the specified name and pattern.
func NewRoute(name string, pattern *pathpattern.Pattern) (*Route, error) {
	if pattern == nil {
		return nil, fmt.Errorf("creating route %q: %w pattern", name, ErrNilInput)
	}

	return &Route{name: name, pattern: pattern}, nil
}

// MustRoute creates a new route, parsing the template using [pathpattern.MustNew].
func MustRoute(name, tmpl string) *Route {
	return &Route{name: name, pattern: pathpattern.MustNew(tmpl)}
}

// Name returns the name of the route.
func (r *Route) Name() string {
	return r.name
}

// Pattern returns the pattern of the route.
func (r *Route) Pattern() *pathpattern.Pattern {
	return r.pattern
}

func (r *Route) String() string {
	return "Route(" + r.name + "," + r.pattern.String() + ")"
}

// ConflictError is returned when two routes conflict with each other,
// either during registration, when a route with the same name or an identical pattern already exists,
// or by [Router.CheckConflicts], when both routes can match the same concrete path.
type ConflictError struct {
	// Route is the route being registered, or the first of the ambiguous routes.
	Route *Route
	// Existing is the previously registered route, or the second of the ambiguous routes.
	Existing *Route
	// Path is the path matched by both routes, set only for ambiguities found by [Router.CheckConflicts].
	// Segments which can hold any value are rendered as "<any>".
	Path string
}

func (e *ConflictError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("route conflict: path %s would match both routes: %s, %s", e.Path, e.Route, e.Existing)
	}

	return fmt.Sprintf("route conflict: %s, %s", e.Route, e.Existing)
}

// GRPCStatus allows conflicts to be returned as-is from gRPC handlers,
// with registration conflicts mapped to AlreadyExists and ambiguities to FailedPrecondition.
func (e *ConflictError) GRPCStatus() *status.Status {
	if e.Path != "" {
		return status.New(codes.FailedPrecondition, e.Error())
	}

	return status.New(codes.AlreadyExists, e.Error())
}

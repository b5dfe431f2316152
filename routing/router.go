package routing

import (
	"fmt"

	"github.com/renbou/pathrouter/pathpattern"
	"github.com/renbou/pathrouter/routelog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// RouterOpts define all the optional settings which can be set for [Router].
type RouterOpts struct {
	// Logs are discarded by default.
	Logger routelog.Logger
}

func (o RouterOpts) withDefaults() RouterOpts {
	if o.Logger == nil {
		o.Logger = routelog.Discard()
	}

	return o
}

// Router resolves paths to the named routes registered in it.
// Every registered route is present both in the name table used for lookups by name
// and in the trie used for matching paths, as the same *Route.
//
// Register must not be called concurrently with any other method.
// Once all routes have been registered, all other methods are safe for concurrent use.
type Router struct {
	logger routelog.Logger
	trie   trie
	routes map[string]*Route
}

// NewRouter initializes a new empty [Router] with the specified options.
func NewRouter(opts RouterOpts) *Router {
	opts = opts.withDefaults()

	return &Router{
		logger: opts.Logger.WithComponent("pathrouter.routing"),
		routes: make(map[string]*Route),
	}
}

// Register adds the route to the router.
// A *ConflictError is returned when a route with the same name or a structurally identical pattern,
// which differs at most in wildcard names, is already registered. The router isn't modified in such cases.
//
// Register doesn't check whether the route is ambiguous with other routes in any other way,
// [Router.CheckConflicts] should be called once after registering all the routes for that.
func (r *Router) Register(route *Route) error {
	if route == nil {
		return fmt.Errorf("registering route: %w route", ErrNilInput)
	}

	if existing, ok := r.routes[route.name]; ok {
		return &ConflictError{Route: route, Existing: existing}
	}

	if err := r.trie.add(route); err != nil {
		return err
	}

	r.routes[route.name] = route

	r.logger.Debug("registered route", "route", route.name, "pattern", route.pattern.String())
	return nil
}

// Lookup returns the route registered with the specified name.
func (r *Router) Lookup(name string) (*Route, bool) {
	route, ok := r.routes[name]
	return route, ok
}

// Match returns the route matching the path. Leading, trailing, and repeated slashes in the path are ignored.
// At each segment, a literal match takes precedence over a wildcard, and no backtracking is performed,
// so "/a/c" isn't matched by "/:x/c" if "/a/b" is registered as well.
// The two routes never match the same path, so [Router.CheckConflicts] doesn't report such route sets,
// and the miss is the expected result of the literal-first lookup.
func (r *Router) Match(path string) (*Route, bool) {
	return r.trie.find(pathpattern.Split(path))
}

// MatchParams is like [Router.Match] but additionally returns the wildcard bindings of the matched route.
func (r *Router) MatchParams(path string) (*Route, map[string]string, bool) {
	segments := pathpattern.Split(path)

	route, ok := r.trie.find(segments)
	if !ok {
		return nil, nil, false
	}

	params, err := route.pattern.ParseSegments(segments)
	if err != nil {
		// unreachable, the trie only leads to routes whose patterns match the path
		panic(fmt.Sprintf("pathrouter: route %s matched path %q it doesn't accept: %s", route, path, err))
	}

	return route, params, true
}

// Generate builds a path for the route with the specified name, see [pathpattern.Pattern.Generate].
func (r *Router) Generate(name string, bindings map[string]string) (string, error) {
	route, ok := r.routes[name]
	if !ok {
		return "", fmt.Errorf("generating path for %q: %w", name, ErrUnknownRoute)
	}

	path, err := route.pattern.Generate(bindings)
	if err != nil {
		return "", fmt.Errorf("generating path for %s: %w", route, err)
	}

	return path, nil
}

// Routes returns all the registered routes sorted by name.
func (r *Router) Routes() []*Route {
	names := maps.Keys(r.routes)
	slices.Sort(names)

	routes := make([]*Route, len(names))
	for i, name := range names {
		routes[i] = r.routes[name]
	}

	return routes
}

// CheckConflicts verifies that no two registered routes can match the same concrete path.
// If they can, a *ConflictError with one such path is returned.
// Only the first ambiguity found is reported, not all of them.
//
// The check walks the whole trie, and is meant to be run once after all routes have been registered,
// before the router starts being used for matching.
func (r *Router) CheckConflicts() error {
	if amb, ok := r.trie.findAmbiguity(); ok {
		return amb.err()
	}

	return nil
}

package routing

import (
	"testing"

	"github.com/renbou/pathrouter/internal/routetest"
	"google.golang.org/grpc/codes"
)

// Test_Router_CheckConflicts tests that ambiguous route sets are detected along with one path matched by both routes.
func Test_Router_CheckConflicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		routes []*Route
		route1 string
		route2 string
		path   string
	}{
		{
			name:   "alternating wildcards",
			routes: []*Route{MustRoute("a", "/conflicting/:id"), MustRoute("b", "/:name/path")},
			route1: "a", route2: "b",
			path: "/conflicting/path",
		},
		{
			name:   "common wildcard segment",
			routes: []*Route{MustRoute("a", "/conflicting/:middle/path"), MustRoute("b", "/:name/:another/path")},
			route1: "a", route2: "b",
			path: "/conflicting/<any>/path",
		},
		{
			name:   "deep alternation",
			routes: []*Route{MustRoute("a", "/conflicting/:middle/:more/final"), MustRoute("b", "/:name/:another/path/:test")},
			route1: "a", route2: "b",
			path: "/conflicting/<any>/path/final",
		},
		{
			name:   "literal and wildcard leaves",
			routes: []*Route{MustRoute("a", "/users/me"), MustRoute("b", "/users/:id")},
			route1: "a", route2: "b",
			path: "/users/me",
		},
		{
			name:   "root and single wildcard",
			routes: []*Route{MustRoute("root", ""), MustRoute("any", "/:id")},
			route1: "root", route2: "any",
			path: "/",
		},
		{
			name:   "below a wildcard",
			routes: []*Route{MustRoute("a", "/:model/edit"), MustRoute("b", "/:model/:action")},
			route1: "a", route2: "b",
			path: "/<any>/edit",
		},
		{
			name: "wildcard on the literal side",
			routes: []*Route{
				MustRoute("a", "/x/:id/y"),
				MustRoute("b", "/:name/z/:other"),
			},
			route1: "a", route2: "b",
			path: "/x/z/y",
		},
		{
			name: "shared literal below both branches",
			routes: []*Route{
				MustRoute("a", "/x/same/1"),
				MustRoute("b", "/:name/same/:id"),
			},
			route1: "a", route2: "b",
			path: "/x/same/1",
		},
		{
			name: "first conflict in registration order",
			routes: []*Route{
				MustRoute("fine", "/fine/path/more"),
				MustRoute("first", "/first/:id"),
				MustRoute("second", "/second/:id"),
				MustRoute("catch", "/:name/:id"),
			},
			route1: "first", route2: "catch",
			path: "/first/<any>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Arrange
			router := newTestRouter(t, tt.routes...)

			// Act
			err := router.CheckConflicts()

			// Assert
			if cmpErr := conflictIs(err, tt.route1, tt.route2, tt.path); cmpErr != nil {
				t.Fatalf("CheckConflicts() returned unexpected error: %s", cmpErr)
			}

			if cmpErr := routetest.StatusCodeIs(err, codes.FailedPrecondition); cmpErr != nil {
				t.Errorf("CheckConflicts() returned error with unexpected status: %s", cmpErr)
			}
		})
	}
}

// Test_Router_CheckConflicts_None tests that route sets where literals and wildcards can't reach the same leaf pass the check.
func Test_Router_CheckConflicts_None(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		routes []*Route
	}{
		{
			name:   "root and literal",
			routes: []*Route{MustRoute("root", ""), MustRoute("main", "/main")},
		},
		{
			name:   "leading wildcard disambiguated by second segment",
			routes: []*Route{MustRoute("a", "/:model/a"), MustRoute("b", "/:model/b")},
		},
		{
			name:   "different lengths",
			routes: []*Route{MustRoute("a", "/users/me"), MustRoute("b", "/users/:id/posts")},
		},
		{
			name:   "disjoint literals under wildcard sibling",
			routes: []*Route{MustRoute("a", "/x/a"), MustRoute("b", "/:name/b")},
		},
		{
			name: "rest api",
			routes: []*Route{
				MustRoute("list", "/api/v1/entities"),
				MustRoute("get", "/api/v1/entities/:id"),
				MustRoute("sub", "/api/v1/entities/:id/children"),
				MustRoute("child", "/api/v1/entities/:id/children/:child"),
				MustRoute("v2", "/api/v2/entities/:id"),
				MustRoute("health", "/health"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := newTestRouter(t, tt.routes...)

			if err := router.CheckConflicts(); err != nil {
				t.Fatalf("CheckConflicts() returned non-nil error = %q", err)
			}

			// each route must still be reachable by a path generated from its own pattern
			for _, route := range tt.routes {
				bindings := make(map[string]string)
				for _, name := range route.Pattern().WildcardNames() {
					bindings[name] = "value"
				}

				path, err := route.Pattern().Generate(bindings)
				if err != nil {
					t.Fatalf("Generate() for %s returned non-nil error = %q", route, err)
				}

				if got, ok := router.Match(path); !ok || got != route {
					t.Errorf("Match(%q) = (%v, %t), want %s", path, got, ok, route)
				}
			}
		})
	}
}

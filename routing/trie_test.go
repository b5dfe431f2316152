package routing

import (
	"fmt"
	"testing"

	"github.com/renbou/pathrouter/pathpattern"
)

// Test_trie tests that trie properly routes different combinations of literal and wildcard patterns.
func Test_trie(t *testing.T) {
	t.Parallel()

	// Arrange
	templates := []string{"", "/v1/users", "/v1/users/:id", "/v1/users/:id/posts/:post", "/v1/:resource/list", "/:version/health"}

	var tr trie
	for _, tmpl := range templates {
		if err := tr.add(MustRoute(tmpl, tmpl)); err != nil {
			t.Fatalf("add(%q) returned non-nil error = %q", tmpl, err)
		}
	}

	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: ""},
		{path: "/v1/users", want: "/v1/users"},
		{path: "/v1/users/123", want: "/v1/users/:id"},
		{path: "/v1/users/123/posts/1", want: "/v1/users/:id/posts/:post"},
		{path: "/v1/tasks/list", want: "/v1/:resource/list"},
		{path: "/v2/health", want: "/:version/health"},
		{path: "/v1/users/list", want: "/v1/users/:id"},
		{path: "/v1/health", want: "-"},
		{path: "/v1/users/123/posts", want: "-"},
		{path: "/what", want: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			// Act
			got, ok := tr.find(pathpattern.Split(tt.path))

			// Assert
			if tt.want != "-" && !ok {
				t.Fatalf("find() returned not ok, but expected to find route for %q", tt.path)
			} else if tt.want == "-" && ok {
				t.Fatalf("find() returned route %s, but expected no match for %q", got, tt.path)
			} else if ok && got.Name() != tt.want {
				t.Fatalf("find() returned route %q, but expected %q", got.Name(), tt.want)
			}
		})
	}
}

// Test_trie_Structure tests that wildcard names aren't part of the trie key and literal keys keep their insertion order.
func Test_trie_Structure(t *testing.T) {
	t.Parallel()

	// Arrange
	var tr trie
	for i, tmpl := range []string{"/c/:a", "/a/:b", "/b/:c/x", "/:d/y", "/:e/z"} {
		if err := tr.add(MustRoute(fmt.Sprint(i), tmpl)); err != nil {
			t.Fatalf("add(%q) returned non-nil error = %q", tmpl, err)
		}
	}

	// Assert
	if got := fmt.Sprint(tr.root.keys); got != "[c a b]" {
		t.Errorf("root literal keys = %s, want insertion order [c a b]", got)
	}

	if tr.root.wildcard == nil || len(tr.root.wildcard.keys) != 2 {
		t.Fatalf("root wildcard branch = %+v, want a single branch shared by both wildcard routes", tr.root.wildcard)
	}

	if err := tr.add(MustRoute("dup", "/:f/z")); err == nil {
		t.Errorf("add(%q) returned nil error for pattern with the same shape as %q", "/:f/z", "/:e/z")
	}
}

package routing

import "github.com/renbou/pathrouter/pathpattern"

// trie is the main data structure used for routing, with one level per path segment.
// Each level has literal branches keyed by the segment text and at most one wildcard branch,
// since wildcard names aren't part of the key: "/:id" and "/:name" lead to the same node.
// After a trie is set up using add(), it is safe to call find() and findAmbiguity() concurrently,
// as they do not make any modifications to the internal structure.
type trie struct {
	root node
}

type node struct {
	// leaf node
	route *Route

	// non-leaf node
	literals map[string]*node
	keys     []string // literal keys in insertion order, used to keep conflict reports stable
	wildcard *node
}

// add inserts the route at the node reached by its pattern's segments,
// failing with a *ConflictError if a route with an identically shaped pattern is already present there.
func (t *trie) add(route *Route) error {
	n := &t.root

	for _, s := range route.pattern.Segments() {
		n = n.add(s)
	}

	if n.route != nil {
		return &ConflictError{Route: route, Existing: n.route}
	}

	n.route = route
	return nil
}

// find returns the route matching the already split path.
func (t *trie) find(path []string) (*Route, bool) {
	n := &t.root

	for _, component := range path {
		// try matching literal first since its the most specific
		if next := n.literals[component]; next != nil {
			n = next
		} else if n.wildcard != nil {
			n = n.wildcard
		} else {
			return nil, false
		}
	}

	return n.route, n.route != nil
}

func (n *node) add(s pathpattern.Segment) *node {
	if s.Kind == pathpattern.SegmentWildcard {
		return n.addWildcard()
	}

	return n.addLiteral(s.Value)
}

func (n *node) addLiteral(literal string) *node {
	if n.literals == nil {
		n.literals = make(map[string]*node)
	}

	if n.literals[literal] == nil {
		n.literals[literal] = new(node)
		n.keys = append(n.keys, literal)
	}

	return n.literals[literal]
}

func (n *node) addWildcard() *node {
	if n.wildcard == nil {
		n.wildcard = new(node)
	}

	return n.wildcard
}

package routing

import "strings"

// anySegment is the path component used in conflict reports for a segment where any value leads to the conflict.
const anySegment = "<any>"

// ambiguity describes two routes which both match the path.
type ambiguity struct {
	path   []string
	route1 *Route
	route2 *Route
}

func (a *ambiguity) err() *ConflictError {
	return &ConflictError{
		Route:    a.route1,
		Existing: a.route2,
		Path:     "/" + strings.Join(a.path, "/"),
	}
}

// findAmbiguity searches the trie for a path which can be matched by two different routes,
// returning the first one found. Exact duplicates are rejected by add(), so the only possible ambiguities
// are between a literal branch and its sibling wildcard branch, since any value reaching the literal
// reaches the wildcard as well.
func (t *trie) findAmbiguity() (*ambiguity, bool) {
	return walkSubtree(&t.root, nil)
}

// walkSubtree searches for ambiguities inside a single subtree reached by the path.
func walkSubtree(n *node, path []string) (*ambiguity, bool) {
	for _, key := range n.keys {
		if a, ok := walkSubtree(n.literals[key], extend(path, key)); ok {
			return a, true
		}
	}

	if n.wildcard == nil {
		return nil, false
	}

	for _, key := range n.keys {
		if a, ok := walkPair(n.literals[key], n.wildcard, extend(path, key)); ok {
			return a, true
		}
	}

	return walkSubtree(n.wildcard, extend(path, anySegment))
}

// walkPair searches for a path matched by routes from both subtrees, which are reachable from the same path prefix.
func walkPair(a, b *node, path []string) (*ambiguity, bool) {
	if a.route != nil && b.route != nil {
		return &ambiguity{path: path, route1: a.route, route2: b.route}, true
	}

	if a.wildcard != nil && b.wildcard != nil {
		if amb, ok := walkPair(a.wildcard, b.wildcard, extend(path, anySegment)); ok {
			return amb, true
		}
	}

	for _, key := range a.keys {
		if next := b.literals[key]; next != nil {
			if amb, ok := walkPair(a.literals[key], next, extend(path, key)); ok {
				return amb, true
			}
		}
	}

	// a wildcard reaches every value of the literals in the other subtree
	if a.wildcard != nil {
		if amb, ok := walkWildcard(a.wildcard, b, path, false); ok {
			return amb, true
		}
	}

	if b.wildcard != nil {
		return walkWildcard(b.wildcard, a, path, true)
	}

	return nil, false
}

// walkWildcard pairs the wildcard subtree with each literal child of n.
// swapped keeps the routes in the reported ambiguity in the same order as the walkPair arguments.
func walkWildcard(wildcard, n *node, path []string, swapped bool) (*ambiguity, bool) {
	for _, key := range n.keys {
		a, b := wildcard, n.literals[key]
		if swapped {
			a, b = b, a
		}

		if amb, ok := walkPair(a, b, extend(path, key)); ok {
			return amb, true
		}
	}

	return nil, false
}

// extend returns a copy of the path with the component appended, so that sibling walks don't share backing arrays.
func extend(path []string, component string) []string {
	return append(path[:len(path):len(path)], component)
}

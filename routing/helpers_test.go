package routing

import (
	"errors"
	"fmt"
)

// conflictIs checks that the error is a *ConflictError between the two named routes, in any order,
// reported for the specified path. An empty path means that a registration conflict is expected.
func conflictIs(err error, route1, route2, path string) error {
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		return fmt.Errorf("got error = %v, want *ConflictError", err)
	}

	got1, got2 := conflict.Route.Name(), conflict.Existing.Name()
	if !(got1 == route1 && got2 == route2) && !(got1 == route2 && got2 == route1) {
		return fmt.Errorf("got conflict between routes %q and %q, want %q and %q", got1, got2, route1, route2)
	}

	if conflict.Path != path {
		return fmt.Errorf("got conflict for path = %q, want %q", conflict.Path, path)
	}

	return nil
}

// Package routetest contains helpers shared by the tests of pathrouter packages.
// It must not import the packages it is used to test.
package routetest

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StatusCodeIs checks that the error has the specified gRPC status code.
func StatusCodeIs(err error, wantCode codes.Code) error {
	if gotStatus := status.Convert(err); gotStatus.Code() != wantCode {
		return fmt.Errorf("got status code = %s (message = %q), want %s", gotStatus.Code(), gotStatus.Message(), wantCode)
	}

	return nil
}

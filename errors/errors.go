package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrInvalidFilmID     = fmt.Errorf("'filmId' is not a number")
	ErrEmptySubscription = fmt.Errorf("'filmIds' and 'venueIds' are undefined")
	ErrUnknownKey        = fmt.Errorf("unknown index key")
	ErrInvariantBroken   = fmt.Errorf("catalog invariant broken")
)

// MapToGRPCError translates domain sentinel errors into gRPC statuses.
// ErrInvariantBroken deliberately surfaces as a bare Internal status:
// broken invariants are logged server side and never become a domain
// error code for callers.
func MapToGRPCError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidFilmID), errors.Is(err, ErrEmptySubscription):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrUnknownKey):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

package errors

import "fmt"

var (
	ErrInvalidIdentifier  = fmt.Errorf("invalid user identifier")
	ErrPersistenceFailure = fmt.Errorf("watchlist persistence failure")
	ErrChannelNotFound    = fmt.Errorf("channel not found")
	ErrCreationDenied     = fmt.Errorf("channel creation denied")
	ErrSinkUnavailable    = fmt.Errorf("audit channel unavailable")
	ErrDeliveryFailed     = fmt.Errorf("audit delivery failed")
	ErrLookupFailed       = fmt.Errorf("user lookup failed")
	ErrWorkerPanic        = fmt.Errorf("worker panic")
)

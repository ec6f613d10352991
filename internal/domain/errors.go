package domain

import "errors"

// The closed set of failure kinds the core reports. Callers branch with
// errors.Is; services wrap these with fmt.Errorf("...: %w", ...) context.
var (
	ErrNotFound              = errors.New("not found")
	ErrDuplicateKey          = errors.New("duplicate key")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrRentalClosed          = errors.New("rental already closed")
	ErrInvalidTimeRange      = errors.New("return time precedes start time")
)

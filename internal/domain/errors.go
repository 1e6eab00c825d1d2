package domain

import "errors"

// Sentinel errors returned by the service layer. Handlers match on these
// with errors.Is to pick the HTTP status; services wrap them with context.
var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("not found")
	ErrNothingToClaim    = errors.New("nothing to claim")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrRentTokenMismatch = errors.New("rent token mismatch")
	ErrAlreadyListed     = errors.New("asset is already listed")
	ErrNotListed         = errors.New("asset is not listed")
)

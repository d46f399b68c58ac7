package models

import "errors"

// Domain specific errors for the planning pipeline and its host surface.
var (
	ErrNotFound        = errors.New("requested item not found")
	ErrBadRequest      = errors.New("bad request")
	ErrValidation      = errors.New("validation failed")
	ErrNoDestination   = errors.New("destination name is required")
	ErrUnknownTradeoff = errors.New("tradeoff not found in detected tradeoffs")
	ErrUnknownOption   = errors.New("resolution option not offered for tradeoff")
)

package domain

import "errors"

var (
	ErrFlightNotFound    = errors.New("flight not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInsufficientSeats = errors.New("insufficient seats available")
	ErrPaymentDeclined   = errors.New("payment declined")
	ErrConflict          = errors.New("transaction conflict, retry the request")
	ErrInvalidSortField  = errors.New("invalid sort field")
	ErrInvalidSortOrder  = errors.New("invalid sort order")
)

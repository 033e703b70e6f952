package domain

import "errors"

var (
	ErrUnitNotFound    = errors.New("inventory unit not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrPaymentNotFound = errors.New("payment record not found")
)

var (
	ErrInsufficientSeats = errors.New("not enough available units")
	ErrInvalidRoute      = errors.New("return leg does not continue the outbound route")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrReferenceMismatch = errors.New("gateway reference does not match booking")
)

var (
	ErrForbidden          = errors.New("principal may not act on this booking")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

var (
	ErrValidation = errors.New("validation error")
)

package models

import "errors"

// Booking rule failures. All are recoverable; callers match them with errors.Is.
var (
	ErrReservationClosed            = errors.New("flight is not open for reservation")
	ErrCapacityExceeded             = errors.New("flight is fully booked")
	ErrReservationConflict          = errors.New("already booked on this flight")
	ErrInsufficientFunds            = errors.New("insufficient balance for this flight")
	ErrInvalidCategoryChange        = errors.New("invalid seat category change")
	ErrReservationNotFound          = errors.New("reservation not found")
	ErrInsuranceUnaffordable        = errors.New("insufficient balance for insurance coverage")
	ErrPriorityBoardingUnaffordable = errors.New("insufficient balance for priority boarding")
	ErrFlightAlreadyBoarded         = errors.New("flight has already completed boarding")
)

package service

import "time"

// RegisterPassengerRequest represents a request to register a passenger account.
type RegisterPassengerRequest struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// PassengerAccount represents a passenger's externally visible state.
type PassengerAccount struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Balance          float64              `json:"balance"`
	LoyaltyPoints    int                  `json:"loyaltyPoints"`
	PriorityBoarding bool                 `json:"priorityBoarding"`
	Terminal         string               `json:"terminal,omitempty"`
	Reservations     []ReservationSummary `json:"reservations"`
}

// FlightSummary represents a flight's externally visible state.
type FlightSummary struct {
	FlightNumber       string    `json:"flightNumber"`
	Origin             string    `json:"origin"`
	Destination        string    `json:"destination"`
	DepartureTime      time.Time `json:"departureTime"`
	ArrivalTime        time.Time `json:"arrivalTime"`
	Capacity           int       `json:"capacity"`
	RemainingSeats     int       `json:"remainingSeats"`
	OpenForReservation bool      `json:"openForReservation"`
}

// ReservationRequest represents a booking request, optionally with add-ons.
type ReservationRequest struct {
	FlightNumber     string  `json:"flightNumber"`
	SeatCategory     string  `json:"seatCategory"`
	Insurance        bool    `json:"insurance"`
	CoverageAmount   float64 `json:"coverageAmount"`
	PriorityBoarding bool    `json:"priorityBoarding"`
}

// ReservationSummary represents one active reservation.
type ReservationSummary struct {
	FlightNumber string  `json:"flightNumber"`
	SeatCategory string  `json:"seatCategory"`
	Fee          float64 `json:"fee"`
	PolicyNumber string  `json:"policyNumber,omitempty"`
}

// BookingConfirmation is returned on a successful booking.
type BookingConfirmation struct {
	ReservationSummary
	Balance       float64 `json:"balance"`
	LoyaltyPoints int     `json:"loyaltyPoints"`
}

// ModifyReservationRequest represents a seat category change.
type ModifyReservationRequest struct {
	SeatCategory string `json:"seatCategory"`
}

// DelayRequest represents a schedule change for a flight.
type DelayRequest struct {
	NewDepartureTime time.Time `json:"newDepartureTime"`
	NewArrivalTime   time.Time `json:"newArrivalTime"`
}

// CheckInRequest places a passenger at a terminal.
type CheckInRequest struct {
	Terminal string `json:"terminal"`
}

// BoardingReport lists who boarded a flight, in boarding order.
type BoardingReport struct {
	FlightNumber string   `json:"flightNumber"`
	Boarded      []string `json:"boarded"`
}

package models

import "fmt"

// Insurance is a travel insurance policy tied to a single reservation. The
// policy is owned by the reservation and mirrored into the insured passenger's
// policy list.
type Insurance struct {
	PolicyNumber   string
	CoverageAmount float64
	Insured        *Passenger
	PolicyType     string
}

// NewTravelInsurance creates a policy covering the passenger's reservation on
// flight. The policy number is derived from the flight number and the
// passenger's id.
func NewTravelInsurance(flight *Flight, passenger *Passenger, coverage float64) *Insurance {
	return &Insurance{
		PolicyNumber:   fmt.Sprintf("POL-%s-%s", flight.Number, passenger.ID.String()[:8]),
		CoverageAmount: coverage,
		Insured:        passenger,
		PolicyType:     "travel",
	}
}

package models

import "time"

// CapacityAlertThreshold is the remaining-seat count at or below which a flight
// is flagged in the inventory report.
const CapacityAlertThreshold = 5

// AirlineCompany owns a collection of flights and the loyalty ledger shared by
// all of its passengers.
type AirlineCompany struct {
	Name string

	flights []*Flight
	ledger  *LoyaltyLedger
}

// NewAirlineCompany creates an airline with an empty flight collection and a
// fresh loyalty ledger.
func NewAirlineCompany(name string) *AirlineCompany {
	return &AirlineCompany{Name: name, ledger: NewLoyaltyLedger()}
}

// Ledger returns the airline's shared loyalty ledger.
func (a *AirlineCompany) Ledger() *LoyaltyLedger {
	return a.ledger
}

// AddFlight registers a flight with the airline.
func (a *AirlineCompany) AddFlight(f *Flight) {
	a.flights = append(a.flights, f)
}

// Flights returns a copy of the airline's flight collection.
func (a *AirlineCompany) Flights() []*Flight {
	return append([]*Flight(nil), a.flights...)
}

// CancelFlight removes the flight from the airline's collection and reports
// whether it was present.
func (a *AirlineCompany) CancelFlight(f *Flight) bool {
	for i, flight := range a.flights {
		if flight == f {
			a.flights = append(a.flights[:i], a.flights[i+1:]...)
			return true
		}
	}
	return false
}

// DelayFlight delegates to the flight's own delay handling.
func (a *AirlineCompany) DelayFlight(f *Flight, newDeparture, newArrival time.Time) {
	f.Delay(newDeparture, newArrival)
}

// FlightInventory is one row of an airline inventory report.
type FlightInventory struct {
	FlightNumber    string `json:"flightNumber"`
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	RemainingSeats  int    `json:"remainingSeats"`
	NearingCapacity bool   `json:"nearingCapacity"`
}

// InventoryReport returns remaining-seat counts for every managed flight,
// flagging flights at or below CapacityAlertThreshold remaining seats.
func (a *AirlineCompany) InventoryReport() []FlightInventory {
	report := make([]FlightInventory, 0, len(a.flights))
	for _, f := range a.flights {
		remaining := f.RemainingSeats()
		report = append(report, FlightInventory{
			FlightNumber:    f.Number,
			Origin:          f.Origin.Location,
			Destination:     f.Destination.Location,
			RemainingSeats:  remaining,
			NearingCapacity: remaining <= CapacityAlertThreshold,
		})
	}
	return report
}

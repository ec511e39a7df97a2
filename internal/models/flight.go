package models

import "time"

// Notifier receives fire-and-forget flight event signals. A nil notifier drops
// them.
type Notifier interface {
	FlightDelayed(flight *Flight, passenger *Passenger)
}

// Flight holds the schedule, capacity and passenger lists for a single flight.
// The flight number is its identity within an airline. The booked list never
// exceeds capacity, and neither does the boarded list.
type Flight struct {
	Number             string
	Origin             *Terminal
	Destination        *Terminal
	Airline            *AirlineCompany
	DepartureTime      time.Time
	ArrivalTime        time.Time
	Capacity           int
	OpenForReservation bool

	passengers []*Passenger
	boarded    []*Passenger
	notifier   Notifier
}

// NewFlight creates a flight on the given route, open for reservation.
func NewFlight(number string, origin, destination *Terminal, airline *AirlineCompany, departure, arrival time.Time, capacity int) *Flight {
	return &Flight{
		Number:             number,
		Origin:             origin,
		Destination:        destination,
		Airline:            airline,
		DepartureTime:      departure,
		ArrivalTime:        arrival,
		Capacity:           capacity,
		OpenForReservation: true,
	}
}

// SetNotifier installs the receiver for delay signals.
func (f *Flight) SetNotifier(n Notifier) {
	f.notifier = n
}

// AddPassenger books the passenger onto the flight. It fails without mutation
// when the flight is closed or full.
func (f *Flight) AddPassenger(p *Passenger) bool {
	if !f.OpenForReservation || len(f.passengers) >= f.Capacity {
		return false
	}
	f.passengers = append(f.passengers, p)
	return true
}

// RemovePassenger removes the passenger from the booked list and reports
// whether a removal occurred.
func (f *Flight) RemovePassenger(p *Passenger) bool {
	for i, booked := range f.passengers {
		if booked == p {
			f.passengers = append(f.passengers[:i], f.passengers[i+1:]...)
			return true
		}
	}
	return false
}

// RemainingSeats returns the number of unbooked seats.
func (f *Flight) RemainingSeats() int {
	return f.Capacity - len(f.passengers)
}

// Delay overwrites the schedule and signals every currently booked passenger,
// each exactly once.
func (f *Flight) Delay(newDeparture, newArrival time.Time) {
	f.DepartureTime = newDeparture
	f.ArrivalTime = newArrival
	if f.notifier == nil {
		return
	}
	for _, p := range f.passengers {
		f.notifier.FlightDelayed(f, p)
	}
}

// BoardPassengers runs the one-shot boarding process: booked passengers with
// priority boarding who are present at the origin terminal board first, then
// the remaining present passengers, each group in booking order, until capacity
// is reached. The booked list is cleared afterward regardless of how many
// boarded. Passengers not at the origin terminal are never boarded. Returns the
// newly boarded passengers in boarding order, or ErrFlightAlreadyBoarded when
// boarding already filled the flight.
func (f *Flight) BoardPassengers() ([]*Passenger, error) {
	if len(f.boarded) >= f.Capacity {
		return nil, ErrFlightAlreadyBoarded
	}

	var newlyBoarded []*Passenger
	board := func(p *Passenger) bool {
		if len(f.boarded) >= f.Capacity {
			return false
		}
		f.boarded = append(f.boarded, p)
		newlyBoarded = append(newlyBoarded, p)
		return true
	}

	for _, p := range f.passengers {
		if p.PriorityBoarding && p.AtTerminal(f.Origin) {
			if !board(p) {
				break
			}
		}
	}
	for _, p := range f.passengers {
		if !p.PriorityBoarding && p.AtTerminal(f.Origin) {
			if !board(p) {
				break
			}
		}
	}

	f.passengers = nil
	return newlyBoarded, nil
}

// Passengers returns a copy of the booked passenger list in booking order.
func (f *Flight) Passengers() []*Passenger {
	return append([]*Passenger(nil), f.passengers...)
}

// BoardedPassengers returns a copy of the boarded list in boarding order.
func (f *Flight) BoardedPassengers() []*Passenger {
	return append([]*Passenger(nil), f.boarded...)
}

// PassengerNames returns the names of all currently booked passengers in
// booking order.
func (f *Flight) PassengerNames() []string {
	names := make([]string, 0, len(f.passengers))
	for _, p := range f.passengers {
		names = append(names, p.Name)
	}
	return names
}

package models

// Terminal is an airport terminal used as the origin or destination of flights.
// Flights reference terminals; they never own them.
type Terminal struct {
	Name     string
	Location string

	departing []*Flight
	arriving  []*Flight
}

// NewTerminal creates a terminal at the given location.
func NewTerminal(name, location string) *Terminal {
	return &Terminal{Name: name, Location: location}
}

// AddDepartingFlight appends a flight to the departing list.
func (t *Terminal) AddDepartingFlight(f *Flight) {
	t.departing = append(t.departing, f)
}

// AddArrivingFlight appends a flight to the arriving list.
func (t *Terminal) AddArrivingFlight(f *Flight) {
	t.arriving = append(t.arriving, f)
}

// DepartingFlights returns a copy of the departing flight list in insertion order.
func (t *Terminal) DepartingFlights() []*Flight {
	return append([]*Flight(nil), t.departing...)
}

// ArrivingFlights returns a copy of the arriving flight list in insertion order.
func (t *Terminal) ArrivingFlights() []*Flight {
	return append([]*Flight(nil), t.arriving...)
}

// HasPassenger reports whether the passenger is currently at this terminal.
// Presence is an attribute of the passenger, not of the terminal.
func (t *Terminal) HasPassenger(p *Passenger) bool {
	return p.AtTerminal(t)
}

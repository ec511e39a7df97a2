package websocket

import "github.com/skyfare/airline-reservation/internal/models"

// DelayNotifier bridges flight delay signals from the domain onto the hub so
// subscribed clients see them.
type DelayNotifier struct {
	hub *Hub
}

// NewDelayNotifier creates a notifier broadcasting through hub.
func NewDelayNotifier(hub *Hub) *DelayNotifier {
	return &DelayNotifier{hub: hub}
}

// FlightDelayed implements models.Notifier.
func (n *DelayNotifier) FlightDelayed(flight *models.Flight, passenger *models.Passenger) {
	n.hub.BroadcastFlightDelayed(flight.Number, passenger.Name, flight.DepartureTime, flight.ArrivalTime)
}

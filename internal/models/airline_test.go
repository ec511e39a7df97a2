package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAirline(t *testing.T) (*AirlineCompany, *Flight, *Flight) {
	t.Helper()
	airline := NewAirlineCompany("Eastern Pacific")
	shanghai := NewTerminal("Shanghai Terminal", "Shanghai")
	guangzhou := NewTerminal("Guangzhou Terminal", "Guangzhou")
	newYork := NewTerminal("NewYork Terminal", "NewYork")
	paris := NewTerminal("Paris Terminal", "Paris")

	departure := time.Date(2024, 11, 18, 12, 0, 0, 0, time.UTC)
	abroad := NewFlight("MU12322", newYork, paris, airline, departure, departure.Add(12*time.Hour), 10)
	domestic := NewFlight("MU45613", shanghai, guangzhou, airline, departure.Add(48*time.Hour), departure.Add(51*time.Hour), 3)
	airline.AddFlight(domestic)
	airline.AddFlight(abroad)
	return airline, domestic, abroad
}

func TestAirlineCompany_CancelFlight(t *testing.T) {
	airline, domestic, abroad := newTestAirline(t)

	assert.True(t, airline.CancelFlight(domestic))
	assert.False(t, airline.CancelFlight(domestic))
	assert.Equal(t, []*Flight{abroad}, airline.Flights())
}

func TestAirlineCompany_DelayFlight(t *testing.T) {
	airline, domestic, _ := newTestAirline(t)
	notifier := &recordingNotifier{}
	domestic.SetNotifier(notifier)
	alice := NewPassenger("Alice", 2000)
	domestic.AddPassenger(alice)

	newDeparture := domestic.DepartureTime.Add(2 * time.Hour)
	newArrival := domestic.ArrivalTime.Add(2 * time.Hour)
	airline.DelayFlight(domestic, newDeparture, newArrival)

	assert.Equal(t, newDeparture, domestic.DepartureTime)
	assert.Equal(t, newArrival, domestic.ArrivalTime)
	assert.Equal(t, []*Passenger{alice}, notifier.delayed)
}

func TestAirlineCompany_InventoryReport(t *testing.T) {
	airline, domestic, _ := newTestAirline(t)
	for _, name := range []string{"Alice", "Bob"} {
		require.True(t, domestic.AddPassenger(NewPassenger(name, 2000)))
	}

	report := airline.InventoryReport()
	require.Len(t, report, 2)

	assert.Equal(t, "MU45613", report[0].FlightNumber)
	assert.Equal(t, "Shanghai", report[0].Origin)
	assert.Equal(t, 1, report[0].RemainingSeats)
	assert.True(t, report[0].NearingCapacity, "1 remaining seat is at or below the threshold")

	assert.Equal(t, "MU12322", report[1].FlightNumber)
	assert.Equal(t, 10, report[1].RemainingSeats)
	assert.False(t, report[1].NearingCapacity)
}

func TestAirlineCompany_SharedLedger(t *testing.T) {
	airline, _, _ := newTestAirline(t)
	alice := NewPassenger("Alice", 2000)

	airline.Ledger().AddPoints(alice.ID, 25)
	assert.Equal(t, 25, airline.Ledger().Points(alice.ID))
}

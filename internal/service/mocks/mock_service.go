package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/skyfare/airline-reservation/internal/models"
	"github.com/skyfare/airline-reservation/internal/service"
)

// MockBookingService is a mock implementation of service.BookingService.
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetFlights(ctx context.Context) []*service.FlightSummary {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*service.FlightSummary)
}

func (m *MockBookingService) GetFlight(ctx context.Context, flightNumber string) (*service.FlightSummary, error) {
	args := m.Called(ctx, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FlightSummary), args.Error(1)
}

func (m *MockBookingService) GetFlightPassengers(ctx context.Context, flightNumber string) ([]string, error) {
	args := m.Called(ctx, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookingService) RegisterPassenger(ctx context.Context, req *service.RegisterPassengerRequest) (*service.PassengerAccount, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PassengerAccount), args.Error(1)
}

func (m *MockBookingService) GetPassenger(ctx context.Context, passengerID string) (*service.PassengerAccount, error) {
	args := m.Called(ctx, passengerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PassengerAccount), args.Error(1)
}

func (m *MockBookingService) GetPoints(ctx context.Context, passengerID string) (int, error) {
	args := m.Called(ctx, passengerID)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingService) CheckInPassenger(ctx context.Context, passengerID string, terminalName string) error {
	args := m.Called(ctx, passengerID, terminalName)
	return args.Error(0)
}

func (m *MockBookingService) MakeReservation(ctx context.Context, passengerID string, req *service.ReservationRequest) (*service.BookingConfirmation, error) {
	args := m.Called(ctx, passengerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BookingConfirmation), args.Error(1)
}

func (m *MockBookingService) ModifySeatCategory(ctx context.Context, passengerID, flightNumber, newCategory string) error {
	args := m.Called(ctx, passengerID, flightNumber, newCategory)
	return args.Error(0)
}

func (m *MockBookingService) CancelReservation(ctx context.Context, passengerID, flightNumber string) error {
	args := m.Called(ctx, passengerID, flightNumber)
	return args.Error(0)
}

func (m *MockBookingService) DelayFlight(ctx context.Context, flightNumber string, req *service.DelayRequest) error {
	args := m.Called(ctx, flightNumber, req)
	return args.Error(0)
}

func (m *MockBookingService) CancelFlight(ctx context.Context, flightNumber string) error {
	args := m.Called(ctx, flightNumber)
	return args.Error(0)
}

func (m *MockBookingService) BoardFlight(ctx context.Context, flightNumber string) (*service.BoardingReport, error) {
	args := m.Called(ctx, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BoardingReport), args.Error(1)
}

func (m *MockBookingService) InventoryReport(ctx context.Context) []models.FlightInventory {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.FlightInventory)
}

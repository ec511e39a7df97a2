package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"github.com/skyfare/airline-reservation/internal/models"
)

var (
	// ErrNotFound is returned when a flight, passenger or terminal id does
	// not resolve.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("invalid input")
)

// BookingService defines the reservation service interface.
type BookingService interface {
	GetFlights(ctx context.Context) []*FlightSummary
	GetFlight(ctx context.Context, flightNumber string) (*FlightSummary, error)
	GetFlightPassengers(ctx context.Context, flightNumber string) ([]string, error)
	RegisterPassenger(ctx context.Context, req *RegisterPassengerRequest) (*PassengerAccount, error)
	GetPassenger(ctx context.Context, passengerID string) (*PassengerAccount, error)
	GetPoints(ctx context.Context, passengerID string) (int, error)
	CheckInPassenger(ctx context.Context, passengerID string, terminalName string) error
	MakeReservation(ctx context.Context, passengerID string, req *ReservationRequest) (*BookingConfirmation, error)
	ModifySeatCategory(ctx context.Context, passengerID, flightNumber, newCategory string) error
	CancelReservation(ctx context.Context, passengerID, flightNumber string) error
	DelayFlight(ctx context.Context, flightNumber string, req *DelayRequest) error
	CancelFlight(ctx context.Context, flightNumber string) error
	BoardFlight(ctx context.Context, flightNumber string) (*BoardingReport, error)
	InventoryReport(ctx context.Context) []models.FlightInventory
}

// bookingServiceImpl implements BookingService over the in-memory domain
// graph. The domain entities assume single-threaded access, so every operation
// takes the service lock.
type bookingServiceImpl struct {
	mu sync.RWMutex

	airline    *models.AirlineCompany
	flights    map[string]*models.Flight
	passengers map[uuid.UUID]*models.Passenger
	terminals  map[string]*models.Terminal
	notifier   models.Notifier
}

// NewBookingService creates a BookingService seeded with sample terminals and
// flights. The notifier receives flight delay signals; nil disables them.
func NewBookingService(notifier models.Notifier) BookingService {
	svc := &bookingServiceImpl{
		airline:    models.NewAirlineCompany("Eastern Pacific Airlines"),
		flights:    make(map[string]*models.Flight),
		passengers: make(map[uuid.UUID]*models.Passenger),
		terminals:  make(map[string]*models.Terminal),
		notifier:   notifier,
	}
	svc.initializeSampleFlights()
	return svc
}

func (s *bookingServiceImpl) initializeSampleFlights() {
	newYork := models.NewTerminal("NewYork Terminal", "NewYork")
	paris := models.NewTerminal("Paris Terminal", "Paris")
	shanghai := models.NewTerminal("Shanghai Terminal", "Shanghai")
	guangzhou := models.NewTerminal("Guangzhou Terminal", "Guangzhou")
	for _, t := range []*models.Terminal{newYork, paris, shanghai, guangzhou} {
		s.terminals[t.Name] = t
	}

	now := time.Now()
	flights := []*models.Flight{
		models.NewFlight("MU12322", newYork, paris, s.airline, now.Add(24*time.Hour), now.Add(36*time.Hour), 10),
		models.NewFlight("MU45613", shanghai, guangzhou, s.airline, now.Add(48*time.Hour), now.Add(51*time.Hour), 3),
	}

	for _, f := range flights {
		f.SetNotifier(s.notifier)
		f.Origin.AddDepartingFlight(f)
		f.Destination.AddArrivingFlight(f)
		s.airline.AddFlight(f)
		s.flights[f.Number] = f
		log.Infof("seeded flight %s: %s -> %s, %d seats", f.Number, f.Origin.Location, f.Destination.Location, f.Capacity)
	}
}

func (s *bookingServiceImpl) flightSummary(f *models.Flight) *FlightSummary {
	return &FlightSummary{
		FlightNumber:       f.Number,
		Origin:             f.Origin.Location,
		Destination:        f.Destination.Location,
		DepartureTime:      f.DepartureTime,
		ArrivalTime:        f.ArrivalTime,
		Capacity:           f.Capacity,
		RemainingSeats:     f.RemainingSeats(),
		OpenForReservation: f.OpenForReservation,
	}
}

func (s *bookingServiceImpl) passengerAccount(p *models.Passenger) *PassengerAccount {
	account := &PassengerAccount{
		ID:               p.ID.String(),
		Name:             p.Name,
		Balance:          p.Balance,
		LoyaltyPoints:    s.airline.Ledger().Points(p.ID),
		PriorityBoarding: p.PriorityBoarding,
		Reservations:     []ReservationSummary{},
	}
	if p.CurrentTerminal != nil {
		account.Terminal = p.CurrentTerminal.Name
	}
	for _, r := range p.Reservations() {
		summary := ReservationSummary{
			FlightNumber: r.Flight.Number,
			SeatCategory: string(r.Category),
			Fee:          r.Fee,
		}
		if r.Insurance != nil {
			summary.PolicyNumber = r.Insurance.PolicyNumber
		}
		account.Reservations = append(account.Reservations, summary)
	}
	return account
}

func (s *bookingServiceImpl) lookupFlight(flightNumber string) (*models.Flight, error) {
	flight, ok := s.flights[flightNumber]
	if !ok {
		return nil, fmt.Errorf("flight %s: %w", flightNumber, ErrNotFound)
	}
	return flight, nil
}

func (s *bookingServiceImpl) lookupPassenger(passengerID string) (*models.Passenger, error) {
	id, err := uuid.Parse(passengerID)
	if err != nil {
		return nil, fmt.Errorf("passenger id %q: %w", passengerID, ErrInvalidInput)
	}
	passenger, ok := s.passengers[id]
	if !ok {
		return nil, fmt.Errorf("passenger %s: %w", passengerID, ErrNotFound)
	}
	return passenger, nil
}

func (s *bookingServiceImpl) GetFlights(ctx context.Context) []*FlightSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]*FlightSummary, 0, len(s.airline.Flights()))
	for _, f := range s.airline.Flights() {
		summaries = append(summaries, s.flightSummary(f))
	}
	return summaries
}

func (s *bookingServiceImpl) GetFlight(ctx context.Context, flightNumber string) (*FlightSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	flight, err := s.lookupFlight(flightNumber)
	if err != nil {
		return nil, err
	}
	return s.flightSummary(flight), nil
}

func (s *bookingServiceImpl) GetFlightPassengers(ctx context.Context, flightNumber string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	flight, err := s.lookupFlight(flightNumber)
	if err != nil {
		return nil, err
	}
	return flight.PassengerNames(), nil
}

func (s *bookingServiceImpl) RegisterPassenger(ctx context.Context, req *RegisterPassengerRequest) (*PassengerAccount, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("passenger name is required: %w", ErrInvalidInput)
	}
	if req.Balance < 0 {
		return nil, fmt.Errorf("initial balance must be non-negative: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	passenger := models.NewPassenger(req.Name, req.Balance)
	s.passengers[passenger.ID] = passenger
	log.Infof("registered passenger %s (%s)", passenger.Name, passenger.ID)
	return s.passengerAccount(passenger), nil
}

func (s *bookingServiceImpl) GetPassenger(ctx context.Context, passengerID string) (*PassengerAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	passenger, err := s.lookupPassenger(passengerID)
	if err != nil {
		return nil, err
	}
	return s.passengerAccount(passenger), nil
}

func (s *bookingServiceImpl) GetPoints(ctx context.Context, passengerID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	passenger, err := s.lookupPassenger(passengerID)
	if err != nil {
		return 0, err
	}
	return s.airline.Ledger().Points(passenger.ID), nil
}

func (s *bookingServiceImpl) CheckInPassenger(ctx context.Context, passengerID string, terminalName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	passenger, err := s.lookupPassenger(passengerID)
	if err != nil {
		return err
	}
	terminal, ok := s.terminals[terminalName]
	if !ok {
		return fmt.Errorf("terminal %q: %w", terminalName, ErrNotFound)
	}
	passenger.CurrentTerminal = terminal
	return nil
}

func (s *bookingServiceImpl) MakeReservation(ctx context.Context, passengerID string, req *ReservationRequest) (*BookingConfirmation, error) {
	category := models.SeatCategory(req.SeatCategory)
	if !category.Valid() {
		return nil, fmt.Errorf("seat category %q: %w", req.SeatCategory, ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	passenger, err := s.lookupPassenger(passengerID)
	if err != nil {
		return nil, err
	}
	flight, err := s.lookupFlight(req.FlightNumber)
	if err != nil {
		return nil, err
	}

	reservation, err := passenger.MakeReservation(flight, category, s.airline.Ledger(), models.ReservationOptions{
		PurchaseInsurance:        req.Insurance,
		CoverageAmount:           req.CoverageAmount,
		PurchasePriorityBoarding: req.PriorityBoarding,
	})
	if err != nil {
		return nil, err
	}

	confirmation := &BookingConfirmation{
		ReservationSummary: ReservationSummary{
			FlightNumber: flight.Number,
			SeatCategory: string(reservation.Category),
			Fee:          reservation.Fee,
		},
		Balance:       passenger.Balance,
		LoyaltyPoints: s.airline.Ledger().Points(passenger.ID),
	}
	if reservation.Insurance != nil {
		confirmation.PolicyNumber = reservation.Insurance.PolicyNumber
	}
	return confirmation, nil
}

func (s *bookingServiceImpl) ModifySeatCategory(ctx context.Context, passengerID, flightNumber, newCategory string) error {
	category := models.SeatCategory(newCategory)
	if !category.Valid() {
		return fmt.Errorf("seat category %q: %w", newCategory, ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	passenger, err := s.lookupPassenger(passengerID)
	if err != nil {
		return err
	}
	flight, err := s.lookupFlight(flightNumber)
	if err != nil {
		return err
	}
	reservation := passenger.ReservationFor(flight)
	if reservation == nil {
		return models.ErrReservationNotFound
	}
	return passenger.ModifySeatCategory(reservation, category)
}

func (s *bookingServiceImpl) CancelReservation(ctx context.Context, passengerID, flightNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	passenger, err := s.lookupPassenger(passengerID)
	if err != nil {
		return err
	}
	flight, err := s.lookupFlight(flightNumber)
	if err != nil {
		return err
	}
	return passenger.CancelReservation(flight, s.airline.Ledger())
}

func (s *bookingServiceImpl) DelayFlight(ctx context.Context, flightNumber string, req *DelayRequest) error {
	if req.NewDepartureTime.IsZero() || req.NewArrivalTime.IsZero() {
		return fmt.Errorf("both new departure and arrival times are required: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	flight, err := s.lookupFlight(flightNumber)
	if err != nil {
		return err
	}
	s.airline.DelayFlight(flight, req.NewDepartureTime, req.NewArrivalTime)
	log.Infof("flight %s delayed, departing %s", flightNumber, req.NewDepartureTime.Format(time.RFC3339))
	return nil
}

func (s *bookingServiceImpl) CancelFlight(ctx context.Context, flightNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, err := s.lookupFlight(flightNumber)
	if err != nil {
		return err
	}
	s.airline.CancelFlight(flight)
	delete(s.flights, flightNumber)
	return nil
}

func (s *bookingServiceImpl) BoardFlight(ctx context.Context, flightNumber string) (*BoardingReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, err := s.lookupFlight(flightNumber)
	if err != nil {
		return nil, err
	}
	boarded, err := flight.BoardPassengers()
	if err != nil {
		return nil, err
	}

	report := &BoardingReport{FlightNumber: flightNumber, Boarded: []string{}}
	for _, p := range boarded {
		report.Boarded = append(report.Boarded, p.Name)
	}
	return report, nil
}

func (s *bookingServiceImpl) InventoryReport(ctx context.Context) []models.FlightInventory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.airline.InventoryReport()
}

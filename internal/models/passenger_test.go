package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	airline *AirlineCompany
	ledger  *LoyaltyLedger
	flight  *Flight
}

func newBookingFixture(t *testing.T, capacity int) *bookingFixture {
	t.Helper()
	airline := NewAirlineCompany("Eastern Pacific")
	origin := NewTerminal("NewYork Terminal", "NewYork")
	destination := NewTerminal("Paris Terminal", "Paris")
	departure := time.Date(2024, 11, 18, 12, 0, 0, 0, time.UTC)
	flight := NewFlight("MU12322", origin, destination, airline, departure, departure.Add(12*time.Hour), capacity)
	airline.AddFlight(flight)
	return &bookingFixture{airline: airline, ledger: airline.Ledger(), flight: flight}
}

func TestMakeReservation_Success(t *testing.T) {
	fx := newBookingFixture(t, 3)
	alice := NewPassenger("Alice", 2000)

	res, err := alice.MakeReservation(fx.flight, SeatCategoryFirstClass, fx.ledger, ReservationOptions{})
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, 500.0, res.Fee)
	assert.Equal(t, 1500.0, alice.Balance)
	assert.Equal(t, 50, fx.ledger.Points(alice.ID), "floor(fee/10) points accrue")
	assert.Equal(t, []string{"Alice"}, fx.flight.PassengerNames())
	assert.Len(t, alice.Reservations(), 1)
}

func TestMakeReservation_Closed(t *testing.T) {
	fx := newBookingFixture(t, 3)
	fx.flight.OpenForReservation = false
	bob := NewPassenger("Bob", 3000)

	res, err := bob.MakeReservation(fx.flight, SeatCategoryFirstClass, fx.ledger, ReservationOptions{})
	assert.ErrorIs(t, err, ErrReservationClosed)
	assert.Nil(t, res)
	assert.Equal(t, 3000.0, bob.Balance)
}

func TestMakeReservation_CapacityExceeded(t *testing.T) {
	fx := newBookingFixture(t, 3)
	for _, name := range []string{"Alice", "Bob", "Mary"} {
		p := NewPassenger(name, 5000)
		_, err := p.MakeReservation(fx.flight, SeatCategoryFirstClass, fx.ledger, ReservationOptions{})
		require.NoError(t, err)
	}

	haru := NewPassenger("Haru", 10000)
	res, err := haru.MakeReservation(fx.flight, SeatCategoryFirstClass, fx.ledger, ReservationOptions{})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Nil(t, res)
	assert.Equal(t, 10000.0, haru.Balance, "failed booking leaves balance untouched")
	assert.Equal(t, 0, fx.ledger.Points(haru.ID), "failed booking leaves ledger untouched")
	assert.Equal(t, 0, fx.flight.RemainingSeats())
}

func TestMakeReservation_Conflict(t *testing.T) {
	fx := newBookingFixture(t, 3)
	alice := NewPassenger("Alice", 2000)

	_, err := alice.MakeReservation(fx.flight, SeatCategoryEconomy, fx.ledger, ReservationOptions{})
	require.NoError(t, err)

	res, err := alice.MakeReservation(fx.flight, SeatCategoryBusiness, fx.ledger, ReservationOptions{})
	assert.ErrorIs(t, err, ErrReservationConflict)
	assert.Nil(t, res)
	assert.Len(t, alice.Reservations(), 1)
}

func TestMakeReservation_InsufficientFunds(t *testing.T) {
	fx := newBookingFixture(t, 3)
	jack := NewPassenger("Jack", 300)

	res, err := jack.MakeReservation(fx.flight, SeatCategoryFirstClass, fx.ledger, ReservationOptions{})
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Nil(t, res)
	assert.Equal(t, 300.0, jack.Balance)
	assert.Empty(t, fx.flight.PassengerNames())
}

func TestMakeReservation_PointsCoverShortfall(t *testing.T) {
	fx := newBookingFixture(t, 3)
	jack := NewPassenger("Jack", 300)
	fx.ledger.AddPoints(jack.ID, 250)

	res, err := jack.MakeReservation(fx.flight, SeatCategoryFirstClass, fx.ledger, ReservationOptions{})
	require.NoError(t, err)
	require.NotNil(t, res)

	// 250 points cover part of the 500 fee; the remaining 250 comes from the
	// balance, then 50 points accrue.
	assert.Equal(t, 50.0, jack.Balance)
	assert.Equal(t, 50, fx.ledger.Points(jack.ID))
}

func TestMakeReservation_InsuranceUnaffordable_NoPartialCommit(t *testing.T) {
	fx := newBookingFixture(t, 3)
	mary := NewPassenger("Mary", 600)

	res, err := mary.MakeReservation(fx.flight, SeatCategoryFirstClass, fx.ledger, ReservationOptions{
		PurchaseInsurance: true,
		CoverageAmount:    1000,
	})
	assert.ErrorIs(t, err, ErrInsuranceUnaffordable)
	assert.Nil(t, res)

	assert.Equal(t, 600.0, mary.Balance)
	assert.Equal(t, 0, fx.ledger.Points(mary.ID))
	assert.Empty(t, mary.Reservations())
	assert.Empty(t, mary.Policies())
	assert.Empty(t, fx.flight.PassengerNames())
}

func TestMakeReservation_PriorityBoardingUnaffordable_NoPartialCommit(t *testing.T) {
	fx := newBookingFixture(t, 3)
	jack := NewPassenger("Jack", 520)

	res, err := jack.MakeReservation(fx.flight, SeatCategoryFirstClass, fx.ledger, ReservationOptions{
		PurchasePriorityBoarding: true,
	})
	assert.ErrorIs(t, err, ErrPriorityBoardingUnaffordable)
	assert.Nil(t, res)

	assert.Equal(t, 520.0, jack.Balance)
	assert.False(t, jack.PriorityBoarding)
	assert.Empty(t, jack.Reservations())
	assert.Empty(t, fx.flight.PassengerNames())
}

func TestMakeReservation_WithAddOns(t *testing.T) {
	fx := newBookingFixture(t, 3)
	mary := NewPassenger("Mary", 5000)

	res, err := mary.MakeReservation(fx.flight, SeatCategoryFirstClass, fx.ledger, ReservationOptions{
		PurchaseInsurance:        true,
		CoverageAmount:           1000,
		PurchasePriorityBoarding: true,
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, 5000.0-500-1000-PriorityBoardingFee, mary.Balance)
	assert.True(t, mary.PriorityBoarding)
	require.NotNil(t, res.Insurance)
	assert.Equal(t, 1000.0, res.Insurance.CoverageAmount)
	assert.Contains(t, res.Insurance.PolicyNumber, fx.flight.Number)
	assert.Equal(t, []*Insurance{res.Insurance}, mary.Policies())
}

func TestModifySeatCategory_Success(t *testing.T) {
	fx := newBookingFixture(t, 3)
	alice := NewPassenger("Alice", 2000)
	res, err := alice.MakeReservation(fx.flight, SeatCategoryBusiness, fx.ledger, ReservationOptions{})
	require.NoError(t, err)

	require.NoError(t, alice.ModifySeatCategory(res, SeatCategoryFirstClass))
	assert.Equal(t, SeatCategoryFirstClass, res.Category)
	assert.Equal(t, 500.0, res.Fee)
	assert.Equal(t, 1500.0, alice.Balance, "upgrade charges the fee gap")

	require.NoError(t, alice.ModifySeatCategory(res, SeatCategoryEconomy))
	assert.Equal(t, 1900.0, alice.Balance, "downgrade refunds the fee gap")
}

func TestModifySeatCategory_SameCategoryFails(t *testing.T) {
	fx := newBookingFixture(t, 3)
	alice := NewPassenger("Alice", 2000)
	res, err := alice.MakeReservation(fx.flight, SeatCategoryBusiness, fx.ledger, ReservationOptions{})
	require.NoError(t, err)

	assert.ErrorIs(t, alice.ModifySeatCategory(res, SeatCategoryBusiness), ErrInvalidCategoryChange)
	assert.Equal(t, 300.0, res.Fee)
}

func TestModifySeatCategory_UnaffordableUpgradeFails(t *testing.T) {
	fx := newBookingFixture(t, 3)
	jack := NewPassenger("Jack", 300)
	res, err := jack.MakeReservation(fx.flight, SeatCategoryEconomy, fx.ledger, ReservationOptions{})
	require.NoError(t, err)
	require.Equal(t, 200.0, jack.Balance)

	assert.ErrorIs(t, jack.ModifySeatCategory(res, SeatCategoryFirstClass), ErrInvalidCategoryChange)
	assert.Equal(t, SeatCategoryEconomy, res.Category)
	assert.Equal(t, 200.0, jack.Balance)
}

func TestModifySeatCategory_NotFound(t *testing.T) {
	fx := newBookingFixture(t, 3)
	alice := NewPassenger("Alice", 2000)
	stray := NewReservation(fx.flight, SeatCategoryEconomy)

	assert.ErrorIs(t, alice.ModifySeatCategory(stray, SeatCategoryBusiness), ErrReservationNotFound)
}

func TestModifySeatCategory_RoundTripRestoresFee(t *testing.T) {
	fx := newBookingFixture(t, 3)
	alice := NewPassenger("Alice", 2000)
	res, err := alice.MakeReservation(fx.flight, SeatCategoryPremiumEconomy, fx.ledger, ReservationOptions{})
	require.NoError(t, err)
	originalFee := res.Fee
	originalBalance := alice.Balance

	require.NoError(t, alice.ModifySeatCategory(res, SeatCategoryFirstClass))
	require.NoError(t, alice.ModifySeatCategory(res, SeatCategoryPremiumEconomy))

	assert.Equal(t, originalFee, res.Fee)
	assert.Equal(t, originalBalance, alice.Balance)
}

func TestCancelReservation_RefundAndPoints(t *testing.T) {
	fx := newBookingFixture(t, 3)
	alice := NewPassenger("Alice", 2000)
	_, err := alice.MakeReservation(fx.flight, SeatCategoryFirstClass, fx.ledger, ReservationOptions{})
	require.NoError(t, err)

	require.NoError(t, alice.CancelReservation(fx.flight, fx.ledger))

	// Refund is 0.8 * 500 = 400, and floor(400/10) = 40 points accrue on top
	// of the 50 earned at booking.
	assert.Equal(t, 1900.0, alice.Balance)
	assert.Equal(t, 90, fx.ledger.Points(alice.ID))
	assert.Empty(t, alice.Reservations())
	assert.Empty(t, fx.flight.PassengerNames())
}

func TestCancelReservation_WithInsurance(t *testing.T) {
	fx := newBookingFixture(t, 3)
	mary := NewPassenger("Mary", 5000)
	res, err := mary.MakeReservation(fx.flight, SeatCategoryFirstClass, fx.ledger, ReservationOptions{
		PurchaseInsurance: true,
		CoverageAmount:    1000,
	})
	require.NoError(t, err)
	balanceAfterBooking := mary.Balance

	require.NoError(t, mary.CancelReservation(fx.flight, fx.ledger))

	// 0.8 * 500 fee refund plus half the 1000 coverage.
	assert.Equal(t, balanceAfterBooking+400+500, mary.Balance)
	assert.Empty(t, mary.Policies())
	assert.Nil(t, res.Insurance)
}

func TestCancelReservation_RevertsPriorityBoarding(t *testing.T) {
	fx := newBookingFixture(t, 3)
	alice := NewPassenger("Alice", 2000)
	_, err := alice.MakeReservation(fx.flight, SeatCategoryFirstClass, fx.ledger, ReservationOptions{
		PurchasePriorityBoarding: true,
	})
	require.NoError(t, err)
	require.True(t, alice.PriorityBoarding)
	balanceAfterBooking := alice.Balance

	require.NoError(t, alice.CancelReservation(fx.flight, fx.ledger))

	assert.False(t, alice.PriorityBoarding)
	assert.Equal(t, balanceAfterBooking+400+PriorityBoardingFee, alice.Balance)
}

func TestCancelReservation_NotFound(t *testing.T) {
	fx := newBookingFixture(t, 3)
	alice := NewPassenger("Alice", 2000)

	assert.ErrorIs(t, alice.CancelReservation(fx.flight, fx.ledger), ErrReservationNotFound)
}

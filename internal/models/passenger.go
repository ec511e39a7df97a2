package models

import (
	"math"

	"github.com/google/uuid"
)

// PriorityBoardingFee is the flat fee for the priority boarding add-on.
const PriorityBoardingFee = 50.0

// Passenger holds an account balance and the reservations made against it. The
// id is the passenger's identity everywhere, including the loyalty ledger; the
// name is display-only.
type Passenger struct {
	ID               uuid.UUID
	Name             string
	Balance          float64
	PriorityBoarding bool
	CurrentTerminal  *Terminal

	reservations []*Reservation
	policies     []*Insurance
}

// NewPassenger creates a passenger with an initial balance and a fresh id.
func NewPassenger(name string, balance float64) *Passenger {
	return &Passenger{ID: uuid.New(), Name: name, Balance: balance}
}

// AtTerminal reports whether the passenger is currently at t.
func (p *Passenger) AtTerminal(t *Terminal) bool {
	return p.CurrentTerminal != nil && p.CurrentTerminal == t
}

// Reservations returns a copy of the passenger's active reservations.
func (p *Passenger) Reservations() []*Reservation {
	return append([]*Reservation(nil), p.reservations...)
}

// Policies returns a copy of the passenger's insurance policies.
func (p *Passenger) Policies() []*Insurance {
	return append([]*Insurance(nil), p.policies...)
}

// ReservationFor returns the passenger's reservation on flight, nil if none.
func (p *Passenger) ReservationFor(flight *Flight) *Reservation {
	for _, r := range p.reservations {
		if r.Flight == flight {
			return r
		}
	}
	return nil
}

// ReservationOptions carries the optional add-ons for a booking.
type ReservationOptions struct {
	PurchaseInsurance        bool
	CoverageAmount           float64
	PurchasePriorityBoarding bool
}

// MakeReservation books the passenger onto the flight in the given fare class.
// Loyalty points are redeemed against the fee and floor(fee/10) points accrue
// on success. The booking is all-or-nothing: every check, including add-on
// affordability, runs before any balance, ledger or list mutation, so a failed
// add-on cannot leave a half-committed booking.
func (p *Passenger) MakeReservation(flight *Flight, category SeatCategory, ledger *LoyaltyLedger, opts ReservationOptions) (*Reservation, error) {
	if !flight.OpenForReservation {
		return nil, ErrReservationClosed
	}
	if flight.RemainingSeats() < 1 {
		return nil, ErrCapacityExceeded
	}
	if p.ReservationFor(flight) != nil {
		return nil, ErrReservationConflict
	}

	reservation := NewReservation(flight, category)
	fee := reservation.Fee
	points := ledger.Points(p.ID)
	if float64(points)+p.Balance < fee {
		return nil, ErrInsufficientFunds
	}

	// Add-on checks run against the balance as it will stand after the fee.
	discount := math.Min(float64(points), fee)
	projected := p.Balance - (fee - discount)
	if opts.PurchaseInsurance {
		if projected < opts.CoverageAmount {
			return nil, ErrInsuranceUnaffordable
		}
		projected -= opts.CoverageAmount
	}
	if opts.PurchasePriorityBoarding && projected < PriorityBoardingFee {
		return nil, ErrPriorityBoardingUnaffordable
	}

	p.Balance -= ledger.RedeemPoints(p.ID, fee)
	ledger.AddPoints(p.ID, int(fee/10))
	p.reservations = append(p.reservations, reservation)
	flight.AddPassenger(p)

	if opts.PurchaseInsurance {
		policy := NewTravelInsurance(flight, p, opts.CoverageAmount)
		reservation.Insurance = policy
		p.policies = append(p.policies, policy)
		p.Balance -= opts.CoverageAmount
	}
	if opts.PurchasePriorityBoarding {
		p.PriorityBoarding = true
		p.Balance -= PriorityBoardingFee
	}
	return reservation, nil
}

// ModifySeatCategory moves an existing reservation to a new fare class and
// settles the fee difference against the balance. Changing to the same class
// is rejected, as is an upgrade the balance cannot cover.
func (p *Passenger) ModifySeatCategory(reservation *Reservation, newCategory SeatCategory) error {
	var current *Reservation
	for _, r := range p.reservations {
		if r == reservation {
			current = r
			break
		}
	}
	if current == nil {
		return ErrReservationNotFound
	}
	if newCategory == current.Category {
		return ErrInvalidCategoryChange
	}
	gap := current.Category.BaseFee() - newCategory.BaseFee()
	if p.Balance+gap < 0 {
		return ErrInvalidCategoryChange
	}
	current.ModifyCategory(newCategory)
	p.Balance += gap
	return nil
}

// CancelReservation cancels the passenger's reservation on flight, refunding
// RefundRate of the fee and accruing floor(refund/10) points. A linked
// insurance policy refunds half its coverage and is dropped; an active
// priority boarding add-on is reverted with its flat fee.
func (p *Passenger) CancelReservation(flight *Flight, ledger *LoyaltyLedger) error {
	var reservation *Reservation
	for i, r := range p.reservations {
		if r.Flight == flight {
			reservation = r
			p.reservations = append(p.reservations[:i], p.reservations[i+1:]...)
			break
		}
	}
	if reservation == nil {
		return ErrReservationNotFound
	}

	flight.RemovePassenger(p)
	refund := reservation.RefundFee()
	p.Balance += refund
	ledger.AddPoints(p.ID, int(refund/10))

	if reservation.Insurance != nil {
		p.Balance += reservation.Insurance.CoverageAmount * 0.5
		p.removePolicy(reservation.Insurance)
		reservation.Insurance = nil
	}
	if p.PriorityBoarding {
		p.PriorityBoarding = false
		p.Balance += PriorityBoardingFee
	}
	return nil
}

func (p *Passenger) removePolicy(policy *Insurance) {
	for i, existing := range p.policies {
		if existing == policy {
			p.policies = append(p.policies[:i], p.policies[i+1:]...)
			return
		}
	}
}

package models

import (
	"math"

	"github.com/google/uuid"
)

// LoyaltyLedger tracks loyalty point balances per passenger. Accounts are keyed
// by passenger id, never by name.
type LoyaltyLedger struct {
	points map[uuid.UUID]int
}

// NewLoyaltyLedger creates an empty ledger.
func NewLoyaltyLedger() *LoyaltyLedger {
	return &LoyaltyLedger{points: make(map[uuid.UUID]int)}
}

// AddPoints credits n points to the passenger's account.
func (l *LoyaltyLedger) AddPoints(passengerID uuid.UUID, n int) {
	l.points[passengerID] += n
}

// DeductPoints removes up to n points; the balance is floored at zero.
func (l *LoyaltyLedger) DeductPoints(passengerID uuid.UUID, n int) {
	remaining := l.points[passengerID] - n
	if remaining < 0 {
		remaining = 0
	}
	l.points[passengerID] = remaining
}

// Points returns the passenger's current balance, zero if they have no account.
func (l *LoyaltyLedger) Points(passengerID uuid.UUID) int {
	return l.points[passengerID]
}

// RedeemPoints applies the passenger's points against fee and returns the amount
// still owed. The discount never exceeds the fee or the available points, so the
// result and the remaining balance are both non-negative. The caller settles the
// returned amount against the passenger's monetary balance.
func (l *LoyaltyLedger) RedeemPoints(passengerID uuid.UUID, fee float64) float64 {
	discount := math.Min(float64(l.points[passengerID]), fee)
	l.points[passengerID] -= int(discount)
	return fee - discount
}

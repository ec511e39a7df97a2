package models

// RefundRate is the fraction of the paid fee returned on cancellation.
const RefundRate = 0.8

// Reservation is a passenger's claim on one seat on one flight. A passenger
// holds at most one reservation per flight.
type Reservation struct {
	Flight    *Flight
	Category  SeatCategory
	Fee       float64
	Insurance *Insurance
}

// NewReservation creates a reservation priced at the fare class's base fee.
func NewReservation(flight *Flight, category SeatCategory) *Reservation {
	return &Reservation{
		Flight:   flight,
		Category: category,
		Fee:      category.BaseFee(),
	}
}

// ModifyCategory switches the reservation to a new fare class. The fee is
// recomputed from the new class's base fee; the old fee is discarded, not
// prorated.
func (r *Reservation) ModifyCategory(newCategory SeatCategory) {
	r.Category = newCategory
	r.Fee = newCategory.BaseFee()
}

// RefundFee returns the amount returned if the reservation is cancelled.
func (r *Reservation) RefundFee() float64 {
	return r.Fee * RefundRate
}

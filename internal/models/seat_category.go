package models

// SeatCategory represents a fare class with a fixed base fee.
type SeatCategory string

const (
	SeatCategoryEconomy        SeatCategory = "economy"
	SeatCategoryPremiumEconomy SeatCategory = "premium_economy"
	SeatCategoryBusiness       SeatCategory = "business"
	SeatCategoryFirstClass     SeatCategory = "first_class"
)

// BaseFee returns the reservation fee for the fare class.
func (c SeatCategory) BaseFee() float64 {
	switch c {
	case SeatCategoryEconomy:
		return 100
	case SeatCategoryPremiumEconomy:
		return 150
	case SeatCategoryBusiness:
		return 300
	case SeatCategoryFirstClass:
		return 500
	}
	return 0
}

// Valid reports whether c is one of the known fare classes.
func (c SeatCategory) Valid() bool {
	switch c {
	case SeatCategoryEconomy, SeatCategoryPremiumEconomy, SeatCategoryBusiness, SeatCategoryFirstClass:
		return true
	}
	return false
}

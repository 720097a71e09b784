package services

import (
	"time"

	"stayease-backend/domain"
)

// StayQuote is the per-line price breakdown for a stay. The two total
// variants are deliberately distinct: the property-detail booking widget
// omits taxes, the confirmation summary includes them.
type StayQuote struct {
	Nights      int `json:"nights"`
	Subtotal    int `json:"subtotal"`
	CleaningFee int `json:"cleaningFee"`
	ServiceFee  int `json:"serviceFee"`
	Taxes       int `json:"taxes"`
}

// WidgetTotal is the total shown in the booking widget: subtotal plus
// cleaning and service fees, no taxes.
func (q StayQuote) WidgetTotal() int {
	return q.Subtotal + q.CleaningFee + q.ServiceFee
}

// ConfirmationTotal is the total shown on the confirmation summary and the
// one persisted on a created booking.
func (q StayQuote) ConfirmationTotal() int {
	return q.WidgetTotal() + q.Taxes
}

type PricingService interface {
	// ComputeStayPricing derives the quote for a stay. cleaningFeeOverride
	// of zero falls back to the default fee.
	ComputeStayPricing(pricePerNight int, checkIn, checkOut time.Time, cleaningFeeOverride int) (StayQuote, error)
	ComputeWidgetTotal(pricePerNight int, checkIn, checkOut time.Time, cleaningFeeOverride int) (domain.PriceBreakdown, error)
	ComputeConfirmationTotal(pricePerNight int, checkIn, checkOut time.Time, cleaningFeeOverride int) (domain.PriceBreakdown, error)
	ComputeGuestMultipliedPrice(basePrice int, guests int) (int, error)
}

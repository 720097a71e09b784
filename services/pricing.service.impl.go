package services

import (
	"math"
	"time"

	"stayease-backend/domain"
)

const (
	defaultCleaningFee = 50
	serviceFeeRate     = 0.14
	taxRate            = 0.12
)

type PricingServiceImpl struct{}

func NewPricingServiceImpl() PricingService {
	return &PricingServiceImpl{}
}

// roundHalfUp rounds at each fee line, not at the end, so displayed lines
// always add up to the displayed total.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func (ps *PricingServiceImpl) ComputeStayPricing(pricePerNight int, checkIn, checkOut time.Time, cleaningFeeOverride int) (StayQuote, error) {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights <= 0 {
		return StayQuote{}, domain.ErrInvalidDateRange()
	}

	cleaningFee := cleaningFeeOverride
	if cleaningFee == 0 {
		cleaningFee = defaultCleaningFee
	}

	subtotal := pricePerNight * nights
	return StayQuote{
		Nights:      nights,
		Subtotal:    subtotal,
		CleaningFee: cleaningFee,
		ServiceFee:  roundHalfUp(float64(subtotal) * serviceFeeRate),
		Taxes:       roundHalfUp(float64(subtotal) * taxRate),
	}, nil
}

func (ps *PricingServiceImpl) ComputeWidgetTotal(pricePerNight int, checkIn, checkOut time.Time, cleaningFeeOverride int) (domain.PriceBreakdown, error) {
	quote, err := ps.ComputeStayPricing(pricePerNight, checkIn, checkOut, cleaningFeeOverride)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}
	return domain.PriceBreakdown{
		Nights:      quote.Nights,
		Subtotal:    quote.Subtotal,
		CleaningFee: quote.CleaningFee,
		ServiceFee:  quote.ServiceFee,
		Total:       quote.WidgetTotal(),
	}, nil
}

func (ps *PricingServiceImpl) ComputeConfirmationTotal(pricePerNight int, checkIn, checkOut time.Time, cleaningFeeOverride int) (domain.PriceBreakdown, error) {
	quote, err := ps.ComputeStayPricing(pricePerNight, checkIn, checkOut, cleaningFeeOverride)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}
	return domain.PriceBreakdown{
		Nights:      quote.Nights,
		Subtotal:    quote.Subtotal,
		CleaningFee: quote.CleaningFee,
		ServiceFee:  quote.ServiceFee,
		Taxes:       quote.Taxes,
		Total:       quote.ConfirmationTotal(),
	}, nil
}

func (ps *PricingServiceImpl) ComputeGuestMultipliedPrice(basePrice int, guests int) (int, error) {
	if guests < 1 {
		return 0, domain.ErrInvalidGuestCount()
	}
	return basePrice * guests, nil
}

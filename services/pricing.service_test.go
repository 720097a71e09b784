package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stayease-backend/domain"
)

func day(d int) time.Time {
	return time.Date(2026, time.July, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeStayPricing(t *testing.T) {
	ps := NewPricingServiceImpl()

	quote, err := ps.ComputeStayPricing(280, day(10), day(13), 50)
	require.NoError(t, err)
	require.Equal(t, 3, quote.Nights)
	require.Equal(t, 840, quote.Subtotal)
	require.Equal(t, 50, quote.CleaningFee)
	require.Equal(t, 118, quote.ServiceFee)
	require.Equal(t, 101, quote.Taxes)
	require.Equal(t, 1008, quote.WidgetTotal())
	require.Equal(t, 1109, quote.ConfirmationTotal())
}

func TestComputeStayPricing_DefaultCleaningFee(t *testing.T) {
	ps := NewPricingServiceImpl()

	quote, err := ps.ComputeStayPricing(100, day(1), day(2), 0)
	require.NoError(t, err)
	require.Equal(t, 50, quote.CleaningFee)
}

func TestComputeStayPricing_PartialNightRoundsUp(t *testing.T) {
	ps := NewPricingServiceImpl()

	checkIn := time.Date(2026, time.July, 10, 15, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, time.July, 12, 11, 0, 0, 0, time.UTC)

	quote, err := ps.ComputeStayPricing(200, checkIn, checkOut, 0)
	require.NoError(t, err)
	require.Equal(t, 2, quote.Nights)
}

func TestComputeStayPricing_InvalidRange(t *testing.T) {
	ps := NewPricingServiceImpl()

	_, err := ps.ComputeStayPricing(280, day(13), day(10), 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrInvalidDateRange()))

	_, err = ps.ComputeStayPricing(280, day(10), day(10), 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrInvalidDateRange()))
}

func TestWidgetAndConfirmationTotals(t *testing.T) {
	ps := NewPricingServiceImpl()

	widget, err := ps.ComputeWidgetTotal(280, day(10), day(13), 50)
	require.NoError(t, err)
	require.Equal(t, 0, widget.Taxes)
	require.Equal(t, 1008, widget.Total)

	confirmation, err := ps.ComputeConfirmationTotal(280, day(10), day(13), 50)
	require.NoError(t, err)
	require.Equal(t, 101, confirmation.Taxes)
	require.Equal(t, 1109, confirmation.Total)
}

func TestComputeGuestMultipliedPrice(t *testing.T) {
	ps := NewPricingServiceImpl()

	total, err := ps.ComputeGuestMultipliedPrice(45, 3)
	require.NoError(t, err)
	require.Equal(t, 135, total)

	_, err = ps.ComputeGuestMultipliedPrice(45, 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrInvalidGuestCount()))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stayease-backend/domain"
)

func validGuest() domain.GuestInfo {
	return domain.GuestInfo{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
		Phone:     "+48 123 456 789",
	}
}

func validCardPayment() domain.PaymentInput {
	return domain.PaymentInput{
		Method:         "card",
		CardNumber:     "4111 1111 1111 1111",
		ExpiryDate:     "12/29",
		CVV:            "123",
		CardholderName: "Jane Doe",
	}
}

func TestValidateGuestInfo_Valid(t *testing.T) {
	bv := NewBookingValidator()

	result := bv.ValidateGuestInfo(&domain.GuestInfo{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
		Phone:     "123-456-789",
	})
	require.True(t, result.Valid)
	require.Empty(t, result.Errors)
}

func TestValidateGuestInfo_Invalid(t *testing.T) {
	bv := NewBookingValidator()

	result := bv.ValidateGuestInfo(&domain.GuestInfo{
		FirstName: " J ",
		LastName:  "",
		Email:     "not-an-email",
		Phone:     "12345",
	})
	require.False(t, result.Valid)
	require.Equal(t, "First name must be at least 2 characters", result.Errors["firstName"])
	require.Equal(t, "Last name is required", result.Errors["lastName"])
	require.Equal(t, "Invalid email format", result.Errors["email"])
	require.Equal(t, "Invalid phone number", result.Errors["phone"])
}

func TestValidatePaymentInfo_Card(t *testing.T) {
	bv := NewBookingValidator()

	payment := validCardPayment()
	result := bv.ValidatePaymentInfo(&payment)
	require.True(t, result.Valid)
}

func TestValidatePaymentInfo_CardInvalidFields(t *testing.T) {
	bv := NewBookingValidator()

	payment := validCardPayment()
	payment.CardNumber = "4111 1111"
	payment.ExpiryDate = "13/29"
	payment.CVV = "12"

	result := bv.ValidatePaymentInfo(&payment)
	require.False(t, result.Valid)
	require.Equal(t, "Invalid card number", result.Errors["cardNumber"])
	require.Equal(t, "Invalid expiry date", result.Errors["expiryDate"])
	require.Equal(t, "Invalid CVV", result.Errors["cvv"])
}

func TestValidatePaymentInfo_CardRequiredFields(t *testing.T) {
	bv := NewBookingValidator()

	result := bv.ValidatePaymentInfo(&domain.PaymentInput{Method: "card"})
	require.False(t, result.Valid)
	require.Equal(t, "Card number is required", result.Errors["cardNumber"])
	require.Equal(t, "Expiry date is required", result.Errors["expiryDate"])
	require.Equal(t, "CVV is required", result.Errors["cvv"])
	require.Equal(t, "Cardholder name is required", result.Errors["cardholderName"])
}

func TestValidatePaymentInfo_NonCardSkipsCardFields(t *testing.T) {
	bv := NewBookingValidator()

	for _, method := range []string{"paypal", "blik", "bank-transfer"} {
		result := bv.ValidatePaymentInfo(&domain.PaymentInput{Method: method})
		require.True(t, result.Valid, "method %s", method)
	}
}

func TestValidatePaymentInfo_UnknownMethod(t *testing.T) {
	bv := NewBookingValidator()

	result := bv.ValidatePaymentInfo(&domain.PaymentInput{Method: "bitcoin"})
	require.False(t, result.Valid)
	require.Equal(t, "Unknown payment method", result.Errors["method"])
}

func TestValidateSubmission(t *testing.T) {
	bv := NewBookingValidator()

	guest := validGuest()
	payment := validCardPayment()

	result := bv.ValidateSubmission(&guest, &payment, true)
	require.True(t, result.Valid)

	result = bv.ValidateSubmission(&guest, &payment, false)
	require.False(t, result.Valid)
	require.Contains(t, result.Errors, "terms")
}

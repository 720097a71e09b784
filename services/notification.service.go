package services

import "stayease-backend/domain"

// NotificationService delivers booking confirmations. Delivery is best
// effort: a failed send never fails the booking.
type NotificationService interface {
	SendBookingConfirmation(booking *domain.Booking)
}

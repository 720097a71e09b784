package services

import (
	"time"

	"stayease-backend/domain"
)

// BookingDraft is everything the confirmation screen submits. Payment fields
// arrive raw, are validated, and never leave this struct: the created
// booking carries a tokenized payment reference only.
type BookingDraft struct {
	Type          domain.EntityKind     `json:"type"`
	Entity        domain.BookableEntity `json:"entity"`
	CheckInDate   time.Time             `json:"checkInDate,omitempty"`
	CheckOutDate  time.Time             `json:"checkOutDate,omitempty"`
	ScheduledDate time.Time             `json:"scheduledDate,omitempty"`
	ScheduledTime string                `json:"scheduledTime,omitempty"`
	Guests        int                   `json:"guests"`
	GuestInfo     domain.GuestInfo      `json:"guestInfo"`
	Payment       domain.PaymentInput   `json:"payment"`
	TermsAccepted bool                  `json:"termsAccepted"`
}

type BookingService interface {
	// Create validates the draft, stamps a unique confirmation number and
	// persists the booking as confirmed, owned by the given user.
	Create(draft *BookingDraft, ownerUserID string) (*domain.Booking, error)
	List(ownerUserID string, filter domain.BookingFilter) (domain.Bookings, error)
	// GetByConfirmationNumber returns the booking only to its owner,
	// anyone else gets an access denied error.
	GetByConfirmationNumber(confirmationNumber string, requestingUserID string) (*domain.Booking, error)
	// Cancel flips a confirmed booking to cancelled. Completed and
	// cancelled bookings are terminal.
	Cancel(confirmationNumber string, requestingUserID string) (*domain.Booking, error)
	// MigrateLegacyBookings assigns every booking lacking an owner to the
	// given user. Invoked once at login, returns how many were migrated.
	MigrateLegacyBookings(ownerUserID string) (int, error)
}

package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"stayease-backend/domain"
	"stayease-backend/utils"
)

const maxConfirmationAttempts = 10

type BookingServiceImpl struct {
	repo      domain.BookingRepository
	pricing   PricingService
	validator *utils.BookingValidator
	notifier  NotificationService
	logger    *logrus.Logger
}

func NewBookingServiceImpl(repo domain.BookingRepository, pricing PricingService, validator *utils.BookingValidator, notifier NotificationService, logger *logrus.Logger) BookingService {
	return &BookingServiceImpl{repo, pricing, validator, notifier, logger}
}

func (bs *BookingServiceImpl) Create(draft *BookingDraft, ownerUserID string) (*domain.Booking, error) {
	result := bs.validator.ValidateSubmission(&draft.GuestInfo, &draft.Payment, draft.TermsAccepted)
	if !result.Valid {
		return nil, domain.NewValidationError(result.Errors)
	}

	pricing, err := bs.price(draft)
	if err != nil {
		return nil, err
	}

	confirmationNumber, err := bs.stampConfirmationNumber(draft.Type)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:                 uuid.NewString(),
		ConfirmationNumber: confirmationNumber,
		Type:               draft.Type,
		Entity:             draft.Entity,
		CheckInDate:        draft.CheckInDate,
		CheckOutDate:       draft.CheckOutDate,
		ScheduledDate:      draft.ScheduledDate,
		ScheduledTime:      draft.ScheduledTime,
		Guests:             draft.Guests,
		GuestInfo:          draft.GuestInfo,
		Payment:            tokenizePayment(&draft.Payment),
		Pricing:            pricing,
		Status:             domain.StatusConfirmed,
		BookingDate:        time.Now().UTC(),
		OwnerUserID:        ownerUserID,
	}

	if err := bs.repo.Insert(booking); err != nil {
		return nil, err
	}

	if bs.notifier != nil {
		bs.notifier.SendBookingConfirmation(booking)
	}

	return booking, nil
}

func (bs *BookingServiceImpl) price(draft *BookingDraft) (domain.PriceBreakdown, error) {
	if draft.Type == domain.KindProperty {
		// The persisted total is the taxed confirmation total.
		return bs.pricing.ComputeConfirmationTotal(
			draft.Entity.PricePerNight, draft.CheckInDate, draft.CheckOutDate, draft.Entity.CleaningFee)
	}

	total, err := bs.pricing.ComputeGuestMultipliedPrice(draft.Entity.Price, draft.Guests)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}
	return domain.PriceBreakdown{Subtotal: total, Total: total}, nil
}

// stampConfirmationNumber generates until the number is unique in the
// collection. The random space makes collisions rare, the check makes them
// impossible.
func (bs *BookingServiceImpl) stampConfirmationNumber(kind domain.EntityKind) (string, error) {
	for i := 0; i < maxConfirmationAttempts; i++ {
		number, err := utils.GenerateConfirmationNumber(kind)
		if err != nil {
			return "", err
		}
		exists, err := bs.repo.ConfirmationNumberExists(number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
		bs.logger.Warn("Confirmation number collision, regenerating: ", number)
	}
	return "", fmt.Errorf("could not generate a unique confirmation number")
}

func tokenizePayment(payment *domain.PaymentInput) domain.PaymentRecord {
	record := domain.PaymentRecord{
		Method: payment.Method,
		Token:  uuid.NewString(),
	}
	if payment.Method == "card" {
		stripped := strings.ReplaceAll(payment.CardNumber, " ", "")
		if len(stripped) >= 4 {
			record.CardLast4 = stripped[len(stripped)-4:]
		}
	}
	return record
}

func (bs *BookingServiceImpl) List(ownerUserID string, filter domain.BookingFilter) (domain.Bookings, error) {
	bookings, err := bs.repo.ListByOwner(ownerUserID)
	if err != nil {
		return nil, err
	}

	var out domain.Bookings
	for _, b := range bookings {
		if filter.Matches(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (bs *BookingServiceImpl) GetByConfirmationNumber(confirmationNumber string, requestingUserID string) (*domain.Booking, error) {
	booking, err := bs.repo.GetByConfirmationNumber(confirmationNumber)
	if err != nil {
		return nil, err
	}
	if booking.OwnerUserID != requestingUserID {
		return nil, domain.ErrAccessDenied()
	}
	return booking, nil
}

func (bs *BookingServiceImpl) Cancel(confirmationNumber string, requestingUserID string) (*domain.Booking, error) {
	booking, err := bs.GetByConfirmationNumber(confirmationNumber, requestingUserID)
	if err != nil {
		return nil, err
	}
	if booking.Status.Terminal() {
		return nil, domain.ErrInvalidTransition()
	}

	if err := bs.repo.UpdateStatus(confirmationNumber, domain.StatusCancelled); err != nil {
		return nil, err
	}
	booking.Status = domain.StatusCancelled
	return booking, nil
}

func (bs *BookingServiceImpl) MigrateLegacyBookings(ownerUserID string) (int, error) {
	unowned, err := bs.repo.ListUnowned()
	if err != nil {
		return 0, err
	}

	migrated := 0
	for _, b := range unowned {
		if err := bs.repo.AssignOwner(b.ConfirmationNumber, ownerUserID); err != nil {
			return migrated, err
		}
		migrated++
	}
	if migrated > 0 {
		bs.logger.WithFields(logrus.Fields{"user": ownerUserID, "count": migrated}).
			Info("Migrated legacy bookings to user-specific ownership")
	}
	return migrated, nil
}

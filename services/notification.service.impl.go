package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"stayease-backend/config"
	"stayease-backend/domain"
	"stayease-backend/utils"
)

type NotificationServiceImpl struct {
	cfg     *config.Config
	breaker *gobreaker.CircuitBreaker
	logger  *logrus.Logger
}

func NewNotificationServiceImpl(cfg *config.Config, logger *logrus.Logger) NotificationService {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "smtp",
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{"breaker": name}).
				Warnf("Circuit breaker state change: %s -> %s", from, to)
		},
	})
	return &NotificationServiceImpl{cfg, breaker, logger}
}

func (ns *NotificationServiceImpl) SendBookingConfirmation(booking *domain.Booking) {
	if ns.cfg.SMTPHost == "" {
		return
	}

	data := &utils.EmailData{
		Subject: "Your StayEase booking " + booking.ConfirmationNumber,
		Text:    confirmationText(booking),
		Email:   booking.GuestInfo.Email,
	}

	_, err := ns.breaker.Execute(func() (interface{}, error) {
		return nil, utils.SendEmail(data, ns.cfg)
	})
	if err != nil {
		ns.logger.WithFields(logrus.Fields{"confirmation": booking.ConfirmationNumber}).
			Error("Could not send confirmation email: ", err)
	}
}

func confirmationText(booking *domain.Booking) string {
	text := fmt.Sprintf("Your booking is confirmed!\n\nConfirmation number: %s\n%s\n",
		booking.ConfirmationNumber, booking.Entity.Title)
	if booking.Type == domain.KindProperty {
		text += fmt.Sprintf("Check-in: %s\nCheck-out: %s\n",
			booking.CheckInDate.Format("2006-01-02"), booking.CheckOutDate.Format("2006-01-02"))
	} else {
		text += fmt.Sprintf("Date: %s %s\n",
			booking.ScheduledDate.Format("2006-01-02"), booking.ScheduledTime)
	}
	text += fmt.Sprintf("Guests: %d\nTotal: %d\n", booking.Guests, booking.Pricing.Total)
	return text
}

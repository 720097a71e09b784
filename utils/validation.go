package utils

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"stayease-backend/domain"
)

var (
	phoneRegex  = regexp.MustCompile(`^[+]?[\d\s\-()]{9,}$`)
	cardRegex   = regexp.MustCompile(`^\d{16}$`)
	expiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRegex    = regexp.MustCompile(`^\d{3,4}$`)
)

// ValidationResult is returned to the caller for per-field display. Errors
// is keyed by the field's json name.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// BookingValidator checks guest and payment forms. Card-specific fields are
// only validated when the payment method is card; paypal, blik and
// bank-transfer skip them entirely.
type BookingValidator struct {
	validate *validator.Validate
}

func NewBookingValidator() *BookingValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("trimmedmin", func(fl validator.FieldLevel) bool {
		min := 2
		if p := fl.Param(); p != "" {
			min, _ = strconv.Atoi(p)
		}
		return len(strings.TrimSpace(fl.Field().String())) >= min
	})
	v.RegisterValidation("loosephone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("cardnumber", func(fl validator.FieldLevel) bool {
		stripped := strings.ReplaceAll(fl.Field().String(), " ", "")
		return cardRegex.MatchString(stripped)
	})
	v.RegisterValidation("expirydate", func(fl validator.FieldLevel) bool {
		return expiryRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("cvvcode", func(fl validator.FieldLevel) bool {
		return cvvRegex.MatchString(fl.Field().String())
	})

	return &BookingValidator{validate: v}
}

func (bv *BookingValidator) ValidateGuestInfo(info *domain.GuestInfo) ValidationResult {
	errs := map[string]string{}
	if err := bv.validate.Struct(info); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs[fe.Field()] = guestMessage(fe)
		}
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func (bv *BookingValidator) ValidatePaymentInfo(payment *domain.PaymentInput) ValidationResult {
	errs := map[string]string{}
	if err := bv.validate.Struct(payment); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs[fe.Field()] = paymentMessage(fe)
		}
	}

	if payment.Method == "card" {
		if strings.TrimSpace(payment.CardNumber) == "" {
			errs["cardNumber"] = "Card number is required"
		}
		if strings.TrimSpace(payment.ExpiryDate) == "" {
			errs["expiryDate"] = "Expiry date is required"
		}
		if strings.TrimSpace(payment.CVV) == "" {
			errs["cvv"] = "CVV is required"
		}
		if strings.TrimSpace(payment.CardholderName) == "" {
			errs["cardholderName"] = "Cardholder name is required"
		}
	} else {
		// Non-card methods ignore whatever is left in the card fields.
		delete(errs, "cardNumber")
		delete(errs, "expiryDate")
		delete(errs, "cvv")
		delete(errs, "cardholderName")
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateSubmission re-checks everything wholesale before a booking is
// created. Submission is blocked unless the terms flag is accepted.
func (bv *BookingValidator) ValidateSubmission(info *domain.GuestInfo, payment *domain.PaymentInput, termsAccepted bool) ValidationResult {
	guest := bv.ValidateGuestInfo(info)
	pay := bv.ValidatePaymentInfo(payment)

	errs := map[string]string{}
	for k, v := range guest.Errors {
		errs[k] = v
	}
	for k, v := range pay.Errors {
		errs[k] = v
	}
	if !termsAccepted {
		errs["terms"] = "You must accept the terms and cancellation policy"
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func guestMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "firstName":
		if fe.Tag() == "required" {
			return "First name is required"
		}
		return "First name must be at least 2 characters"
	case "lastName":
		if fe.Tag() == "required" {
			return "Last name is required"
		}
		return "Last name must be at least 2 characters"
	case "email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Invalid email format"
	case "phone":
		if fe.Tag() == "required" {
			return "Phone number is required"
		}
		return "Invalid phone number"
	}
	return "Invalid value"
}

func paymentMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "method":
		return "Unknown payment method"
	case "cardNumber":
		return "Invalid card number"
	case "expiryDate":
		return "Invalid expiry date"
	case "cvv":
		return "Invalid CVV"
	case "cardholderName":
		return "Cardholder name must be at least 2 characters"
	}
	return "Invalid value"
}

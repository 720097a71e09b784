package domain

import "time"

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Terminal reports whether no further status transition is allowed.
// Transitions are one-directional: confirmed -> cancelled or
// confirmed -> completed.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type GuestInfo struct {
	FirstName       string `bson:"firstName" json:"firstName" validate:"required,trimmedmin=2"`
	LastName        string `bson:"lastName" json:"lastName" validate:"required,trimmedmin=2"`
	Email           string `bson:"email" json:"email" validate:"required,email"`
	Phone           string `bson:"phone" json:"phone" validate:"required,loosephone"`
	SpecialRequests string `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	TravelPurpose   string `bson:"travelPurpose,omitempty" json:"travelPurpose,omitempty"`
	EmailUpdates    bool   `bson:"emailUpdates" json:"emailUpdates"`
	SMSUpdates      bool   `bson:"smsUpdates" json:"smsUpdates"`
}

// PaymentInput carries the raw fields entered on the payment form. It is
// validated and then discarded: only a PaymentRecord is ever persisted.
type PaymentInput struct {
	Method         string `json:"method" validate:"required,oneof=card paypal blik bank-transfer"`
	CardNumber     string `json:"cardNumber" validate:"omitempty,cardnumber"`
	ExpiryDate     string `json:"expiryDate" validate:"omitempty,expirydate"`
	CVV            string `json:"cvv" validate:"omitempty,cvvcode"`
	CardholderName string `json:"cardholderName" validate:"omitempty,trimmedmin=2"`
	Country        string `json:"country,omitempty"`
	PostalCode     string `json:"postalCode,omitempty"`
}

// PaymentRecord is the tokenized reference stored on a booking. Card number,
// expiry and cvv never reach storage.
type PaymentRecord struct {
	Method    string `bson:"method" json:"method"`
	CardLast4 string `bson:"cardLast4,omitempty" json:"cardLast4,omitempty"`
	Token     string `bson:"token" json:"token"`
}

type PriceBreakdown struct {
	Nights      int `bson:"nights" json:"nights"`
	Subtotal    int `bson:"subtotal" json:"subtotal"`
	CleaningFee int `bson:"cleaningFee" json:"cleaningFee"`
	ServiceFee  int `bson:"serviceFee" json:"serviceFee"`
	Taxes       int `bson:"taxes" json:"taxes"`
	Total       int `bson:"total" json:"total"`
}

type Booking struct {
	ID                 string         `bson:"_id" json:"id"`
	ConfirmationNumber string         `bson:"confirmationNumber" json:"confirmationNumber"`
	Type               EntityKind     `bson:"type" json:"type"`
	Entity             BookableEntity `bson:"entity" json:"entity"`
	CheckInDate        time.Time      `bson:"checkInDate,omitempty" json:"checkInDate,omitempty"`
	CheckOutDate       time.Time      `bson:"checkOutDate,omitempty" json:"checkOutDate,omitempty"`
	ScheduledDate      time.Time      `bson:"scheduledDate,omitempty" json:"scheduledDate,omitempty"`
	ScheduledTime      string         `bson:"scheduledTime,omitempty" json:"scheduledTime,omitempty"`
	Guests             int            `bson:"guests" json:"guests"`
	GuestInfo          GuestInfo      `bson:"guestInfo" json:"guestInfo"`
	Payment            PaymentRecord  `bson:"payment" json:"payment"`
	Pricing            PriceBreakdown `bson:"pricing" json:"pricing"`
	Status             BookingStatus  `bson:"status" json:"status"`
	BookingDate        time.Time      `bson:"bookingDate" json:"bookingDate"`
	OwnerUserID        string         `bson:"ownerUserId,omitempty" json:"ownerUserId"`
}

type Bookings []*Booking

// BookingFilter narrows a listing. "upcoming" matches confirmed bookings,
// "property"/"service"/"experience" match by type, "all" (or empty) matches
// everything.
type BookingFilter string

const (
	FilterAll        BookingFilter = "all"
	FilterUpcoming   BookingFilter = "upcoming"
	FilterCompleted  BookingFilter = "completed"
	FilterCancelled  BookingFilter = "cancelled"
	FilterProperty   BookingFilter = "property"
	FilterService    BookingFilter = "service"
	FilterExperience BookingFilter = "experience"
)

func (f BookingFilter) Matches(b *Booking) bool {
	switch f {
	case FilterAll, "":
		return true
	case FilterUpcoming:
		return b.Status == StatusConfirmed
	case FilterCompleted:
		return b.Status == StatusCompleted
	case FilterCancelled:
		return b.Status == StatusCancelled
	case FilterProperty, FilterService, FilterExperience:
		return string(b.Type) == string(f)
	}
	return false
}

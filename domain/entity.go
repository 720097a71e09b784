package domain

type EntityKind string

const (
	KindProperty   EntityKind = "property"
	KindService    EntityKind = "service"
	KindExperience EntityKind = "experience"
)

func (k EntityKind) Valid() bool {
	switch k {
	case KindProperty, KindService, KindExperience:
		return true
	}
	return false
}

// BookableEntity is read-only reference data. Bookings and saved items embed
// a copy of these fields at creation time, so later catalog changes never
// affect historical records.
type BookableEntity struct {
	ID       string     `bson:"id" json:"id"`
	Kind     EntityKind `bson:"kind" json:"kind"`
	Title    string     `bson:"title" json:"title"`
	Location string     `bson:"location" json:"location"`
	Images   []string   `bson:"images,omitempty" json:"images,omitempty"`
	Rating   float64    `bson:"rating" json:"rating"`
	Category string     `bson:"category,omitempty" json:"category,omitempty"`

	// Property attributes
	PricePerNight int `bson:"pricePerNight,omitempty" json:"pricePerNight,omitempty"`
	CleaningFee   int `bson:"cleaningFee,omitempty" json:"cleaningFee,omitempty"`
	MaxGuests     int `bson:"maxGuests,omitempty" json:"maxGuests,omitempty"`
	Bedrooms      int `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms     int `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`

	// Service/experience attributes
	Price    int    `bson:"price,omitempty" json:"price,omitempty"`
	Duration string `bson:"duration,omitempty" json:"duration,omitempty"`
}

// NightlyRate falls back to Price for entities priced per booking rather
// than per night.
func (e *BookableEntity) NightlyRate() int {
	if e.PricePerNight > 0 {
		return e.PricePerNight
	}
	return e.Price
}

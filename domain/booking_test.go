package domain

import "testing"

func TestBookingStatusTerminal(t *testing.T) {
	if StatusConfirmed.Terminal() {
		t.Error("confirmed must not be terminal")
	}
	if !StatusCompleted.Terminal() {
		t.Error("completed must be terminal")
	}
	if !StatusCancelled.Terminal() {
		t.Error("cancelled must be terminal")
	}
}

func TestBookingFilterMatches(t *testing.T) {
	booking := &Booking{Type: KindProperty, Status: StatusConfirmed}

	cases := []struct {
		filter BookingFilter
		want   bool
	}{
		{FilterAll, true},
		{BookingFilter(""), true},
		{FilterUpcoming, true},
		{FilterCompleted, false},
		{FilterCancelled, false},
		{FilterProperty, true},
		{FilterService, false},
		{FilterExperience, false},
		{BookingFilter("bogus"), false},
	}
	for _, c := range cases {
		if got := c.filter.Matches(booking); got != c.want {
			t.Errorf("Matches(%q) = %v, want %v", c.filter, got, c.want)
		}
	}

	cancelled := &Booking{Type: KindService, Status: StatusCancelled}
	if FilterUpcoming.Matches(cancelled) {
		t.Error("cancelled booking must not match upcoming")
	}
	if !FilterCancelled.Matches(cancelled) {
		t.Error("cancelled booking must match cancelled")
	}
	if !FilterService.Matches(cancelled) {
		t.Error("service booking must match service filter")
	}
}

func TestEntityKindValid(t *testing.T) {
	for _, k := range []EntityKind{KindProperty, KindService, KindExperience} {
		if !k.Valid() {
			t.Errorf("EntityKind(%q).Valid() = false, want true", k)
		}
	}
	if EntityKind("hotel").Valid() {
		t.Error(`EntityKind("hotel").Valid() = true, want false`)
	}
}

func TestNightlyRateFallback(t *testing.T) {
	property := BookableEntity{PricePerNight: 280, Price: 0}
	if got := property.NightlyRate(); got != 280 {
		t.Errorf("NightlyRate() = %d, want 280", got)
	}

	experience := BookableEntity{Price: 45}
	if got := experience.NightlyRate(); got != 45 {
		t.Errorf("NightlyRate() = %d, want 45", got)
	}
}

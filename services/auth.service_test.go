package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stayease-backend/domain"
	"stayease-backend/repository"
)

func newAuthFixture(t *testing.T) (AuthService, *repository.InMemoryBookingRepo, domain.SessionStore) {
	t.Helper()

	bookingRepo := repository.NewInMemoryBookingRepo()
	session := repository.NewInMemorySessionStore()
	bookings := newBookingService(bookingRepo)
	auth := NewAuthServiceImpl(repository.NewInMemoryUserRepo(), session, bookings, "test-secret", time.Hour, quietLogger())
	return auth, bookingRepo, session
}

func registerInput() *RegisterInput {
	return &RegisterInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "Jane.Doe@Example.com",
		Password:  "supersecret",
		Phone:     "+48 123 456 789",
	}
}

func TestRegister(t *testing.T) {
	auth, _, session := newAuthFixture(t)

	user, token, err := auth.Register(registerInput())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "Jane Doe", user.Name)
	require.Equal(t, "jane.doe@example.com", user.Email)
	require.NotEmpty(t, user.JoinDate)
	require.NotEqual(t, "supersecret", user.Password)

	current, err := session.CurrentUser()
	require.NoError(t, err)
	require.NotNil(t, current)
	require.Equal(t, user.ID, current.ID)
}

func TestRegister_EmailTaken(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	_, _, err := auth.Register(registerInput())
	require.NoError(t, err)

	input := registerInput()
	input.Email = "JANE.DOE@example.com"
	_, _, err = auth.Register(input)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrEmailTaken()))
}

func TestLogin(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	registered, _, err := auth.Register(registerInput())
	require.NoError(t, err)
	require.NoError(t, auth.Logout())

	user, token, err := auth.Login("jane.doe@example.com", "supersecret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, registered.ID, user.ID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	_, _, err := auth.Register(registerInput())
	require.NoError(t, err)

	_, _, err = auth.Login("jane.doe@example.com", "wrong-password")
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrInvalidCredentials()))

	_, _, err = auth.Login("nobody@example.com", "whatever")
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrInvalidCredentials()))
}

func TestLogin_MigratesLegacyBookings(t *testing.T) {
	auth, bookingRepo, _ := newAuthFixture(t)

	legacy := &domain.Booking{
		ID:                 "b1",
		ConfirmationNumber: "AC11111111",
		Type:               domain.KindProperty,
		Status:             domain.StatusConfirmed,
	}
	require.NoError(t, bookingRepo.Insert(legacy))

	user, _, err := auth.Register(registerInput())
	require.NoError(t, err)
	require.NoError(t, auth.Logout())

	_, _, err = auth.Login("jane.doe@example.com", "supersecret")
	require.NoError(t, err)

	migrated, err := bookingRepo.GetByConfirmationNumber("AC11111111")
	require.NoError(t, err)
	require.Equal(t, user.ID, migrated.OwnerUserID)
}

func TestLogoutClearsSession(t *testing.T) {
	auth, _, session := newAuthFixture(t)

	_, _, err := auth.Register(registerInput())
	require.NoError(t, err)
	require.NoError(t, auth.Logout())

	current, err := session.CurrentUser()
	require.NoError(t, err)
	require.Nil(t, current)
}

func TestUserFromToken(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	registered, token, err := auth.Register(registerInput())
	require.NoError(t, err)

	user, err := auth.UserFromToken(token)
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)

	_, err = auth.UserFromToken("not-a-token")
	require.Error(t, err)
}

func TestUpdateProfile(t *testing.T) {
	auth, _, session := newAuthFixture(t)

	registered, _, err := auth.Register(registerInput())
	require.NoError(t, err)

	updated, err := auth.UpdateProfile(registered.ID, &ProfileUpdate{
		Name:     "Jane Kowalska",
		Location: "Krakow, Poland",
	})
	require.NoError(t, err)
	require.Equal(t, "Jane Kowalska", updated.Name)
	require.Equal(t, "Krakow, Poland", updated.Location)
	// Untouched fields survive a partial update.
	require.Equal(t, "+48 123 456 789", updated.Phone)

	current, err := session.CurrentUser()
	require.NoError(t, err)
	require.Equal(t, "Jane Kowalska", current.Name)
}

package repository

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"stayease-backend/domain"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestFileBookingRepo_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileBookingRepo(dir, quietLogger())

	booking := &domain.Booking{
		ID:                 "b1",
		ConfirmationNumber: "AC12345678",
		Type:               domain.KindProperty,
		Status:             domain.StatusConfirmed,
		OwnerUserID:        "user-1",
	}
	require.NoError(t, repo.Insert(booking))

	// A fresh repo over the same directory sees the persisted data.
	reopened := NewFileBookingRepo(dir, quietLogger())
	got, err := reopened.GetByConfirmationNumber("AC12345678")
	require.NoError(t, err)
	require.Equal(t, "b1", got.ID)

	exists, err := reopened.ConfirmationNumberExists("AC12345678")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = reopened.ConfirmationNumberExists("AC00000000")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestFileBookingRepo_UpdateStatusAndAssignOwner(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileBookingRepo(dir, quietLogger())

	require.NoError(t, repo.Insert(&domain.Booking{
		ID:                 "b1",
		ConfirmationNumber: "AC12345678",
		Status:             domain.StatusConfirmed,
	}))

	require.NoError(t, repo.UpdateStatus("AC12345678", domain.StatusCancelled))
	got, err := repo.GetByConfirmationNumber("AC12345678")
	require.NoError(t, err)
	require.Equal(t, domain.StatusCancelled, got.Status)

	unowned, err := repo.ListUnowned()
	require.NoError(t, err)
	require.Len(t, unowned, 1)

	require.NoError(t, repo.AssignOwner("AC12345678", "user-1"))
	unowned, err = repo.ListUnowned()
	require.NoError(t, err)
	require.Empty(t, unowned)

	owned, err := repo.ListByOwner("user-1")
	require.NoError(t, err)
	require.Len(t, owned, 1)

	err = repo.UpdateStatus("AC00000000", domain.StatusCancelled)
	require.True(t, errors.Is(err, domain.ErrNotFound()))
}

func TestFileBookingRepo_CorruptFileResets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bookings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewFileBookingRepo(dir, quietLogger())

	// The corrupt file reads as an empty collection and is removed.
	unowned, err := repo.ListUnowned()
	require.NoError(t, err)
	require.Empty(t, unowned)

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))

	// Writes work again afterwards.
	require.NoError(t, repo.Insert(&domain.Booking{ID: "b1", ConfirmationNumber: "AC12345678"}))
	got, err := repo.GetByConfirmationNumber("AC12345678")
	require.NoError(t, err)
	require.Equal(t, "b1", got.ID)
}

func TestFileSavedItemRepo(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileSavedItemRepo(dir, quietLogger())

	item := &domain.SavedItem{
		ID:          "s1",
		OwnerUserID: "user-1",
		Entity:      domain.BookableEntity{ID: "1", Kind: domain.KindProperty},
	}
	require.NoError(t, repo.Insert(item))

	found, err := repo.Find("user-1", "1")
	require.NoError(t, err)
	require.Equal(t, "s1", found.ID)

	_, err = repo.Find("user-2", "1")
	require.True(t, errors.Is(err, domain.ErrNotFound()))

	require.NoError(t, repo.Delete("user-1", "1"))
	items, err := repo.ListByOwner("user-1")
	require.NoError(t, err)
	require.Empty(t, items)

	// Deleting again is a no-op.
	require.NoError(t, repo.Delete("user-1", "1"))
}

func TestFileUserRepo(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileUserRepo(dir, quietLogger())

	user := &domain.User{ID: "u1", Name: "Jane Doe", Email: "jane@example.com"}
	require.NoError(t, repo.Insert(user))

	byID, err := repo.FindByID("u1")
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", byID.Name)

	byEmail, err := repo.FindByEmail("jane@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", byEmail.ID)

	user.Name = "Jane Kowalska"
	require.NoError(t, repo.Update(user))
	updated, err := repo.FindByID("u1")
	require.NoError(t, err)
	require.Equal(t, "Jane Kowalska", updated.Name)

	_, err = repo.FindByID("missing")
	require.True(t, errors.Is(err, domain.ErrUserNotFound()))
}

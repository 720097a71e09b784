package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stayease-backend/domain"
	"stayease-backend/repository"
)

func entity(id string, price int, rating float64) *domain.BookableEntity {
	return &domain.BookableEntity{
		ID:            id,
		Kind:          domain.KindProperty,
		Title:         "Listing " + id,
		PricePerNight: price,
		Rating:        rating,
	}
}

func TestToggleSave_RoundTrip(t *testing.T) {
	svc := NewSavedItemServiceImpl(repository.NewInMemorySavedItemRepo())

	saved, err := svc.ToggleSave("user-1", entity("1", 280, 4.9))
	require.NoError(t, err)
	require.True(t, saved)

	count, err := svc.Count("user-1")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	// Second toggle removes the item.
	saved, err = svc.ToggleSave("user-1", entity("1", 280, 4.9))
	require.NoError(t, err)
	require.False(t, saved)

	count, err = svc.Count("user-1")
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestToggleSave_PerUser(t *testing.T) {
	svc := NewSavedItemServiceImpl(repository.NewInMemorySavedItemRepo())

	_, err := svc.ToggleSave("user-1", entity("1", 280, 4.9))
	require.NoError(t, err)
	_, err = svc.ToggleSave("user-2", entity("1", 280, 4.9))
	require.NoError(t, err)

	count, err := svc.Count("user-1")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	// Removing for one user leaves the other untouched.
	require.NoError(t, svc.Remove("user-1", "1"))

	count, err = svc.Count("user-2")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestRemove_Idempotent(t *testing.T) {
	svc := NewSavedItemServiceImpl(repository.NewInMemorySavedItemRepo())

	require.NoError(t, svc.Remove("user-1", "missing"))
}

func TestListSaved_Sorting(t *testing.T) {
	svc := NewSavedItemServiceImpl(repository.NewInMemorySavedItemRepo())

	_, err := svc.ToggleSave("user-1", entity("a", 650, 4.7))
	require.NoError(t, err)
	_, err = svc.ToggleSave("user-1", entity("b", 280, 4.9))
	require.NoError(t, err)
	_, err = svc.ToggleSave("user-1", entity("c", 420, 4.8))
	require.NoError(t, err)

	asc, err := svc.List("user-1", domain.SortPriceAsc)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c", "a"}, ids(asc))

	desc, err := svc.List("user-1", domain.SortPriceDesc)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c", "b"}, ids(desc))

	byRating, err := svc.List("user-1", domain.SortRatingDesc)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c", "a"}, ids(byRating))
}

func ids(items []*domain.SavedItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Entity.ID)
	}
	return out
}

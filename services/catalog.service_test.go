package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"stayease-backend/domain"
	"stayease-backend/repository"
)

func TestCatalogListAndGet(t *testing.T) {
	svc := NewCatalogServiceImpl(repository.NewInMemoryCatalogRepo())

	properties, err := svc.ListEntities(domain.KindProperty)
	require.NoError(t, err)
	require.NotEmpty(t, properties)
	for _, p := range properties {
		require.Equal(t, domain.KindProperty, p.Kind)
		require.Greater(t, p.PricePerNight, 0)
	}

	got, err := svc.GetEntity(domain.KindProperty, "1")
	require.NoError(t, err)
	require.Equal(t, "1", got.ID)
	require.Equal(t, 280, got.PricePerNight)

	_, err = svc.GetEntity(domain.KindProperty, "no-such-id")
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrEntityNotFound()))
}

func catalogFixture() []domain.BookableEntity {
	return []domain.BookableEntity{
		{ID: "1", Location: "Krakow, Poland", PricePerNight: 280, MaxGuests: 4},
		{ID: "2", Location: "Zakopane, Poland", PricePerNight: 650, MaxGuests: 8},
		{ID: "3", Location: "Gdansk, Poland", PricePerNight: 420, MaxGuests: 6},
	}
}

func TestFilterByLocation(t *testing.T) {
	out := FilterByLocation(catalogFixture(), "krakow")
	require.Len(t, out, 1)
	require.Equal(t, "1", out[0].ID)

	out = FilterByLocation(catalogFixture(), "POLAND")
	require.Len(t, out, 3)

	out = FilterByLocation(catalogFixture(), "")
	require.Len(t, out, 3)

	out = FilterByLocation(catalogFixture(), "berlin")
	require.Empty(t, out)
}

func TestFilterByCapacity(t *testing.T) {
	out := FilterByCapacity(catalogFixture(), 6)
	require.Len(t, out, 2)

	// Inclusive threshold.
	out = FilterByCapacity(catalogFixture(), 8)
	require.Len(t, out, 1)
	require.Equal(t, "2", out[0].ID)

	out = FilterByCapacity(catalogFixture(), 0)
	require.Len(t, out, 3)
}

func TestFilterByPrice(t *testing.T) {
	out := FilterByPrice(catalogFixture(), 280, 420)
	require.Len(t, out, 2)

	// maxPrice zero means unbounded above.
	out = FilterByPrice(catalogFixture(), 400, 0)
	require.Len(t, out, 2)

	out = FilterByPrice(catalogFixture(), 0, 0)
	require.Len(t, out, 3)
}

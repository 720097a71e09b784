package repository

import (
	"stayease-backend/domain"
)

// InMemoryCatalogRepo serves the bookable reference data. The catalog is
// read-only: nothing in the system creates or mutates entities.
type InMemoryCatalogRepo struct {
	entities map[domain.EntityKind][]domain.BookableEntity
}

func NewInMemoryCatalogRepo() *InMemoryCatalogRepo {
	return &InMemoryCatalogRepo{entities: seedCatalog()}
}

func (r *InMemoryCatalogRepo) ListEntities(kind domain.EntityKind) ([]domain.BookableEntity, error) {
	if !kind.Valid() {
		return nil, domain.ErrEntityNotFound()
	}
	out := make([]domain.BookableEntity, len(r.entities[kind]))
	copy(out, r.entities[kind])
	return out, nil
}

func (r *InMemoryCatalogRepo) GetEntity(kind domain.EntityKind, id string) (*domain.BookableEntity, error) {
	for _, e := range r.entities[kind] {
		if e.ID == id {
			out := e
			return &out, nil
		}
	}
	return nil, domain.ErrEntityNotFound()
}

func seedCatalog() map[domain.EntityKind][]domain.BookableEntity {
	return map[domain.EntityKind][]domain.BookableEntity{
		domain.KindProperty: {
			{
				ID: "1", Kind: domain.KindProperty,
				Title:    "Cozy apartment in the heart of Krakow with Wawel Castle view",
				Location: "Krakow, Lesser Poland",
				Rating:   4.9, Category: "apartment",
				PricePerNight: 280, CleaningFee: 50,
				MaxGuests: 4, Bedrooms: 2, Bathrooms: 1,
			},
			{
				ID: "2", Kind: domain.KindProperty,
				Title:    "Luxury villa with pool in Zakopane",
				Location: "Zakopane, Lesser Poland",
				Rating:   4.8, Category: "villa",
				PricePerNight: 650, CleaningFee: 120,
				MaxGuests: 8, Bedrooms: 4, Bathrooms: 3,
			},
			{
				ID: "3", Kind: domain.KindProperty,
				Title:    "Modern house by the sea in Gdansk",
				Location: "Gdansk, Pomerania",
				Rating:   4.7, Category: "house",
				PricePerNight: 420, CleaningFee: 80,
				MaxGuests: 6, Bedrooms: 3, Bathrooms: 2,
			},
			{
				ID: "4", Kind: domain.KindProperty,
				Title:    "Stylish loft in the center of Warsaw",
				Location: "Warsaw, Masovia",
				Rating:   4.6, Category: "apartment",
				PricePerNight: 380, CleaningFee: 60,
				MaxGuests: 3, Bedrooms: 1, Bathrooms: 1,
			},
			{
				ID: "5", Kind: domain.KindProperty,
				Title:    "Romantic cabin in the mountains",
				Location: "Karpacz, Lower Silesia",
				Rating:   4.9, Category: "cabin",
				PricePerNight: 320, CleaningFee: 50,
				MaxGuests: 2, Bedrooms: 1, Bathrooms: 1,
			},
			{
				ID: "6", Kind: domain.KindProperty,
				Title:    "Elegant apartment by the beach",
				Location: "Sopot, Pomerania",
				Rating:   4.8, Category: "beachfront",
				PricePerNight: 480, CleaningFee: 70,
				MaxGuests: 5, Bedrooms: 2, Bathrooms: 2,
			},
		},
		domain.KindExperience: {
			{
				ID: "1", Kind: domain.KindExperience,
				Title:    "Cooking Class with Local Chef",
				Location: "Krakow, Lesser Poland",
				Rating:   4.8, Category: "Food & Drink",
				Price: 45, Duration: "3 hours",
			},
			{
				ID: "2", Kind: domain.KindExperience,
				Title:    "Historical Walking Tour",
				Location: "Krakow, Lesser Poland",
				Rating:   4.9, Category: "History & Culture",
				Price: 25, Duration: "2 hours",
			},
			{
				ID: "3", Kind: domain.KindExperience,
				Title:    "Mountain Hiking Adventure",
				Location: "Zakopane, Lesser Poland",
				Rating:   4.7, Category: "Outdoor Activities",
				Price: 65, Duration: "6 hours",
			},
			{
				ID: "4", Kind: domain.KindExperience,
				Title:    "Wine Tasting Experience",
				Location: "Warsaw, Masovia",
				Rating:   4.8, Category: "Food & Drink",
				Price: 55, Duration: "2 hours",
			},
		},
		domain.KindService: {
			{
				ID: "1", Kind: domain.KindService,
				Title:  "Airport Transfer",
				Rating: 4.8, Category: "Transport",
				Price: 25,
			},
			{
				ID: "2", Kind: domain.KindService,
				Title:  "House Cleaning",
				Rating: 4.7, Category: "Home",
				Price: 40,
			},
			{
				ID: "3", Kind: domain.KindService,
				Title:  "Concierge Service",
				Rating: 4.9, Category: "Assistance",
				Price: 15,
			},
			{
				ID: "4", Kind: domain.KindService,
				Title:  "Laundry Service",
				Rating: 4.6, Category: "Home",
				Price: 20,
			},
		},
	}
}

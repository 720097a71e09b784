package services

import (
	"strings"

	"stayease-backend/domain"
)

type CatalogServiceImpl struct {
	repo domain.CatalogRepository
}

func NewCatalogServiceImpl(repo domain.CatalogRepository) CatalogService {
	return &CatalogServiceImpl{repo}
}

func (cs *CatalogServiceImpl) ListEntities(kind domain.EntityKind) ([]domain.BookableEntity, error) {
	return cs.repo.ListEntities(kind)
}

func (cs *CatalogServiceImpl) GetEntity(kind domain.EntityKind, id string) (*domain.BookableEntity, error) {
	return cs.repo.GetEntity(kind, id)
}

// Pure filters over a listed sequence. They never touch the repository.

// FilterByLocation keeps entities whose location contains the query,
// case-insensitively.
func FilterByLocation(entities []domain.BookableEntity, query string) []domain.BookableEntity {
	if query == "" {
		return entities
	}
	needle := strings.ToLower(query)
	var out []domain.BookableEntity
	for _, e := range entities {
		if strings.Contains(strings.ToLower(e.Location), needle) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByCapacity keeps entities able to host at least guests people
// (inclusive threshold).
func FilterByCapacity(entities []domain.BookableEntity, guests int) []domain.BookableEntity {
	if guests <= 0 {
		return entities
	}
	var out []domain.BookableEntity
	for _, e := range entities {
		if e.MaxGuests >= guests {
			out = append(out, e)
		}
	}
	return out
}

// FilterByPrice keeps entities whose nightly rate lies within
// [minPrice, maxPrice], bounds inclusive. A maxPrice of zero means
// unbounded above.
func FilterByPrice(entities []domain.BookableEntity, minPrice, maxPrice int) []domain.BookableEntity {
	var out []domain.BookableEntity
	for _, e := range entities {
		rate := e.NightlyRate()
		if rate < minPrice {
			continue
		}
		if maxPrice > 0 && rate > maxPrice {
			continue
		}
		out = append(out, e)
	}
	return out
}

package services

import "stayease-backend/domain"

type CatalogService interface {
	ListEntities(kind domain.EntityKind) ([]domain.BookableEntity, error)
	GetEntity(kind domain.EntityKind, id string) (*domain.BookableEntity, error)
}

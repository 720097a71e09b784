package services

import "stayease-backend/domain"

type SavedItemService interface {
	// ToggleSave inserts a snapshot for the pair if absent and removes it
	// if present. Returns whether the entity ended up saved.
	ToggleSave(ownerUserID string, entity *domain.BookableEntity) (bool, error)
	List(ownerUserID string, sort domain.SavedSort) ([]*domain.SavedItem, error)
	// Remove is idempotent: removing an absent item is not an error.
	Remove(ownerUserID string, entityID string) error
	Count(ownerUserID string) (int, error)
}

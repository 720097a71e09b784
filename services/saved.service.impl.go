package services

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"stayease-backend/domain"
)

type SavedItemServiceImpl struct {
	repo domain.SavedItemRepository
}

func NewSavedItemServiceImpl(repo domain.SavedItemRepository) SavedItemService {
	return &SavedItemServiceImpl{repo}
}

func (ss *SavedItemServiceImpl) ToggleSave(ownerUserID string, entity *domain.BookableEntity) (bool, error) {
	existing, err := ss.repo.Find(ownerUserID, entity.ID)
	if err != nil && err != domain.ErrNotFound() {
		return false, err
	}

	if existing != nil {
		if err := ss.repo.Delete(ownerUserID, entity.ID); err != nil {
			return false, err
		}
		return false, nil
	}

	item := &domain.SavedItem{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Entity:      *entity,
		SavedDate:   time.Now().UTC(),
	}
	if err := ss.repo.Insert(item); err != nil {
		return false, err
	}
	return true, nil
}

func (ss *SavedItemServiceImpl) List(ownerUserID string, sortBy domain.SavedSort) ([]*domain.SavedItem, error) {
	items, err := ss.repo.ListByOwner(ownerUserID)
	if err != nil {
		return nil, err
	}

	switch sortBy {
	case domain.SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Entity.NightlyRate() < items[j].Entity.NightlyRate()
		})
	case domain.SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Entity.NightlyRate() > items[j].Entity.NightlyRate()
		})
	case domain.SortRatingDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Entity.Rating > items[j].Entity.Rating
		})
	default: // recent
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].SavedDate.After(items[j].SavedDate)
		})
	}
	return items, nil
}

func (ss *SavedItemServiceImpl) Remove(ownerUserID string, entityID string) error {
	return ss.repo.Delete(ownerUserID, entityID)
}

// Count is always computed live from the collection, never cached or
// hard-coded.
func (ss *SavedItemServiceImpl) Count(ownerUserID string) (int, error) {
	items, err := ss.repo.ListByOwner(ownerUserID)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

package domain

import "time"

// SavedItem is an entity snapshot favorited by a user. At most one exists
// per (ownerUserId, entity.id) pair.
type SavedItem struct {
	ID          string         `bson:"_id" json:"id"`
	OwnerUserID string         `bson:"ownerUserId" json:"ownerUserId"`
	Entity      BookableEntity `bson:"entity" json:"entity"`
	SavedDate   time.Time      `bson:"savedDate" json:"savedDate"`
}

// SavedSort orders a saved-items listing.
type SavedSort string

const (
	SortRecent     SavedSort = "recent"
	SortPriceAsc   SavedSort = "price-asc"
	SortPriceDesc  SavedSort = "price-desc"
	SortRatingDesc SavedSort = "rating-desc"
)

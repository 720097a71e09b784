package domain

// Repository contracts. Each collection is independent: no operation spans
// more than one of them, and adapters only need read-after-write within the
// same process.

type BookingRepository interface {
	Insert(booking *Booking) error
	GetByConfirmationNumber(confirmationNumber string) (*Booking, error)
	ListByOwner(ownerUserID string) (Bookings, error)
	ListUnowned() (Bookings, error)
	UpdateStatus(confirmationNumber string, status BookingStatus) error
	AssignOwner(confirmationNumber string, ownerUserID string) error
	ConfirmationNumberExists(confirmationNumber string) (bool, error)
}

type SavedItemRepository interface {
	Insert(item *SavedItem) error
	Find(ownerUserID string, entityID string) (*SavedItem, error)
	ListByOwner(ownerUserID string) ([]*SavedItem, error)
	Delete(ownerUserID string, entityID string) error
}

type UserRepository interface {
	Insert(user *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	Update(user *User) error
}

type CatalogRepository interface {
	ListEntities(kind EntityKind) ([]BookableEntity, error)
	GetEntity(kind EntityKind, id string) (*BookableEntity, error)
}

// SessionStore holds the current identity, persisted independently from
// business data so a restart restores the session. Malformed stored data is
// treated as absent and cleared, never surfaced as a crash.
type SessionStore interface {
	CurrentUser() (*User, error)
	SetCurrentUser(user *User) error
	ClearCurrentUser() error
}

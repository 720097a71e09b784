package repository

import (
	"sync"

	"stayease-backend/domain"
)

// In-memory adapters. They back the test suite and double as the reference
// implementation of the repository contracts.

type InMemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
}

func NewInMemoryBookingRepo() *InMemoryBookingRepo {
	return &InMemoryBookingRepo{}
}

func (r *InMemoryBookingRepo) Insert(booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := *booking
	r.bookings = append(r.bookings, &b)
	return nil
}

func (r *InMemoryBookingRepo) GetByConfirmationNumber(confirmationNumber string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bookings {
		if b.ConfirmationNumber == confirmationNumber {
			out := *b
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound()
}

func (r *InMemoryBookingRepo) ListByOwner(ownerUserID string) (domain.Bookings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out domain.Bookings
	for _, b := range r.bookings {
		if b.OwnerUserID == ownerUserID {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *InMemoryBookingRepo) ListUnowned() (domain.Bookings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out domain.Bookings
	for _, b := range r.bookings {
		if b.OwnerUserID == "" {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *InMemoryBookingRepo) UpdateStatus(confirmationNumber string, status domain.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ConfirmationNumber == confirmationNumber {
			b.Status = status
			return nil
		}
	}
	return domain.ErrNotFound()
}

func (r *InMemoryBookingRepo) AssignOwner(confirmationNumber string, ownerUserID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ConfirmationNumber == confirmationNumber {
			b.OwnerUserID = ownerUserID
			return nil
		}
	}
	return domain.ErrNotFound()
}

func (r *InMemoryBookingRepo) ConfirmationNumberExists(confirmationNumber string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bookings {
		if b.ConfirmationNumber == confirmationNumber {
			return true, nil
		}
	}
	return false, nil
}

type InMemorySavedItemRepo struct {
	mu    sync.RWMutex
	items []*domain.SavedItem
}

func NewInMemorySavedItemRepo() *InMemorySavedItemRepo {
	return &InMemorySavedItemRepo{}
}

func (r *InMemorySavedItemRepo) Insert(item *domain.SavedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *item
	r.items = append(r.items, &copied)
	return nil
}

func (r *InMemorySavedItemRepo) Find(ownerUserID string, entityID string) (*domain.SavedItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.OwnerUserID == ownerUserID && it.Entity.ID == entityID {
			out := *it
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound()
}

func (r *InMemorySavedItemRepo) ListByOwner(ownerUserID string) ([]*domain.SavedItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.SavedItem
	for _, it := range r.items {
		if it.OwnerUserID == ownerUserID {
			copied := *it
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *InMemorySavedItemRepo) Delete(ownerUserID string, entityID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, it := range r.items {
		if !(it.OwnerUserID == ownerUserID && it.Entity.ID == entityID) {
			kept = append(kept, it)
		}
	}
	r.items = kept
	return nil
}

type InMemoryUserRepo struct {
	mu    sync.RWMutex
	users []*domain.User
}

func NewInMemoryUserRepo() *InMemoryUserRepo {
	return &InMemoryUserRepo{}
}

func (r *InMemoryUserRepo) Insert(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users = append(r.users, &copied)
	return nil
}

func (r *InMemoryUserRepo) FindByID(id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound()
}

func (r *InMemoryUserRepo) FindByEmail(email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound()
}

func (r *InMemoryUserRepo) Update(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == user.ID {
			copied := *user
			r.users[i] = &copied
			return nil
		}
	}
	return domain.ErrUserNotFound()
}

// InMemorySessionStore holds the identity for a single logical session,
// mirroring the durable store without touching disk.
type InMemorySessionStore struct {
	mu   sync.RWMutex
	user *domain.User
}

func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{}
}

func (s *InMemorySessionStore) CurrentUser() (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, nil
	}
	out := *s.user
	return &out, nil
}

func (s *InMemorySessionStore) SetCurrentUser(user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *user
	s.user = &copied
	return nil
}

func (s *InMemorySessionStore) ClearCurrentUser() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}

package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"stayease-backend/domain"
)

// File-backed JSON adapters, one file per collection. This is the closest
// analogue of the client-side storage the system grew out of: each
// collection is an independent JSON array, and a file that fails to parse is
// reset to empty instead of taking the process down.

func readCollection(path string, out interface{}, logger *logrus.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.WithFields(logrus.Fields{"path": path}).
			Warn("Corrupt collection file, resetting to empty: ", err)
		if rmErr := os.Remove(path); rmErr != nil {
			return rmErr
		}
		return domain.ErrStorageCorrupt()
	}
	return nil
}

func writeCollection(path string, in interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

type FileBookingRepo struct {
	mu     sync.Mutex
	path   string
	logger *logrus.Logger
}

func NewFileBookingRepo(dataDir string, logger *logrus.Logger) *FileBookingRepo {
	return &FileBookingRepo{path: filepath.Join(dataDir, "bookings.json"), logger: logger}
}

func (r *FileBookingRepo) load() domain.Bookings {
	var bookings domain.Bookings
	if err := readCollection(r.path, &bookings, r.logger); err != nil {
		// Reset already happened for corrupt data, anything else is logged
		// and treated as an empty collection.
		if err != domain.ErrStorageCorrupt() {
			r.logger.Error("Could not read bookings collection: ", err)
		}
		return nil
	}
	return bookings
}

func (r *FileBookingRepo) Insert(booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	bookings := append(r.load(), booking)
	return writeCollection(r.path, bookings)
}

func (r *FileBookingRepo) GetByConfirmationNumber(confirmationNumber string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.load() {
		if b.ConfirmationNumber == confirmationNumber {
			return b, nil
		}
	}
	return nil, domain.ErrNotFound()
}

func (r *FileBookingRepo) ListByOwner(ownerUserID string) (domain.Bookings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out domain.Bookings
	for _, b := range r.load() {
		if b.OwnerUserID == ownerUserID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *FileBookingRepo) ListUnowned() (domain.Bookings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out domain.Bookings
	for _, b := range r.load() {
		if b.OwnerUserID == "" {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *FileBookingRepo) UpdateStatus(confirmationNumber string, status domain.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	bookings := r.load()
	for _, b := range bookings {
		if b.ConfirmationNumber == confirmationNumber {
			b.Status = status
			return writeCollection(r.path, bookings)
		}
	}
	return domain.ErrNotFound()
}

func (r *FileBookingRepo) AssignOwner(confirmationNumber string, ownerUserID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	bookings := r.load()
	for _, b := range bookings {
		if b.ConfirmationNumber == confirmationNumber {
			b.OwnerUserID = ownerUserID
			return writeCollection(r.path, bookings)
		}
	}
	return domain.ErrNotFound()
}

func (r *FileBookingRepo) ConfirmationNumberExists(confirmationNumber string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.load() {
		if b.ConfirmationNumber == confirmationNumber {
			return true, nil
		}
	}
	return false, nil
}

type FileSavedItemRepo struct {
	mu     sync.Mutex
	path   string
	logger *logrus.Logger
}

func NewFileSavedItemRepo(dataDir string, logger *logrus.Logger) *FileSavedItemRepo {
	return &FileSavedItemRepo{path: filepath.Join(dataDir, "savedProperties.json"), logger: logger}
}

func (r *FileSavedItemRepo) load() []*domain.SavedItem {
	var items []*domain.SavedItem
	if err := readCollection(r.path, &items, r.logger); err != nil {
		if err != domain.ErrStorageCorrupt() {
			r.logger.Error("Could not read saved items collection: ", err)
		}
		return nil
	}
	return items
}

func (r *FileSavedItemRepo) Insert(item *domain.SavedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := append(r.load(), item)
	return writeCollection(r.path, items)
}

func (r *FileSavedItemRepo) Find(ownerUserID string, entityID string) (*domain.SavedItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.load() {
		if it.OwnerUserID == ownerUserID && it.Entity.ID == entityID {
			return it, nil
		}
	}
	return nil, domain.ErrNotFound()
}

func (r *FileSavedItemRepo) ListByOwner(ownerUserID string) ([]*domain.SavedItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.SavedItem
	for _, it := range r.load() {
		if it.OwnerUserID == ownerUserID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *FileSavedItemRepo) Delete(ownerUserID string, entityID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.load()
	kept := items[:0]
	for _, it := range items {
		if !(it.OwnerUserID == ownerUserID && it.Entity.ID == entityID) {
			kept = append(kept, it)
		}
	}
	return writeCollection(r.path, kept)
}

type FileUserRepo struct {
	mu     sync.Mutex
	path   string
	logger *logrus.Logger
}

func NewFileUserRepo(dataDir string, logger *logrus.Logger) *FileUserRepo {
	return &FileUserRepo{path: filepath.Join(dataDir, "users.json"), logger: logger}
}

func (r *FileUserRepo) load() []*domain.User {
	var users []*domain.User
	if err := readCollection(r.path, &users, r.logger); err != nil {
		if err != domain.ErrStorageCorrupt() {
			r.logger.Error("Could not read users collection: ", err)
		}
		return nil
	}
	return users
}

func (r *FileUserRepo) Insert(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := append(r.load(), user)
	return writeCollection(r.path, users)
}

func (r *FileUserRepo) FindByID(id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.load() {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound()
}

func (r *FileUserRepo) FindByEmail(email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.load() {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound()
}

func (r *FileUserRepo) Update(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := r.load()
	for i, u := range users {
		if u.ID == user.ID {
			users[i] = user
			return writeCollection(r.path, users)
		}
	}
	return domain.ErrUserNotFound()
}

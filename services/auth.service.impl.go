package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"stayease-backend/domain"
	"stayease-backend/utils"
)

type AuthServiceImpl struct {
	users    domain.UserRepository
	session  domain.SessionStore
	bookings BookingService
	secret   string
	tokenTTL time.Duration
	logger   *logrus.Logger
}

func NewAuthServiceImpl(users domain.UserRepository, session domain.SessionStore, bookings BookingService, secret string, tokenTTL time.Duration, logger *logrus.Logger) AuthService {
	return &AuthServiceImpl{users, session, bookings, secret, tokenTTL, logger}
}

func (as *AuthServiceImpl) Register(input *RegisterInput) (*domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := as.users.FindByEmail(email)
	if err != nil && err != domain.ErrUserNotFound() {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", domain.ErrEmailTaken()
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(input.FirstName + " " + input.LastName),
		Email:      email,
		Password:   hashedPassword,
		Phone:      input.Phone,
		Avatar:     input.Avatar,
		JoinDate:   time.Now().UTC().Format("January 2006"),
		IsVerified: false,
		CreatedAt:  time.Now().UTC(),
	}
	if err := as.users.Insert(user); err != nil {
		return nil, "", err
	}

	token, err := as.openSession(user)
	if err != nil {
		return nil, "", err
	}

	as.logger.WithFields(logrus.Fields{"user": user.ID}).Info("User registered")
	return user, token, nil
}

func (as *AuthServiceImpl) Login(email, password string) (*domain.User, string, error) {
	user, err := as.users.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == domain.ErrUserNotFound() {
			return nil, "", domain.ErrInvalidCredentials()
		}
		return nil, "", err
	}

	if err := utils.VerifyPassword(user.Password, password); err != nil {
		return nil, "", domain.ErrInvalidCredentials()
	}

	token, err := as.openSession(user)
	if err != nil {
		return nil, "", err
	}

	// Older records may predate per-user ownership, claim them exactly once.
	if _, err := as.bookings.MigrateLegacyBookings(user.ID); err != nil {
		as.logger.Error("Legacy booking migration failed: ", err)
	}

	return user, token, nil
}

func (as *AuthServiceImpl) openSession(user *domain.User) (string, error) {
	if err := as.session.SetCurrentUser(user); err != nil {
		return "", err
	}
	return utils.CreateToken(user.ID, as.secret, as.tokenTTL)
}

func (as *AuthServiceImpl) Logout() error {
	return as.session.ClearCurrentUser()
}

func (as *AuthServiceImpl) CurrentUser() (*domain.User, error) {
	return as.session.CurrentUser()
}

func (as *AuthServiceImpl) UserFromToken(token string) (*domain.User, error) {
	userID, err := utils.ValidateToken(token, as.secret)
	if err != nil {
		return nil, err
	}
	return as.users.FindByID(userID)
}

func (as *AuthServiceImpl) UpdateProfile(userID string, update *ProfileUpdate) (*domain.User, error) {
	user, err := as.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Phone != "" {
		user.Phone = update.Phone
	}
	if update.Avatar != "" {
		user.Avatar = update.Avatar
	}
	if update.Location != "" {
		user.Location = update.Location
	}

	if err := as.users.Update(user); err != nil {
		return nil, err
	}

	// Keep the durable session in step with the profile.
	if current, sErr := as.session.CurrentUser(); sErr == nil && current != nil && current.ID == user.ID {
		if err := as.session.SetCurrentUser(user); err != nil {
			as.logger.Error("Could not refresh session after profile update: ", err)
		}
	}

	return user, nil
}

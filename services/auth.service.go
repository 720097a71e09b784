package services

import "stayease-backend/domain"

type RegisterInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Phone     string `json:"phone" binding:"required"`
	Avatar    string `json:"avatar"`
}

type ProfileUpdate struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
	Location string `json:"location"`
}

type AuthService interface {
	// Register creates the user, persists it and opens a session.
	// Email must be unique across the user collection.
	Register(input *RegisterInput) (*domain.User, string, error)
	// Login verifies credentials, opens a session and runs the one-time
	// legacy booking migration for the user.
	Login(email, password string) (*domain.User, string, error)
	Logout() error
	CurrentUser() (*domain.User, error)
	UserFromToken(token string) (*domain.User, error)
	UpdateProfile(userID string, update *ProfileUpdate) (*domain.User, error)
}

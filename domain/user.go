package domain

import "time"

type User struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email" validate:"required,email"`
	Password   string    `bson:"password,omitempty" json:"-"`
	Phone      string    `bson:"phone" json:"phone"`
	Avatar     string    `bson:"avatar,omitempty" json:"avatar"`
	Location   string    `bson:"location,omitempty" json:"location"`
	JoinDate   string    `bson:"joinDate" json:"joinDate"`
	IsVerified bool      `bson:"isVerified" json:"isVerified"`
	CreatedAt  time.Time `bson:"createdAt,omitempty" json:"-"`
}

// UserResponse is what leaves the service, credentials stripped.
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Avatar     string `json:"avatar"`
	Location   string `json:"location"`
	JoinDate   string `json:"joinDate"`
	IsVerified bool   `json:"isVerified"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Avatar:     u.Avatar,
		Location:   u.Location,
		JoinDate:   u.JoinDate,
		IsVerified: u.IsVerified,
	}
}

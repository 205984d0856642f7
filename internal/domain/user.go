package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role defines the user role
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCompany Role = "company"
)

// User represents an intranet account
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"userId"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         Role       `gorm:"type:varchar(20);not null;default:'company'" json:"role"`
	CompanyID    *uuid.UUID `gorm:"type:uuid;index" json:"companyId,omitempty"`
	Name         string     `gorm:"not null;default:''" json:"name"`
	Phone        string     `gorm:"default:''" json:"phone"`
	AvatarURL    string     `gorm:"default:''" json:"avatarUrl"`
	CreatedAt    time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     *Role  `json:"role,omitempty"`
}

// AuthUserResponse is the reduced user record returned on login
type AuthUserResponse struct {
	UserID    uuid.UUID  `json:"userId"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	CompanyID *uuid.UUID `json:"companyId,omitempty"`
}

// LoginResponse carries the issued token and a reduced user record
type LoginResponse struct {
	Token string           `json:"token"`
	User  AuthUserResponse `json:"user"`
}

// ToAuthResponse converts User to AuthUserResponse
func (u *User) ToAuthResponse() AuthUserResponse {
	return AuthUserResponse{
		UserID:    u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CompanyID: u.CompanyID,
	}
}

// UpdateProfileRequest represents a profile update
type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// UserResponse represents the user response (never includes the password hash)
type UserResponse struct {
	UserID    uuid.UUID  `json:"userId"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	CompanyID *uuid.UUID `json:"companyId,omitempty"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	AvatarURL string     `json:"avatarUrl"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		UserID:    u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CompanyID: u.CompanyID,
		Name:      u.Name,
		Phone:     u.Phone,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

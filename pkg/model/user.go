package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrUserNotFound is returned when a username or user id resolves to no account, 404/422
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when the username is already registered, 422
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidInput is returned when the store rejects the credentials (e.g. weak password), 422
	ErrInvalidInput = errors.New("invalid input")
)

// MinPasswordLength is the weakest password the credential store accepts.
const MinPasswordLength = 6

type ForumUser struct {
	ID           string `json:"id" gorm:"type:varchar(36);primary_key"`
	UserName     string `json:"userName" gorm:"type:varchar(255);uniqueIndex"`
	Email        string `json:"email" gorm:"type:varchar(255)"`
	PasswordHash string `json:"-" gorm:"type:varchar(255)"`
	Roles        []Role `json:"-" gorm:"many2many:user_roles;"`
}

func (u *ForumUser) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// ValidatePassword applies the store-wide password policy.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	}
	return nil
}

type RegisterRequest struct {
	UserName string `json:"userName" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserStore is the credential store consumed by the session flow. The password
// is only ever verified against the stored hash, never read back.
type UserStore interface {
	// FindByName looks a user up by its unique username.
	FindByName(ctx context.Context, username string) (*ForumUser, error)
	// FindByID looks a user up by its immutable id.
	FindByID(ctx context.Context, id string) (*ForumUser, error)
	// Create persists the user with the given password and role assignments in
	// one atomic operation. Username uniqueness is enforced by the store itself;
	// a duplicate maps to ErrUsernameTaken.
	Create(ctx context.Context, user *ForumUser, password string, roles ...string) error
	// CheckPassword verifies the password against the stored hash.
	CheckPassword(ctx context.Context, user *ForumUser, password string) bool
	// GetRoles returns the user's current role assignments.
	GetRoles(ctx context.Context, user *ForumUser) ([]string, error)
}

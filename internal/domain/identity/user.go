package identity

import (
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
)

// User represents an authenticated back-office user
type User struct {
	shared.BaseAggregateRoot
	Username       string
	Email          string
	HashedPassword string
	Role           Role
	IsActive       bool
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with an already-hashed password
func NewUser(username, email, hashedPassword string, role Role) (*User, error) {
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if hashedPassword == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role: "+role.String())
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          username,
		Email:             email,
		HashedPassword:    hashedPassword,
		Role:              role,
		IsActive:          true,
	}, nil
}

// Deactivate disables the user account
func (u *User) Deactivate() {
	u.IsActive = false
	u.UpdatedAt = time.Now()
}

// Activate enables the user account
func (u *User) Activate() {
	u.IsActive = true
	u.UpdatedAt = time.Now()
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleAdmin is the only role allowed under /admin.
const RoleAdmin = "ADMIN"

// User represents a staff member who can sign in to the dashboard.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string    `json:"username" gorm:"size:255"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:50;default:'USER'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName keeps the original "User" table name.
func (User) TableName() string {
	return "User"
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Identity returns the session view of the user, without the password hash.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID.String(), Email: u.Email, Role: u.Role}
}

// Identity is what a session token carries. It is immutable for the
// lifetime of the session.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the identity may visit admin pages.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

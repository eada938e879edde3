package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles. Role is checked at token issuance; a role change only takes
// effect on the next login.
const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

// User account statuses. Users are never hard-deleted; Status moves to
// StatusDeleted instead so historical orders keep a valid client reference.
const (
	StatusActive    = "ACTIVE"
	StatusSuspended = "SUSPENDED"
	StatusDeleted   = "DELETED"
)

// User is the account model.
type User struct {
	gorm.Model
	Name      string     `gorm:"size:255;not null"             json:"name"`
	Email     string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string     `gorm:"size:255;not null"             json:"-"` // bcrypt hash, never serialised
	Role      string     `gorm:"size:50;default:CUSTOMER"      json:"role"`
	Status    string     `gorm:"size:50;default:ACTIVE"        json:"status"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// ValidUserStatus reports whether s is one of the known account statuses.
func ValidUserStatus(s string) bool {
	switch s {
	case StatusActive, StatusSuspended, StatusDeleted:
		return true
	}
	return false
}

package models

import "gorm.io/gorm"

// Roles assignable to a User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a customer or admin account.
type User struct {
	gorm.Model
	Name         string `gorm:"size:255;not null" json:"name"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password     string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	Role         string `gorm:"size:50;default:user" json:"role"`
	ProfileImage string `gorm:"size:500" json:"profile_image"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

package models

import "gorm.io/gorm"

// Review is a verified-buyer product review. Creation is gated on the author
// owning a paid order that contains the gemstone.
type Review struct {
	gorm.Model
	GemstoneID uint   `gorm:"not null;index" json:"gemstone_id"`
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	User       *User  `json:"user,omitempty"`
	Rating     int    `gorm:"not null" json:"rating"`
	Comment    string `gorm:"type:text;not null" json:"comment"`
}

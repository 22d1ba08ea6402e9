package models

import "gorm.io/gorm"

// HomepageSection is a keyed block of editable homepage copy.
type HomepageSection struct {
	gorm.Model
	Key      string `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Title    string `gorm:"size:255" json:"title"`
	Subtitle string `gorm:"size:255" json:"subtitle"`
	Content  string `gorm:"type:text" json:"content"`
	Position int    `gorm:"not null;default:0;index" json:"position"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
}

// Banner is a promotional image with an optional link.
type Banner struct {
	gorm.Model
	Title    string `gorm:"size:255" json:"title"`
	Image    string `gorm:"size:500;not null" json:"image"`
	Link     string `gorm:"size:500" json:"link"`
	Position int    `gorm:"not null;default:0;index" json:"position"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
}

// Testimonial is a customer quote shown on the storefront.
type Testimonial struct {
	gorm.Model
	Author   string `gorm:"size:255;not null" json:"author"`
	Quote    string `gorm:"type:text;not null" json:"quote"`
	Image    string `gorm:"size:500" json:"image"`
	Rating   int    `gorm:"not null;default:5" json:"rating"`
	Position int    `gorm:"not null;default:0;index" json:"position"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
}

// FAQ is a question/answer pair.
type FAQ struct {
	gorm.Model
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`
	Position int    `gorm:"not null;default:0;index" json:"position"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
}

// PressArticle is an external media mention.
type PressArticle struct {
	gorm.Model
	Outlet   string `gorm:"size:255;not null" json:"outlet"`
	Title    string `gorm:"size:255;not null" json:"title"`
	URL      string `gorm:"size:500" json:"url"`
	Logo     string `gorm:"size:500" json:"logo"`
	Position int    `gorm:"not null;default:0;index" json:"position"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
}

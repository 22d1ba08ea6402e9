package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Category groups gemstones for navigation and analytics.
// A category cannot be deleted while gemstones still reference it.
type Category struct {
	gorm.Model
	Name        string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:500" json:"image"`
	Position    int    `gorm:"not null;default:0;index" json:"position"`
	Active      bool   `gorm:"not null;default:true" json:"active"`
}

// Gemstone is a catalog item.
type Gemstone struct {
	gorm.Model
	Name              string         `gorm:"size:255;not null;index" json:"name"`
	Type              string         `gorm:"size:100;index" json:"type"`
	Description       string         `gorm:"type:text" json:"description"`
	Price             float64        `gorm:"not null;default:0" json:"price"`
	Images            datatypes.JSON `gorm:"type:json" json:"images"`
	Certification     string         `gorm:"size:255" json:"certification"`
	CategoryID        *uint          `gorm:"index" json:"category_id"`
	Category          *Category      `json:"category,omitempty"`
	Featured          bool           `gorm:"not null;default:false;index" json:"featured"`
	Active            bool           `gorm:"not null;default:true;index" json:"active"`
	Stock             int            `gorm:"not null;default:0" json:"stock"`
	LowStockThreshold int            `gorm:"not null;default:5" json:"low_stock_threshold"`
}

// ImageList decodes the JSON image column into a string slice.
// Malformed or empty data yields an empty list, never an error.
func (g Gemstone) ImageList() []string {
	if len(g.Images) == 0 {
		return []string{}
	}
	var urls []string
	if err := json.Unmarshal(g.Images, &urls); err != nil {
		return []string{}
	}
	return urls
}

// SetImageList encodes urls into the JSON image column.
func (g *Gemstone) SetImageList(urls []string) {
	raw, err := json.Marshal(urls)
	if err != nil {
		raw = []byte("[]")
	}
	g.Images = datatypes.JSON(raw)
}

// LowStock reports whether stock has fallen to or below the threshold.
func (g Gemstone) LowStock() bool { return g.Stock <= g.LowStockThreshold }

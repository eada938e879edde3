package models

import "gorm.io/gorm"

// Product represents a product in the catalogue.
//
// Availability is recomputed as stock > 0 whenever an order decrements stock,
// but admins may also set it directly (e.g. to pull a stocked item from the
// shop front). Status is the soft-delete marker: false means deleted, the row
// is kept so historical order items stay resolvable.
type Product struct {
	gorm.Model
	Name         string  `gorm:"size:255;not null;index" json:"name"`
	Description  string  `gorm:"type:text"               json:"description"`
	Price        float64 `gorm:"not null;default:0"      json:"price"`
	Stock        int     `gorm:"not null;default:0"      json:"stock"`
	Availability bool    `gorm:"not null;default:false"  json:"availability"`
	Status       bool    `gorm:"not null;default:true"   json:"status"`
}

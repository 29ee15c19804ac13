package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID              uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string         `gorm:"not null" json:"name"`
	Description     string         `json:"description"`
	Price           float64        `gorm:"not null" json:"price"` // Required
	DiscountedPrice *float64       `json:"discountedPrice,omitempty"`
	ImageURL        string         `json:"imageUrl"`
	Category        string         `gorm:"index" json:"category"`
	Stock           int            `json:"stock"`
	Unit            string         `json:"unit"` // e.g. "kg", "pack", "dozen"
	IsOnOffer       bool           `gorm:"index" json:"isOnOffer"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// HasDiscount reports whether the discounted price takes effect:
// it must be set and strictly below the regular price.
func (p *Product) HasDiscount() bool {
	return p.DiscountedPrice != nil && *p.DiscountedPrice < p.Price
}

// FinalPrice is the price a shopper actually pays per unit.
func (p *Product) FinalPrice() float64 {
	if p.HasDiscount() {
		return *p.DiscountedPrice
	}
	return p.Price
}

// DiscountPercent is the rounded percentage off, 0 when no discount applies.
func (p *Product) DiscountPercent() int {
	if !p.HasDiscount() {
		return 0
	}
	return int(math.Round((p.Price - *p.DiscountedPrice) / p.Price * 100))
}

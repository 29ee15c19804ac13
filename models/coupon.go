package models

import "time"

type Coupon struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Code          string     `gorm:"uniqueIndex;not null" json:"code"`
	Description   string     `json:"description"`
	DiscountType  string     `json:"discountType"` // "percent" or "flat"
	DiscountValue float64    `json:"discountValue"`
	MinOrderValue float64    `json:"minOrderValue"`
	ExpiryDate    *time.Time `json:"expiryDate,omitempty"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// CouponUpdatableColumns maps the JSON keys a PATCH may carry to their
// database columns. Keys outside this map are dropped from the merge.
var CouponUpdatableColumns = map[string]string{
	"code":          "code",
	"description":   "description",
	"discountType":  "discount_type",
	"discountValue": "discount_value",
	"minOrderValue": "min_order_value",
	"expiryDate":    "expiry_date",
	"active":        "active",
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalPrice_UsesDiscountWhenLower(t *testing.T) {
	p := &Product{Price: 100, DiscountedPrice: floatPtr(75)}
	assert.Equal(t, 75.0, p.FinalPrice())
	assert.Equal(t, 25, p.DiscountPercent())
}

func TestFinalPrice_NoDiscountSet(t *testing.T) {
	p := &Product{Price: 100}
	assert.Equal(t, 100.0, p.FinalPrice())
	assert.Equal(t, 0, p.DiscountPercent())
}

func TestFinalPrice_IgnoresDiscountNotBelowPrice(t *testing.T) {
	p := &Product{Price: 100, DiscountedPrice: floatPtr(100)}
	assert.Equal(t, 100.0, p.FinalPrice())
	assert.Equal(t, 0, p.DiscountPercent())

	p.DiscountedPrice = floatPtr(120)
	assert.Equal(t, 100.0, p.FinalPrice())
}

func TestDiscountPercent_Rounds(t *testing.T) {
	p := &Product{Price: 90, DiscountedPrice: floatPtr(60)} // 33.33...%
	assert.Equal(t, 33, p.DiscountPercent())

	p = &Product{Price: 80, DiscountedPrice: floatPtr(50)} // 37.5%
	assert.Equal(t, 38, p.DiscountPercent())
}

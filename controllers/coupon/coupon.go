package couponController

import (
	"log"
	"net/http"

	"github.com/chinmaye5/Freelance-ecommerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /admin/coupons
func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Coupon
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon code is required"})
			return
		}

		input.ID = 0
		if err := db.Create(&input).Error; err != nil {
			log.Println("❌ Failed to create coupon:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coupon"})
			return
		}
		c.JSON(http.StatusCreated, input)
	}
}

// GET /admin/coupons
func GetCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupons []models.Coupon
		if err := db.Order("created_at DESC").Find(&coupons).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
			return
		}
		c.JSON(http.StatusOK, coupons)
	}
}

// UpdateCoupon merges the submitted fields onto an existing coupon.
// Only keys on the allow-list are applied; everything else in the body is
// ignored. The response is the record reloaded after the merge, so the
// caller sees exactly what was persisted.
//
// PATCH /coupons/:id
func UpdateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var coupon models.Coupon
		if err := db.First(&coupon, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupon"})
			}
			return
		}

		updates := map[string]interface{}{}
		for key, value := range body {
			if column, ok := models.CouponUpdatableColumns[key]; ok {
				updates[column] = value
			}
		}

		// An empty patch is a no-op, not an error.
		if len(updates) > 0 {
			if err := db.Model(&coupon).Updates(updates).Error; err != nil {
				log.Println("❌ Failed to update coupon:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
				return
			}
		}

		// Reload so the response reflects what the database actually holds.
		if err := db.First(&coupon, coupon.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload coupon"})
			return
		}
		c.JSON(http.StatusOK, coupon)
	}
}

// DeleteCoupon removes a coupon. Deleting an id that does not exist still
// reports 200; callers cannot tell the two apart and do not need to.
//
// DELETE /coupons/:id
func DeleteCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := db.Delete(&models.Coupon{}, "id = ?", id).Error; err != nil {
			log.Println("❌ Failed to delete coupon:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
	}
}

package productcontroller

import (
	"net/http"

	"github.com/chinmaye5/Freelance-ecommerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCategories lists the distinct category tags in use, for the
// storefront's category navigation.
//
// GET /categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []string
		if err := db.Model(&models.Product{}).
			Where("category <> ''").
			Distinct().
			Order("category ASC").
			Pluck("category", &categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

package productcontroller

import (
	"net/http"

	"github.com/chinmaye5/Freelance-ecommerce/cache"
	"github.com/chinmaye5/Freelance-ecommerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteProduct soft-deletes a product from the catalogue.
//
// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB, pc cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		invalidateOffers(pc)
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

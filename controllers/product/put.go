package productcontroller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/chinmaye5/Freelance-ecommerce/cache"
	"github.com/chinmaye5/Freelance-ecommerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateProduct replaces an existing product's fields.
// Accepts the same body as CreateProduct.
//
// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB, pc cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg := input.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price
		product.DiscountedPrice = input.DiscountedPrice
		product.ImageURL = input.ImageURL
		product.Category = input.Category
		product.Stock = input.Stock
		product.Unit = input.Unit
		product.IsOnOffer = input.IsOnOffer

		if err := db.Save(&product).Error; err != nil {
			log.Println("❌ Failed to update product:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		invalidateOffers(pc)
		c.JSON(http.StatusOK, product)
	}
}

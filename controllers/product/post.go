package productcontroller

import (
	"log"
	"net/http"

	"github.com/chinmaye5/Freelance-ecommerce/cache"
	"github.com/chinmaye5/Freelance-ecommerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" binding:"required,gt=0"`
	DiscountedPrice *float64 `json:"discountedPrice"`
	ImageURL        string   `json:"imageUrl"`
	Category        string   `json:"category"`
	Stock           int      `json:"stock" binding:"min=0"`
	Unit            string   `json:"unit"`
	IsOnOffer       bool     `json:"isOnOffer"`
}

// validate rejects the field combinations the database cannot catch.
func (in *ProductInput) validate() string {
	if in.DiscountedPrice != nil && *in.DiscountedPrice >= in.Price {
		return "discountedPrice must be below price"
	}
	if in.DiscountedPrice != nil && *in.DiscountedPrice <= 0 {
		return "discountedPrice must be positive"
	}
	return ""
}

// CreateProduct adds a product to the catalogue.
//
// POST /admin/products
func CreateProduct(db *gorm.DB, pc cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg := input.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		product := models.Product{
			Name:            input.Name,
			Description:     input.Description,
			Price:           input.Price,
			DiscountedPrice: input.DiscountedPrice,
			ImageURL:        input.ImageURL,
			Category:        input.Category,
			Stock:           input.Stock,
			Unit:            input.Unit,
			IsOnOffer:       input.IsOnOffer,
		}
		if err := db.Create(&product).Error; err != nil {
			log.Println("❌ Failed to create product:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		invalidateOffers(pc)
		c.JSON(http.StatusCreated, product)
	}
}

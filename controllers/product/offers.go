package productcontroller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/chinmaye5/Freelance-ecommerce/cache"
	"github.com/chinmaye5/Freelance-ecommerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const offersCacheKey = "offers"

// GetOffers lists every product currently flagged for promotion, newest
// first. A cache fault never fails the request; we fall through to the
// database and repopulate in the background.
//
// GET /offers
func GetOffers(db *gorm.DB, pc cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pc != nil {
			offers, err := pc.Get(c.Request.Context(), offersCacheKey)
			if err == nil {
				c.JSON(http.StatusOK, offers)
				return
			}
			if !errors.Is(err, cache.ErrCacheMiss) {
				log.Println("❌ Offers cache get failed:", err)
			}
		}

		var offers []models.Product
		if err := db.Where("is_on_offer = ?", true).
			Order("created_at DESC").
			Find(&offers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch offers"})
			return
		}

		if pc != nil {
			go func() {
				if err := pc.Set(context.Background(), offersCacheKey, offers); err != nil {
					log.Println("❌ Offers cache set failed:", err)
				}
			}()
		}

		c.JSON(http.StatusOK, offers)
	}
}

// invalidateOffers drops the cached offers listing after a product write.
func invalidateOffers(pc cache.ProductCache) {
	if pc == nil {
		return
	}
	if err := pc.Invalidate(context.Background(), offersCacheKey); err != nil {
		log.Println("❌ Offers cache invalidation failed:", err)
	}
}

package routes

import (
	"github.com/chinmaye5/Freelance-ecommerce/cache"
	cartControllers "github.com/chinmaye5/Freelance-ecommerce/controllers/cart"
	productControllers "github.com/chinmaye5/Freelance-ecommerce/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupStorefrontRoutes registers the public shopper-facing endpoints.
// Carts are addressed by the token minted at creation; no login needed.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB, pc cache.ProductCache) {
	// ──────────────── Browse Products ────────────────
	r.GET("/products", productControllers.GetProducts(db))        // GET /products
	r.GET("/products/:id", productControllers.GetProductByID(db)) // GET /products/:id
	r.GET("/offers", productControllers.GetOffers(db, pc))        // GET /offers
	r.GET("/categories", productControllers.GetCategories(db))    // GET /categories

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/carts")
	{
		cartGroup.POST("", cartControllers.CreateCart(db))                                // POST /carts
		cartGroup.GET("/:token", cartControllers.GetCart(db))                             // GET /carts/:token
		cartGroup.POST("/:token/items", cartControllers.AddCartItem(db))                  // POST /carts/:token/items
		cartGroup.DELETE("/:token/items/:product_id", cartControllers.DeleteCartItem(db)) // DELETE /carts/:token/items/:product_id
		cartGroup.DELETE("/:token", cartControllers.ClearCart(db))                        // DELETE /carts/:token
	}
}

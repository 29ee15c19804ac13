package routes

import (
	"github.com/chinmaye5/Freelance-ecommerce/cache"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the storefront,
// auth, coupon, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, pc cache.ProductCache) {
	// 1️⃣ Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ Storefront routes (public: products, offers, carts)
	SetupStorefrontRoutes(r, db, pc)

	// 3️⃣ Coupon mutation + admin routes (JWT + admin gate)
	SetupAdminRoutes(r, db, pc)
}

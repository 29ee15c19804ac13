package routes

import (
	"github.com/chinmaye5/Freelance-ecommerce/cache"
	adminController "github.com/chinmaye5/Freelance-ecommerce/controllers/admin"
	couponController "github.com/chinmaye5/Freelance-ecommerce/controllers/coupon"
	productcontroller "github.com/chinmaye5/Freelance-ecommerce/controllers/product"
	"github.com/chinmaye5/Freelance-ecommerce/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers every mutating endpoint. All of them run the
// same JWT + admin-gate chain; the roster additionally requires the super
// admin.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, pc cache.ProductCache) {
	// Coupon mutations live at the top level per the storefront API shape.
	couponGroup := r.Group("/coupons")
	couponGroup.Use(middleware.ValidateToken, middleware.RequireAdmin(db))
	{
		couponGroup.PATCH("/:id", couponController.UpdateCoupon(db))
		couponGroup.DELETE("/:id", couponController.DeleteCoupon(db))
	}

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin(db))
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db, pc))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db, pc))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db, pc))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Coupon Management ───────────
		couponAdmin := adminGroup.Group("/coupons")
		{
			couponAdmin.POST("", couponController.CreateCoupon(db))
			couponAdmin.GET("", couponController.GetCoupons(db))
		}

		// ─────────── Admin Roster (super admin only) ───────────
		adminMgmt := adminGroup.Group("/admins")
		adminMgmt.Use(middleware.RequireSuperAdmin)
		{
			adminMgmt.GET("", adminController.GetAllAdmins(db))
			adminMgmt.POST("", adminController.AddAdmin(db))
			adminMgmt.DELETE("/:id", adminController.RemoveAdmin(db))
		}
	}
}

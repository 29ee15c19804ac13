package adminController

import (
	"log"
	"net/http"

	"github.com/chinmaye5/Freelance-ecommerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// The roster endpoints are super-admin only; adding a row is what grants
// an email regular-admin access, removing it revokes that access on the
// next request.

// GET /admin/admins
func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.Admin

		if err := db.Find(&admins).Error; err != nil {
			log.Println("❌ Failed to fetch admins:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admins"})
			return
		}

		c.JSON(http.StatusOK, admins)
	}
}

// POST /admin/admins
func AddAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email" binding:"required,email"`
			Name  string `json:"name"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		admin := models.Admin{Email: req.Email, Name: req.Name}
		if err := db.Create(&admin).Error; err != nil {
			log.Println("❌ Failed to add admin:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add admin"})
			return
		}

		c.JSON(http.StatusCreated, admin)
	}
}

// DELETE /admin/admins/:id
func RemoveAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.Admin{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove admin"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Admin removed"})
	}
}

package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/chinmaye5/Freelance-ecommerce/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireAdmin is the one policy check every mutating admin endpoint runs.
// It re-verifies the caller's email against the gate on each request, so
// removing someone from the roster locks them out even while their JWT is
// still live. Unauthenticated and unknown callers both get 401; a roster
// lookup fault gets 500, not a silent 401.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")

		role, err := auth.AuthorizeAdmin(db, email)
		if errors.Is(err, auth.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		} else if err != nil {
			log.Println("❌ Admin authorization failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			c.Abort()
			return
		}

		c.Set("admin_role", role)
		c.Next()
	}
}

// RequireSuperAdmin guards the endpoints only the configured super admin
// may touch (the admin roster itself). Must run after RequireAdmin.
func RequireSuperAdmin(c *gin.Context) {
	if c.GetString("admin_role") != auth.RoleSuperAdmin {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Super admin only"})
		c.Abort()
		return
	}
	c.Next()
}

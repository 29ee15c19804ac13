package auth

import (
	"errors"
	"os"

	"github.com/chinmaye5/Freelance-ecommerce/models"
	"gorm.io/gorm"
)

const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
)

// ErrUnauthorized means the caller is neither the super admin nor on the
// admin roster. It is an expected outcome, not a fault.
var ErrUnauthorized = errors.New("unauthorized")

// AuthorizeAdmin decides what a caller may do, given the verified email
// the identity provider handed us. The configured SUPER_ADMIN_EMAIL wins
// unconditionally (exact, case-sensitive match); everyone else must have a
// row in the admin roster. An unreachable roster is returned as the
// underlying error, never silently downgraded to ErrUnauthorized.
func AuthorizeAdmin(db *gorm.DB, email string) (string, error) {
	if email == "" {
		return "", ErrUnauthorized
	}

	if super := os.Getenv("SUPER_ADMIN_EMAIL"); super != "" && email == super {
		return RoleSuperAdmin, nil
	}

	var admin models.Admin
	err := db.Where("email = ?", email).First(&admin).Error
	if err == nil {
		return RoleAdmin, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrUnauthorized
	}
	return "", err
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/chinmaye5/Freelance-ecommerce/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}))
	return db
}

func TestAuthorizeAdmin_SuperAdminEmail(t *testing.T) {
	t.Setenv("SUPER_ADMIN_EMAIL", "owner@store.com")
	db := setupTestDB(t)

	// The super admin wins regardless of roster contents.
	role, err := AuthorizeAdmin(db, "owner@store.com")
	require.NoError(t, err)
	assert.Equal(t, RoleSuperAdmin, role)
}

func TestAuthorizeAdmin_SuperAdminMatchIsCaseSensitive(t *testing.T) {
	t.Setenv("SUPER_ADMIN_EMAIL", "owner@store.com")
	db := setupTestDB(t)

	_, err := AuthorizeAdmin(db, "Owner@store.com")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthorizeAdmin_RosterEmail(t *testing.T) {
	t.Setenv("SUPER_ADMIN_EMAIL", "owner@store.com")
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Admin{Email: "staff@store.com"}).Error)

	role, err := AuthorizeAdmin(db, "staff@store.com")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)
}

func TestAuthorizeAdmin_UnknownEmail(t *testing.T) {
	t.Setenv("SUPER_ADMIN_EMAIL", "owner@store.com")
	db := setupTestDB(t)

	_, err := AuthorizeAdmin(db, "shopper@example.com")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthorizeAdmin_EmptyEmail(t *testing.T) {
	t.Setenv("SUPER_ADMIN_EMAIL", "owner@store.com")
	db := setupTestDB(t)

	// An unauthenticated caller has no email; that's unauthorized, not a fault.
	_, err := AuthorizeAdmin(db, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthorizeAdmin_EmptySuperAdminConfigNeverMatches(t *testing.T) {
	t.Setenv("SUPER_ADMIN_EMAIL", "")
	db := setupTestDB(t)

	_, err := AuthorizeAdmin(db, "anyone@example.com")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthorizeAdmin_LookupFaultIsNotUnauthorized(t *testing.T) {
	t.Setenv("SUPER_ADMIN_EMAIL", "owner@store.com")
	db := setupTestDB(t)

	// Drop the table to simulate an unreachable roster.
	require.NoError(t, db.Migrator().DropTable(&models.Admin{}))

	_, err := AuthorizeAdmin(db, "staff@store.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

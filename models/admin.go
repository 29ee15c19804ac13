package models

// Admin is one row of the admin roster. Having a row with a matching
// email is what grants regular-admin privilege; the super admin is
// configured by SUPER_ADMIN_EMAIL and never stored here.
type Admin struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Email   string `gorm:"unique;not null" json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

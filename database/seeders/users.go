package seeders

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/pkg/auth"
)

func init() {
	register("admin_user", seedAdminUser)
}

// seedAdminUser creates the bootstrap ADMIN account. The password
// comes from SEED_ADMIN_PASSWORD so the default never ships to
// production unnoticed.
func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ?", "admin@storefront.local").
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(config.Get("SEED_ADMIN_PASSWORD", "change-me-now"))
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Storefront Admin",
		Email:    "admin@storefront.local",
		Password: hash,
		Role:     models.RoleAdmin,
		Status:   models.StatusActive,
	}
	return db.Create(&admin).Error
}

package configs

import (
	"os"

	"github.com/LisaMariaKleiner/coderr/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the staff account used for order deletion. Runs
// once; a second start is a no-op.
func SeedAdmin(db *gorm.DB) error {
	username := envOr("ADMIN_USERNAME", "admin")

	var count int64
	if err := db.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(envOr("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: username,
		Email:    envOr("ADMIN_EMAIL", "admin@coderr.local"),
		Password: string(hashed),
		UserType: entity.UserTypeBusiness,
		IsStaff:  true,
	}
	return db.Create(&admin).Error
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

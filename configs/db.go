package configs

import (
	"github.com/LisaMariaKleiner/coderr/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) error {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase(d *gorm.DB) error {
	return d.AutoMigrate(
		&entity.User{}, &entity.BusinessProfile{}, &entity.CustomerProfile{},
		&entity.Offer{}, &entity.OfferDetail{},
		&entity.Order{},
		&entity.Review{},
	)
}

package migrations

import (
	"github.com/rakhadenta/gokart/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}, &models.CartItem{})
}

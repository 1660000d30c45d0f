package seeders

import (
	"log"

	"github.com/google/uuid"
	"github.com/rakhadenta/gokart/app/db/fakers"
	"github.com/rakhadenta/gokart/app/helpers"
	"github.com/rakhadenta/gokart/app/models"
	"gorm.io/gorm"
)

// DBSeed fills an empty database with a known admin account plus faker-built
// customers, categories and products.
func DBSeed(db *gorm.DB) error {
	admin := &models.User{
		ID:        uuid.New().String(),
		FirstName: "Store",
		LastName:  "Admin",
		Email:     "admin@gokart.local",
		Password:  helpers.HashPassword("admin123"),
		Role:      models.RoleAdmin,
	}
	if err := db.FirstOrCreate(admin, "email = ?", admin.Email).Error; err != nil {
		return err
	}
	log.Printf("Seeded admin account %s", admin.Email)

	for i := 0; i < 3; i++ {
		customer := fakers.UserFaker(models.RoleCustomer)
		if err := db.Create(customer).Error; err != nil {
			return err
		}
	}

	for i := 0; i < 4; i++ {
		category := fakers.CategoryFaker()
		if err := db.Create(category).Error; err != nil {
			return err
		}

		for j := 0; j < 5; j++ {
			product := fakers.ProductFaker(category)
			if err := db.Create(product).Error; err != nil {
				return err
			}
		}
	}

	log.Println("✅ Seeding complete")
	return nil
}

package fakers

import (
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/rakhadenta/gokart/app/models"
)

func CategoryFaker() *models.Category {
	name := faker.Word() + "-" + uuid.NewString()[:6]

	return &models.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slug.Make(name),
		Description: faker.Sentence(),
	}
}

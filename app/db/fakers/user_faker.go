package fakers

import (
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/rakhadenta/gokart/app/helpers"
	"github.com/rakhadenta/gokart/app/models"
)

func UserFaker(role string) *models.User {
	return &models.User{
		ID:        uuid.New().String(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Email:     faker.Email(),
		Password:  helpers.HashPassword("password123"),
		Role:      role,
	}
}

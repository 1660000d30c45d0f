package fakers

import (
	"math"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/rakhadenta/gokart/app/models"
	"github.com/shopspring/decimal"
)

var colors = []string{"red", "blue", "green", "black", "white", "yellow"}

func ProductFaker(category *models.Category) *models.Product {
	name := faker.Name()
	productID := uuid.New().String()

	product := &models.Product{
		ID:          productID,
		Name:        name,
		Slug:        slug.Make(name + "-" + productID[:6]),
		Sku:         slug.Make(name),
		Description: faker.Paragraph(),
		Price:       decimal.NewFromFloat(fakePrice()),
		Stock:       rand.Intn(20) + 1,
		Color:       colors[rand.Intn(len(colors))],
		Image:       "/images/products/" + productID[:8] + ".jpg",
		IsFeatured:  rand.Intn(4) == 0,
	}
	if category != nil {
		product.CategoryID = &category.ID
	}

	return product
}

func fakePrice() float64 {
	return precision(rand.Float64()*math.Pow10(rand.Intn(4)+1), rand.Intn(2)+1)
}

func precision(val float64, pre int) float64 {
	a := math.Pow10(pre)
	return float64(int(val*a)) / a

}

package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Email     string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password  string `gorm:"size:255;not null" json:"-"`
	Role      string `gorm:"size:20;default:'customer';not null" json:"role"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `json:"-"`
}

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

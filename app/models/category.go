package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name        string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Slug        string `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

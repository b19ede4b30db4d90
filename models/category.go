package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a storefront category as stored in Postgres and served by
// GET /store/category/all.
type Category struct {
	ID        uuid.UUID `json:"_id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null;index"`
	Image     string    `json:"image" gorm:"not null;default:''"`
	Status    string    `json:"-" gorm:"type:varchar(20);default:'Active';check:status IN ('Active', 'Inactive')"`
	CreatedAt time.Time `json:"-" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"-" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

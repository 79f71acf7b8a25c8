package models

import (
	"time"

	"gorm.io/gorm"
)

// Perfume is a scent add-on. It is not linked to orders.
type Perfume struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Available   bool           `gorm:"not null" json:"available"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Perfume model
func (Perfume) TableName() string {
	return "perfumes"
}

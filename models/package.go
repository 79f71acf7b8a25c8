package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Package is a priced laundry service, charged per kilogram
type Package struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	Name        string              `gorm:"not null;index:idx_packages_name,unique,where:deleted_at IS NULL" json:"name"`
	Description string              `gorm:"type:text;not null" json:"description"`
	Price       decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"price"` // null when the package has no price
	Active      bool                `gorm:"not null" json:"active"`
	Orders      []LaundryOrder      `gorm:"foreignKey:PackageID;constraint:OnDelete:RESTRICT" json:"orders,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt      `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Package model
func (Package) TableName() string {
	return "packages"
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents a laundry customer
type Customer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"not null;index:idx_customers_email,unique,where:deleted_at IS NULL" json:"email"`
	Phone     string         `gorm:"not null" json:"phone"`
	Address   *string        `json:"address"`
	Orders    []LaundryOrder `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT" json:"orders,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentMethod is a way a customer can settle an order
type PaymentMethod struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null;index:idx_payment_methods_name,unique,where:deleted_at IS NULL" json:"name"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Active      bool           `gorm:"not null" json:"active"`
	Orders      []LaundryOrder `gorm:"foreignKey:PaymentMethodID;constraint:OnDelete:RESTRICT" json:"orders,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the PaymentMethod model
func (PaymentMethod) TableName() string {
	return "payment_methods"
}

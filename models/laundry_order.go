package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order statuses. Any status may follow any other.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

// Payment statuses
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
)

// OrderStatuses lists every valid order status
var OrderStatuses = []string{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}

// LaundryOrder is a customer's load of laundry washed under a package
type LaundryOrder struct {
	ID              uint                `gorm:"primaryKey" json:"id"`
	CustomerID      uint                `gorm:"not null;index" json:"customerId"`
	Customer        *Customer           `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	PackageID       uint                `gorm:"not null;index" json:"packageId"`
	Package         *Package            `gorm:"foreignKey:PackageID" json:"package,omitempty"`
	Weight          decimal.Decimal     `gorm:"type:decimal(10,2);not null;check:weight > 0" json:"weight"` // kilograms
	Status          string              `gorm:"not null;default:'Pending'" json:"status"`
	PaymentMethodID *uint               `gorm:"index" json:"paymentMethodId"`
	PaymentMethod   *PaymentMethod      `gorm:"foreignKey:PaymentMethodID" json:"paymentMethod,omitempty"`
	PaymentStatus   string              `gorm:"not null;default:'Pending'" json:"paymentStatus"`
	TotalAmount     decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"totalAmount"` // package price * weight, computed on write
	Notes           *string             `gorm:"type:text" json:"notes"`
	OrderDate       time.Time           `gorm:"not null" json:"orderDate"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt      `gorm:"index" json:"-"`
}

// TableName specifies the table name for the LaundryOrder model
func (LaundryOrder) TableName() string {
	return "laundry_orders"
}

// ComputeTotal returns price * weight rounded to cents, or an invalid
// NullDecimal when the package has no price.
func ComputeTotal(price decimal.NullDecimal, weight decimal.Decimal) decimal.NullDecimal {
	if !price.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(price.Decimal.Mul(weight).Round(2))
}

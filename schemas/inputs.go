package schemas

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Decimal places kept by the price and weight columns
const (
	MoneyScale  = 2
	WeightScale = 2
)

// CustomerInput is the body accepted when creating or updating a customer
type CustomerInput struct {
	Name    string  `json:"name" binding:"required,min=2,max=120"`
	Email   string  `json:"email" binding:"required,email,max=160"`
	Phone   string  `json:"phone" binding:"required,min=10,max=30"`
	Address *string `json:"address,omitempty" binding:"omitempty,max=255"`
}

func (CustomerInput) messages() map[string]string {
	return map[string]string{
		"name.required":  "Name must be at least 2 characters.",
		"name.min":       "Name must be at least 2 characters.",
		"email.required": "Please enter a valid email.",
		"email.email":    "Please enter a valid email.",
		"phone.required": "Please enter a valid phone number.",
		"phone.min":      "Please enter a valid phone number.",
	}
}

// Normalize trims every field and lowercases the email
func (in *CustomerInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = trimOptional(in.Address)
}

// PackageInput is the body accepted when creating or updating a package
type PackageInput struct {
	Name        string   `json:"name" binding:"required,min=3,max=120"`
	Description string   `json:"description" binding:"required,min=10"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Active      *bool    `json:"active,omitempty"`
}

func (PackageInput) messages() map[string]string {
	return map[string]string{
		"name.required":        "Package name must be at least 3 characters.",
		"name.min":             "Package name must be at least 3 characters.",
		"description.required": "Description must be at least 10 characters.",
		"description.min":      "Description must be at least 10 characters.",
		"price.gte":            "Price cannot be negative.",
	}
}

// Normalize trims the name and description
func (in *PackageInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
}

// IsActive defaults to true when active was omitted
func (in PackageInput) IsActive() bool {
	return in.Active == nil || *in.Active
}

// PriceValue returns the price to store. Zero and omitted both mean no price.
func (in PackageInput) PriceValue() decimal.NullDecimal {
	if in.Price == nil || *in.Price == 0 {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(*in.Price).Round(MoneyScale))
}

// PaymentMethodInput is the body accepted when creating or updating a payment method
type PaymentMethodInput struct {
	Name        string `json:"name" binding:"required,min=3,max=120"`
	Description string `json:"description" binding:"required,min=5"`
	Active      *bool  `json:"active,omitempty"`
}

func (PaymentMethodInput) messages() map[string]string {
	return map[string]string{
		"name.required":        "Method name must be at least 3 characters.",
		"name.min":             "Method name must be at least 3 characters.",
		"description.required": "Description must be at least 5 characters.",
		"description.min":      "Description must be at least 5 characters.",
	}
}

// Normalize trims the name and description
func (in *PaymentMethodInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
}

// IsActive defaults to true when active was omitted
func (in PaymentMethodInput) IsActive() bool {
	return in.Active == nil || *in.Active
}

// PerfumeInput is the body accepted when creating or updating a perfume
type PerfumeInput struct {
	Name        string `json:"name" binding:"required,min=2,max=120"`
	Description string `json:"description" binding:"required,min=5"`
	Available   *bool  `json:"available,omitempty"`
}

func (PerfumeInput) messages() map[string]string {
	return map[string]string{
		"name.required":        "Perfume name must be at least 2 characters.",
		"name.min":             "Perfume name must be at least 2 characters.",
		"description.required": "Description must be at least 5 characters.",
		"description.min":      "Description must be at least 5 characters.",
	}
}

// Normalize trims the name and description
func (in *PerfumeInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
}

// IsAvailable defaults to true when available was omitted
func (in PerfumeInput) IsAvailable() bool {
	return in.Available == nil || *in.Available
}

// OrderInput is the body accepted when creating or updating a laundry order.
// totalAmount is deliberately absent: it is always computed by the server.
type OrderInput struct {
	CustomerID      uint       `json:"customerId" binding:"required,gt=0"`
	PackageID       uint       `json:"packageId" binding:"required,gt=0"`
	Weight          float64    `json:"weight" binding:"required,gte=0.01"`
	Status          string     `json:"status,omitempty" binding:"omitempty,oneof=Pending Processing Completed Cancelled"`
	PaymentMethodID *uint      `json:"paymentMethodId,omitempty" binding:"omitempty,gt=0"`
	PaymentStatus   string     `json:"paymentStatus,omitempty" binding:"omitempty,oneof=Pending Paid"`
	Notes           *string    `json:"notes,omitempty" binding:"omitempty,max=1000"`
	OrderDate       *time.Time `json:"orderDate,omitempty"`
}

func (OrderInput) messages() map[string]string {
	return map[string]string{
		"customerId.required": "Please select a customer.",
		"customerId.gt":       "Please select a customer.",
		"packageId.required":  "Please select a package.",
		"packageId.gt":        "Please select a package.",
		"weight.required":     "Weight must be greater than 0.",
		"weight.gte":          "Weight must be greater than 0.",
		"status.oneof":        "Status must be one of Pending, Processing, Completed, Cancelled.",
		"paymentStatus.oneof": "Payment status must be Pending or Paid.",
	}
}

// Normalize trims the notes, dropping them when blank
func (in *OrderInput) Normalize() {
	in.Notes = trimOptional(in.Notes)
}

// WeightValue returns the weight in kilograms, rounded to the stored scale
func (in OrderInput) WeightValue() decimal.Decimal {
	return decimal.NewFromFloat(in.Weight).Round(WeightScale)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

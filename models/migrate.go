package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Money and weight travel as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// All returns every model in dependency order
func All() []interface{} {
	return []interface{}{
		&Customer{},
		&Package{},
		&PaymentMethod{},
		&Perfume{},
		&LaundryOrder{},
	}
}

// AutoMigrate creates or updates the tables for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}

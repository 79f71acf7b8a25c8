package services

import (
	"context"
	"fmt"

	"github.com/kendall-kelly/laundry-api/models"
	"github.com/kendall-kelly/laundry-api/schemas"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Seed fills an empty database with demo rows. It goes through the services so
// validation and order totals behave exactly as they do over HTTP. Nothing is
// written when a package already exists.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Package{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if count > 0 {
		log.Info().Int64("packages", count).Msg("Database already has data, skipping seed")
		return nil
	}

	methods := NewPaymentMethodService(db)
	packages := NewPackageService(db)
	customers := NewCustomerService(db)
	orders := NewOrderService(db)

	var methodIDs []uint
	for _, in := range []schemas.PaymentMethodInput{
		{Name: "Cash", Description: "Cash payment on pickup"},
		{Name: "Credit Card", Description: "Visa, Mastercard, American Express"},
		{Name: "Digital Wallet", Description: "GoPay, OVO, DANA, ShopeePay"},
	} {
		m, err := methods.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("failed to seed payment method %q: %w", in.Name, err)
		}
		methodIDs = append(methodIDs, m.ID)
	}

	var packageIDs []uint
	for _, in := range []schemas.PackageInput{
		{Name: "Basic Wash", Description: "Standard washing and drying service", Price: float64Ptr(15000)},
		{Name: "Premium Wash", Description: "Premium washing with fabric softener and ironing", Price: float64Ptr(25000)},
		{Name: "Express Service", Description: "Same day service with premium care", Price: float64Ptr(35000)},
	} {
		p, err := packages.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("failed to seed package %q: %w", in.Name, err)
		}
		packageIDs = append(packageIDs, p.ID)
	}

	var customerIDs []uint
	for _, in := range []schemas.CustomerInput{
		{Name: "John Doe", Email: "john@example.com", Phone: "+628123456789", Address: stringPtr("Jl. Sudirman No. 123, Jakarta")},
		{Name: "Jane Smith", Email: "jane@example.com", Phone: "+628987654321", Address: stringPtr("Jl. Thamrin No. 456, Jakarta")},
		{Name: "Bob Wilson", Email: "bob@example.com", Phone: "+628555666777", Address: stringPtr("Jl. Gatot Subroto No. 789, Jakarta")},
	} {
		c, err := customers.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("failed to seed customer %q: %w", in.Name, err)
		}
		customerIDs = append(customerIDs, c.ID)
	}

	for i, in := range []schemas.OrderInput{
		{
			CustomerID: customerIDs[0], PackageID: packageIDs[0], Weight: 2.5,
			Status: models.StatusProcessing, PaymentMethodID: &methodIDs[0], PaymentStatus: models.PaymentPaid,
			Notes: stringPtr("Please wash gently"),
		},
		{
			CustomerID: customerIDs[1], PackageID: packageIDs[1], Weight: 3.0,
			Status: models.StatusPending, PaymentMethodID: &methodIDs[1], PaymentStatus: models.PaymentPending,
		},
		{
			CustomerID: customerIDs[2], PackageID: packageIDs[2], Weight: 1.5,
			Status: models.StatusCompleted, PaymentMethodID: &methodIDs[2], PaymentStatus: models.PaymentPaid,
			Notes: stringPtr("Delivered on time"),
		},
	} {
		if _, err := orders.Create(ctx, in); err != nil {
			return fmt.Errorf("failed to seed order %d: %w", i+1, err)
		}
	}

	log.Info().
		Int("payment_methods", len(methodIDs)).
		Int("packages", len(packageIDs)).
		Int("customers", len(customerIDs)).
		Int("orders", 3).
		Msg("Seeded demo data")
	return nil
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

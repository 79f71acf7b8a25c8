package services

import (
	"context"
	"time"

	"github.com/kendall-kelly/laundry-api/models"
	"github.com/kendall-kelly/laundry-api/schemas"
	"gorm.io/gorm"
)

// OrderService manages laundry orders. It is the only place totalAmount is
// written: price * weight, taken from the referenced package.
type OrderService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewOrderService creates an order service on top of db
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db, now: time.Now}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Customer").Preload("Package").Preload("PaymentMethod")
}

// List returns all orders, newest first, with their customer, package and payment method
func (s *OrderService) List(ctx context.Context) ([]models.LaundryOrder, error) {
	var orders []models.LaundryOrder
	if err := newestFirst(withRelations(s.db.WithContext(ctx))).Find(&orders).Error; err != nil {
		return nil, internal("Failed to fetch orders", err)
	}
	return orders, nil
}

// Get returns one order with its customer, package and payment method
func (s *OrderService) Get(ctx context.Context, id uint) (*models.LaundryOrder, error) {
	var order models.LaundryOrder
	if err := findByID(withRelations(s.db.WithContext(ctx)), &order, id, "Order not found", "Failed to fetch order"); err != nil {
		return nil, err
	}
	return &order, nil
}

// Create stores a new order. The package must exist; its price decides the total.
func (s *OrderService) Create(ctx context.Context, input schemas.OrderInput) (*models.LaundryOrder, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	var order models.LaundryOrder
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pkg, err := s.checkReferences(tx, input, "Failed to create order")
		if err != nil {
			return err
		}

		weight := input.WeightValue()
		order = models.LaundryOrder{
			CustomerID:      input.CustomerID,
			PackageID:       input.PackageID,
			Weight:          weight,
			Status:          orDefault(input.Status, models.StatusPending),
			PaymentMethodID: input.PaymentMethodID,
			PaymentStatus:   orDefault(input.PaymentStatus, models.PaymentPending),
			TotalAmount:     models.ComputeTotal(pkg.Price, weight),
			Notes:           input.Notes,
			OrderDate:       s.now(),
		}
		if input.OrderDate != nil {
			order.OrderDate = *input.OrderDate
		}

		if err := tx.Create(&order).Error; err != nil {
			return internal("Failed to create order", err)
		}
		return nil
	})
	if err != nil {
		return nil, AsServiceError(err, "Failed to create order")
	}

	return s.reload(ctx, order.ID, "Failed to create order")
}

// Update replaces an order's fields. The total is recomputed only when the
// package or the weight changes; otherwise the stored total is kept.
func (s *OrderService) Update(ctx context.Context, id uint, input schemas.OrderInput) (*models.LaundryOrder, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.LaundryOrder
		if err := findByID(tx, &order, id, "Order not found", "Failed to update order"); err != nil {
			return err
		}

		pkg, err := s.checkReferences(tx, input, "Failed to update order")
		if err != nil {
			return err
		}

		weight := input.WeightValue()
		if order.PackageID != input.PackageID || !order.Weight.Equal(weight) {
			order.TotalAmount = models.ComputeTotal(pkg.Price, weight)
		}

		order.CustomerID = input.CustomerID
		order.PackageID = input.PackageID
		order.Weight = weight
		order.Status = orDefault(input.Status, order.Status)
		order.PaymentMethodID = input.PaymentMethodID
		order.PaymentStatus = orDefault(input.PaymentStatus, order.PaymentStatus)
		order.Notes = input.Notes
		if input.OrderDate != nil {
			order.OrderDate = *input.OrderDate
		}

		if err := tx.Save(&order).Error; err != nil {
			return internal("Failed to update order", err)
		}
		return nil
	})
	if err != nil {
		return nil, AsServiceError(err, "Failed to update order")
	}

	return s.reload(ctx, id, "Failed to update order")
}

// Delete removes an order
func (s *OrderService) Delete(ctx context.Context, id uint) error {
	db := s.db.WithContext(ctx)

	var order models.LaundryOrder
	if err := findByID(db, &order, id, "Order not found", "Failed to delete order"); err != nil {
		return err
	}
	if err := db.Delete(&order).Error; err != nil {
		return internal("Failed to delete order", err)
	}
	return nil
}

// checkReferences resolves the package, customer and optional payment method
// an order input points at. The package is checked first.
func (s *OrderService) checkReferences(tx *gorm.DB, input schemas.OrderInput, failMsg string) (*models.Package, error) {
	var pkg models.Package
	if err := findByID(tx, &pkg, input.PackageID, "Package not found", failMsg); err != nil {
		return nil, err
	}

	var customer models.Customer
	if err := findByID(tx, &customer, input.CustomerID, "Customer not found", failMsg); err != nil {
		return nil, err
	}

	if input.PaymentMethodID != nil {
		var method models.PaymentMethod
		if err := findByID(tx, &method, *input.PaymentMethodID, "Payment method not found", failMsg); err != nil {
			return nil, err
		}
	}

	return &pkg, nil
}

func (s *OrderService) reload(ctx context.Context, id uint, failMsg string) (*models.LaundryOrder, error) {
	var order models.LaundryOrder
	if err := withRelations(s.db.WithContext(ctx)).First(&order, id).Error; err != nil {
		return nil, internal(failMsg, err)
	}
	return &order, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

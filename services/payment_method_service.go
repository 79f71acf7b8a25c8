package services

import (
	"context"

	"github.com/kendall-kelly/laundry-api/models"
	"github.com/kendall-kelly/laundry-api/schemas"
	"gorm.io/gorm"
)

// PaymentMethodService manages payment methods
type PaymentMethodService struct {
	db *gorm.DB
}

// NewPaymentMethodService creates a payment method service on top of db
func NewPaymentMethodService(db *gorm.DB) *PaymentMethodService {
	return &PaymentMethodService{db: db}
}

// List returns all payment methods by name, each with its latest orders
func (s *PaymentMethodService) List(ctx context.Context) ([]models.PaymentMethod, error) {
	db := s.db.WithContext(ctx)

	var methods []models.PaymentMethod
	if err := db.Order("name ASC").Find(&methods).Error; err != nil {
		return nil, internal("Failed to fetch payment methods", err)
	}

	ids := make([]uint, len(methods))
	for i, m := range methods {
		ids[i] = m.ID
	}
	recent, err := recentOrders(db, "payment_method_id", ids, func(o models.LaundryOrder) (uint, bool) {
		if o.PaymentMethodID == nil {
			return 0, false
		}
		return *o.PaymentMethodID, true
	})
	if err != nil {
		return nil, internal("Failed to fetch payment methods", err)
	}
	for i := range methods {
		methods[i].Orders = recent[methods[i].ID]
	}

	return methods, nil
}

// Get returns one payment method with its orders, their customers and packages
func (s *PaymentMethodService) Get(ctx context.Context, id uint) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	db := s.db.WithContext(ctx).
		Preload("Orders", newestFirst).
		Preload("Orders.Customer").
		Preload("Orders.Package")
	if err := findByID(db, &method, id, "Payment method not found", "Failed to fetch payment method"); err != nil {
		return nil, err
	}
	return &method, nil
}

// Create validates input and stores a new payment method with a unique name
func (s *PaymentMethodService) Create(ctx context.Context, input schemas.PaymentMethodInput) (*models.PaymentMethod, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)

	taken, err := valueTaken(db, &models.PaymentMethod{}, "name", input.Name, 0)
	if err != nil {
		return nil, internal("Failed to create payment method", err)
	}
	if taken {
		return nil, conflict("Payment method with this name already exists")
	}

	method := models.PaymentMethod{
		Name:        input.Name,
		Description: input.Description,
		Active:      input.IsActive(),
	}
	if err := db.Create(&method).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, conflict("Payment method with this name already exists")
		}
		return nil, internal("Failed to create payment method", err)
	}

	return &method, nil
}

// Update replaces a payment method's fields, keeping the name unique
func (s *PaymentMethodService) Update(ctx context.Context, id uint, input schemas.PaymentMethodInput) (*models.PaymentMethod, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)

	var method models.PaymentMethod
	if err := findByID(db, &method, id, "Payment method not found", "Failed to update payment method"); err != nil {
		return nil, err
	}

	if input.Name != method.Name {
		taken, err := valueTaken(db, &models.PaymentMethod{}, "name", input.Name, method.ID)
		if err != nil {
			return nil, internal("Failed to update payment method", err)
		}
		if taken {
			return nil, conflict("Payment method name is already taken by another method")
		}
	}

	method.Name = input.Name
	method.Description = input.Description
	method.Active = input.IsActive()
	if err := db.Save(&method).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, conflict("Payment method name is already taken by another method")
		}
		return nil, internal("Failed to update payment method", err)
	}

	return &method, nil
}

// Delete removes a payment method that no order references
func (s *PaymentMethodService) Delete(ctx context.Context, id uint) error {
	db := s.db.WithContext(ctx)

	var method models.PaymentMethod
	if err := findByID(db, &method, id, "Payment method not found", "Failed to delete payment method"); err != nil {
		return err
	}

	count, err := countOrders(db, "payment_method_id", method.ID)
	if err != nil {
		return internal("Failed to delete payment method", err)
	}
	if count > 0 {
		return hasDependents("Cannot delete payment method with existing orders. Please delete or reassign orders first.")
	}

	if err := db.Delete(&method).Error; err != nil {
		return internal("Failed to delete payment method", err)
	}
	return nil
}

package services

import (
	"context"

	"github.com/kendall-kelly/laundry-api/models"
	"github.com/kendall-kelly/laundry-api/schemas"
	"gorm.io/gorm"
)

// CustomerService manages customers
type CustomerService struct {
	db *gorm.DB
}

// NewCustomerService creates a customer service on top of db
func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// List returns all customers by name, each with its latest orders
func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	db := s.db.WithContext(ctx)

	var customers []models.Customer
	if err := db.Order("name ASC").Find(&customers).Error; err != nil {
		return nil, internal("Failed to fetch customers", err)
	}

	ids := make([]uint, len(customers))
	for i, c := range customers {
		ids[i] = c.ID
	}
	recent, err := recentOrders(db, "customer_id", ids, func(o models.LaundryOrder) (uint, bool) {
		return o.CustomerID, true
	})
	if err != nil {
		return nil, internal("Failed to fetch customers", err)
	}
	for i := range customers {
		customers[i].Orders = recent[customers[i].ID]
	}

	return customers, nil
}

// Get returns one customer with all of its orders and their packages
func (s *CustomerService) Get(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	db := s.db.WithContext(ctx).
		Preload("Orders", newestFirst).
		Preload("Orders.Package")
	if err := findByID(db, &customer, id, "Customer not found", "Failed to fetch customer"); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Create validates input and stores a new customer with a unique email
func (s *CustomerService) Create(ctx context.Context, input schemas.CustomerInput) (*models.Customer, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)

	email := input.Email
	taken, err := valueTaken(db, &models.Customer{}, "email", email, 0)
	if err != nil {
		return nil, internal("Failed to create customer", err)
	}
	if taken {
		return nil, conflict("Customer with this email already exists")
	}

	customer := models.Customer{
		Name:    input.Name,
		Email:   email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := db.Create(&customer).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, conflict("Customer with this email already exists")
		}
		return nil, internal("Failed to create customer", err)
	}

	return &customer, nil
}

// Update replaces a customer's fields, keeping the email unique
func (s *CustomerService) Update(ctx context.Context, id uint, input schemas.CustomerInput) (*models.Customer, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)

	var customer models.Customer
	if err := findByID(db, &customer, id, "Customer not found", "Failed to update customer"); err != nil {
		return nil, err
	}

	email := input.Email
	if email != customer.Email {
		taken, err := valueTaken(db, &models.Customer{}, "email", email, customer.ID)
		if err != nil {
			return nil, internal("Failed to update customer", err)
		}
		if taken {
			return nil, conflict("Email is already taken by another customer")
		}
	}

	customer.Name = input.Name
	customer.Email = email
	customer.Phone = input.Phone
	customer.Address = input.Address
	if err := db.Save(&customer).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, conflict("Email is already taken by another customer")
		}
		return nil, internal("Failed to update customer", err)
	}

	return &customer, nil
}

// Delete removes a customer that has no orders
func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	db := s.db.WithContext(ctx)

	var customer models.Customer
	if err := findByID(db, &customer, id, "Customer not found", "Failed to delete customer"); err != nil {
		return err
	}

	count, err := countOrders(db, "customer_id", customer.ID)
	if err != nil {
		return internal("Failed to delete customer", err)
	}
	if count > 0 {
		return hasDependents("Cannot delete customer with existing orders. Please delete or reassign orders first.")
	}

	if err := db.Delete(&customer).Error; err != nil {
		return internal("Failed to delete customer", err)
	}
	return nil
}

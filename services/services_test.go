package services

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/kendall-kelly/laundry-api/models"
	"github.com/kendall-kelly/laundry-api/schemas"
	"github.com/kendall-kelly/laundry-api/tests/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	if os.Getenv("GO_ENV") == "" {
		os.Setenv("GO_ENV", "test")
	}
	os.Exit(m.Run())
}

type fixtures struct {
	customer *models.Customer
	pkg      *models.Package
	method   *models.PaymentMethod
}

func createFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()
	ctx := context.Background()

	pkg, err := NewPackageService(db).Create(ctx, schemas.PackageInput{
		Name:        "Basic Wash",
		Description: "Standard washing and drying service",
		Price:       float64Ptr(15000),
		Active:      boolPtr(true),
	})
	require.NoError(t, err)

	customer, err := NewCustomerService(db).Create(ctx, schemas.CustomerInput{
		Name:  "John Doe",
		Email: "john@example.com",
		Phone: "+628123456789",
	})
	require.NoError(t, err)

	method, err := NewPaymentMethodService(db).Create(ctx, schemas.PaymentMethodInput{
		Name:        "Cash",
		Description: "Cash payment on pickup",
	})
	require.NoError(t, err)

	return fixtures{customer: customer, pkg: pkg, method: method}
}

func boolPtr(b bool) *bool {
	return &b
}

func requireKind(t *testing.T, err error, kind ErrorKind) *ServiceError {
	t.Helper()
	require.Error(t, err)
	var serviceErr *ServiceError
	require.True(t, errors.As(err, &serviceErr), "expected *ServiceError, got %T", err)
	assert.Equal(t, kind, serviceErr.Kind)
	return serviceErr
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestServiceErrorStatusCode(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected int
	}{
		{KindInvalidID, http.StatusBadRequest},
		{KindValidationFailed, http.StatusBadRequest},
		{KindHasDependents, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := &ServiceError{Kind: tt.kind, Message: "x"}
			assert.Equal(t, tt.expected, err.StatusCode())
		})
	}
}

func TestServiceErrorWrapping(t *testing.T) {
	cause := errors.New("disk full")
	err := internal("Failed to create order", cause)

	assert.Equal(t, "Failed to create order: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Same(t, err, AsServiceError(err, "other"))

	wrapped := AsServiceError(cause, "Failed to fetch orders")
	assert.Equal(t, KindInternal, wrapped.Kind)
	assert.Equal(t, "Failed to fetch orders", wrapped.Message)
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{" 7 ", 7, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"1.5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id, err := ParseID(tt.raw, "customer")
			if tt.wantErr {
				serviceErr := requireKind(t, err, KindInvalidID)
				assert.Equal(t, "Invalid customer ID", serviceErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestCustomerService(t *testing.T) {
	ctx := context.Background()

	t.Run("create normalizes email and rejects duplicates", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		svc := NewCustomerService(db)

		created, err := svc.Create(ctx, schemas.CustomerInput{Name: "John Doe", Email: " John@Example.com ", Phone: "+628123456789"})
		require.NoError(t, err)
		assert.Equal(t, "john@example.com", created.Email)

		_, err = svc.Create(ctx, schemas.CustomerInput{Name: "Johnny", Email: "JOHN@example.com", Phone: "+628000000000"})
		serviceErr := requireKind(t, err, KindConflict)
		assert.Equal(t, "Customer with this email already exists", serviceErr.Message)

		assert.Equal(t, int64(1), countRows(t, db, &models.Customer{}))
		original, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "John Doe", original.Name)
	})

	t.Run("create validates input", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		_, err := NewCustomerService(db).Create(ctx, schemas.CustomerInput{Name: "J", Email: "nope", Phone: "123"})
		serviceErr := requireKind(t, err, KindValidationFailed)
		assert.Len(t, serviceErr.Details, 3)
		assert.Equal(t, int64(0), countRows(t, db, &models.Customer{}))
	})

	t.Run("update rechecks email excluding itself", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		svc := NewCustomerService(db)

		john, err := svc.Create(ctx, schemas.CustomerInput{Name: "John Doe", Email: "john@example.com", Phone: "+628123456789"})
		require.NoError(t, err)
		_, err = svc.Create(ctx, schemas.CustomerInput{Name: "Jane Smith", Email: "jane@example.com", Phone: "+628987654321"})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, john.ID, schemas.CustomerInput{Name: "John D.", Email: "john@example.com", Phone: "+628123456789"})
		require.NoError(t, err)
		assert.Equal(t, "John D.", updated.Name)

		_, err = svc.Update(ctx, john.ID, schemas.CustomerInput{Name: "John D.", Email: "jane@example.com", Phone: "+628123456789"})
		serviceErr := requireKind(t, err, KindConflict)
		assert.Equal(t, "Email is already taken by another customer", serviceErr.Message)

		_, err = svc.Update(ctx, 999, schemas.CustomerInput{Name: "Ghost", Email: "ghost@example.com", Phone: "+628123456789"})
		requireKind(t, err, KindNotFound)
	})

	t.Run("get missing customer", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		_, err := NewCustomerService(db).Get(ctx, 999)
		serviceErr := requireKind(t, err, KindNotFound)
		assert.Equal(t, "Customer not found", serviceErr.Message)
	})

	t.Run("list is ordered by name and embeds at most five recent orders", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		f := createFixtures(t, db)
		svc := NewCustomerService(db)
		_, err := svc.Create(ctx, schemas.CustomerInput{Name: "Alice", Email: "alice@example.com", Phone: "+628111111111"})
		require.NoError(t, err)

		orders := NewOrderService(db)
		for i := 0; i < 6; i++ {
			_, err := orders.Create(ctx, schemas.OrderInput{CustomerID: f.customer.ID, PackageID: f.pkg.ID, Weight: float64(i + 1)})
			require.NoError(t, err)
		}

		customers, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, "Alice", customers[0].Name)
		assert.Empty(t, customers[0].Orders)
		assert.Equal(t, "John Doe", customers[1].Name)
		require.Len(t, customers[1].Orders, recentOrderLimit)
		assert.True(t, customers[1].Orders[0].Weight.Equal(decimal.NewFromInt(6)), "newest order first")
	})

	t.Run("get nests orders with their package", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		f := createFixtures(t, db)
		_, err := NewOrderService(db).Create(ctx, schemas.OrderInput{CustomerID: f.customer.ID, PackageID: f.pkg.ID, Weight: 1})
		require.NoError(t, err)

		customer, err := NewCustomerService(db).Get(ctx, f.customer.ID)
		require.NoError(t, err)
		require.Len(t, customer.Orders, 1)
		require.NotNil(t, customer.Orders[0].Package)
		assert.Equal(t, "Basic Wash", customer.Orders[0].Package.Name)
	})
}

func TestDeleteGuards(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		del     func(db *gorm.DB, f fixtures) error
		model   interface{}
		message string
	}{
		{
			name:    "customer",
			del:     func(db *gorm.DB, f fixtures) error { return NewCustomerService(db).Delete(ctx, f.customer.ID) },
			model:   &models.Customer{},
			message: "Cannot delete customer with existing orders. Please delete or reassign orders first.",
		},
		{
			name:    "package",
			del:     func(db *gorm.DB, f fixtures) error { return NewPackageService(db).Delete(ctx, f.pkg.ID) },
			model:   &models.Package{},
			message: "Cannot delete package with existing orders. Please delete or reassign orders first.",
		},
		{
			name:    "payment method",
			del:     func(db *gorm.DB, f fixtures) error { return NewPaymentMethodService(db).Delete(ctx, f.method.ID) },
			model:   &models.PaymentMethod{},
			message: "Cannot delete payment method with existing orders. Please delete or reassign orders first.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" referenced by an order is kept", func(t *testing.T) {
			db := testutil.OpenTestDB(t)
			f := createFixtures(t, db)
			_, err := NewOrderService(db).Create(ctx, schemas.OrderInput{
				CustomerID: f.customer.ID, PackageID: f.pkg.ID, Weight: 2, PaymentMethodID: &f.method.ID,
			})
			require.NoError(t, err)

			serviceErr := requireKind(t, tt.del(db, f), KindHasDependents)
			assert.Equal(t, tt.message, serviceErr.Message)
			assert.Equal(t, http.StatusBadRequest, serviceErr.StatusCode())

			assert.Equal(t, int64(1), countRows(t, db, tt.model))
			assert.Equal(t, int64(1), countRows(t, db, &models.LaundryOrder{}))
		})

		t.Run(tt.name+" without orders is removed", func(t *testing.T) {
			db := testutil.OpenTestDB(t)
			f := createFixtures(t, db)

			require.NoError(t, tt.del(db, f))
			assert.Equal(t, int64(0), countRows(t, db, tt.model))

			requireKind(t, tt.del(db, f), KindNotFound)
		})
	}
}

func TestUniqueNames(t *testing.T) {
	ctx := context.Background()

	t.Run("package name", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		svc := NewPackageService(db)
		in := schemas.PackageInput{Name: "Basic Wash", Description: "Standard washing and drying service"}

		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
		_, err = svc.Create(ctx, in)
		serviceErr := requireKind(t, err, KindConflict)
		assert.Equal(t, "Package with this name already exists", serviceErr.Message)
		assert.Equal(t, int64(1), countRows(t, db, &models.Package{}))
	})

	t.Run("payment method name", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		svc := NewPaymentMethodService(db)
		in := schemas.PaymentMethodInput{Name: "Cash", Description: "Cash payment on pickup"}

		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
		_, err = svc.Create(ctx, in)
		serviceErr := requireKind(t, err, KindConflict)
		assert.Equal(t, "Payment method with this name already exists", serviceErr.Message)

		var methods []models.PaymentMethod
		require.NoError(t, db.Where("name = ?", "Cash").Find(&methods).Error)
		assert.Len(t, methods, 1)
	})

	t.Run("payment method rename collides", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		svc := NewPaymentMethodService(db)
		_, err := svc.Create(ctx, schemas.PaymentMethodInput{Name: "Cash", Description: "Cash payment on pickup"})
		require.NoError(t, err)
		card, err := svc.Create(ctx, schemas.PaymentMethodInput{Name: "Credit Card", Description: "Visa and Mastercard"})
		require.NoError(t, err)

		_, err = svc.Update(ctx, card.ID, schemas.PaymentMethodInput{Name: "Cash", Description: "Visa and Mastercard"})
		serviceErr := requireKind(t, err, KindConflict)
		assert.Equal(t, "Payment method name is already taken by another method", serviceErr.Message)
	})

	t.Run("store index reports duplicates past the lookup", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		require.NoError(t, db.Create(&models.PaymentMethod{Name: "Cash", Description: "Cash payment on pickup", Active: true}).Error)

		err := db.Create(&models.PaymentMethod{Name: "Cash", Description: "Second cash row", Active: true}).Error
		require.Error(t, err)
		assert.True(t, isUniqueViolation(err), "got %v", err)
		assert.False(t, isUniqueViolation(errors.New("duplicate key value")))
	})

	t.Run("deleted names can be reused", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		svc := NewPackageService(db)
		in := schemas.PackageInput{Name: "Basic Wash", Description: "Standard washing and drying service"}

		pkg, err := svc.Create(ctx, in)
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, pkg.ID))

		again, err := svc.Create(ctx, in)
		require.NoError(t, err)
		assert.NotEqual(t, pkg.ID, again.ID)
	})
}

func TestPackageService(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults active and stores zero price as null", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		pkg, err := NewPackageService(db).Create(ctx, schemas.PackageInput{
			Name: "Free Rinse", Description: "Complimentary rinse service", Price: float64Ptr(0),
		})
		require.NoError(t, err)
		assert.True(t, pkg.Active)
		assert.False(t, pkg.Price.Valid)
	})

	t.Run("inactive package stays inactive", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		svc := NewPackageService(db)
		pkg, err := svc.Create(ctx, schemas.PackageInput{
			Name: "Old Wash", Description: "Retired washing service", Price: float64Ptr(1000), Active: boolPtr(false),
		})
		require.NoError(t, err)

		stored, err := svc.Get(ctx, pkg.ID)
		require.NoError(t, err)
		assert.False(t, stored.Active)
	})
}

func TestPerfumeService(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenTestDB(t)
	svc := NewPerfumeService(db)

	lavender, err := svc.Create(ctx, schemas.PerfumeInput{Name: "Lavender", Description: "Calm floral scent"})
	require.NoError(t, err)
	assert.True(t, lavender.Available)

	_, err = svc.Create(ctx, schemas.PerfumeInput{Name: "Citrus", Description: "Fresh citrus scent", Available: boolPtr(false)})
	require.NoError(t, err)

	perfumes, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, perfumes, 2)
	assert.Equal(t, "Citrus", perfumes[0].Name)

	updated, err := svc.Update(ctx, lavender.ID, schemas.PerfumeInput{Name: "Lavender Mist", Description: "Calm floral scent", Available: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, "Lavender Mist", updated.Name)
	assert.False(t, updated.Available)

	require.NoError(t, svc.Delete(ctx, lavender.ID))
	_, err = svc.Get(ctx, lavender.ID)
	serviceErr := requireKind(t, err, KindNotFound)
	assert.Equal(t, "Perfume not found", serviceErr.Message)
}

func TestOrderCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("total is package price times weight", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		f := createFixtures(t, db)

		order, err := NewOrderService(db).Create(ctx, schemas.OrderInput{
			CustomerID: f.customer.ID, PackageID: f.pkg.ID, Weight: 2.5,
		})
		require.NoError(t, err)

		require.True(t, order.TotalAmount.Valid)
		assert.True(t, order.TotalAmount.Decimal.Equal(decimal.NewFromInt(37500)), "got %s", order.TotalAmount.Decimal)
		assert.Equal(t, models.StatusPending, order.Status)
		assert.Equal(t, models.PaymentPending, order.PaymentStatus)
		assert.False(t, order.OrderDate.IsZero())
		require.NotNil(t, order.Customer)
		require.NotNil(t, order.Package)
		assert.Nil(t, order.PaymentMethod)
	})

	t.Run("package without price gives null total", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		f := createFixtures(t, db)
		free, err := NewPackageService(db).Create(ctx, schemas.PackageInput{Name: "Free Rinse", Description: "Complimentary rinse service"})
		require.NoError(t, err)

		order, err := NewOrderService(db).Create(ctx, schemas.OrderInput{CustomerID: f.customer.ID, PackageID: free.ID, Weight: 4})
		require.NoError(t, err)
		assert.False(t, order.TotalAmount.Valid)
	})

	t.Run("explicit status and payment are kept", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		f := createFixtures(t, db)

		order, err := NewOrderService(db).Create(ctx, schemas.OrderInput{
			CustomerID: f.customer.ID, PackageID: f.pkg.ID, Weight: 1,
			Status: models.StatusProcessing, PaymentMethodID: &f.method.ID, PaymentStatus: models.PaymentPaid,
			Notes: stringPtr("Please wash gently"),
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusProcessing, order.Status)
		assert.Equal(t, models.PaymentPaid, order.PaymentStatus)
		require.NotNil(t, order.PaymentMethod)
		assert.Equal(t, "Cash", order.PaymentMethod.Name)
		require.NotNil(t, order.Notes)
		assert.Equal(t, "Please wash gently", *order.Notes)
	})

	missing := uint(999)
	tests := []struct {
		name    string
		input   func(f fixtures) schemas.OrderInput
		message string
	}{
		{
			name: "missing package",
			input: func(f fixtures) schemas.OrderInput {
				return schemas.OrderInput{CustomerID: f.customer.ID, PackageID: missing, Weight: 1}
			},
			message: "Package not found",
		},
		{
			name: "missing customer",
			input: func(f fixtures) schemas.OrderInput {
				return schemas.OrderInput{CustomerID: missing, PackageID: f.pkg.ID, Weight: 1}
			},
			message: "Customer not found",
		},
		{
			name: "missing payment method",
			input: func(f fixtures) schemas.OrderInput {
				return schemas.OrderInput{CustomerID: f.customer.ID, PackageID: f.pkg.ID, Weight: 1, PaymentMethodID: &missing}
			},
			message: "Payment method not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.OpenTestDB(t)
			f := createFixtures(t, db)

			_, err := NewOrderService(db).Create(ctx, tt.input(f))
			serviceErr := requireKind(t, err, KindNotFound)
			assert.Equal(t, tt.message, serviceErr.Message)
			assert.Equal(t, int64(0), countRows(t, db, &models.LaundryOrder{}))
		})
	}

	t.Run("weight is stored at two places and the total follows it", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		f := createFixtures(t, db)
		svc := NewOrderService(db)

		order, err := svc.Create(ctx, schemas.OrderInput{CustomerID: f.customer.ID, PackageID: f.pkg.ID, Weight: 2.555})
		require.NoError(t, err)
		assert.True(t, order.Weight.Equal(decimal.RequireFromString("2.56")), "got %s", order.Weight)
		assert.True(t, order.TotalAmount.Decimal.Equal(decimal.NewFromInt(38400)), "got %s", order.TotalAmount.Decimal)

		// an edit prefilled from the stored weight is not a weight change
		require.NoError(t, db.Model(&models.Package{}).Where("id = ?", f.pkg.ID).
			Update("price", decimal.NewFromInt(20000)).Error)
		updated, err := svc.Update(ctx, order.ID, schemas.OrderInput{
			CustomerID: f.customer.ID, PackageID: f.pkg.ID, Weight: order.Weight.InexactFloat64(),
		})
		require.NoError(t, err)
		assert.True(t, updated.TotalAmount.Decimal.Equal(decimal.NewFromInt(38400)), "got %s", updated.TotalAmount.Decimal)
	})

	t.Run("rejects weight that rounds to zero", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		f := createFixtures(t, db)

		_, err := NewOrderService(db).Create(ctx, schemas.OrderInput{CustomerID: f.customer.ID, PackageID: f.pkg.ID, Weight: 0.001})
		serviceErr := requireKind(t, err, KindValidationFailed)
		require.Len(t, serviceErr.Details, 1)
		assert.Equal(t, "weight", serviceErr.Details[0].Field)
		assert.Equal(t, int64(0), countRows(t, db, &models.LaundryOrder{}))
	})

	t.Run("rejects non-positive weight", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		f := createFixtures(t, db)

		_, err := NewOrderService(db).Create(ctx, schemas.OrderInput{CustomerID: f.customer.ID, PackageID: f.pkg.ID, Weight: -1})
		serviceErr := requireKind(t, err, KindValidationFailed)
		require.Len(t, serviceErr.Details, 1)
		assert.Equal(t, "weight", serviceErr.Details[0].Field)
	})
}

func TestOrderUpdate(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenTestDB(t)
	f := createFixtures(t, db)
	svc := NewOrderService(db)

	order, err := svc.Create(ctx, schemas.OrderInput{
		CustomerID: f.customer.ID, PackageID: f.pkg.ID, Weight: 2, Status: models.StatusProcessing,
	})
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Decimal.Equal(decimal.NewFromInt(30000)))

	// Reprice the package behind the order's back.
	require.NoError(t, db.Model(&models.Package{}).Where("id = ?", f.pkg.ID).
		Update("price", decimal.NewFromInt(20000)).Error)

	t.Run("unrelated change keeps total and status", func(t *testing.T) {
		updated, err := svc.Update(ctx, order.ID, schemas.OrderInput{
			CustomerID: f.customer.ID, PackageID: f.pkg.ID, Weight: 2, Notes: stringPtr("Extra rinse"),
		})
		require.NoError(t, err)
		assert.True(t, updated.TotalAmount.Decimal.Equal(decimal.NewFromInt(30000)), "got %s", updated.TotalAmount.Decimal)
		assert.Equal(t, models.StatusProcessing, updated.Status)
		require.NotNil(t, updated.Notes)
		assert.Equal(t, "Extra rinse", *updated.Notes)
	})

	t.Run("weight change recomputes total", func(t *testing.T) {
		updated, err := svc.Update(ctx, order.ID, schemas.OrderInput{
			CustomerID: f.customer.ID, PackageID: f.pkg.ID, Weight: 3, Status: models.StatusCompleted,
		})
		require.NoError(t, err)
		assert.True(t, updated.TotalAmount.Decimal.Equal(decimal.NewFromInt(60000)), "got %s", updated.TotalAmount.Decimal)
		assert.Equal(t, models.StatusCompleted, updated.Status)
	})

	t.Run("package change recomputes total", func(t *testing.T) {
		premium, err := NewPackageService(db).Create(ctx, schemas.PackageInput{
			Name: "Premium Wash", Description: "Premium washing with ironing", Price: float64Ptr(25000),
		})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, order.ID, schemas.OrderInput{CustomerID: f.customer.ID, PackageID: premium.ID, Weight: 3})
		require.NoError(t, err)
		assert.True(t, updated.TotalAmount.Decimal.Equal(decimal.NewFromInt(75000)), "got %s", updated.TotalAmount.Decimal)
		assert.Equal(t, "Premium Wash", updated.Package.Name)
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := svc.Update(ctx, 999, schemas.OrderInput{CustomerID: f.customer.ID, PackageID: f.pkg.ID, Weight: 1})
		serviceErr := requireKind(t, err, KindNotFound)
		assert.Equal(t, "Order not found", serviceErr.Message)
	})
}

func TestOrderListAndDelete(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenTestDB(t)
	f := createFixtures(t, db)
	svc := NewOrderService(db)

	first, err := svc.Create(ctx, schemas.OrderInput{CustomerID: f.customer.ID, PackageID: f.pkg.ID, Weight: 1})
	require.NoError(t, err)
	second, err := svc.Create(ctx, schemas.OrderInput{CustomerID: f.customer.ID, PackageID: f.pkg.ID, Weight: 2})
	require.NoError(t, err)

	orders, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.NotNil(t, orders[0].Customer)
	assert.NotNil(t, orders[0].Package)

	require.NoError(t, svc.Delete(ctx, first.ID))
	orders, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	_, err = svc.Get(ctx, first.ID)
	requireKind(t, err, KindNotFound)

	// The customer is free to go once its last order is gone.
	require.NoError(t, svc.Delete(ctx, second.ID))
	require.NoError(t, NewCustomerService(db).Delete(ctx, f.customer.ID))
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenTestDB(t)

	require.NoError(t, Seed(ctx, db))

	assert.Equal(t, int64(3), countRows(t, db, &models.PaymentMethod{}))
	assert.Equal(t, int64(3), countRows(t, db, &models.Package{}))
	assert.Equal(t, int64(3), countRows(t, db, &models.Customer{}))
	assert.Equal(t, int64(3), countRows(t, db, &models.LaundryOrder{}))

	var totals []models.LaundryOrder
	require.NoError(t, db.Order("id ASC").Find(&totals).Error)
	expected := []int64{37500, 75000, 52500}
	for i, order := range totals {
		assert.True(t, order.TotalAmount.Decimal.Equal(decimal.NewFromInt(expected[i])), "order %d total %s", i+1, order.TotalAmount.Decimal)
	}

	// Second run is a no-op.
	require.NoError(t, Seed(ctx, db))
	assert.Equal(t, int64(3), countRows(t, db, &models.LaundryOrder{}))
}

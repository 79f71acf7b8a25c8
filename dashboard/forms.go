package dashboard

import (
	"github.com/kendall-kelly/laundry-api/models"
	"github.com/kendall-kelly/laundry-api/schemas"
)

// Forms start from defaults when adding and from the stored row when editing.

// NewCustomerForm returns an empty customer form
func NewCustomerForm() schemas.CustomerInput {
	return schemas.CustomerInput{}
}

// CustomerFormFrom prefills the form from c
func CustomerFormFrom(c models.Customer) schemas.CustomerInput {
	return schemas.CustomerInput{Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address}
}

// NewPackageForm returns a package form that starts active
func NewPackageForm() schemas.PackageInput {
	return schemas.PackageInput{Active: boolPtr(true)}
}

// PackageFormFrom prefills the form from p
func PackageFormFrom(p models.Package) schemas.PackageInput {
	form := schemas.PackageInput{Name: p.Name, Description: p.Description, Active: boolPtr(p.Active)}
	if p.Price.Valid {
		price := p.Price.Decimal.InexactFloat64()
		form.Price = &price
	}
	return form
}

// NewPaymentMethodForm returns a payment method form that starts active
func NewPaymentMethodForm() schemas.PaymentMethodInput {
	return schemas.PaymentMethodInput{Active: boolPtr(true)}
}

// PaymentMethodFormFrom prefills the form from m
func PaymentMethodFormFrom(m models.PaymentMethod) schemas.PaymentMethodInput {
	return schemas.PaymentMethodInput{Name: m.Name, Description: m.Description, Active: boolPtr(m.Active)}
}

// NewPerfumeForm returns a perfume form that starts available
func NewPerfumeForm() schemas.PerfumeInput {
	return schemas.PerfumeInput{Available: boolPtr(true)}
}

// PerfumeFormFrom prefills the form from p
func PerfumeFormFrom(p models.Perfume) schemas.PerfumeInput {
	return schemas.PerfumeInput{Name: p.Name, Description: p.Description, Available: boolPtr(p.Available)}
}

// NewOrderForm returns an order form with Pending status and payment
func NewOrderForm() schemas.OrderInput {
	return schemas.OrderInput{Status: models.StatusPending, PaymentStatus: models.PaymentPending}
}

// OrderFormFrom keeps everything but the computed total
func OrderFormFrom(o models.LaundryOrder) schemas.OrderInput {
	orderDate := o.OrderDate
	return schemas.OrderInput{
		CustomerID:      o.CustomerID,
		PackageID:       o.PackageID,
		Weight:          o.Weight.InexactFloat64(),
		Status:          o.Status,
		PaymentMethodID: o.PaymentMethodID,
		PaymentStatus:   o.PaymentStatus,
		Notes:           o.Notes,
		OrderDate:       &orderDate,
	}
}

func boolPtr(b bool) *bool {
	return &b
}

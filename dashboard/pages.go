package dashboard

import (
	"github.com/kendall-kelly/laundry-api/client"
	"github.com/kendall-kelly/laundry-api/models"
	"github.com/kendall-kelly/laundry-api/schemas"
)

// Pages for the entities whose forms need no other lists
type (
	CustomerPage      = Page[models.Customer, schemas.CustomerInput]
	PackagePage       = Page[models.Package, schemas.PackageInput]
	PaymentMethodPage = Page[models.PaymentMethod, schemas.PaymentMethodInput]
	PerfumePage       = Page[models.Perfume, schemas.PerfumeInput]
)

// NewCustomerPage creates the customers page backed by c
func NewCustomerPage(c *client.Client, n Notifier, cf Confirmer) *CustomerPage {
	return newPage[models.Customer, schemas.CustomerInput](c.Customers, n, cf,
		func(m models.Customer) uint { return m.ID }, "Customer", "customers")
}

// NewPackagePage creates the packages page backed by c
func NewPackagePage(c *client.Client, n Notifier, cf Confirmer) *PackagePage {
	return newPage[models.Package, schemas.PackageInput](c.Packages, n, cf,
		func(m models.Package) uint { return m.ID }, "Package", "packages")
}

// NewPaymentMethodPage creates the payment methods page backed by c
func NewPaymentMethodPage(c *client.Client, n Notifier, cf Confirmer) *PaymentMethodPage {
	return newPage[models.PaymentMethod, schemas.PaymentMethodInput](c.PaymentMethods, n, cf,
		func(m models.PaymentMethod) uint { return m.ID }, "Payment method", "payment methods")
}

// NewPerfumePage creates the perfumes page backed by c
func NewPerfumePage(c *client.Client, n Notifier, cf Confirmer) *PerfumePage {
	return newPage[models.Perfume, schemas.PerfumeInput](c.Perfumes, n, cf,
		func(m models.Perfume) uint { return m.ID }, "Perfume", "perfumes")
}

package dashboard

import (
	"context"
	"errors"

	"github.com/kendall-kelly/laundry-api/client"
	"github.com/kendall-kelly/laundry-api/models"
	"github.com/kendall-kelly/laundry-api/schemas"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// OrderPage is the order list plus the customers, packages and payment
// methods its form selects from.
type OrderPage struct {
	*Page[models.LaundryOrder, schemas.OrderInput]

	client         *client.Client
	customers      []models.Customer
	packages       []models.Package
	paymentMethods []models.PaymentMethod
}

// NewOrderPage creates an order page backed by c
func NewOrderPage(c *client.Client, n Notifier, cf Confirmer) *OrderPage {
	return &OrderPage{
		Page: newPage[models.LaundryOrder, schemas.OrderInput](c.Orders, n, cf,
			func(o models.LaundryOrder) uint { return o.ID }, "Order", "orders"),
		client: c,
	}
}

// Load fetches orders and every selector list at the same time. Nothing is
// replaced unless all four calls succeed.
func (p *OrderPage) Load(ctx context.Context) bool {
	p.setLoading(true)
	defer p.setLoading(false)

	var (
		orders    client.Result[[]models.LaundryOrder]
		customers client.Result[[]models.Customer]
		packages  client.Result[[]models.Package]
		methods   client.Result[[]models.PaymentMethod]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		orders = p.client.Orders.List(gctx)
		return resultErr(orders.Success, orders.Error)
	})
	g.Go(func() error {
		customers = p.client.Customers.List(gctx)
		return resultErr(customers.Success, customers.Error)
	})
	g.Go(func() error {
		packages = p.client.Packages.List(gctx)
		return resultErr(packages.Success, packages.Error)
	})
	g.Go(func() error {
		methods = p.client.PaymentMethods.List(gctx)
		return resultErr(methods.Success, methods.Error)
	})
	if err := g.Wait(); err != nil {
		p.notifier.Error("Error", "Failed to load orders. Please try again.")
		return false
	}

	p.mu.Lock()
	p.items = orders.Data
	p.customers = customers.Data
	p.packages = packages.Data
	p.paymentMethods = methods.Data
	p.mu.Unlock()
	return true
}

// Customers returns the customers offered by the order form
func (p *OrderPage) Customers() []models.Customer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Customer(nil), p.customers...)
}

// PaymentMethods returns the active payment methods offered by the order form
func (p *OrderPage) PaymentMethods() []models.PaymentMethod {
	p.mu.Lock()
	defer p.mu.Unlock()
	var active []models.PaymentMethod
	for _, m := range p.paymentMethods {
		if m.Active {
			active = append(active, m)
		}
	}
	return active
}

// ActivePackages returns the packages an order may be placed under
func (p *OrderPage) ActivePackages() []models.Package {
	p.mu.Lock()
	defer p.mu.Unlock()
	var active []models.Package
	for _, pkg := range p.packages {
		if pkg.Active {
			active = append(active, pkg)
		}
	}
	return active
}

// EstimateTotal previews price * weight for the form. The server recomputes
// the stored total on every write.
func (p *OrderPage) EstimateTotal(packageID uint, weight float64) decimal.NullDecimal {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, pkg := range p.packages {
		if pkg.ID == packageID {
			return EstimateTotal(pkg, weight)
		}
	}
	return decimal.NullDecimal{}
}

// EstimateTotal is price * weight, or no value when either is missing. The
// weight is rounded the way the server stores it.
func EstimateTotal(pkg models.Package, weight float64) decimal.NullDecimal {
	rounded := schemas.OrderInput{Weight: weight}.WeightValue()
	if !rounded.IsPositive() {
		return decimal.NullDecimal{}
	}
	return models.ComputeTotal(pkg.Price, rounded)
}

func resultErr(ok bool, msg string) error {
	if ok {
		return nil
	}
	return errors.New(msg)
}

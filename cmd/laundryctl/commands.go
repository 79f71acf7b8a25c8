package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/kendall-kelly/laundry-api/dashboard"
	"github.com/kendall-kelly/laundry-api/models"
	"github.com/kendall-kelly/laundry-api/schemas"
)

// errFailed means the failure was already reported through the notifier
var errFailed = errors.New("command failed")

type command func(ctx context.Context, e *env, action string, fs *flag.FlagSet, args []string) error

var commands = map[string]command{
	"customers":       customersCmd,
	"packages":        packagesCmd,
	"payment-methods": paymentMethodsCmd,
	"perfumes":        perfumesCmd,
	"orders":          ordersCmd,
}

// crud runs list/add/edit/delete for one page
type crud[T any, I any] struct {
	page    *dashboard.Page[T, I]
	load    func(context.Context) bool
	render  func(io.Writer, []T) error
	blank   func() I
	from    func(T) I
	flags   func(fs *flag.FlagSet) func(*I) error
	preview func(w io.Writer, form I) error // runs before add, after load
}

func (c crud[T, I]) run(ctx context.Context, e *env, action string, fs *flag.FlagSet, args []string) error {
	id := fs.Uint("id", 0, "row id (edit, delete)")
	apply := c.flags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	load := c.load
	if load == nil {
		load = c.page.Load
	}

	switch action {
	case "list":
		if !load(ctx) {
			return errFailed
		}
		return c.render(e.out, c.page.Items())

	case "add":
		form := c.blank()
		if err := apply(&form); err != nil {
			return err
		}
		if c.preview != nil {
			if !load(ctx) {
				return errFailed
			}
			if err := c.preview(e.out, form); err != nil {
				return err
			}
		}
		if _, ok := c.page.Submit(ctx, 0, form); !ok {
			return errFailed
		}
		return nil

	case "edit":
		if *id == 0 {
			return fmt.Errorf("%w: edit needs -id", errUsage)
		}
		if !load(ctx) {
			return errFailed
		}
		item, ok := c.page.Find(*id)
		if !ok {
			return fmt.Errorf("no row with id %d", *id)
		}
		form := c.from(item)
		if err := apply(&form); err != nil {
			return err
		}
		if _, ok := c.page.Submit(ctx, *id, form); !ok {
			return errFailed
		}
		return nil

	case "delete":
		if *id == 0 {
			return fmt.Errorf("%w: delete needs -id", errUsage)
		}
		if !c.page.Delete(ctx, *id) {
			return errFailed
		}
		return nil
	}
	return fmt.Errorf("%w: unknown action %q", errUsage, action)
}

// setFlags calls fn with the name of every flag given on the command line
func setFlags(fs *flag.FlagSet, fn func(name string)) {
	fs.Visit(func(f *flag.Flag) { fn(f.Name) })
}

func customersCmd(ctx context.Context, e *env, action string, fs *flag.FlagSet, args []string) error {
	return crud[models.Customer, schemas.CustomerInput]{
		page:   dashboard.NewCustomerPage(e.client, e.notifier, e.confirmer),
		render: dashboard.RenderCustomers,
		blank:  dashboard.NewCustomerForm,
		from:   dashboard.CustomerFormFrom,
		flags: func(fs *flag.FlagSet) func(*schemas.CustomerInput) error {
			name := fs.String("name", "", "customer name")
			email := fs.String("email", "", "email address")
			phone := fs.String("phone", "", "phone number")
			address := fs.String("address", "", "postal address")
			return func(in *schemas.CustomerInput) error {
				setFlags(fs, func(flagName string) {
					switch flagName {
					case "name":
						in.Name = *name
					case "email":
						in.Email = *email
					case "phone":
						in.Phone = *phone
					case "address":
						in.Address = address
					}
				})
				return nil
			}
		},
	}.run(ctx, e, action, fs, args)
}

func packagesCmd(ctx context.Context, e *env, action string, fs *flag.FlagSet, args []string) error {
	return crud[models.Package, schemas.PackageInput]{
		page:   dashboard.NewPackagePage(e.client, e.notifier, e.confirmer),
		render: dashboard.RenderPackages,
		blank:  dashboard.NewPackageForm,
		from:   dashboard.PackageFormFrom,
		flags: func(fs *flag.FlagSet) func(*schemas.PackageInput) error {
			name := fs.String("name", "", "package name")
			description := fs.String("description", "", "description")
			price := fs.Float64("price", 0, "price per kg, 0 for none")
			active := fs.Bool("active", true, "offered for new orders")
			return func(in *schemas.PackageInput) error {
				setFlags(fs, func(flagName string) {
					switch flagName {
					case "name":
						in.Name = *name
					case "description":
						in.Description = *description
					case "price":
						in.Price = price
					case "active":
						in.Active = active
					}
				})
				return nil
			}
		},
	}.run(ctx, e, action, fs, args)
}

func paymentMethodsCmd(ctx context.Context, e *env, action string, fs *flag.FlagSet, args []string) error {
	return crud[models.PaymentMethod, schemas.PaymentMethodInput]{
		page:   dashboard.NewPaymentMethodPage(e.client, e.notifier, e.confirmer),
		render: dashboard.RenderPaymentMethods,
		blank:  dashboard.NewPaymentMethodForm,
		from:   dashboard.PaymentMethodFormFrom,
		flags: func(fs *flag.FlagSet) func(*schemas.PaymentMethodInput) error {
			name := fs.String("name", "", "method name")
			description := fs.String("description", "", "description")
			active := fs.Bool("active", true, "accepted for new orders")
			return func(in *schemas.PaymentMethodInput) error {
				setFlags(fs, func(flagName string) {
					switch flagName {
					case "name":
						in.Name = *name
					case "description":
						in.Description = *description
					case "active":
						in.Active = active
					}
				})
				return nil
			}
		},
	}.run(ctx, e, action, fs, args)
}

func perfumesCmd(ctx context.Context, e *env, action string, fs *flag.FlagSet, args []string) error {
	return crud[models.Perfume, schemas.PerfumeInput]{
		page:   dashboard.NewPerfumePage(e.client, e.notifier, e.confirmer),
		render: dashboard.RenderPerfumes,
		blank:  dashboard.NewPerfumeForm,
		from:   dashboard.PerfumeFormFrom,
		flags: func(fs *flag.FlagSet) func(*schemas.PerfumeInput) error {
			name := fs.String("name", "", "perfume name")
			description := fs.String("description", "", "description")
			available := fs.Bool("available", true, "in stock")
			return func(in *schemas.PerfumeInput) error {
				setFlags(fs, func(flagName string) {
					switch flagName {
					case "name":
						in.Name = *name
					case "description":
						in.Description = *description
					case "available":
						in.Available = available
					}
				})
				return nil
			}
		},
	}.run(ctx, e, action, fs, args)
}

func ordersCmd(ctx context.Context, e *env, action string, fs *flag.FlagSet, args []string) error {
	page := dashboard.NewOrderPage(e.client, e.notifier, e.confirmer)
	return crud[models.LaundryOrder, schemas.OrderInput]{
		page:   page.Page,
		load:   page.Load,
		render: dashboard.RenderOrders,
		blank:  dashboard.NewOrderForm,
		from:   dashboard.OrderFormFrom,
		flags: func(fs *flag.FlagSet) func(*schemas.OrderInput) error {
			customer := fs.Uint("customer", 0, "customer id")
			pkg := fs.Uint("package", 0, "package id")
			weight := fs.Float64("weight", 0, "weight in kg")
			status := fs.String("status", "", "Pending, Processing, Completed or Cancelled")
			method := fs.Uint("payment-method", 0, "payment method id, 0 for none")
			paymentStatus := fs.String("payment-status", "", "Pending or Paid")
			notes := fs.String("notes", "", "notes")
			date := fs.String("date", "", "order date (YYYY-MM-DD)")
			return func(in *schemas.OrderInput) (err error) {
				setFlags(fs, func(flagName string) {
					switch flagName {
					case "customer":
						in.CustomerID = *customer
					case "package":
						in.PackageID = *pkg
					case "weight":
						in.Weight = *weight
					case "status":
						in.Status = *status
					case "payment-method":
						in.PaymentMethodID = nil
						if *method != 0 {
							id := *method
							in.PaymentMethodID = &id
						}
					case "payment-status":
						in.PaymentStatus = *paymentStatus
					case "notes":
						in.Notes = notes
					case "date":
						t, parseErr := time.Parse("2006-01-02", *date)
						if parseErr != nil {
							err = fmt.Errorf("%w: -date must look like 2006-01-02", errUsage)
							return
						}
						in.OrderDate = &t
					}
				})
				return err
			}
		},
		preview: func(w io.Writer, form schemas.OrderInput) error {
			active := false
			for _, p := range page.ActivePackages() {
				if p.ID == form.PackageID {
					active = true
				}
			}
			if !active {
				return fmt.Errorf("package %d is not an active package", form.PackageID)
			}
			fmt.Fprintf(w, "Estimated total: %s\n", dashboard.FormatMoney(page.EstimateTotal(form.PackageID, form.Weight)))
			return nil
		},
	}.run(ctx, e, action, fs, args)
}

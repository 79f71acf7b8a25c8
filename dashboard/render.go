package dashboard

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/kendall-kelly/laundry-api/models"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cells ...interface{}) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(tw, strings.Join(parts, "\t"))
}

// FormatMoney renders an optional amount, "-" when absent
func FormatMoney(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return "-"
	}
	return amount.Decimal.StringFixed(2)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func RenderCustomers(w io.Writer, customers []models.Customer) error {
	tw := newTable(w, "ID", "NAME", "EMAIL", "PHONE", "ADDRESS", "RECENT ORDERS")
	for _, c := range customers {
		row(tw, c.ID, c.Name, c.Email, c.Phone, orDash(c.Address), len(c.Orders))
	}
	return tw.Flush()
}

func RenderPackages(w io.Writer, packages []models.Package) error {
	tw := newTable(w, "ID", "NAME", "PRICE", "ACTIVE", "DESCRIPTION")
	for _, p := range packages {
		row(tw, p.ID, p.Name, FormatMoney(p.Price), yesNo(p.Active), p.Description)
	}
	return tw.Flush()
}

func RenderPaymentMethods(w io.Writer, methods []models.PaymentMethod) error {
	tw := newTable(w, "ID", "NAME", "ACTIVE", "DESCRIPTION")
	for _, m := range methods {
		row(tw, m.ID, m.Name, yesNo(m.Active), m.Description)
	}
	return tw.Flush()
}

func RenderPerfumes(w io.Writer, perfumes []models.Perfume) error {
	tw := newTable(w, "ID", "NAME", "AVAILABLE", "DESCRIPTION")
	for _, p := range perfumes {
		row(tw, p.ID, p.Name, yesNo(p.Available), p.Description)
	}
	return tw.Flush()
}

func RenderOrders(w io.Writer, orders []models.LaundryOrder) error {
	tw := newTable(w, "ID", "DATE", "CUSTOMER", "PACKAGE", "WEIGHT (KG)", "TOTAL", "STATUS", "PAYMENT", "METHOD", "NOTES")
	for _, o := range orders {
		customer, pkg, method := "-", "-", "-"
		if o.Customer != nil {
			customer = o.Customer.Name
		}
		if o.Package != nil {
			pkg = o.Package.Name
		}
		if o.PaymentMethod != nil {
			method = o.PaymentMethod.Name
		}
		row(tw, o.ID, o.OrderDate.Format(dateLayout), customer, pkg, o.Weight.String(),
			FormatMoney(o.TotalAmount), o.Status, o.PaymentStatus, method, orDash(o.Notes))
	}
	return tw.Flush()
}

package projections

import (
	"context"
	"time"

	"frontdesk/internal/application/listutil"
	"frontdesk/internal/domain/invoice"
)

// GetInvoiceListQuery carries input for the invoice list projection.
type GetInvoiceListQuery struct {
	Params listutil.ListParams
	Now    time.Time // drives the overdue flag
}

// GetInvoiceListDeps holds dependencies for the invoice list projection.
type GetInvoiceListDeps struct {
	Invoices InvoiceReader
}

// InvoiceRow is one invoice with its display flags resolved.
type InvoiceRow struct {
	Invoice invoice.Invoice
	Overdue bool
}

// GetInvoiceListResult carries one page of invoices plus paging state.
type GetInvoiceListResult struct {
	Invoices []InvoiceRow
	Page     listutil.PageInfo
	Params   listutil.ListParams
}

// InvoiceSortColumns are the sort keys the invoice list accepts.
var InvoiceSortColumns = []string{"issuedAt", "guestName", "amount", "status"}

// QueryGetInvoiceList filters, sorts, and pages invoices.
func QueryGetInvoiceList(ctx context.Context, query GetInvoiceListQuery, deps GetInvoiceListDeps) (GetInvoiceListResult, error) {
	all, err := deps.Invoices.List(ctx)
	if err != nil {
		return GetInvoiceListResult{}, err
	}

	params := query.Params

	filtered := make([]invoice.Invoice, 0, len(all))
	statusFilter := params.Filters["status"]
	for _, inv := range all {
		if statusFilter != "" && inv.Status != statusFilter {
			continue
		}
		if params.Search != "" && !listutil.MatchesSearch(params.Search, inv.GuestName, inv.ID, inv.BookingID) {
			continue
		}
		filtered = append(filtered, inv)
	}

	listutil.SortSlice(filtered, params.Dir, invoiceLess(params.Sort))

	page := listutil.NewPageInfo(params.Page, params.PerPage, len(filtered))
	rows := make([]InvoiceRow, 0, page.PerPage)
	for _, inv := range listutil.Page(filtered, page) {
		rows = append(rows, InvoiceRow{Invoice: inv, Overdue: inv.Overdue(query.Now)})
	}

	return GetInvoiceListResult{Invoices: rows, Page: page, Params: params}, nil
}

func invoiceLess(sortCol string) func(a, b invoice.Invoice) bool {
	switch sortCol {
	case "guestName":
		return func(a, b invoice.Invoice) bool { return a.GuestName < b.GuestName }
	case "amount":
		return func(a, b invoice.Invoice) bool { return a.AmountCents < b.AmountCents }
	case "status":
		return func(a, b invoice.Invoice) bool { return a.Status < b.Status }
	default:
		return func(a, b invoice.Invoice) bool { return a.IssuedAt.Before(b.IssuedAt) }
	}
}

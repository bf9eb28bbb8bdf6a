package projections

import (
	"context"
	"testing"
	"time"

	"frontdesk/internal/application/listutil"
	"frontdesk/internal/domain/invoice"
)

type mockInvoiceListReader struct {
	invoices []invoice.Invoice
	err      error
}

func (m *mockInvoiceListReader) List(_ context.Context) ([]invoice.Invoice, error) {
	return m.invoices, m.err
}

func invoiceFixture() []invoice.Invoice {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 12, 0, 0, 0, time.Local) }
	return []invoice.Invoice{
		{ID: "inv-1", BookingID: "b1", GuestName: "Ariana Moana", AmountCents: 36000,
			Currency: "NZD", Status: invoice.StatusIssued, IssuedAt: day(2), DueAt: day(9)},
		{ID: "inv-2", BookingID: "b2", GuestName: "Mere Kingi", AmountCents: 18000,
			Currency: "NZD", Status: invoice.StatusPaid, IssuedAt: day(1), DueAt: day(8)},
		{ID: "inv-3", BookingID: "b3", GuestName: "Tom Ford", AmountCents: 54000,
			Currency: "NZD", Status: invoice.StatusIssued, IssuedAt: day(5), DueAt: day(30)},
	}
}

// TestQueryGetInvoiceList_OverdueFlag verifies only issued invoices past their
// due date are flagged.
func TestQueryGetInvoiceList_OverdueFlag(t *testing.T) {
	deps := GetInvoiceListDeps{Invoices: &mockInvoiceListReader{invoices: invoiceFixture()}}

	res, err := QueryGetInvoiceList(context.Background(), GetInvoiceListQuery{
		Params: listutil.ListParams{Page: 1, PerPage: 20},
		Now:    time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local),
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Invoices) != 3 {
		t.Fatalf("invoices=%d want 3", len(res.Invoices))
	}

	// Default sort is oldest issued first
	want := map[string]bool{"inv-2": false, "inv-1": true, "inv-3": false}
	for _, row := range res.Invoices {
		if row.Overdue != want[row.Invoice.ID] {
			t.Errorf("%s overdue = %v, want %v", row.Invoice.ID, row.Overdue, want[row.Invoice.ID])
		}
	}
	if res.Invoices[0].Invoice.ID != "inv-2" {
		t.Errorf("first = %s, want earliest issued", res.Invoices[0].Invoice.ID)
	}
}

// TestQueryGetInvoiceList_StatusFilterAndAmountSort narrows to issued invoices
// sorted by amount descending.
func TestQueryGetInvoiceList_StatusFilterAndAmountSort(t *testing.T) {
	deps := GetInvoiceListDeps{Invoices: &mockInvoiceListReader{invoices: invoiceFixture()}}

	res, err := QueryGetInvoiceList(context.Background(), GetInvoiceListQuery{
		Params: listutil.ListParams{Page: 1, PerPage: 20, Sort: "amount", Dir: "desc",
			Filters: map[string]string{"status": invoice.StatusIssued}},
		Now: time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local),
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Invoices) != 2 {
		t.Fatalf("invoices=%d want 2", len(res.Invoices))
	}
	if res.Invoices[0].Invoice.ID != "inv-3" || res.Invoices[1].Invoice.ID != "inv-1" {
		t.Errorf("order = %s, %s; want largest amount first",
			res.Invoices[0].Invoice.ID, res.Invoices[1].Invoice.ID)
	}
}

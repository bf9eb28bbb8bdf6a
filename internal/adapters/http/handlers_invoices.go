package web

import (
	"net/http"

	"frontdesk/internal/application/listutil"
	"frontdesk/internal/application/orchestrators"
	"frontdesk/internal/application/projections"
	"frontdesk/internal/domain/invoice"
)

// handleInvoices renders the invoice list with overdue flags.
func handleInvoices(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	params := listutil.Parse(r.URL.Query(), projections.InvoiceSortColumns, []string{"status"})

	result, err := projections.QueryGetInvoiceList(r.Context(), projections.GetInvoiceListQuery{
		Params: params,
		Now:    timeNow(),
	}, projections.GetInvoiceListDeps{Invoices: services.Invoices})
	if err != nil {
		renderTemplate(w, r, "invoices.html", map[string]any{
			"Result":      projections.GetInvoiceListResult{Params: params, Page: listutil.NewPageInfo(1, params.PerPage, 0)},
			"BackendDown": true,
		})
		return
	}

	renderTemplate(w, r, "invoices.html", map[string]any{
		"Result":   result,
		"Statuses": []string{invoice.StatusDraft, invoice.StatusIssued, invoice.StatusPaid, invoice.StatusVoid},
		"Notice":   r.URL.Query().Get("notice"),
		"Error":    r.URL.Query().Get("error"),
	})
}

// handleInvoiceDetail renders a single invoice with its booking context.
func handleInvoiceDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	inv, err := services.Invoices.Get(r.Context(), id)
	if err != nil {
		backendError(w, err)
		return
	}

	data := map[string]any{
		"Invoice": inv,
		"Overdue": inv.Overdue(timeNow()),
	}
	if b, err := services.Bookings.Get(r.Context(), inv.BookingID); err == nil {
		data["Booking"] = b
	}

	renderTemplate(w, r, "invoice_detail.html", data)
}

// handleInvoiceEmail emails an invoice copy to its guest.
func handleInvoiceEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	_, err := orchestrators.ExecuteSendInvoice(r.Context(), orchestrators.SendInvoiceInput{
		InvoiceID: r.FormValue("id"),
		Recipient: r.FormValue("recipient"),
		HotelName: HotelName,
	}, orchestrators.SendInvoiceDeps{
		Invoices: services.Invoices,
		Guests:   services.Guests,
		Sender:   emailSender,
	})
	if err != nil {
		safeRedirect(w, r, "/invoices?error="+queryEscape(err.Error()), "/invoices")
		return
	}

	safeRedirect(w, r, "/invoices?notice="+queryEscape("Invoice sent."), "/invoices")
}

package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"

	"frontdesk/internal/adapters/email"
	"frontdesk/internal/domain/guest"
	"frontdesk/internal/domain/invoice"
)

// InvoiceLookupService defines the backend calls SendInvoice needs.
type InvoiceLookupService interface {
	Get(ctx context.Context, id string) (invoice.Invoice, error)
}

// GuestLookupService resolves the recipient address from the guest record.
type GuestLookupService interface {
	List(ctx context.Context) ([]guest.Guest, error)
}

// SendInvoiceInput carries input for the send-invoice orchestrator.
type SendInvoiceInput struct {
	InvoiceID string
	Recipient string // optional override; defaults to the guest's email
	HotelName string
}

// SendInvoiceDeps holds dependencies for SendInvoice.
type SendInvoiceDeps struct {
	Invoices InvoiceLookupService
	Guests   GuestLookupService // optional: nil requires a Recipient override
	Sender   email.Sender
}

// ExecuteSendInvoice emails a copy of an invoice to its guest.
// PRE: InvoiceID is non-empty
// POST: Returns the provider message ID on success; draft and void invoices
// are never sent
func ExecuteSendInvoice(ctx context.Context, input SendInvoiceInput, deps SendInvoiceDeps) (string, error) {
	inv, err := deps.Invoices.Get(ctx, input.InvoiceID)
	if err != nil {
		return "", err
	}
	if inv.Status == invoice.StatusDraft || inv.Status == invoice.StatusVoid {
		return "", fmt.Errorf("invoice %s is %s and cannot be sent", inv.ID, inv.Status)
	}

	recipient := input.Recipient
	if recipient == "" && deps.Guests != nil {
		guests, err := deps.Guests.List(ctx)
		if err == nil {
			for _, g := range guests {
				if g.Name == inv.GuestName && g.Email != "" {
					recipient = g.Email
					break
				}
			}
		}
	}
	if recipient == "" {
		return "", errors.New("no email address on file for this guest")
	}

	result, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{recipient},
		Subject: fmt.Sprintf("Invoice %s from %s", inv.ID, input.HotelName),
		HTML:    invoiceHTML(inv, input.HotelName),
	})
	if err != nil {
		return "", err
	}

	slog.Info("invoice_emailed", "invoice_id", inv.ID, "to", recipient, "message_id", result.MessageID)
	return result.MessageID, nil
}

func invoiceHTML(inv invoice.Invoice, hotelName string) string {
	status := inv.Status
	return fmt.Sprintf(
		`<h2>%s</h2><p>Invoice <strong>%s</strong> for %s</p><p>Amount: %s<br>Status: %s<br>Issued: %s</p>`,
		html.EscapeString(hotelName),
		html.EscapeString(inv.ID),
		html.EscapeString(inv.GuestName),
		html.EscapeString(inv.AmountDisplay()),
		html.EscapeString(status),
		inv.IssuedAt.Format("2 January 2006"),
	)
}

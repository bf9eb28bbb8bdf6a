package orchestrators

import (
	"context"
	"strings"
	"testing"
	"time"

	"frontdesk/internal/adapters/email"
	"frontdesk/internal/domain/guest"
	"frontdesk/internal/domain/invoice"
)

type mockInvoiceLookup struct {
	invoice invoice.Invoice
	err     error
}

// Get returns the seeded invoice.
func (m *mockInvoiceLookup) Get(_ context.Context, _ string) (invoice.Invoice, error) {
	return m.invoice, m.err
}

type mockGuestLookup struct {
	guests []guest.Guest
}

// List returns the seeded guests.
func (m *mockGuestLookup) List(_ context.Context) ([]guest.Guest, error) {
	return m.guests, nil
}

type recordingSender struct {
	sent []email.SendRequest
}

// Send records the request and returns a fixed message ID.
func (s *recordingSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	s.sent = append(s.sent, req)
	return email.SendResult{MessageID: "msg-1", SentAt: time.Now()}, nil
}

func issuedInvoice() invoice.Invoice {
	return invoice.Invoice{
		ID: "inv-1", BookingID: "b1", GuestName: "Ariana Moana",
		AmountCents: 36000, Currency: "NZD", Status: invoice.StatusIssued,
		IssuedAt: time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC),
	}
}

// TestExecuteSendInvoice_ResolvesGuestEmail verifies the recipient comes from
// the guest record when no override is given.
func TestExecuteSendInvoice_ResolvesGuestEmail(t *testing.T) {
	sender := &recordingSender{}
	deps := SendInvoiceDeps{
		Invoices: &mockInvoiceLookup{invoice: issuedInvoice()},
		Guests: &mockGuestLookup{guests: []guest.Guest{
			{ID: "g1", Name: "Ariana Moana", Email: "ariana@example.com"},
		}},
		Sender: sender,
	}

	msgID, err := ExecuteSendInvoice(context.Background(),
		SendInvoiceInput{InvoiceID: "inv-1", HotelName: "Harbourview Hotel"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msgID != "msg-1" {
		t.Errorf("message id = %q", msgID)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sent = %d want 1", len(sender.sent))
	}
	req := sender.sent[0]
	if len(req.To) != 1 || req.To[0] != "ariana@example.com" {
		t.Errorf("recipient = %v", req.To)
	}
	if !strings.Contains(req.Subject, "inv-1") {
		t.Errorf("subject = %q", req.Subject)
	}
	if !strings.Contains(req.HTML, "NZD 360.00") {
		t.Errorf("body lacks amount: %q", req.HTML)
	}
}

// TestExecuteSendInvoice_DraftNotSent verifies drafts never leave the hotel.
func TestExecuteSendInvoice_DraftNotSent(t *testing.T) {
	inv := issuedInvoice()
	inv.Status = invoice.StatusDraft
	sender := &recordingSender{}
	deps := SendInvoiceDeps{
		Invoices: &mockInvoiceLookup{invoice: inv},
		Sender:   sender,
	}

	_, err := ExecuteSendInvoice(context.Background(),
		SendInvoiceInput{InvoiceID: "inv-1", Recipient: "ariana@example.com"}, deps)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(sender.sent) != 0 {
		t.Errorf("draft was sent: %v", sender.sent)
	}
}

// TestExecuteSendInvoice_NoAddress verifies a clear error when the guest has
// no email on file.
func TestExecuteSendInvoice_NoAddress(t *testing.T) {
	deps := SendInvoiceDeps{
		Invoices: &mockInvoiceLookup{invoice: issuedInvoice()},
		Guests:   &mockGuestLookup{},
		Sender:   &recordingSender{},
	}

	_, err := ExecuteSendInvoice(context.Background(), SendInvoiceInput{InvoiceID: "inv-1"}, deps)
	if err == nil || !strings.Contains(err.Error(), "no email address") {
		t.Fatalf("err = %v", err)
	}
}

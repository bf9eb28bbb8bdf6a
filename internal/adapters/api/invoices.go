package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"frontdesk/internal/domain/invoice"
)

// InvoiceService is the billing surface of the property-management backend.
// Invoices are created and mutated by the backend; this app only reads them
// and emails copies.
type InvoiceService interface {
	List(ctx context.Context) ([]invoice.Invoice, error)
	Get(ctx context.Context, id string) (invoice.Invoice, error)
}

type invoiceDTO struct {
	ID          string    `json:"id"`
	BookingID   string    `json:"bookingId"`
	GuestName   string    `json:"guestName"`
	AmountCents int       `json:"amountCents"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	IssuedAt    time.Time `json:"issuedAt"`
	DueAt       time.Time `json:"dueAt"`
}

// HTTPInvoiceService implements InvoiceService over the backend REST API.
type HTTPInvoiceService struct {
	client *Client
}

// NewInvoiceService creates an InvoiceService bound to the given client.
func NewInvoiceService(client *Client) *HTTPInvoiceService {
	return &HTTPInvoiceService{client: client}
}

// List fetches all invoices.
func (s *HTTPInvoiceService) List(ctx context.Context) ([]invoice.Invoice, error) {
	var dtos []invoiceDTO
	if err := s.client.do(ctx, http.MethodGet, "/invoices", nil, nil, &dtos); err != nil {
		return nil, err
	}
	invoices := make([]invoice.Invoice, 0, len(dtos))
	for _, d := range dtos {
		invoices = append(invoices, invoice.Invoice(d))
	}
	return invoices, nil
}

// Get fetches one invoice by ID.
func (s *HTTPInvoiceService) Get(ctx context.Context, id string) (invoice.Invoice, error) {
	var dto invoiceDTO
	if err := s.client.do(ctx, http.MethodGet, "/invoices/"+url.PathEscape(id), nil, nil, &dto); err != nil {
		return invoice.Invoice{}, err
	}
	return invoice.Invoice(dto), nil
}

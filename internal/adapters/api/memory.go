package api

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"frontdesk/internal/domain/booking"
	"frontdesk/internal/domain/guest"
	"frontdesk/internal/domain/invoice"
	"frontdesk/internal/domain/rate"
	"frontdesk/internal/domain/room"
	"frontdesk/internal/domain/user"
)

// MemoryBackend implements every service interface in-memory so the app runs
// standalone without a configured backend. It simulates the backend's status
// transitions; it is used in development and by tests.
type MemoryBackend struct {
	mu       sync.RWMutex
	bookings map[string]booking.Booking
	rooms    map[string]room.Room
	rates    map[string]rate.Plan
	guests   map[string]guest.Guest
	invoices map[string]invoice.Invoice
	users    map[string]user.User
	pwHashes map[string][]byte // user ID -> bcrypt hash
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		bookings: make(map[string]booking.Booking),
		rooms:    make(map[string]room.Room),
		rates:    make(map[string]rate.Plan),
		guests:   make(map[string]guest.Guest),
		invoices: make(map[string]invoice.Invoice),
		users:    make(map[string]user.User),
		pwHashes: make(map[string][]byte),
	}
}

// --- BookingService ---

// ListByDateRange returns bookings overlapping [startDate, endDate].
func (m *MemoryBackend) ListByDateRange(_ context.Context, startDate, endDate string) ([]booking.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []booking.Booking
	for _, b := range m.bookings {
		if b.CheckInDate <= endDate && startDate <= b.CheckOutDate {
			out = append(out, b)
		}
	}
	sortBookings(out)
	return out, nil
}

// List returns all bookings.
func (m *MemoryBackend) List(_ context.Context) ([]booking.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]booking.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		out = append(out, b)
	}
	sortBookings(out)
	return out, nil
}

// Get returns one booking.
func (m *MemoryBackend) Get(_ context.Context, id string) (booking.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.bookings[id]
	if !ok {
		return booking.Booking{}, fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}
	return b, nil
}

// Create stores a new PENDING booking, resolving room and guest summaries.
func (m *MemoryBackend) Create(_ context.Context, b booking.Booking) (booking.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = uuid.New().String()
	b.Status = booking.StatusPending
	if r, ok := m.rooms[b.RoomID]; ok {
		b.RoomNumber = r.Number
		b.RoomType = r.Type
	}
	if g, ok := m.guests[b.GuestID]; ok {
		b.GuestName = g.Name
	}
	m.bookings[b.ID] = b
	return b, nil
}

// Update replaces the editable fields of an existing booking.
func (m *MemoryBackend) Update(_ context.Context, b booking.Booking) (booking.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.bookings[b.ID]
	if !ok {
		return booking.Booking{}, fmt.Errorf("booking %s: %w", b.ID, ErrNotFound)
	}
	existing.CheckInDate = b.CheckInDate
	existing.CheckOutDate = b.CheckOutDate
	existing.Adults = b.Adults
	existing.Children = b.Children
	existing.Notes = b.Notes
	if b.RoomID != "" && b.RoomID != existing.RoomID {
		existing.RoomID = b.RoomID
		if r, ok := m.rooms[b.RoomID]; ok {
			existing.RoomNumber = r.Number
			existing.RoomType = r.Type
		}
	}
	m.bookings[existing.ID] = existing
	return existing, nil
}

// CheckIn transitions an awaiting booking to CHECKED_IN and occupies the room.
func (m *MemoryBackend) CheckIn(_ context.Context, id string) (booking.Booking, error) {
	return m.transition(id, booking.StatusCheckedIn, func(b booking.Booking) error {
		if !b.Status.Awaiting() {
			return fmt.Errorf("booking %s is %s, not awaiting arrival: %w", id, b.Status, ErrConflict)
		}
		return nil
	})
}

// CheckOut transitions an in-house booking to CHECKED_OUT and frees the room.
func (m *MemoryBackend) CheckOut(_ context.Context, id string) (booking.Booking, error) {
	return m.transition(id, booking.StatusCheckedOut, func(b booking.Booking) error {
		if b.Status != booking.StatusCheckedIn {
			return fmt.Errorf("booking %s is %s, not in-house: %w", id, b.Status, ErrConflict)
		}
		return nil
	})
}

// Cancel transitions an awaiting booking to CANCELLED.
func (m *MemoryBackend) Cancel(_ context.Context, id string) (booking.Booking, error) {
	return m.transition(id, booking.StatusCancelled, func(b booking.Booking) error {
		if b.Status == booking.StatusCheckedIn || b.Status == booking.StatusCheckedOut {
			return fmt.Errorf("booking %s is %s and cannot be cancelled: %w", id, b.Status, ErrConflict)
		}
		return nil
	})
}

func (m *MemoryBackend) transition(id string, to booking.Status, check func(booking.Booking) error) (booking.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return booking.Booking{}, fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}
	if err := check(b); err != nil {
		return booking.Booking{}, err
	}
	b.Status = to
	m.bookings[id] = b

	if r, ok := m.rooms[b.RoomID]; ok {
		switch to {
		case booking.StatusCheckedIn:
			r.Status = room.StatusOccupied
		case booking.StatusCheckedOut:
			r.Status = room.StatusCleaning
		case booking.StatusCancelled:
			if r.Status == room.StatusReserved {
				r.Status = room.StatusAvailable
			}
		}
		m.rooms[r.ID] = r
	}
	return b, nil
}

// --- RoomService ---

// ListRooms is exposed via the RoomService interface as List; disambiguated
// through the service view types below.

type memoryRoomService struct{ m *MemoryBackend }
type memoryRateService struct{ m *MemoryBackend }
type memoryGuestService struct{ m *MemoryBackend }
type memoryInvoiceService struct{ m *MemoryBackend }
type memoryUserService struct{ m *MemoryBackend }

// Rooms returns the RoomService view of the backend.
func (m *MemoryBackend) Rooms() RoomService { return memoryRoomService{m} }

// Rates returns the RateService view of the backend.
func (m *MemoryBackend) Rates() RateService { return memoryRateService{m} }

// Guests returns the GuestService view of the backend.
func (m *MemoryBackend) Guests() GuestService { return memoryGuestService{m} }

// Invoices returns the InvoiceService view of the backend.
func (m *MemoryBackend) Invoices() InvoiceService { return memoryInvoiceService{m} }

// Users returns the UserService view of the backend.
func (m *MemoryBackend) Users() UserService { return memoryUserService{m} }

func (s memoryRoomService) List(_ context.Context) ([]room.Room, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	out := make([]room.Room, 0, len(s.m.rooms))
	for _, r := range s.m.rooms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (s memoryRoomService) Get(_ context.Context, id string) (room.Room, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	r, ok := s.m.rooms[id]
	if !ok {
		return room.Room{}, fmt.Errorf("room %s: %w", id, ErrNotFound)
	}
	return r, nil
}

func (s memoryRoomService) Save(_ context.Context, r room.Room) (room.Room, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	s.m.rooms[r.ID] = r
	return r, nil
}

func (s memoryRoomService) SetStatus(_ context.Context, id, status string) (room.Room, error) {
	if !room.ValidStatus(status) {
		return room.Room{}, fmt.Errorf("status %q: %w", status, ErrConflict)
	}
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	r, ok := s.m.rooms[id]
	if !ok {
		return room.Room{}, fmt.Errorf("room %s: %w", id, ErrNotFound)
	}
	r.Status = status
	s.m.rooms[id] = r
	return r, nil
}

func (s memoryRateService) List(_ context.Context) ([]rate.Plan, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	out := make([]rate.Plan, 0, len(s.m.rates))
	for _, p := range s.m.rates {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s memoryRateService) Get(_ context.Context, id string) (rate.Plan, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	p, ok := s.m.rates[id]
	if !ok {
		return rate.Plan{}, fmt.Errorf("rate plan %s: %w", id, ErrNotFound)
	}
	return p, nil
}

func (s memoryRateService) Save(_ context.Context, p rate.Plan) (rate.Plan, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	s.m.rates[p.ID] = p
	return p, nil
}

func (s memoryGuestService) List(_ context.Context) ([]guest.Guest, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	out := make([]guest.Guest, 0, len(s.m.guests))
	for _, g := range s.m.guests {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s memoryGuestService) Get(_ context.Context, id string) (guest.Guest, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	g, ok := s.m.guests[id]
	if !ok {
		return guest.Guest{}, fmt.Errorf("guest %s: %w", id, ErrNotFound)
	}
	return g, nil
}

func (s memoryGuestService) Save(_ context.Context, g guest.Guest) (guest.Guest, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	s.m.guests[g.ID] = g
	return g, nil
}

func (s memoryInvoiceService) List(_ context.Context) ([]invoice.Invoice, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	out := make([]invoice.Invoice, 0, len(s.m.invoices))
	for _, i := range s.m.invoices {
		out = append(out, i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s memoryInvoiceService) Get(_ context.Context, id string) (invoice.Invoice, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	inv, ok := s.m.invoices[id]
	if !ok {
		return invoice.Invoice{}, fmt.Errorf("invoice %s: %w", id, ErrNotFound)
	}
	return inv, nil
}

func (s memoryUserService) Login(_ context.Context, email, password string) (user.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	for _, u := range s.m.users {
		if u.Email != email {
			continue
		}
		if !u.Active {
			return user.User{}, fmt.Errorf("account disabled: %w", ErrUnauthorized)
		}
		if err := bcrypt.CompareHashAndPassword(s.m.pwHashes[u.ID], []byte(password)); err != nil {
			return user.User{}, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
		}
		return u, nil
	}
	return user.User{}, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
}

func (s memoryUserService) List(_ context.Context) ([]user.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	out := make([]user.User, 0, len(s.m.users))
	for _, u := range s.m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (s memoryUserService) Get(_ context.Context, id string) (user.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	u, ok := s.m.users[id]
	if !ok {
		return user.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return u, nil
}

func (s memoryUserService) Save(_ context.Context, u user.User) (user.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	s.m.users[u.ID] = u
	return u, nil
}

func (s memoryUserService) Deactivate(_ context.Context, id string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	u, ok := s.m.users[id]
	if !ok {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	u.Active = false
	s.m.users[id] = u
	return nil
}

// SetPassword stores a bcrypt hash for a user. Used by seeding and tests.
func (m *MemoryBackend) SetPassword(userID, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pwHashes[userID] = hash
	return nil
}

// AddInvoice inserts an invoice directly. Used by seeding and tests.
func (m *MemoryBackend) AddInvoice(inv invoice.Invoice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	m.invoices[inv.ID] = inv
}

// AddBooking inserts a booking directly with its given status and returns
// the stored record. Used by seeding and tests; Create always starts
// bookings as PENDING.
func (m *MemoryBackend) AddBooking(b booking.Booking) booking.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	m.bookings[b.ID] = b
	return b
}

func sortBookings(bs []booking.Booking) {
	sort.Slice(bs, func(i, j int) bool {
		if bs[i].CheckInDate != bs[j].CheckInDate {
			return bs[i].CheckInDate < bs[j].CheckInDate
		}
		return bs[i].RoomNumber < bs[j].RoomNumber
	})
}

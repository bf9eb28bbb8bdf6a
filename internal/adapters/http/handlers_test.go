package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"frontdesk/internal/adapters/api"
	"frontdesk/internal/adapters/http/middleware"
	activityStore "frontdesk/internal/adapters/storage/activity"
	activityDomain "frontdesk/internal/domain/activity"
	"frontdesk/internal/domain/booking"
	prefsDomain "frontdesk/internal/domain/prefs"
	"frontdesk/internal/domain/user"
)

func TestMain(m *testing.M) {
	// go test runs from the package directory
	templatesDir = "templates"
	os.Exit(m.Run())
}

type mockPrefsStore struct {
	prefs map[string]prefsDomain.Prefs
}

// GetByUserID returns stored preferences or defaults.
func (m *mockPrefsStore) GetByUserID(_ context.Context, userID string) (prefsDomain.Prefs, error) {
	if p, ok := m.prefs[userID]; ok {
		return p, nil
	}
	return prefsDomain.Defaults(userID), nil
}

// Save stores preferences in memory.
func (m *mockPrefsStore) Save(_ context.Context, value prefsDomain.Prefs) error {
	if m.prefs == nil {
		m.prefs = make(map[string]prefsDomain.Prefs)
	}
	m.prefs[value.UserID] = value
	return nil
}

type recordingActivityStore struct {
	entries []activityDomain.Entry
}

// Save appends the entry.
func (m *recordingActivityStore) Save(_ context.Context, value activityDomain.Entry) error {
	m.entries = append(m.entries, value)
	return nil
}

// List returns entries newest-last (order is irrelevant for these tests).
func (m *recordingActivityStore) List(_ context.Context, filter activityStore.ListFilter) ([]activityDomain.Entry, error) {
	out := m.entries
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// Count returns the number of stored entries.
func (m *recordingActivityStore) Count(_ context.Context, _ activityStore.ListFilter) (int, error) {
	return len(m.entries), nil
}

// failingBookings implements api.BookingService but every call fails.
type failingBookings struct{}

func (failingBookings) ListByDateRange(context.Context, string, string) ([]booking.Booking, error) {
	return nil, api.ErrUnavailable
}
func (failingBookings) List(context.Context) ([]booking.Booking, error) {
	return nil, api.ErrUnavailable
}
func (failingBookings) Get(context.Context, string) (booking.Booking, error) {
	return booking.Booking{}, api.ErrUnavailable
}
func (failingBookings) Create(context.Context, booking.Booking) (booking.Booking, error) {
	return booking.Booking{}, api.ErrUnavailable
}
func (failingBookings) Update(context.Context, booking.Booking) (booking.Booking, error) {
	return booking.Booking{}, api.ErrUnavailable
}
func (failingBookings) CheckIn(context.Context, string) (booking.Booking, error) {
	return booking.Booking{}, api.ErrUnavailable
}
func (failingBookings) CheckOut(context.Context, string) (booking.Booking, error) {
	return booking.Booking{}, api.ErrUnavailable
}
func (failingBookings) Cancel(context.Context, string) (booking.Booking, error) {
	return booking.Booking{}, api.ErrUnavailable
}

// setupDemoBackend wires the handler globals to a seeded in-memory backend.
func setupDemoBackend(t *testing.T) (*api.MemoryBackend, *recordingActivityStore) {
	t.Helper()

	backend := api.NewMemoryBackend()
	if err := backend.SeedDemo(context.Background(), time.Now()); err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}

	audit := &recordingActivityStore{}
	services = &Services{
		Bookings: backend,
		Rooms:    backend.Rooms(),
		Rates:    backend.Rates(),
		Guests:   backend.Guests(),
		Invoices: backend.Invoices(),
		Users:    backend.Users(),
	}
	stores = &Stores{
		PrefsStore:    &mockPrefsStore{},
		ActivityStore: audit,
	}
	sessions = middleware.NewSessionStore()
	return backend, audit
}

func deskSession() middleware.Session {
	return middleware.Session{UserID: "u-desk", Email: "desk@hotel.test", Name: "Desk", Role: user.RoleReceptionist}
}

func withSession(r *http.Request, sess middleware.Session) *http.Request {
	return r.WithContext(middleware.ContextWithSession(r.Context(), sess))
}

// TestHandleFrontDesk_RendersCalendar verifies the week view shows today's
// seeded stays.
func TestHandleFrontDesk_RendersCalendar(t *testing.T) {
	setupDemoBackend(t)

	req := withSession(httptest.NewRequest("GET", "/frontdesk?view=week", nil), deskSession())
	rec := httptest.NewRecorder()
	handleFrontDesk(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Front desk") {
		t.Error("page title missing")
	}
	// The demo seed places an arrival and an in-house stay on today.
	if !strings.Contains(body, "Check in") {
		t.Error("no check-in action rendered for today's arrival")
	}
	if !strings.Contains(body, "Check out") {
		t.Error("no check-out action rendered for the in-house stay")
	}
}

// TestHandleFrontDesk_BackendDown verifies the calendar renders empty with a
// warning instead of an error page.
func TestHandleFrontDesk_BackendDown(t *testing.T) {
	setupDemoBackend(t)
	services.Bookings = failingBookings{}

	req := withSession(httptest.NewRequest("GET", "/frontdesk?view=month", nil), deskSession())
	rec := httptest.NewRecorder()
	handleFrontDesk(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not reachable") {
		t.Error("warning banner missing")
	}
}

// TestHandleFrontDeskAction_CheckIn verifies the posted action transitions the
// booking, records activity, and redirects back to the calendar.
func TestHandleFrontDeskAction_CheckIn(t *testing.T) {
	backend, audit := setupDemoBackend(t)

	// Find the seeded arrival awaiting check-in today.
	today := time.Now().Format("2006-01-02")
	all, _ := backend.List(context.Background())
	var target booking.Booking
	for _, b := range all {
		if b.CheckInDate == today && b.Status.Awaiting() {
			target = b
			break
		}
	}
	if target.ID == "" {
		t.Fatal("no seeded arrival for today")
	}

	form := url.Values{
		"action":        {"checkIn"},
		"reservationId": {target.ID},
		"redirectTo":    {"/frontdesk?view=week"},
	}
	req := httptest.NewRequest("POST", "/frontdesk/action", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withSession(req, deskSession())
	rec := httptest.NewRecorder()
	handleFrontDeskAction(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/frontdesk?view=week" {
		t.Errorf("redirect = %q", loc)
	}

	updated, err := backend.Get(context.Background(), target.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if updated.Status != booking.StatusCheckedIn {
		t.Errorf("status = %s", updated.Status)
	}

	if len(audit.entries) != 1 || audit.entries[0].Action != activityDomain.ActionCheckIn {
		t.Errorf("audit = %+v", audit.entries)
	}
}

// TestHandleFrontDeskAction_FailureRedirectsWithError verifies a rejected
// action lands back on the calendar with an inline error.
func TestHandleFrontDeskAction_FailureRedirectsWithError(t *testing.T) {
	setupDemoBackend(t)
	services.Bookings = failingBookings{}

	form := url.Values{
		"action":        {"checkOut"},
		"reservationId": {"b-missing"},
	}
	req := httptest.NewRequest("POST", "/frontdesk/action", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withSession(req, deskSession())
	rec := httptest.NewRecorder()
	handleFrontDeskAction(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "error=") {
		t.Errorf("redirect lacks inline error: %q", loc)
	}
}

// TestHandleLogin verifies the demo credentials round-trip into a session.
func TestHandleLogin(t *testing.T) {
	setupDemoBackend(t)

	form := url.Values{
		"email":    {api.DemoDeskEmail},
		"password": {api.DemoPassword},
	}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handleLogin(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "frontdesk_session" && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("session cookie not set")
	}
}

// TestHandleLogin_BadPassword verifies rejection renders the form again.
func TestHandleLogin_BadPassword(t *testing.T) {
	setupDemoBackend(t)

	form := url.Values{
		"email":    {api.DemoDeskEmail},
		"password": {"nope"},
	}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handleLogin(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid email or password") {
		t.Error("error message missing")
	}
}

// TestHandleBookings_List verifies the list page renders seeded bookings.
func TestHandleBookings_List(t *testing.T) {
	backend, _ := setupDemoBackend(t)

	all, _ := backend.List(context.Background())
	if len(all) == 0 {
		t.Fatal("no seeded bookings")
	}

	req := withSession(httptest.NewRequest("GET", "/bookings", nil), deskSession())
	rec := httptest.NewRecorder()
	handleBookings(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), all[0].GuestName) {
		t.Error("seeded guest missing from the list")
	}
}

// TestHandleRoomBoard verifies every status column renders.
func TestHandleRoomBoard(t *testing.T) {
	setupDemoBackend(t)

	req := withSession(httptest.NewRequest("GET", "/rooms/board", nil), deskSession())
	rec := httptest.NewRecorder()
	handleRoomBoard(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, heading := range []string{"Available", "Occupied", "Cleaning", "Out of service"} {
		if !strings.Contains(body, heading) {
			t.Errorf("column %q missing", heading)
		}
	}
}

// TestHandleSettings_SaveAndReload verifies preferences persist per user.
func TestHandleSettings_SaveAndReload(t *testing.T) {
	setupDemoBackend(t)

	form := url.Values{
		"default_view": {"week"},
		"per_page":     {"50"},
	}
	req := httptest.NewRequest("POST", "/settings", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withSession(req, deskSession())
	rec := httptest.NewRecorder()
	handleSettings(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}

	prefs, err := stores.PrefsStore.GetByUserID(context.Background(), "u-desk")
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if prefs.DefaultView != "week" || prefs.PerPage != 50 {
		t.Errorf("prefs = %+v", prefs)
	}
}

// TestHandleAdminUsers verifies the staff list renders for an admin session.
func TestHandleAdminUsers(t *testing.T) {
	setupDemoBackend(t)

	sess := middleware.Session{UserID: "u-admin", Email: "admin@hotel.test", Name: "Admin", Role: user.RoleAdmin}
	req := withSession(httptest.NewRequest("GET", "/admin/users", nil), sess)
	rec := httptest.NewRecorder()
	handleAdminUsers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), api.DemoAdminEmail) {
		t.Error("seeded admin account missing")
	}
}

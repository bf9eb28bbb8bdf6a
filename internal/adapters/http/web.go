package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"frontdesk/internal/adapters/api"
	"frontdesk/internal/adapters/email"
	"frontdesk/internal/adapters/http/middleware"
	activityStore "frontdesk/internal/adapters/storage/activity"
	prefsStore "frontdesk/internal/adapters/storage/prefs"
)

// Services holds the remote backend services the handlers talk to.
type Services struct {
	Bookings api.BookingService
	Rooms    api.RoomService
	Rates    api.RateService
	Guests   api.GuestService
	Invoices api.InvoiceService
	Users    api.UserService
}

// Stores holds the local storage dependencies.
type Stores struct {
	PrefsStore    prefsStore.Store
	ActivityStore activityStore.Store
}

// loadCSRFKey reads the CSRF secret from FRONTDESK_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("FRONTDESK_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("FRONTDESK_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("FRONTDESK_ENV") == "production" {
		log.Fatal("FRONTDESK_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set FRONTDESK_CSRF_KEY for production.")
	return key
}

// Global services instance (set by NewMux)
var services *Services

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string

// HotelName is the display name used in page titles and outgoing email.
var HotelName = "Harbourview Hotel"

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from string) {
	emailSender = sender
	emailFromAddress = from
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, svcs *Services, s *Stores) http.Handler {
	services = svcs
	stores = s
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("FRONTDESK_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	csrfKey := loadCSRFKey()
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> Auth -> CSRF -> SecurityHeaders -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(),
	)
}

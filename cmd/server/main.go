package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"frontdesk/internal/adapters/api"
	emailPkg "frontdesk/internal/adapters/email"
	web "frontdesk/internal/adapters/http"
	"frontdesk/internal/adapters/storage"
	activityStorePkg "frontdesk/internal/adapters/storage/activity"
	prefsStorePkg "frontdesk/internal/adapters/storage/prefs"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	env := envOrDefault("FRONTDESK_ENV", "development")

	// Local database holds preferences and the activity log. WAL mode with a
	// busy timeout so concurrent handler writes do not trip SQLITE_BUSY.
	dbPath := envOrDefault("FRONTDESK_DB", "frontdesk.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	stores := &web.Stores{
		PrefsStore:    prefsStorePkg.NewSQLiteStore(db),
		ActivityStore: activityStorePkg.NewSQLiteStore(db),
	}

	// FRONTDESK_API_BASE points at the property-management backend. When it is
	// unset outside production, fall back to an in-memory backend seeded with
	// demo data so the app is usable out of the box.
	services := &web.Services{}
	apiBase := os.Getenv("FRONTDESK_API_BASE")
	switch {
	case apiBase != "":
		client := api.NewClient(apiBase, os.Getenv("FRONTDESK_API_TOKEN"))
		services.Bookings = api.NewBookingService(client)
		services.Rooms = api.NewRoomService(client)
		services.Rates = api.NewRateService(client)
		services.Guests = api.NewGuestService(client)
		services.Invoices = api.NewInvoiceService(client)
		// The user/auth service can live on a separate host
		usersClient := client
		if usersBase := os.Getenv("FRONTDESK_USERS_BASE"); usersBase != "" {
			usersClient = api.NewClient(usersBase, os.Getenv("FRONTDESK_API_TOKEN"))
		}
		services.Users = api.NewUserService(usersClient)
		log.Printf("Backend: %s", apiBase)
	case env == "production":
		log.Fatal("FRONTDESK_API_BASE must be set in production")
	default:
		backend := api.NewMemoryBackend()
		if err := backend.SeedDemo(context.Background(), time.Now()); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
		services.Bookings = backend
		services.Rooms = backend.Rooms()
		services.Rates = backend.Rates()
		services.Guests = backend.Guests()
		services.Invoices = backend.Invoices()
		services.Users = backend.Users()
		log.Println("Backend: in-memory demo (set FRONTDESK_API_BASE for a real backend)")
		log.Printf("Demo logins: %s / %s (password %q)", api.DemoAdminEmail, api.DemoDeskEmail, api.DemoPassword)
	}

	// Configure email sender for invoice delivery
	resendKey := os.Getenv("FRONTDESK_RESEND_KEY")
	emailFrom := envOrDefault("FRONTDESK_RESEND_FROM", "Harbourview Hotel <reception@harbourview.example>")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom)
		if env == "production" {
			log.Println("WARNING: FRONTDESK_RESEND_KEY is not set; invoice email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop; set FRONTDESK_RESEND_KEY for real delivery)")
		}
	}

	mux := web.NewMux("static", services, stores)

	addr := envOrDefault("FRONTDESK_ADDR", ":8080")
	log.Printf("Front desk %s starting on %s (env=%s)", version, addr, env)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

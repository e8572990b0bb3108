package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"gitea.com/go-chi/session"
	"github.com/alistairstead/ueberauth-shopify/authenticator"
	"github.com/alistairstead/ueberauth-shopify/controllers"
	authmiddleware "github.com/alistairstead/ueberauth-shopify/middleware"
	"github.com/alistairstead/ueberauth-shopify/shopify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load environment variables from .env file, if present
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Resolve the provider configuration once, at startup
	cfg, err := shopify.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load Shopify config: %v", err)
	}

	// Initialize the Shopify provider
	provider, err := shopify.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Shopify provider: %v", err)
	}

	// Initialize controllers
	ctrl := controllers.NewControllers()

	// Set up router
	r, err := setupRouter(ctrl, provider)
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Shopify OAuth example starting on port %s\n", port)
	fmt.Printf("Visit: http://localhost:%s\n", port)
	fmt.Printf("Shop: %s\n", cfg.ShopHost())

	log.Fatal(http.ListenAndServe(":"+port, r))
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, provider authenticator.Provider) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(middleware.Compress(5))

	// Determine if we should use secure cookies (HTTPS)
	useSecureCookies := os.Getenv("USE_HTTPS") == "true"

	// Session middleware: holds the pending state and the signed-in shop
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "shopify_session",
		Secure:         useSecureCookies,
		Gclifetime:     3600, // Session lifetime in seconds
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// PUBLIC ROUTES (no authentication required)
	r.Get("/", ctrl.Profile.Index)
	r.Get("/login", ctrl.Auth.Login(provider))
	r.Get("/callback", ctrl.Auth.Callback(provider))
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "ueberauth-shopify"}`)
	})

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth)
		r.Get("/profile", ctrl.Profile.Show)
	})

	return r, nil
}

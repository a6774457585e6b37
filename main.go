package main

import (
	"fmt"
	"net/http"

	"github.com/HavenEstates/HE-Backend/internal/agent"
	"github.com/HavenEstates/HE-Backend/internal/auth"
	"github.com/HavenEstates/HE-Backend/internal/booking"
	"github.com/HavenEstates/HE-Backend/internal/buying"
	"github.com/HavenEstates/HE-Backend/internal/config"
	"github.com/HavenEstates/HE-Backend/internal/db"
	"github.com/HavenEstates/HE-Backend/internal/listing"
	"github.com/HavenEstates/HE-Backend/internal/middleware"
	"github.com/HavenEstates/HE-Backend/internal/property"
	"github.com/HavenEstates/HE-Backend/internal/rental"
	"github.com/HavenEstates/HE-Backend/internal/respond"
	"github.com/HavenEstates/HE-Backend/internal/token"
	"github.com/HavenEstates/HE-Backend/internal/upload"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func main() {
	_ = godotenv.Load(".env.local")

	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration: ", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	respond.SetLogger(logger)

	db.Connect(cfg.DatabaseURL)

	auth.Init()
	property.Init()
	rental.Init()
	buying.Init()
	listing.Init()
	booking.Init()
	agent.Init()

	tokens, err := token.NewService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logger.Fatal("Failed to construct token service: ", err)
	}
	authn := middleware.Authenticator(tokens, logger)

	authHandler := &auth.Handler{Store: auth.NewStore(db.DB), Tokens: tokens, Log: logger}
	propertyHandler := &property.Handler{Log: logger}
	rentalHandler := &rental.Handler{Log: logger}
	buyingHandler := &buying.Handler{Log: logger}
	listingHandler := &listing.Handler{Log: logger}
	bookingHandler := &booking.Handler{Log: logger}
	agentHandler := &agent.Handler{Log: logger}

	uploadHandler, err := upload.NewHandler(cfg.UploadDir, cfg.BaseURL, logger)
	if err != nil {
		logger.Fatal("Failed to prepare upload directory: ", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Get("/", RootHandler)

	r.Mount("/api/auth", authHandler.Routes(authn))
	r.Mount("/api/properties", propertyHandler.Routes(authn))
	r.Mount("/api/rental-properties", rentalHandler.Routes(authn))
	r.Mount("/api/buy-properties", buyingHandler.Routes(authn))
	r.Mount("/api/listing-properties", listingHandler.Routes(authn))
	r.Mount("/api/tour-bookings", bookingHandler.Routes(authn))
	r.Mount("/api/becomeagent", agentHandler.Routes())
	r.Mount("/api/upload", uploadHandler.Routes())

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	logger.Infof("Server listening on port :%s...", cfg.Port)
	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		logger.Fatal("Server stopped: ", err)
	}
}

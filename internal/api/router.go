package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/jmateos/procura-be/internal/api/handlers"
	"github.com/jmateos/procura-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	userService services.UserServiceProvider,
	supplierService services.SupplierServiceProvider,
	rfpService services.RFPServiceProvider,
	bidService services.BidServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	userHandler := handlers.NewUserHandler(userService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	rfpHandler := handlers.NewRFPHandler(rfpService)
	bidHandler := handlers.NewBidHandler(bidService)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", userHandler.Register)
			r.Post("/login", userHandler.Login)
		})

		r.Route("/suppliers", func(r chi.Router) {
			r.Post("/onboard", supplierHandler.Onboard)
			r.Get("/", supplierHandler.GetAll)
		})

		r.Route("/rfps", func(r chi.Router) {
			r.Get("/", rfpHandler.GetAll)
			r.Post("/", rfpHandler.Create)
		})

		r.Route("/bids", func(r chi.Router) {
			r.Post("/", bidHandler.Submit)
			r.Post("/evaluate", bidHandler.Evaluate)
			r.Get("/rfp/{rfpId}", bidHandler.GetForRFP)
			r.Get("/winning/{rfpId}", bidHandler.Winning)
		})
	})

	return r
}

// recoverer converts handler panics into the same 500 envelope the handlers
// use for storage failures.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("Recovered from handler panic")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{
					"message": "Something went wrong",
					"error":   fmt.Sprint(rec),
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

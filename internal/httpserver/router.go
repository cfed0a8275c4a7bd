package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"fitpet/internal/auth"
	"fitpet/internal/httpserver/handlers"
	"fitpet/internal/metrics"
	"fitpet/internal/service"
	"fitpet/internal/validate"
)

// Deps is everything the router wires together.
type Deps struct {
	Auth      *service.AuthService
	Pets      *service.PetService
	Tokens    *auth.Tokens
	Validator *validate.Validator
	Log       *zap.SugaredLogger
	Base      string // e.g. /api/v1
}

// NewRouter mounts the public auth endpoints, the bearer-protected pet
// resource, the ADMIN-gated user listing, and the operational endpoints.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, metrics.Middleware, middleware.Logger)

	r.Route(d.Base, func(api chi.Router) {
		// Registration and login are the only public application routes.
		api.Post("/auth/registro", handlers.Registro(d.Auth, d.Validator, d.Log))
		api.Post("/auth/login", handlers.Login(d.Auth, d.Validator, d.Log))
		// Legacy alias kept for clients still posting to /auth/token.
		api.Post("/auth/token", handlers.Login(d.Auth, d.Validator, d.Log))

		api.Group(func(protected chi.Router) {
			protected.Use(auth.JWTAuth(d.Tokens))

			protected.Route("/pets", func(pets chi.Router) {
				pets.Post("/", handlers.CreatePet(d.Pets, d.Validator, d.Log, d.Base))
				pets.Get("/", handlers.ListPets(d.Pets, d.Log))
				pets.Get("/{id}", handlers.GetPet(d.Pets, d.Log))
				pets.Put("/{id}", handlers.UpdatePet(d.Pets, d.Validator, d.Log))
				pets.Delete("/{id}", handlers.DeletePet(d.Pets, d.Log))
			})

			protected.Group(func(admin chi.Router) {
				admin.Use(auth.RequireScope("ADMIN"))
				admin.Get("/admin/users", handlers.ListUsers(d.Auth, d.Log))
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Handle("/metrics", promhttp.Handler())
	return r
}

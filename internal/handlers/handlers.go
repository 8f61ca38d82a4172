package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/tigerbridge/tigerbridge/docs"
	accountshandlers "github.com/tigerbridge/tigerbridge/internal/handlers/accounts"
	adminhandlers "github.com/tigerbridge/tigerbridge/internal/handlers/admin"
	authhandlers "github.com/tigerbridge/tigerbridge/internal/handlers/auth"
	transfershandlers "github.com/tigerbridge/tigerbridge/internal/handlers/transfers"
	"github.com/tigerbridge/tigerbridge/internal/middleware"
	"github.com/tigerbridge/tigerbridge/internal/service"
	"go.uber.org/zap"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Token(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type AccountsHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Lookup(w http.ResponseWriter, r *http.Request)
	Balances(w http.ResponseWriter, r *http.Request)
	Transfers(w http.ResponseWriter, r *http.Request)
	Query(w http.ResponseWriter, r *http.Request)
}

type TransfersHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Lookup(w http.ResponseWriter, r *http.Request)
	Query(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	AdminHandler     AdminHandler
	AccountsHandler  AccountsHandler
	TransfersHandler TransfersHandler

	authMW       *middleware.Auth
	rateLimitRPM int
}

func New(s *service.Services, authMW *middleware.Auth, rateLimitRPM int) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		AdminHandler:     adminhandlers.New(s.AuthService),
		AccountsHandler:  accountshandlers.New(s.LedgerService),
		TransfersHandler: transfershandlers.New(s.LedgerService),
		authMW:           authMW,
		rateLimitRPM:     rateLimitRPM,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		chimiddleware.RealIP,
		chimiddleware.RequestID,
		middleware.RequestLogger,
		middleware.Recoverer,
	)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", health)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/token", h.AuthHandler.Token)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.authMW.Authenticate, h.authMW.RequireActive, h.authMW.RequireSuperuser)
			r.Get("/users", h.AdminHandler.ListUsers)
			r.Post("/users/{id}/activate", h.AdminHandler.Activate)
			r.Post("/users/{id}/deactivate", h.AdminHandler.Deactivate)
		})

		// Ledger surface: Active tier plus per-client rate limiting.
		r.Group(func(r chi.Router) {
			r.Use(
				h.authMW.Authenticate,
				h.authMW.RequireActive,
				httprate.LimitByIP(h.rateLimitRPM, time.Minute),
			)
			r.Route("/accounts", func(r chi.Router) {
				r.Post("/", h.AccountsHandler.Create)
				r.Post("/lookup", h.AccountsHandler.Lookup)
				r.Post("/balances", h.AccountsHandler.Balances)
				r.Post("/transfers", h.AccountsHandler.Transfers)
				r.Post("/query", h.AccountsHandler.Query)
			})
			r.Route("/transfers", func(r chi.Router) {
				r.Post("/", h.TransfersHandler.Create)
				r.Post("/lookup", h.TransfersHandler.Lookup)
				r.Post("/query", h.TransfersHandler.Query)
			})
		})
	})

	return r
}

// health godoc
//
//	@Summary	Health check
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Router		/health [get]
func health(w http.ResponseWriter, r *http.Request) {
	// Liveness only, no envelope: load balancers hit this directly.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	}); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

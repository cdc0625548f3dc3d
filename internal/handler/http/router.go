package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/eventosfin/financeiro-backend-go/internal/config"
	"github.com/eventosfin/financeiro-backend-go/internal/handler/http/middleware"
	"github.com/eventosfin/financeiro-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	companyHandler CompanyHandler,
	eventHandler EventHandler,
	financialHandler FinancialHandler,
	registryHandler RegistryHandler,
	userHandler UserHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "financeiro-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Get("/captcha", authHandler.Captcha)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
				r.Get("/callback/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", companyHandler.List)
				r.Get("/{id}", companyHandler.GetByID)
				r.Post("/", companyHandler.Create)
				r.Put("/{id}", companyHandler.Update)
				r.Delete("/{id}", companyHandler.Delete)
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/", eventHandler.List)
				r.Get("/{id}", eventHandler.GetByID)
				r.Post("/", eventHandler.Create)
				r.Put("/{id}", eventHandler.Update)
				r.Delete("/{id}", eventHandler.Delete)
			})

			r.Route("/suppliers", func(r chi.Router) {
				r.Get("/", registryHandler.ListSuppliers)
				r.Get("/{id}", registryHandler.GetSupplier)

				r.Group(func(r chi.Router) {
					r.Use(middleware.FinancialWriterOnly)
					r.Post("/", registryHandler.CreateSupplier)
					r.Put("/{id}", registryHandler.UpdateSupplier)
					r.Delete("/{id}", registryHandler.DeleteSupplier)
				})
			})

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", registryHandler.ListClients)
				r.Get("/{id}", registryHandler.GetClient)

				r.Group(func(r chi.Router) {
					r.Use(middleware.FinancialWriterOnly)
					r.Post("/", registryHandler.CreateClient)
					r.Put("/{id}", registryHandler.UpdateClient)
					r.Delete("/{id}", registryHandler.DeleteClient)
				})
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", registryHandler.ListCategories)
				r.Get("/{id}", registryHandler.GetCategory)

				r.Group(func(r chi.Router) {
					r.Use(middleware.CategoryManagerOnly)
					r.Post("/", registryHandler.CreateCategory)
					r.Put("/{id}", registryHandler.UpdateCategory)
					r.Delete("/{id}", registryHandler.DeleteCategory)
				})
			})

			r.Route("/payables", func(r chi.Router) {
				r.Get("/", financialHandler.ListPayables)
				r.Get("/{id}", financialHandler.GetPayable)

				r.Group(func(r chi.Router) {
					r.Use(middleware.FinancialWriterOnly)
					r.Post("/", financialHandler.CreatePayable)
					r.Put("/{id}", financialHandler.UpdatePayable)
					r.Post("/{id}/settle", financialHandler.SettlePayable)
					r.Post("/{id}/cancel", financialHandler.CancelPayable)
					r.Delete("/{id}", financialHandler.DeletePayable)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.ApproverOnly)
					r.Post("/{id}/approve", financialHandler.ApprovePayable)
				})
			})

			r.Route("/receivables", func(r chi.Router) {
				r.Get("/", financialHandler.ListReceivables)
				r.Get("/{id}", financialHandler.GetReceivable)

				r.Group(func(r chi.Router) {
					r.Use(middleware.FinancialWriterOnly)
					r.Post("/", financialHandler.CreateReceivable)
					r.Put("/{id}", financialHandler.UpdateReceivable)
					r.Post("/{id}/settle", financialHandler.SettleReceivable)
					r.Post("/{id}/cancel", financialHandler.CancelReceivable)
					r.Delete("/{id}", financialHandler.DeleteReceivable)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.ApproverOnly)
					r.Post("/{id}/approve", financialHandler.ApproveReceivable)
				})
			})

			r.Route("/daily-revenues", func(r chi.Router) {
				r.Get("/", financialHandler.ListDailyRevenues)
				r.Get("/{id}", financialHandler.GetDailyRevenue)

				r.Group(func(r chi.Router) {
					r.Use(middleware.FinancialWriterOnly)
					r.Post("/", financialHandler.CreateDailyRevenue)
					r.Put("/{id}", financialHandler.UpdateDailyRevenue)
					r.Delete("/{id}", financialHandler.DeleteDailyRevenue)
				})
			})

			r.Get("/reports/events", reportHandler.EventSummaries)

			// Admin only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", userHandler.List)
				r.Get("/{id}", userHandler.GetByID)
				r.Post("/", userHandler.Create)
				r.Put("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Delete)
			})
		})
	})
	return r
}

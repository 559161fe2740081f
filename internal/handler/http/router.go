package http

import (
	"log/slog"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(
	opts RouterOptions,
	JWTService jwt.Service,
	healthHandler HealthHandler,
	payPeriodHandler PayPeriodHandler,
	payrollHandler PayrollHandler,
	projectHandler ProjectHandler,
	archiveHandler ArchiveHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  slog.LevelDebug,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/health", healthHandler.Check)

	// Requires authentication
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

		r.Get("/exports/*", archiveHandler.Download)

		r.Route("/api/v1", func(r chi.Router) {
			r.Route("/pay-period", func(r chi.Router) {
				r.Get("/config", payPeriodHandler.GetConfig)
				r.With(middleware.RequireManager).Put("/config", payPeriodHandler.UpdateConfig)
				r.Get("/current", payPeriodHandler.GetCurrent)
				r.Get("/recent", payPeriodHandler.ListRecent)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/summary", payrollHandler.GetSummary)
				r.Get("/staff/{staffId}", payrollHandler.GetStaffPayroll)
				r.Get("/export.csv", payrollHandler.ExportCSV)
				r.Get("/export.pdf", payrollHandler.ExportPDF)
				r.Post("/exports", payrollHandler.ArchiveExport)
			})

			r.Route("/projects/{projectId}", func(r chi.Router) {
				r.Get("/cost", projectHandler.GetCost)
				r.Get("/revenue", projectHandler.GetRevenue)
				r.With(middleware.RequireManager).Post("/reconcile", projectHandler.Reconcile)
			})
		})
	})

	return r
}

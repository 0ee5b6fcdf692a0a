package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/worksite-labs/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Attendance AttendanceHandler
	Worker     WorkerHandler
	Advance    AdvanceHandler
	Report     ReportHandler
	Settings   SettingsHandler
	Auth       AuthHandler
	Backup     BackupHandler
	Trip       TripHandler
}

func NewRouter(env, logLevel string, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       parseLevel(logLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("env", env),
	)

	// The desktop shell serves the UI from its own origin, so CORS stays
	// wide open.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/record", h.Attendance.RecordEvent)
			r.Post("/add-bonus", h.Attendance.AddBonus)
			r.Get("/today", h.Attendance.Today)
		})

		r.Route("/workers", func(r chi.Router) {
			r.Get("/", h.Worker.List)
			r.Post("/", h.Worker.Create)
			r.Get("/drivers", h.Worker.ListDrivers)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Worker.Get)
				r.Delete("/", h.Worker.Delete)
				r.Get("/report", h.Worker.PeriodReport)
				r.Get("/full-report", h.Worker.FullReport)
			})
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/daily/{date}", h.Report.Daily)
			r.Get("/weekly", h.Report.Weekly)
			r.Get("/monthly", h.Report.Monthly)
			r.Get("/yearly", h.Report.Yearly)
		})

		r.Route("/invoice", func(r chi.Router) {
			r.Get("/company", h.Report.CompanyInvoice)
			r.Get("/company/export", h.Report.CompanyInvoiceExport)
		})

		r.Route("/advances", func(r chi.Router) {
			r.Post("/", h.Advance.Create)
			r.Get("/worker/{workerID}", h.Advance.ListByWorker)
			r.Get("/total/{workerID}", h.Advance.Total)
		})

		r.Route("/trips", func(r chi.Router) {
			r.Post("/", h.Trip.Record)
			r.Get("/driver/{driverID}/today", h.Trip.Today)
		})

		r.Get("/settings", h.Settings.Get)

		// Admin only
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AdminRequired(jwtService.JWTAuth()))

			r.Post("/attendance/reset-today", h.Attendance.ResetToday)

			r.Put("/settings/hourly-rate", h.Settings.UpdateHourlyRate)
			r.Put("/settings/password", h.Settings.UpdatePassword)
			r.Put("/settings/company", h.Settings.UpdateCompany)

			r.Route("/backup", func(r chi.Router) {
				r.Post("/create", h.Backup.Create)
				r.Get("/list", h.Backup.List)
				r.Post("/restore", h.Backup.Restore)
			})
		})
	})

	return r
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

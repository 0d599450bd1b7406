package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/attendly/attendly-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	employeeHandler *EmployeeHandler,
	attendanceHandler *AttendanceHandler,
	reportHandler *ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendly"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.CORSAllowedOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/employees", employeeHandler.List)

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.ListDaily)
			r.Post("/import", attendanceHandler.Import)
			r.Post("/gap-fill", attendanceHandler.GapFill)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/employee-summary", reportHandler.EmployeeSummary)
			r.Get("/monthly-summary", reportHandler.MonthlySummary)
		})
	})
	return r
}

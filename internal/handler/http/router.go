package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/cmlabs-hris/pos-attendance-go/internal/config"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/outlet"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/subscription"
	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/pos-attendance-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewLogger builds the service logger with ECS field names.
func NewLogger(app config.AppConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(app.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(app.Env != "development")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "pos-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", app.Env),
	)
}

type RouterConfig struct {
	AllowedOrigins []string
	StoragePath    string
	ReportTimeout  time.Duration
}

func NewRouter(
	cfg RouterConfig,
	logger *slog.Logger,
	JWTService jwt.Service,
	gate subscription.AccessGate,
	outlets outlet.Repository,
	gatherer prometheus.Gatherer,
	healthHandler HealthHandler,
	attendanceHandler AttendanceHandler,
	faceHandler FaceHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.HeaderBusinessID, middleware.HeaderOutletID},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/ready", healthHandler.Ready)

	if cfg.StoragePath != "" {
		r.Handle("/storage/*", http.StripPrefix("/storage/", http.FileServer(http.Dir(cfg.StoragePath))))
	}

	r.Route("/api/v1/attendance", func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired)
		r.Use(middleware.RequireBusiness(outlets))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireFeature(gate, subscription.FeatureAttendance))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionAttendanceClock))
				r.Use(middleware.RequireOutlet)
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/shifts/{shiftID}/clock-out", attendanceHandler.ClockOut)
			})

			r.Get("/today", attendanceHandler.Today)
			r.Get("/shifts", attendanceHandler.List)

			r.Group(func(r chi.Router) {
				if cfg.ReportTimeout > 0 {
					r.Use(chiMiddleware.Timeout(cfg.ReportTimeout))
				}
				r.Get("/stats", attendanceHandler.Stats)
				r.Get("/report", attendanceHandler.Report)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireFeature(gate, subscription.FeatureFaceRecognition))
			r.Use(middleware.RequirePermission(user.PermissionFaceManageOwn))
			r.Post("/register-face", faceHandler.RegisterFace)
			r.Post("/verify-face", faceHandler.VerifyFace)
		})
	})

	return r
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/medrecords/patient-system/docs"
	"github.com/medrecords/patient-system/internal/api/handler"
	"github.com/medrecords/patient-system/internal/api/middleware"
	"github.com/medrecords/patient-system/internal/auth"
	"github.com/medrecords/patient-system/internal/core/domain"
	"github.com/medrecords/patient-system/internal/core/ports"
	"github.com/medrecords/patient-system/internal/core/service"
	"github.com/medrecords/patient-system/web"
)

// Deps carries everything the router needs. Stores are constructed once at
// process start and passed by reference; the router never owns state.
type Deps struct {
	Users    ports.UserRepository
	Patients ports.PatientRepository
	Tokens   *auth.TokenManager
	Limiter  service.AttemptLimiter // nil disables login throttling
	Redis    *redis.Client          // nil when the limiter is disabled
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("patient_records"))

	// --- Services and handlers ---
	authService := service.NewAuthService(deps.Users, deps.Tokens, deps.Limiter, deps.Log)
	patientService := service.NewPatientService(deps.Patients, deps.Log)

	authHandler := handler.NewAuthHandler(authService)
	patientHandler := handler.NewPatientHandler(patientService)

	authenticated := middleware.Auth(deps.Tokens, deps.Users)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth/me", authHandler.Me, authenticated)

	// --- Patient routes (read: any authenticated user, write: admin) ---
	patients := e.Group("/api/patients", authenticated)
	patients.GET("", patientHandler.List)
	patients.GET("/:id", patientHandler.Get)
	patients.POST("", patientHandler.Create, adminOnly)
	patients.PUT("/:id", patientHandler.Update, adminOnly)
	patients.DELETE("/:id", patientHandler.Delete, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the limiter store up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Embedded dashboard ---
	e.StaticFS("/", echo.MustSubFS(web.Static, "static"))

	return e
}

package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/glowdesk/salon-api/internal/api/handler"
	"github.com/glowdesk/salon-api/internal/api/middleware"
	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

// Deps carries every constructed dependency the router wires into handlers.
// Everything is built once in main and passed down explicitly; there is no
// process-wide registry to look things up in.
type Deps struct {
	DB            *mongo.Database
	Redis         *redis.Client
	Logger        zerolog.Logger
	JWTSecret     string
	SessionTTL    time.Duration
	SecureCookies bool

	Auth          ports.AuthService
	Users         ports.UserService
	Customers     ports.CustomerService
	Catalog       ports.CatalogService
	Transactions  ports.TransactionService
	Appointments  ports.AppointmentService
	Consultations ports.ConsultationService
	Reports       ports.ReportService
	Settings      ports.SettingsService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("salon"))
	// Network-edge half of the dual access check: redirects page navigation
	// before any handler logic runs.
	e.Use(middleware.PageGuard(deps.JWTSecret))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.SessionTTL, deps.SecureCookies)
	accessHandler := handler.NewAccessHandler()
	userHandler := handler.NewUserHandler(deps.Users)
	customerHandler := handler.NewCustomerHandler(deps.Customers)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	transactionHandler := handler.NewTransactionHandler(deps.Transactions)
	appointmentHandler := handler.NewAppointmentHandler(deps.Appointments)
	consultationHandler := handler.NewConsultationHandler(deps.Consultations)
	reportHandler := handler.NewReportHandler(deps.Reports)
	settingsHandler := handler.NewSettingsHandler(deps.Settings)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(deps.JWTSecret))

	v1.GET("/auth/session", authHandler.Session)
	v1.GET("/access/check", accessHandler.Check)

	// Group-level RBAC mirrors the page rules in domain/access.go.
	staff := []string{domain.RoleOwner, domain.RoleTherapist, domain.RoleManager}
	admins := []string{domain.RoleOwner, domain.RoleAdmin}

	users := v1.Group("/users", middleware.RBAC(admins...))
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	customers := v1.Group("/customers", middleware.RBAC(staff...))
	customers.POST("", customerHandler.Create)
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	catalog := v1.Group("/services", middleware.RBAC(staff...))
	catalog.POST("", catalogHandler.Create)
	catalog.GET("", catalogHandler.List)
	catalog.GET("/:id", catalogHandler.Get)
	catalog.PUT("/:id", catalogHandler.Update)
	catalog.DELETE("/:id", catalogHandler.Delete)

	// Transactions are immutable: create and read only, no PUT/DELETE.
	transactions := v1.Group("/transactions", middleware.RBAC(staff...))
	transactions.POST("", transactionHandler.Create)
	transactions.GET("", transactionHandler.List)
	transactions.GET("/:id", transactionHandler.Get)

	appointments := v1.Group("/appointments", middleware.RBAC(staff...))
	appointments.POST("", appointmentHandler.Create)
	appointments.GET("", appointmentHandler.List)
	appointments.GET("/:id", appointmentHandler.Get)
	appointments.PUT("/:id", appointmentHandler.Update)
	appointments.DELETE("/:id", appointmentHandler.Delete)

	consultations := v1.Group("/consultations", middleware.RBAC(staff...))
	consultations.POST("", consultationHandler.Create)
	consultations.GET("", consultationHandler.List)
	consultations.GET("/:id", consultationHandler.Get)
	consultations.PUT("/:id", consultationHandler.Update)
	consultations.DELETE("/:id", consultationHandler.Delete)

	reports := v1.Group("/reports", middleware.RBAC(domain.RoleOwner, domain.RoleManager))
	reports.POST("", reportHandler.Run)

	settings := v1.Group("/settings", middleware.RBAC(admins...))
	settings.GET("", settingsHandler.Get)
	settings.PUT("", settingsHandler.Update)

	return e
}

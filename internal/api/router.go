package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/gescar/dealership-system/docs"
	"github.com/gescar/dealership-system/internal/api/handler"
	"github.com/gescar/dealership-system/internal/api/middleware"
	"github.com/gescar/dealership-system/internal/core/domain"
	"github.com/gescar/dealership-system/internal/core/ports"
	"github.com/gescar/dealership-system/internal/core/service"
	mongodb "github.com/gescar/dealership-system/internal/infrastructure/db/mongo"
	redisdb "github.com/gescar/dealership-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. The events publisher is the dispatcher started by main;
// sale and repair services feed vehicle status changes through it.
func NewRouter(db *mongo.Database, rdb *goredis.Client, events ports.StatusEventPublisher, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gescar"))

	// --- Dependencies ---
	denylist := redisdb.NewTokenDenylist(rdb)
	summaryCache := redisdb.NewSummaryCache(rdb)

	authRepo := mongodb.NewAuthRepository(db)
	vehicleRepo := mongodb.NewVehicleRepository(db)
	saleRepo := mongodb.NewSaleRepository(db)
	repairRepo := mongodb.NewRepairRepository(db)
	proposalRepo := mongodb.NewProposalRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)

	authService := service.NewAuthService(authRepo, denylist, jwtSecret, 24*time.Hour)
	vehicleService := service.NewVehicleService(vehicleRepo, log)
	saleService := service.NewSaleService(saleRepo, vehicleRepo, events, log)
	repairService := service.NewRepairService(repairRepo, vehicleRepo, events, log)
	dashboardService := service.NewDashboardService(vehicleRepo, saleRepo, repairRepo, summaryCache, log)
	proposalService := service.NewProposalService(proposalRepo, vehicleRepo, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, vehicleRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	saleHandler := handler.NewSaleHandler(saleService)
	repairHandler := handler.NewRepairHandler(repairService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	proposalHandler := handler.NewProposalHandler(proposalService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)

	auth := middleware.Auth(jwtSecret, denylist)
	dealerOnly := middleware.RBAC(domain.RoleDealer)
	clientOnly := middleware.RBAC(domain.RoleClient)
	anyRole := middleware.RBAC(domain.RoleDealer, domain.RoleClient)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, auth)

	// --- Inventory: reads for both roles, writes for dealers ---
	e.GET("/veiculos", vehicleHandler.List, auth, anyRole)
	e.GET("/veiculos/:id", vehicleHandler.Get, auth, anyRole)
	e.POST("/veiculos", vehicleHandler.Create, auth, dealerOnly)
	e.PUT("/veiculos/:id", vehicleHandler.Update, auth, dealerOnly)
	e.DELETE("/veiculos/:id", vehicleHandler.Delete, auth, dealerOnly)

	// --- Dealer-side resources ---
	e.GET("/vendas", saleHandler.List, auth, dealerOnly)
	e.POST("/vendas", saleHandler.Create, auth, dealerOnly)
	e.GET("/reparos", repairHandler.List, auth, dealerOnly)
	e.POST("/reparos", repairHandler.Create, auth, dealerOnly)
	e.PATCH("/reparos/:id/status", repairHandler.UpdateStatus, auth, dealerOnly)
	e.GET("/dashboard/resumo", dashboardHandler.Summary, auth, dealerOnly)

	// --- Client-side resources ---
	e.GET("/propostas", proposalHandler.List, auth, anyRole)
	e.POST("/propostas", proposalHandler.Create, auth, clientOnly)
	e.PATCH("/propostas/:id/status", proposalHandler.Decide, auth, dealerOnly)
	e.GET("/agendamentos", appointmentHandler.List, auth, anyRole)
	e.POST("/agendamentos", appointmentHandler.Create, auth, clientOnly)
	e.DELETE("/agendamentos/:id", appointmentHandler.Cancel, auth, anyRole)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness: is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness: are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

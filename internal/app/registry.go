package app

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/JSON-FX/lgu-sso/internal/access"
	"github.com/JSON-FX/lgu-sso/internal/application"
	"github.com/JSON-FX/lgu-sso/internal/audit"
	"github.com/JSON-FX/lgu-sso/internal/auth"
	"github.com/JSON-FX/lgu-sso/internal/employee"
	"github.com/JSON-FX/lgu-sso/internal/location"
	"github.com/JSON-FX/lgu-sso/internal/messaging/kafka"
	"github.com/JSON-FX/lgu-sso/internal/middleware"
	"github.com/JSON-FX/lgu-sso/internal/office"
	"github.com/JSON-FX/lgu-sso/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	// --- Repositories ---
	outboxRepo := kafka.NewOutboxRepository(db)
	auditRepo := audit.NewRepository(gormDB, db)
	accessRepo := access.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	applicationRepo := application.NewRepository(gormDB)
	officeRepo := office.NewRepository(gormDB)
	statsRepo := stats.NewRepository(gormDB)

	// --- Audit trail ---
	recorder := audit.NewRecorder(db, auditRepo, outboxRepo, logger)

	// --- Services ---
	locationService := location.NewService(
		location.NewClient(os.Getenv("PSGC_BASE_URL")),
		rdb,
		logger.Named("location.service"),
	)
	officeService := office.NewService(officeRepo)
	accessService := access.NewService(accessRepo, recorder, logger.Named("access.service"))
	employeeService := employee.NewService(employeeRepo, locationService, officeService, recorder, logger.Named("employee.service"))
	applicationService := application.NewService(applicationRepo, recorder, logger.Named("application.service"))
	auditService := audit.NewService(auditRepo, logger.Named("audit.service"))
	statsService := stats.NewService(statsRepo)

	tokenStore := auth.NewTokenStore([]byte(jwtSecret), rdb)
	authService := auth.NewService(employeeRepo, accessService, tokenStore, recorder, logger.Named("auth.service"))

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	accessHandler := access.NewHandler(accessService)
	employeeHandler := employee.NewHandler(employeeService)
	applicationHandler := application.NewHandler(applicationService)
	auditHandler := audit.NewHandler(auditService)
	statsHandler := stats.NewHandler(statsService)
	officeHandler := office.NewHandler(officeService)
	locationHandler := location.NewHandler(locationService)

	// --- Routes Registration ---
	authn := middleware.Auth(tokenStore)
	superAdmin := middleware.RequireSuperAdmin(accessService)

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authn)

		// Everything below is the management surface: a live token is not
		// enough, the actor must also hold a super_administrator grant.
		mgmt := api.Group("", authn, superAdmin)
		{
			employee.RegisterRoutes(mgmt, employeeHandler, accessHandler)
			application.RegisterRoutes(mgmt, applicationHandler, accessHandler)
			audit.RegisterRoutes(mgmt, auditHandler)
			stats.RegisterRoutes(mgmt, statsHandler)
			office.RegisterRoutes(mgmt, officeHandler)
			location.RegisterRoutes(mgmt, locationHandler)
		}
	}

	return nil
}
